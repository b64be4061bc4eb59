package compois

import (
	"math"

	"github.com/born-ml/distrib/internal/special"
	"github.com/born-ml/distrib/internal/tinyad"
)

const (
	// tailLogRatio stops the series once a term is below exp(-40) ≈ 4e-18
	// of the largest one.
	tailLogRatio = -40.0

	// maxTerms bounds the number of series terms summed on each side of the mode.
	maxTerms = 10_000_000
)

// logTerm returns k·loglambda − nu·lgamma(k+1).
func logTerm(k int, loglambda tinyad.Variable, nu float64) tinyad.Variable {
	return loglambda.Scale(float64(k)).Shift(-nu * special.Lgamma(float64(k)+1))
}

// mode returns the index of the largest series term, clamped to [0, maxTerms].
func mode(loglambda, nu float64) int {
	m := math.Floor(math.Exp(loglambda / nu))
	switch {
	case math.IsNaN(m) || m < 0:
		return 0
	case m > maxTerms:
		return maxTerms
	default:
		return int(m)
	}
}

// CalcLogZ evaluates log Z(λ, ν) at loglambda, carrying derivatives with
// respect to log λ.
//
// Terms are unimodal in k, so the sum starts at the mode and walks outward in
// both directions until terms drop below tailLogRatio relative to the peak.
// Returns NaN for nu <= 0.
func CalcLogZ(loglambda tinyad.Variable, nu float64) tinyad.Variable {
	if !(nu > 0) || math.IsNaN(loglambda.V) || math.IsInf(loglambda.V, 0) {
		return tinyad.NaN()
	}

	k0 := mode(loglambda.V, nu)
	peak := logTerm(k0, loglambda, nu)

	sum := tinyad.Constant(1) // exp(peak - peak)
	for k := k0 + 1; k <= k0+maxTerms; k++ {
		rel := logTerm(k, loglambda, nu).Sub(peak)
		sum = sum.Add(rel.Exp())
		if rel.V < tailLogRatio {
			break
		}
	}
	for k := k0 - 1; k >= 0; k-- {
		rel := logTerm(k, loglambda, nu).Sub(peak)
		sum = sum.Add(rel.Exp())
		if rel.V < tailLogRatio {
			break
		}
	}

	return peak.Add(sum.Log())
}
