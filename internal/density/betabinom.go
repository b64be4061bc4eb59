package density

import (
	"github.com/aclements/go-moremath/mathx"

	"github.com/born-ml/distrib/internal/special"
	"github.com/born-ml/distrib/internal/tensor"
)

// BetaBinomial returns the beta-binomial density of y successes in n trials
// with shapes a and b, evaluated entirely in log-gamma form:
//
//	lgamma(n+1) − lgamma(y+1) − lgamma(n−y+1)
//	+ lgamma(y+a) + lgamma(n−y+b) − lgamma(n+a+b)
//	+ lgamma(a+b) − lgamma(a) − lgamma(b)
//
// Returns the log density when giveLog is true, the density otherwise.
// Arguments are element-wise with one-element broadcasting.
func BetaBinomial(be tensor.Backend, y, a, b, n *tensor.RawTensor, giveLog bool) *tensor.RawTensor {
	nMinusY := be.Sub(n, y)

	// log C(n, y)
	logres := be.Sub(
		be.Sub(be.Lgamma(be.AddScalar(n, 1)), be.Lgamma(be.AddScalar(y, 1))),
		be.Lgamma(be.AddScalar(nMinusY, 1)),
	)

	// log B(y+a, n−y+b)
	logres = be.Add(logres, be.Lgamma(be.Add(y, a)))
	logres = be.Add(logres, be.Lgamma(be.Add(nMinusY, b)))
	logres = be.Sub(logres, be.Lgamma(be.Add(be.Add(n, a), b)))

	// − log B(a, b)
	logres = be.Add(logres, be.Lgamma(be.Add(a, b)))
	logres = be.Sub(logres, be.Lgamma(a))
	logres = be.Sub(logres, be.Lgamma(b))

	if giveLog {
		return logres
	}
	return be.Exp(logres)
}

// DBetaBinom is the float64 form of BetaBinomial.
func DBetaBinom(y, a, b, n float64, giveLog bool) float64 {
	lg := special.Lgamma
	logres := lg(n+1) - lg(y+1) - lg(n-y+1) +
		lg(y+a) + lg(n-y+b) - lg(n+a+b) +
		lg(a+b) - lg(a) - lg(b)
	return logOrExp(logres, giveLog)
}

// LogBetaBinomInt is the log density for integer counts, using the binomial
// coefficient directly instead of three lgamma calls.
func LogBetaBinomInt(y, n int, a, b float64) float64 {
	fy, fn := float64(y), float64(n)
	return mathx.Lchoose(n, y) + logBeta(fy+a, fn-fy+b) - logBeta(a, b)
}

func logBeta(a, b float64) float64 {
	return special.Lgamma(a) + special.Lgamma(b) - special.Lgamma(a+b)
}
