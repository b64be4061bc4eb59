package special

import "math"

// logSqrt2Pi is log(sqrt(2π)).
const logSqrt2Pi = 0.918938533204672741780329736406

// millsCutoff is the |x| beyond which erfc is close to underflow and the
// asymptotic tail series takes over.
const millsCutoff = 35.0

// DnormLog returns the log density of the standard normal distribution.
func DnormLog(x float64) float64 {
	return -0.5*x*x - logSqrt2Pi
}

// PnormBoth returns log Φ(x) and log(1-Φ(x)) from a single tail evaluation.
//
// Only the smaller tail is computed directly; the larger one is derived as
// log(1 - small) so that neither tail loses precision to cancellation.
func PnormBoth(x float64) (logLower, logUpper float64) {
	switch {
	case math.IsNaN(x):
		return math.NaN(), math.NaN()
	case math.IsInf(x, 1):
		return 0, math.Inf(-1)
	case math.IsInf(x, -1):
		return math.Inf(-1), 0
	}

	ax := math.Abs(x)
	var logSmall float64
	if ax < millsCutoff {
		logSmall = math.Log(0.5 * math.Erfc(ax/math.Sqrt2))
	} else {
		logSmall = logTailAsymptotic(ax)
	}
	logLarge := Log1mExp(logSmall)

	if x < 0 {
		return logSmall, logLarge
	}
	return logLarge, logSmall
}

// logTailAsymptotic returns log(1-Φ(x)) for large positive x using the
// Mills ratio series φ(x)/x · (1 - 1/x² + 3/x⁴ - 15/x⁶ + 105/x⁸).
func logTailAsymptotic(x float64) float64 {
	z := 1 / (x * x)
	series := z * (-1 + z*(3+z*(-15+z*105)))
	return DnormLog(x) - math.Log(x) + math.Log1p(series)
}
