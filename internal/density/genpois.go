package density

import (
	"math"

	"github.com/born-ml/distrib/internal/special"
	"github.com/born-ml/distrib/internal/tensor"
)

// GenPois returns the generalized Poisson density
//
//	f(y | θ, λ) = θ (θ + λy)^(y−1) exp(−θ − λy) / y!
//
// in log form when giveLog is true. At y = 0 the (y−1)·log(θ + λy) term
// reduces to −log θ, so the log density is −θ.
func GenPois(be tensor.Backend, y, theta, lambda *tensor.RawTensor, giveLog bool) *tensor.RawTensor {
	lambdaY := be.Mul(lambda, y)

	logres := be.Add(
		be.Log(theta),
		be.Mul(be.AddScalar(y, -1), be.Log(be.Add(theta, lambdaY))),
	)
	logres = be.Sub(logres, theta)
	logres = be.Sub(logres, lambdaY)
	logres = be.Sub(logres, be.Lgamma(be.AddScalar(y, 1)))

	if giveLog {
		return logres
	}
	return be.Exp(logres)
}

// DGenPois is the float64 form of GenPois.
func DGenPois(y, theta, lambda float64, giveLog bool) float64 {
	logres := math.Log(theta) + (y-1)*math.Log(theta+lambda*y) -
		theta - lambda*y - special.Lgamma(y+1)
	return logOrExp(logres, giveLog)
}

func logOrExp(logres float64, giveLog bool) float64 {
	if giveLog {
		return logres
	}
	return math.Exp(logres)
}
