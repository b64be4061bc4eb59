package atomic

import (
	"math"

	"github.com/born-ml/distrib/internal/special"
)

// LogitPnormFunc is the atomic function
//
//	y(x) = logit(Φ(x)) = log Φ(x) - log(1 - Φ(x))
//
// with derivative
//
//	y'(x) = φ(x) · (1 + exp(y)) · (1 + exp(-y)).
type LogitPnormFunc struct{}

// Name implements Function.
func (LogitPnormFunc) Name() string { return "logit_pnorm" }

// Forward implements Function.
func (LogitPnormFunc) Forward(tx []float64) []float64 {
	return []float64{LogitPnorm(tx[0])}
}

// Reverse implements Function.
func (LogitPnormFunc) Reverse(tx, ty, py []float64) []float64 {
	x, y := tx[0], ty[0]
	logDeriv := special.DnormLog(x) + special.LogspaceAdd(0, y) + special.LogspaceAdd(0, -y)
	return []float64{math.Exp(logDeriv) * py[0]}
}

// LogitPnorm maps the probit scale to the logit scale. Both tails come from
// one PnormBoth call so the result stays accurate for large |x|.
func LogitPnorm(x float64) float64 {
	lower, upper := special.PnormBoth(x)
	return lower - upper
}
