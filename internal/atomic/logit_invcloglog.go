package atomic

import (
	"math"

	"github.com/born-ml/distrib/internal/special"
)

// LogitInvCloglogFunc is the atomic function
//
//	y(x) = log(exp(exp(x)) - 1) = logspace_sub(exp(x), 0)
//
// with derivative
//
//	y'(x) = exp(x) + exp(x - y) = exp(logspace_add(x, x - y)).
type LogitInvCloglogFunc struct{}

// Name implements Function.
func (LogitInvCloglogFunc) Name() string { return "logit_invcloglog" }

// Forward implements Function.
func (LogitInvCloglogFunc) Forward(tx []float64) []float64 {
	return []float64{LogitInvCloglog(tx[0])}
}

// Reverse implements Function.
func (LogitInvCloglogFunc) Reverse(tx, ty, py []float64) []float64 {
	x, y := tx[0], ty[0]
	return []float64{math.Exp(special.LogspaceAdd(x, x-y)) * py[0]}
}

// LogitInvCloglog maps the complementary log-log scale to the logit scale.
func LogitInvCloglog(x float64) float64 {
	return special.LogspaceSub(math.Exp(x), 0)
}
