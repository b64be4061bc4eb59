package compois

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/distrib/internal/parallel"
	"github.com/born-ml/distrib/internal/tinyad"
)

func TestCalcLogZ_PoissonCase(t *testing.T) {
	// nu = 1: Z = exp(λ), so log Z = λ and every derivative in log λ equals λ.
	for _, lambda := range []float64{0.01, 0.7, 3, 40, 900} {
		z := CalcLogZ(tinyad.Seed(math.Log(lambda)), 1)
		tol := 1e-10 * math.Max(1, lambda)
		assert.InDelta(t, lambda, z.V, tol, "lambda=%v", lambda)
		assert.InDelta(t, lambda, z.D1, tol, "lambda=%v", lambda)
		assert.InDelta(t, lambda, z.D2, tol, "lambda=%v", lambda)
	}
}

func TestCalcLogZ_GeometricCase(t *testing.T) {
	// nu = 0: Z = 1/(1-λ) for λ < 1. Approach it with a tiny nu.
	z := CalcLogZ(tinyad.Constant(math.Log(0.5)), 1e-12)
	assert.InDelta(t, math.Log(2), z.V, 1e-9)
}

func TestCalcLogZ_Invalid(t *testing.T) {
	assert.True(t, math.IsNaN(CalcLogZ(tinyad.Seed(0), 0).V))
	assert.True(t, math.IsNaN(CalcLogZ(tinyad.Seed(0), -1).D2))
	assert.True(t, math.IsNaN(CalcLogZ(tinyad.Seed(math.NaN()), 1).V))
}

func TestCalcLogLambda_RecoversMean(t *testing.T) {
	for _, nu := range []float64{0.3, 0.8, 1, 1.7, 4} {
		for _, mean := range []float64{0.05, 1, 6.5, 80} {
			ll := CalcLogLambda(math.Log(mean), nu)
			got := CalcLogZ(tinyad.Seed(ll), nu).D1
			assert.InDelta(t, mean, got, 1e-8*math.Max(1, mean), "mean=%v nu=%v", mean, nu)
		}
	}
}

func TestCalcLogLambda_Poisson(t *testing.T) {
	assert.InDelta(t, math.Log(3.0), CalcLogLambda(math.Log(3), 1), 1e-12)
}

func TestCalcVar_PoissonEqualsMean(t *testing.T) {
	for _, mean := range []float64{0.2, 1, 4.5, 25} {
		assert.InDelta(t, mean, CalcVar(mean, 1), 1e-8*mean, "mean=%v", mean)
	}
}

func TestCalcVar_Dispersion(t *testing.T) {
	mean := 5.0
	under := CalcVar(mean, 2.5)
	over := CalcVar(mean, 0.4)
	assert.Less(t, under, mean, "nu > 1 is underdispersed")
	assert.Greater(t, over, mean, "nu < 1 is overdispersed")

	// Large-mean approximation Var ≈ mean / nu.
	assert.InDelta(t, 200.0/2, CalcVar(200, 2), 1.5)
}

func TestCalcVar_MatchesDirectSum(t *testing.T) {
	mean, nu := 2.3, 1.6
	ll, logZ := Params(mean, nu)

	var m1, m2 float64
	for k := 0; k < 200; k++ {
		p := math.Exp(LogPMF(float64(k), ll, logZ, nu))
		m1 += float64(k) * p
		m2 += float64(k*k) * p
	}
	assert.InDelta(t, mean, m1, 1e-9)
	assert.InDelta(t, m2-m1*m1, CalcVar(mean, nu), 1e-9)
}

func TestCalcVar_Invalid(t *testing.T) {
	assert.True(t, math.IsNaN(CalcVar(0, 1)))
	assert.True(t, math.IsNaN(CalcVar(-1, 1)))
	assert.True(t, math.IsNaN(CalcVar(1, 0)))
	assert.True(t, math.IsNaN(CalcVar(math.NaN(), 1)))
}

func TestCalcVarVec(t *testing.T) {
	mean := []float64{0.5, 1, 2, 5, 10}
	nu := []float64{1, 1, 1, 1, 1}

	out, err := CalcVarVec(mean, nu, parallel.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, out, 5)
	for i := range mean {
		assert.InDelta(t, mean[i], out[i], 1e-8*mean[i])
	}
}

func TestCalcVarVec_ParallelMatchesSequential(t *testing.T) {
	n := 64
	mean := make([]float64, n)
	nu := make([]float64, n)
	for i := range mean {
		mean[i] = 0.25 + float64(i)/4
		nu[i] = 0.5 + float64(i%7)/3
	}

	seq, err := CalcVarVec(mean, nu, parallel.Sequential())
	require.NoError(t, err)
	par, err := CalcVarVec(mean, nu, parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 2})
	require.NoError(t, err)
	assert.Equal(t, seq, par)
}

func TestCalcVarVec_LengthMismatch(t *testing.T) {
	out, err := CalcVarVec([]float64{1, 2, 3}, []float64{1, 1, 1, 1, 1}, parallel.DefaultConfig())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLengthMismatch))
	assert.Nil(t, out)
}

func BenchmarkCalcVar(b *testing.B) {
	for i := 0; i < b.N; i++ {
		CalcVar(12, 1.4)
	}
}
