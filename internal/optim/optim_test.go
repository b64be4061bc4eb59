package optim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/distrib/internal/autodiff"
	"github.com/born-ml/distrib/internal/backend/cpu"
	"github.com/born-ml/distrib/internal/optim"
	"github.com/born-ml/distrib/internal/tensor"
)

func gradMap(param *tensor.RawTensor, g float64) map[*tensor.RawTensor]*tensor.RawTensor {
	return map[*tensor.RawTensor]*tensor.RawTensor{param: tensor.Full(param.Shape(), g)}
}

func TestSGD_SimpleUpdate(t *testing.T) {
	x := tensor.Vector(2.0)
	opt := optim.NewSGD([]*tensor.RawTensor{x}, optim.SGDConfig{LR: 0.1}, cpu.New())

	opt.Step(gradMap(x, 1))

	// 2.0 - 0.1 * 1.0
	assert.InDelta(t, 1.9, x.Data()[0], 1e-15)
}

func TestSGD_WithMomentum(t *testing.T) {
	x := tensor.Vector(1.0)
	opt := optim.NewSGD([]*tensor.RawTensor{x}, optim.SGDConfig{LR: 0.1, Momentum: 0.9}, cpu.New())

	opt.Step(gradMap(x, 1))
	assert.InDelta(t, 0.9, x.Data()[0], 1e-15)

	// velocity = 0.9*1 + 1 = 1.9
	opt.Step(gradMap(x, 1))
	assert.InDelta(t, 0.9-0.19, x.Data()[0], 1e-15)
}

func TestSGD_SkipsMissingGradient(t *testing.T) {
	x, y := tensor.Vector(1), tensor.Vector(2)
	opt := optim.NewSGD([]*tensor.RawTensor{x, y}, optim.SGDConfig{}, cpu.New())
	opt.Step(gradMap(x, 1))

	assert.InDelta(t, 0.99, x.Data()[0], 1e-15)
	assert.Equal(t, 2.0, y.Data()[0])
}

func TestSGD_GetSetLR(t *testing.T) {
	opt := optim.NewSGD(nil, optim.SGDConfig{}, cpu.New())
	assert.Equal(t, 0.01, opt.GetLR())
	opt.SetLR(0.5)
	assert.Equal(t, 0.5, opt.GetLR())
}

func TestAdam_SimpleUpdate(t *testing.T) {
	x := tensor.Vector(1.0)
	opt := optim.NewAdam([]*tensor.RawTensor{x}, optim.AdamConfig{LR: 0.1})

	opt.Step(gradMap(x, 0.5))

	// First step with bias correction moves by lr regardless of gradient scale.
	assert.InDelta(t, 0.9, x.Data()[0], 1e-7)
}

func TestAdam_BiasCorrection(t *testing.T) {
	// Constant gradients keep m_hat / sqrt(v_hat) at 1 on every step.
	x := tensor.Vector(0.0)
	opt := optim.NewAdam([]*tensor.RawTensor{x}, optim.AdamConfig{LR: 0.01})
	for range 10 {
		opt.Step(gradMap(x, -3))
	}
	assert.InDelta(t, 0.1, x.Data()[0], 1e-7)
}

func TestAdam_Defaults(t *testing.T) {
	opt := optim.NewAdam(nil, optim.AdamConfig{})
	assert.Equal(t, 0.001, opt.GetLR())
}

func TestConvergence_SimpleQuadratic(t *testing.T) {
	// minimize (x - 3)² + (y + 1)² through the tape.
	for name, newOpt := range map[string]func(p []*tensor.RawTensor) optim.Optimizer{
		"sgd": func(p []*tensor.RawTensor) optim.Optimizer { return optim.NewSGD(p, optim.SGDConfig{LR: 0.1, Momentum: 0.5}, cpu.New()) },
		"adam": func(p []*tensor.RawTensor) optim.Optimizer { return optim.NewAdam(p, optim.AdamConfig{LR: 0.05}) },
	} {
		t.Run(name, func(t *testing.T) {
			backend := autodiff.New(cpu.New())
			x, y := tensor.Scalar(0), tensor.Scalar(0)
			opt := newOpt([]*tensor.RawTensor{x, y})

			for range 2000 {
				backend.Tape().Clear()
				backend.Tape().StartRecording()
				dx := backend.AddScalar(x, -3)
				dy := backend.AddScalar(y, 1)
				loss := backend.Add(backend.Mul(dx, dx), backend.Mul(dy, dy))
				opt.Step(autodiff.Backward(loss, backend))
			}

			assert.InDelta(t, 3.0, x.Item(), 1e-2)
			assert.InDelta(t, -1.0, y.Item(), 1e-2)
			assert.False(t, math.IsNaN(x.Item()))
		})
	}
}
