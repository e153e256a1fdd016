package ops

import "math"

// TanhOp represents the hyperbolic tangent activation.
//
// math.Tanh saturates to ±1 for large |x| instead of overflowing the way
// (e^{2x}-1)/(e^{2x}+1) does.
type TanhOp struct{}

// Kind returns Tanh.
func (TanhOp) Kind() Kind { return Tanh }

// Arity returns 1.
func (TanhOp) Arity() int { return 1 }

// Forward returns tanh(x).
func (op TanhOp) Forward(inputs []float64) float64 {
	checkArity(op, inputs)
	return math.Tanh(inputs[0])
}

// Backward computes the gradient for tanh.
//
// For tanh(x):
// d(tanh(x))/dx = 1 - tanh²(x)
//
// Since we have the output tanh(x) already computed:
// grad_input = grad_output * (1 - output²).
func (op TanhOp) Backward(outputGrad, output float64, inputs []float64) []float64 {
	checkArity(op, inputs)
	return []float64{outputGrad * (1 - output*output)}
}
