package ops

// MulOp represents scalar multiplication: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
type MulOp struct{}

// Kind returns Mul.
func (MulOp) Kind() Kind { return Mul }

// Arity returns 2.
func (MulOp) Arity() int { return 2 }

// Forward returns a * b.
func (op MulOp) Forward(inputs []float64) float64 {
	checkArity(op, inputs)
	return inputs[0] * inputs[1]
}

// Backward computes input gradients for multiplication.
func (op MulOp) Backward(outputGrad, _ float64, inputs []float64) []float64 {
	checkArity(op, inputs)
	a, b := inputs[0], inputs[1]
	return []float64{outputGrad * b, outputGrad * a}
}
