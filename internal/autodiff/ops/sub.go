package ops

// SubOp represents scalar subtraction: output = a - b.
//
// Backward pass:
//   - d(a-b)/da = 1, so grad_a = outputGrad
//   - d(a-b)/db = -1, so grad_b = -outputGrad
type SubOp struct{}

// Kind returns Sub.
func (SubOp) Kind() Kind { return Sub }

// Arity returns 2.
func (SubOp) Arity() int { return 2 }

// Forward returns a - b.
func (op SubOp) Forward(inputs []float64) float64 {
	checkArity(op, inputs)
	return inputs[0] - inputs[1]
}

// Backward computes input gradients for subtraction.
func (op SubOp) Backward(outputGrad, _ float64, inputs []float64) []float64 {
	checkArity(op, inputs)
	return []float64{outputGrad, -outputGrad}
}
