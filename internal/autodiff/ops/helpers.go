package ops

import "fmt"

// checkArity panics when an operation receives the wrong number of operands.
// A mismatch can only come from a malformed node, which is a programming error.
func checkArity(op Operation, inputs []float64) {
	if len(inputs) != op.Arity() {
		panic(fmt.Sprintf("ops: %s expects %d operand(s), got %d", opName(op.Kind()), op.Arity(), len(inputs)))
	}
}

func opName(k Kind) string {
	switch k {
	case Add:
		return "add"
	case Sub:
		return "sub"
	case Mul:
		return "mul"
	case Tanh:
		return "tanh"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}
