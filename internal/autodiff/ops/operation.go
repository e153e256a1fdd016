// Package ops defines the local derivative rules for scalar automatic differentiation.
//
// Each operation implements the Operation interface, which provides:
//   - Forward pass: the scalar result computed from operand values
//   - Backward pass: the gradient contribution for each operand given the output gradient
//
// Supported operations:
//   - AddOp: addition (d(a+b)/da = 1, d(a+b)/db = 1)
//   - SubOp: subtraction (d(a-b)/da = 1, d(a-b)/db = -1)
//   - MulOp: multiplication (d(a*b)/da = b, d(a*b)/db = a)
//   - TanhOp: hyperbolic tangent (d(tanh(x))/dx = 1 - tanh²(x))
package ops

// Kind identifies the operation that produced a value.
type Kind uint8

// Operation kinds. None marks a leaf (user input or constant).
const (
	None Kind = iota
	Add
	Sub
	Mul
	Tanh
)

// String returns the label used when a node is handed to a diagram sink.
func (k Kind) String() string {
	switch k {
	case None:
		return ""
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Tanh:
		return "tanh"
	default:
		return "unknown"
	}
}

// Operation represents a differentiable scalar operation in the computation graph.
// Operations are stateless: operand and output values are passed in, so a single
// instance serves every node of its kind.
type Operation interface {
	// Kind reports which operation this is.
	Kind() Kind

	// Arity is the exact number of operands the operation accepts.
	Arity() int

	// Forward computes the output value from operand values.
	Forward(inputs []float64) float64

	// Backward computes gradient contributions for each operand, in operand order,
	// given the gradient flowing into the output.
	//
	// Example for AddOp:
	//   inputs: [a, b]
	//   outputGrad: dL/d(a+b)
	//   returns: [dL/d(a+b), dL/d(a+b)] (gradient flows equally to both inputs)
	Backward(outputGrad, output float64, inputs []float64) []float64
}

var registry = map[Kind]Operation{
	Add:  AddOp{},
	Sub:  SubOp{},
	Mul:  MulOp{},
	Tanh: TanhOp{},
}

// ForKind returns the operation for k, or nil for None and unknown kinds.
func ForKind(k Kind) Operation {
	return registry[k]
}
