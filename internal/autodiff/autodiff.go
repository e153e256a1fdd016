// Package autodiff implements reverse-mode automatic differentiation over scalars.
//
// Architecture:
//   - Value: a node holding a forward value, an accumulated gradient, the
//     operation that produced it and its operands
//   - Builders (Add, Sub, Mul, Tanh): create new nodes wired to existing ones
//   - Trace: walks the graph from an output and reports nodes and edges once each
//   - Tape: records a topological order; Backward walks it in reverse
//
// Usage:
//
//	x := autodiff.Named("x", 2.0)
//	y := autodiff.Mul(x, x).Add(autodiff.Leaf(1)) // y = x² + 1
//	autodiff.Backward(y)
//	fmt.Println(x.Grad()) // dy/dx = 2x = 4.0
package autodiff

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Leaf creates an input or constant node.
func Leaf(data float64) *Value {
	return newValue(data, nil)
}

// Named creates a labeled leaf.
func Named(label string, data float64) *Value {
	return Leaf(data).WithLabel(label)
}

// Add returns a node for a + b.
func Add(a, b *Value) *Value {
	return apply(ops.AddOp{}, a, b)
}

// Sub returns a node for a - b.
func Sub(a, b *Value) *Value {
	return apply(ops.SubOp{}, a, b)
}

// Mul returns a node for a * b.
func Mul(a, b *Value) *Value {
	return apply(ops.MulOp{}, a, b)
}

// Tanh returns a node for tanh(a).
func Tanh(a *Value) *Value {
	return apply(ops.TanhOp{}, a)
}

// Add performs v + other.
func (v *Value) Add(other *Value) *Value { return Add(v, other) }

// Sub performs v - other.
func (v *Value) Sub(other *Value) *Value { return Sub(v, other) }

// Mul performs v * other.
func (v *Value) Mul(other *Value) *Value { return Mul(v, other) }

// Tanh applies the hyperbolic tangent to v.
func (v *Value) Tanh() *Value { return Tanh(v) }

// apply runs the forward pass of op and records the result node.
// Operands are never mutated.
func apply(op ops.Operation, inputs ...*Value) *Value {
	data := make([]float64, len(inputs))
	for i, in := range inputs {
		if in == nil {
			panic(fmt.Sprintf("autodiff: nil operand %d to %s", i, op.Kind()))
		}
		data[i] = in.data
	}
	return newValue(op.Forward(data), op, inputs...)
}
