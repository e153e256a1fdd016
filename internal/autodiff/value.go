package autodiff

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Value is a scalar node in the computation graph.
//
// The forward value, the producing operation and the operands are fixed at
// construction. Only the gradient changes, and only through the backward
// engine. Nodes are shared: one Value may be an operand of many consumers,
// and graph membership is always decided by pointer identity.
type Value struct {
	data   float64
	grad   float64
	op     ops.Operation // nil for leaves
	inputs []*Value      // operands in creation order
	id     uuid.UUID
	label  string
}

func newValue(data float64, op ops.Operation, inputs ...*Value) *Value {
	return &Value{
		data:   data,
		op:     op,
		inputs: inputs,
		id:     uuid.New(),
	}
}

// Data returns the forward value.
func (v *Value) Data() float64 {
	return v.data
}

// Grad returns the accumulated gradient d(root)/d(v) from the most recent
// backward pass.
func (v *Value) Grad() float64 {
	return v.grad
}

// Op returns the kind of operation that produced v (ops.None for leaves).
func (v *Value) Op() ops.Kind {
	if v.op == nil {
		return ops.None
	}
	return v.op.Kind()
}

// IsLeaf reports whether v was created by Leaf or Named.
func (v *Value) IsLeaf() bool {
	return v.op == nil
}

// Inputs returns a copy of the operand list.
func (v *Value) Inputs() []*Value {
	out := make([]*Value, len(v.inputs))
	copy(out, v.inputs)
	return out
}

// ID returns the node's unique identifier.
func (v *Value) ID() uuid.UUID {
	return v.id
}

// Label returns the display name, or "" if none was set.
func (v *Value) Label() string {
	return v.label
}

// WithLabel sets the display name and returns v.
// Labels are diagram metadata and take no part in graph identity.
func (v *Value) WithLabel(label string) *Value {
	v.label = label
	return v
}

// String formats v for debugging.
func (v *Value) String() string {
	name := v.label
	if name == "" {
		name = v.id.String()[:8]
	}
	if v.op == nil {
		return fmt.Sprintf("Value(%s data=%g grad=%g)", name, v.data, v.grad)
	}
	return fmt.Sprintf("Value(%s %s data=%g grad=%g)", name, v.op.Kind(), v.data, v.grad)
}

// operandData collects the forward values of v's operands.
func (v *Value) operandData() []float64 {
	data := make([]float64, len(v.inputs))
	for i, in := range v.inputs {
		data[i] = in.data
	}
	return data
}
