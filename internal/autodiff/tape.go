package autodiff

import "fmt"

// GradientTape holds the nodes reachable from a root in topological order
// (operands before consumers, root last). Walking it in reverse visits every
// consumer before any of its operands, which is what gradient accumulation
// needs.
//
// Usage:
//
//	tape := Record(loss)
//	tape.Backward()
type GradientTape struct {
	nodes []*Value // Recorded nodes (operands first)
}

// Record builds the tape for root with an iterative post-order walk over
// operand edges. Each node is recorded once, however many paths reach it.
func Record(root *Value) *GradientTape {
	if root == nil {
		return &GradientTape{}
	}

	type frame struct {
		v    *Value
		next int // next operand to descend into
	}

	nodes := make([]*Value, 0, 64) // Pre-allocate for common case
	visited := map[*Value]bool{root: true}
	stack := []frame{{v: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.v.inputs) {
			in := top.v.inputs[top.next]
			top.next++
			if !visited[in] {
				visited[in] = true
				stack = append(stack, frame{v: in})
			}
			continue
		}
		nodes = append(nodes, top.v)
		stack = stack[:len(stack)-1]
	}

	return &GradientTape{nodes: nodes}
}

// Nodes returns the recorded nodes, operands first.
func (t *GradientTape) Nodes() []*Value {
	out := make([]*Value, len(t.nodes))
	copy(out, t.nodes)
	return out
}

// Root returns the node the tape was recorded from, or nil for an empty tape.
func (t *GradientTape) Root() *Value {
	if len(t.nodes) == 0 {
		return nil
	}
	return t.nodes[len(t.nodes)-1]
}

// NumOps returns the number of recorded non-leaf nodes.
func (t *GradientTape) NumOps() int {
	n := 0
	for _, v := range t.nodes {
		if v.op != nil {
			n++
		}
	}
	return n
}

// Len returns the number of recorded nodes.
func (t *GradientTape) Len() int {
	return len(t.nodes)
}

// Clear resets the tape, removing all recorded nodes.
func (t *GradientTape) Clear() {
	t.nodes = t.nodes[:0]
}

// Backward seeds the root gradient with 1 and walks the tape in reverse.
//
// Algorithm:
//  1. Set d(root)/d(root) = 1
//  2. Walk nodes from the root towards the leaves
//  3. For each node, compute operand gradients using the chain rule
//  4. Accumulate (never assign) into operands, so shared nodes receive the
//     sum over every path
func (t *GradientTape) Backward() {
	if len(t.nodes) == 0 {
		return
	}

	t.Root().grad = 1

	for i := len(t.nodes) - 1; i >= 0; i-- {
		propagate(t.nodes[i], func(in *Value, g float64) {
			in.grad += g
		})
	}
}

// propagate applies v's local rule and hands each operand its contribution.
// Leaves have nothing to propagate.
func propagate(v *Value, accumulate func(in *Value, g float64)) {
	if v.op == nil {
		if len(v.inputs) != 0 {
			panic(fmt.Sprintf("autodiff: leaf node has %d operand(s)", len(v.inputs)))
		}
		return
	}

	grads := v.op.Backward(v.grad, v.data, v.operandData())
	for j, in := range v.inputs {
		accumulate(in, grads[j])
	}
}
