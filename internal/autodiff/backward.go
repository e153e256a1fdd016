package autodiff

// Backward computes d(root)/d(v) for every node v reachable from root and
// stores it in v's gradient.
//
// Gradients accumulate: call ZeroGrad first when reusing a graph that has
// already been through a backward pass.
//
// Example:
//
//	a, b := Leaf(2), Leaf(3)
//	y := Mul(a, b)
//	Backward(y)
//	a.Grad() // 3
//	b.Grad() // 2
func Backward(root *Value) {
	if root == nil {
		panic("backward: nil root")
	}
	Record(root).Backward()
}

// TopoOrder returns the nodes reachable from root with every consumer before
// its operands (root first). This is the order Backward processes nodes in.
func TopoOrder(root *Value) []*Value {
	nodes := Record(root).nodes
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	return nodes
}

// ZeroGrad resets the gradient of every node reachable from root.
func ZeroGrad(root *Value) {
	for _, v := range Record(root).nodes {
		v.grad = 0
	}
}
