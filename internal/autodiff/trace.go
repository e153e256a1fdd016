package autodiff

// Edge connects an operand to the node that consumes it.
type Edge struct {
	From *Value // operand
	To   *Value // consumer
}

// Graph is the set of nodes reachable from a root and the edges between them.
// Nodes appear in breadth-first discovery order starting at the root.
type Graph struct {
	Nodes []*Value
	Edges []Edge
}

// Len returns the number of nodes.
func (g Graph) Len() int {
	return len(g.Nodes)
}

// Contains reports whether v is one of the traced nodes.
func (g Graph) Contains(v *Value) bool {
	for _, n := range g.Nodes {
		if n == v {
			return true
		}
	}
	return false
}

// Trace walks the graph breadth-first from root and returns every reachable
// node and every operand→consumer edge exactly once.
func Trace(root *Value) Graph {
	if root == nil {
		return Graph{}
	}

	var g Graph
	visited := map[*Value]bool{root: true}
	seenEdges := make(map[Edge]bool)
	queue := []*Value{root}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		g.Nodes = append(g.Nodes, v)

		for _, in := range v.inputs {
			e := Edge{From: in, To: v}
			if !seenEdges[e] {
				seenEdges[e] = true
				g.Edges = append(g.Edges, e)
			}
			if !visited[in] {
				visited[in] = true
				queue = append(queue, in)
			}
		}
	}

	return g
}
