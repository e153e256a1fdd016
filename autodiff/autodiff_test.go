package autodiff_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/micrograd/autodiff"
)

func TestFacade_EndToEnd(t *testing.T) {
	a := autodiff.Named("a", 2)
	b := autodiff.Named("b", -3)
	y := autodiff.Add(autodiff.Mul(a, b), autodiff.Sub(a, b))

	autodiff.Backward(y)

	// y = ab + a - b
	assert.Equal(t, -1.0, y.Data())
	assert.Equal(t, b.Data()+1, a.Grad())
	assert.Equal(t, a.Data()-1, b.Grad())
	assert.Equal(t, autodiff.OpAdd, y.Op())

	g := autodiff.Trace(y)
	assert.Equal(t, 5, g.Len())
	assert.Len(t, autodiff.TopoOrder(y), 5)
	assert.Equal(t, 3, autodiff.Record(y).NumOps())

	autodiff.ZeroGrad(y)
	require.NoError(t, autodiff.BackwardParallel(context.Background(), y, autodiff.DefaultParallelConfig(), nil))
	assert.Equal(t, -2.0, a.Grad())
}

func ExampleBackward() {
	x := autodiff.Named("x", 0)
	y := autodiff.Tanh(x)

	autodiff.Backward(y)

	fmt.Println(y.Data(), x.Grad())
	// Output: 0 1
}

func ExampleTrace() {
	x := autodiff.Named("x", 3)
	y := autodiff.Mul(x, autodiff.Named("w", 2)).WithLabel("y")

	g := autodiff.Trace(y)
	for _, e := range g.Edges {
		fmt.Printf("%s -> %s%s\n", e.From.Label(), e.To.Label(), e.To.Op())
	}
	// Output:
	// x -> y*
	// w -> y*
}
