package autodiff_test

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/parallel"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// randomGraph builds a reproducible DAG with many shared nodes. Values are
// kept bounded by squashing large intermediates through tanh.
func randomGraph(seed int64, numLeaves, numOps int) (*autodiff.Value, []*autodiff.Value) {
	rng := rand.New(rand.NewSource(seed))

	leaves := make([]*autodiff.Value, numLeaves)
	pool := make([]*autodiff.Value, 0, numLeaves+numOps)
	for i := range leaves {
		leaves[i] = autodiff.Leaf(rng.Float64()*2 - 1)
		pool = append(pool, leaves[i])
	}

	for i := 0; i < numOps; i++ {
		a := pool[rng.Intn(len(pool))]
		b := pool[rng.Intn(len(pool))]
		var v *autodiff.Value
		switch rng.Intn(4) {
		case 0:
			v = autodiff.Add(a, b)
		case 1:
			v = autodiff.Sub(a, b)
		case 2:
			v = autodiff.Mul(a, b)
		default:
			v = autodiff.Tanh(a)
		}
		if math.Abs(v.Data()) > 4 {
			v = autodiff.Tanh(v)
		}
		pool = append(pool, v)
	}

	root := pool[len(pool)-1]
	for _, v := range pool[len(pool)-32:] {
		root = autodiff.Add(root, v)
	}
	return root, leaves
}

func parallelConfig() parallel.Config {
	return parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}
}

// TestBackwardParallel_MatchesSequential tests the parallel engine against Backward.
func TestBackwardParallel_MatchesSequential(t *testing.T) {
	for _, seed := range []int64{1, 7, 42} {
		seqRoot, seqLeaves := randomGraph(seed, 16, 400)
		parRoot, parLeaves := randomGraph(seed, 16, 400)
		require.Equal(t, seqRoot.Data(), parRoot.Data())

		autodiff.Backward(seqRoot)
		err := autodiff.BackwardParallel(context.Background(), parRoot, parallelConfig(), zaptest.NewLogger(t))
		require.NoError(t, err)

		for i := range seqLeaves {
			want, got := seqLeaves[i].Grad(), parLeaves[i].Grad()
			assert.InDelta(t, want, got, 1e-9*math.Max(1, math.Abs(want)), "seed %d leaf %d", seed, i)
		}
	}
}

// TestBackwardParallel_Diamond tests the join barrier on a shared leaf.
func TestBackwardParallel_Diamond(t *testing.T) {
	x := autodiff.Leaf(3)
	a, b := autodiff.Leaf(4), autodiff.Leaf(5)
	y := autodiff.Add(autodiff.Mul(x, a), autodiff.Mul(x, b))
	sq := autodiff.Mul(y, y)

	err := autodiff.BackwardParallel(context.Background(), sq, parallelConfig(), nil)
	require.NoError(t, err)

	// d(y²)/dx = 2y * (a + b)
	assert.Equal(t, 2*y.Data()*(a.Data()+b.Data()), x.Grad())
	assert.Equal(t, 2*y.Data(), y.Grad())
}

// TestBackwardParallel_SequentialFallback tests that small graphs use Backward.
func TestBackwardParallel_SequentialFallback(t *testing.T) {
	a, b := autodiff.Leaf(2), autodiff.Leaf(3)
	y := autodiff.Mul(a, b)

	cfg := parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1000}
	require.NoError(t, autodiff.BackwardParallel(context.Background(), y, cfg, zaptest.NewLogger(t)))
	assert.Equal(t, 3.0, a.Grad())

	autodiff.ZeroGrad(y)
	require.NoError(t, autodiff.BackwardParallel(context.Background(), y, parallel.Config{}, nil))
	assert.Equal(t, 2.0, b.Grad())
}

// TestBackwardParallel_Leaf tests a root with no operands.
func TestBackwardParallel_Leaf(t *testing.T) {
	x := autodiff.Leaf(5)
	require.NoError(t, autodiff.BackwardParallel(context.Background(), x, parallelConfig(), nil))
	assert.Equal(t, 1.0, x.Grad())
}

// TestBackwardParallel_Canceled tests that a canceled context is reported.
func TestBackwardParallel_Canceled(t *testing.T) {
	root, leaves := randomGraph(3, 8, 100)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := autodiff.BackwardParallel(ctx, root, parallelConfig(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0.0, root.Grad())
	for _, l := range leaves {
		assert.Equal(t, 0.0, l.Grad())
	}
}

// TestBackwardParallel_NilRootPanics tests fail-fast on a nil root.
func TestBackwardParallel_NilRootPanics(t *testing.T) {
	assert.Panics(t, func() {
		_ = autodiff.BackwardParallel(context.Background(), nil, parallelConfig(), nil)
	})
}

func BenchmarkBackward(b *testing.B) {
	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			root, _ := randomGraph(1, 64, 5000)
			autodiff.Backward(root)
		}
	})

	b.Run("parallel", func(b *testing.B) {
		cfg := parallel.DefaultConfig()
		for i := 0; i < b.N; i++ {
			root, _ := randomGraph(1, 64, 5000)
			_ = autodiff.BackwardParallel(context.Background(), root, cfg, nil)
		}
	})
}
