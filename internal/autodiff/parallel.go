package autodiff

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/born-ml/micrograd/internal/parallel"
)

// BackwardParallel computes the same gradients as Backward using a pool of
// cfg.NumWorkers goroutines.
//
// Every traced node carries a count of the consumer edges that still owe it
// a contribution. A node's local rule runs only once that count reaches zero,
// so it always reads a complete gradient. Writes into an operand are
// serialized by a per-node mutex.
//
// Small graphs (fewer than cfg.MinChunkSize nodes) and disabled configs run
// the sequential engine. Results match Backward up to the order of float
// additions at shared nodes.
func BackwardParallel(ctx context.Context, root *Value, cfg parallel.Config, logger *zap.Logger) error {
	if root == nil {
		panic("backward: nil root")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("backward: %w", err)
	}

	tape := Record(root)
	n := tape.Len()

	if !cfg.Enabled || cfg.NumWorkers < 2 || n < cfg.MinChunkSize {
		logger.Debug("backward: sequential",
			zap.Int("nodes", n),
			zap.Bool("parallel_enabled", cfg.Enabled),
			zap.Int("min_nodes", cfg.MinChunkSize))
		tape.Backward()
		return nil
	}

	nodes := tape.nodes
	index := make(map[*Value]int, n)
	for i, v := range nodes {
		index[v] = i
	}

	// pending[i] counts consumer edges into nodes[i]. Only the root starts at zero.
	pending := make([]atomic.Int32, n)
	for _, v := range nodes {
		for _, in := range v.inputs {
			pending[index[in]].Add(1)
		}
	}

	locks := make([]sync.Mutex, n)
	ready := make(chan int, n) // each node is sent exactly once
	var remaining atomic.Int64
	remaining.Store(int64(n))

	logger.Debug("backward: parallel",
		zap.Int("nodes", n),
		zap.Int("workers", cfg.NumWorkers))

	root.grad = 1
	ready <- n - 1

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.NumWorkers; w++ {
		g.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return gctx.Err()
				case i, ok := <-ready:
					if !ok {
						return nil
					}
					propagate(nodes[i], func(in *Value, grad float64) {
						k := index[in]
						locks[k].Lock()
						in.grad += grad
						locks[k].Unlock()
						if pending[k].Add(-1) == 0 {
							ready <- k
						}
					})
					if remaining.Add(-1) == 0 {
						close(ready)
					}
				}
			}
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("backward: %w", err)
	}
	return nil
}
