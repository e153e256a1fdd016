// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over scalars.
//
// Arithmetic on Values builds a computation graph. Backward then propagates
// derivatives from an output to every node it depends on.
//
// Example:
//
//	import "github.com/born-ml/micrograd/autodiff"
//
//	func main() {
//	    a := autodiff.Named("a", 2)
//	    b := autodiff.Named("b", -3)
//	    y := autodiff.Tanh(autodiff.Mul(a, b))
//
//	    autodiff.Backward(y)
//	    fmt.Println(a.Grad(), b.Grad())
//	}
package autodiff

import (
	"context"

	"go.uber.org/zap"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/autodiff/ops"
	"github.com/born-ml/micrograd/internal/parallel"
)

// Value is a node in the computation graph.
type Value = autodiff.Value

// Graph is the result of Trace: reachable nodes and operand→consumer edges.
type Graph = autodiff.Graph

// Edge connects an operand to the node consuming it.
type Edge = autodiff.Edge

// GradientTape holds nodes in topological order for a backward pass.
type GradientTape = autodiff.GradientTape

// Kind identifies the operation that produced a Value.
type Kind = ops.Kind

// Operation kinds.
const (
	OpNone = ops.None
	OpAdd  = ops.Add
	OpSub  = ops.Sub
	OpMul  = ops.Mul
	OpTanh = ops.Tanh
)

// ParallelConfig controls BackwardParallel.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns defaults based on CPU count.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// Leaf creates an input or constant node.
func Leaf(data float64) *Value {
	return autodiff.Leaf(data)
}

// Named creates a labeled leaf.
func Named(label string, data float64) *Value {
	return autodiff.Named(label, data)
}

// Add returns a + b.
func Add(a, b *Value) *Value {
	return autodiff.Add(a, b)
}

// Sub returns a - b.
func Sub(a, b *Value) *Value {
	return autodiff.Sub(a, b)
}

// Mul returns a * b.
func Mul(a, b *Value) *Value {
	return autodiff.Mul(a, b)
}

// Tanh returns tanh(a).
func Tanh(a *Value) *Value {
	return autodiff.Tanh(a)
}

// Trace returns every node reachable from root and the edges between them.
func Trace(root *Value) Graph {
	return autodiff.Trace(root)
}

// Record builds a gradient tape for root.
func Record(root *Value) *GradientTape {
	return autodiff.Record(root)
}

// Backward stores d(root)/d(v) in every node v reachable from root.
func Backward(root *Value) {
	autodiff.Backward(root)
}

// BackwardParallel is Backward spread over a worker pool.
func BackwardParallel(ctx context.Context, root *Value, cfg ParallelConfig, logger *zap.Logger) error {
	return autodiff.BackwardParallel(ctx, root, cfg, logger)
}

// TopoOrder returns reachable nodes with consumers before operands.
func TopoOrder(root *Value) []*Value {
	return autodiff.TopoOrder(root)
}

// ZeroGrad resets every reachable gradient to zero.
func ZeroGrad(root *Value) {
	autodiff.ZeroGrad(root)
}
