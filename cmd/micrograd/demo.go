package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/config"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Evaluate L = tanh((a + b - c) * f) and print every gradient",
	RunE:  runDemo,
}

// buildScenario wires L = tanh((a + b - c) * f) from the configured leaves.
func buildScenario(sc config.ScenarioConfig) *autodiff.Value {
	a := autodiff.Named("a", sc.A)
	b := autodiff.Named("b", sc.B)
	c := autodiff.Named("c", sc.C)
	f := autodiff.Named("f", sc.F)

	e := autodiff.Add(a, b).WithLabel("e")
	d := autodiff.Sub(e, c).WithLabel("d")
	df := autodiff.Mul(d, f).WithLabel("d*f")
	return autodiff.Tanh(df).WithLabel("L")
}

// runBackward picks the engine selected by --parallel.
func runBackward(ctx context.Context, root *autodiff.Value) error {
	if !useWorkers {
		autodiff.Backward(root)
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return autodiff.BackwardParallel(ctx, root, cfg.Parallel, logger)
}

func runDemo(cmd *cobra.Command, args []string) error {
	root := buildScenario(cfg.Scenario)

	if err := runBackward(cmd.Context(), root); err != nil {
		return err
	}
	logger.Info("backward complete",
		zap.Float64("output", root.Data()),
		zap.Int("nodes", autodiff.Trace(root).Len()))

	return writeNodes(cmd.OutOrStdout(), autodiff.TopoOrder(root))
}

func writeNodes(out io.Writer, nodes []*autodiff.Value) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NODE\tOP\tDATA\tGRAD")
	for _, v := range nodes {
		fmt.Fprintf(w, "%s\t%s\t%.6g\t%.6g\n", displayName(v), v.Op(), v.Data(), v.Grad())
	}
	return w.Flush()
}

func displayName(v *autodiff.Value) string {
	if v.Label() != "" {
		return v.Label()
	}
	return v.ID().String()[:8]
}
