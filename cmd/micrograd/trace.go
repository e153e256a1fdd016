package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/born-ml/micrograd/internal/autodiff"
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "List the nodes and edges of the demo graph",
	Long: `trace prints the data a diagram renderer needs: one line per node
(name, operation, value, gradient) followed by one line per operand -> consumer edge.`,
	RunE: runTrace,
}

func runTrace(cmd *cobra.Command, args []string) error {
	root := buildScenario(cfg.Scenario)
	if err := runBackward(cmd.Context(), root); err != nil {
		return err
	}

	g := autodiff.Trace(root)
	logger.Debug("traced graph", zap.Int("nodes", g.Len()), zap.Int("edges", len(g.Edges)))

	out := cmd.OutOrStdout()
	if err := writeNodes(out, g.Nodes); err != nil {
		return err
	}
	fmt.Fprintln(out)
	for _, e := range g.Edges {
		fmt.Fprintf(out, "%s -> %s\n", displayName(e.From), displayName(e.To))
	}
	return nil
}
