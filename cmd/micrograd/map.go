package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/micrograd/internal/parallel"
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Apply f(x) = 3x² - 4x + 2 to the 3x3 matrix 1..9",
	RunE:  runMap,
}

func poly(x float64) float64 {
	return 3*x*x - 4*x + 2
}

// mapGrid fills a rows×cols matrix with 1, 2, ... in row-major order and
// applies f to every cell.
func mapGrid(rows, cols int, f func(float64) float64, pc parallel.Config) [][]float64 {
	m := make([][]float64, rows)
	for r := range m {
		m[r] = make([]float64, cols)
	}
	parallel.ForGrid(rows, cols, func(r, c int) {
		m[r][c] = f(float64(r*cols + c + 1))
	}, pc)
	return m
}

func runMap(cmd *cobra.Command, args []string) error {
	m := mapGrid(3, 3, poly, cfg.Parallel)

	out := cmd.OutOrStdout()
	for _, row := range m {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprintf("%g", v)
		}
		fmt.Fprintf(out, "[%s]\n", strings.Join(cells, ", "))
	}
	return nil
}
