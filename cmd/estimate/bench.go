package main

import (
	"os"
	"testing"

	"github.com/spf13/cobra"

	"github.com/kegliz/qre/qc/estimator/bench"
	"github.com/kegliz/qre/qc/estimator/registry"
	"github.com/kegliz/qre/qc/overheadmodel"
)

var benchFlags algorithmFlags

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the estimator search itself across every registered backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		counts := overheadmodel.LogicalCounts{
			Qubits:        benchFlags.qubits,
			TCount:        benchFlags.tCount,
			RotationCount: benchFlags.rotationCount,
			RotationDepth: benchFlags.rotationDepth,
			Depth:         benchFlags.depth,
		}

		reporter := bench.NewReporter()
		b := &testing.B{}
		for _, name := range registry.ListBackends() {
			result := bench.RunSingle(b, bench.Config{
				Backend:           name,
				CliffordErrorRate: benchFlags.cliffordErrorRate,
				Counts:            counts,
				BudgetLogical:     benchFlags.errorBudgetLogical,
				BudgetMagicStates: benchFlags.errorBudgetMagicStates,
				BudgetRotations:   benchFlags.errorBudgetRotations,
			})
			reporter.Add(result)
		}

		reporter.PrintSummary(os.Stdout)
		return nil
	},
}

func init() {
	addAlgorithmFlags(benchCmd, &benchFlags)
	rootCmd.AddCommand(benchCmd)
}
