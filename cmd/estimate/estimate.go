package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kegliz/qre/qc/estimator"
	"github.com/kegliz/qre/qc/factorybuilder"
	"github.com/kegliz/qre/qc/overheadmodel"
	"github.com/kegliz/qre/qc/protocol"
)

type estimationResult = estimator.Result[*protocol.SuperconductingQubit, *factorybuilder.DistillationFactory, overheadmodel.LogicalCounts]

var estimateFlags algorithmFlags

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Find one feasible physical layout for an algorithm",
	RunE: func(cmd *cobra.Command, args []string) error {
		est, err := estimateFlags.buildEstimation()
		if err != nil {
			return err
		}

		result, err := est.Estimate()
		if err != nil {
			return err
		}

		printResult(result)
		return nil
	},
}

func init() {
	addAlgorithmFlags(estimateCmd, &estimateFlags)
}

func printResult(r *estimationResult) {
	_, hasFactory := r.Factory()
	fmt.Printf("code distance:              %d\n", r.LogicalQubit().CodeDistance())
	fmt.Printf("physical qubits per qubit:  %d\n", r.LogicalQubit().PhysicalQubits())
	fmt.Printf("logical cycle time (ns):    %d\n", r.LogicalQubit().LogicalCycleTime())
	fmt.Printf("num cycles:                 %d\n", r.NumCycles())
	fmt.Printf("uses magic-state factory:   %t\n", hasFactory)
	if hasFactory {
		fmt.Printf("num factories:              %d\n", r.NumFactories())
		fmt.Printf("num factory runs:           %d\n", r.NumFactoryRuns())
	}
	fmt.Printf("physical qubits (algorithm):%d\n", r.PhysicalQubitsForAlgorithm())
	fmt.Printf("physical qubits (factories):%d\n", r.PhysicalQubitsForFactories())
	fmt.Printf("physical qubits (total):    %d\n", r.PhysicalQubits())
	fmt.Printf("runtime (ns):               %d\n", r.Runtime())
	fmt.Printf("rQOPS:                      %d\n", r.RQOPS())
}
