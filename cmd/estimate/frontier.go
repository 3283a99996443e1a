package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var frontierFlags algorithmFlags

var frontierCmd = &cobra.Command{
	Use:   "frontier",
	Short: "Sweep the runtime-vs-physical-qubits Pareto frontier for an algorithm",
	RunE: func(cmd *cobra.Command, args []string) error {
		est, err := frontierFlags.buildEstimation()
		if err != nil {
			return err
		}

		points, err := est.BuildFrontier()
		if err != nil {
			return err
		}

		fmt.Printf("%-12s %-20s %-18s\n", "distance", "runtime_ns", "physical_qubits")
		for _, r := range points {
			fmt.Printf("%-12d %-20d %-18d\n", r.LogicalQubit().CodeDistance(), r.Runtime(), r.PhysicalQubits())
		}
		return nil
	},
}

func init() {
	addAlgorithmFlags(frontierCmd, &frontierFlags)
}
