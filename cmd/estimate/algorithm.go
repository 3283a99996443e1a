package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kegliz/qre/qc/estimator"
	"github.com/kegliz/qre/qc/estimator/modeling"
	"github.com/kegliz/qre/qc/estimator/registry"
	"github.com/kegliz/qre/qc/factorybuilder"
	"github.com/kegliz/qre/qc/overheadmodel"
	"github.com/kegliz/qre/qc/protocol"
)

// algorithmFlags holds the CLI flags shared by the estimate and frontier
// subcommands: which backend to target and what the algorithm costs.
type algorithmFlags struct {
	protocol          string
	cliffordErrorRate float64

	qubits        uint64
	tCount        uint64
	rotationCount uint64
	rotationDepth uint64
	depth         uint64

	errorBudgetLogical     float64
	errorBudgetMagicStates float64
	errorBudgetRotations   float64

	logicalDepthFactor float64
	maxFactories       uint64
	maxDurationNs      uint64
	maxPhysicalQubits  uint64
}

func addAlgorithmFlags(cmd *cobra.Command, f *algorithmFlags) {
	cmd.Flags().StringVar(&f.protocol, "protocol", "surface-code", "error-correction protocol backend")
	cmd.Flags().Float64Var(&f.cliffordErrorRate, "clifford-error-rate", 1e-4, "physical Clifford gate error rate")

	cmd.Flags().Uint64Var(&f.qubits, "qubits", 0, "number of logical qubits the algorithm needs")
	cmd.Flags().Uint64Var(&f.tCount, "t-count", 0, "number of T-gates the algorithm's circuit consumes directly")
	cmd.Flags().Uint64Var(&f.rotationCount, "rotation-count", 0, "number of arbitrary-angle rotations in the circuit")
	cmd.Flags().Uint64Var(&f.rotationDepth, "rotation-depth", 0, "logical cycles the rotations alone would need if synthesized serially")
	cmd.Flags().Uint64Var(&f.depth, "depth", 0, "logical cycles the algorithm's circuit takes")

	cmd.Flags().Float64Var(&f.errorBudgetLogical, "budget-logical", 1.0/3, "error budget fraction spent on logical qubit errors")
	cmd.Flags().Float64Var(&f.errorBudgetMagicStates, "budget-magic-states", 1.0/3, "error budget fraction spent on magic-state errors")
	cmd.Flags().Float64Var(&f.errorBudgetRotations, "budget-rotations", 1.0/3, "error budget fraction spent on rotation synthesis errors")

	cmd.Flags().Float64Var(&f.logicalDepthFactor, "logical-depth-factor", 0, "scale the algorithm's logical depth by this factor (0 disables)")
	cmd.Flags().Uint64Var(&f.maxFactories, "max-factories", 0, "cap the number of parallel magic-state factories (0 disables)")
	cmd.Flags().Uint64Var(&f.maxDurationNs, "max-duration-ns", 0, "require the runtime to stay within this many nanoseconds (0 disables)")
	cmd.Flags().Uint64Var(&f.maxPhysicalQubits, "max-physical-qubits", 0, "require the physical qubit count to stay within this bound (0 disables)")
}

func (f *algorithmFlags) logicalCounts() overheadmodel.LogicalCounts {
	return overheadmodel.LogicalCounts{
		Qubits:        f.qubits,
		TCount:        f.tCount,
		RotationCount: f.rotationCount,
		RotationDepth: f.rotationDepth,
		Depth:         f.depth,
	}
}

func (f *algorithmFlags) buildEstimation() (*estimator.Estimation[*protocol.SuperconductingQubit, *factorybuilder.DistillationFactory, overheadmodel.LogicalCounts], error) {
	backend, err := registry.Create(f.protocol, f.cliffordErrorRate)
	if err != nil {
		return nil, err
	}

	budget, err := modeling.NewErrorBudget(f.errorBudgetLogical, f.errorBudgetMagicStates, f.errorBudgetRotations)
	if err != nil {
		return nil, fmt.Errorf("error budget: %w", err)
	}

	est := estimator.New[*protocol.SuperconductingQubit, *factorybuilder.DistillationFactory, overheadmodel.LogicalCounts](
		backend.ECP, backend.Qubit, backend.Builder, f.logicalCounts(), budget,
	)

	if f.logicalDepthFactor > 0 {
		est.SetLogicalDepthFactor(f.logicalDepthFactor)
	}
	if f.maxFactories > 0 {
		est.SetMaxFactories(f.maxFactories)
	}
	if f.maxDurationNs > 0 {
		est.SetMaxDuration(f.maxDurationNs)
	}
	if f.maxPhysicalQubits > 0 {
		est.SetMaxPhysicalQubits(f.maxPhysicalQubits)
	}

	return est, nil
}
