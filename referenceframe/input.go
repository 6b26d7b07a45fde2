// Package referenceframe holds the joint-space configuration types exchanged with planning engines.
package referenceframe

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"

	"github.com/snp-robotics/motionprofiles/utils"
)

// Input is one joint coordinate of a robot configuration: radians for revolute joints, model
// distance units for prismatic ones.
type Input struct {
	Value float64
}

// FloatsToInputs converts raw joint values to a configuration.
func FloatsToInputs(values []float64) []Input {
	return lo.Map(values, func(v float64, _ int) Input { return Input{Value: v} })
}

// InputsToFloats converts a configuration to raw joint values.
func InputsToFloats(q []Input) []float64 {
	return lo.Map(q, func(in Input, _ int) float64 { return in.Value })
}

// JointPositionsFromDegrees converts joint angles given in degrees to Inputs in radians.
func JointPositionsFromDegrees(degrees ...float64) []Input {
	inputs := make([]Input, len(degrees))
	for i, d := range degrees {
		inputs[i] = Input{utils.DegToRad(d)}
	}
	return inputs
}

// InputsL2Distance returns the L2 norm between two equal length sets of Inputs.
func InputsL2Distance(from, to []Input) (float64, error) {
	if n := len(from); n != len(to) {
		return 0, NewIncorrectDoFError(len(to), n)
	}
	return floats.Distance(InputsToFloats(from), InputsToFloats(to), 2), nil
}

// NewIncorrectDoFError returns an error indicating that the number of inputs does not match the
// degrees of freedom expected.
func NewIncorrectDoFError(actual, expected int) error {
	return errors.Errorf("number of dof is incorrect, expected %d but got %d", expected, actual)
}
