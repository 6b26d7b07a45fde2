package motionplan

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/snp-robotics/motionprofiles/referenceframe"
)

// numWristJoints is the count of trailing joints treated as the wrist.
const numWristJoints = 3

// EdgeEvaluator scores the transition between two robot configurations in a graph search.
type EdgeEvaluator interface {
	Evaluate(start, end []referenceframe.Input) (float64, error)
}

// EuclideanDistanceEdgeEvaluator costs an edge as the L2 norm of the joint deltas, each scaled by
// the matching entry in Weights. A nil Weights is the unweighted distance.
type EuclideanDistanceEdgeEvaluator struct {
	Weights []float64
}

// Evaluate returns the weighted joint-space distance between start and end.
func (e *EuclideanDistanceEdgeEvaluator) Evaluate(start, end []referenceframe.Input) (float64, error) {
	if len(start) != len(end) {
		return 0, NewMismatchedConfigurationsError(len(start), len(end))
	}
	if e.Weights == nil {
		return referenceframe.InputsL2Distance(start, end)
	}
	if len(e.Weights) != len(end) {
		return 0, NewWeightLengthError(len(e.Weights), len(end))
	}
	diff := floats.SubTo(make([]float64, len(end)), referenceframe.InputsToFloats(end), referenceframe.InputsToFloats(start))
	floats.Mul(diff, e.Weights)
	return floats.Norm(diff, 2), nil
}

// CompoundEdgeEvaluator sums the costs of an ordered list of evaluators.
type CompoundEdgeEvaluator struct {
	Evaluators []EdgeEvaluator
}

// Evaluate returns the sum of every member evaluator's cost, failing on the first error.
func (c *CompoundEdgeEvaluator) Evaluate(start, end []referenceframe.Input) (float64, error) {
	total := 0.
	for i, eval := range c.Evaluators {
		cost, err := eval.Evaluate(start, end)
		if err != nil {
			return 0, errors.Wrapf(err, "edge evaluator %d", i)
		}
		total += cost
	}
	return total, nil
}

// WristWeighting adds a cost term that penalizes motion of the last three joints.
type WristWeighting struct {
	Enabled bool    `json:"enabled" yaml:"enabled"`
	Weight  float64 `json:"weight" yaml:"weight"`
}

// Mask returns the per-joint weights of the wrist term for a robot with numJoints joints.
func (w WristWeighting) Mask(numJoints int) ([]float64, error) {
	if numJoints < numWristJoints {
		return nil, errors.Errorf("wrist weighting needs at least %d joints, got %d", numWristJoints, numJoints)
	}
	mask := make([]float64, numJoints)
	for i := numJoints - numWristJoints; i < numJoints; i++ {
		mask[i] = w.Weight
	}
	return mask, nil
}

// EdgeCostConfig describes how a graph search composes its edge cost. The unweighted joint
// distance is always included.
type EdgeCostConfig struct {
	WristWeighting WristWeighting `json:"wrist_weighting" yaml:"wrist_weighting"`
}

// NewEdgeEvaluator builds the evaluator described by the config for a robot with numJoints joints.
func (c EdgeCostConfig) NewEdgeEvaluator(numJoints int) (EdgeEvaluator, error) {
	eval := &CompoundEdgeEvaluator{
		Evaluators: []EdgeEvaluator{&EuclideanDistanceEdgeEvaluator{}},
	}
	if c.WristWeighting.Enabled {
		mask, err := c.WristWeighting.Mask(numJoints)
		if err != nil {
			return nil, err
		}
		eval.Evaluators = append(eval.Evaluators, &EuclideanDistanceEdgeEvaluator{Weights: mask})
	}
	return eval, nil
}
