package profiles

import (
	"math"

	"github.com/snp-robotics/motionprofiles/utils"
)

// SimplePlannerLVSPlanProfile configures the seed planner, which linearly interpolates between
// waypoints and subdivides each motion so that no step exceeds the longest valid segment lengths.
type SimplePlannerLVSPlanProfile struct {
	// Longest joint-space step, in radians.
	StateLongestValidSegmentLength float64 `json:"state_longest_valid_segment_length" yaml:"state_longest_valid_segment_length"`
	// Longest Cartesian translation step.
	TranslationLongestValidSegmentLength float64 `json:"translation_longest_valid_segment_length" yaml:"translation_longest_valid_segment_length"`
	// Longest Cartesian rotation step, in radians.
	RotationLongestValidSegmentLength float64 `json:"rotation_longest_valid_segment_length" yaml:"rotation_longest_valid_segment_length"`
	MinSteps                          int     `json:"min_steps" yaml:"min_steps"`
}

// SeedProfile returns the profile for the seed interpolation planner.
func (b *Builder) SeedProfile() SimplePlannerLVSPlanProfile {
	return SimplePlannerLVSPlanProfile{
		StateLongestValidSegmentLength:       utils.DegToRad(b.opts.StateLongestValidSegmentDegs),
		TranslationLongestValidSegmentLength: b.opts.TranslationLongestValidSegmentLength,
		RotationLongestValidSegmentLength:    utils.DegToRad(b.opts.RotationLongestValidSegmentDegs),
		MinSteps:                             b.opts.MinSteps,
	}
}

// StepCount returns how many segments a motion covering the given joint-space, translational and
// rotational distances is split into: enough that every limit holds, and never fewer than MinSteps.
func (p SimplePlannerLVSPlanProfile) StepCount(jointDist, translationDist, rotationDist float64) int {
	steps := p.MinSteps
	for _, ratio := range []float64{
		jointDist / p.StateLongestValidSegmentLength,
		translationDist / p.TranslationLongestValidSegmentLength,
		rotationDist / p.RotationLongestValidSegmentLength,
	} {
		if n := int(math.Ceil(math.Abs(ratio))); n > steps {
			steps = n
		}
	}
	return steps
}
