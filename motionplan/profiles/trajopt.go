package profiles

import (
	"strings"

	"github.com/snp-robotics/motionprofiles/motionplan"
	"github.com/snp-robotics/motionprofiles/utils"
)

// Cartesian coefficient layout: x, y, z, then rotation about x, y and the tool z axis.
const (
	numCartesianCoeffs = 6
	// ToolZRotationIndex is the Cartesian coefficient for rotation about the tool approach axis.
	ToolZRotationIndex = 5
)

// TermType says whether an optimizer term is a soft cost or a hard constraint.
type TermType int

const (
	// TermTypeCost is minimized along with every other cost.
	TermTypeCost TermType = iota
	// TermTypeConstraint must be satisfied by the solution.
	TermTypeConstraint
)

func (t TermType) String() string {
	switch t {
	case TermTypeCost:
		return "TT_COST"
	case TermTypeConstraint:
		return "TT_CNT"
	}
	return "UNKNOWN"
}

// MarshalText encodes the term type by name.
func (t TermType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a term type name.
func (t *TermType) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case "TT_COST":
		*t = TermTypeCost
	case "TT_CNT":
		*t = TermTypeConstraint
	default:
		return motionplan.NewUnknownEnumError("term type", string(text))
	}
	return nil
}

// TrajOptPlanProfile configures how the optimizer matches each waypoint.
type TrajOptPlanProfile struct {
	// Weights of the x, y, z, rx, ry, rz pose error at Cartesian waypoints.
	CartesianCoeff []float64 `json:"cartesian_coeff" yaml:"cartesian_coeff"`
	// Weights of the per-joint error at joint waypoints.
	JointCoeff []float64 `json:"joint_coeff" yaml:"joint_coeff"`
	TermType   TermType  `json:"term_type" yaml:"term_type"`
}

// SmoothnessWeights are the per-joint penalties on each derivative of the trajectory.
type SmoothnessWeights struct {
	SmoothVelocities    bool      `json:"smooth_velocities" yaml:"smooth_velocities"`
	Velocity            []float64 `json:"velocity_coeff" yaml:"velocity_coeff"`
	SmoothAccelerations bool      `json:"smooth_accelerations" yaml:"smooth_accelerations"`
	Acceleration        []float64 `json:"acceleration_coeff" yaml:"acceleration_coeff"`
	SmoothJerks         bool      `json:"smooth_jerks" yaml:"smooth_jerks"`
	Jerk                []float64 `json:"jerk_coeff" yaml:"jerk_coeff"`
}

// TrajOptCompositeProfile configures the terms the optimizer applies over the whole trajectory.
type TrajOptCompositeProfile struct {
	Smoothing       SmoothnessWeights          `json:"smoothing" yaml:"smoothing"`
	ContactTestType motionplan.ContactTestType `json:"contact_test_type" yaml:"contact_test_type"`

	CollisionCostConfig       motionplan.CollisionCheckConfig `json:"collision_cost_config" yaml:"collision_cost_config"`
	CollisionConstraintConfig motionplan.CollisionCheckConfig `json:"collision_constraint_config" yaml:"collision_constraint_config"`
}

// TrajOptToolZFreePlanProfile returns the per-waypoint profile that leaves rotation about the tool
// approach axis free while holding position and the other two rotations to the target.
func (b *Builder) TrajOptToolZFreePlanProfile() TrajOptPlanProfile {
	cartesian := utils.ConstantVector(numCartesianCoeffs, b.opts.CartesianCoeff)
	cartesian[ToolZRotationIndex] = 0

	return TrajOptPlanProfile{
		CartesianCoeff: cartesian,
		JointCoeff:     utils.ConstantVector(b.opts.DOF, b.opts.JointCoeff),
		TermType:       TermTypeCost,
	}
}

// TrajOptCompositeProfile returns the whole-trajectory profile. Smoothing weights grow with the
// derivative order. Collision is a distance-based cost over waypoints and the segments between
// them; it is not a hard constraint, strict checking is left to the contact check stage.
func (b *Builder) TrajOptCompositeProfile() TrajOptCompositeProfile {
	b.logger.Debugw("built trajectory optimization profile",
		"dof", b.opts.DOF, "collision_safety_margin", b.opts.CollisionSafetyMargin)

	return TrajOptCompositeProfile{
		Smoothing: SmoothnessWeights{
			SmoothVelocities:    true,
			Velocity:            utils.ConstantVector(b.opts.DOF, b.opts.VelocityCoeff),
			SmoothAccelerations: true,
			Acceleration:        utils.ConstantVector(b.opts.DOF, b.opts.AccelerationCoeff),
			SmoothJerks:         true,
			Jerk:                utils.ConstantVector(b.opts.DOF, b.opts.JerkCoeff),
		},
		ContactTestType: motionplan.ContactTestClosest,
		CollisionCostConfig: motionplan.CollisionCheckConfig{
			Type:               motionplan.ContactTestClosest,
			Enabled:            true,
			Evaluator:          motionplan.DiscreteContinuous,
			SafetyMargin:       b.opts.CollisionSafetyMargin,
			SafetyMarginBuffer: b.opts.CollisionSafetyMarginBuffer,
			Coeff:              b.opts.CollisionCoeff,
		},
		CollisionConstraintConfig: motionplan.CollisionCheckConfig{
			Type:      motionplan.ContactTestClosest,
			Enabled:   false,
			Evaluator: motionplan.DiscreteContinuous,
		},
	}
}
