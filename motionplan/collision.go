package motionplan

import (
	"strings"
)

// ContactTestType selects how much work a collision checker does per query.
type ContactTestType int

const (
	// ContactTestFirst stops at the first contact found. Cheap; answers "is there a collision".
	ContactTestFirst ContactTestType = iota
	// ContactTestClosest reports the closest contact for every pair. Needed for distance-based costs.
	ContactTestClosest
	// ContactTestAll reports every contact for every pair.
	ContactTestAll
	// ContactTestLimited reports contacts up to a fixed count.
	ContactTestLimited
)

var contactTestTypeNames = map[ContactTestType]string{
	ContactTestFirst:   "FIRST",
	ContactTestClosest: "CLOSEST",
	ContactTestAll:     "ALL",
	ContactTestLimited: "LIMITED",
}

func (t ContactTestType) String() string {
	if name, ok := contactTestTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// MarshalText encodes the type by name.
func (t ContactTestType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a type name, case-insensitively.
func (t *ContactTestType) UnmarshalText(text []byte) error {
	for k, name := range contactTestTypeNames {
		if strings.EqualFold(name, string(text)) {
			*t = k
			return nil
		}
	}
	return NewUnknownEnumError("contact test type", string(text))
}

// CollisionEvaluatorType selects which states a trajectory optimizer checks for collision.
type CollisionEvaluatorType int

const (
	// SingleTimestep checks only the waypoint states.
	SingleTimestep CollisionEvaluatorType = iota
	// DiscreteContinuous checks the waypoint states and interpolated states along each segment.
	DiscreteContinuous
	// CastContinuous sweeps the geometry between consecutive waypoints.
	CastContinuous
)

var collisionEvaluatorTypeNames = map[CollisionEvaluatorType]string{
	SingleTimestep:     "SINGLE_TIMESTEP",
	DiscreteContinuous: "DISCRETE_CONTINUOUS",
	CastContinuous:     "CAST_CONTINUOUS",
}

func (t CollisionEvaluatorType) String() string {
	if name, ok := collisionEvaluatorTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// MarshalText encodes the type by name.
func (t CollisionEvaluatorType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a type name, case-insensitively.
func (t *CollisionEvaluatorType) UnmarshalText(text []byte) error {
	for k, name := range collisionEvaluatorTypeNames {
		if strings.EqualFold(name, string(text)) {
			*t = k
			return nil
		}
	}
	return NewUnknownEnumError("collision evaluator type", string(text))
}

// CollisionCheckConfig describes how strictly, and how expensively, a planning engine verifies
// that a configuration or motion avoids obstacles.
type CollisionCheckConfig struct {
	Type    ContactTestType `json:"type" yaml:"type"`
	Enabled bool            `json:"enabled" yaml:"enabled"`

	// Evaluator only matters to trajectory optimizers.
	Evaluator CollisionEvaluatorType `json:"evaluator" yaml:"evaluator"`

	// Distance at which a contact is considered in violation.
	SafetyMargin float64 `json:"safety_margin" yaml:"safety_margin"`
	// Additional distance beyond the margin over which cost starts ramping up.
	SafetyMarginBuffer float64 `json:"safety_margin_buffer" yaml:"safety_margin_buffer"`
	// Weight of the collision term in the optimizer objective.
	Coeff float64 `json:"coeff" yaml:"coeff"`
}

// NewFirstContactCheckConfig returns an enabled existence-only check, used where a planner only
// needs a binary feasibility answer.
func NewFirstContactCheckConfig() CollisionCheckConfig {
	return CollisionCheckConfig{Type: ContactTestFirst, Enabled: true}
}
