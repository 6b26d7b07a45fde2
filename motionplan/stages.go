// Package motionplan defines the vocabulary shared by the planning profiles: stage identifiers,
// collision checking configuration, joint-space edge costs and Cartesian target samplers. The
// planners that consume these values live outside this module.
package motionplan

// StageID names a step of the motion planning pipeline. Profiles are registered against a stage
// so the orchestrator can hand each planning engine the configuration meant for it.
type StageID string

// The pipeline stages.
const (
	TrajOptMotionPlannerTask            StageID = "TrajOptMotionPlannerTask"
	OMPLMotionPlannerTask               StageID = "OMPLMotionPlannerTask"
	DescartesMotionPlannerTask          StageID = "DescartesMotionPlannerTask"
	SimpleMotionPlannerTask             StageID = "SimpleMotionPlannerTask"
	MinLengthTask                       StageID = "MinLengthTask"
	DiscreteContactCheckTask            StageID = "DiscreteContactCheckTask"
	IterativeSplineParameterizationTask StageID = "IterativeSplineParameterizationTask"
)

// DefaultProfileName is the profile name a stage falls back to when a waypoint does not name one.
const DefaultProfileName = "DEFAULT"

// Stages returns every known stage identifier in pipeline order.
func Stages() []StageID {
	return []StageID{
		SimpleMotionPlannerTask,
		MinLengthTask,
		DescartesMotionPlannerTask,
		OMPLMotionPlannerTask,
		TrajOptMotionPlannerTask,
		DiscreteContactCheckTask,
		IterativeSplineParameterizationTask,
	}
}

func (s StageID) String() string {
	return string(s)
}
