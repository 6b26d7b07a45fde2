package profiles

import (
	"github.com/samber/lo"

	"github.com/snp-robotics/motionprofiles/motionplan"
	"github.com/snp-robotics/motionprofiles/utils"
)

// PlannerKind names the sampling algorithm one parallel planner instance runs.
type PlannerKind string

// RRTConnect is bidirectional RRT.
const RRTConnect PlannerKind = "RRTConnect"

// PlannerConfig holds the exploration parameters of one parallel sampling planner.
type PlannerConfig struct {
	Kind PlannerKind `json:"kind" yaml:"kind"`
	// Maximum extension of the tree per step, in joint-space units.
	Range float64 `json:"range" yaml:"range"`
	// Seconds the instance may search.
	TimeBudget float64 `json:"time_budget" yaml:"time_budget"`
}

// OMPLPlanProfile configures the global sampling-based planner. One search runs per entry in
// Planners, concurrently, and the best solution wins.
type OMPLPlanProfile struct {
	PlanningTime float64         `json:"planning_time" yaml:"planning_time"`
	MaxSolutions int             `json:"max_solutions" yaml:"max_solutions"`
	Simplify     bool            `json:"simplify" yaml:"simplify"`
	Optimize     bool            `json:"optimize" yaml:"optimize"`
	Planners     []PlannerConfig `json:"planners" yaml:"planners"`

	CollisionCheckConfig motionplan.CollisionCheckConfig `json:"collision_check_config" yaml:"collision_check_config"`
}

// GlobalSearchProfile returns the sampling planner profile with one RRT-Connect instance per
// available thread. Instance ranges ascend linearly from the minimum to the maximum range so the
// searches cover coarse through fine exploration rather than repeating one another.
func (b *Builder) GlobalSearchProfile() OMPLPlanProfile {
	ranges := utils.LinSpaced(b.parallelism, b.opts.MinRange, b.opts.MaxRange)
	planners := lo.Map(ranges, func(r float64, _ int) PlannerConfig {
		return PlannerConfig{Kind: RRTConnect, Range: r, TimeBudget: b.opts.PlanningTime}
	})

	b.logger.Debugw("built global search profile",
		"planners", len(planners), "min_range", b.opts.MinRange, "max_range", b.opts.MaxRange)

	return OMPLPlanProfile{
		PlanningTime: b.opts.PlanningTime,
		MaxSolutions: b.opts.MaxSolutions,
		Simplify:     false,
		Optimize:     true,
		Planners:     planners,
		// The search only needs to know whether an edge is feasible.
		CollisionCheckConfig: motionplan.NewFirstContactCheckConfig(),
	}
}
