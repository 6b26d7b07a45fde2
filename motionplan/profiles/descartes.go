package profiles

import (
	"github.com/snp-robotics/motionprofiles/motionplan"
	"github.com/snp-robotics/motionprofiles/referenceframe"
	"github.com/snp-robotics/motionprofiles/utils"
)

// StateEvaluator scores a single graph vertex. It returns false to reject the configuration.
type StateEvaluator func(q []referenceframe.Input) (bool, float64)

// DescartesPlanProfile configures the Cartesian graph search, which solves IK for sampled tool
// poses at every waypoint and searches the resulting ladder graph for the cheapest joint path.
type DescartesPlanProfile struct {
	NumThreads                 int  `json:"num_threads" yaml:"num_threads"`
	UseRedundantJointSolutions bool `json:"use_redundant_joint_solutions" yaml:"use_redundant_joint_solutions"`

	AllowCollision             bool                            `json:"allow_collision" yaml:"allow_collision"`
	EnableCollision            bool                            `json:"enable_collision" yaml:"enable_collision"`
	VertexCollisionCheckConfig motionplan.CollisionCheckConfig `json:"vertex_collision_check_config" yaml:"vertex_collision_check_config"`
	EnableEdgeCollision        bool                            `json:"enable_edge_collision" yaml:"enable_edge_collision"`
	EdgeCollisionCheckConfig   motionplan.CollisionCheckConfig `json:"edge_collision_check_config" yaml:"edge_collision_check_config"`

	EdgeCost motionplan.EdgeCostConfig `json:"edge_cost" yaml:"edge_cost"`

	// Nil leaves the engine's default vertex scoring in place.
	StateEvaluator  StateEvaluator `json:"-" yaml:"-"`
	VertexEvaluator StateEvaluator `json:"-" yaml:"-"`

	// Angular step, in radians, of TargetPoseSampler about the tool approach axis.
	SamplerResolution float64                `json:"sampler_resolution" yaml:"sampler_resolution"`
	TargetPoseSampler motionplan.PoseSampler `json:"-" yaml:"-"`
}

// GraphSearchProfile returns the Cartesian graph search profile. Vertices get existence-only
// collision checks; edges are not checked here since later stages validate the full trajectory.
func (b *Builder) GraphSearchProfile() DescartesPlanProfile {
	resolution := utils.DegToRad(b.opts.SamplerResolutionDegs)

	b.logger.Debugw("built graph search profile",
		"threads", b.parallelism, "samples_per_pose", motionplan.ToolZSampleCount(resolution),
		"wrist_weighting", b.opts.WristWeighting.Enabled)

	edgeCheck := motionplan.NewFirstContactCheckConfig()
	edgeCheck.Enabled = false

	return DescartesPlanProfile{
		NumThreads:                 b.parallelism,
		UseRedundantJointSolutions: false,

		AllowCollision:             false,
		EnableCollision:            true,
		VertexCollisionCheckConfig: motionplan.NewFirstContactCheckConfig(),
		EnableEdgeCollision:        false,
		EdgeCollisionCheckConfig:   edgeCheck,

		EdgeCost: motionplan.EdgeCostConfig{WristWeighting: b.opts.WristWeighting},

		SamplerResolution: resolution,
		TargetPoseSampler: motionplan.SampleToolZAxis(resolution),
	}
}

// NewEdgeEvaluator builds the edge cost evaluator for a robot with numJoints joints.
func (p DescartesPlanProfile) NewEdgeEvaluator(numJoints int) (motionplan.EdgeEvaluator, error) {
	return p.EdgeCost.NewEdgeEvaluator(numJoints)
}
