package profiles

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/snp-robotics/motionprofiles/motionplan"
	"github.com/snp-robotics/motionprofiles/utils"
)

// default values for the planning profiles.
const (
	// Longest joint-space step the seed planner takes between interpolated states, in degrees.
	defaultStateLongestValidSegmentDegs = 5.

	// Longest Cartesian translation the seed planner takes between interpolated states.
	defaultTranslationLongestValidSegmentLength = 0.1

	// Longest Cartesian rotation the seed planner takes between interpolated states, in degrees.
	defaultRotationLongestValidSegmentDegs = 5.

	// Fewest segments the seed planner splits any motion into.
	defaultMinSteps = 1

	// Seconds each sampling planner may search before giving up.
	defaultPlanningTime = 20.

	// Bounds of the RRT-Connect step sizes handed out across the parallel planners.
	defaultMinRange = 0.05
	defaultMaxRange = 0.5

	defaultMaxSolutions = 10

	// Angular step, in degrees, between tool poses sampled about the approach axis.
	defaultSamplerResolutionDegs = 10.
	// Finer resolutions would ask IK for millions of candidate poses per waypoint.
	minSamplerResolutionDegs = 0.1

	// Weight of the wrist term when wrist weighting is enabled.
	defaultWristWeight = 5.

	// Degrees of freedom of the manipulator the optimizer vectors are sized for.
	defaultDOF = 6

	defaultCartesianCoeff = 5.
	defaultJointCoeff     = 5.

	defaultVelocityCoeff     = 10.
	defaultAccelerationCoeff = 25.
	defaultJerkCoeff         = 50.

	defaultCollisionSafetyMargin       = 0.010
	defaultCollisionSafetyMarginBuffer = 0.010
	defaultCollisionCoeff              = 10.
)

// Options are the tuning values every profile is derived from. The defaults reproduce the stock
// profiles; files or extra maps override individual values.
type Options struct {
	// Number of planner instances to run in parallel. Zero queries the host.
	NumThreads int `json:"num_threads" yaml:"num_threads" jsonschema:"minimum=0,maximum=1024"`

	StateLongestValidSegmentDegs         float64 `json:"state_longest_valid_segment_degs" yaml:"state_longest_valid_segment_degs"`
	TranslationLongestValidSegmentLength float64 `json:"translation_longest_valid_segment_length" yaml:"translation_longest_valid_segment_length"`
	RotationLongestValidSegmentDegs      float64 `json:"rotation_longest_valid_segment_degs" yaml:"rotation_longest_valid_segment_degs"`
	MinSteps                             int     `json:"min_steps" yaml:"min_steps" jsonschema:"minimum=1"`

	PlanningTime float64 `json:"planning_time" yaml:"planning_time"`
	MinRange     float64 `json:"min_range" yaml:"min_range"`
	MaxRange     float64 `json:"max_range" yaml:"max_range"`
	MaxSolutions int     `json:"max_solutions" yaml:"max_solutions" jsonschema:"minimum=1"`

	SamplerResolutionDegs float64                   `json:"sampler_resolution_degs" yaml:"sampler_resolution_degs" jsonschema:"minimum=0.1,maximum=360"`
	WristWeighting        motionplan.WristWeighting `json:"wrist_weighting" yaml:"wrist_weighting"`

	DOF                         int     `json:"dof" yaml:"dof" jsonschema:"minimum=1"`
	CartesianCoeff              float64 `json:"cartesian_coeff" yaml:"cartesian_coeff"`
	JointCoeff                  float64 `json:"joint_coeff" yaml:"joint_coeff"`
	VelocityCoeff               float64 `json:"velocity_coeff" yaml:"velocity_coeff"`
	AccelerationCoeff           float64 `json:"acceleration_coeff" yaml:"acceleration_coeff"`
	JerkCoeff                   float64 `json:"jerk_coeff" yaml:"jerk_coeff"`
	CollisionSafetyMargin       float64 `json:"collision_safety_margin" yaml:"collision_safety_margin"`
	CollisionSafetyMarginBuffer float64 `json:"collision_safety_margin_buffer" yaml:"collision_safety_margin_buffer"`
	CollisionCoeff              float64 `json:"collision_coeff" yaml:"collision_coeff"`
}

// NewDefaultOptions returns the stock tuning values.
func NewDefaultOptions() *Options {
	opt := &Options{}

	opt.StateLongestValidSegmentDegs = defaultStateLongestValidSegmentDegs
	opt.TranslationLongestValidSegmentLength = defaultTranslationLongestValidSegmentLength
	opt.RotationLongestValidSegmentDegs = defaultRotationLongestValidSegmentDegs
	opt.MinSteps = defaultMinSteps

	opt.PlanningTime = defaultPlanningTime
	opt.MinRange = defaultMinRange
	opt.MaxRange = defaultMaxRange
	opt.MaxSolutions = defaultMaxSolutions

	opt.SamplerResolutionDegs = defaultSamplerResolutionDegs
	// The wrist term stays off until a cell needs it; the weight is ready for when it does.
	opt.WristWeighting = motionplan.WristWeighting{Enabled: false, Weight: defaultWristWeight}

	opt.DOF = defaultDOF
	opt.CartesianCoeff = defaultCartesianCoeff
	opt.JointCoeff = defaultJointCoeff
	opt.VelocityCoeff = defaultVelocityCoeff
	opt.AccelerationCoeff = defaultAccelerationCoeff
	opt.JerkCoeff = defaultJerkCoeff
	opt.CollisionSafetyMargin = defaultCollisionSafetyMargin
	opt.CollisionSafetyMarginBuffer = defaultCollisionSafetyMarginBuffer
	opt.CollisionCoeff = defaultCollisionCoeff

	return opt
}

// NewOptionsFromExtra returns default options updated by the values found in extra. Keys use the
// json names of the Options fields; unknown keys are an error.
func NewOptionsFromExtra(extra map[string]interface{}) (*Options, error) {
	opt := NewDefaultOptions()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           opt,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(extra); err != nil {
		return nil, errors.Wrap(err, "decoding planning profile options")
	}
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	return opt, nil
}

// LoadOptionsFile reads options from a .json, .yaml or .yml file on top of the defaults.
func LoadOptionsFile(path string) (*Options, error) {
	//nolint:gosec
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading options file %s", path)
	}

	// Unknown keys are rejected, the same as NewOptionsFromExtra, so typos never fall back to a
	// default silently.
	opt := NewDefaultOptions()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(content))
		dec.DisallowUnknownFields()
		err = dec.Decode(opt)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err = dec.Decode(opt); errors.Is(err, io.EOF) {
			// An empty file keeps the defaults.
			err = nil
		}
	default:
		return nil, errors.Errorf("unsupported options file extension %q", ext)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "parsing options file %s", path)
	}
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	return opt, nil
}

// Validate reports every option that would produce an unusable profile.
func (o *Options) Validate() error {
	var errs error
	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = multierr.Append(errs, errors.Errorf("%s must be positive, got %v", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if !(v >= 0) {
			errs = multierr.Append(errs, errors.Errorf("%s can't be negative, got %v", name, v))
		}
	}

	if o.NumThreads < 0 || o.NumThreads > utils.MaxParallelism {
		errs = multierr.Append(errs, errors.Errorf("num_threads must be between 0 and %d, got %d", utils.MaxParallelism, o.NumThreads))
	}

	positive("state_longest_valid_segment_degs", o.StateLongestValidSegmentDegs)
	positive("translation_longest_valid_segment_length", o.TranslationLongestValidSegmentLength)
	positive("rotation_longest_valid_segment_degs", o.RotationLongestValidSegmentDegs)
	if o.MinSteps < 1 {
		errs = multierr.Append(errs, errors.Errorf("min_steps must be at least 1, got %d", o.MinSteps))
	}

	positive("planning_time", o.PlanningTime)
	positive("min_range", o.MinRange)
	positive("max_range", o.MaxRange)
	if o.MinRange >= o.MaxRange {
		errs = multierr.Append(errs, errors.Errorf("min_range %v must be less than max_range %v", o.MinRange, o.MaxRange))
	}
	if o.MaxSolutions < 1 {
		errs = multierr.Append(errs, errors.Errorf("max_solutions must be at least 1, got %d", o.MaxSolutions))
	}

	if !(o.SamplerResolutionDegs >= minSamplerResolutionDegs && o.SamplerResolutionDegs <= 360) {
		errs = multierr.Append(errs, errors.Errorf("sampler_resolution_degs must be between %v and 360, got %v",
			minSamplerResolutionDegs, o.SamplerResolutionDegs))
	}
	if o.WristWeighting.Enabled {
		positive("wrist_weighting.weight", o.WristWeighting.Weight)
		if _, err := o.WristWeighting.Mask(o.DOF); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	// Cartesian coefficients always cover the six pose components, so only the joint vectors
	// depend on dof.
	if o.DOF < 1 {
		errs = multierr.Append(errs, errors.Errorf("dof must be at least 1, got %d", o.DOF))
	}
	nonNegative("cartesian_coeff", o.CartesianCoeff)
	nonNegative("joint_coeff", o.JointCoeff)
	nonNegative("velocity_coeff", o.VelocityCoeff)
	nonNegative("acceleration_coeff", o.AccelerationCoeff)
	nonNegative("jerk_coeff", o.JerkCoeff)
	nonNegative("collision_safety_margin", o.CollisionSafetyMargin)
	nonNegative("collision_safety_margin_buffer", o.CollisionSafetyMarginBuffer)
	nonNegative("collision_coeff", o.CollisionCoeff)

	return errors.Wrap(errs, "invalid planning profile options")
}

// OptionsSchema returns the JSON schema describing an options file.
func OptionsSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
	}
	return r.Reflect(&Options{})
}
