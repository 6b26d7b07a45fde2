package profiles

import (
	"encoding/json"
	"testing"

	"go.viam.com/test"

	"github.com/snp-robotics/motionprofiles/logging"
	"github.com/snp-robotics/motionprofiles/motionplan"
)

func TestTrajOptToolZFreePlanProfile(t *testing.T) {
	profile := NewBuilderWithParallelism(nil, 2, logging.NewTestLogger(t)).TrajOptToolZFreePlanProfile()

	test.That(t, profile.CartesianCoeff, test.ShouldHaveLength, 6)
	zeros := 0
	for i, c := range profile.CartesianCoeff {
		if c == 0 {
			zeros++
			test.That(t, i, test.ShouldEqual, ToolZRotationIndex)
			continue
		}
		test.That(t, c, test.ShouldEqual, 5.)
	}
	test.That(t, zeros, test.ShouldEqual, 1)

	test.That(t, profile.JointCoeff, test.ShouldResemble, []float64{5, 5, 5, 5, 5, 5})
	test.That(t, profile.TermType, test.ShouldEqual, TermTypeCost)

	t.Run("fresh vectors per call", func(t *testing.T) {
		b := NewBuilderWithParallelism(nil, 2, logging.NewTestLogger(t))
		first := b.TrajOptToolZFreePlanProfile()
		first.CartesianCoeff[0] = 0
		test.That(t, b.TrajOptToolZFreePlanProfile().CartesianCoeff[0], test.ShouldEqual, 5.)
	})
}

func TestTrajOptCompositeProfile(t *testing.T) {
	profile := NewBuilderWithParallelism(nil, 2, logging.NewTestLogger(t)).TrajOptCompositeProfile()

	test.That(t, profile.Smoothing.SmoothVelocities, test.ShouldBeTrue)
	test.That(t, profile.Smoothing.SmoothAccelerations, test.ShouldBeTrue)
	test.That(t, profile.Smoothing.SmoothJerks, test.ShouldBeTrue)
	test.That(t, profile.Smoothing.Velocity, test.ShouldResemble, []float64{10, 10, 10, 10, 10, 10})
	test.That(t, profile.Smoothing.Acceleration, test.ShouldResemble, []float64{25, 25, 25, 25, 25, 25})
	test.That(t, profile.Smoothing.Jerk, test.ShouldResemble, []float64{50, 50, 50, 50, 50, 50})

	test.That(t, profile.ContactTestType, test.ShouldEqual, motionplan.ContactTestClosest)

	cost := profile.CollisionCostConfig
	test.That(t, cost.Enabled, test.ShouldBeTrue)
	test.That(t, cost.Type, test.ShouldEqual, motionplan.ContactTestClosest)
	test.That(t, cost.Evaluator, test.ShouldEqual, motionplan.DiscreteContinuous)
	test.That(t, cost.SafetyMargin, test.ShouldEqual, 0.010)
	test.That(t, cost.SafetyMarginBuffer, test.ShouldEqual, 0.010)
	test.That(t, cost.Coeff, test.ShouldEqual, 10.)

	test.That(t, profile.CollisionConstraintConfig.Enabled, test.ShouldBeFalse)

	t.Run("dof sizes the smoothing vectors", func(t *testing.T) {
		opts := NewDefaultOptions()
		opts.DOF = 7
		b := NewBuilderWithParallelism(opts, 2, logging.NewTestLogger(t))
		test.That(t, b.TrajOptCompositeProfile().Smoothing.Jerk, test.ShouldHaveLength, 7)
		test.That(t, b.TrajOptToolZFreePlanProfile().JointCoeff, test.ShouldHaveLength, 7)
		test.That(t, b.TrajOptToolZFreePlanProfile().CartesianCoeff, test.ShouldHaveLength, 6)
	})
}

func TestTermTypeText(t *testing.T) {
	data, err := json.Marshal(TermTypeConstraint)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(data), test.ShouldEqual, `"TT_CNT"`)

	var tt TermType
	test.That(t, json.Unmarshal([]byte(`"tt_cost"`), &tt), test.ShouldBeNil)
	test.That(t, tt, test.ShouldEqual, TermTypeCost)

	err = json.Unmarshal([]byte(`"TT_SQUARED"`), &tt)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "TT_SQUARED")
}
