package profiles

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.viam.com/test"

	"github.com/snp-robotics/motionprofiles/logging"
)

func TestSeedProfile(t *testing.T) {
	b := NewBuilderWithParallelism(nil, 4, logging.NewTestLogger(t))

	profile := b.SeedProfile()
	test.That(t, profile.StateLongestValidSegmentLength, test.ShouldEqual, 5*math.Pi/180)
	test.That(t, profile.TranslationLongestValidSegmentLength, test.ShouldEqual, 0.1)
	test.That(t, profile.RotationLongestValidSegmentLength, test.ShouldEqual, 5*math.Pi/180)
	test.That(t, profile.MinSteps, test.ShouldEqual, 1)

	for range 10 {
		test.That(t, cmp.Diff(profile, b.SeedProfile()), test.ShouldBeEmpty)
	}
	other := NewBuilderWithParallelism(nil, 32, logging.NewTestLogger(t))
	test.That(t, cmp.Diff(profile, other.SeedProfile()), test.ShouldBeEmpty)
}

func TestStepCount(t *testing.T) {
	profile := NewBuilderWithParallelism(nil, 1, logging.NewTestLogger(t)).SeedProfile()

	t.Run("no motion still takes the minimum", func(t *testing.T) {
		test.That(t, profile.StepCount(0, 0, 0), test.ShouldEqual, 1)
	})

	t.Run("largest ratio wins", func(t *testing.T) {
		// 20 degrees of joint motion needs 4 steps, 0.35 of translation needs 4, 2 degrees of rotation needs 1.
		test.That(t, profile.StepCount(20*math.Pi/180, 0.35, 2*math.Pi/180), test.ShouldEqual, 4)
		test.That(t, profile.StepCount(0, 1.0, 0), test.ShouldEqual, 10)
		test.That(t, profile.StepCount(0, 0, 1.0), test.ShouldEqual, 12)
	})

	t.Run("minimum steps floor", func(t *testing.T) {
		profile := profile
		profile.MinSteps = 8
		test.That(t, profile.StepCount(0, 0.35, 0), test.ShouldEqual, 8)
	})

	t.Run("direction does not matter", func(t *testing.T) {
		test.That(t, profile.StepCount(0, -0.35, 0), test.ShouldEqual, 4)
	})
}
