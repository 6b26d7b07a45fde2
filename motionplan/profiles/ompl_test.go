package profiles

import (
	"testing"

	"go.viam.com/test"

	"github.com/snp-robotics/motionprofiles/logging"
	"github.com/snp-robotics/motionprofiles/motionplan"
)

func TestGlobalSearchProfile(t *testing.T) {
	logger := logging.NewTestLogger(t)

	t.Run("one planner per thread", func(t *testing.T) {
		for n := 1; n <= 16; n++ {
			profile := NewBuilderWithParallelism(nil, n, logger).GlobalSearchProfile()
			test.That(t, profile.Planners, test.ShouldHaveLength, n)
			test.That(t, profile.Planners[0].Range, test.ShouldEqual, 0.05)
			if n > 1 {
				test.That(t, profile.Planners[n-1].Range, test.ShouldAlmostEqual, 0.5)
			}
			for i, planner := range profile.Planners {
				test.That(t, planner.Kind, test.ShouldEqual, RRTConnect)
				test.That(t, planner.TimeBudget, test.ShouldEqual, 20.)
				if i > 0 {
					test.That(t, planner.Range, test.ShouldBeGreaterThan, profile.Planners[i-1].Range)
				}
			}
		}
	})

	t.Run("four threads", func(t *testing.T) {
		profile := NewBuilderWithParallelism(nil, 4, logger).GlobalSearchProfile()
		test.That(t, profile.Planners, test.ShouldHaveLength, 4)
		for i, expected := range []float64{0.05, 0.2, 0.35, 0.5} {
			test.That(t, profile.Planners[i].Range, test.ShouldAlmostEqual, expected)
		}
	})

	t.Run("fixed settings", func(t *testing.T) {
		profile := NewBuilderWithParallelism(nil, 2, logger).GlobalSearchProfile()
		test.That(t, profile.PlanningTime, test.ShouldEqual, 20.)
		test.That(t, profile.MaxSolutions, test.ShouldEqual, 10)
		test.That(t, profile.Simplify, test.ShouldBeFalse)
		test.That(t, profile.Optimize, test.ShouldBeTrue)
		test.That(t, profile.CollisionCheckConfig.Type, test.ShouldEqual, motionplan.ContactTestFirst)
		test.That(t, profile.CollisionCheckConfig.Enabled, test.ShouldBeTrue)
	})

	t.Run("zero threads falls back to one planner", func(t *testing.T) {
		observedLogger, observed := logging.NewObservedTestLogger(t)
		b := NewBuilderWithParallelism(nil, 0, observedLogger)
		test.That(t, b.Parallelism(), test.ShouldEqual, 1)
		test.That(t, observed.FilterMessageSnippet("falling back to one").Len(), test.ShouldEqual, 1)

		profile := b.GlobalSearchProfile()
		test.That(t, profile.Planners, test.ShouldHaveLength, 1)
		test.That(t, profile.Planners[0].Range, test.ShouldEqual, 0.05)
	})

	t.Run("custom ranges", func(t *testing.T) {
		opts := NewDefaultOptions()
		opts.MinRange = 0.1
		opts.MaxRange = 0.4
		opts.PlanningTime = 5
		profile := NewBuilderWithParallelism(opts, 3, logger).GlobalSearchProfile()
		test.That(t, profile.Planners[0].Range, test.ShouldAlmostEqual, 0.1)
		test.That(t, profile.Planners[1].Range, test.ShouldAlmostEqual, 0.25)
		test.That(t, profile.Planners[2].Range, test.ShouldAlmostEqual, 0.4)
		test.That(t, profile.Planners[2].TimeBudget, test.ShouldEqual, 5.)
	})

	t.Run("profiles do not share planner storage", func(t *testing.T) {
		b := NewBuilderWithParallelism(nil, 3, logger)
		first := b.GlobalSearchProfile()
		first.Planners[0].Range = 99
		test.That(t, b.GlobalSearchProfile().Planners[0].Range, test.ShouldEqual, 0.05)
	})
}
