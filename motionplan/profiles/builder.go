// Package profiles builds the configuration records each planning engine of the scan-and-plan
// pipeline is parameterized with: a seed interpolation planner, parallel sampling planners, a
// Cartesian graph search and a trajectory optimizer. Builders are pure constructors over the tuning
// Options and a single host parallelism value.
package profiles

import (
	"github.com/snp-robotics/motionprofiles/logging"
	"github.com/snp-robotics/motionprofiles/utils"
)

// Builder derives planning profiles from a fixed set of options. Every profile method returns a
// freshly allocated value; none depends on another.
type Builder struct {
	opts        Options
	parallelism int
	logger      logging.Logger
}

// NewBuilder returns a builder sized for the host. opts.NumThreads, when set, takes precedence
// over the host query. A nil opts uses the defaults.
func NewBuilder(opts *Options, logger logging.Logger) *Builder {
	if opts == nil {
		opts = NewDefaultOptions()
	}
	n := opts.NumThreads
	if n == 0 {
		n = utils.HostParallelism(logger)
	}
	return NewBuilderWithParallelism(opts, n, logger)
}

// NewBuilderWithParallelism returns a builder that fans parallel stages out over n threads. An n
// below one is floored to one and one above utils.MaxParallelism is capped.
func NewBuilderWithParallelism(opts *Options, n int, logger logging.Logger) *Builder {
	if opts == nil {
		opts = NewDefaultOptions()
	}
	b := &Builder{
		opts:        *opts,
		parallelism: utils.ClampParallelism(n, logger),
		logger:      logger,
	}
	logger.Debugw("profile builder ready", "parallelism", b.parallelism)
	return b
}

// Parallelism returns the thread count the parallel stages are sized for.
func (b *Builder) Parallelism() int {
	return b.parallelism
}

// Options returns a copy of the options the builder derives profiles from.
func (b *Builder) Options() Options {
	return b.opts
}
