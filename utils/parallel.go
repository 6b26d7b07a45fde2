package utils

import (
	"runtime"

	"github.com/snp-robotics/motionprofiles/logging"
)

// NumThreadsEnvVar overrides the number of hardware threads reported by the host.
const NumThreadsEnvVar = "SNP_NUM_THREADS"

// MaxParallelism caps how many parallel planner instances a profile asks for.
const MaxParallelism = 1024

// HostParallelism returns the number of planner instances the host can run at once. It is read
// once and shared by every builder that fans work out across threads. A host (or an env override)
// reporting fewer than one thread is floored to one so parallel stages never become no-ops.
func HostParallelism(logger logging.Logger) int {
	n := GetenvInt(NumThreadsEnvVar, runtime.NumCPU())
	return ClampParallelism(n, logger)
}

// ClampParallelism limits n to [1, MaxParallelism], warning when it had to.
func ClampParallelism(n int, logger logging.Logger) int {
	switch {
	case n < 1:
		if logger != nil {
			logger.Warnw("host reported no usable hardware threads, falling back to one", "reported", n)
		}
		return 1
	case n > MaxParallelism:
		if logger != nil {
			logger.Warnw("thread count exceeds the supported maximum, capping", "reported", n, "max", MaxParallelism)
		}
		return MaxParallelism
	}
	return n
}
