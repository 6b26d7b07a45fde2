package motionplan

import (
	"iter"
	"math"

	"github.com/snp-robotics/motionprofiles/spatialmath"
)

// PoseSampler expands a Cartesian target into the candidate tool poses a graph search should try.
// The returned sequence is finite and may be iterated any number of times.
type PoseSampler func(target spatialmath.Pose) iter.Seq[spatialmath.Pose]

// ToolZSampleCount returns how many samples SampleToolZAxis produces for the given angular
// resolution in radians. Nonpositive resolutions produce none.
func ToolZSampleCount(resolution float64) int {
	if !(resolution > 0) {
		return 0
	}
	// The epsilon keeps resolutions that evenly divide a turn from rounding up an extra sample.
	return int(math.Ceil(2*math.Pi/resolution - 1e-9))
}

// SampleToolZAxis returns a sampler that rotates the target about its own tool Z (approach) axis,
// stepping through a full turn starting at -pi. Position and the tool Z direction of every sample
// match the target.
func SampleToolZAxis(resolution float64) PoseSampler {
	n := ToolZSampleCount(resolution)
	return func(target spatialmath.Pose) iter.Seq[spatialmath.Pose] {
		return func(yield func(spatialmath.Pose) bool) {
			// n evenly spaced angles over [-pi, pi); +pi would repeat -pi.
			step := 2 * math.Pi / float64(n)
			for i := range n {
				angle := -math.Pi + float64(i)*step
				spin := spatialmath.NewPoseFromOrientation(&spatialmath.R4AA{Theta: angle, RZ: 1})
				if !yield(spatialmath.Compose(target, spin)) {
					return
				}
			}
		}
	}
}
