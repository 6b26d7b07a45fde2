package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Pose represents a 6dof pose: a position in space and an orientation.
type Pose interface {
	Point() r3.Vector
	Orientation() Orientation
}

type pose struct {
	point       r3.Vector
	orientation quat.Number
}

// NewPose returns a pose at the given point with the given orientation.
func NewPose(p r3.Vector, o Orientation) Pose {
	if o == nil {
		o = NewZeroOrientation()
	}
	return &pose{point: p, orientation: NewQuaternion(o.Quaternion()).Quaternion()}
}

// NewPoseFromPoint returns a pose at the given point with no rotation.
func NewPoseFromPoint(p r3.Vector) Pose {
	return NewPose(p, nil)
}

// NewPoseFromOrientation returns a pose at the origin with the given orientation.
func NewPoseFromOrientation(o Orientation) Pose {
	return NewPose(r3.Vector{}, o)
}

// NewZeroPose returns the identity pose.
func NewZeroPose() Pose {
	return NewPose(r3.Vector{}, nil)
}

func (p *pose) Point() r3.Vector {
	return p.point
}

func (p *pose) Orientation() Orientation {
	q := quaternion(p.orientation)
	return &q
}

// Compose treats a and b as rigid transforms and returns a followed by b, with b expressed in the
// frame of a.
func Compose(a, b Pose) Pose {
	aq := a.Orientation().Quaternion()
	return &pose{
		point:       a.Point().Add(RotateVector(aq, b.Point())),
		orientation: quat.Mul(aq, b.Orientation().Quaternion()),
	}
}

// PoseAlmostEqual will return a bool describing whether 2 poses are approximately the same.
func PoseAlmostEqual(a, b Pose) bool {
	return a.Point().Sub(b.Point()).Norm() < 1e-8 && OrientationAlmostEqual(a.Orientation(), b.Orientation())
}
