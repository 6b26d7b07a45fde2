// Package spatialmath defines the rigid-body types (poses and orientations) that planning profiles
// use to describe Cartesian targets.
package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Orientation is a 3D rotation that can be read back as a unit quaternion or in axis angle form.
type Orientation interface {
	AxisAngles() *R4AA
	Quaternion() quat.Number
}

type quaternion quat.Number

// NewZeroOrientation returns an orientation which signifies no rotation.
func NewZeroOrientation() Orientation {
	return &quaternion{1, 0, 0, 0}
}

// NewQuaternion wraps a quaternion, normalizing it to unit length.
func NewQuaternion(q quat.Number) Orientation {
	norm := quat.Abs(q)
	if norm == 0 {
		return NewZeroOrientation()
	}
	n := quaternion(quat.Scale(1/norm, q))
	return &n
}

func (q *quaternion) Quaternion() quat.Number {
	return quat.Number(*q)
}

func (q *quaternion) AxisAngles() *R4AA {
	return QuatToR4AA(q.Quaternion())
}

// OrientationAlmostEqual reports whether o1 and o2 describe the same rotation to within 1e-5.
func OrientationAlmostEqual(o1, o2 Orientation) bool {
	return QuaternionAlmostEqual(o1.Quaternion(), o2.Quaternion(), 1e-5)
}

// QuaternionAlmostEqual is an equality test for all the float components of a quaternion. Quaternions
// have double coverage, so q and -q describe the same rotation.
func QuaternionAlmostEqual(a, b quat.Number, tol float64) bool {
	same := func(a, b quat.Number) bool {
		return math.Abs(a.Real-b.Real) < tol &&
			math.Abs(a.Imag-b.Imag) < tol &&
			math.Abs(a.Jmag-b.Jmag) < tol &&
			math.Abs(a.Kmag-b.Kmag) < tol
	}
	return same(a, b) || same(a, quat.Scale(-1, b))
}

// RotateVector rotates v by the unit quaternion q.
func RotateVector(q quat.Number, v r3.Vector) r3.Vector {
	rotated := quat.Mul(quat.Mul(q, quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}), quat.Conj(q))
	return r3.Vector{X: rotated.Imag, Y: rotated.Jmag, Z: rotated.Kmag}
}

// OrientationBetween returns the rotation that takes o1 to o2, expressed in the parent frame.
func OrientationBetween(o1, o2 Orientation) Orientation {
	delta := quaternion(quat.Mul(o2.Quaternion(), quat.Conj(o1.Quaternion())))
	return &delta
}
