package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// R4AA is a rotation of Theta radians about the axis (RX, RY, RZ). The axis need not be unit
// length; it is normalized whenever the rotation is converted.
type R4AA struct {
	Theta float64 `json:"th"`
	RX    float64 `json:"x"`
	RY    float64 `json:"y"`
	RZ    float64 `json:"z"`
}

// NewR4AA returns the zero rotation about +Z.
func NewR4AA() *R4AA {
	return &R4AA{RZ: 1}
}

// AxisAngles returns r4 itself.
func (r4 *R4AA) AxisAngles() *R4AA {
	return r4
}

// Quaternion implements Orientation.
func (r4 *R4AA) Quaternion() quat.Number {
	return r4.ToQuat()
}

func (r4 *R4AA) axis() r3.Vector {
	return r3.Vector{X: r4.RX, Y: r4.RY, Z: r4.RZ}
}

// ToR3 returns the rotation vector: the unit axis scaled by Theta.
func (r4 *R4AA) ToR3() r3.Vector {
	return r4.axis().Normalize().Mul(r4.Theta)
}

// ToQuat returns the unit quaternion of the rotation. A zero axis is the identity.
func (r4 *R4AA) ToQuat() quat.Number {
	axis := r4.axis().Normalize()
	if axis == (r3.Vector{}) {
		return quat.Number{Real: 1}
	}
	v := axis.Mul(math.Sin(r4.Theta / 2))
	return quat.Number{Real: math.Cos(r4.Theta / 2), Imag: v.X, Jmag: v.Y, Kmag: v.Z}
}

// Normalize rescales the axis to unit length in place. A zero axis becomes +Z.
func (r4 *R4AA) Normalize() {
	axis := r4.axis().Normalize()
	if axis == (r3.Vector{}) {
		axis = r3.Vector{Z: 1}
	}
	r4.RX, r4.RY, r4.RZ = axis.X, axis.Y, axis.Z
}

// QuatToR4AA converts a unit quaternion to axis angle form with Theta in [0, 2pi]. Rotations too
// small to have a well defined axis come back as NewR4AA.
func QuatToR4AA(q quat.Number) *R4AA {
	v := r3.Vector{X: q.Imag, Y: q.Jmag, Z: q.Kmag}
	sinHalf := v.Norm()
	if sinHalf < 1e-12 {
		return NewR4AA()
	}
	axis := v.Mul(1 / sinHalf)
	return &R4AA{Theta: 2 * math.Atan2(sinHalf, q.Real), RX: axis.X, RY: axis.Y, RZ: axis.Z}
}
