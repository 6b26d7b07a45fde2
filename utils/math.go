// Package utils contains small helpers shared by the planning profile packages.
package utils

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// LinSpaced returns n evenly spaced values from low to high, both inclusive. A single value is
// low; n < 1 yields an empty slice.
func LinSpaced(n int, low, high float64) []float64 {
	switch {
	case n < 1:
		return []float64{}
	case n == 1:
		return []float64{low}
	}
	return floats.Span(make([]float64, n), low, high)
}

// ConstantVector returns a vector of length n with every element set to value.
func ConstantVector(n int, value float64) []float64 {
	v := make([]float64, n)
	floats.AddConst(value, v)
	return v
}
