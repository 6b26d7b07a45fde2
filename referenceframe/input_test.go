package referenceframe

import (
	"fmt"
	"math"
	"testing"

	"go.viam.com/test"
)

func TestInputConversions(t *testing.T) {
	vals := []float64{0.1, -0.2, 1.5}
	test.That(t, InputsToFloats(FloatsToInputs(vals)), test.ShouldResemble, vals)

	rads := JointPositionsFromDegrees(0, 90, 180)
	test.That(t, rads[1].Value, test.ShouldAlmostEqual, math.Pi/2)
	test.That(t, rads[2].Value, test.ShouldAlmostEqual, math.Pi)
}

func TestInputsL2Distance(t *testing.T) {
	from := FloatsToInputs([]float64{0, 0, 0})
	to := FloatsToInputs([]float64{3, 4, 0})

	dist, err := InputsL2Distance(from, to)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, dist, test.ShouldAlmostEqual, 5)

	_, err = InputsL2Distance(from, to[:2])
	test.That(t, err, test.ShouldBeError, NewIncorrectDoFError(2, 3))
}

func TestIncorrectDoFErrorStack(t *testing.T) {
	_, err := InputsL2Distance(FloatsToInputs([]float64{1}), nil)
	test.That(t, err, test.ShouldNotBeNil)
	// Errors carry the stack of where they were created.
	test.That(t, fmt.Sprintf("%+v", err), test.ShouldContainSubstring, "referenceframe.NewIncorrectDoFError")
}
