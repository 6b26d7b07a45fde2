package motionplan

import (
	"github.com/pkg/errors"
)

// NewMismatchedConfigurationsError is returned when two configurations of different lengths are
// compared.
func NewMismatchedConfigurationsError(start, end int) error {
	return errors.Errorf("cannot evaluate edge between configurations of %d and %d joints", start, end)
}

// NewWeightLengthError is returned when a per-joint weight vector does not cover every joint.
func NewWeightLengthError(weights, joints int) error {
	return errors.Errorf("edge weight vector has %d entries but configurations have %d joints", weights, joints)
}

// NewUnknownEnumError is returned when parsing an unrecognized enum name.
func NewUnknownEnumError(kind, name string) error {
	return errors.Errorf("unknown %s %q", kind, name)
}
