package utils

import (
	"os"

	"github.com/spf13/cast"
)

// GetenvInt returns the integer value of the env var v, or def if it is unset or not an integer.
func GetenvInt(v string, def int) int {
	x, ok := os.LookupEnv(v)
	if !ok {
		return def
	}
	i, err := cast.ToIntE(x)
	if err != nil {
		return def
	}
	return i
}
