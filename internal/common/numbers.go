package common

import (
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// ParseUint parses a base-10 unsigned integer sized for T.
func ParseUint[T constraints.Unsigned](token string) (T, error) {
	var zero T

	v, err := strconv.ParseUint(token, 10, int(unsafe.Sizeof(zero))*8)
	if err != nil {
		return zero, err
	}

	return T(v), nil
}

// ParseUintFields splits s on whitespace and parses every field.
// On failure the offending field is returned alongside the error.
func ParseUintFields[T constraints.Unsigned](s string) (values []T, bad string, err error) {
	fields := strings.Fields(s)
	values = make([]T, 0, len(fields))

	for _, f := range fields {
		v, err := ParseUint[T](f)
		if err != nil {
			return nil, f, err
		}

		values = append(values, v)
	}

	return values, "", nil
}
