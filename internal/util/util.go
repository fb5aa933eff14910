// Package util provides common utility functions.
package util

import "strings"

// Must2 returns v or panics if e is not nil.
func Must2[T any](v T, e error) T {
	if e != nil {
		panic(e)
	}
	return v
}

// TrimSP returns s without leading and trailing white space.
func TrimSP[T ~string](s T) T { return T(strings.TrimSpace(string(s))) }
