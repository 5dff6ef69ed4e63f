// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package num provides generic numeric constraints and
// conversions for the element types a column can hold.
package num

import "golang.org/x/exp/constraints"

// Number is a type constraint for the numeric element types
// of a column: the signed integers and floats.
type Number interface {
	constraints.Signed | constraints.Float
}

// Float is a type constraint for the floating point types.
type Float interface {
	constraints.Float
}

// Ordered is a type constraint for the types that support < comparison.
type Ordered interface {
	constraints.Ordered
}

// ToFloat64 converts a number to float64.
func ToFloat64[T Number](v T) float64 {
	return float64(v)
}

// ToFloat64s converts a slice of numbers to a new float64 slice.
func ToFloat64s[T Number](vals []T) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = ToFloat64(v)
	}
	return out
}

// IsNaN returns whether v is a NaN, always false for integer types.
func IsNaN[T Number](v T) bool {
	return v != v
}
