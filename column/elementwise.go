// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"fmt"
	"slices"

	"cogentcore.org/dami/base/num"
	"cogentcore.org/dami/dtype"
)

// Apply returns a new column with f applied to every value.
func (c *Column[T]) Apply(f func(T) T) *Column[T] {
	out := make([]T, len(c.values))
	for i, v := range c.values {
		out[i] = f(v)
	}
	return derive(c, out, slices.Clone(c.index))
}

// ApplyInPlace applies f to every value.
func (c *Column[T]) ApplyInPlace(f func(T) T) {
	for i, v := range c.values {
		c.values[i] = f(v)
	}
}

// Transform returns a new column of type P with f applied to
// every value of c, keeping the name and labels.
func Transform[T, P any](c *Column[T], f func(T) P) *Column[P] {
	out := make([]P, len(c.values))
	for i, v := range c.values {
		out[i] = f(v)
	}
	return derive(c, out, slices.Clone(c.index))
}

// Mask returns a new column where every value for which cond
// is true is replaced by value.
func (c *Column[T]) Mask(value T, cond func(T) bool) *Column[T] {
	return c.Apply(func(v T) T {
		if cond(v) {
			return value
		}
		return v
	})
}

// MaskInPlace replaces every value for which cond is true by value.
func (c *Column[T]) MaskInPlace(value T, cond func(T) bool) {
	c.ApplyInPlace(func(v T) T {
		if cond(v) {
			return value
		}
		return v
	})
}

// Combine returns a new column with f applied to each pair of
// values of c and other at the same position, named after c.
// It panics if the columns have different lengths.
func (c *Column[T]) Combine(other *Column[T], f func(a, b T) T) *Column[T] {
	mustSameLen("Combine", len(c.values), len(other.values))
	out := make([]T, len(c.values))
	for i, v := range c.values {
		out[i] = f(v, other.values[i])
	}
	return derive(c, out, slices.Clone(c.index))
}

// Clip returns a new column with values limited to [lo, hi].
func Clip[T num.Ordered](c *Column[T], lo, hi T) *Column[T] {
	return c.Apply(func(v T) T { return min(max(v, lo), hi) })
}

// Between returns a boolean column that is true where the value
// lies between lo and hi, including the bounds if inclusive.
func Between[T num.Ordered](c *Column[T], lo, hi T, inclusive bool) *Column[bool] {
	return Transform(c, func(v T) bool {
		if inclusive {
			return v >= lo && v <= hi
		}
		return v > lo && v < hi
	})
}

// Equals returns whether a and b have the same length and values.
// Names and labels are not compared.
func Equals[T comparable](a, b *Column[T]) bool {
	return slices.Equal(a.values, b.values)
}

// AsType returns a copy of c converted to element type P. Only
// lossless conversions are allowed (see [dtype.Type.Widens]); any
// other conversion panics.
func AsType[P, T any](c *Column[T]) *Column[P] {
	from, to := dtype.For[T](), dtype.For[P]()
	if !from.Widens(to) || !to.Supported() {
		panic(fmt.Sprintf("column.AsType: cannot convert %s to %s", from, to))
	}
	if from == to {
		return derive(c, any(slices.Clone(c.values)).([]P), slices.Clone(c.index))
	}
	out := make([]P, len(c.values))
	for i, v := range c.values {
		out[i] = widen[P](any(v))
	}
	return derive(c, out, slices.Clone(c.index))
}

func widen[P any](v any) P {
	var p P
	switch dst := any(&p).(type) {
	case *float64:
		switch x := v.(type) {
		case float32:
			*dst = num.ToFloat64(x)
		case int32:
			*dst = num.ToFloat64(x)
		}
	case *int64:
		*dst = int64(v.(int32))
	case *string:
		*dst = string(v.(dtype.Str))
	case *dtype.Str:
		*dst = dtype.Str(v.(string))
	}
	return p
}
