// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"slices"

	"cogentcore.org/dami/base/num"
	"cogentcore.org/dami/dtype"
	"gonum.org/v1/gonum/floats"
)

// Truthy is the constraint for columns that [All] and [Any] accept.
type Truthy interface {
	dtype.Numeric | bool
}

// Float64s returns the values of a numeric column as float64.
// A float64 column returns its own values without copying.
func Float64s[T dtype.Numeric](c *Column[T]) []float64 {
	if f, ok := any(c.values).([]float64); ok {
		return f
	}
	return num.ToFloat64s(c.values)
}

// Add returns the element-wise sum of a and b, named after a.
// It panics if the columns have different lengths.
func Add[T dtype.Numeric](a, b *Column[T]) *Column[T] {
	return a.Combine(b, func(x, y T) T { return x + y })
}

// Sub returns the element-wise difference of a and b.
func Sub[T dtype.Numeric](a, b *Column[T]) *Column[T] {
	return a.Combine(b, func(x, y T) T { return x - y })
}

// Mul returns the element-wise product of a and b.
func Mul[T dtype.Numeric](a, b *Column[T]) *Column[T] {
	return a.Combine(b, func(x, y T) T { return x * y })
}

// Div returns the element-wise quotient of a and b.
// Integer division by zero panics, as it does in Go.
func Div[T dtype.Numeric](a, b *Column[T]) *Column[T] {
	return a.Combine(b, func(x, y T) T { return x / y })
}

// AddScalar returns c with s added to every value.
func AddScalar[T dtype.Numeric](c *Column[T], s T) *Column[T] {
	return c.Apply(func(v T) T { return v + s })
}

// MulScalar returns c with every value multiplied by s.
func MulScalar[T dtype.Numeric](c *Column[T], s T) *Column[T] {
	return c.Apply(func(v T) T { return v * s })
}

// Sum returns the sum of the non-NaN values.
func Sum[T dtype.Numeric](c *Column[T]) T {
	var s T
	for _, v := range c.values {
		if v == v {
			s += v
		}
	}
	return s
}

// Prod returns the product of the non-NaN values.
func Prod[T dtype.Numeric](c *Column[T]) T {
	var p T = 1
	for _, v := range c.values {
		if v == v {
			p *= v
		}
	}
	return p
}

// Count returns the number of non-NaN values.
func Count[T dtype.Numeric](c *Column[T]) int {
	n := 0
	for _, v := range c.values {
		if !num.IsNaN(v) {
			n++
		}
	}
	return n
}

func extreme[T dtype.Numeric](c *Column[T], better func(a, b T) bool) (T, error) {
	var m T
	found := false
	for _, v := range c.values {
		if num.IsNaN(v) {
			continue
		}
		if !found || better(v, m) {
			m, found = v, true
		}
	}
	if !found {
		return m, ErrEmpty
	}
	return m, nil
}

// Min returns the smallest non-NaN value, or [ErrEmpty].
func Min[T dtype.Numeric](c *Column[T]) (T, error) {
	return extreme(c, func(a, b T) bool { return a < b })
}

// Max returns the largest non-NaN value, or [ErrEmpty].
func Max[T dtype.Numeric](c *Column[T]) (T, error) {
	return extreme(c, func(a, b T) bool { return a > b })
}

// All returns whether every value is non-zero (true for bool columns).
func All[T Truthy](c *Column[T]) bool {
	var z T
	return !slices.Contains(c.values, z)
}

// Any returns whether at least one value is non-zero (true for bool columns).
func Any[T Truthy](c *Column[T]) bool {
	var z T
	return slices.ContainsFunc(c.values, func(v T) bool { return v != z })
}

// cumulate returns a running accumulation of the values. NaN values
// are skipped, leaving NaN at their position in the result.
func cumulate[T dtype.Numeric](c *Column[T], f func(acc, v T) T) *Column[T] {
	out := make([]T, len(c.values))
	var acc T
	started := false
	for i, v := range c.values {
		if num.IsNaN(v) {
			out[i] = v
			continue
		}
		if !started {
			acc, started = v, true
		} else {
			acc = f(acc, v)
		}
		out[i] = acc
	}
	return derive(c, out, slices.Clone(c.index))
}

// CumSum returns the cumulative sum.
func CumSum[T dtype.Numeric](c *Column[T]) *Column[T] {
	return cumulate(c, func(acc, v T) T { return acc + v })
}

// CumProd returns the cumulative product.
func CumProd[T dtype.Numeric](c *Column[T]) *Column[T] {
	return cumulate(c, func(acc, v T) T { return acc * v })
}

// CumMax returns the cumulative maximum.
func CumMax[T dtype.Numeric](c *Column[T]) *Column[T] {
	return cumulate(c, func(acc, v T) T { return max(acc, v) })
}

// CumMin returns the cumulative minimum.
func CumMin[T dtype.Numeric](c *Column[T]) *Column[T] {
	return cumulate(c, func(acc, v T) T { return min(acc, v) })
}

// Dot returns the dot product of a and b, which must have the same length.
func Dot[T dtype.Numeric](a, b *Column[T]) (float64, error) {
	if a.Len() != b.Len() {
		return 0, lengthError("Dot", a.Len(), b.Len())
	}
	return floats.Dot(Float64s(a), Float64s(b)), nil
}
