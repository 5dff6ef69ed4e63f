// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"math"
	"slices"

	"cogentcore.org/dami/base/num"
	"github.com/chewxy/math32"
)

// nan returns a NaN of type T.
func nan[T num.Float]() T {
	var z T
	switch any(z).(type) {
	case float32:
		return T(math32.NaN())
	}
	return T(math.NaN())
}

// round rounds v to the given number of decimals, in the precision of T.
func round[T num.Float](v T, decimals int) T {
	switch x := any(v).(type) {
	case float32:
		p := math32.Pow10(decimals)
		return T(math32.Round(x*p) / p)
	case float64:
		p := math.Pow10(decimals)
		return T(math.Round(x*p) / p)
	}
	return v
}

// IsNA returns a boolean column that is true where the value is NaN.
func IsNA[T num.Float](c *Column[T]) *Column[bool] {
	return Transform(c, num.IsNaN[T])
}

// NotNA returns a boolean column that is true where the value is not NaN.
func NotNA[T num.Float](c *Column[T]) *Column[bool] {
	return Transform(c, func(v T) bool { return !num.IsNaN(v) })
}

// FillNA returns a new column with NaN values replaced by value.
func FillNA[T num.Float](c *Column[T], value T) *Column[T] {
	return c.Mask(value, num.IsNaN[T])
}

// FillNAInPlace replaces NaN values by value.
func FillNAInPlace[T num.Float](c *Column[T], value T) {
	c.MaskInPlace(value, num.IsNaN[T])
}

// DropNA returns a new column without the NaN entries.
func DropNA[T num.Float](c *Column[T]) *Column[T] {
	vals, idx := c.filter(func(i int) bool { return !num.IsNaN(c.values[i]) })
	return derive(c, vals, idx)
}

// Round returns a new column with values rounded to the
// given number of decimals, half away from zero.
func Round[T num.Float](c *Column[T], decimals int) *Column[T] {
	return c.Apply(func(v T) T { return round(v, decimals) })
}

// shifted returns f(v[i], v[i-periods]) for each position, with NaN
// where i-periods falls outside the column. Negative periods look ahead.
func shifted[T num.Float](c *Column[T], periods int, f func(cur, prev T) T) *Column[T] {
	out := make([]T, len(c.values))
	for i, v := range c.values {
		j := i - periods
		if j < 0 || j >= len(c.values) {
			out[i] = nan[T]()
			continue
		}
		out[i] = f(v, c.values[j])
	}
	return derive(c, out, slices.Clone(c.index))
}

// Diff returns the difference of each value with the value
// periods positions before it, NaN padded.
func Diff[T num.Float](c *Column[T], periods int) *Column[T] {
	return shifted(c, periods, func(cur, prev T) T { return cur - prev })
}

// PctChange returns the fractional change of each value from
// the value periods positions before it, NaN padded.
func PctChange[T num.Float](c *Column[T], periods int) *Column[T] {
	return shifted(c, periods, func(cur, prev T) T { return cur/prev - 1 })
}

// FirstValidIndex returns the label of the first non-NaN value,
// and false if there is none.
func FirstValidIndex[T num.Float](c *Column[T]) (string, bool) {
	for i, v := range c.values {
		if v == v {
			return c.index[i], true
		}
	}
	return "", false
}
