// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Text is the constraint for the string element types.
type Text interface {
	~string
}

// Lower returns a new column with every value mapped to lower case.
func Lower[T Text](c *Column[T]) *Column[T] {
	lc := cases.Lower(language.Und)
	return c.Apply(func(v T) T { return T(lc.String(string(v))) })
}

// Upper returns a new column with every value mapped to upper case.
func Upper[T Text](c *Column[T]) *Column[T] {
	uc := cases.Upper(language.Und)
	return c.Apply(func(v T) T { return T(uc.String(string(v))) })
}

// Title returns a new column with every value mapped to title case.
func Title[T Text](c *Column[T]) *Column[T] {
	tc := cases.Title(language.Und)
	return c.Apply(func(v T) T { return T(tc.String(string(v))) })
}

// Contains returns a boolean column that is true where the
// value contains substr.
func Contains[T Text](c *Column[T], substr string) *Column[bool] {
	return Transform(c, func(v T) bool { return strings.Contains(string(v), substr) })
}

// DescribeTextLabels are the labels of the column returned by [DescribeText].
var DescribeTextLabels = []string{"count", "unique", "top", "freq"}

// DescribeText returns a summary of a string column: the number of
// values, of distinct values, the most frequent value and its count.
func DescribeText[T Text](c *Column[T]) (*Column[string], error) {
	top, freq, ok := Mode(c)
	if !ok {
		return nil, ErrEmpty
	}
	vals := []string{strconv.Itoa(c.Len()), strconv.Itoa(NUnique(c)), string(top), strconv.Itoa(freq)}
	return derive(c, vals, slices.Clone(DescribeTextLabels)), nil
}
