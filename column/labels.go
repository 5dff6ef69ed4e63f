// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"fmt"
	"regexp"
	"slices"
)

func cardinality(labels []string) int {
	set := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		set[l] = struct{}{}
	}
	return len(set)
}

// Reindex replaces the row labels. It panics if the number of labels
// differs from the number of values. If verify is true, the number of
// distinct new labels must equal the number of distinct current labels,
// otherwise a [*LabelError] is returned and the labels are unchanged.
func (c *Column[T]) Reindex(labels []string, verify bool) error {
	if len(labels) != len(c.values) {
		panic(fmt.Sprintf("column.Reindex: %d labels for %d values", len(labels), len(c.values)))
	}
	if verify && cardinality(labels) != cardinality(c.index) {
		return &LabelError{Msg: fmt.Sprintf("%d distinct labels replacing %d", cardinality(labels), cardinality(c.index))}
	}
	c.index = slices.Clone(labels)
	return nil
}

// SetIndex replaces the row labels without verification.
// It panics if the number of labels differs from the number of values.
func (c *Column[T]) SetIndex(labels []string) {
	_ = c.Reindex(labels, false)
}

// AddPrefix resets the labels to the positions with the given prefix.
func (c *Column[T]) AddPrefix(prefix string) {
	c.index = NewIndex(len(c.values), prefix, "")
}

// AddSuffix resets the labels to the positions with the given suffix.
func (c *Column[T]) AddSuffix(suffix string) {
	c.index = NewIndex(len(c.values), "", suffix)
}

// ResetIndex resets the labels to the positions.
func (c *Column[T]) ResetIndex() {
	c.index = NewIndex(len(c.values), "", "")
}

// filter returns the values and labels at positions where keep is true.
func (c *Column[T]) filter(keep func(i int) bool) ([]T, []string) {
	var vals []T
	var idx []string
	for i, v := range c.values {
		if keep(i) {
			vals = append(vals, v)
			idx = append(idx, c.index[i])
		}
	}
	return vals, idx
}

func (c *Column[T]) notIn(labels []string) func(int) bool {
	return func(i int) bool { return !slices.Contains(labels, c.index[i]) }
}

// Drop returns a new column without the entries whose label
// is one of the given labels.
func (c *Column[T]) Drop(labels ...string) *Column[T] {
	vals, idx := c.filter(c.notIn(labels))
	return derive(c, vals, idx)
}

// DropInPlace removes the entries whose label is one of the given labels.
func (c *Column[T]) DropInPlace(labels ...string) {
	c.values, c.index = c.filter(c.notIn(labels))
}

// FilterByFunc returns a new column with the entries whose
// label satisfies keep.
func (c *Column[T]) FilterByFunc(keep func(label string) bool) *Column[T] {
	vals, idx := c.filter(func(i int) bool { return keep(c.index[i]) })
	return derive(c, vals, idx)
}

// FilterByRegex returns a new column with the entries whose
// label matches the given regular expression.
func (c *Column[T]) FilterByRegex(expr string) (*Column[T], error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	return c.FilterByFunc(re.MatchString), nil
}

// Append appends the values and labels of other to c, reallocating the
// storage. If ignoreIndex is true, the labels are reset to the positions.
// If verify is true, the resulting labels must be unique, otherwise a
// [*LabelError] is returned and c is unchanged.
func (c *Column[T]) Append(other *Column[T], ignoreIndex, verify bool) error {
	n := len(c.values) + len(other.values)
	var idx []string
	if ignoreIndex {
		idx = NewIndex(n, "", "")
	} else {
		idx = make([]string, 0, n)
		idx = append(append(idx, c.index...), other.index...)
	}
	if verify && cardinality(idx) != n {
		return &LabelError{Msg: "found duplicate labels"}
	}
	vals := make([]T, 0, n)
	c.values = append(append(vals, c.values...), other.values...)
	c.index = idx
	return nil
}
