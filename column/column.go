// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package column provides [Column], a named and labeled one
// dimensional array of values of a single element type.
//
// Operations that apply to every element type are methods.
// Operations that need a narrower element type (numeric,
// floating point, comparable, ordered, string) are generic
// functions in this package, since Go methods cannot add
// type constraints.
package column

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"cogentcore.org/dami/dtype"
)

// DefaultName is the name of a column constructed without one.
const DefaultName = "series"

// Column is a named, labeled one dimensional array of values of type T.
// The index holds one label per value, and always has the same length
// as the values. Labels need not be unique; lookups by label use the
// first match. The zero value is an empty unnamed column.
type Column[T any] struct {
	values []T
	name   string
	index  []string
	dtype  dtype.Type
}

// Pair is a label and value, for constructing a labeled column.
type Pair[T any] struct {
	Label string
	Value T
}

// NewIndex returns n positional labels formed as prefix + position + suffix.
func NewIndex(n int, prefix, suffix string) []string {
	idx := make([]string, n)
	for i := range idx {
		idx[i] = prefix + strconv.Itoa(i) + suffix
	}
	return idx
}

// New returns a new column with the default name and positional
// labels, taking ownership of the given values slice.
func New[T any](values []T) *Column[T] {
	return &Column[T]{values: values, name: DefaultName, index: NewIndex(len(values), "", ""), dtype: dtype.For[T]()}
}

// NewNamed returns a new column with the given name,
// taking ownership of the given values slice.
func NewNamed[T any](name string, values []T) *Column[T] {
	c := New(values)
	c.name = name
	return c
}

// FromValues returns a new column with a copy of the given values.
func FromValues[T any](values ...T) *Column[T] {
	return New(slices.Clone(values))
}

// FromMap returns a new column from a map with exactly one key,
// which becomes the name of the column. Any other number of keys
// returns a [*MapKeysError].
func FromMap[T any](m map[string][]T) (*Column[T], error) {
	if len(m) != 1 {
		return nil, &MapKeysError{Keys: len(m)}
	}
	for name, vals := range m {
		return NewNamed(name, slices.Clone(vals)), nil
	}
	return nil, nil
}

// FromPairs returns a new column whose labels and values
// come from the given pairs, in order.
func FromPairs[T any](pairs ...Pair[T]) *Column[T] {
	vals := make([]T, len(pairs))
	idx := make([]string, len(pairs))
	for i, p := range pairs {
		vals[i] = p.Value
		idx[i] = p.Label
	}
	c := New(vals)
	c.index = idx
	return c
}

// FromLabeled returns a new column from a label to value map,
// with the labels in sorted order.
func FromLabeled[T any](m map[string]T) *Column[T] {
	labels := slices.Sorted(maps.Keys(m))
	vals := make([]T, len(labels))
	for i, l := range labels {
		vals[i] = m[l]
	}
	c := New(vals)
	c.index = labels
	return c
}

// derive returns a new column with the same name as c
// holding the given values and labels.
func derive[P, T any](c *Column[T], values []P, index []string) *Column[P] {
	return &Column[P]{values: values, name: c.name, index: index, dtype: dtype.For[P]()}
}

// Name returns the name of the column.
func (c *Column[T]) Name() string { return c.name }

// SetName sets the name of the column.
func (c *Column[T]) SetName(name string) { c.name = name }

// DType returns the type tag of the column.
func (c *Column[T]) DType() dtype.Type { return c.dtype }

// Len returns the number of values.
func (c *Column[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.values)
}

// IsEmpty returns whether the column has no values.
func (c *Column[T]) IsEmpty() bool { return c.Len() == 0 }

// Values returns the values of the column. The slice is owned by
// the column: elements may be modified but not appended to.
func (c *Column[T]) Values() []T { return c.values }

// ToSlice returns a copy of the values.
func (c *Column[T]) ToSlice() []T { return slices.Clone(c.values) }

// Index returns a copy of the row labels.
func (c *Column[T]) Index() []string { return slices.Clone(c.index) }

// Label returns the label at position i.
func (c *Column[T]) Label(i int) string { return c.index[i] }

// At returns the value at position i.
func (c *Column[T]) At(i int) T { return c.values[i] }

// Get returns the value at position i, and false if i is out of range.
func (c *Column[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(c.values) {
		var z T
		return z, false
	}
	return c.values[i], true
}

// Set sets the value at position i.
func (c *Column[T]) Set(i int, v T) { c.values[i] = v }

// Loc returns the value of the first entry with the given label,
// and false if there is none.
func (c *Column[T]) Loc(label string) (T, bool) {
	if i := slices.Index(c.index, label); i >= 0 {
		return c.values[i], true
	}
	var z T
	return z, false
}

// Item returns the single value of a column of length one,
// and an error for any other length.
func (c *Column[T]) Item() (T, error) {
	if len(c.values) != 1 {
		var z T
		return z, fmt.Errorf("column.Item: column %q has %d values, not 1", c.name, len(c.values))
	}
	return c.values[0], nil
}

// Clone returns a deep copy of the column.
func (c *Column[T]) Clone() *Column[T] {
	return &Column[T]{values: slices.Clone(c.values), name: c.name, index: slices.Clone(c.index), dtype: c.dtype}
}

// Head returns a new column with the first n entries,
// or all of them if there are fewer than n.
func (c *Column[T]) Head(n int) *Column[T] {
	n = min(max(n, 0), len(c.values))
	return derive(c, slices.Clone(c.values[:n]), slices.Clone(c.index[:n]))
}

// Tail returns a new column with the last n entries,
// or all of them if there are fewer than n.
func (c *Column[T]) Tail(n int) *Column[T] {
	n = min(max(n, 0), len(c.values))
	st := len(c.values) - n
	return derive(c, slices.Clone(c.values[st:]), slices.Clone(c.index[st:]))
}
