// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store provides [Store], the heterogeneous column store
// underlying a table. Columns are kept in one [block.Block] per
// element type, with a name to type tag index that also records
// the presentation order of the columns. All columns share the
// row count and row labels of the first column inserted.
//
// Typed operations are generic functions taking the element type
// explicitly, e.g. Get[float64](s, "price"). They only touch the
// columns whose type tag matches the requested type.
package store

import (
	"log/slog"
	"slices"
	"strconv"

	"cogentcore.org/dami/base/keylist"
	"cogentcore.org/dami/block"
	"cogentcore.org/dami/column"
	"cogentcore.org/dami/dtype"
)

// Store is a collection of named, equal-length columns of
// heterogeneous element types. The zero value is an empty store.
type Store struct {
	float64s *block.Block[float64]
	float32s *block.Block[float32]
	int64s   *block.Block[int64]
	int32s   *block.Block[int32]
	strings  *block.Block[string]
	strs     *block.Block[dtype.Str]
	bools    *block.Block[bool]

	// types maps column names to type tags, in presentation order.
	types keylist.List[string, dtype.Type]

	// rows is the number of rows of every column.
	rows int

	// index holds the row labels shared by all columns.
	index []string
}

// New returns a new empty [Store].
func New() *Store {
	return &Store{}
}

// blockOf returns the location of the block holding columns of
// element type T, or nil if T is not a supported element type.
func blockOf[T any](s *Store) **block.Block[T] {
	var p any
	switch any(*new(T)).(type) {
	case float64:
		p = &s.float64s
	case float32:
		p = &s.float32s
	case int64:
		p = &s.int64s
	case int32:
		p = &s.int32s
	case string:
		p = &s.strings
	case dtype.Str:
		p = &s.strs
	case bool:
		p = &s.bools
	default:
		return nil
	}
	return p.(**block.Block[T])
}

// Block returns the block of columns of element type T,
// nil if there are none.
func Block[T any](s *Store) *block.Block[T] {
	bp := blockOf[T](s)
	if bp == nil || (*bp).Len() == 0 {
		return nil
	}
	return *bp
}

// Len returns the number of columns.
func (s *Store) Len() int { return s.types.Len() }

// Rows returns the number of rows.
func (s *Store) Rows() int { return s.rows }

// Names returns the column names in presentation order.
func (s *Store) Names() []string { return slices.Clone(s.types.Keys) }

// Index returns a copy of the row labels.
func (s *Store) Index() []string { return slices.Clone(s.index) }

// Has returns whether there is a column with the given name.
func (s *Store) Has(name string) bool { return s.types.Has(name) }

// DType returns the type tag of the named column,
// and false if there is no such column.
func (s *Store) DType(name string) (dtype.Type, bool) {
	return s.types.AtTry(name)
}

// DTypes returns a snapshot of the column name to type tag mapping.
func (s *Store) DTypes() map[string]dtype.Type {
	return s.types.Map()
}

// keyError returns a [KeyError] for a missing column name.
func (s *Store) keyError(name string) error {
	return newKeyError(name, s.types.Keys)
}

// Add inserts a column into the store, which takes ownership of it.
//
// A column whose element type is not supported is dropped with a
// warning, leaving the store unchanged. Otherwise, in order:
//   - a column whose length differs from the row count of a
//     non-empty store is rejected with a [*LengthError];
//   - if preserveName is false or the name is taken, the column is
//     renamed to the current number of columns, and rejected with
//     a [*NameError] if that name is also taken;
//   - the first column of an empty store sets the row count and
//     row labels; every column takes the shared row labels;
//   - the column is appended to the block of its type and to the
//     presentation order.
//
// A rejected column leaves the store unchanged.
func Add[T any](s *Store, c *column.Column[T], preserveName bool) error {
	tp := dtype.For[T]()
	bp := blockOf[T](s)
	if bp == nil || c.DType() != tp {
		slog.Warn("column with unsupported type was not added", "column", c.Name(), "dtype", c.DType())
		return nil
	}
	if s.types.Len() > 0 && c.Len() != s.rows {
		return &LengthError{Name: c.Name(), Got: c.Len(), Want: s.rows}
	}
	name := c.Name()
	if !preserveName || s.types.Has(name) {
		name = strconv.Itoa(s.types.Len())
		if s.types.Has(name) {
			return &NameError{Name: name}
		}
	}
	if s.types.Len() == 0 {
		s.rows = c.Len()
		s.index = c.Index()
	}
	c.SetName(name)
	c.SetIndex(s.index)
	if *bp == nil {
		*bp = block.New[T]()
	}
	(*bp).Push(c)
	s.types.Add(name, tp)
	return nil
}

// ref returns the stored column with the given name and type T.
func ref[T any](s *Store, name string) (*column.Column[T], error) {
	tp, ok := s.types.AtTry(name)
	if !ok {
		return nil, s.keyError(name)
	}
	if want := dtype.For[T](); tp != want {
		return nil, &TypeError{Name: name, Have: tp, Want: want}
	}
	c, _ := (*blockOf[T](s)).ByName(name)
	return c, nil
}

// Get returns a copy of the named column as element type T. It returns
// a [*KeyError] if there is no such column and a [*TypeError] if the
// column holds a different type.
func Get[T any](s *Store, name string) (*column.Column[T], error) {
	c, err := ref[T](s, name)
	if err != nil {
		return nil, err
	}
	return c.Clone(), nil
}

// Drop removes the named columns. If any name does not exist,
// a [*KeyError] is returned and nothing is removed. Dropping the
// last column resets the row count and labels.
func (s *Store) Drop(names ...string) error {
	for _, nm := range names {
		if !s.types.Has(nm) {
			return s.keyError(nm)
		}
	}
	for _, nm := range names {
		tp, ok := s.types.AtTry(nm)
		if !ok {
			continue
		}
		switch tp {
		case dtype.Float64:
			s.float64s.Drop(nm)
		case dtype.Float32:
			s.float32s.Drop(nm)
		case dtype.Int64:
			s.int64s.Drop(nm)
		case dtype.Int32:
			s.int32s.Drop(nm)
		case dtype.String:
			s.strings.Drop(nm)
		case dtype.Borrowed:
			s.strs.Drop(nm)
		case dtype.Bool:
			s.bools.Drop(nm)
		}
		s.types.DeleteByKey(nm)
	}
	if s.types.Len() == 0 {
		s.rows = 0
		s.index = nil
	}
	return nil
}

// Reindex replaces the shared row labels of the store and every column.
// It panics if the number of labels differs from the row count.
func (s *Store) Reindex(labels []string) {
	if len(labels) != s.rows {
		panic("store.Reindex: " + strconv.Itoa(len(labels)) + " labels for " + strconv.Itoa(s.rows) + " rows")
	}
	s.index = slices.Clone(labels)
	s.eachColumn(func(name string, tp dtype.Type) {
		switch tp {
		case dtype.Float64:
			reindexIn(s.float64s, name, labels)
		case dtype.Float32:
			reindexIn(s.float32s, name, labels)
		case dtype.Int64:
			reindexIn(s.int64s, name, labels)
		case dtype.Int32:
			reindexIn(s.int32s, name, labels)
		case dtype.String:
			reindexIn(s.strings, name, labels)
		case dtype.Borrowed:
			reindexIn(s.strs, name, labels)
		case dtype.Bool:
			reindexIn(s.bools, name, labels)
		}
	})
}

func reindexIn[T any](b *block.Block[T], name string, labels []string) {
	c, _ := b.ByName(name)
	c.SetIndex(labels)
}

// eachColumn calls f for every column in presentation order.
func (s *Store) eachColumn(f func(name string, tp dtype.Type)) {
	for i, nm := range s.types.Keys {
		f(nm, s.types.Values[i])
	}
}

// Clone returns a deep copy of the store, re-inserting copies
// of the columns in presentation order.
func (s *Store) Clone() *Store {
	out := New()
	for _, nm := range s.types.Keys {
		if err := CopyColumn(out, s, nm); err != nil {
			panic("store.Clone: " + err.Error())
		}
	}
	return out
}

// CopyColumn adds a copy of the named column of src to dst,
// keeping its name where possible. See [Add] for the errors.
func CopyColumn(dst, src *Store, name string) error {
	tp, ok := src.types.AtTry(name)
	if !ok {
		return src.keyError(name)
	}
	switch tp {
	case dtype.Float64:
		return copyInto[float64](dst, src, name)
	case dtype.Float32:
		return copyInto[float32](dst, src, name)
	case dtype.Int64:
		return copyInto[int64](dst, src, name)
	case dtype.Int32:
		return copyInto[int32](dst, src, name)
	case dtype.String:
		return copyInto[string](dst, src, name)
	case dtype.Borrowed:
		return copyInto[dtype.Str](dst, src, name)
	case dtype.Bool:
		return copyInto[bool](dst, src, name)
	}
	return &TypeError{Name: name, Have: tp, Want: dtype.Object}
}

func copyInto[T any](dst, src *Store, name string) error {
	c, err := Get[T](src, name)
	if err != nil {
		return err
	}
	return Add(dst, c, true)
}
