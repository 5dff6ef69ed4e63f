// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table provides [Table], a collection of named, equal-length
// columns of heterogeneous element types sharing one set of row labels.
//
// Operations that depend on the element type are generic functions
// that name the type explicitly, and only act on the columns of that
// type, for example:
//
//	dt := table.New()
//	table.Add(dt, column.NewNamed("price", []float64{1.5, 2.5}), true)
//	table.Add(dt, column.NewNamed("qty", []int64{3, 4}), true)
//	doubled := table.ApplyMap(dt, func(v float64) float64 { return 2 * v })
//
// Columns of other types are skipped by typed operations.
package table

import (
	"fmt"
	"maps"
	"slices"

	"cogentcore.org/dami/base/errors"
	"cogentcore.org/dami/base/metadata"
	"cogentcore.org/dami/column"
	"cogentcore.org/dami/dtype"
	"cogentcore.org/dami/store"
)

// Table is a collection of named, equal-length columns of
// heterogeneous element types. Columns are kept in a [store.Store],
// which enforces that all columns have the same number of rows and
// that names are unique.
type Table struct {

	// store holds the columns.
	store *store.Store

	// Meta is misc metadata for the table, such as its name
	// and the source it was read from.
	Meta metadata.Data
}

// New returns a new empty Table. Can pass an optional name
// which sets metadata.
func New(name ...string) *Table {
	dt := &Table{store: store.New()}
	if len(name) > 0 {
		dt.Meta.SetName(name[0])
	}
	return dt
}

// FromMap returns a new Table with one column per map entry,
// added in sorted key order. It fails if the columns differ
// in length.
func FromMap[T any](m map[string][]T) (*Table, error) {
	dt := New()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if err := Add(dt, column.NewNamed(k, slices.Clone(m[k])), true); err != nil {
			return nil, err
		}
	}
	return dt, nil
}

// FromRows returns a new Table from row-major values, with one
// column per position of the first row, named by position.
// It panics if a row is shorter than the first row.
func FromRows[T any](rows [][]T) *Table {
	dt := New()
	if len(rows) == 0 {
		return dt
	}
	nc := len(rows[0])
	for ci := range nc {
		vals := make([]T, len(rows))
		for ri, r := range rows {
			if len(r) < nc {
				panic(fmt.Sprintf("table.FromRows: row %d has %d values, need %d", ri, len(r), nc))
			}
			vals[ri] = r[ci]
		}
		errors.Log(Add(dt, column.New(vals), false))
	}
	return dt
}

// FromColumns returns a new Table with the given columns, which
// the table takes ownership of, keeping their names where possible.
func FromColumns[T any](cols ...*column.Column[T]) (*Table, error) {
	dt := New()
	for _, c := range cols {
		if err := Add(dt, c, true); err != nil {
			return nil, err
		}
	}
	return dt, nil
}

// NumRows returns the number of rows.
func (dt *Table) NumRows() int { return dt.store.Rows() }

// NumColumns returns the number of columns.
func (dt *Table) NumColumns() int { return dt.store.Len() }

// Names returns the column names in presentation order.
func (dt *Table) Names() []string { return dt.store.Names() }

// Index returns a copy of the row labels.
func (dt *Table) Index() []string { return dt.store.Index() }

// HasColumn returns whether there is a column with the given name.
func (dt *Table) HasColumn(name string) bool { return dt.store.Has(name) }

// DType returns the type tag of the named column,
// and false if there is no such column.
func (dt *Table) DType(name string) (dtype.Type, bool) { return dt.store.DType(name) }

// DTypes returns a snapshot of the column name to type tag mapping.
func (dt *Table) DTypes() map[string]dtype.Type { return dt.store.DTypes() }

// Add adds a column to the table, which takes ownership of it.
// See [store.Add] for the naming and length rules.
func Add[T any](dt *Table, c *column.Column[T], preserveName bool) error {
	return store.Add(dt.store, c, preserveName)
}

// Get returns a copy of the named column as element type T.
// It returns a [*store.KeyError] if there is no such column and
// a [*store.TypeError] if the column holds another type.
func Get[T any](dt *Table, name string) (*column.Column[T], error) {
	return store.Get[T](dt.store, name)
}

// Drop returns a copy of the table without the named columns.
func (dt *Table) Drop(names ...string) (*Table, error) {
	out := dt.Clone()
	if err := out.DropInPlace(names...); err != nil {
		return nil, err
	}
	return out, nil
}

// DropInPlace removes the named columns. If any of them does
// not exist, nothing is removed and a [*store.KeyError] is returned.
func (dt *Table) DropInPlace(names ...string) error {
	return dt.store.Drop(names...)
}

// Reindex replaces the row labels. It panics if the number
// of labels differs from the number of rows.
func (dt *Table) Reindex(labels []string) {
	dt.store.Reindex(labels)
}

// ResetIndex replaces the row labels with row positions.
func (dt *Table) ResetIndex() {
	dt.store.Reindex(column.NewIndex(dt.NumRows(), "", ""))
}

// Clone returns a deep copy of the table.
func (dt *Table) Clone() *Table {
	return &Table{store: dt.store.Clone(), Meta: dt.Meta.Clone()}
}

// Value returns the value at the given row position of the named column.
func (dt *Table) Value(name string, row int) (any, error) {
	return dt.store.Value(name, row)
}

// At returns the value of the named column of type T at the
// row with the given label. If labels repeat, the first match
// is returned.
func At[T any](dt *Table, label, name string) (T, error) {
	var zero T
	c, err := store.Column[T](dt.store, name)
	if err != nil {
		return zero, err
	}
	v, ok := c.Loc(label)
	if !ok {
		return zero, fmt.Errorf("table.At: row label %q does not exist", label)
	}
	return v, nil
}

// RowLabel returns the label of the given row position.
func (dt *Table) RowLabel(row int) string {
	return dt.store.Index()[row]
}

// IsValidRow returns an error if the row is out of range.
func (dt *Table) IsValidRow(row int) error {
	if row < 0 || row >= dt.NumRows() {
		return fmt.Errorf("table.Table IsValidRow: row %d is out of valid range [0..%d]", row, dt.NumRows())
	}
	return nil
}

// Text returns the values of the named column formatted as text.
func (dt *Table) Text(name string, f column.Format) ([]string, error) {
	return dt.store.Text(name, f)
}
