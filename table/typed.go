// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"

	"cogentcore.org/dami/base/errors"
	"cogentcore.org/dami/block"
	"cogentcore.org/dami/column"
	"cogentcore.org/dami/config"
	"cogentcore.org/dami/dtype"
	"cogentcore.org/dami/store"
)

// ErrNoColumns is returned by typed operations on a table
// that has no columns of the requested element type.
var ErrNoColumns = errors.New("no columns of the requested type")

// noColumns returns an [ErrNoColumns] error for type T.
func noColumns[T any](op string) error {
	return fmt.Errorf("table.%s: %w: %s", op, ErrNoColumns, dtype.For[T]())
}

// fromBlock returns a new table holding the columns of b.
func fromBlock[T any](b *block.Block[T]) *Table {
	dt := New()
	for _, c := range b.Columns() {
		errors.Must(Add(dt, c, true))
	}
	return dt
}

// Apply reduces the columns of type T along the given axis,
// see [block.Block.Apply]. For [block.Rows], f receives the values
// of the columns of type T in one row.
func Apply[T any](dt *Table, axis block.Axis, f func([]T) T) (*column.Column[T], error) {
	b := store.Block[T](dt.store)
	if b == nil {
		return nil, noColumns[T]("Apply")
	}
	return b.Apply(axis, f), nil
}

// ApplyMap returns a copy of the table with f applied to
// every value of the columns of type T.
func ApplyMap[T any](dt *Table, f func(T) T) *Table {
	out := dt.Clone()
	ApplyMapInPlace(out, f)
	return out
}

// ApplyMapInPlace applies f to every value of the columns of type T.
func ApplyMapInPlace[T any](dt *Table, f func(T) T) {
	if b := store.Block[T](dt.store); b != nil {
		b.ApplyMapInPlace(f)
	}
}

// ParApplyMap is like [ApplyMap] with the columns processed
// concurrently, by at most the configured number of workers.
// f must be safe for concurrent use.
func ParApplyMap[T any](dt *Table, f func(T) T) *Table {
	out := dt.Clone()
	if b := store.Block[T](out.store); b != nil {
		b.ParApplyMapInPlace(config.Current().Parallel.Workers, f)
	}
	return out
}

// Transform returns a new table with the columns of type T
// transformed into columns of type P, see [block.Transform].
// Columns of other types are not included. It panics if f
// changes the number of values.
func Transform[T, P any](dt *Table, axis block.Axis, f func([]T) []P) (*Table, error) {
	b := store.Block[T](dt.store)
	if b == nil {
		return nil, noColumns[T]("Transform")
	}
	return fromBlock(block.Transform(b, axis, f)), nil
}

// ParTransform is like [Transform] along [block.Columns], with the
// columns processed concurrently by at most the configured number
// of workers. f must be safe for concurrent use.
func ParTransform[T, P any](dt *Table, f func([]T) []P) (*Table, error) {
	b := store.Block[T](dt.store)
	if b == nil {
		return nil, noColumns[T]("ParTransform")
	}
	return fromBlock(block.ParTransform(b, config.Current().Parallel.Workers, f)), nil
}

// AsType returns a copy of the table with the columns of type T
// converted to type P, keeping their position. It panics unless
// the conversion is lossless, see [column.AsType].
func AsType[P, T any](dt *Table) *Table {
	out := New()
	out.Meta = dt.Meta.Clone()
	for _, nm := range dt.Names() {
		var err error
		if c, cerr := store.Column[T](dt.store, nm); cerr == nil {
			err = Add(out, column.AsType[P](c), true)
		} else {
			err = store.CopyColumn(out.store, dt.store, nm)
		}
		if err != nil {
			panic("table.AsType: " + err.Error())
		}
	}
	return out
}

// Assign returns a copy of the table with a new column named
// newName, computed by applying f to the column key of type T.
// If newName is taken, the new column is renamed, see [store.Add].
func Assign[T any](dt *Table, key, newName string, f func(T) T) (*Table, error) {
	out := dt.Clone()
	if err := AssignInPlace(out, key, newName, f); err != nil {
		return nil, err
	}
	return out, nil
}

// AssignInPlace is the in place version of [Assign].
func AssignInPlace[T any](dt *Table, key, newName string, f func(T) T) error {
	c, err := store.Column[T](dt.store, key)
	if err != nil {
		return err
	}
	nc := c.Apply(f)
	nc.SetName(newName)
	return Add(dt, nc, true)
}

// Combine returns a new table with the columns of type T that are
// in both tables, combined element-wise with f. It panics if the
// tables have different numbers of rows.
func Combine[T any](dt, other *Table, f func(a, b T) T) *Table {
	out := New()
	b := store.Block[T](dt.store)
	if b == nil {
		return out
	}
	for _, c := range b.Columns() {
		oc, err := store.Column[T](other.store, c.Name())
		if err != nil {
			continue
		}
		if err := Add(out, c.Combine(oc, f), true); err != nil {
			panic("table.Combine: " + err.Error())
		}
	}
	return out
}

// Mask returns a copy of the table where every value of type T
// for which cond is true is replaced by value.
func Mask[T any](dt *Table, value T, cond func(T) bool) *Table {
	out := dt.Clone()
	MaskInPlace(out, value, cond)
	return out
}

// MaskInPlace is the in place version of [Mask].
func MaskInPlace[T any](dt *Table, value T, cond func(T) bool) {
	if b := store.Block[T](dt.store); b != nil {
		for _, c := range b.Columns() {
			c.MaskInPlace(value, cond)
		}
	}
}

// ToMatrix returns the values of the columns of type T
// as rows of values, in presentation order.
func ToMatrix[T any](dt *Table) ([][]T, error) {
	b := store.Block[T](dt.store)
	if b == nil {
		return nil, noColumns[T]("ToMatrix")
	}
	cols := b.Columns()
	out := make([][]T, dt.NumRows())
	for r := range out {
		row := make([]T, len(cols))
		for i, c := range cols {
			row[i] = c.At(r)
		}
		out[r] = row
	}
	return out, nil
}
