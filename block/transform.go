// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package block

import (
	"fmt"
	"slices"

	"cogentcore.org/dami/column"
	"golang.org/x/sync/errgroup"
)

// transformColumn returns the column produced by f from c, and an
// error if f did not keep the length of c.
func transformColumn[T, P any](c *column.Column[T], f func([]T) []P) (*column.Column[P], error) {
	vals := f(c.Values())
	if len(vals) != c.Len() {
		return nil, fmt.Errorf("block.Transform: column %q: function returned %d values for %d", c.Name(), len(vals), c.Len())
	}
	out := column.NewNamed(c.Name(), vals)
	out.SetIndex(c.Index())
	return out, nil
}

// Transform returns a new block of element type P computed from b.
// For [Columns], f maps the values of each column to the values of
// the corresponding new column. For [Rows], f maps the values of each
// row to the values of the corresponding new row. It panics if f
// changes the number of values. Row-wise transforms run sequentially.
func Transform[T, P any](b *Block[T], axis Axis, f func([]T) []P) *Block[P] {
	out := &Block[P]{columns: make([]*column.Column[P], len(b.columns)), names: slices.Clone(b.names)}
	if axis == Columns {
		for i, c := range b.columns {
			tc, err := transformColumn(c, f)
			if err != nil {
				panic(err.Error())
			}
			out.columns[i] = tc
		}
		return out
	}
	nr, nc := b.Rows(), b.Len()
	cols := make([][]P, nc)
	for i := range cols {
		cols[i] = make([]P, nr)
	}
	buf := make([]T, 0, nc)
	for r := range nr {
		row := f(b.row(r, buf))
		if len(row) != nc {
			panic(fmt.Sprintf("block.Transform: row %d: function returned %d values for %d columns", r, len(row), nc))
		}
		for i, v := range row {
			cols[i][r] = v
		}
	}
	for i, c := range b.columns {
		col := column.NewNamed(c.Name(), cols[i])
		col.SetIndex(c.Index())
		out.columns[i] = col
	}
	return out
}

// ParTransform is like [Transform] along [Columns], with the columns
// processed concurrently by at most workers goroutines (no limit if
// <= 0). f must be safe for concurrent use. A length violation
// panics in the calling goroutine once all workers have finished.
func ParTransform[T, P any](b *Block[T], workers int, f func([]T) []P) *Block[P] {
	out := &Block[P]{columns: make([]*column.Column[P], len(b.columns)), names: slices.Clone(b.names)}
	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, c := range b.columns {
		g.Go(func() error {
			tc, err := transformColumn(c, f)
			out.columns[i] = tc
			return err
		})
	}
	if err := g.Wait(); err != nil {
		panic(err.Error())
	}
	return out
}

// AsType returns a copy of b with every column converted to element
// type P. It panics unless the conversion is lossless, see [column.AsType].
func AsType[P, T any](b *Block[T]) *Block[P] {
	out := &Block[P]{columns: make([]*column.Column[P], len(b.columns)), names: slices.Clone(b.names)}
	for i, c := range b.columns {
		out.columns[i] = column.AsType[P](c)
	}
	return out
}
