// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package block provides [Block], the group of all columns of a table
// that share one element type, for batched element-wise operations
// and reductions across columns or rows.
package block

import (
	"fmt"
	"slices"

	"cogentcore.org/dami/column"
	"golang.org/x/sync/errgroup"
)

// Axis selects the direction of an operation over a [Block].
type Axis int32

const (
	// Rows applies a function to each row: one element
	// gathered from every column, in column order.
	Rows Axis = iota

	// Columns applies a function to each column's values.
	Columns
)

func (ax Axis) String() string {
	switch ax {
	case Rows:
		return "Rows"
	case Columns:
		return "Columns"
	}
	return fmt.Sprintf("Axis(%d)", int32(ax))
}

// Block is an ordered list of equal-length columns of element type T.
type Block[T any] struct {
	columns []*column.Column[T]
	names   []string
}

// New returns a new empty [Block].
func New[T any]() *Block[T] {
	return &Block[T]{}
}

// Push appends a column. It panics if the column length differs
// from the length of the columns already present.
func (b *Block[T]) Push(c *column.Column[T]) {
	if len(b.columns) > 0 && c.Len() != b.Rows() {
		panic(fmt.Sprintf("block.Push: column %q has %d rows, block has %d", c.Name(), c.Len(), b.Rows()))
	}
	b.columns = append(b.columns, c)
	b.names = append(b.names, c.Name())
}

// Len returns the number of columns.
func (b *Block[T]) Len() int {
	if b == nil {
		return 0
	}
	return len(b.columns)
}

// Rows returns the number of rows, 0 for a block without columns.
func (b *Block[T]) Rows() int {
	if b.Len() == 0 {
		return 0
	}
	return b.columns[0].Len()
}

// Names returns a copy of the column names, in order.
func (b *Block[T]) Names() []string { return slices.Clone(b.names) }

// Column returns the column at position i.
func (b *Block[T]) Column(i int) *column.Column[T] { return b.columns[i] }

// Columns returns the columns. The slice is owned by the block.
func (b *Block[T]) Columns() []*column.Column[T] { return b.columns }

// IndexOf returns the position of the named column, -1 if absent.
func (b *Block[T]) IndexOf(name string) int {
	if b == nil {
		return -1
	}
	return slices.Index(b.names, name)
}

// ByName returns the named column, and false if it is absent.
func (b *Block[T]) ByName(name string) (*column.Column[T], bool) {
	i := b.IndexOf(name)
	if i < 0 {
		return nil, false
	}
	return b.columns[i], true
}

// ValueAt returns the value at the given row of the named column.
func (b *Block[T]) ValueAt(row int, name string) (T, bool) {
	c, ok := b.ByName(name)
	if !ok {
		var z T
		return z, false
	}
	return c.Get(row)
}

// Drop removes the named column, returning false if it is absent.
func (b *Block[T]) Drop(name string) bool {
	i := b.IndexOf(name)
	if i < 0 {
		return false
	}
	b.columns = slices.Delete(b.columns, i, i+1)
	b.names = slices.Delete(b.names, i, i+1)
	return true
}

// Clone returns a deep copy of the block.
func (b *Block[T]) Clone() *Block[T] {
	out := &Block[T]{columns: make([]*column.Column[T], len(b.columns)), names: slices.Clone(b.names)}
	for i, c := range b.columns {
		out.columns[i] = c.Clone()
	}
	return out
}

// row gathers the values at row r of every column into dst.
func (b *Block[T]) row(r int, dst []T) []T {
	dst = dst[:0]
	for _, c := range b.columns {
		dst = append(dst, c.At(r))
	}
	return dst
}

// Apply reduces the block along the given axis. For [Rows], f
// receives the values of one row and the result has one value per
// row, labeled like the first column. For [Columns], f receives the
// values of one column and the result has one value per column,
// labeled with the column names. The slice passed to f must not be
// retained.
func (b *Block[T]) Apply(axis Axis, f func([]T) T) *column.Column[T] {
	switch axis {
	case Rows:
		nr := b.Rows()
		out := make([]T, nr)
		buf := make([]T, 0, b.Len())
		for r := range nr {
			out[r] = f(b.row(r, buf))
		}
		c := column.NewNamed("apply", out)
		if b.Len() > 0 {
			c.SetIndex(b.columns[0].Index())
		}
		return c
	default:
		out := make([]T, len(b.columns))
		for i, c := range b.columns {
			out[i] = f(c.Values())
		}
		c := column.NewNamed("apply", out)
		c.SetIndex(b.Names())
		return c
	}
}

// ApplyMap returns a new block with f applied to every value.
func (b *Block[T]) ApplyMap(f func(T) T) *Block[T] {
	out := &Block[T]{columns: make([]*column.Column[T], len(b.columns)), names: slices.Clone(b.names)}
	for i, c := range b.columns {
		out.columns[i] = c.Apply(f)
	}
	return out
}

// ApplyMapInPlace applies f to every value.
func (b *Block[T]) ApplyMapInPlace(f func(T) T) {
	for _, c := range b.columns {
		c.ApplyInPlace(f)
	}
}

// ParApplyMap is like [Block.ApplyMap], with the columns processed
// concurrently by at most workers goroutines (no limit if <= 0).
// f must be safe for concurrent use. Each goroutine writes only
// its own column, and the result is returned after all finish.
func (b *Block[T]) ParApplyMap(workers int, f func(T) T) *Block[T] {
	out := &Block[T]{columns: make([]*column.Column[T], len(b.columns)), names: slices.Clone(b.names)}
	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, c := range b.columns {
		g.Go(func() error {
			out.columns[i] = c.Apply(f)
			return nil
		})
	}
	g.Wait()
	return out
}

// ParApplyMapInPlace is the in place version of [Block.ParApplyMap].
func (b *Block[T]) ParApplyMapInPlace(workers int, f func(T) T) {
	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for _, c := range b.columns {
		g.Go(func() error {
			c.ApplyInPlace(f)
			return nil
		})
	}
	g.Wait()
}

// Mask returns a new block where every value for which cond is
// true is replaced by value.
func (b *Block[T]) Mask(value T, cond func(T) bool) *Block[T] {
	return b.ApplyMap(func(v T) T {
		if cond(v) {
			return value
		}
		return v
	})
}
