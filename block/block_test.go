// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package block

import (
	"strconv"
	"testing"

	"cogentcore.org/dami/column"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBlock() *Block[float64] {
	b := New[float64]()
	b.Push(column.NewNamed("a", []float64{1, 2, 3}))
	b.Push(column.NewNamed("b", []float64{10, 20, 30}))
	return b
}

func sum(vals []float64) float64 {
	s := 0.0
	for _, v := range vals {
		s += v
	}
	return s
}

func TestPush(t *testing.T) {
	b := testBlock()
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 3, b.Rows())
	assert.Equal(t, []string{"a", "b"}, b.Names())
	assert.Panics(t, func() { b.Push(column.NewNamed("c", []float64{1})) })
	assert.Equal(t, 2, b.Len())

	var nb *Block[int32]
	assert.Equal(t, 0, nb.Len())
	assert.Equal(t, -1, nb.IndexOf("x"))
	assert.Equal(t, 0, New[bool]().Rows())
}

func TestAccess(t *testing.T) {
	b := testBlock()
	c, ok := b.ByName("b")
	require.True(t, ok)
	assert.Equal(t, 20.0, c.At(1))
	_, ok = b.ByName("z")
	assert.False(t, ok)
	v, ok := b.ValueAt(2, "a")
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)
	_, ok = b.ValueAt(5, "a")
	assert.False(t, ok)

	assert.True(t, b.Drop("a"))
	assert.False(t, b.Drop("a"))
	assert.Equal(t, []string{"b"}, b.Names())
	assert.Equal(t, 0, b.IndexOf("b"))
}

func TestApply(t *testing.T) {
	b := testBlock()
	rows := b.Apply(Rows, sum)
	assert.Equal(t, []float64{11, 22, 33}, rows.Values())
	assert.Equal(t, []string{"0", "1", "2"}, rows.Index())

	cols := b.Apply(Columns, sum)
	assert.Equal(t, []float64{6, 60}, cols.Values())
	assert.Equal(t, []string{"a", "b"}, cols.Index())

	assert.Equal(t, "Columns", Columns.String())
	assert.Equal(t, 0, New[float64]().Apply(Rows, sum).Len())
}

func TestApplyMap(t *testing.T) {
	b := testBlock()
	neg := func(v float64) float64 { return -v }
	m := b.ApplyMap(neg)
	assert.Equal(t, []float64{-1, -2, -3}, m.Column(0).Values())
	assert.Equal(t, []float64{1, 2, 3}, b.Column(0).Values())

	p := b.ParApplyMap(2, neg)
	for i := range b.Len() {
		assert.Equal(t, m.Column(i).Values(), p.Column(i).Values())
	}
	assert.Equal(t, m.Names(), p.Names())

	b.ParApplyMapInPlace(0, neg)
	assert.Equal(t, []float64{-10, -20, -30}, b.Column(1).Values())
	b.ApplyMapInPlace(neg)
	assert.Equal(t, []float64{10, 20, 30}, b.Column(1).Values())

	mk := b.Mask(0, func(v float64) bool { return v > 2 })
	assert.Equal(t, []float64{1, 2, 0}, mk.Column(0).Values())
}

func TestParApplyMapManyColumns(t *testing.T) {
	b := New[int64]()
	for i := range 50 {
		b.Push(column.NewNamed(strconv.Itoa(i), []int64{int64(i), int64(i)}))
	}
	p := b.ParApplyMap(4, func(v int64) int64 { return v * 2 })
	for i := range 50 {
		assert.Equal(t, []int64{int64(2 * i), int64(2 * i)}, p.Column(i).Values())
		assert.Equal(t, strconv.Itoa(i), p.Column(i).Name())
	}
}

func TestTransform(t *testing.T) {
	b := testBlock()
	str := func(vals []float64) []string {
		out := make([]string, len(vals))
		for i, v := range vals {
			out[i] = strconv.FormatFloat(v, 'f', 0, 64)
		}
		return out
	}
	tc := Transform(b, Columns, str)
	assert.Equal(t, []string{"10", "20", "30"}, tc.Column(1).Values())
	assert.Equal(t, "b", tc.Column(1).Name())

	tr := Transform(b, Rows, func(row []float64) []float64 {
		s := sum(row)
		out := make([]float64, len(row))
		for i, v := range row {
			out[i] = v / s
		}
		return out
	})
	assert.InDelta(t, 1.0/11.0, tr.Column(0).At(0), 1e-12)
	assert.InDelta(t, 10.0/11.0, tr.Column(1).At(0), 1e-12)

	pt := ParTransform(b, 2, str)
	assert.Equal(t, tc.Column(0).Values(), pt.Column(0).Values())

	short := func(vals []float64) []float64 { return vals[:1] }
	assert.Panics(t, func() { Transform(b, Columns, short) })
	assert.Panics(t, func() { Transform(b, Rows, short) })
	assert.Panics(t, func() { ParTransform(b, 2, short) })
}

func TestAsTypeClone(t *testing.T) {
	b := New[int32]()
	b.Push(column.NewNamed("x", []int32{1, 2}))
	f := AsType[float64](b)
	assert.Equal(t, []float64{1, 2}, f.Column(0).Values())
	assert.Panics(t, func() { AsType[int32](f) })

	cl := b.Clone()
	cl.Column(0).Set(0, 100)
	assert.Equal(t, int32(1), b.Column(0).At(0))
}
