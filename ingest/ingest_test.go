// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ingest

import (
	"math"
	"testing"

	"cogentcore.org/dami/dtype"
	"cogentcore.org/dami/store"
	"cogentcore.org/dami/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestType(t *testing.T) {
	opts := Options{SampleSize: 10}
	tests := []struct {
		col  RawColumn
		want dtype.Type
	}{
		{RawColumn{Values: []string{"1", "2"}}, dtype.Int32},
		{RawColumn{Values: []string{"1", "", "3"}}, dtype.Float64},
		{RawColumn{Values: []string{"1.5", "x"}}, dtype.String},
		{RawColumn{Values: []string{"true", "false"}}, dtype.Bool},
		{RawColumn{Values: []string{"1", "2"}, Hint: dtype.Float32, HasHint: true}, dtype.Float32},
		{RawColumn{Values: []string{"1", "2"}, Hint: dtype.Object, HasHint: true}, dtype.Int32},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.col.Type(opts), "%v", tc.col.Values)
	}
	rc := RawColumn{Values: []string{"a"}}
	assert.Equal(t, dtype.Borrowed, rc.Type(Options{Borrowed: true}))
}

func TestBuild(t *testing.T) {
	cols := []RawColumn{
		{Name: "id", Values: []string{"1", "2", "3"}},
		{Name: "price", Values: []string{"1.5", "", "2"}},
		{Name: "big", Values: []string{"1", "2", "3"}, Hint: dtype.Int64, HasHint: true},
		{Values: []string{"x", "y", "z"}},
		{Name: "ok", Values: []string{"true", "0", "1"}},
	}
	dt, err := Build(cols, Options{SampleSize: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "price", "big", "3", "ok"}, dt.Names())
	assert.Equal(t, map[string]dtype.Type{
		"id": dtype.Int32, "price": dtype.Float64, "big": dtype.Int64, "3": dtype.String, "ok": dtype.Bool,
	}, dt.DTypes())

	price, err := table.Get[float64](dt, "price")
	require.NoError(t, err)
	assert.Equal(t, 1.5, price.At(0))
	assert.True(t, math.IsNaN(price.At(1)))
	assert.Equal(t, 2.0, price.At(2))

	ok, _ := table.Get[bool](dt, "ok")
	assert.Equal(t, []bool{true, false, true}, ok.Values())
}

func TestBuildLength(t *testing.T) {
	cols := []RawColumn{
		{Name: "a", Values: []string{"1", "2"}},
		{Name: "b", Values: []string{"1"}},
	}
	_, err := Build(cols, DefaultOptions())
	assert.ErrorIs(t, err, store.ErrLength)
}

func TestAddToCoercion(t *testing.T) {
	dt := table.New()
	rc := RawColumn{Name: "n", Values: []string{"1", "x"}, Hint: dtype.Int32, HasHint: true}
	require.NoError(t, rc.AddTo(dt, DefaultOptions()))
	n, _ := table.Get[int32](dt, "n")
	assert.Equal(t, []int32{1, 0}, n.Values())

	rc = RawColumn{Name: "f", Values: []string{"1", "x"}, Hint: dtype.Float64, HasHint: true}
	require.NoError(t, rc.AddTo(dt, DefaultOptions()))
	f, _ := table.Get[float64](dt, "f")
	assert.Equal(t, 1.0, f.At(0))
	assert.True(t, math.IsNaN(f.At(1)))
}
