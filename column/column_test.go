// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"testing"

	"cogentcore.org/dami/dtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	vals := []float64{1, 2, 3}
	c := New(vals)
	assert.Equal(t, DefaultName, c.Name())
	assert.Equal(t, dtype.Float64, c.DType())
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"0", "1", "2"}, c.Index())
	assert.Equal(t, vals, c.ToSlice())

	// New takes ownership, FromValues copies
	vals[0] = 10
	assert.Equal(t, 10.0, c.At(0))
	fv := FromValues(vals...)
	vals[1] = 20
	assert.Equal(t, 2.0, fv.At(1))

	e := New([]int32{})
	assert.True(t, e.IsEmpty())
	assert.Equal(t, dtype.Int32, e.DType())
	assert.Equal(t, dtype.Borrowed, New([]dtype.Str{"a"}).DType())
	assert.Equal(t, dtype.Object, New([]complex64{1}).DType())
	// the element type decides, not the dynamic type of the values
	assert.Equal(t, dtype.Object, New([]any{1.5, 2.5}).DType())
	assert.Equal(t, dtype.Object, New([]any{}).DType())

	n := NewNamed("x", []bool{true})
	assert.Equal(t, "x", n.Name())
	v, err := n.Item()
	assert.NoError(t, err)
	assert.True(t, v)
	_, err = c.Item()
	assert.Error(t, err)
}

func TestFromMap(t *testing.T) {
	c, err := FromMap(map[string][]int64{"a": {1, 2}})
	require.NoError(t, err)
	assert.Equal(t, "a", c.Name())
	assert.Equal(t, []int64{1, 2}, c.Values())

	_, err = FromMap(map[string][]int64{"a": {1}, "b": {2}})
	var mk *MapKeysError
	require.ErrorAs(t, err, &mk)
	assert.Equal(t, 2, mk.Keys)
	_, err = FromMap(map[string][]int64{})
	assert.ErrorAs(t, err, &mk)
}

func TestFromPairs(t *testing.T) {
	c := FromPairs(Pair[string]{"r1", "a"}, Pair[string]{"r2", "b"})
	assert.Equal(t, []string{"r1", "r2"}, c.Index())
	v, ok := c.Loc("r2")
	assert.True(t, ok)
	assert.Equal(t, "b", v)
	_, ok = c.Loc("r3")
	assert.False(t, ok)

	l := FromLabeled(map[string]int32{"z": 3, "a": 1, "m": 2})
	assert.Equal(t, []string{"a", "m", "z"}, l.Index())
	assert.Equal(t, []int32{1, 2, 3}, l.Values())
}

func TestClone(t *testing.T) {
	c := NewNamed("x", []int64{1, 2, 3})
	require.NoError(t, c.Reindex([]string{"a", "b", "c"}, false))
	cl := c.Clone()
	cl.Set(0, 100)
	cl.SetName("y")
	require.NoError(t, cl.Reindex([]string{"d", "e", "f"}, false))
	assert.Equal(t, int64(1), c.At(0))
	assert.Equal(t, "x", c.Name())
	assert.Equal(t, []string{"a", "b", "c"}, c.Index())
	assert.Equal(t, c.DType(), cl.DType())
}

func TestHeadTail(t *testing.T) {
	c := New([]int32{1, 2, 3, 4, 5})
	assert.Equal(t, []int32{1, 2}, c.Head(2).Values())
	assert.Equal(t, []string{"3", "4"}, c.Tail(2).Index())
	assert.Equal(t, 5, c.Head(10).Len())
	assert.Equal(t, 0, c.Tail(-1).Len())
	v, ok := c.Get(4)
	assert.True(t, ok)
	assert.Equal(t, int32(5), v)
	_, ok = c.Get(5)
	assert.False(t, ok)
}
