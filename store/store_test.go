// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"bytes"
	"log/slog"
	"testing"

	"cogentcore.org/dami/column"
	"cogentcore.org/dami/dtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	s := New()
	require.NoError(t, Add(s, column.NewNamed("price", []float64{1.5, 2.5, 3.5}), true))
	require.NoError(t, Add(s, column.NewNamed("qty", []int32{1, 2, 3}), true))
	require.NoError(t, Add(s, column.NewNamed("name", []string{"a", "b", "c"}), true))
	require.NoError(t, Add(s, column.NewNamed("ok", []bool{true, false, true}), true))
	return s
}

func TestAdd(t *testing.T) {
	s := testStore(t)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 3, s.Rows())
	assert.Equal(t, []string{"price", "qty", "name", "ok"}, s.Names())
	assert.Equal(t, []string{"0", "1", "2"}, s.Index())
	assert.Equal(t, map[string]dtype.Type{"price": dtype.Float64, "qty": dtype.Int32, "name": dtype.String, "ok": dtype.Bool}, s.DTypes())
	tp, ok := s.DType("qty")
	assert.True(t, ok)
	assert.Equal(t, dtype.Int32, tp)
}

func TestAddLength(t *testing.T) {
	s := testStore(t)
	err := Add(s, column.NewNamed("short", []float64{1}), true)
	var le *LengthError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 1, le.Got)
	assert.Equal(t, 3, le.Want)
	assert.ErrorIs(t, err, ErrLength)
	// rejected atomically
	assert.Equal(t, 4, s.Len())
	assert.False(t, s.Has("short"))
	assert.Equal(t, 1, Block[float64](s).Len())
}

func TestAddNaming(t *testing.T) {
	s := New()
	require.NoError(t, Add(s, column.NewNamed("a", []int64{1}), true))
	require.NoError(t, Add(s, column.NewNamed("a", []int64{2}), true))
	assert.Equal(t, []string{"a", "1"}, s.Names())

	require.NoError(t, Add(s, column.NewNamed("keep", []int64{3}), false))
	assert.Equal(t, []string{"a", "1", "2"}, s.Names())

	// a column named "1" is renumbered to "3"
	require.NoError(t, Add(s, column.NewNamed("1", []int64{4}), true))
	assert.Equal(t, "3", s.Names()[3])

	// renumbering to a taken name fails
	s2 := New()
	require.NoError(t, Add(s2, column.NewNamed("1", []int64{1}), true))
	err := Add(s2, column.NewNamed("x", []int64{2}), false)
	var ne *NameError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, "1", ne.Name)
	assert.ErrorIs(t, err, ErrName)
	assert.Equal(t, 1, s2.Len())
}

func TestAddUnsupported(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	s := testStore(t)
	assert.NoError(t, Add(s, column.NewNamed("z", []complex128{1, 2, 3}), true))
	assert.NoError(t, Add(s, column.NewNamed("w", []any{1.0, 2.0, 3.0}), true))
	assert.Equal(t, 4, s.Len())
	assert.False(t, s.Has("z"))
	assert.False(t, s.Has("w"))
	assert.Contains(t, buf.String(), "column=z")
	assert.Contains(t, buf.String(), "column=w")
	assert.Contains(t, buf.String(), "dtype=object")

	e := New()
	assert.NoError(t, Add(e, column.NewNamed("z", []complex128{1}), true))
	assert.Equal(t, 0, e.Rows())
}

func TestSharedIndex(t *testing.T) {
	s := New()
	a := column.FromLabeled(map[string]int64{"x": 1, "y": 2})
	require.NoError(t, Add(s, a, true))
	require.NoError(t, Add(s, column.NewNamed("b", []bool{true, false}), true))
	b, err := Get[bool](s, "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, b.Index())

	s.Reindex([]string{"p", "q"})
	a2, err := Get[int64](s, "series")
	require.NoError(t, err)
	assert.Equal(t, []string{"p", "q"}, a2.Index())
	assert.Panics(t, func() { s.Reindex([]string{"p"}) })
}

func TestGet(t *testing.T) {
	s := testStore(t)
	c, err := Get[float64](s, "price")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, c.Values())

	// a copy is returned
	c.Set(0, 100)
	c2, _ := Get[float64](s, "price")
	assert.Equal(t, 1.5, c2.At(0))

	_, err = Get[int64](s, "price")
	var te *TypeError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, dtype.Float64, te.Have)
	assert.Equal(t, dtype.Int64, te.Want)
	assert.ErrorIs(t, err, ErrType)

	_, err = Get[float64](s, "prices")
	var ke *KeyError
	require.ErrorAs(t, err, &ke)
	assert.Equal(t, "price", ke.Suggestion)
	assert.Contains(t, err.Error(), `did you mean "price"`)
	assert.ErrorIs(t, err, ErrKey)

	_, err = Get[float64](s, "zzzzzzzz")
	require.ErrorAs(t, err, &ke)
	assert.Equal(t, "", ke.Suggestion)

	ref, err := Column[float64](s, "price")
	require.NoError(t, err)
	ref.Set(0, 7)
	c3, _ := Get[float64](s, "price")
	assert.Equal(t, 7.0, c3.At(0))
}

func TestDrop(t *testing.T) {
	s := testStore(t)
	err := s.Drop("qty", "nope")
	assert.ErrorIs(t, err, ErrKey)
	assert.Equal(t, 4, s.Len())

	require.NoError(t, s.Drop("qty", "ok"))
	assert.Equal(t, []string{"price", "name"}, s.Names())
	assert.Nil(t, Block[int32](s))
	_, err = Get[int32](s, "qty")
	assert.ErrorIs(t, err, ErrKey)

	require.NoError(t, s.Drop("price", "name"))
	assert.Equal(t, 0, s.Rows())
	require.NoError(t, Add(s, column.NewNamed("new", []int64{1}), true))
	assert.Equal(t, 1, s.Rows())
}

func TestClone(t *testing.T) {
	s := testStore(t)
	require.NoError(t, Add(s, column.NewNamed("v", []dtype.Str{"x", "y", "z"}), true))
	require.NoError(t, Add(s, column.NewNamed("f", []float32{1, 2, 3}), true))
	require.NoError(t, Add(s, column.NewNamed("i", []int64{1, 2, 3}), true))
	cl := s.Clone()
	assert.Equal(t, s.Names(), cl.Names())
	assert.Equal(t, s.DTypes(), cl.DTypes())
	assert.Equal(t, s.Rows(), cl.Rows())
	for _, nm := range s.Names() {
		a, _ := s.Text(nm, column.DefaultFormat)
		b, _ := cl.Text(nm, column.DefaultFormat)
		assert.Equal(t, a, b, nm)
	}
	r, _ := Column[int32](cl, "qty")
	r.Set(0, 99)
	q, _ := Get[int32](s, "qty")
	assert.Equal(t, int32(1), q.At(0))
}

func TestDispatch(t *testing.T) {
	s := testStore(t)
	txt, err := s.Text("price", column.Format{Precision: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"1.5", "2.5", "3.5"}, txt)
	_, err = s.Text("nope", column.DefaultFormat)
	assert.ErrorIs(t, err, ErrKey)

	f, err := s.Float64s("qty")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, f)
	_, err = s.Float64s("name")
	assert.ErrorIs(t, err, ErrType)

	assert.Equal(t, []string{"price", "qty"}, s.NumericNames())

	v, err := s.Value("name", 1)
	require.NoError(t, err)
	assert.Equal(t, "b", v)
	_, err = s.Value("name", 3)
	assert.Error(t, err)
}

func TestBlock(t *testing.T) {
	s := testStore(t)
	assert.Equal(t, 1, Block[float64](s).Len())
	assert.Nil(t, Block[float32](s))
	assert.Nil(t, Block[complex64](s))
}

func TestCopyColumn(t *testing.T) {
	s := testStore(t)
	dst := New()
	require.NoError(t, CopyColumn(dst, s, "name"))
	require.NoError(t, CopyColumn(dst, s, "price"))
	assert.Equal(t, []string{"name", "price"}, dst.Names())
	assert.ErrorIs(t, CopyColumn(dst, s, "nope"), ErrKey)

	// the copy is renumbered when the name is taken
	require.NoError(t, CopyColumn(dst, s, "name"))
	assert.Equal(t, "2", dst.Names()[2])
}
