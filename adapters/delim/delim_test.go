// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package delim

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"cogentcore.org/dami/column"
	"cogentcore.org/dami/dtype"
	"cogentcore.org/dami/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func read(t *testing.T, text string, opts Options) *table.Table {
	dt, err := Read(strings.NewReader(text), opts)
	require.NoError(t, err)
	return dt
}

func TestDelims(t *testing.T) {
	assert.Equal(t, Tab, detect("a\tb,c"))
	assert.Equal(t, Comma, detect("a,b"))
	assert.Equal(t, Space, detect("a  b"))
	assert.Equal(t, Comma, detect("a"))

	assert.Equal(t, "x,y", firstLine("\n# note\nx,y\n1,2\n", '#'))

	assert.Equal(t, Comma, DelimFromName("data.csv"))
	assert.Equal(t, Tab, DelimFromName("data.TSV.gz"))
	assert.Equal(t, Detect, DelimFromName("data.txt"))

	var dl Delims
	require.NoError(t, dl.SetString("tsv"))
	assert.Equal(t, Tab, dl)
	require.NoError(t, dl.SetString(","))
	assert.Equal(t, Comma, dl)
	assert.Error(t, dl.SetString("pipe"))
	assert.Equal(t, "space", Space.String())
}

func TestRead(t *testing.T) {
	dt := read(t, "price,qty,name,ok\n1.5,1,a,true\n2.25,2,bb,false\n", DefaultOptions())
	assert.Equal(t, []string{"price", "qty", "name", "ok"}, dt.Names())
	assert.Equal(t, 2, dt.NumRows())
	assert.Equal(t, map[string]dtype.Type{
		"price": dtype.Float64, "qty": dtype.Int32, "name": dtype.String, "ok": dtype.Bool,
	}, dt.DTypes())

	price, err := table.Get[float64](dt, "price")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.25}, price.Values())

	tsv := read(t, "a\tb\n1\t2\n", DefaultOptions())
	assert.Equal(t, []string{"a", "b"}, tsv.Names())

	ssv := read(t, "x  y\n1   2\n", Options{Delim: Space})
	assert.Equal(t, []string{"x", "y"}, ssv.Names())
	y, err := table.Get[int32](ssv, "y")
	require.NoError(t, err)
	assert.Equal(t, []int32{2}, y.Values())

	empty := read(t, "", DefaultOptions())
	assert.Equal(t, 0, empty.NumColumns())

	_, err = Read(strings.NewReader("a,b\n1\n"), DefaultOptions())
	assert.Error(t, err)
}

func TestReadTyped(t *testing.T) {
	dt := read(t, "#x,|y,$z\n1,2,3\n", DefaultOptions())
	assert.Equal(t, []string{"x", "y", "z"}, dt.Names())
	assert.Equal(t, map[string]dtype.Type{
		"x": dtype.Float64, "y": dtype.Int64, "z": dtype.String,
	}, dt.DTypes())

	opts := DefaultOptions()
	opts.Ingest.Borrowed = true
	dt = read(t, "name\nann\n", opts)
	tp, _ := dt.DType("name")
	assert.Equal(t, dtype.Borrowed, tp)
}

func TestHeaders(t *testing.T) {
	dt := read(t, "1,2\n3,4\n", Options{Delim: Comma, Headers: NoHeaders, Prefix: "col"})
	assert.Equal(t, []string{"col0", "col1"}, dt.Names())
	assert.Equal(t, 2, dt.NumRows())

	dt = read(t, "1,2\n3,4\n", Options{Delim: Comma, Headers: NoHeaders})
	assert.Equal(t, 2, dt.NumColumns())
	assert.Equal(t, 2, dt.NumRows())

	dt = read(t, "a,b\n1,2\n3,4\n", Options{Delim: Comma, Headers: InferHeaders})
	assert.Equal(t, []string{"a", "b"}, dt.Names())
	assert.Equal(t, 2, dt.NumRows())

	dt = read(t, "1,2\n3,4\n", Options{Delim: Comma, Headers: InferHeaders, Prefix: "c"})
	assert.Equal(t, []string{"c0", "c1"}, dt.Names())
	assert.Equal(t, 2, dt.NumRows())

	dt = read(t, "#x,|y\n1,2\n", Options{Delim: Comma, Headers: InferHeaders})
	assert.Equal(t, []string{"x", "y"}, dt.Names())

	dt = read(t, "a,b\n1,2\n", Options{Delim: Detect, Names: []string{"p", "q"}})
	assert.Equal(t, []string{"p", "q"}, dt.Names())
	assert.Equal(t, 1, dt.NumRows())

	_, err := Read(strings.NewReader("a,b\n1,2\n"), Options{Delim: Detect, Names: []string{"p"}})
	assert.Error(t, err)
}

func TestRows(t *testing.T) {
	dt := read(t, "v\n1\n2\n3\n4\n5\n", Options{SkipRows: 1, NRows: 2})
	v, err := table.Get[int32](dt, "v")
	require.NoError(t, err)
	assert.Equal(t, []int32{2, 3}, v.Values())

	dt = read(t, "v\n1\n", Options{SkipRows: 5})
	assert.Equal(t, 0, dt.NumRows())

	dt = read(t, "# generated\nv,w\n# skipped\n1,2\n", Options{Delim: Detect, Comment: '#'})
	assert.Equal(t, []string{"v", "w"}, dt.Names())
	assert.Equal(t, 1, dt.NumRows())
}

func TestReadColumns(t *testing.T) {
	cols, err := ReadColumns(strings.NewReader("#a,b\n1,x\n"), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, cols, 2)
	assert.Equal(t, "a", cols[0].Name)
	assert.True(t, cols[0].HasHint)
	assert.Equal(t, dtype.Float64, cols[0].Hint)
	assert.False(t, cols[1].HasHint)
	assert.Equal(t, []string{"x"}, cols[1].Values)
}

func testTable(t *testing.T) *table.Table {
	dt := table.New("data")
	require.NoError(t, table.Add(dt, column.NewNamed("price", []float64{1.5, 2.25, 1.0 / 3}), true))
	require.NoError(t, table.Add(dt, column.NewNamed("qty", []int64{1, 2, 3}), true))
	require.NoError(t, table.Add(dt, column.NewNamed("n", []int32{4, 5, 6}), true))
	require.NoError(t, table.Add(dt, column.NewNamed("name", []string{"a", "b,c", "d"}), true))
	require.NoError(t, table.Add(dt, column.NewNamed("ok", []bool{true, false, true}), true))
	return dt
}

func TestWrite(t *testing.T) {
	dt := table.New()
	require.NoError(t, table.Add(dt, column.NewNamed("price", []float64{1.5}), true))
	require.NoError(t, table.Add(dt, column.NewNamed("name", []string{"a,b"}), true))

	var b bytes.Buffer
	require.NoError(t, Write(dt, &b, Comma, PlainHeaders))
	assert.Equal(t, "price,name\n1.5,\"a,b\"\n", b.String())

	b.Reset()
	require.NoError(t, Write(dt, &b, Tab, TypedHeaders))
	assert.Equal(t, "#price\t$name\n1.5\ta,b\n", b.String())

	b.Reset()
	require.NoError(t, Write(dt, &b, Detect, NoWriteHeaders))
	assert.Equal(t, "1.5,\"a,b\"\n", b.String())
}

func TestSaveOpen(t *testing.T) {
	dt := testTable(t)
	dir := t.TempDir()
	for _, nm := range []string{"data.csv", "data.tsv.gz", "data.csv.lz4", "data.tsv.zst"} {
		t.Run(nm, func(t *testing.T) {
			fn := filepath.Join(dir, nm)
			require.NoError(t, Save(dt, fn, Detect))

			rt, err := Open(fn, DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, "data", rt.Meta.Name())
			assert.Equal(t, fn, rt.Meta.Source())
			assert.Equal(t, dt.Names(), rt.Names())
			assert.Equal(t, map[string]dtype.Type{
				"price": dtype.Float64, "qty": dtype.Int64, "n": dtype.Int64,
				"name": dtype.String, "ok": dtype.Bool,
			}, rt.DTypes())

			price, err := table.Get[float64](rt, "price")
			require.NoError(t, err)
			assert.Equal(t, []float64{1.5, 2.25, 1.0 / 3}, price.Values())
			name, err := table.Get[string](rt, "name")
			require.NoError(t, err)
			assert.Equal(t, []string{"a", "b,c", "d"}, name.Values())

			f, err := os.Open(fn)
			require.NoError(t, err)
			defer f.Close()
			r, c, err := Decompress(f)
			require.NoError(t, err)
			defer r.Close()
			assert.Equal(t, CompressionFromName(nm), c)
		})
	}

	_, err := Open(filepath.Join(dir, "missing.csv"), DefaultOptions())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenFS(t *testing.T) {
	fsys := fstest.MapFS{
		"data/x.tsv": {Data: []byte("a\tb\n1\t2\n")},
		"data/y.csv": {Data: []byte("a,b\n1\n")},
	}
	dt, err := OpenFS(fsys, "data/x.tsv", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "x", dt.Meta.Name())
	assert.Equal(t, []string{"a", "b"}, dt.Names())

	_, err = OpenFS(fsys, "data/y.csv", DefaultOptions())
	assert.ErrorContains(t, err, "data/y.csv")
}
