// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/dami/adapters/delim"
	"cogentcore.org/dami/config"
	"cogentcore.org/dami/dtype"
	"cogentcore.org/dami/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testFiles writes a settings file without color and a data
// file to a temporary directory, returning their names.
func testFiles(t *testing.T) (settings, data string) {
	prev := config.Current()
	t.Cleanup(func() { config.SetCurrent(&prev) })
	dir := t.TempDir()
	settings = filepath.Join(dir, "settings.toml")
	require.NoError(t, os.WriteFile(settings, []byte("[display]\ncolor = false\n"), 0666))
	data = filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(data, []byte("price,qty,name\n1.5,1,a\n2.25,2,bb\n4,3,c\n"), 0666))
	return
}

func run(t *testing.T, args ...string) (string, error) {
	root := newRoot()
	var out, errs bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errs)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestHead(t *testing.T) {
	settings, data := testFiles(t)
	out, err := run(t, "--config", settings, "head", "-n", "2", data)
	require.NoError(t, err)
	assert.Equal(t, "   price  qty  name\n0  1.500    1  a\n1  2.250    2  bb\n", out)

	out, err = run(t, "--config", settings, "head", "-n", "10", data)
	require.NoError(t, err)
	assert.Contains(t, out, "2  4.000    3  c")

	out, err = run(t, "--config", settings, "head", "--html", "-n", "1", data)
	require.NoError(t, err)
	assert.Contains(t, out, "<tr><th>0</th><td>1.500</td><td>1</td><td>a</td></tr>")

	out, err = run(t, "--config", settings, "tail", "-n", "1", data)
	require.NoError(t, err)
	assert.Equal(t, "   price  qty  name\n2  4.000    3  c\n", out)

	_, err = run(t, "--config", settings, "head", filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, "--config", settings, "--headers", "maybe", "head", data)
	assert.Error(t, err)
}

func TestDTypes(t *testing.T) {
	settings, data := testFiles(t)
	out, err := run(t, "--config", settings, "dtypes", data)
	require.NoError(t, err)
	assert.Equal(t, "       dtype\nprice  f64\nqty    i32\nname   string\n", out)

	out, err = run(t, "--config", settings, "--sample", "1", "--nrows", "1", "dtypes", data)
	require.NoError(t, err)
	assert.Contains(t, out, "qty    i32")
}

func TestDescribe(t *testing.T) {
	settings, data := testFiles(t)
	out, err := run(t, "--config", settings, "describe", data)
	require.NoError(t, err)
	assert.Contains(t, out, "price")
	assert.Contains(t, out, "qty")
	assert.Contains(t, out, "mean")
	assert.Contains(t, out, "75%")
	assert.NotContains(t, out, "name")
}

func TestConvert(t *testing.T) {
	settings, data := testFiles(t)
	fn := filepath.Join(t.TempDir(), "out.tsv.gz")
	_, err := run(t, "--config", settings, "convert", "-o", fn, data)
	require.NoError(t, err)

	dt, err := delim.Open(fn, delim.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, map[string]dtype.Type{
		"price": dtype.Float64, "qty": dtype.Int64, "name": dtype.String,
	}, dt.DTypes())
	qty, err := table.Get[int64](dt, "qty")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, qty.Values())

	_, err = run(t, "--config", settings, "convert", data)
	assert.Error(t, err)
}
