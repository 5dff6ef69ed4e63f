// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"strings"
	"testing"

	"cogentcore.org/dami/dtype"
	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	f := Format{Precision: 2, MaxWidth: 8}
	assert.Equal(t, "1.50", f.Value(1.5))
	assert.Equal(t, "0.33", f.Value(float32(1.0/3.0)))
	assert.Equal(t, "-7", f.Value(int64(-7)))
	assert.Equal(t, "42", f.Value(int32(42)))
	assert.Equal(t, "true", f.Value(true))
	assert.Equal(t, "short", f.Value("short"))
	assert.Equal(t, "a lon...", f.Value(dtype.Str("a long string")))
	assert.Equal(t, "[1]", f.Value([]int{1}))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 3))
	assert.Equal(t, "a...", Truncate("abcde", 4))
	assert.Equal(t, "...", Truncate("abcde", 2))
	assert.Equal(t, "abcde", Truncate("abcde", 0))
	// wide characters take two cells
	assert.Equal(t, "日...", Truncate("日本語の文", 6))
}

func TestPad(t *testing.T) {
	assert.Equal(t, "  ab", Pad("ab", 4, true))
	assert.Equal(t, "ab  ", Pad("ab", 4, false))
	assert.Equal(t, "abc", Pad("abc", 2, true))
}

func TestColumnString(t *testing.T) {
	c := NewNamed("x", []float64{1, 22.5})
	want := strings.Join([]string{
		"0     1.000",
		"1    22.500",
		"Name: x, dtype: f64",
	}, "\n")
	assert.Equal(t, want, c.String())
}
