// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/dami/dtype"
	"github.com/rivo/uniseg"
)

// Format controls how values are rendered as text.
type Format struct {
	// Precision is the number of decimals for floating point values.
	// -1 uses the fewest digits that read back as the same value.
	Precision int

	// MaxWidth is the display width beyond which strings are
	// truncated with an ellipsis. Zero means no limit.
	MaxWidth int
}

// DefaultFormat is the format used by [Column.String].
var DefaultFormat = Format{Precision: 3, MaxWidth: 30}

// Value returns the text for a single value.
func (f Format) Value(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', f.Precision, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', f.Precision, 32)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case bool:
		return strconv.FormatBool(x)
	case string:
		return Truncate(x, f.MaxWidth)
	case dtype.Str:
		return Truncate(string(x), f.MaxWidth)
	}
	return fmt.Sprint(v)
}

// Truncate shortens s to at most width display cells, replacing the
// removed tail with "...". Grapheme clusters are never split.
func Truncate(s string, width int) string {
	if width <= 0 || uniseg.StringWidth(s) <= width {
		return s
	}
	limit := max(width-3, 0)
	var b strings.Builder
	w := 0
	state := -1
	rest := s
	for rest != "" {
		var cluster string
		var cw int
		cluster, rest, cw, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if w+cw > limit {
			break
		}
		b.WriteString(cluster)
		w += cw
	}
	b.WriteString("...")
	return b.String()
}

// Pad pads s with spaces to the given display width, on the left
// if right aligned, otherwise on the right.
func Pad(s string, width int, right bool) string {
	n := width - uniseg.StringWidth(s)
	if n <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}

// Text returns the values formatted with the given format.
func (c *Column[T]) Text(f Format) []string {
	out := make([]string, len(c.values))
	for i, v := range c.values {
		out[i] = f.Value(v)
	}
	return out
}

// String returns the labels and values one per line,
// followed by the name and type of the column.
func (c *Column[T]) String() string {
	vals := c.Text(DefaultFormat)
	lw, vw := 0, 0
	for i, v := range vals {
		lw = max(lw, uniseg.StringWidth(c.index[i]))
		vw = max(vw, uniseg.StringWidth(v))
	}
	var b strings.Builder
	for i, v := range vals {
		b.WriteString(Pad(c.index[i], lw, false))
		b.WriteString("    ")
		b.WriteString(Pad(v, vw, true))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Name: %s, dtype: %s", c.name, c.dtype)
	return b.String()
}
