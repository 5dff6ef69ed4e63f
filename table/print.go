// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"html"
	"io"
	"strings"

	"cogentcore.org/dami/column"
	"cogentcore.org/dami/config"
	"github.com/muesli/termenv"
	"github.com/rivo/uniseg"
)

// Ellipsis is shown in every cell of the row that stands
// for the rows left out of a long table.
const Ellipsis = "..."

// span is a half-open range of rows.
type span struct{ start, end int }

// grid is a rendered range of a table, as text cells.
type grid struct {
	header []string
	rows   [][]string

	// right is whether each column is right aligned.
	right []bool
}

// format returns the value format for the given display settings.
func format(d config.Display) column.Format {
	return column.Format{Precision: d.Precision, MaxWidth: d.MaxStringWidth}
}

// spans returns the rows shown for the whole table: all of them
// up to MaxRows, and otherwise the first and last EdgeRows.
// Edges that would overlap show all rows.
func (dt *Table) spans(d config.Display) []span {
	n := dt.NumRows()
	if n <= d.MaxRows || n <= 2*d.EdgeRows {
		return []span{{0, n}}
	}
	return []span{{0, d.EdgeRows}, {n - d.EdgeRows, n}}
}

// grid renders the given row spans, with an ellipsis row between spans.
func (dt *Table) grid(spans []span, f column.Format, dtypes bool) *grid {
	names := dt.Names()
	index := dt.Index()
	g := &grid{header: append([]string{""}, names...), right: make([]bool, len(names)+1)}
	cols := make([][]string, len(names))
	for i, nm := range names {
		cols[i], _ = dt.store.Text(nm, f)
		tp, _ := dt.DType(nm)
		g.right[i+1] = tp.IsNumeric()
	}
	for si, sp := range spans {
		if si > 0 {
			row := make([]string, len(names)+1)
			for i := range row {
				row[i] = Ellipsis
			}
			g.rows = append(g.rows, row)
		}
		for r := sp.start; r < sp.end; r++ {
			row := make([]string, 0, len(names)+1)
			row = append(row, index[r])
			for _, c := range cols {
				row = append(row, c[r])
			}
			g.rows = append(g.rows, row)
		}
	}
	if dtypes {
		row := make([]string, 0, len(names)+1)
		row = append(row, "dtype")
		for _, nm := range names {
			tp, _ := dt.DType(nm)
			row = append(row, tp.String())
		}
		g.rows = append(g.rows, make([]string, len(names)+1), row)
	}
	return g
}

// write writes the grid as aligned text, with the header styled
// by the given profile.
func (g *grid) write(w io.Writer, p termenv.Profile) error {
	widths := make([]int, len(g.header))
	for i, h := range g.header {
		widths[i] = uniseg.StringWidth(h)
	}
	for _, row := range g.rows {
		for i, v := range row {
			widths[i] = max(widths[i], uniseg.StringWidth(v))
		}
	}
	var b strings.Builder
	line := func(cells []string, header bool) {
		var l strings.Builder
		for i, v := range cells {
			if i > 0 {
				l.WriteString("  ")
			}
			cell := column.Pad(v, widths[i], g.right[i] && v != Ellipsis)
			if header && v != "" {
				cell = p.String(cell).Bold().String()
			}
			l.WriteString(cell)
		}
		b.WriteString(strings.TrimRight(l.String(), " "))
		b.WriteByte('\n')
	}
	line(g.header, true)
	for _, row := range g.rows {
		line(row, false)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// profile returns the color profile used for writing to w.
func profile(w io.Writer, d config.Display) termenv.Profile {
	if !d.Color {
		return termenv.Ascii
	}
	return termenv.NewOutput(w).EnvColorProfile()
}

// footer returns the shape footer shown for long tables, or "".
func (dt *Table) footer(d config.Display) string {
	if dt.NumRows() < d.FooterRows {
		return ""
	}
	return fmt.Sprintf("[%d rows x %d columns]\n", dt.NumRows(), dt.NumColumns())
}

func (dt *Table) render(w io.Writer, p termenv.Profile, dtypes bool) error {
	d := config.Current().Display
	if err := dt.grid(dt.spans(d), format(d), dtypes).write(w, p); err != nil {
		return err
	}
	if ft := dt.footer(d); ft != "" {
		_, err := io.WriteString(w, "\n"+ft)
		return err
	}
	return nil
}

// String returns the table rendered as plain text. Tables with more
// than the configured maximum number of rows show only the first and
// last rows, separated by an ellipsis row.
func (dt *Table) String() string {
	var b strings.Builder
	dt.render(&b, termenv.Ascii, false)
	return b.String()
}

// Debug returns the table rendered like [Table.String],
// followed by a row with the type of each column.
func (dt *Table) Debug() string {
	var b strings.Builder
	dt.render(&b, termenv.Ascii, true)
	return b.String()
}

// Print writes the table to w, like [Table.String], with the
// header styled when w is a terminal supporting it.
func (dt *Table) Print(w io.Writer) error {
	return dt.render(w, profile(w, config.Current().Display), false)
}

// headSpan returns the first n rows, or an error if there are fewer.
func (dt *Table) headSpan(op string, n int) (span, error) {
	if n < 0 || n > dt.NumRows() {
		return span{}, fmt.Errorf("table.%s: n = %d is out of range for %d rows", op, n, dt.NumRows())
	}
	return span{0, n}, nil
}

// tailSpan returns the last n rows, or an error if there are fewer.
func (dt *Table) tailSpan(op string, n int) (span, error) {
	if n < 0 || n > dt.NumRows() {
		return span{}, fmt.Errorf("table.%s: n = %d is out of range for %d rows", op, n, dt.NumRows())
	}
	return span{dt.NumRows() - n, dt.NumRows()}, nil
}

// Head writes the first n rows to w. It fails if n is
// larger than the number of rows.
func (dt *Table) Head(w io.Writer, n int) error {
	sp, err := dt.headSpan("Head", n)
	if err != nil {
		return err
	}
	d := config.Current().Display
	return dt.grid([]span{sp}, format(d), false).write(w, profile(w, d))
}

// Tail writes the last n rows to w. It fails if n is
// larger than the number of rows.
func (dt *Table) Tail(w io.Writer, n int) error {
	sp, err := dt.tailSpan("Tail", n)
	if err != nil {
		return err
	}
	d := config.Current().Display
	return dt.grid([]span{sp}, format(d), false).write(w, profile(w, d))
}

// HeadHTML writes the first n rows to w as an HTML table.
func (dt *Table) HeadHTML(w io.Writer, n int) error {
	sp, err := dt.headSpan("HeadHTML", n)
	if err != nil {
		return err
	}
	return dt.grid([]span{sp}, format(config.Current().Display), false).writeHTML(w)
}

// TailHTML writes the last n rows to w as an HTML table.
func (dt *Table) TailHTML(w io.Writer, n int) error {
	sp, err := dt.tailSpan("TailHTML", n)
	if err != nil {
		return err
	}
	return dt.grid([]span{sp}, format(config.Current().Display), false).writeHTML(w)
}

// writeHTML writes the grid as an HTML table, with the row
// labels as row headers.
func (g *grid) writeHTML(w io.Writer) error {
	var b strings.Builder
	b.WriteString("<table>\n<thead>\n<tr>")
	for _, h := range g.header {
		fmt.Fprintf(&b, "<th>%s</th>", html.EscapeString(h))
	}
	b.WriteString("</tr>\n</thead>\n<tbody>\n")
	for _, row := range g.rows {
		b.WriteString("<tr>")
		for i, v := range row {
			if i == 0 {
				fmt.Fprintf(&b, "<th>%s</th>", html.EscapeString(v))
				continue
			}
			fmt.Fprintf(&b, "<td>%s</td>", html.EscapeString(v))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n")
	_, err := io.WriteString(w, b.String())
	return err
}
