// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package delim reads and writes tables as delimited text, such as
// comma-separated values (CSV) and tab-separated values (TSV), using
// the Go standard encoding/csv reader conforming to the CSV standard.
//
// Column headers can carry a type prefix character declaring the
// type of the column, see [dtype.HeaderToType]: e.g., "#price" is a
// float64 column named price. Columns without a prefix have their
// type inferred from their values. Input compressed with gzip, lz4
// or zstd is decompressed transparently.
package delim

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cogentcore.org/dami/dtype"
	"cogentcore.org/dami/ingest"
	"cogentcore.org/dami/table"
)

// Delims are standard delimiter options (Tab, Comma, Space).
type Delims int32

const (
	// Tab is the tab rune delimiter, for TSV tab separated values.
	Tab Delims = iota

	// Comma is the comma rune delimiter, for CSV comma separated values.
	Comma

	// Space is the space rune delimiter, for SSV space separated values.
	// Runs of spaces count as one delimiter.
	Space

	// Detect is used during reading: the first line is
	// examined to choose between tabs, commas and spaces.
	Detect
)

// Rune returns the delimiter character.
func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Comma:
		return ','
	case Space:
		return ' '
	}
	return '\t'
}

func (dl Delims) String() string {
	switch dl {
	case Tab:
		return "tab"
	case Comma:
		return "comma"
	case Space:
		return "space"
	case Detect:
		return "detect"
	}
	return "Delims(" + strconv.Itoa(int(dl)) + ")"
}

// SetString sets the delimiter from its name, or from
// the delimiter character itself.
func (dl *Delims) SetString(s string) error {
	switch strings.ToLower(s) {
	case "tab", "tsv", "\t", `\t`:
		*dl = Tab
	case "comma", "csv", ",":
		*dl = Comma
	case "space", "ssv", " ":
		*dl = Space
	case "detect", "":
		*dl = Detect
	default:
		return fmt.Errorf("delim.Delims: %q is not a valid delimiter", s)
	}
	return nil
}

// DelimFromName returns the delimiter implied by the extension of
// the given filename, ignoring any compression extension:
// Tab for .tsv and .tab, Comma for .csv, and Detect otherwise.
func DelimFromName(filename string) Delims {
	base := filename[:len(filename)-len(CompressionFromName(filename).Ext())]
	switch strings.ToLower(filepath.Ext(base)) {
	case ".tsv", ".tab":
		return Tab
	case ".csv":
		return Comma
	}
	return Detect
}

// detect returns the delimiter for the given first line.
func detect(line string) Delims {
	tabs, commas := strings.Count(line, "\t"), strings.Count(line, ",")
	switch {
	case tabs > 0 && tabs >= commas:
		return Tab
	case commas > 0:
		return Comma
	case strings.Contains(strings.TrimSpace(line), " "):
		return Space
	}
	return Comma
}

// firstLine returns the first line of text that is
// neither blank nor a comment.
func firstLine(text string, comment rune) string {
	for line := range strings.Lines(text) {
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if comment != 0 && strings.HasPrefix(line, string(comment)) {
			continue
		}
		return line
	}
	return ""
}

// Headers are the options for the first row of the input.
type Headers int32

const (
	// FirstRow means the first row has the column names.
	FirstRow Headers = iota

	// NoHeaders means there are no column names, and
	// every row holds values.
	NoHeaders

	// InferHeaders means the first row has the column names if its
	// values do not match the types of the values below them.
	InferHeaders
)

// Options are the options for reading delimited text.
type Options struct {

	// Delim is the delimiter.
	Delim Delims

	// Headers determines whether the first row has the column names.
	Headers Headers

	// Names are column names that replace those of the first row,
	// if any. There must be one name per column, and names can
	// have a type prefix like headers.
	Names []string

	// Prefix is prepended to the position of each column to name
	// the columns when there are no names, e.g. "col" gives col0, col1.
	Prefix string

	// Comment, if not 0, is the comment character:
	// lines beginning with it are skipped.
	Comment rune

	// SkipRows is the number of value rows skipped after the headers.
	SkipRows int

	// NRows, if > 0, is the maximum number of value rows read.
	NRows int

	// Ingest are the options for converting the text values.
	Ingest ingest.Options
}

// DefaultOptions returns the default options: the delimiter is
// detected, the first row has the column names, and the ingest
// options come from the current settings.
func DefaultOptions() Options {
	return Options{Delim: Detect, Ingest: ingest.DefaultOptions()}
}

// ReadColumns reads delimited text from r into raw columns.
// Compressed input is decompressed, see [Decompress].
func ReadColumns(r io.Reader, opts Options) ([]ingest.RawColumn, error) {
	dr, _, err := Decompress(r)
	if err != nil {
		return nil, err
	}
	defer dr.Close()
	br := dr.(peekReader)
	delim := opts.Delim
	if delim == Detect {
		buf, _ := br.Peek(4096)
		delim = detect(firstLine(string(buf), opts.Comment))
	}
	cr := csv.NewReader(br)
	cr.Comma = delim.Rune()
	cr.Comment = opts.Comment
	if delim == Space {
		cr.TrimLeadingSpace = true
	}
	recs, err := readRecords(cr, opts)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	header := opts.Headers == FirstRow || (opts.Headers == InferHeaders && hasHeader(recs))
	ncol := len(recs[0])
	var hdrs []string
	if header {
		hdrs, recs = recs[0], recs[1:]
	}
	recs = recs[min(opts.SkipRows, len(recs)):]
	if opts.NRows > 0 && len(recs) > opts.NRows {
		recs = recs[:opts.NRows]
	}
	if opts.Names != nil {
		if len(opts.Names) != ncol {
			return nil, fmt.Errorf("delim: %d names for %d columns", len(opts.Names), ncol)
		}
		hdrs = opts.Names
	}
	cols := make([]ingest.RawColumn, ncol)
	for ci := range cols {
		rc := &cols[ci]
		switch {
		case hdrs != nil:
			rc.Name, rc.Hint, rc.HasHint = dtype.FromHeader(hdrs[ci])
		case opts.Prefix != "":
			rc.Name = opts.Prefix + strconv.Itoa(ci)
		}
		rc.Values = make([]string, len(recs))
		for ri, rec := range recs {
			rc.Values[ri] = rec[ci]
		}
	}
	return cols, nil
}

// readRecords reads all the records needed for the given options.
func readRecords(cr *csv.Reader, opts Options) ([][]string, error) {
	limit := -1
	if opts.NRows > 0 {
		limit = opts.NRows + opts.SkipRows + 1
	}
	var recs [][]string
	for limit < 0 || len(recs) < limit {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("delim: %w", err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// hasHeader returns whether the first record looks like column
// names: either all of its values have a type prefix, or more of
// its values than not fail to parse as the type of their column.
func hasHeader(recs [][]string) bool {
	first := recs[0]
	prefixed := true
	for _, h := range first {
		if _, _, ok := dtype.FromHeader(h); !ok {
			prefixed = false
			break
		}
	}
	if prefixed {
		return true
	}
	if len(recs) < 2 {
		return false
	}
	votes := 0
	vals := make([]string, len(recs)-1)
	for ci, h := range first {
		for ri, rec := range recs[1:] {
			vals[ri] = rec[ci]
		}
		tp := dtype.Infer(vals, 0)
		if tp == dtype.String {
			continue
		}
		if conforms(h, tp) {
			votes--
		} else {
			votes++
		}
	}
	return votes > 0
}

// conforms returns whether s parses as a value of type tp.
func conforms(s string, tp dtype.Type) bool {
	switch {
	case tp.IsInt():
		_, ok := dtype.ParseInt(s, 64)
		return ok
	case tp.IsFloat():
		_, ok := dtype.ParseFloat(s)
		return ok
	case tp == dtype.Bool:
		_, ok := dtype.ParseBool(s)
		return ok
	}
	return true
}

// Read reads a table from delimited text, see [ReadColumns].
func Read(r io.Reader, opts Options) (*table.Table, error) {
	cols, err := ReadColumns(r, opts)
	if err != nil {
		return nil, err
	}
	return ingest.Build(cols, opts.Ingest)
}

// Open reads a table from the given file, see [ReadColumns].
// If the delimiter is [Detect], it is first determined from the
// file extension. The table name is set to the file name without
// extensions, and its source to the file name.
func Open(filename string, opts Options) (*table.Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readNamed(f, filename, opts)
}

// OpenFS is the version of [Open] that uses an [fs.FS] filesystem.
func OpenFS(fsys fs.FS, filename string, opts Options) (*table.Table, error) {
	f, err := fsys.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readNamed(f, filename, opts)
}

func readNamed(r io.Reader, filename string, opts Options) (*table.Table, error) {
	if opts.Delim == Detect {
		opts.Delim = DelimFromName(filename)
	}
	dt, err := Read(r, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	name := filepath.Base(filename)
	for filepath.Ext(name) != "" {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	dt.Meta.SetName(name)
	dt.Meta.SetSource(filename)
	return dt, nil
}
