// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package delim

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"cogentcore.org/dami/column"
	"cogentcore.org/dami/dtype"
	"cogentcore.org/dami/table"
)

// WriteHeaders are the options for the header row written by [Write].
type WriteHeaders int32

const (
	// TypedHeaders writes the column names with a type prefix,
	// see [dtype.TypeToHeader], so the types survive a round trip.
	TypedHeaders WriteHeaders = iota

	// PlainHeaders writes the bare column names.
	PlainHeaders

	// NoWriteHeaders writes only the values.
	NoWriteHeaders
)

// fullPrecision formats floats with the fewest digits that
// read back as the same value.
var fullPrecision = column.Format{Precision: -1}

// header returns the header for the named column of the given type.
func header(name string, tp dtype.Type) string {
	switch tp {
	case dtype.Int32:
		tp = dtype.Int64
	case dtype.Borrowed:
		tp = dtype.String
	}
	if c, ok := dtype.TypeToHeader[tp]; ok {
		return string(c) + name
	}
	return name
}

// Write writes the table to w as delimited text, with the
// row labels left out. Int32 columns are written as int64 and
// borrowed strings as strings.
func Write(dt *table.Table, w io.Writer, delim Delims, hdrs WriteHeaders) error {
	if delim == Detect {
		delim = Comma
	}
	names := dt.Names()
	cols := make([][]string, len(names))
	rec := make([]string, len(names))
	for i, nm := range names {
		txt, err := dt.Text(nm, fullPrecision)
		if err != nil {
			return err
		}
		cols[i] = txt
		tp, _ := dt.DType(nm)
		switch hdrs {
		case TypedHeaders:
			rec[i] = header(nm, tp)
		case PlainHeaders:
			rec[i] = nm
		}
	}
	cw := csv.NewWriter(w)
	cw.Comma = delim.Rune()
	if hdrs != NoWriteHeaders {
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	for r := range dt.NumRows() {
		for i := range cols {
			rec[i] = cols[i][r]
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Save writes the table to the given file with typed headers, see
// [Write]. If the delimiter is [Detect], it is determined from the
// file extension, defaulting to Comma. The file is compressed when
// its name ends in .gz, .lz4 or .zst.
func Save(dt *table.Table, filename string, delim Delims) error {
	if delim == Detect {
		delim = DelimFromName(filename)
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	cw, err := Compress(f, CompressionFromName(filename))
	if err != nil {
		return err
	}
	if err := Write(dt, cw, delim, TypedHeaders); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	if err := cw.Close(); err != nil {
		return err
	}
	return f.Close()
}
