// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ingest converts raw text columns read by format
// adapters into typed columns, and builds tables from them.
//
// Each raw column has its values as text, an optional name and an
// optional type hint. Without a hint, the type is inferred from
// the first non-missing values, see [dtype.Infer].
package ingest

import (
	"log/slog"

	"cogentcore.org/dami/column"
	"cogentcore.org/dami/config"
	"cogentcore.org/dami/dtype"
	"cogentcore.org/dami/table"
)

// RawColumn is a column of text values read from a source.
type RawColumn struct {

	// Name is the name of the column, "" if the source has none,
	// in which case the column is named by its position.
	Name string

	// Values are the text values, one per row.
	Values []string

	// Hint is the declared type of the column, if HasHint.
	Hint dtype.Type

	// HasHint is whether Hint is set.
	HasHint bool
}

// Options are the options for converting raw columns.
type Options struct {

	// SampleSize is the number of leading non-missing values
	// used to infer the type of a column without a hint.
	SampleSize int

	// Borrowed makes string columns [dtype.Borrowed] columns
	// instead of [dtype.String] columns.
	Borrowed bool
}

// DefaultOptions returns the options from the current settings.
func DefaultOptions() Options {
	return Options{SampleSize: config.Current().Infer.SampleSize}
}

// Type returns the type the column converts to: its hint if it has
// a supported one, and otherwise the inferred type. Integer columns
// with missing values convert to Float64, to keep them as NaN.
func (rc *RawColumn) Type(opts Options) dtype.Type {
	if rc.HasHint && rc.Hint.Supported() {
		return rc.Hint
	}
	if rc.HasHint {
		slog.Warn("unsupported type hint ignored", "column", rc.Name, "dtype", rc.Hint)
	}
	tp := dtype.Infer(rc.Values, opts.SampleSize)
	if tp.IsInt() && rc.missing() > 0 {
		slog.Debug("integer column with missing values read as float", "column", rc.Name)
		return dtype.Float64
	}
	if tp == dtype.String && opts.Borrowed {
		return dtype.Borrowed
	}
	return tp
}

// missing returns the number of missing values.
func (rc *RawColumn) missing() int {
	n := 0
	for _, v := range rc.Values {
		if dtype.IsMissing(v) {
			n++
		}
	}
	return n
}

// convert returns the values converted by parse, logging the
// number of values that did not parse.
func convert[T any](rc *RawColumn, tp dtype.Type, parse func(string) (T, bool)) *column.Column[T] {
	vals := make([]T, len(rc.Values))
	bad := 0
	for i, s := range rc.Values {
		v, ok := parse(s)
		if !ok && !dtype.IsMissing(s) {
			bad++
		}
		vals[i] = v
	}
	if bad > 0 {
		slog.Warn("values not parsed as column type were replaced", "column", rc.Name, "dtype", tp, "count", bad)
	}
	return column.NewNamed(rc.Name, vals)
}

// AddTo converts the column to its type (see [RawColumn.Type]) and
// adds it to the table. Values that do not parse become NaN in float
// columns and the zero value otherwise. A column without a name is
// named by its position.
func (rc *RawColumn) AddTo(dt *table.Table, opts Options) error {
	tp := rc.Type(opts)
	keep := rc.Name != ""
	switch tp {
	case dtype.Float64:
		return table.Add(dt, convert(rc, tp, dtype.ParseFloat), keep)
	case dtype.Float32:
		return table.Add(dt, convert(rc, tp, func(s string) (float32, bool) {
			v, ok := dtype.ParseFloat(s)
			return float32(v), ok
		}), keep)
	case dtype.Int64:
		return table.Add(dt, convert(rc, tp, func(s string) (int64, bool) {
			return dtype.ParseInt(s, 64)
		}), keep)
	case dtype.Int32:
		return table.Add(dt, convert(rc, tp, func(s string) (int32, bool) {
			v, ok := dtype.ParseInt(s, 32)
			return int32(v), ok
		}), keep)
	case dtype.Bool:
		return table.Add(dt, convert(rc, tp, dtype.ParseBool), keep)
	case dtype.Borrowed:
		return table.Add(dt, convert(rc, tp, func(s string) (dtype.Str, bool) {
			return dtype.Str(s), true
		}), keep)
	default:
		return table.Add(dt, convert(rc, tp, func(s string) (string, bool) {
			return s, true
		}), keep)
	}
}

// Build returns a new table with the given raw columns converted
// to typed columns. The number of rows is set by the first column,
// and a column of another length fails with an error matching
// [store.ErrLength].
func Build(cols []RawColumn, opts Options) (*table.Table, error) {
	dt := table.New()
	for i := range cols {
		if err := cols[i].AddTo(dt, opts); err != nil {
			return nil, err
		}
	}
	return dt, nil
}
