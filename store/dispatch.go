// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"fmt"

	"cogentcore.org/dami/column"
	"cogentcore.org/dami/dtype"
)

// Text returns the values of the named column formatted as text.
func (s *Store) Text(name string, f column.Format) ([]string, error) {
	tp, ok := s.types.AtTry(name)
	if !ok {
		return nil, s.keyError(name)
	}
	switch tp {
	case dtype.Float64:
		return textOf[float64](s, name, f), nil
	case dtype.Float32:
		return textOf[float32](s, name, f), nil
	case dtype.Int64:
		return textOf[int64](s, name, f), nil
	case dtype.Int32:
		return textOf[int32](s, name, f), nil
	case dtype.String:
		return textOf[string](s, name, f), nil
	case dtype.Borrowed:
		return textOf[dtype.Str](s, name, f), nil
	case dtype.Bool:
		return textOf[bool](s, name, f), nil
	}
	return nil, &TypeError{Name: name, Have: tp, Want: dtype.String}
}

func textOf[T any](s *Store, name string, f column.Format) []string {
	c, _ := ref[T](s, name)
	return c.Text(f)
}

// Float64s returns the values of the named numeric column converted
// to float64. A non-numeric column returns a [*TypeError].
func (s *Store) Float64s(name string) ([]float64, error) {
	tp, ok := s.types.AtTry(name)
	if !ok {
		return nil, s.keyError(name)
	}
	switch tp {
	case dtype.Float64:
		return floatsOf[float64](s, name), nil
	case dtype.Float32:
		return floatsOf[float32](s, name), nil
	case dtype.Int64:
		return floatsOf[int64](s, name), nil
	case dtype.Int32:
		return floatsOf[int32](s, name), nil
	}
	return nil, &TypeError{Name: name, Have: tp, Want: dtype.Float64}
}

func floatsOf[T dtype.Numeric](s *Store, name string) []float64 {
	c, _ := ref[T](s, name)
	return column.Float64s(c)
}

// NumericNames returns the names of the numeric columns
// in presentation order.
func (s *Store) NumericNames() []string {
	var names []string
	s.eachColumn(func(name string, tp dtype.Type) {
		if tp.IsNumeric() {
			names = append(names, name)
		}
	})
	return names
}

// Value returns the value at the given row of the named column.
func (s *Store) Value(name string, row int) (any, error) {
	tp, ok := s.types.AtTry(name)
	if !ok {
		return nil, s.keyError(name)
	}
	if row < 0 || row >= s.rows {
		return nil, fmt.Errorf("store.Value: row %d is out of range for %d rows", row, s.rows)
	}
	switch tp {
	case dtype.Float64:
		return valueOf[float64](s, name, row), nil
	case dtype.Float32:
		return valueOf[float32](s, name, row), nil
	case dtype.Int64:
		return valueOf[int64](s, name, row), nil
	case dtype.Int32:
		return valueOf[int32](s, name, row), nil
	case dtype.String:
		return valueOf[string](s, name, row), nil
	case dtype.Borrowed:
		return valueOf[dtype.Str](s, name, row), nil
	case dtype.Bool:
		return valueOf[bool](s, name, row), nil
	}
	return nil, &TypeError{Name: name, Have: tp, Want: dtype.Object}
}

func valueOf[T any](s *Store, name string, row int) any {
	c, _ := ref[T](s, name)
	return c.At(row)
}

// Column returns the stored named column of type T without copying.
// Modifying its values modifies the store; its length must not change.
func Column[T any](s *Store, name string) (*column.Column[T], error) {
	return ref[T](s, name)
}
