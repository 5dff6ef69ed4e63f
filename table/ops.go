// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"slices"

	"cogentcore.org/dami/base/errors"
	"cogentcore.org/dami/column"
	"cogentcore.org/dami/dtype"
	"cogentcore.org/dami/stats"
	"cogentcore.org/dami/store"
)

// Ops are the element-wise arithmetic operations between tables.
type Ops int32

const (
	// OpAdd adds values.
	OpAdd Ops = iota

	// OpSub subtracts values.
	OpSub

	// OpMul multiplies values.
	OpMul

	// OpDiv divides values.
	OpDiv
)

func (op Ops) String() string {
	switch op {
	case OpAdd:
		return "Add"
	case OpSub:
		return "Sub"
	case OpMul:
		return "Mul"
	case OpDiv:
		return "Div"
	}
	return fmt.Sprintf("Ops(%d)", int32(op))
}

// Add returns the element-wise sum of the tables, see [Table.Arith].
func (dt *Table) Add(other *Table) (*Table, error) { return dt.Arith(OpAdd, other) }

// Sub returns the element-wise difference of the tables, see [Table.Arith].
func (dt *Table) Sub(other *Table) (*Table, error) { return dt.Arith(OpSub, other) }

// Mul returns the element-wise product of the tables, see [Table.Arith].
func (dt *Table) Mul(other *Table) (*Table, error) { return dt.Arith(OpMul, other) }

// Div returns the element-wise quotient of the tables, see [Table.Arith].
// Integer division by zero panics.
func (dt *Table) Div(other *Table) (*Table, error) { return dt.Arith(OpDiv, other) }

// Arith returns a new table with the given operation applied
// element-wise to the numeric columns that are in both tables
// with the same name and type, in the order of dt. All other
// columns are left out, so that {a, b} + {a, c} has only a.
// Tables with different numbers of rows return an error
// matching [store.ErrLength].
func (dt *Table) Arith(op Ops, other *Table) (*Table, error) {
	out := New()
	if dt.NumColumns() > 0 && other.NumColumns() > 0 && dt.NumRows() != other.NumRows() {
		return nil, fmt.Errorf("table.%s: %w: tables have %d and %d rows", op, store.ErrLength, dt.NumRows(), other.NumRows())
	}
	for _, nm := range dt.Names() {
		tp, _ := dt.DType(nm)
		otp, ok := other.DType(nm)
		if !ok || otp != tp {
			continue
		}
		var err error
		switch tp {
		case dtype.Float64:
			err = arith[float64](out, dt, other, nm, op)
		case dtype.Float32:
			err = arith[float32](out, dt, other, nm, op)
		case dtype.Int64:
			err = arith[int64](out, dt, other, nm, op)
		case dtype.Int32:
			err = arith[int32](out, dt, other, nm, op)
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func arith[T dtype.Numeric](out, a, b *Table, name string, op Ops) error {
	ac, err := store.Column[T](a.store, name)
	if err != nil {
		return err
	}
	bc, err := store.Column[T](b.store, name)
	if err != nil {
		return err
	}
	var c *column.Column[T]
	switch op {
	case OpAdd:
		c = column.Add(ac, bc)
	case OpSub:
		c = column.Sub(ac, bc)
	case OpMul:
		c = column.Mul(ac, bc)
	default:
		c = column.Div(ac, bc)
	}
	return Add(out, c, true)
}

// Count returns the number of non-NaN values of each column,
// labeled with the column names.
func (dt *Table) Count() *column.Column[int64] {
	names := dt.Names()
	counts := make([]int64, len(names))
	for i, nm := range names {
		vals, err := dt.store.Float64s(nm)
		if err != nil {
			counts[i] = int64(dt.NumRows())
			continue
		}
		n, _ := stats.CountFunc(vals)
		counts[i] = int64(n)
	}
	c := column.NewNamed("count", counts)
	c.SetIndex(names)
	return c
}

// All returns, for each numeric and bool column, whether all
// of its values are non-zero or true, labeled with the column names.
func (dt *Table) All() *column.Column[bool] {
	return dt.truth("all", column.All[bool], func(vals []float64) bool {
		return !slices.Contains(vals, 0)
	})
}

// Any returns, for each numeric and bool column, whether any
// of its values is non-zero or true, labeled with the column names.
func (dt *Table) Any() *column.Column[bool] {
	return dt.truth("any", column.Any[bool], func(vals []float64) bool {
		return slices.ContainsFunc(vals, func(v float64) bool { return v != 0 })
	})
}

func (dt *Table) truth(name string, bools func(*column.Column[bool]) bool, nums func([]float64) bool) *column.Column[bool] {
	var names []string
	var vals []bool
	for _, nm := range dt.Names() {
		tp, _ := dt.DType(nm)
		switch {
		case tp == dtype.Bool:
			c, _ := store.Column[bool](dt.store, nm)
			vals = append(vals, bools(c))
		case tp.IsNumeric():
			f, _ := dt.store.Float64s(nm)
			vals = append(vals, nums(f))
		default:
			continue
		}
		names = append(names, nm)
	}
	c := column.NewNamed(name, vals)
	c.SetIndex(names)
	return c
}

// cumOps are the cumulative operations.
type cumOps int32

const (
	cumSum cumOps = iota
	cumProd
	cumMax
	cumMin
)

// CumSum returns a table with the cumulative sum of each numeric
// column. NaN values are skipped and stay NaN.
func (dt *Table) CumSum() *Table { return dt.cumulate(cumSum) }

// CumProd returns a table with the cumulative product of each
// numeric column. NaN values are skipped and stay NaN.
func (dt *Table) CumProd() *Table { return dt.cumulate(cumProd) }

// CumMax returns a table with the cumulative maximum of each
// numeric column. NaN values are skipped and stay NaN.
func (dt *Table) CumMax() *Table { return dt.cumulate(cumMax) }

// CumMin returns a table with the cumulative minimum of each
// numeric column. NaN values are skipped and stay NaN.
func (dt *Table) CumMin() *Table { return dt.cumulate(cumMin) }

func (dt *Table) cumulate(op cumOps) *Table {
	out := New()
	for _, nm := range dt.store.NumericNames() {
		tp, _ := dt.DType(nm)
		switch tp {
		case dtype.Float64:
			cumInto[float64](out, dt, nm, op)
		case dtype.Float32:
			cumInto[float32](out, dt, nm, op)
		case dtype.Int64:
			cumInto[int64](out, dt, nm, op)
		case dtype.Int32:
			cumInto[int32](out, dt, nm, op)
		}
	}
	return out
}

func cumInto[T dtype.Numeric](out, dt *Table, name string, op cumOps) {
	c := errors.Must1(store.Column[T](dt.store, name))
	var r *column.Column[T]
	switch op {
	case cumSum:
		r = column.CumSum(c)
	case cumProd:
		r = column.CumProd(c)
	case cumMax:
		r = column.CumMax(c)
	default:
		r = column.CumMin(c)
	}
	errors.Must(Add(out, r, true))
}
