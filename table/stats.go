// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"

	"cogentcore.org/dami/column"
	"cogentcore.org/dami/stats"
)

// numericValues returns the names of the numeric columns and
// their values as float64, or [ErrNoColumns] if there are none.
func (dt *Table) numericValues(op string) ([]string, [][]float64, error) {
	names := dt.store.NumericNames()
	if len(names) == 0 {
		return nil, nil, fmt.Errorf("table.%s: %w: numeric", op, ErrNoColumns)
	}
	vals := make([][]float64, len(names))
	for i, nm := range names {
		vals[i], _ = dt.store.Float64s(nm)
	}
	return names, vals, nil
}

// reduce returns a column with one value per numeric column,
// computed by f, named name and labeled with the column names.
func (dt *Table) reduce(name string, f func([]float64) (float64, error)) (*column.Column[float64], error) {
	names, vals, err := dt.numericValues(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(names))
	for i, v := range vals {
		out[i], err = f(v)
		if err != nil {
			return nil, fmt.Errorf("table.%s: column %q: %w", name, names[i], err)
		}
	}
	c := column.NewNamed(name, out)
	c.SetIndex(names)
	return c, nil
}

// Stat returns the given statistic of each numeric column,
// labeled with the column names. NaN values are skipped.
// Columns of other types are skipped. It fails if there are no
// numeric columns, or if the statistic fails on one of them,
// for example with [stats.ErrEmpty] on an empty table.
func (dt *Table) Stat(st stats.Stats) (*column.Column[float64], error) {
	return dt.reduce(st.String(), func(v []float64) (float64, error) {
		return stats.Standard(st, v)
	})
}

// Mean returns the mean of each numeric column, see [Table.Stat].
func (dt *Table) Mean() (*column.Column[float64], error) { return dt.Stat(stats.Mean) }

// Min returns the minimum of each numeric column, see [Table.Stat].
func (dt *Table) Min() (*column.Column[float64], error) { return dt.Stat(stats.Min) }

// Max returns the maximum of each numeric column, see [Table.Stat].
func (dt *Table) Max() (*column.Column[float64], error) { return dt.Stat(stats.Max) }

// Sum returns the sum of each numeric column, see [Table.Stat].
func (dt *Table) Sum() (*column.Column[float64], error) { return dt.Stat(stats.Sum) }

// Var returns the sample variance of each numeric column, see [Table.Stat].
func (dt *Table) Var() (*column.Column[float64], error) { return dt.Stat(stats.Var) }

// Std returns the sample standard deviation of each numeric column.
func (dt *Table) Std() (*column.Column[float64], error) { return dt.Stat(stats.Std) }

// Median returns the median of each numeric column.
func (dt *Table) Median() (*column.Column[float64], error) { return dt.Stat(stats.Median) }

// Skew returns the skewness of each numeric column.
func (dt *Table) Skew() (*column.Column[float64], error) { return dt.Stat(stats.Skew) }

// Kurtosis returns the excess kurtosis of each numeric column.
func (dt *Table) Kurtosis() (*column.Column[float64], error) { return dt.Stat(stats.Kurtosis) }

// Quantile returns the q quantile of each numeric column.
func (dt *Table) Quantile(q float64) (*column.Column[float64], error) {
	return dt.reduce("Quantile", func(v []float64) (float64, error) {
		return stats.Quantile(v, q)
	})
}

// CentralMoment returns the central moment of the given order
// of each numeric column.
func (dt *Table) CentralMoment(order int) (*column.Column[float64], error) {
	return dt.reduce("CentralMoment", func(v []float64) (float64, error) {
		return stats.CentralMoment(v, order)
	})
}

// Describe returns a table with the descriptive statistics of each
// numeric column, with one float64 column per numeric column and
// one row per statistic, labeled with [stats.DescribeLabels].
func (dt *Table) Describe() (*Table, error) {
	names, vals, err := dt.numericValues("Describe")
	if err != nil {
		return nil, err
	}
	out := New()
	for i, nm := range names {
		d, err := stats.Describe(vals[i])
		if err != nil {
			return nil, fmt.Errorf("table.Describe: column %q: %w", nm, err)
		}
		c := column.NewNamed(nm, d)
		c.SetIndex(stats.DescribeLabels)
		if err := Add(out, c, true); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Cov returns the pairwise sample covariance matrix of the numeric
// columns, as a table with one row and one column per numeric column.
func (dt *Table) Cov() (*Table, error) { return dt.pairwise("Cov", stats.Cov) }

// Corr returns the pairwise Pearson correlation matrix of the
// numeric columns, see [Table.Cov].
func (dt *Table) Corr() (*Table, error) { return dt.pairwise("Corr", stats.Corr) }

func (dt *Table) pairwise(op string, f func(x, y []float64) (float64, error)) (*Table, error) {
	names, vals, err := dt.numericValues(op)
	if err != nil {
		return nil, err
	}
	out := New()
	for j, nm := range names {
		col := make([]float64, len(names))
		for i := range names {
			col[i], err = f(vals[i], vals[j])
			if err != nil {
				return nil, fmt.Errorf("table.%s: columns %q and %q: %w", op, names[i], nm, err)
			}
		}
		c := column.NewNamed(nm, col)
		c.SetIndex(names)
		if err := Add(out, c, true); err != nil {
			return nil, err
		}
	}
	return out, nil
}
