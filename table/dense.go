// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"cogentcore.org/dami/column"
	"gonum.org/v1/gonum/mat"
)

// FromDense returns a new table with one float64 column per
// matrix column, named by position.
func FromDense(m mat.Matrix) *Table {
	dt := New()
	r, c := m.Dims()
	for j := range c {
		vals := make([]float64, r)
		mat.Col(vals, j, m)
		if err := Add(dt, column.New(vals), false); err != nil {
			panic("table.FromDense: " + err.Error())
		}
	}
	return dt
}

// Dense returns the numeric columns as a matrix with one row per
// table row and one column per numeric column, converted to float64,
// together with the names of the columns. It returns nil if there
// are no numeric columns or no rows.
func (dt *Table) Dense() (*mat.Dense, []string) {
	names := dt.store.NumericNames()
	if len(names) == 0 || dt.NumRows() == 0 {
		return nil, names
	}
	m := mat.NewDense(dt.NumRows(), len(names), nil)
	for j, nm := range names {
		vals, _ := dt.store.Float64s(nm)
		m.SetCol(j, vals)
	}
	return m, names
}
