// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides standard aggregation functions over
// float64 values. All functions skip NaN values as missing,
// and those that are undefined on no data return [ErrEmpty].
package stats

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmpty is returned by a statistic that is undefined on no data.
var ErrEmpty = errors.New("stats: empty input")

// StatsFunc is the function signature for a stats function,
// reducing a slice of values to a single value.
type StatsFunc func(vals []float64) (float64, error)

// Funcs is a registry of named stats functions,
// which can then be called by standard enum or
// string name for custom functions.
var Funcs map[string]StatsFunc

func init() {
	Funcs = make(map[string]StatsFunc)
	Funcs[Count.String()] = CountFunc
	Funcs[Sum.String()] = SumFunc
	Funcs[SumAbs.String()] = SumAbsFunc
	Funcs[Prod.String()] = ProdFunc
	Funcs[Min.String()] = MinFunc
	Funcs[Max.String()] = MaxFunc
	Funcs[MinAbs.String()] = MinAbsFunc
	Funcs[MaxAbs.String()] = MaxAbsFunc
	Funcs[Mean.String()] = MeanFunc
	Funcs[Var.String()] = VarFunc
	Funcs[Std.String()] = StdFunc
	Funcs[Sem.String()] = SemFunc
	Funcs[SumSq.String()] = SumSqFunc
	Funcs[L2Norm.String()] = L2NormFunc
	Funcs[VarPop.String()] = VarPopFunc
	Funcs[StdPop.String()] = StdPopFunc
	Funcs[SemPop.String()] = SemPopFunc
	Funcs[Median.String()] = MedianFunc
	Funcs[Q1.String()] = Q1Func
	Funcs[Q3.String()] = Q3Func
	Funcs[Skew.String()] = SkewFunc
	Funcs[Kurtosis.String()] = KurtosisFunc
	Funcs[GeoMean.String()] = GeoMeanFunc
}

// Standard calls a standard Stats enum function on given values.
func Standard(stat Stats, vals []float64) (float64, error) {
	return Funcs[stat.String()](vals)
}

// Call calls a registered stats function on given values.
// Returns an error if name not found.
func Call(name string, vals []float64) (float64, error) {
	f, ok := Funcs[name]
	if !ok {
		return 0, fmt.Errorf("stats.Call: function %q not registered", name)
	}
	return f(vals)
}

// Stats is a list of different standard aggregation functions, which can be used
// to choose an aggregation function
type Stats int32

const (
	// count of number of non-NaN elements.
	Count Stats = iota

	// sum of elements.
	Sum

	// sum of absolute-value-of elements (L1 norm).
	SumAbs

	// product of elements.
	Prod

	// minimum value.
	Min

	// maximum value.
	Max

	// minimum of absolute values.
	MinAbs

	// maximum of absolute values.
	MaxAbs

	// mean value = sum / count.
	Mean

	// sample variance (squared deviations from mean, divided by n-1).
	Var

	// sample standard deviation (sqrt of Var).
	Std

	// sample standard error of the mean (Std divided by sqrt(n)).
	Sem

	// sum of squared values.
	SumSq

	// L2 Norm: square-root of sum-of-squares.
	L2Norm

	// population variance (squared diffs from mean, divided by n).
	VarPop

	// population standard deviation (sqrt of VarPop).
	StdPop

	// population standard error of the mean (StdPop divided by sqrt(n)).
	SemPop

	// middle value in sorted ordering.
	Median

	// Q1 first quartile = 25%ile value = .25 quantile value.
	Q1

	// Q3 third quartile = 75%ile value = .75 quantile value.
	Q3

	// sample skewness.
	Skew

	// sample excess kurtosis.
	Kurtosis

	// geometric mean.
	GeoMean

	// StatsN is the number of stats.
	StatsN
)

var statsNames = [...]string{"Count", "Sum", "SumAbs", "Prod", "Min", "Max", "MinAbs", "MaxAbs", "Mean", "Var", "Std", "Sem", "SumSq", "L2Norm", "VarPop", "StdPop", "SemPop", "Median", "Q1", "Q3", "Skew", "Kurtosis", "GeoMean"}

// String returns the name of the stat.
func (st Stats) String() string {
	if st < 0 || st >= StatsN {
		return fmt.Sprintf("Stats(%d)", int32(st))
	}
	return statsNames[st]
}

// SetString sets the stat from its name, case insensitive.
func (st *Stats) SetString(s string) error {
	for i, nm := range statsNames {
		if strings.EqualFold(nm, s) {
			*st = Stats(i)
			return nil
		}
	}
	return fmt.Errorf("stats.Stats: %q is not a valid stat", s)
}

// StatsValues returns all of the standard stats.
func StatsValues() []Stats {
	sts := make([]Stats, StatsN)
	for i := range sts {
		sts[i] = Stats(i)
	}
	return sts
}
