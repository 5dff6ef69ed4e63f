// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"slices"

	"cogentcore.org/dami/dtype"
	"cogentcore.org/dami/stats"
)

// Stat returns the given standard statistic of a numeric column,
// computed in float64 over the non-NaN values.
func Stat[T dtype.Numeric](c *Column[T], st stats.Stats) (float64, error) {
	return stats.Standard(st, Float64s(c))
}

// Mean returns the arithmetic mean.
func Mean[T dtype.Numeric](c *Column[T]) (float64, error) { return Stat(c, stats.Mean) }

// Var returns the sample variance.
func Var[T dtype.Numeric](c *Column[T]) (float64, error) { return Stat(c, stats.Var) }

// VarPop returns the population variance.
func VarPop[T dtype.Numeric](c *Column[T]) (float64, error) { return Stat(c, stats.VarPop) }

// Std returns the sample standard deviation.
func Std[T dtype.Numeric](c *Column[T]) (float64, error) { return Stat(c, stats.Std) }

// StdPop returns the population standard deviation.
func StdPop[T dtype.Numeric](c *Column[T]) (float64, error) { return Stat(c, stats.StdPop) }

// Skew returns the sample skewness.
func Skew[T dtype.Numeric](c *Column[T]) (float64, error) { return Stat(c, stats.Skew) }

// Kurtosis returns the sample excess kurtosis.
func Kurtosis[T dtype.Numeric](c *Column[T]) (float64, error) { return Stat(c, stats.Kurtosis) }

// GeometricMean returns the geometric mean.
func GeometricMean[T dtype.Numeric](c *Column[T]) (float64, error) { return Stat(c, stats.GeoMean) }

// Median returns the median.
func Median[T dtype.Numeric](c *Column[T]) (float64, error) { return Stat(c, stats.Median) }

// Quantile returns the q quantile, see [stats.Quantile].
func Quantile[T dtype.Numeric](c *Column[T], q float64) (float64, error) {
	return stats.Quantile(Float64s(c), q)
}

// CentralMoment returns the central moment of the given order.
func CentralMoment[T dtype.Numeric](c *Column[T], order int) (float64, error) {
	return stats.CentralMoment(Float64s(c), order)
}

// CentralMoments returns the central moments of order 0 through order.
func CentralMoments[T dtype.Numeric](c *Column[T], order int) ([]float64, error) {
	return stats.CentralMoments(Float64s(c), order)
}

// ArgMin returns the position of the first smallest non-NaN value.
func ArgMin[T dtype.Numeric](c *Column[T]) (int, error) { return stats.ArgMin(Float64s(c)) }

// ArgMax returns the position of the first largest non-NaN value.
func ArgMax[T dtype.Numeric](c *Column[T]) (int, error) { return stats.ArgMax(Float64s(c)) }

// WeightedMean returns the mean of c weighted by w.
func WeightedMean[T dtype.Numeric](c, w *Column[T]) (float64, error) {
	return stats.WeightedMean(Float64s(c), Float64s(w))
}

// WeightedSum returns the sum of c multiplied by w.
func WeightedSum[T dtype.Numeric](c, w *Column[T]) (float64, error) {
	return stats.WeightedSum(Float64s(c), Float64s(w))
}

// Cov returns the sample covariance of a and b.
func Cov[T dtype.Numeric](a, b *Column[T]) (float64, error) {
	return stats.Cov(Float64s(a), Float64s(b))
}

// Corr returns the Pearson correlation of a and b.
func Corr[T dtype.Numeric](a, b *Column[T]) (float64, error) {
	return stats.Corr(Float64s(a), Float64s(b))
}

// Describe returns a float64 column of descriptive statistics of c,
// labeled with [stats.DescribeLabels].
func Describe[T dtype.Numeric](c *Column[T]) (*Column[float64], error) {
	vals, err := stats.Describe(Float64s(c))
	if err != nil {
		return nil, err
	}
	return derive(c, vals, slices.Clone(stats.DescribeLabels)), nil
}
