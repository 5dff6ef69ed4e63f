// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrQuantile is returned for a quantile outside of [0, 1].
var ErrQuantile = errors.New("stats: quantile must be between 0 and 1")

// NotNaN returns the values that are not NaN. If there are
// no NaN values the input slice itself is returned.
func NotNaN(vals []float64) []float64 {
	n := 0
	for _, v := range vals {
		if !math.IsNaN(v) {
			n++
		}
	}
	if n == len(vals) {
		return vals
	}
	out := make([]float64, 0, n)
	for _, v := range vals {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// nonEmpty returns the non-NaN values, or ErrEmpty if there are none.
func nonEmpty(vals []float64) ([]float64, error) {
	x := NotNaN(vals)
	if len(x) == 0 {
		return nil, ErrEmpty
	}
	return x, nil
}

// CountFunc computes the count of non-NaN values.
func CountFunc(vals []float64) (float64, error) {
	return float64(len(NotNaN(vals))), nil
}

// SumFunc computes the sum of values, 0 for no values.
func SumFunc(vals []float64) (float64, error) {
	return floats.Sum(NotNaN(vals)), nil
}

// SumAbsFunc computes the sum of absolute values (L1 norm).
func SumAbsFunc(vals []float64) (float64, error) {
	return floats.Norm(NotNaN(vals), 1), nil
}

// ProdFunc computes the product of values, 1 for no values.
func ProdFunc(vals []float64) (float64, error) {
	return floats.Prod(NotNaN(vals)), nil
}

// MinFunc computes the minimum value.
func MinFunc(vals []float64) (float64, error) {
	x, err := nonEmpty(vals)
	if err != nil {
		return math.NaN(), err
	}
	return floats.Min(x), nil
}

// MaxFunc computes the maximum value.
func MaxFunc(vals []float64) (float64, error) {
	x, err := nonEmpty(vals)
	if err != nil {
		return math.NaN(), err
	}
	return floats.Max(x), nil
}

func absValues(vals []float64) ([]float64, error) {
	x, err := nonEmpty(vals)
	if err != nil {
		return nil, err
	}
	abs := make([]float64, len(x))
	for i, v := range x {
		abs[i] = math.Abs(v)
	}
	return abs, nil
}

// MinAbsFunc computes the minimum of absolute values.
func MinAbsFunc(vals []float64) (float64, error) {
	x, err := absValues(vals)
	if err != nil {
		return math.NaN(), err
	}
	return floats.Min(x), nil
}

// MaxAbsFunc computes the maximum of absolute values.
func MaxAbsFunc(vals []float64) (float64, error) {
	x, err := absValues(vals)
	if err != nil {
		return math.NaN(), err
	}
	return floats.Max(x), nil
}

// MeanFunc computes the arithmetic mean.
func MeanFunc(vals []float64) (float64, error) {
	x, err := nonEmpty(vals)
	if err != nil {
		return math.NaN(), err
	}
	return stat.Mean(x, nil), nil
}

// VarFunc computes the sample variance, NaN for a single value.
func VarFunc(vals []float64) (float64, error) {
	x, err := nonEmpty(vals)
	if err != nil {
		return math.NaN(), err
	}
	return stat.Variance(x, nil), nil
}

// StdFunc computes the sample standard deviation.
func StdFunc(vals []float64) (float64, error) {
	x, err := nonEmpty(vals)
	if err != nil {
		return math.NaN(), err
	}
	return stat.StdDev(x, nil), nil
}

// SemFunc computes the sample standard error of the mean.
func SemFunc(vals []float64) (float64, error) {
	x, err := nonEmpty(vals)
	if err != nil {
		return math.NaN(), err
	}
	return stat.StdErr(stat.StdDev(x, nil), float64(len(x))), nil
}

// SumSqFunc computes the sum of squared values.
func SumSqFunc(vals []float64) (float64, error) {
	x := NotNaN(vals)
	return floats.Dot(x, x), nil
}

// L2NormFunc computes the square root of the sum of squares.
func L2NormFunc(vals []float64) (float64, error) {
	return floats.Norm(NotNaN(vals), 2), nil
}

// VarPopFunc computes the population variance.
func VarPopFunc(vals []float64) (float64, error) {
	x, err := nonEmpty(vals)
	if err != nil {
		return math.NaN(), err
	}
	return stat.PopVariance(x, nil), nil
}

// StdPopFunc computes the population standard deviation.
func StdPopFunc(vals []float64) (float64, error) {
	x, err := nonEmpty(vals)
	if err != nil {
		return math.NaN(), err
	}
	return stat.PopStdDev(x, nil), nil
}

// SemPopFunc computes the population standard error of the mean.
func SemPopFunc(vals []float64) (float64, error) {
	x, err := nonEmpty(vals)
	if err != nil {
		return math.NaN(), err
	}
	return stat.StdErr(stat.PopStdDev(x, nil), float64(len(x))), nil
}

// MedianFunc computes the median, see [Quantile].
func MedianFunc(vals []float64) (float64, error) {
	return Quantile(vals, 0.5)
}

// Q1Func computes the first quartile, see [Quantile].
func Q1Func(vals []float64) (float64, error) {
	return Quantile(vals, 0.25)
}

// Q3Func computes the third quartile, see [Quantile].
func Q3Func(vals []float64) (float64, error) {
	return Quantile(vals, 0.75)
}

// SkewFunc computes the sample skewness.
func SkewFunc(vals []float64) (float64, error) {
	x, err := nonEmpty(vals)
	if err != nil {
		return math.NaN(), err
	}
	return stat.Skew(x, nil), nil
}

// KurtosisFunc computes the sample excess kurtosis.
func KurtosisFunc(vals []float64) (float64, error) {
	x, err := nonEmpty(vals)
	if err != nil {
		return math.NaN(), err
	}
	return stat.ExKurtosis(x, nil), nil
}

// GeoMeanFunc computes the geometric mean.
func GeoMeanFunc(vals []float64) (float64, error) {
	x, err := nonEmpty(vals)
	if err != nil {
		return math.NaN(), err
	}
	return stat.GeometricMean(x, nil), nil
}

// Sorted returns a sorted copy of the non-NaN values.
func Sorted(vals []float64) []float64 {
	x := slices.Clone(NotNaN(vals))
	slices.Sort(x)
	return x
}

// Quantile returns the q quantile of the non-NaN values, linearly
// interpolating between the two nearest ranks at position q*(n-1),
// so that the .5 quantile of an even count is the mean of the two
// middle values.
func Quantile(vals []float64, q float64) (float64, error) {
	if q < 0 || q > 1 || math.IsNaN(q) {
		return math.NaN(), fmt.Errorf("%w: %g", ErrQuantile, q)
	}
	x := Sorted(vals)
	if len(x) == 0 {
		return math.NaN(), ErrEmpty
	}
	pos := q * float64(len(x)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return x[lo], nil
	}
	return x[lo] + (pos-float64(lo))*(x[hi]-x[lo]), nil
}

// QuantileNearest returns the q quantile of the non-NaN values as the
// lowest value for which at least a fraction q of the values are less
// than or equal to it, without interpolation.
func QuantileNearest(vals []float64, q float64) (float64, error) {
	if q < 0 || q > 1 || math.IsNaN(q) {
		return math.NaN(), fmt.Errorf("%w: %g", ErrQuantile, q)
	}
	x := Sorted(vals)
	if len(x) == 0 {
		return math.NaN(), ErrEmpty
	}
	return stat.Quantile(q, stat.Empirical, x, nil), nil
}

// CentralMoment returns the central moment of the given order,
// E[(x - mean)^order].
func CentralMoment(vals []float64, order int) (float64, error) {
	x, err := nonEmpty(vals)
	if err != nil {
		return math.NaN(), err
	}
	return stat.Moment(float64(order), x, nil), nil
}

// CentralMoments returns the central moments of order 0 to order inclusive.
func CentralMoments(vals []float64, order int) ([]float64, error) {
	x, err := nonEmpty(vals)
	if err != nil {
		return nil, err
	}
	out := make([]float64, order+1)
	mean := stat.Mean(x, nil)
	for i := range out {
		out[i] = stat.MomentAbout(float64(i), x, mean, nil)
	}
	return out, nil
}

// WeightedMean returns the mean of vals weighted by weights,
// which must have the same length.
func WeightedMean(vals, weights []float64) (float64, error) {
	if len(vals) != len(weights) {
		return math.NaN(), fmt.Errorf("stats.WeightedMean: %d values but %d weights", len(vals), len(weights))
	}
	if len(vals) == 0 {
		return math.NaN(), ErrEmpty
	}
	return stat.Mean(vals, weights), nil
}

// WeightedSum returns the sum of vals multiplied by weights.
func WeightedSum(vals, weights []float64) (float64, error) {
	if len(vals) != len(weights) {
		return math.NaN(), fmt.Errorf("stats.WeightedSum: %d values but %d weights", len(vals), len(weights))
	}
	return floats.Dot(vals, weights), nil
}

// pairs returns the positions where neither x nor y is NaN.
func pairs(name string, x, y []float64) ([]float64, []float64, error) {
	if len(x) != len(y) {
		return nil, nil, fmt.Errorf("stats.%s: lengths differ: %d and %d", name, len(x), len(y))
	}
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	if len(xs) == 0 {
		return nil, nil, ErrEmpty
	}
	return xs, ys, nil
}

// Cov returns the sample covariance of x and y, over the
// positions where both are not NaN.
func Cov(x, y []float64) (float64, error) {
	xs, ys, err := pairs("Cov", x, y)
	if err != nil {
		return math.NaN(), err
	}
	return stat.Covariance(xs, ys, nil), nil
}

// Corr returns the Pearson correlation of x and y, over the
// positions where both are not NaN.
func Corr(x, y []float64) (float64, error) {
	xs, ys, err := pairs("Corr", x, y)
	if err != nil {
		return math.NaN(), err
	}
	return stat.Correlation(xs, ys, nil), nil
}

// ArgMin returns the index of the first minimum non-NaN value.
func ArgMin(vals []float64) (int, error) {
	if len(NotNaN(vals)) == 0 {
		return -1, ErrEmpty
	}
	return floats.MinIdx(vals), nil
}

// ArgMax returns the index of the first maximum non-NaN value.
func ArgMax(vals []float64) (int, error) {
	if len(NotNaN(vals)) == 0 {
		return -1, ErrEmpty
	}
	return floats.MaxIdx(vals), nil
}

// DescriptiveStats are the standard stats reported by [Describe],
// in order, with their [DescribeLabels].
var DescriptiveStats = []Stats{Count, Mean, Std, StdPop, Min, Q1, Median, Q3, Max}

// DescribeLabels are the labels for the [DescriptiveStats].
var DescribeLabels = []string{"count", "mean", "std", "pstd", "min", "25%", "50%", "75%", "max"}

// Describe returns the [DescriptiveStats] for the given values.
func Describe(vals []float64) ([]float64, error) {
	out := make([]float64, len(DescriptiveStats))
	for i, st := range DescriptiveStats {
		v, err := Standard(st, vals)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
