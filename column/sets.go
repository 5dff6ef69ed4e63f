// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

// Duplicated returns a boolean column that is false at the first
// occurrence of each value and true at every later one.
func Duplicated[T comparable](c *Column[T]) *Column[bool] {
	seen := make(map[T]struct{}, len(c.values))
	return Transform(c, func(v T) bool {
		if _, ok := seen[v]; ok {
			return true
		}
		seen[v] = struct{}{}
		return false
	})
}

// Unique returns the distinct values of c. The order of the
// result is unspecified.
func Unique[T comparable](c *Column[T]) []T {
	seen := make(map[T]struct{}, len(c.values))
	var out []T
	for _, v := range c.values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// NUnique returns the number of distinct values of c.
func NUnique[T comparable](c *Column[T]) int {
	return len(Unique(c))
}

// ValueCounts returns the number of occurrences of each value.
func ValueCounts[T comparable](c *Column[T]) map[T]int {
	counts := make(map[T]int)
	for _, v := range c.values {
		counts[v]++
	}
	return counts
}

// Mode returns the most frequent value and its count, preferring the
// value that occurs first in case of a tie. ok is false for an empty column.
func Mode[T comparable](c *Column[T]) (top T, freq int, ok bool) {
	counts := ValueCounts(c)
	for _, v := range c.values {
		if counts[v] > freq {
			top, freq, ok = v, counts[v], true
		}
	}
	return
}
