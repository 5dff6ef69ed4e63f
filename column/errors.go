// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"errors"
	"fmt"

	"cogentcore.org/dami/stats"
)

// ErrEmpty is returned by a reduction over a column with no
// non-missing values.
var ErrEmpty = stats.ErrEmpty

// ErrLength is wrapped by errors for operands of different lengths.
var ErrLength = errors.New("column lengths differ")

// MapKeysError is returned when constructing a column from
// a map that does not have exactly one key.
type MapKeysError struct {
	Keys int
}

func (e *MapKeysError) Error() string {
	return fmt.Sprintf("expected a map with exactly 1 key, found a map with %d keys", e.Keys)
}

// LabelError is returned when labels fail an integrity check.
type LabelError struct {
	Msg string
}

func (e *LabelError) Error() string {
	return "label error: " + e.Msg
}

func lengthError(op string, a, b int) error {
	return fmt.Errorf("column.%s: %w: %d and %d", op, ErrLength, a, b)
}

func mustSameLen(op string, a, b int) {
	if a != b {
		panic(fmt.Sprintf("column.%s: lengths differ: %d and %d", op, a, b))
	}
}
