// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"errors"
	"fmt"

	"cogentcore.org/dami/dtype"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Sentinel errors matched by the typed errors below with [errors.Is].
var (
	ErrLength = errors.New("length mismatch")
	ErrName   = errors.New("name conflict")
	ErrKey    = errors.New("key does not exist")
	ErrType   = errors.New("type mismatch")
)

// LengthError is returned when a column does not have
// the row count of the store.
type LengthError struct {
	Name      string
	Got, Want int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("columns must be of same length: column %q has %d rows, table has %d", e.Name, e.Got, e.Want)
}

func (e *LengthError) Is(target error) bool { return target == ErrLength }

// NameError is returned when a renumbered column name
// is already taken.
type NameError struct {
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("name %q already in table, consider renaming the column", e.Name)
}

func (e *NameError) Is(target error) bool { return target == ErrName }

// KeyError is returned for a column name that does not exist.
// Suggestion is the most similar existing name, if any is close.
type KeyError struct {
	Key        string
	Suggestion string
}

func (e *KeyError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("key %q does not exist, did you mean %q?", e.Key, e.Suggestion)
	}
	return fmt.Sprintf("key %q does not exist", e.Key)
}

func (e *KeyError) Is(target error) bool { return target == ErrKey }

// TypeError is returned when a column is requested
// with a type other than the one it holds.
type TypeError struct {
	Name       string
	Have, Want dtype.Type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("column %q has type %s, not %s", e.Name, e.Have, e.Want)
}

func (e *TypeError) Is(target error) bool { return target == ErrType }

// suggestThreshold is the minimum Levenshtein similarity
// for a name to be suggested.
const suggestThreshold = 0.5

// newKeyError returns a [KeyError] for key with the
// closest of the given names as suggestion.
func newKeyError(key string, names []string) *KeyError {
	lev := metrics.NewLevenshtein()
	best, score := "", suggestThreshold
	for _, nm := range names {
		if sim := strutil.Similarity(key, nm, lev); sim >= score {
			best, score = nm, sim
		}
	}
	return &KeyError{Key: key, Suggestion: best}
}
