// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtype

import (
	"math"
	"strconv"
	"strings"
)

// MaxSample is the largest number of values [Infer] looks at.
const MaxSample = 10

// HeaderToType maps the optional type prefix character of a
// column header to the type it declares, e.g. "#price".
var HeaderToType = map[byte]Type{
	'$': String,
	'%': Float32,
	'#': Float64,
	'|': Int64,
	'^': Bool,
}

// TypeToHeader is the inverse of [HeaderToType].
var TypeToHeader = map[Type]byte{
	String:  '$',
	Float32: '%',
	Float64: '#',
	Int64:   '|',
	Bool:    '^',
}

// FromHeader splits a type prefix off a column header, returning
// the bare name, the declared type, and whether a prefix was present.
func FromHeader(hdr string) (string, Type, bool) {
	if len(hdr) < 2 {
		return hdr, Object, false
	}
	tp, ok := HeaderToType[hdr[0]]
	if !ok {
		return hdr, Object, false
	}
	return hdr[1:], tp, true
}

// Infer returns the most specific type that every one of the first
// sample non-missing values (at most [MaxSample]) parses as, trying
// in order: Int32, Int64, Float64, Bool, and finally String.
// Blank values are missing and are skipped. A sample without any
// value infers String.
func Infer(values []string, sample int) Type {
	if sample <= 0 || sample > MaxSample {
		sample = MaxSample
	}
	vals := make([]string, 0, sample)
	for _, v := range values {
		if len(vals) == sample {
			break
		}
		if !IsMissing(v) {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return String
	}
	switch {
	case all(vals, isInt32):
		return Int32
	case all(vals, isInt64):
		return Int64
	case all(vals, isFloat):
		return Float64
	case all(vals, isBool):
		return Bool
	}
	return String
}

// IsMissing returns whether s is a missing value, which is
// the case for blank strings.
func IsMissing(s string) bool {
	return strings.TrimSpace(s) == ""
}

func all(vals []string, f func(string) bool) bool {
	for _, v := range vals {
		if !f(strings.TrimSpace(v)) {
			return false
		}
	}
	return true
}

func isInt32(s string) bool {
	_, err := strconv.ParseInt(s, 10, 32)
	return err == nil
}

func isInt64(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

func isFloat(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func isBool(s string) bool {
	_, err := strconv.ParseBool(s)
	return err == nil
}

// ParseFloat parses s as a float, returning NaN and false if it
// does not parse. Empty strings are missing values.
func ParseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN(), false
	}
	return v, true
}

// ParseInt parses s as an integer of the given bit size,
// returning 0 and false if it does not parse.
func ParseInt(s string, bits int) (int64, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, bits)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseBool parses s as a bool, returning false and false if it
// does not parse.
func ParseBool(s string) (bool, bool) {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, false
	}
	return v, true
}
