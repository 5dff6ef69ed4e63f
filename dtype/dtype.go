// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dtype defines the closed set of element types a column
// can hold, and the mapping from Go values and types to that set.
package dtype

import (
	"fmt"
	"strings"
)

// Type is the tag identifying the element type of a column.
type Type int32

const (
	// Float64 is a 64 bit floating point column.
	Float64 Type = iota

	// Float32 is a 32 bit floating point column.
	Float32

	// Int64 is a 64 bit signed integer column.
	Int64

	// Int32 is a 32 bit signed integer column.
	Int32

	// String is an owned string column.
	String

	// Borrowed is a borrowed string column, whose values are views
	// into a buffer owned by the data source (see [Str]).
	Borrowed

	// Bool is a boolean column.
	Bool

	// Object is any element type outside of the supported set.
	// Columns of this type are never stored.
	Object

	// TypeN is the number of types.
	TypeN
)

var typeNames = [...]string{
	Float64:  "f64",
	Float32:  "f32",
	Int64:    "i64",
	Int32:    "i32",
	String:   "string",
	Borrowed: "str",
	Bool:     "bool",
	Object:   "object",
}

// Str is a string whose bytes are borrowed from the source it was
// read from, typically a substring of a single line buffer.
// Converting it to string is free; use [String] columns when
// values must not keep the source alive.
type Str string

// Element is the constraint satisfied by every supported element type.
type Element interface {
	float64 | float32 | int64 | int32 | bool | string | Str
}

// Numeric is the constraint satisfied by the numeric element types.
type Numeric interface {
	float64 | float32 | int64 | int32
}

// Of returns the type tag of the dynamic type of v. Types are
// checked in the fixed order Float64, Float32, Int64, Int32, String,
// Borrowed, Bool; anything else is [Object].
func Of(v any) Type {
	switch v.(type) {
	case float64:
		return Float64
	case float32:
		return Float32
	case int64:
		return Int64
	case int32:
		return Int32
	case string:
		return String
	case Str:
		return Borrowed
	case bool:
		return Bool
	}
	return Object
}

// For returns the type tag for the Go type T.
// Interface types (including any) map to [Object].
func For[T any]() Type {
	var z T
	return Of(z)
}

// String returns the short name of the type, e.g. "f64".
func (tp Type) String() string {
	if tp < 0 || tp >= TypeN {
		return fmt.Sprintf("Type(%d)", int32(tp))
	}
	return typeNames[tp]
}

// SetString sets the type from its short name (case insensitive),
// also accepting Go type names such as "float64" and "int32".
func (tp *Type) SetString(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, nm := range typeNames {
		if nm == s {
			*tp = Type(i)
			return nil
		}
	}
	switch s {
	case "float64", "float":
		*tp = Float64
	case "float32":
		*tp = Float32
	case "int64", "int":
		*tp = Int64
	case "int32":
		*tp = Int32
	default:
		return fmt.Errorf("dtype.Type: %q is not a valid type name", s)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (tp Type) MarshalText() ([]byte, error) {
	return []byte(tp.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (tp *Type) UnmarshalText(text []byte) error {
	return tp.SetString(string(text))
}

// IsNumeric returns whether the type is one of the numeric types.
func (tp Type) IsNumeric() bool {
	return tp >= Float64 && tp <= Int32
}

// IsFloat returns whether the type is a floating point type.
func (tp Type) IsFloat() bool {
	return tp == Float64 || tp == Float32
}

// IsInt returns whether the type is an integer type.
func (tp Type) IsInt() bool {
	return tp == Int64 || tp == Int32
}

// IsString returns whether the type is an owned or borrowed string.
func (tp Type) IsString() bool {
	return tp == String || tp == Borrowed
}

// Supported returns whether columns of this type can be stored.
func (tp Type) Supported() bool {
	return tp >= Float64 && tp < Object
}

// Widens reports whether values of type tp can be converted to type to
// without loss: the identity, Int32 to Int64 or Float64, Float32 to
// Float64, and between the two string types.
func (tp Type) Widens(to Type) bool {
	if tp == to {
		return true
	}
	switch tp {
	case Int32:
		return to == Int64 || to == Float64
	case Float32:
		return to == Float64
	case String, Borrowed:
		return to.IsString()
	}
	return false
}

// Types returns all of the supported types, in tag order.
func Types() []Type {
	return []Type{Float64, Float32, Int64, Int32, String, Borrowed, Bool}
}
