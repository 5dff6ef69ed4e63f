// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metadata provides a map of named any elements
// with generic support for type-safe Get and nil-safe Set.
// Tables carry one of these for descriptive information
// that does not affect their contents, with standard
// "Name", "Doc" and "Source" keys.
package metadata

import (
	"fmt"
	"maps"

	"cogentcore.org/dami/base/errors"
)

// Data is metadata as a map of named any elements
// with generic support for type-safe Get and nil-safe Set.
type Data map[string]any

// Set sets key to given value, ensuring that
// the map is created if not previously.
func (md *Data) Set(key string, value any) {
	if *md == nil {
		*md = make(map[string]any)
	}
	(*md)[key] = value
}

// Get gets metadata value of given type.
// returns error if not present or item is a different type.
func Get[T any](md Data, key string) (T, error) {
	var z T
	x, ok := md[key]
	if !ok {
		return z, fmt.Errorf("key %q not found in metadata", key)
	}
	v, ok := x.(T)
	if !ok {
		return z, fmt.Errorf("key %q has a different type than expected %T: is %T", key, z, x)
	}
	return v, nil
}

// Clone returns a shallow copy of the metadata, nil if empty.
func (md Data) Clone() Data {
	if len(md) == 0 {
		return nil
	}
	return maps.Clone(md)
}

// SetName sets the "Name" standard key.
func (md *Data) SetName(name string) { md.Set("Name", name) }

// Name returns the "Name" standard key value (empty if not set).
func (md Data) Name() string { return errors.Ignore1(Get[string](md, "Name")) }

// SetDoc sets the "Doc" standard key.
func (md *Data) SetDoc(doc string) { md.Set("Doc", doc) }

// Doc returns the "Doc" standard key value (empty if not set).
func (md Data) Doc() string { return errors.Ignore1(Get[string](md, "Doc")) }

// SetSource sets the "Source" standard key, the file or
// stream a table was read from.
func (md *Data) SetSource(src string) { md.Set("Source", src) }

// Source returns the "Source" standard key value (empty if not set).
func (md Data) Source() string { return errors.Ignore1(Get[string](md, "Source")) }
