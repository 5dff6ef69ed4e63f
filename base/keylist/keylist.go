// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package keylist implements an ordered list (slice) of items,
with a map from a key (e.g., column names) to indexes,
to support fast lookup by key while preserving insertion order.
The store uses it to keep the presentation order of columns
together with the name to type tag index.
*/
package keylist

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// List implements an ordered list (slice) of Values,
// with a map from a key (e.g., names) to indexes,
// to support fast lookup by name.
type List[K comparable, V any] struct {
	// Values is the ordered slice of items.
	Values []V

	// Keys is the ordered list of keys, in same order as [List.Values].
	Keys []K

	// indexes is the key-to-index mapping.
	indexes map[K]int
}

// New returns a new [List]. The zero value
// is usable without initialization.
func New[K comparable, V any]() *List[K, V] {
	return &List[K, V]{}
}

func (kl *List[K, V]) reindex() {
	kl.indexes = make(map[K]int, len(kl.Keys))
	for i, k := range kl.Keys {
		kl.indexes[k] = i
	}
}

// Reset resets the list, removing any existing elements.
func (kl *List[K, V]) Reset() {
	kl.Values = nil
	kl.Keys = nil
	kl.indexes = nil
}

// Add adds an item to the end of the list with given key.
// An error is returned if the key is already on the list,
// in which case the list is unchanged.
func (kl *List[K, V]) Add(key K, val V) error {
	if kl.indexes == nil {
		kl.reindex()
	}
	if _, ok := kl.indexes[key]; ok {
		return fmt.Errorf("keylist.Add: key %v is already on the list", key)
	}
	kl.indexes[key] = len(kl.Values)
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
	return nil
}

// At returns the value corresponding to the given key,
// with a zero value returned for a missing key. See [List.AtTry]
// for one that returns a bool for missing keys.
func (kl *List[K, V]) At(key K) V {
	v, _ := kl.AtTry(key)
	return v
}

// AtTry returns the value corresponding to the given key,
// with false returned for a missing key.
func (kl *List[K, V]) AtTry(key K) (V, bool) {
	if idx, ok := kl.indexes[key]; ok {
		return kl.Values[idx], true
	}
	var zv V
	return zv, false
}

// Has returns whether the key is on the list.
func (kl *List[K, V]) Has(key K) bool {
	_, ok := kl.indexes[key]
	return ok
}

// IndexByKey returns the index of the given key, with a -1 for missing key.
func (kl *List[K, V]) IndexByKey(key K) int {
	idx, ok := kl.indexes[key]
	if !ok {
		return -1
	}
	return idx
}

// Len returns the number of items in the list.
func (kl *List[K, V]) Len() int {
	if kl == nil {
		return 0
	}
	return len(kl.Values)
}

// DeleteByKey deletes the item with the given key,
// returning false if it does not find it.
// This regenerates the index map.
func (kl *List[K, V]) DeleteByKey(key K) bool {
	idx, ok := kl.indexes[key]
	if !ok {
		return false
	}
	kl.Keys = slices.Delete(kl.Keys, idx, idx+1)
	kl.Values = slices.Delete(kl.Values, idx, idx+1)
	kl.reindex()
	return true
}

// Clone returns an independent copy of the list.
func (kl *List[K, V]) Clone() *List[K, V] {
	return &List[K, V]{
		Values:  slices.Clone(kl.Values),
		Keys:    slices.Clone(kl.Keys),
		indexes: maps.Clone(kl.indexes),
	}
}

// Map returns a new map with the key / value pairs of the list.
// Order is not retained; use [List.Keys] for that.
func (kl *List[K, V]) Map() map[K]V {
	m := make(map[K]V, len(kl.Keys))
	for i, k := range kl.Keys {
		m[k] = kl.Values[i]
	}
	return m
}

// String returns a string representation of the list.
func (kl *List[K, V]) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, v := range kl.Values {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v: %v", kl.Keys[i], v)
	}
	b.WriteString("}")
	return b.String()
}
