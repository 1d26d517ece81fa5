// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statmap

import "github.com/jba/statmap/rng"

// A Range is a view of the entries of a Map or MapFunc whose keys
// lie between two bounds.
type Range[K, V, S any] struct {
	t *tree[K, V, S]
	r rng.Range[K]
}

func (r Range[K, V, S]) String() string { return r.r.String() }

// To limits r to keys no greater than hi.
// It panics if r already has a high bound.
func (r Range[K, V, S]) To(hi K) Range[K, V, S] {
	r.r = r.r.To(hi)
	return r
}

// Below limits r to keys less than hi.
// It panics if r already has a high bound.
func (r Range[K, V, S]) Below(hi K) Range[K, V, S] {
	r.r = r.r.Below(hi)
	return r
}

// Stats returns the aggregate over the entries in r.
// If r holds no entries, the second return value is false.
func (r Range[K, V, S]) Stats() (S, bool) {
	return r.t.rangeStats(r.r)
}

// Min returns the smallest key in r and true.
// If r is empty, the second return value is false.
func (r Range[K, V, S]) Min() (K, bool) {
	if x := r.t.minIn(r.r); x != nil {
		return x.key, true
	}
	var z K
	return z, false
}

// Max returns the largest key in r and true.
// If r is empty, the second return value is false.
func (r Range[K, V, S]) Max() (K, bool) {
	if x := r.t.maxIn(r.r); x != nil {
		return x.key, true
	}
	var z K
	return z, false
}

// Clear deletes m[k] for all keys in r, and returns the number of
// entries deleted.
func (r Range[K, V, S]) Clear() int {
	return r.t.clearRange(r.r)
}

// Update sets m[k] = f(k, m[k]) for all keys in r, in increasing key order.
// f must not modify the map.
func (r Range[K, V, S]) Update(f func(key K, val V) V) {
	r.t.updateRange(r.r, f)
}
