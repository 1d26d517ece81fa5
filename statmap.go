// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package statmap implements in-memory ordered maps that maintain
// an aggregate statistic over their entries.
// [Map][K, V, S] is suitable for ordered types K,
// while [MapFunc][K, V, S] supports arbitrary keys and comparison functions.
//
// Every map is given a [StatsFunc] that combines an entry with the aggregates
// of the entries below it. The map caches the aggregate of every subtree,
// so the aggregate over all entries is available in constant time and the
// aggregate over any key range in expected logarithmic time. Package
// [github.com/jba/statmap/stats] has some common ones.
//
// Maps are not safe for concurrent use. The read-only operations
// (Get, Stats, StatsFull, Len, Min, Max and the read-only Range methods)
// do not modify the map, so they may run concurrently with each other
// under a read lock.
package statmap

// The implementation is a treap restructured only by split and merge. See:
// https://en.wikipedia.org/wiki/Treap
// https://faculty.washington.edu/aragon/pubs/rst89.pdf

import (
	"cmp"

	"github.com/jba/statmap/rng"
)

// A Map is a map[K]V ordered according to K's standard Go ordering,
// with an aggregate of type S.
// The zero value of a Map is an empty Map that keeps no statistics,
// ready to use.
type Map[K cmp.Ordered, V, S any] struct {
	t tree[K, V, S]
}

// A MapFunc is a map[K]V ordered according to an arbitrary comparison function,
// with an aggregate of type S.
// The zero value of a MapFunc is not meaningful since it has no comparison function.
// Use [NewMapFunc] to create a [MapFunc].
// A nil *MapFunc, like a nil Go map, can be read but not written and contains no entries.
type MapFunc[K, V, S any] struct {
	t tree[K, V, S]
}

// New returns a new Map[K, V, S] whose aggregates are computed by stats.
func New[K cmp.Ordered, V, S any](stats StatsFunc[K, V, S], opts ...Option) *Map[K, V, S] {
	m := &Map[K, V, S]{}
	m.t.init(cmp.Compare[K], stats, applyOptions(opts))
	return m
}

// NewMapFunc returns a new MapFunc[K, V, S] ordered according to cmp,
// whose aggregates are computed by stats.
// cmp must be a strict total order.
func NewMapFunc[K, V, S any](cmp func(K, K) int, stats StatsFunc[K, V, S], opts ...Option) *MapFunc[K, V, S] {
	m := &MapFunc[K, V, S]{}
	m.t.init(cmp, stats, applyOptions(opts))
	return m
}

// impl returns m's tree for writing.
// It gives a zero Map its comparison function.
func (m *Map[K, V, S]) impl() *tree[K, V, S] {
	if m.t.cmp == nil {
		m.t.cmp = cmp.Compare[K]
	}
	return &m.t
}

// view returns m's tree for reading. A Map that has never been written
// has no tree, so reads do not modify m.
func (m *Map[K, V, S]) view() *tree[K, V, S] {
	if m == nil || m.t.cmp == nil {
		return nil
	}
	return &m.t
}

func (m *MapFunc[K, V, S]) impl() *tree[K, V, S] { return &m.t }

func (m *MapFunc[K, V, S]) view() *tree[K, V, S] {
	if m == nil {
		return nil
	}
	return &m.t
}

// Len returns the number of entries in m.
func (m *Map[K, V, S]) Len() int { return m.view().len() }

// Len returns the number of entries in m.
func (m *MapFunc[K, V, S]) Len() int { return m.view().len() }

// IsEmpty reports whether m has no entries.
func (m *Map[K, V, S]) IsEmpty() bool { return m.Len() == 0 }

// IsEmpty reports whether m has no entries.
func (m *MapFunc[K, V, S]) IsEmpty() bool { return m.Len() == 0 }

// Get returns the value of m[key] and reports whether it exists.
func (m *Map[K, V, S]) Get(key K) (V, bool) { return m.view().getVal(key) }

// Get returns the value of m[key] and reports whether it exists.
func (m *MapFunc[K, V, S]) Get(key K) (V, bool) { return m.view().getVal(key) }

// Set sets m[key] = val.
// If the entry was present, Set returns the former value and false.
// Otherwise it returns the zero value and true.
func (m *Map[K, V, S]) Set(key K, val V) (old V, added bool) {
	return m.impl().set(key, val)
}

// Set sets m[key] = val.
// If the entry was present, Set returns the former value and false.
// Otherwise it returns the zero value and true.
func (m *MapFunc[K, V, S]) Set(key K, val V) (old V, added bool) {
	return m.impl().set(key, val)
}

// Delete deletes m[key] if it exists.
// It returns the deleted value and reports whether there was one.
func (m *Map[K, V, S]) Delete(key K) (V, bool) {
	return m.impl().delete(key)
}

// Delete deletes m[key] if it exists.
// It returns the deleted value and reports whether there was one.
func (m *MapFunc[K, V, S]) Delete(key K) (V, bool) {
	return m.impl().delete(key)
}

// Clear deletes m[k] for all keys in m.
func (m *Map[K, V, S]) Clear() { m.impl().clear() }

// Clear deletes m[k] for all keys in m.
func (m *MapFunc[K, V, S]) Clear() { m.impl().clear() }

// StatsFull returns the aggregate over all entries of m.
// If m is empty, the second return value is false.
func (m *Map[K, V, S]) StatsFull() (S, bool) { return m.view().statsFull() }

// StatsFull returns the aggregate over all entries of m.
// If m is empty, the second return value is false.
func (m *MapFunc[K, V, S]) StatsFull() (S, bool) { return m.view().statsFull() }

// Stats returns the aggregate over the entries of m
// whose keys k satisfy start ≤ k < end.
// If there are none, the second return value is false.
func (m *Map[K, V, S]) Stats(start, end K) (S, bool) {
	return m.view().rangeStats(rng.HalfOpen(start, end))
}

// Stats returns the aggregate over the entries of m
// whose keys k satisfy start ≤ k < end.
// If there are none, the second return value is false.
func (m *MapFunc[K, V, S]) Stats(start, end K) (S, bool) {
	return m.view().rangeStats(rng.HalfOpen(start, end))
}

// Min returns the minimum key in m and true.
// If m is empty, the second return value is false.
func (m *Map[K, V, S]) Min() (K, bool) { return m.view().min() }

// Min returns the minimum key in m and true.
// If m is empty, the second return value is false.
func (m *MapFunc[K, V, S]) Min() (K, bool) { return m.view().min() }

// Max returns the maximum key in m and true.
// If m is empty, the second return value is false.
func (m *Map[K, V, S]) Max() (K, bool) { return m.view().max() }

// Max returns the maximum key in m and true.
// If m is empty, the second return value is false.
func (m *MapFunc[K, V, S]) Max() (K, bool) { return m.view().max() }

// Clone returns a copy of m.
// The copy draws priorities from the same source as m.
func (m *Map[K, V, S]) Clone() *Map[K, V, S] {
	t := m.view()
	if t == nil {
		return &Map[K, V, S]{}
	}
	m2 := &Map[K, V, S]{t: *t}
	m2.t.root = t.root.clone()
	return m2
}

// Clone returns a copy of m.
// The copy draws priorities from the same source as m.
func (m *MapFunc[K, V, S]) Clone() *MapFunc[K, V, S] {
	m2 := &MapFunc[K, V, S]{t: m.t}
	m2.t.root = m.t.root.clone()
	return m2
}

// Check verifies the structure of m: that keys are in order,
// that priorities are in heap order, that every cached aggregate
// matches its recomputation, and that Len is accurate.
// A non-nil error means the comparison function or the StatsFunc
// does not meet its requirements.
func (m *Map[K, V, S]) Check() error { return m.view().check() }

// Check verifies the structure of m: that keys are in order,
// that priorities are in heap order, that every cached aggregate
// matches its recomputation, and that Len is accurate.
// A non-nil error means the comparison function or the StatsFunc
// does not meet its requirements.
func (m *MapFunc[K, V, S]) Check() error { return m.view().check() }

func (m *Map[K, V, S]) From(lo K) Range[K, V, S]  { return m.Within(rng.From(lo)) }
func (m *Map[K, V, S]) Above(lo K) Range[K, V, S] { return m.Within(rng.Above(lo)) }
func (m *Map[K, V, S]) To(hi K) Range[K, V, S]    { return m.Within(rng.To(hi)) }
func (m *Map[K, V, S]) Below(hi K) Range[K, V, S] { return m.Within(rng.Below(hi)) }

// Within returns the part of m within r.
func (m *Map[K, V, S]) Within(r rng.Range[K]) Range[K, V, S] {
	if m == nil {
		return Range[K, V, S]{r: r}
	}
	return Range[K, V, S]{t: m.impl(), r: r}
}

func (m *MapFunc[K, V, S]) From(lo K) Range[K, V, S]  { return m.Within(rng.From(lo)) }
func (m *MapFunc[K, V, S]) Above(lo K) Range[K, V, S] { return m.Within(rng.Above(lo)) }
func (m *MapFunc[K, V, S]) To(hi K) Range[K, V, S]    { return m.Within(rng.To(hi)) }
func (m *MapFunc[K, V, S]) Below(hi K) Range[K, V, S] { return m.Within(rng.Below(hi)) }

// Within returns the part of m within r.
func (m *MapFunc[K, V, S]) Within(r rng.Range[K]) Range[K, V, S] {
	return Range[K, V, S]{t: m.view(), r: r}
}
