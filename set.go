// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statmap

import "cmp"

// A SetStatsFunc computes the aggregate of a subtree of a set from the
// element at its root and the aggregates of its left and right subtrees.
// It has the same requirements as a [StatsFunc].
type SetStatsFunc[T, S any] func(elem T, left, right *S) S

// mapStats lifts f to a StatsFunc over a map with no values.
func (f SetStatsFunc[T, S]) mapStats() StatsFunc[T, struct{}, S] {
	if f == nil {
		return nil
	}
	return func(elem T, _ struct{}, left, right *S) S {
		return f(elem, left, right)
	}
}

// A Set is a set of T ordered according to T's standard Go ordering,
// with an aggregate of type S.
// The zero value of a Set is an empty Set that keeps no statistics,
// ready to use.
type Set[T cmp.Ordered, S any] struct {
	m Map[T, struct{}, S]
}

// A SetFunc is a set of T ordered according to an arbitrary comparison function,
// with an aggregate of type S.
// Use [NewSetFunc] to create a [SetFunc].
type SetFunc[T, S any] struct {
	m MapFunc[T, struct{}, S]
}

// NewSet returns a new Set[T, S] whose aggregates are computed by stats.
func NewSet[T cmp.Ordered, S any](stats SetStatsFunc[T, S], opts ...Option) *Set[T, S] {
	s := &Set[T, S]{}
	s.m.t.init(cmp.Compare[T], stats.mapStats(), applyOptions(opts))
	return s
}

// NewSetFunc returns a new SetFunc[T, S] ordered according to cmp,
// whose aggregates are computed by stats.
func NewSetFunc[T, S any](cmp func(T, T) int, stats SetStatsFunc[T, S], opts ...Option) *SetFunc[T, S] {
	s := &SetFunc[T, S]{}
	s.m.t.init(cmp, stats.mapStats(), applyOptions(opts))
	return s
}

// Add adds elem to s and reports whether it was not already present.
func (s *Set[T, S]) Add(elem T) bool {
	_, added := s.m.Set(elem, struct{}{})
	return added
}

// Add adds elem to s and reports whether it was not already present.
func (s *SetFunc[T, S]) Add(elem T) bool {
	_, added := s.m.Set(elem, struct{}{})
	return added
}

// Delete removes elem from s and reports whether it was present.
func (s *Set[T, S]) Delete(elem T) bool {
	_, ok := s.m.Delete(elem)
	return ok
}

// Delete removes elem from s and reports whether it was present.
func (s *SetFunc[T, S]) Delete(elem T) bool {
	_, ok := s.m.Delete(elem)
	return ok
}

// Contains reports whether elem is in s.
func (s *Set[T, S]) Contains(elem T) bool {
	_, ok := s.m.Get(elem)
	return ok
}

// Contains reports whether elem is in s.
func (s *SetFunc[T, S]) Contains(elem T) bool {
	_, ok := s.m.Get(elem)
	return ok
}

// Stats returns the aggregate over the elements e of s with start ≤ e < end.
// If there are none, the second return value is false.
func (s *Set[T, S]) Stats(start, end T) (S, bool) { return s.m.Stats(start, end) }

// Stats returns the aggregate over the elements e of s with start ≤ e < end.
// If there are none, the second return value is false.
func (s *SetFunc[T, S]) Stats(start, end T) (S, bool) { return s.m.Stats(start, end) }

// StatsFull returns the aggregate over all elements of s.
// If s is empty, the second return value is false.
func (s *Set[T, S]) StatsFull() (S, bool) { return s.m.StatsFull() }

// StatsFull returns the aggregate over all elements of s.
// If s is empty, the second return value is false.
func (s *SetFunc[T, S]) StatsFull() (S, bool) { return s.m.StatsFull() }

func (s *Set[T, S]) Len() int           { return s.m.Len() }
func (s *SetFunc[T, S]) Len() int       { return s.m.Len() }
func (s *Set[T, S]) IsEmpty() bool      { return s.m.IsEmpty() }
func (s *SetFunc[T, S]) IsEmpty() bool  { return s.m.IsEmpty() }
func (s *Set[T, S]) Clear()             { s.m.Clear() }
func (s *SetFunc[T, S]) Clear()         { s.m.Clear() }
func (s *Set[T, S]) Min() (T, bool)     { return s.m.Min() }
func (s *SetFunc[T, S]) Min() (T, bool) { return s.m.Min() }
func (s *Set[T, S]) Max() (T, bool)     { return s.m.Max() }
func (s *SetFunc[T, S]) Max() (T, bool) { return s.m.Max() }

// Check verifies the structure of s. See [Map.Check].
func (s *Set[T, S]) Check() error { return s.m.Check() }

// Check verifies the structure of s. See [Map.Check].
func (s *SetFunc[T, S]) Check() error { return s.m.Check() }
