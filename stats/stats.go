// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides common statistics for statmap maps and sets.
//
// Each function here has the shape of a statmap.StatsFunc or
// statmap.SetStatsFunc and can be passed to the corresponding constructor:
//
//	m := statmap.New[string, int, int](stats.Count[string, int])
package stats

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be summed.
type Number interface {
	constraints.Integer | constraints.Float
}

// Count computes the number of entries.
func Count[K, V any](_ K, _ V, left, right *int) int {
	return 1 + deref(left) + deref(right)
}

// CountElems computes the number of elements of a set.
func CountElems[T any](_ T, left, right *int) int {
	return 1 + deref(left) + deref(right)
}

// Sums holds the number of entries and the sums of their keys and values.
type Sums[K, V Number] struct {
	Count  int
	Keys   K
	Values V
}

// KeyValueSum computes Sums.
func KeyValueSum[K, V Number](key K, val V, left, right *Sums[K, V]) Sums[K, V] {
	s := Sums[K, V]{Count: 1, Keys: key, Values: val}
	for _, c := range []*Sums[K, V]{left, right} {
		if c != nil {
			s.Count += c.Count
			s.Keys += c.Keys
			s.Values += c.Values
		}
	}
	return s
}

// ElemSum computes the sum of the elements of a set.
func ElemSum[T Number](elem T, left, right *T) T {
	return elem + deref(left) + deref(right)
}

// Bounds holds the smallest and largest keys.
type Bounds[K any] struct {
	Min, Max K
}

// KeyBounds computes Bounds. It relies on the map's ordering:
// the smallest key of a subtree is in its left subtree, if any.
func KeyBounds[K, V any](key K, _ V, left, right *Bounds[K]) Bounds[K] {
	b := Bounds[K]{Min: key, Max: key}
	if left != nil {
		b.Min = left.Min
	}
	if right != nil {
		b.Max = right.Max
	}
	return b
}

// MinValue computes the smallest value.
func MinValue[K any, V cmp.Ordered](_ K, val V, left, right *V) V {
	if left != nil {
		val = min(val, *left)
	}
	if right != nil {
		val = min(val, *right)
	}
	return val
}

// MaxValue computes the largest value.
func MaxValue[K any, V cmp.Ordered](_ K, val V, left, right *V) V {
	if left != nil {
		val = max(val, *left)
	}
	if right != nil {
		val = max(val, *right)
	}
	return val
}

func deref[T any](p *T) T {
	if p == nil {
		var z T
		return z
	}
	return *p
}
