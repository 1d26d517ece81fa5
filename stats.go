// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statmap

import "github.com/jba/statmap/rng"

// A StatsFunc computes the aggregate of a subtree from the entry at its root
// and the aggregates of its left and right subtrees. A nil left or right
// means that subtree is empty.
//
// The function must be pure and cheap: it is called for every node whose
// children change, on every mutation, and it must not retain or modify
// the pointed-to aggregates. It must also be associative in the sense that
// the aggregate of a set of entries may not depend on how those entries are
// arranged into a tree; otherwise the result of [Map.Stats] is unspecified.
//
// A nil StatsFunc maintains no statistics; aggregates stay the zero value.
type StatsFunc[K, V, S any] func(key K, val V, left, right *S) S

// Empty is the aggregate type for maps that keep no statistics.
type Empty struct{}

// rangeStats returns the aggregate of the entries of t within r.
// It walks down to the highest node inside r, then rebuilds the
// aggregates of the two partial subtrees hanging below it.
// No node is modified.
func (t *tree[K, V, S]) rangeStats(r rng.Range[K]) (S, bool) {
	var zero S
	if t == nil {
		return zero, false
	}
	x := t.root
	for x != nil {
		switch {
		case !r.AboveLow(t.cmp, x.key):
			x = x.right
		case !r.BelowHigh(t.cmp, x.key):
			x = x.left
		default:
			if t.stats == nil {
				return zero, true
			}
			l, lok := t.suffixStats(x.left, r)
			h, hok := t.prefixStats(x.right, r)
			return t.stats(x.key, x.val, opt(&l, lok), opt(&h, hok)), true
		}
	}
	return zero, false
}

// suffixStats returns the aggregate of the entries of x's subtree
// that are not excluded by r's low bound. x's subtree must lie
// below r's high bound.
func (t *tree[K, V, S]) suffixStats(x *node[K, V, S], r rng.Range[K]) (S, bool) {
	for x != nil && !r.AboveLow(t.cmp, x.key) {
		x = x.right
	}
	if x == nil {
		var zero S
		return zero, false
	}
	l, ok := t.suffixStats(x.left, r)
	var h *S
	if x.right != nil {
		h = &x.right.agg
	}
	return t.stats(x.key, x.val, opt(&l, ok), h), true
}

// prefixStats is the mirror image of suffixStats for r's high bound.
func (t *tree[K, V, S]) prefixStats(x *node[K, V, S], r rng.Range[K]) (S, bool) {
	for x != nil && !r.BelowHigh(t.cmp, x.key) {
		x = x.left
	}
	if x == nil {
		var zero S
		return zero, false
	}
	h, ok := t.prefixStats(x.right, r)
	var l *S
	if x.left != nil {
		l = &x.left.agg
	}
	return t.stats(x.key, x.val, l, opt(&h, ok)), true
}

func opt[S any](s *S, ok bool) *S {
	if ok {
		return s
	}
	return nil
}
