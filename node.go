// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statmap

import (
	"math/bits"

	"github.com/jba/statmap/rng"
)

// A node is a node in the treap.
// Each node exclusively owns its children; there are no parent pointers,
// so every restructuring goes through split and merge.
type node[K, V, S any] struct {
	left  *node[K, V, S]
	right *node[K, V, S]
	key   K
	val   V
	pri   uint64
	agg   S // stats of the subtree rooted here
}

// tree is the implementation shared by Map and MapFunc.
type tree[K, V, S any] struct {
	root  *node[K, V, S]
	count int
	cmp   func(K, K) int
	stats StatsFunc[K, V, S]
	pri   PrioritySource

	// deepWarned is set once a split has gone suspiciously deep,
	// so the warning is logged only once per tree.
	deepWarned bool
}

func (t *tree[K, V, S]) init(cmp func(K, K) int, stats StatsFunc[K, V, S], o options) {
	t.cmp = cmp
	t.stats = stats
	t.pri = o.pri
}

// newNode returns a leaf holding key and val with a fresh priority.
func (t *tree[K, V, S]) newNode(key K, val V) *node[K, V, S] {
	if t.pri == nil {
		t.pri = globalSource{}
	}
	x := &node[K, V, S]{key: key, val: val, pri: t.pri.Uint64()}
	t.update(x)
	return x
}

// update recomputes x.agg from x and its children's cached aggregates.
// It must be called whenever a child of x is replaced.
func (t *tree[K, V, S]) update(x *node[K, V, S]) {
	if t.stats == nil {
		return
	}
	var l, r *S
	if x.left != nil {
		l = &x.left.agg
	}
	if x.right != nil {
		r = &x.right.agg
	}
	x.agg = t.stats(x.key, x.val, l, r)
}

// split3 splits the tree rooted at x into the keys less than key,
// the node whose key equals key (if any), and the keys greater than key.
// The returned middle node is a leaf.
func (t *tree[K, V, S]) split3(x *node[K, V, S], key K, depth int) (less, eq, greater *node[K, V, S]) {
	if x == nil {
		t.observeDepth(depth)
		return nil, nil, nil
	}
	c := t.cmp(x.key, key)
	switch {
	case c == 0:
		t.observeDepth(depth)
		less, greater = x.left, x.right
		x.left, x.right = nil, nil
		t.update(x)
		return less, x, greater
	case c < 0:
		x.right, eq, greater = t.split3(x.right, key, depth+1)
		t.update(x)
		return x, eq, greater
	default:
		less, eq, x.left = t.split3(x.left, key, depth+1)
		t.update(x)
		return less, eq, x
	}
}

// split2 splits the tree rooted at x into the keys less than key
// and the rest. If inclusive is true, key itself goes to less.
func (t *tree[K, V, S]) split2(x *node[K, V, S], key K, inclusive bool) (less, rest *node[K, V, S]) {
	if x == nil {
		return nil, nil
	}
	c := t.cmp(x.key, key)
	if c < 0 || c == 0 && inclusive {
		x.right, rest = t.split2(x.right, key, inclusive)
		t.update(x)
		return x, rest
	}
	less, x.left = t.split2(x.left, key, inclusive)
	t.update(x)
	return less, x
}

// merge2 joins l and r, every key of which must be less than every key of r.
// The root with the smaller priority wins; ties go to l.
func (t *tree[K, V, S]) merge2(l, r *node[K, V, S]) *node[K, V, S] {
	switch {
	case l == nil:
		return r
	case r == nil:
		return l
	case l.pri <= r.pri:
		l.right = t.merge2(l.right, r)
		t.update(l)
		return l
	default:
		r.left = t.merge2(l, r.left)
		t.update(r)
		return r
	}
}

func (t *tree[K, V, S]) merge3(l, m, r *node[K, V, S]) *node[K, V, S] {
	return t.merge2(t.merge2(l, m), r)
}

// insertOrReplace puts x into the tree, displacing the node with the same key.
// It returns the displaced node, or nil if x's key was not present.
func (t *tree[K, V, S]) insertOrReplace(x *node[K, V, S]) (old *node[K, V, S]) {
	less, old, greater := t.split3(t.root, x.key, 0)
	t.root = t.merge3(less, x, greater)
	return old
}

// remove detaches and returns the node with the given key,
// or nil if there is none.
func (t *tree[K, V, S]) remove(key K) *node[K, V, S] {
	less, x, greater := t.split3(t.root, key, 0)
	t.root = t.merge2(less, greater)
	return x
}

// get returns the node with the given key, or nil.
func (t *tree[K, V, S]) get(key K) *node[K, V, S] {
	x := t.root
	for x != nil {
		c := t.cmp(x.key, key)
		if c == 0 {
			return x
		}
		if c > 0 {
			x = x.left
		} else {
			x = x.right
		}
	}
	return nil
}

// withRange isolates the keys in r as a standalone subtree, calls f with it,
// and reassembles the tree from the parts and the subtree f returns.
// f may restructure or drop the subtree but must not add keys outside r.
func (t *tree[K, V, S]) withRange(r rng.Range[K], f func(*node[K, V, S]) *node[K, V, S]) {
	var less, mid, greater *node[K, V, S]
	mid = t.root
	if hi, inf, incl := r.High(); !inf {
		mid, greater = t.split2(mid, hi, incl)
	}
	if lo, inf, incl := r.Low(); !inf {
		less, mid = t.split2(mid, lo, !incl)
	}
	t.root = t.merge3(less, f(mid), greater)
}

// observeDepth logs, once, a split path far longer than a treap of t.count
// entries should ever produce. That happens when the comparison function is
// not a strict total order or the priority source is not random.
func (t *tree[K, V, S]) observeDepth(depth int) {
	if t.deepWarned {
		return
	}
	if limit := 4*bits.Len(uint(t.count)) + 32; depth > limit {
		t.deepWarned = true
		log.Warnf("treap split depth %d exceeds %d for %d entries; "+
			"check the comparison function and priority source", depth, limit, t.count)
	}
}

// size counts the nodes in the subtree rooted at x.
func (x *node[K, V, S]) size() int {
	if x == nil {
		return 0
	}
	return 1 + x.left.size() + x.right.size()
}

// minNode returns the node in x's subtree with the smallest key.
// x must not be nil.
func (x *node[K, V, S]) minNode() *node[K, V, S] {
	for x.left != nil {
		x = x.left
	}
	return x
}

// maxNode returns the node in x's subtree with the largest key.
// x must not be nil.
func (x *node[K, V, S]) maxNode() *node[K, V, S] {
	for x.right != nil {
		x = x.right
	}
	return x
}

func (x *node[K, V, S]) clone() *node[K, V, S] {
	if x == nil {
		return nil
	}
	c := *x
	c.left = x.left.clone()
	c.right = x.right.clone()
	return &c
}
