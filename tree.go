// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statmap

import (
	"reflect"

	"github.com/jba/statmap/rng"
	"github.com/pkg/errors"
)

// The methods in this file implement the operations common to Map and MapFunc.
// The read-only ones accept a nil *tree, which behaves as an empty map.

func (t *tree[K, V, S]) len() int {
	if t == nil {
		return 0
	}
	return t.count
}

func (t *tree[K, V, S]) clear() {
	log.Tracef("clearing %d entries", t.count)
	t.root = nil
	t.count = 0
	t.deepWarned = false
}

func (t *tree[K, V, S]) getVal(key K) (V, bool) {
	if t == nil {
		var zero V
		return zero, false
	}
	if x := t.get(key); x != nil {
		return x.val, true
	}
	var zero V
	return zero, false
}

func (t *tree[K, V, S]) set(key K, val V) (V, bool) {
	if old := t.insertOrReplace(t.newNode(key, val)); old != nil {
		return old.val, false
	}
	t.count++
	var zero V
	return zero, true
}

func (t *tree[K, V, S]) delete(key K) (V, bool) {
	x := t.remove(key)
	if x == nil {
		var zero V
		return zero, false
	}
	t.count--
	return x.val, true
}

func (t *tree[K, V, S]) statsFull() (S, bool) {
	if t == nil || t.root == nil {
		var zero S
		return zero, false
	}
	return t.root.agg, true
}

func (t *tree[K, V, S]) min() (K, bool) {
	if t == nil || t.root == nil {
		var zero K
		return zero, false
	}
	return t.root.minNode().key, true
}

func (t *tree[K, V, S]) max() (K, bool) {
	if t == nil || t.root == nil {
		var zero K
		return zero, false
	}
	return t.root.maxNode().key, true
}

// minIn returns the node with the smallest key in r, or nil.
func (t *tree[K, V, S]) minIn(r rng.Range[K]) *node[K, V, S] {
	if t == nil {
		return nil
	}
	var best *node[K, V, S]
	for x := t.root; x != nil; {
		if !r.AboveLow(t.cmp, x.key) {
			x = x.right
			continue
		}
		if r.BelowHigh(t.cmp, x.key) {
			best = x
		}
		x = x.left
	}
	return best
}

// maxIn returns the node with the largest key in r, or nil.
func (t *tree[K, V, S]) maxIn(r rng.Range[K]) *node[K, V, S] {
	if t == nil {
		return nil
	}
	var best *node[K, V, S]
	for x := t.root; x != nil; {
		if !r.BelowHigh(t.cmp, x.key) {
			x = x.left
			continue
		}
		if r.AboveLow(t.cmp, x.key) {
			best = x
		}
		x = x.right
	}
	return best
}

// clearRange deletes the entries in r and returns how many there were.
func (t *tree[K, V, S]) clearRange(r rng.Range[K]) int {
	n := 0
	t.withRange(r, func(x *node[K, V, S]) *node[K, V, S] {
		n = x.size()
		return nil
	})
	t.count -= n
	log.Debugf("cleared %d entries in %v", n, newLogClosure(r.String))
	return n
}

// updateRange replaces each value in r with f(key, value), in key order.
func (t *tree[K, V, S]) updateRange(r rng.Range[K], f func(K, V) V) {
	t.withRange(r, func(x *node[K, V, S]) *node[K, V, S] {
		t.updateAll(x, f)
		return x
	})
}

func (t *tree[K, V, S]) updateAll(x *node[K, V, S], f func(K, V) V) {
	if x == nil {
		return
	}
	t.updateAll(x.left, f)
	x.val = f(x.key, x.val)
	t.updateAll(x.right, f)
	t.update(x)
}

// check verifies the tree's invariants.
func (t *tree[K, V, S]) check() error {
	if t == nil {
		return nil
	}
	n, err := t.checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if n != t.count {
		return errors.Errorf("Len is %d but the tree holds %d entries", t.count, n)
	}
	return nil
}

// checkNode verifies the subtree rooted at x, whose keys must lie strictly
// between lo's and hi's (when not nil), and returns its size.
func (t *tree[K, V, S]) checkNode(x, lo, hi *node[K, V, S]) (int, error) {
	if x == nil {
		return 0, nil
	}
	if lo != nil && t.cmp(lo.key, x.key) >= 0 {
		return 0, errors.Errorf("key %v is not greater than ancestor key %v", x.key, lo.key)
	}
	if hi != nil && t.cmp(x.key, hi.key) >= 0 {
		return 0, errors.Errorf("key %v is not less than ancestor key %v", x.key, hi.key)
	}
	for _, c := range []*node[K, V, S]{x.left, x.right} {
		if c != nil && c.pri < x.pri {
			return 0, errors.Errorf("key %v has priority %d, less than its parent %v's %d",
				c.key, c.pri, x.key, x.pri)
		}
	}
	nl, err := t.checkNode(x.left, lo, x)
	if err != nil {
		return 0, errors.Wrapf(err, "left of %v", x.key)
	}
	nr, err := t.checkNode(x.right, x, hi)
	if err != nil {
		return 0, errors.Wrapf(err, "right of %v", x.key)
	}
	if t.stats != nil {
		want := *x
		t.update(&want)
		if !reflect.DeepEqual(x.agg, want.agg) {
			return 0, errors.Errorf("stale stats at key %v: have %+v, want %+v", x.key, x.agg, want.agg)
		}
	}
	return 1 + nl + nr, nil
}
