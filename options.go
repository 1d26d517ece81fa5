// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statmap

import "math/rand/v2"

// A PrioritySource supplies the random heap priority given to each
// newly inserted entry. Values need not be cryptographically strong,
// but they should be independent and spread over the whole uint64 range;
// ties are broken deterministically and do not affect correctness.
//
// *rand.Rand, *rand.PCG and *rand.ChaCha8 from math/rand/v2 all
// implement PrioritySource.
type PrioritySource interface {
	Uint64() uint64
}

// globalSource draws from the math/rand/v2 top-level generator.
type globalSource struct{}

func (globalSource) Uint64() uint64 { return rand.Uint64() }

type options struct {
	pri PrioritySource
}

// Option configures a map or set constructor.
type Option func(*options)

// WithPrioritySource makes the container draw priorities from src.
//
// If nil is passed, the math/rand/v2 top-level generator is used.
func WithPrioritySource(src PrioritySource) Option {
	return func(o *options) {
		o.pri = src
	}
}

// WithSeed makes the container draw priorities from a PCG generator
// seeded with seed, so that the shape of the tree is reproducible
// for a given sequence of operations.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.pri = rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
