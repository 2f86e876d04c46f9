// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package workmath implements the fixed-width 256-bit unsigned integer
// arithmetic the difficulty retarget algorithm is defined over, along with
// its compact ("nBits") encoding.
//
// The retarget algorithm's correctness depends on every node computing
// bit-identical results, so the type here is a fixed array of machine words
// rather than a heap-allocated big.Int: there is exactly one representation
// for a given value, arithmetic never allocates, and there is no growth
// behavior for callers to accidentally depend on.
package workmath
