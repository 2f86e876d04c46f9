// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainhash provides the fixed-size 256-bit hash type used
// throughout the consensus engine to identify blocks and transactions, along
// with the double SHA-256 functions used to produce it.
package chainhash
