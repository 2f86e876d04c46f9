// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package merkle builds the merkle tree over a block's transactions. It is
// split out from blockchain so that the genesis builder — which runs
// before any chaincfg.Params exists to build a genesis block from — can
// depend on it without creating an import cycle through blockchain's
// consensus-parameter-aware pieces.
package merkle

import (
	"github.com/cannabiscoindev/cannabiscoin420/chainhash"
	"github.com/cannabiscoindev/cannabiscoin420/wire"
)

// nextPowerOfTwo returns the next highest power of two from a given number
// if it is not already a power of two. This is a helper function used
// during the calculation of a merkle tree.
func nextPowerOfTwo(n int) int {
	if n&(n-1) == 0 {
		return n
	}
	exponent := uint(0)
	for 1<<exponent < n {
		exponent++
	}
	return 1 << exponent
}

// hashMerkleBranches takes two hashes, treated as the left and right tree
// nodes, and returns the hash of their concatenation. This is a helper
// function used to aid in the generation of a merkle tree.
func hashMerkleBranches(left, right *chainhash.Hash) *chainhash.Hash {
	var hash [chainhash.HashSize * 2]byte
	copy(hash[:chainhash.HashSize], left[:])
	copy(hash[chainhash.HashSize:], right[:])
	newHash := chainhash.DoubleHashH(hash[:])
	return &newHash
}

// BuildMerkleTreeStore creates a merkle tree from a slice of transactions,
// stores it using a linear array, and returns a slice of the backing
// array. The result is a "list" style tree in which the last element is
// the root of the tree.
func BuildMerkleTreeStore(transactions []*wire.MsgTx) []*chainhash.Hash {
	nextPoT := nextPowerOfTwo(len(transactions))
	arraySize := nextPoT*2 - 1
	merkles := make([]*chainhash.Hash, arraySize)

	for i, tx := range transactions {
		txHash := tx.TxHash()
		merkles[i] = &txHash
	}

	offset := nextPoT
	for i := 0; i < arraySize-1; i += 2 {
		switch {
		case merkles[i] == nil:
			merkles[offset] = nil
		case merkles[i+1] == nil:
			newHash := hashMerkleBranches(merkles[i], merkles[i])
			merkles[offset] = newHash
		default:
			newHash := hashMerkleBranches(merkles[i], merkles[i+1])
			merkles[offset] = newHash
		}
		offset++
	}

	return merkles
}
