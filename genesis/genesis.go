// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package genesis deterministically constructs the height-0 block for a
// network from its pinned construction arguments.
package genesis

import (
	"time"

	"github.com/cannabiscoindev/cannabiscoin420/ccutil"
	"github.com/cannabiscoindev/cannabiscoin420/merkle"
	"github.com/cannabiscoindev/cannabiscoin420/txscript"
	"github.com/cannabiscoindev/cannabiscoin420/wire"
)

// coinbaseFlags mirrors the magic constant Satoshi's original coinbase
// scriptSig pushed ahead of the block-height push, carried forward here
// even though this chain's genesis coinbase is unspendable.
const coinbaseFlags = 486604799

// Build constructs the genesis block from its construction arguments: a
// timestamp string embedded in the coinbase input, the output script the
// (unspendable) genesis reward pays to, the block's time/nonce/bits/version
// fields, and the reward amount.
//
// The single coinbase transaction's scriptSig is
// PUSH(486604799) || PUSH(0x04) || PUSH(timestamp bytes), matching the
// pattern Bitcoin-derived chains use to embed an auditable, non-spendable
// marker in the genesis coinbase.
func Build(timestamp string, outputScript []byte, nTime, nNonce, nBits uint32,
	nVersion int32, reward ccutil.Amount) *wire.MsgBlock {

	// The "4" here must be the literal two bytes 0x01 0x04 (a one-byte
	// data push), not the small-int opcode OP_4: that is the exact byte
	// sequence the pinned genesis coinbase txid/merkle root were computed
	// against, and AddInt64/AddData would both canonicalize a lone value
	// of 4 down to the single-byte OP_4 opcode instead.
	scriptSig := txscript.NewScriptBuilder().
		AddInt64(coinbaseFlags).
		AddOp(txscript.OP_DATA_1).
		AddOp(0x04).
		AddData([]byte(timestamp)).
		Script()

	coinbase := wire.NewMsgTx(1)
	coinbase.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{Index: 0xffffffff},
		SignatureScript:  scriptSig,
		Sequence:         wire.MaxTxInSequenceNum,
	})
	coinbase.AddTxOut(wire.NewTxOut(int64(reward), outputScript))

	merkles := merkle.BuildMerkleTreeStore([]*wire.MsgTx{coinbase})
	merkleRoot := *merkles[len(merkles)-1]

	header := wire.BlockHeader{
		Version:    nVersion,
		MerkleRoot: merkleRoot,
		Timestamp:  time.Unix(int64(nTime), 0),
		Bits:       nBits,
		Nonce:      nNonce,
	}

	block := wire.NewMsgBlock(&header)
	block.AddTransaction(coinbase)
	return block
}
