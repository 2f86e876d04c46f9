// Copyright (c) 2013-2014 Conformal Systems LLC.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

// Opcodes used in the genesis coinbase scriptSig/scriptPubKey. This package
// only ever builds scripts for the genesis block, so it carries the small
// subset of the opcode table that construction needs rather than the full
// interpreter's opcode array.
const (
	OP_0         = 0x00
	OP_DATA_1    = 0x01
	OP_DATA_2    = 0x02
	OP_DATA_3    = 0x03
	OP_DATA_4    = 0x04
	OP_DATA_75   = 0x4b
	OP_PUSHDATA1 = 0x4c
	OP_PUSHDATA2 = 0x4d
	OP_PUSHDATA4 = 0x4e
	OP_1NEGATE   = 0x4f
	OP_1         = 0x51
	OP_16        = 0x60
	OP_CHECKSIG  = 0xac
)
