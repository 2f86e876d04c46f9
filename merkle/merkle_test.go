// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"testing"

	"github.com/cannabiscoindev/cannabiscoin420/wire"
)

func TestBuildMerkleTreeStoreSingleTx(t *testing.T) {
	tx := wire.NewMsgTx(1)
	tx.AddTxIn(wire.NewTxIn(&wire.OutPoint{Index: 0xffffffff}, []byte{0x01}))
	tx.AddTxOut(wire.NewTxOut(100, []byte{0x02}))

	merkles := BuildMerkleTreeStore([]*wire.MsgTx{tx})
	if len(merkles) != 1 {
		t.Fatalf("expected a single-element tree, got %d", len(merkles))
	}
	txHash := tx.TxHash()
	if *merkles[0] != txHash {
		t.Error("root of a single-tx tree must equal that tx's hash")
	}
}

func TestBuildMerkleTreeStoreOddCount(t *testing.T) {
	tx1 := wire.NewMsgTx(1)
	tx1.AddTxOut(wire.NewTxOut(1, []byte{0x01}))
	tx2 := wire.NewMsgTx(1)
	tx2.AddTxOut(wire.NewTxOut(2, []byte{0x02}))
	tx3 := wire.NewMsgTx(1)
	tx3.AddTxOut(wire.NewTxOut(3, []byte{0x03}))

	merkles := BuildMerkleTreeStore([]*wire.MsgTx{tx1, tx2, tx3})
	// nextPowerOfTwo(3) == 4, so the array has 4*2-1 == 7 slots.
	if len(merkles) != 7 {
		t.Fatalf("expected 7 slots, got %d", len(merkles))
	}
	root := merkles[len(merkles)-1]
	if root == nil {
		t.Fatal("root must not be nil")
	}
}

func TestBuildMerkleTreeStoreDeterministic(t *testing.T) {
	tx1 := wire.NewMsgTx(1)
	tx1.AddTxOut(wire.NewTxOut(1, []byte{0x01}))
	tx2 := wire.NewMsgTx(1)
	tx2.AddTxOut(wire.NewTxOut(2, []byte{0x02}))

	m1 := BuildMerkleTreeStore([]*wire.MsgTx{tx1, tx2})
	m2 := BuildMerkleTreeStore([]*wire.MsgTx{tx1, tx2})

	root1 := m1[len(m1)-1]
	root2 := m2[len(m2)-1]
	if *root1 != *root2 {
		t.Error("building the same tree twice must produce the same root")
	}
}
