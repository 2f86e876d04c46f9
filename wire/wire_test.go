// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"testing"
	"time"

	"github.com/cannabiscoindev/cannabiscoin420/chainhash"
)

func TestBitcoinNetStringer(t *testing.T) {
	tests := []struct {
		in   BitcoinNet
		want string
	}{
		{MainNet, "MainNet"},
		{TestNet, "TestNet"},
		{RegTest, "RegTest"},
		{BitcoinNet(0xffffffff), "Unknown BitcoinNet"},
	}
	for _, test := range tests {
		if got := test.in.String(); got != test.want {
			t.Errorf("String(%08x) = %q, want %q", uint32(test.in), got, test.want)
		}
	}
}

func TestMsgTxAddAndCopy(t *testing.T) {
	tx := NewMsgTx(1)
	tx.AddTxIn(&TxIn{
		PreviousOutPoint: OutPoint{Index: 0xffffffff},
		SignatureScript:  []byte{0x01, 0x02},
		Sequence:         MaxTxInSequenceNum,
	})
	tx.AddTxOut(NewTxOut(5000, []byte{0x76, 0xa9}))

	cp := tx.Copy()
	cp.TxOut[0].Value = 1

	if tx.TxOut[0].Value == cp.TxOut[0].Value {
		t.Fatal("Copy should be independent of the original")
	}
	if cp.TxIn[0].Sequence != MaxTxInSequenceNum {
		t.Errorf("copy lost sequence: got %d", cp.TxIn[0].Sequence)
	}
}

func TestMsgTxHashDeterministic(t *testing.T) {
	tx1 := NewMsgTx(1)
	tx1.AddTxIn(NewTxIn(&OutPoint{Index: 0xffffffff}, []byte("hello")))
	tx1.AddTxOut(NewTxOut(100, []byte{0x01}))

	tx2 := tx1.Copy()

	if tx1.TxHash() != tx2.TxHash() {
		t.Error("identical transactions must hash identically")
	}

	tx2.LockTime = 1
	if tx1.TxHash() == tx2.TxHash() {
		t.Error("differing lock times must hash differently")
	}
}

func TestBlockHeaderHash(t *testing.T) {
	var prev, merkle chainhash.Hash
	h1 := NewBlockHeader(1, &prev, &merkle, 0x1d00ffff, 42)
	h1.Timestamp = time.Unix(1231006505, 0)

	h2 := *h1
	if h1.BlockHash() != h2.BlockHash() {
		t.Error("identical headers must hash identically")
	}

	h2.Nonce = 43
	if h1.BlockHash() == h2.BlockHash() {
		t.Error("differing nonces must hash differently")
	}
}

func TestMsgBlockAddTransaction(t *testing.T) {
	header := BlockHeader{Version: BlockVersion}
	block := NewMsgBlock(&header)

	tx := NewMsgTx(1)
	block.AddTransaction(tx)

	if len(block.Transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(block.Transactions))
	}
	if block.BlockHash() != header.BlockHash() {
		t.Error("block hash must equal header hash")
	}
}
