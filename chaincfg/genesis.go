// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"fmt"

	"github.com/cannabiscoindev/cannabiscoin420/ccutil"
	"github.com/cannabiscoindev/cannabiscoin420/chainhash"
	"github.com/cannabiscoindev/cannabiscoin420/genesis"
	"github.com/cannabiscoindev/cannabiscoin420/txscript"
	"github.com/cannabiscoindev/cannabiscoin420/wire"
)

// genesisOutputPubKeyHex is the public key backing the genesis coinbase's
// unspendable scriptPubKey. It is shared by all three networks, unlike
// each network's own CheckpointPubKeyHex.
const genesisOutputPubKeyHex = "040184710fa689ad5023690c80f3a49c8f13f8d45b8c857fbcbc8bc4a8e4d3eb4" +
	"b10f4d4604fa08dce601aaf0f470216fe1b51850b4acf21b179c45070ac7b03a9"

// genesisCoinbaseTimestamp is the timestamp string embedded in the
// coinbase input of every network's genesis block.
const genesisCoinbaseTimestamp = "420"

// genesisOutputScript builds the standard pay-to-pubkey scriptPubKey the
// genesis coinbase output pays to.
func genesisOutputScript() []byte {
	pubKey, err := hex.DecodeString(genesisOutputPubKeyHex)
	if err != nil {
		panic("chaincfg: invalid genesis output pubkey hex: " + err.Error())
	}
	return txscript.NewScriptBuilder().
		AddData(pubKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
}

// buildAndAssertGenesis constructs a network's genesis block and aborts if
// its hash or merkle root disagree with the pinned constants. A mismatch
// means a corrupted consensus constant and must not be allowed to
// propagate into a running node.
func buildAndAssertGenesis(nTime, nNonce, nBits uint32, wantHash, wantMerkle string) *wire.MsgBlock {
	block := genesis.Build(
		genesisCoinbaseTimestamp,
		genesisOutputScript(),
		nTime, nNonce, nBits, 1,
		420*ccutil.COIN,
	)

	gotHash := block.BlockHash()
	wantHashHash, err := chainhash.NewHashFromStr(wantHash)
	if err != nil {
		panic(fmt.Sprintf("chaincfg: invalid pinned genesis hash constant %q: %v", wantHash, err))
	}
	if !gotHash.IsEqual(wantHashHash) {
		panic(fmt.Sprintf("chaincfg: genesis hash assertion failed: got %v, want %v", gotHash, wantHashHash))
	}

	gotMerkle := block.Header.MerkleRoot
	wantMerkleHash, err := chainhash.NewHashFromStr(wantMerkle)
	if err != nil {
		panic(fmt.Sprintf("chaincfg: invalid pinned merkle root constant %q: %v", wantMerkle, err))
	}
	if !gotMerkle.IsEqual(wantMerkleHash) {
		panic(fmt.Sprintf("chaincfg: genesis merkle root assertion failed: got %v, want %v", gotMerkle, wantMerkleHash))
	}

	return block
}
