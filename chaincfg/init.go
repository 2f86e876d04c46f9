// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
)

// genesisTime is shared by all three networks. mainnetGenesisNonce and
// mainnetGenesisBits are the pinned construction arguments shared by
// mainnet and testnet: both networks launched from the same genesis block.
const (
	genesisTime         = 1400408750
	mainnetGenesisNonce = 325433
	mainnetGenesisBits  = 0x1e0ffff0

	regtestGenesisNonce = 1
	regtestGenesisBits  = 0x207fffff
)

const (
	sharedGenesisHash   = "00000a10f7ce671e773330376ce892a6c0b93fbc05553ebbf659b11e3bf9188d"
	sharedGenesisMerkle = "2a4b0da444f96adf29d6bccf65fa6d558ccbbc4b0fc5c5b3088fc03d5c364558"
	regtestGenesisHash  = "35e0eaea93bb51238d310f089a639d92402491b7e27365bb4fb08353ce1e4721"
)

// init wires each parameter set's computed fields: the constructed and
// identity-asserted genesis block, and the parsed checkpoint public key.
// These run once at package load, before SelectParams can publish any of
// the three sets to a reader, satisfying the one-shot construction
// invariant the NetworkRegistry depends on.
func init() {
	MainNetParams.GenesisBlock = buildAndAssertGenesis(
		genesisTime, mainnetGenesisNonce, mainnetGenesisBits,
		sharedGenesisHash, sharedGenesisMerkle,
	)
	hash := MainNetParams.GenesisBlock.BlockHash()
	MainNetParams.GenesisHash = &hash
	MainNetParams.CheckpointPubKey = mustParsePubKey(MainNetParams.CheckpointPubKeyHex)

	TestNetParams.GenesisBlock = buildAndAssertGenesis(
		genesisTime, mainnetGenesisNonce, mainnetGenesisBits,
		sharedGenesisHash, sharedGenesisMerkle,
	)
	testHash := TestNetParams.GenesisBlock.BlockHash()
	TestNetParams.GenesisHash = &testHash
	TestNetParams.CheckpointPubKey = mustParsePubKey(TestNetParams.CheckpointPubKeyHex)

	RegressionNetParams.GenesisBlock = buildAndAssertGenesis(
		genesisTime, regtestGenesisNonce, regtestGenesisBits,
		regtestGenesisHash, sharedGenesisMerkle,
	)
	regHash := RegressionNetParams.GenesisBlock.BlockHash()
	RegressionNetParams.GenesisHash = &regHash
	RegressionNetParams.CheckpointPubKey = mustParsePubKey(RegressionNetParams.CheckpointPubKeyHex)
}

func mustParsePubKey(s string) *btcec.PublicKey {
	raw, err := hex.DecodeString(s)
	if err != nil {
		panic("chaincfg: invalid checkpoint pubkey hex: " + err.Error())
	}
	pubKey, err := btcec.ParsePubKey(raw)
	if err != nil {
		panic(fmt.Sprintf("chaincfg: invalid checkpoint pubkey: %v", err))
	}
	return pubKey
}
