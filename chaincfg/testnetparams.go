// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/cannabiscoindev/cannabiscoin420/wire"
)

// TestNetParams defines the network parameters for the test network.
var TestNetParams = Params{
	Name:        "test",
	Net:         wire.TestNet,
	DefaultPort: "29347",
	DNSSeeds: []DNSSeed{
		{Host: "testnet-seed.cannabiscoin.net", HasFiltering: false},
	},
	PruneAfterHeight: 1000,

	PowLimit:     mustHex32("00000fffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
	PowLimitBits: 0x1e0fffff,

	SubsidyHalvingInterval: 3000000,

	RuleChangeActivationThreshold: 2160,
	MinerConfirmationWindow:       2880,
	Deployments: [DefinedDeployments]ConsensusDeployment{
		DeploymentTestDummy: {BitNumber: 28, StartTime: 1199145601, ExpireTime: 1230767999},
		DeploymentCSV:       {BitNumber: 0, StartTime: 1533081600, ExpireTime: 1564617600},
		DeploymentSegwit:    {BitNumber: 1, StartTime: 1533081600, ExpireTime: 1564617600},
	},

	ForkOne: 1500,

	MajorityEnforceBlockUpgrade: 51,
	MajorityRejectBlockOutdated: 75,
	MajorityWindow:              100,

	TargetTimespan:           24 * time.Hour,
	TargetSpacing:            42 * time.Second,
	RetargetAdjustmentFactor: 4,
	AllowMinDifficultyBlocks: true,
	NoRetargeting:            false,

	MinimumChainWork: mustHex32("0000000000000000000000000000000000000000000000000000000000100010"),

	CheckpointPubKeyHex: "048dc3106fba17f0bcefb289f14a8e248e210ae6f96cc2e512b84ba88f9bc08669078a9e4d0144d6573d035a62d84224f380427d2cbdb763da56aeac6cf50b13e3",

	// Testnet has no enforced checkpoints: CheckpointRegistry.CheckBlock
	// always returns true for it regardless of this table.
	Checkpoints: []Checkpoint{
		{Height: 0, Hash: mustCheckpointHash("00000a10f7ce671e773330376ce892a6c0b93fbc05553ebbf659b11e3bf9188d")},
	},
	CheckpointSummary: CheckpointSummary{
		TimeLast:    1400408750,
		TxCountLast: 1,
		TxPerDay:    2778,
	},

	PubKeyHashAddrID: 111,
	ScriptHashAddrID: 196,
	PrivateKeyID:     239,
	HDPublicKeyID:    [4]byte{0x04, 0x35, 0x87, 0xCF},
	HDPrivateKeyID:   [4]byte{0x04, 0x35, 0x83, 0x94},
}
