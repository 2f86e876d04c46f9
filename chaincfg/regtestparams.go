// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/cannabiscoindev/cannabiscoin420/wire"
)

// RegressionNetParams defines the network parameters for the regression
// test network.
var RegressionNetParams = Params{
	Name:             "regtest",
	Net:              wire.RegTest,
	DefaultPort:      "29347",
	PruneAfterHeight: 1000,

	PowLimit:     mustHex32("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
	PowLimitBits: 0x207fffff,

	SubsidyHalvingInterval: 150,

	RuleChangeActivationThreshold: 108,
	MinerConfirmationWindow:       144,
	Deployments: [DefinedDeployments]ConsensusDeployment{
		DeploymentTestDummy: {BitNumber: 28, StartTime: 0, ExpireTime: 999999999999},
		DeploymentCSV:       {BitNumber: 0, StartTime: 0, ExpireTime: 999999999999},
		DeploymentSegwit:    {BitNumber: 1, StartTime: 0, ExpireTime: 999999999999},
	},

	ForkOne: 1,

	MajorityEnforceBlockUpgrade: 750,
	MajorityRejectBlockOutdated: 950,
	MajorityWindow:              1000,

	TargetTimespan:           24 * time.Hour,
	TargetSpacing:            42 * time.Second,
	RetargetAdjustmentFactor: 4,
	AllowMinDifficultyBlocks: true,
	NoRetargeting:            true,

	MinimumChainWork: mustHex32("0000000000000000000000000000000000000000000000000000000000000000"),

	CheckpointPubKeyHex: "048dc3106fba17f0bcefb289f14a8e248e210ae6f96cc2e512b84ba88f9bc08669078a9e4d0144d6573d035a62d84224f380427d2cbdb763da56aeac6cf50b13e3",

	Checkpoints: []Checkpoint{
		{Height: 0, Hash: mustCheckpointHash("35e0eaea93bb51238d310f089a639d92402491b7e27365bb4fb08353ce1e4721")},
	},

	PubKeyHashAddrID: 111,
	ScriptHashAddrID: 196,
	PrivateKeyID:     239,
	HDPublicKeyID:    [4]byte{0x04, 0x35, 0x87, 0xCF},
	HDPrivateKeyID:   [4]byte{0x04, 0x35, 0x83, 0x94},
}
