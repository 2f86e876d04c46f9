// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/cannabiscoindev/cannabiscoin420/chainhash"
	"github.com/cannabiscoindev/cannabiscoin420/wire"
)

func mustCheckpointHash(s string) *chainhash.Hash {
	h, err := chainhash.NewHashFromStr(s)
	if err != nil {
		panic("chaincfg: invalid checkpoint hash constant: " + err.Error())
	}
	return h
}

// mainCheckpoints reproduces the mainnet checkpoint table bit-exactly,
// ordered by ascending height.
var mainCheckpoints = []Checkpoint{
	{Height: 57600, Hash: mustCheckpointHash("0000000015fedc25afc3db164ef667cc7b86761e430ad2c8348178b35f3a7ae5")},
	{Height: 172800, Hash: mustCheckpointHash("000000000029b8da63ad224f0af1d6ae1dda36df76685584cff7b8291425fff9")},
	{Height: 288005, Hash: mustCheckpointHash("00000000001a38651f306cf75159aff13c65bcf58b41626590e92e47b011bf1f")},
	{Height: 403200, Hash: mustCheckpointHash("0000000004175725c085588b751f1680d02be94e3b620049e0653c1b99a2ad22")},
	{Height: 575998, Hash: mustCheckpointHash("0000000007b0557b0eafc723d0541e644715f19e05184e030cf9971a5cfc6313")},
	{Height: 748800, Hash: mustCheckpointHash("0000000028f231274ddafdb2127f1e944685fd4a010a0990605616953690401a")},
	{Height: 921601, Hash: mustCheckpointHash("0000000001ea876e4b5dcd56562fa1dd84d80db6ea430130c924ece6b5c87d6a")},
	{Height: 1061757, Hash: mustCheckpointHash("00000000738d25e43fbc8c2eb99662bcd7d6e24f3bb06263242494be9ea9ef51")},
	{Height: 2210000, Hash: mustCheckpointHash("00000000339ff4df710efe0ff81f4c307343cba44a5a166412b30f764029ef76")},
}

// MainNetParams defines the network parameters for the main network.
var MainNetParams = Params{
	Name:             "main",
	Net:              wire.MainNet,
	DefaultPort:      "39348",
	DNSSeeds: []DNSSeed{
		{Host: "seed.cannabiscoin.net", HasFiltering: false},
		{Host: "seed2.cannabiscoin.net", HasFiltering: false},
	},
	PruneAfterHeight: 100000,

	PowLimit:     mustHex32("00000fffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
	PowLimitBits: 0x1e0fffff,

	SubsidyHalvingInterval: 3000000,

	RuleChangeActivationThreshold: 21600,
	MinerConfirmationWindow:       28800,
	Deployments: [DefinedDeployments]ConsensusDeployment{
		DeploymentTestDummy: {BitNumber: 28, StartTime: 1199145601, ExpireTime: 1230767999},
		DeploymentCSV:       {BitNumber: 0, StartTime: 1533081600, ExpireTime: 1564617600},
		DeploymentSegwit:    {BitNumber: 1, StartTime: 1533081600, ExpireTime: 1564617600},
	},

	ForkOne: 2282000,
	ForkTwo: 3030000,

	MajorityEnforceBlockUpgrade: 750,
	MajorityRejectBlockOutdated: 950,
	MajorityWindow:              1000,

	TargetTimespan:           24 * time.Hour,
	TargetSpacing:            42 * time.Second,
	RetargetAdjustmentFactor: 4,
	AllowMinDifficultyBlocks: false,
	NoRetargeting:            false,

	MinimumChainWork: mustHex32("0000000000000000000000000000000000000000000000000000000000100010"),

	CheckpointPubKeyHex: "048058d4b29ae51a2b7fe4276c7cc32b2c4353920af721d12c4b5e6ec7aff8c4d8bc9873ce066f8bbf86d5bb835600885c1a2a7a376496c7099afae5146932562e",

	Checkpoints: mainCheckpoints,
	CheckpointSummary: CheckpointSummary{
		TimeLast:    1496619975,
		TxCountLast: 2644312,
		TxPerDay:    2778.0,
	},

	PubKeyHashAddrID: 28,
	ScriptHashAddrID: 5,
	PrivateKeyID:     156,
	HDPublicKeyID:    [4]byte{0x04, 0x88, 0xB2, 0x1E},
	HDPrivateKeyID:   [4]byte{0x04, 0x88, 0xAD, 0xE4},
}
