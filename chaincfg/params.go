// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the network parameters for the three consensus
// networks this chain supports (mainnet, testnet, regtest) and the
// process-wide selection of the active one.
package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/cannabiscoindev/cannabiscoin420/chainhash"
	"github.com/cannabiscoindev/cannabiscoin420/wire"
)

// Checkpoint identifies a known good point in the block chain. Every node
// is expected to have the same checkpoint information and is treated as a
// hard rule.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// CheckpointSummary carries the non-consensus verification-progress
// estimation inputs that accompany a network's checkpoint table.
type CheckpointSummary struct {
	TimeLast      int64
	TxCountLast   int64
	TxPerDay      float64
}

// DeploymentID identifies one of the version-bits soft-fork deployments
// this chain tracks. The deployment descriptors are stored by
// ConsensusParams but not interpreted by the difficulty engine; the
// versionbits state machine that drives activation lives outside this
// module's scope.
type DeploymentID int

const (
	DeploymentTestDummy DeploymentID = iota
	DeploymentCSV
	DeploymentSegwit

	// DefinedDeployments is the number of defined deployments currently
	// defined.
	DefinedDeployments
)

// ConsensusDeployment defines details related to a specific consensus rule
// change that is voted in.  This is part of BIP0009.
type ConsensusDeployment struct {
	// BitNumber is the bit number within version which is to be used to
	// signal the deployment.
	BitNumber uint8

	// StartTime is the median block time after which voting on the
	// deployment starts.
	StartTime uint64

	// ExpireTime is the median block time after which the attempted
	// deployment expires.
	ExpireTime uint64
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	Host         string
	HasFiltering bool
}

// Params defines a network by its parameters. These parameters may be
// used by applications to differentiate networks as well as addresses and
// keys for one network from those intended for use on another network.
type Params struct {
	Name string
	Net  wire.BitcoinNet

	DefaultPort     string
	DNSSeeds        []DNSSeed
	PruneAfterHeight uint32

	// Genesis carries both the block built by the GenesisBuilder and the
	// pinned identity it must reproduce.
	GenesisBlock *wire.MsgBlock
	GenesisHash  *chainhash.Hash

	// PowLimit defines the highest allowed proof of work value for a
	// block as a uint256.
	PowLimit     [32]byte
	PowLimitBits uint32

	SubsidyHalvingInterval int32

	// Consensus rule change deployments.
	//
	// These fields are fully parsed by the CheckpointRegistry's owner
	// but not evaluated by this module: the versionbits state machine
	// that interprets them lives outside this core.
	RuleChangeActivationThreshold uint32
	MinerConfirmationWindow       uint32
	Deployments                   [DefinedDeployments]ConsensusDeployment

	// Fork activation heights, stored but not consumed by this core.
	ForkOne int32
	ForkTwo int32

	// Legacy majority-vote thresholds retained from the pre-BIP9 block
	// version upgrade mechanism.
	MajorityEnforceBlockUpgrade uint32
	MajorityRejectBlockOutdated uint32
	MajorityWindow              uint32

	// Retarget parameters.
	TargetTimespan       time.Duration
	TargetSpacing        time.Duration
	RetargetAdjustmentFactor int64
	AllowMinDifficultyBlocks bool
	NoRetargeting            bool

	// MinimumChainWork is the minimum amount of work this chain's best
	// known chain must have before a node will consider it valid.
	MinimumChainWork [32]byte

	// CheckpointPubKeyHex carries the network's hex-encoded public key
	// used to authenticate signed checkpoint broadcasts.
	CheckpointPubKeyHex string
	CheckpointPubKey    *btcec.PublicKey

	// Checkpoints holds the network's hardened checkpoint table, ordered
	// by ascending height (a slice, never a map, so reverse iteration is
	// well defined as required by the registry's last-checkpoint walk).
	Checkpoints []Checkpoint
	CheckpointSummary CheckpointSummary

	// Address encoding magics, passed through to (and interpreted by) a
	// base58-address component outside this module's scope.
	PubKeyHashAddrID byte
	ScriptHashAddrID byte
	PrivateKeyID     byte

	// BIP32 hierarchical deterministic extended key magics.
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte
}
