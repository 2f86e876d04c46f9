// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/cannabiscoindev/cannabiscoin420/chaincfg"
	"github.com/cannabiscoindev/cannabiscoin420/chainhash"
)

// sigcheckVerificationFactor is how many times more expensive verifying a
// transaction after the last checkpoint is assumed to be than one before
// it. The number is a compromise: reindexing from a fast disk with a slow
// CPU sees a much larger ratio, downloading over a slow network with a
// fast CPU sees close to 1.
const sigcheckVerificationFactor = 5.0

// CheckpointRegistry answers checkpoint membership and verification
// progress queries for a single network's pinned checkpoint table. Its
// zero value is not usable; construct one with NewCheckpointRegistry.
type CheckpointRegistry struct {
	checkpoints []chaincfg.Checkpoint
	summary     chaincfg.CheckpointSummary

	// checkpointsDisabled mirrors a CLI flag: when set, every
	// membership check answers true regardless of the pinned table.
	checkpointsDisabled bool

	// testnet networks carry no enforced checkpoints: CheckBlock always
	// answers true for them.
	isTestnet bool
}

// NewCheckpointRegistry builds a registry over a network's parameters.
// disableCheckpoints mirrors the boundary "-checkpoints" flag: when true,
// checkpoint enforcement is switched off entirely.
func NewCheckpointRegistry(params *chaincfg.Params, disableCheckpoints bool) *CheckpointRegistry {
	return &CheckpointRegistry{
		checkpoints:          params.Checkpoints,
		summary:              params.CheckpointSummary,
		checkpointsDisabled:  disableCheckpoints,
		isTestnet:            params.Name == testNetworkID,
	}
}

// CheckBlock returns whether hash is an acceptable block hash at the given
// height: true if the network has no enforced checkpoints, checkpoint
// enforcement is disabled, the height isn't pinned, or the pinned hash
// matches; false otherwise.
func (r *CheckpointRegistry) CheckBlock(height int32, hash *chainhash.Hash) bool {
	if r.isTestnet || r.checkpointsDisabled {
		return true
	}
	for _, cp := range r.checkpoints {
		if cp.Height == height {
			if !cp.Hash.IsEqual(hash) {
				log.Warnf("Block at height %d does not match checkpoint hash", height)
				return false
			}
			return true
		}
	}
	return true
}

// TotalBlocksEstimate returns the maximum pinned height, or 0 if
// checkpoints are disabled or the table is empty.
func (r *CheckpointRegistry) TotalBlocksEstimate() int32 {
	if r.isTestnet || r.checkpointsDisabled || len(r.checkpoints) == 0 {
		return 0
	}
	max := r.checkpoints[0].Height
	for _, cp := range r.checkpoints[1:] {
		if cp.Height > max {
			max = cp.Height
		}
	}
	return max
}

// HeightIndex is the caller-supplied lookup LastCheckpoint uses to test
// whether a given checkpoint's hash is present in the caller's own block
// index.
type HeightIndex interface {
	// HasHash reports whether hash is a known block in the caller's
	// index.
	HasHash(hash *chainhash.Hash) bool
}

// LastCheckpoint walks the checkpoint table in descending height order and
// returns the first checkpoint whose hash is present in index, or nil if
// none are. It always returns nil on testnet and when checkpoints are
// disabled.
func (r *CheckpointRegistry) LastCheckpoint(index HeightIndex) *chaincfg.Checkpoint {
	if r.isTestnet || r.checkpointsDisabled {
		return nil
	}
	sorted := sortedDescending(r.checkpoints)
	for i := range sorted {
		if index.HasHash(sorted[i].Hash) {
			return &sorted[i]
		}
	}
	return nil
}

// LatestHardenedCheckpoint returns the hash pinned at the maximum height in
// the table, or nil if the table is empty.
func (r *CheckpointRegistry) LatestHardenedCheckpoint() *chainhash.Hash {
	if len(r.checkpoints) == 0 {
		return nil
	}
	sorted := sortedDescending(r.checkpoints)
	return sorted[0].Hash
}

// GuessVerificationProgress estimates how far through initial verification
// a chain tip is, in [0,1], modeling transaction verification as five
// times more expensive after the last checkpoint than before it.
func (r *CheckpointRegistry) GuessVerificationProgress(txCount, blockTime, now int64) float64 {
	var before, workAfter float64

	if txCount <= r.summary.TxCountLast {
		cheapBefore := float64(txCount)
		cheapAfter := float64(r.summary.TxCountLast - txCount)
		expensiveAfter := float64(now-r.summary.TimeLast) / 86400.0 * r.summary.TxPerDay
		before = cheapBefore
		workAfter = cheapAfter + sigcheckVerificationFactor*expensiveAfter
	} else {
		cheapBefore := float64(r.summary.TxCountLast)
		expensiveBefore := float64(txCount - r.summary.TxCountLast)
		expensiveAfter := float64(now-blockTime) / 86400.0 * r.summary.TxPerDay
		before = cheapBefore + sigcheckVerificationFactor*expensiveBefore
		workAfter = sigcheckVerificationFactor * expensiveAfter
	}

	if before+workAfter == 0 {
		return 0
	}
	return before / (before + workAfter)
}

// sortedDescending returns a copy of checkpoints ordered by descending
// height. Checkpoint tables are stored as slices rather than maps so this
// ordering, and the ascending order callers rely on elsewhere, is always
// well defined.
func sortedDescending(checkpoints []chaincfg.Checkpoint) []chaincfg.Checkpoint {
	out := make([]chaincfg.Checkpoint, len(checkpoints))
	copy(out, checkpoints)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Height > out[j-1].Height; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
