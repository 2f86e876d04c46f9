// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockchain implements the consensus difficulty engine and
// hardened-checkpoint registry: the adaptive "event horizon" moving-window
// retarget algorithm, its legacy 4x-bounded fallback, the proof-of-work
// validity predicate, and per-network checkpoint lookups.
//
// Two upstream behaviors are reproduced verbatim rather than "fixed",
// because their rationale is undocumented and the chain's fork-safety
// depends on bit-identical output across implementations:
//
//   - The anti-rewind clamp on the moving window's "latest observed time"
//     activates when walker.Height() > 1 or, on testnet, when
//     walker.Height() >= 10; the testnet clause adds no heights of its own,
//     since any height >= 10 already satisfies the first condition.
//   - GetNextWorkRequired walks at most PastBlocksMax headers; the walk
//     terminates on the first envelope-satisfying window rather than
//     continuing to the oldest available header.
package blockchain
