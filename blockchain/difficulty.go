// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math"

	"github.com/davecgh/go-spew/spew"

	"github.com/cannabiscoindev/cannabiscoin420/blockchain/internal/workmath"
	"github.com/cannabiscoindev/cannabiscoin420/chaincfg"
	"github.com/cannabiscoindev/cannabiscoin420/chainhash"
)

// testNetworkID is the ConsensusParams.Name value that enables the
// testnet-only walker.height >= 10 relaxation of the anti-rewind clamp.
// See the package documentation in doc.go: the rationale for singling out
// testnet here is undocumented upstream and is reproduced verbatim.
const testNetworkID = "test"

// CompactToBig converts a compact ("nBits") representation to its expanded
// 256-bit form, discarding the negative/overflow flags. Callers that need
// those flags should call workmath.FromCompact directly.
func CompactToBig(compact uint32) workmath.Uint256 {
	target, _, _ := workmath.FromCompact(compact)
	return target
}

// BigToCompact converts a 256-bit target to its compact ("nBits")
// representation.
func BigToCompact(target workmath.Uint256) uint32 {
	return workmath.ToCompact(target)
}

// HashToBig converts a chainhash.Hash into a 256-bit unsigned integer,
// treating the hash's bytes as little-endian: chainhash.Hash stores the
// raw digest, whose last byte is the most significant (String reverses
// the bytes for display), matching the historical Bitcoin Core
// convention this comparison mirrors.
func HashToBig(hash *chainhash.Hash) workmath.Uint256 {
	var buf [32]byte
	for i, b := range hash {
		buf[len(hash)-1-i] = b
	}
	n, err := workmath.FromBytes(buf[:])
	if err != nil {
		// hash is always exactly 32 bytes; FromBytes cannot fail here.
		panic(err)
	}
	return n
}

// powLimitTarget decodes a network's PowLimit field into a Uint256.
func powLimitTarget(params *chaincfg.Params) workmath.Uint256 {
	n, err := workmath.FromBytes(params.PowLimit[:])
	if err != nil {
		panic(err)
	}
	return n
}

// GetNextWorkRequired implements the adaptive "event horizon" moving
// window retarget algorithm. It returns the compact nBits the block
// following tip must satisfy.
func GetNextWorkRequired(tip HeaderCtx, params *chaincfg.Params) uint32 {
	powLimit := powLimitTarget(params)
	powLimitBits := workmath.ToCompact(powLimit)

	if params.AllowMinDifficultyBlocks {
		return tip.Bits()
	}

	tbs := int64(params.TargetSpacing.Seconds())
	tday := int64(params.TargetTimespan.Seconds())

	pastSecondsMin := int64(float64(tday) * 0.025)
	pastSecondsMax := tday * 7
	pastBlocksMin := uint64(pastSecondsMin / tbs)
	pastBlocksMax := uint64(pastSecondsMax / tbs)

	if tip == nil || tip.Height() == 0 || uint64(tip.Height()) < pastBlocksMin {
		return powLimitBits
	}

	latestBlockTime := tip.BlockTime()

	var (
		pastBlocksMass    uint64
		avg               workmath.Uint256
		avgPrev           workmath.Uint256
		actualSeconds     int64
		targetSeconds     int64
	)

	walker := tip
	for i := uint64(1); walker != nil && walker.Height() > 0; i++ {
		if pastBlocksMax > 0 && i > pastBlocksMax {
			break
		}

		pastBlocksMass++

		blockTarget := CompactToBig(walker.Bits())
		if i == 1 {
			avg = blockTarget
		} else if blockTarget.Cmp(avgPrev) < 0 {
			// ((blockTarget - avgPrev) / i) + avgPrev with blockTarget <
			// avgPrev is negative in the signed bignum arithmetic this
			// ports from; Uint256 is unsigned and cannot represent that
			// intermediate, so the subtraction is carried out the other
			// way around and subtracted back off avgPrev instead of
			// added, reproducing the same signed result without an
			// intermediate that goes negative.
			avg = avgPrev.Sub(avgPrev.Sub(blockTarget).DivUint64(i))
		} else {
			avg = blockTarget.Sub(avgPrev).DivUint64(i).Add(avgPrev)
		}
		avgPrev = avg

		relaxed := walker.Height() > 1 ||
			(params.Name == testNetworkID && walker.Height() >= 10)

		if latestBlockTime < walker.BlockTime() && relaxed {
			latestBlockTime = walker.BlockTime()
		}

		actualSeconds = latestBlockTime - walker.BlockTime()
		targetSeconds = tbs * int64(pastBlocksMass)

		if relaxed {
			if actualSeconds < 1 {
				actualSeconds = 1
			}
		} else if actualSeconds < 0 {
			actualSeconds = 0
		}

		ratio := 1.0
		if actualSeconds != 0 && targetSeconds != 0 {
			ratio = float64(targetSeconds) / float64(actualSeconds)
		}

		eventHorizon := 1 + 0.7084*math.Pow(float64(pastBlocksMass)/28.2, -1.228)
		fast := eventHorizon
		slow := 1 / eventHorizon

		if pastBlocksMass >= pastBlocksMin && (ratio <= slow || ratio >= fast) {
			break
		}

		parent := walker.Parent()
		if parent == nil {
			break
		}
		walker = parent
	}

	newTarget := avg
	if actualSeconds != 0 && targetSeconds != 0 {
		newTarget = avg.MulUint64(uint64(actualSeconds)).DivUint64(uint64(targetSeconds))
	}

	log.Tracef("%v", newLogClosure(func() string {
		return spew.Sdump(struct {
			Mass          uint64
			ActualSeconds int64
			TargetSeconds int64
			Avg           workmath.Uint256
			NewTarget     workmath.Uint256
		}{pastBlocksMass, actualSeconds, targetSeconds, avg, newTarget})
	}))

	if newTarget.Cmp(powLimit) > 0 {
		newTarget = powLimit
		log.Debugf("Clamped retarget output to powLimit at height %d", tip.Height())
	}

	return workmath.ToCompact(newTarget)
}

// CalculateNextWorkRequired implements the classic 4x-bounded legacy
// retarget: used on paths where the caller has already chosen the
// retarget interval's first-block timestamp.
func CalculateNextWorkRequired(tip HeaderCtx, firstBlockTime int64, params *chaincfg.Params) uint32 {
	if params.NoRetargeting {
		return tip.Bits()
	}

	tday := int64(params.TargetTimespan.Seconds())
	actual := tip.BlockTime() - firstBlockTime
	if actual < tday/4 {
		actual = tday / 4
	}
	if actual > tday*4 {
		actual = tday * 4
	}

	newTarget := CompactToBig(tip.Bits()).MulUint64(uint64(actual)).DivUint64(uint64(tday))

	powLimit := powLimitTarget(params)
	if newTarget.Cmp(powLimit) > 0 {
		newTarget = powLimit
	}

	return workmath.ToCompact(newTarget)
}

// CheckProofOfWork reports whether hash satisfies the target encoded by
// nBits, and that the target itself is within the network's valid range.
func CheckProofOfWork(hash *chainhash.Hash, nBits uint32, params *chaincfg.Params) bool {
	target, negative, overflow := workmath.FromCompact(nBits)
	if negative || target.IsZero() || overflow {
		return false
	}

	if target.Cmp(powLimitTarget(params)) > 0 {
		return false
	}

	hashNum := HashToBig(hash)
	return hashNum.Cmp(target) <= 0
}
