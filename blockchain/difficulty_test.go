// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/cannabiscoindev/cannabiscoin420/blockchain/internal/workmath"
	"github.com/cannabiscoindev/cannabiscoin420/chaincfg"
	"github.com/cannabiscoindev/cannabiscoin420/chainhash"
)

// fakeHeader is a synthetic in-memory HeaderCtx fixture used to drive the
// difficulty engine without any real chain index.
type fakeHeader struct {
	height    int32
	blockTime int64
	bits      uint32
	parent    *fakeHeader
}

func (h *fakeHeader) Height() int32    { return h.height }
func (h *fakeHeader) BlockTime() int64 { return h.blockTime }
func (h *fakeHeader) Bits() uint32     { return h.bits }
func (h *fakeHeader) Parent() HeaderCtx {
	if h.parent == nil {
		return nil
	}
	return h.parent
}

// buildChain constructs a synthetic chain of n+1 headers (heights 0..n),
// each spacing seconds apart, all sharing bits.
func buildChain(n int, spacing int64, bits uint32) *fakeHeader {
	var prev *fakeHeader
	var tip *fakeHeader
	for h := 0; h <= n; h++ {
		node := &fakeHeader{
			height:    int32(h),
			blockTime: int64(h) * spacing,
			bits:      bits,
			parent:    prev,
		}
		prev = node
		tip = node
	}
	return tip
}

func TestWarmUp(t *testing.T) {
	params := chaincfg.MainNetParams

	// Nil tip.
	if got, want := GetNextWorkRequired(nil, &params), params.PowLimitBits; got != want {
		t.Errorf("nil tip: got %08x, want %08x", got, want)
	}

	// Height 0.
	genesis := &fakeHeader{height: 0, blockTime: 0, bits: 0x1d00ffff}
	if got, want := GetNextWorkRequired(genesis, &params), params.PowLimitBits; got != want {
		t.Errorf("height 0: got %08x, want %08x", got, want)
	}

	// Height < PastBlocksMin.
	tbs := int64(params.TargetSpacing.Seconds())
	tday := int64(params.TargetTimespan.Seconds())
	pastBlocksMin := int64(float64(tday)*0.025) / tbs

	tip := buildChain(int(pastBlocksMin)-1, tbs, 0x1d00ffff)
	if got, want := GetNextWorkRequired(tip, &params), params.PowLimitBits; got != want {
		t.Errorf("below PastBlocksMin: got %08x, want %08x", got, want)
	}
}

func TestStabilityOnConstantSpacing(t *testing.T) {
	params := chaincfg.MainNetParams
	tbs := int64(params.TargetSpacing.Seconds())

	tip := buildChain(500, tbs, params.PowLimitBits)
	got := GetNextWorkRequired(tip, &params)

	// With every block exactly on schedule the envelope never ends the
	// walk early, so it folds all 500 blocks above genesis and the average
	// equals the input target. Those 500 blocks span only 499 spacings,
	// so actual/target is 499/500 and the output is the input target
	// scaled by that factor: mantissa 0x0fffff*499/500 truncates to
	// 0x0ff7cd at the same exponent.
	const want = uint32(0x1e0ff7cd)
	if got != want {
		t.Errorf("constant spacing at powLimit: got %08x, want %08x", got, want)
	}
}

func TestMonotoneResponse(t *testing.T) {
	params := chaincfg.MainNetParams
	tbs := int64(params.TargetSpacing.Seconds())

	// A mid-range starting difficulty so there is room to move in both
	// directions without immediately saturating at powLimit.
	startBits := uint32(0x1d00ffff)

	normal := buildChain(500, tbs, startBits)
	doubled := buildChain(500, tbs*2, startBits)
	halved := buildChain(500, tbs/2, startBits)

	baseTarget := CompactToBig(GetNextWorkRequired(normal, &params))
	slowerTarget := CompactToBig(GetNextWorkRequired(doubled, &params))
	fasterTarget := CompactToBig(GetNextWorkRequired(halved, &params))

	if slowerTarget.Cmp(baseTarget) <= 0 {
		t.Errorf("doubling spacing should raise the target (lower difficulty)")
	}
	if fasterTarget.Cmp(baseTarget) >= 0 {
		t.Errorf("halving spacing should lower the target (raise difficulty)")
	}
}

// TestAverageIncorporatesHarderHistory guards against a signedness bug in
// the running-average step: since Uint256 has no negative representation,
// a naive port of the (folded - avgPrev)/i step saturates to zero whenever
// the folded block's target is below the running average, which pins the
// average at its very first sample forever and makes it incapable of ever
// decreasing. Here the tip alone is at powLimit and every older block in
// the window is markedly harder; a correct average must be pulled below
// powLimit by that history, not get stuck exactly at it.
func TestAverageIncorporatesHarderHistory(t *testing.T) {
	params := chaincfg.MainNetParams
	tbs := int64(params.TargetSpacing.Seconds())

	const chainLen = 60
	hardBits := uint32(0x1c0fffff)
	easyBits := params.PowLimitBits

	genesis := &fakeHeader{height: 0, blockTime: 0, bits: hardBits}
	prev := genesis
	var tip *fakeHeader
	for h := 1; h <= chainLen; h++ {
		bits := hardBits
		if h == chainLen {
			bits = easyBits
		}
		node := &fakeHeader{
			height:    int32(h),
			blockTime: int64(h) * tbs,
			bits:      bits,
			parent:    prev,
		}
		prev = node
		tip = node
	}

	got := GetNextWorkRequired(tip, &params)
	if got == easyBits {
		t.Fatal("average stuck at the tip's own (easiest) bits; history of harder blocks had no effect")
	}
	gotTarget := CompactToBig(got)
	easyTarget := CompactToBig(easyBits)
	if gotTarget.Cmp(easyTarget) >= 0 {
		t.Errorf("expected harder history to pull the target below powLimit: got %v, powLimit %v", gotTarget, easyTarget)
	}
}

func TestPowLimitClamp(t *testing.T) {
	params := chaincfg.MainNetParams
	tbs := int64(params.TargetSpacing.Seconds())

	// Extremely slow blocks should never push the returned target above
	// powLimit.
	tip := buildChain(500, tbs*1000, 0x1d00ffff)
	got := GetNextWorkRequired(tip, &params)
	gotTarget := CompactToBig(got)
	limit := CompactToBig(params.PowLimitBits)
	if gotTarget.Cmp(limit) > 0 {
		t.Errorf("target exceeds powLimit: %v > %v", gotTarget, limit)
	}
}

func TestCalculateNextWorkRequiredBound(t *testing.T) {
	params := chaincfg.MainNetParams
	tday := int64(params.TargetTimespan.Seconds())

	oldBits := uint32(0x1d00ffff)
	oldTarget := CompactToBig(oldBits)

	tip := &fakeHeader{height: 100, blockTime: tday * 10, bits: oldBits}

	// Actual timespan way too fast: should clamp to Tday/4.
	got := CalculateNextWorkRequired(tip, tip.blockTime-1, &params)
	gotTarget := CompactToBig(got)
	quarter := oldTarget.DivUint64(4)
	if gotTarget.Cmp(quarter) < 0 {
		t.Errorf("4x-fast retarget undershoots the 1/4 bound: %v < %v", gotTarget, quarter)
	}

	// Actual timespan way too slow: should clamp to Tday*4.
	got = CalculateNextWorkRequired(tip, tip.blockTime-tday*1000, &params)
	gotTarget = CompactToBig(got)
	quadruple := oldTarget.MulUint64(4)
	if gotTarget.Cmp(quadruple) > 0 {
		t.Errorf("4x-slow retarget overshoots the 4x bound: %v > %v", gotTarget, quadruple)
	}
}

func TestCalculateNextWorkRequiredNoRetargeting(t *testing.T) {
	params := chaincfg.RegressionNetParams
	tip := &fakeHeader{height: 10, blockTime: 1000, bits: 0x207fffff}
	got := CalculateNextWorkRequired(tip, 0, &params)
	if got != tip.bits {
		t.Errorf("no_retargeting should return tip bits unchanged: got %08x, want %08x", got, tip.bits)
	}
}

func TestCheckProofOfWork(t *testing.T) {
	params := chaincfg.MainNetParams

	// Hash bytes are little-endian, so byte 0 is the least significant:
	// this hash is the number 1.
	smallHash, _ := chainhash.NewHash(make([]byte, 32))
	smallHash[0] = 1
	if !CheckProofOfWork(smallHash, 0x1e0ffff0, &params) {
		t.Error("expected small hash to satisfy mainnet genesis bits")
	}

	// hash = powLimit + 1 must fail.
	limit := CompactToBig(params.PowLimitBits)
	overLimit := limit.Add(workmath.Uint256{1})
	overLimitBytes := overLimit.Bytes()
	overLimitHash, err := chainhash.NewHash(reverseBytes(overLimitBytes[:]))
	if err != nil {
		t.Fatalf("NewHash failed: %v", err)
	}
	if CheckProofOfWork(overLimitHash, params.PowLimitBits, &params) {
		t.Error("expected hash over powLimit target to fail")
	}

	// Negative sign-bit decode on non-zero mantissa must fail.
	if CheckProofOfWork(smallHash, 0x00ffffff, &params) {
		t.Error("expected negative-decoded nBits to fail")
	}
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
