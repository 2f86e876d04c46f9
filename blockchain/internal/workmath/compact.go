// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workmath

// FromCompact decodes a compact ("nBits") representation of a 256-bit
// unsigned number.
//
// Like IEEE754 floating point, there are three basic components: the sign,
// the exponent, and the mantissa.  They are broken out as follows:
//
//   - the most significant 8 bits represent the unsigned base 256 exponent
//   - bit 23 (the 24th bit) represents the sign bit
//   - the least significant 23 bits represent the mantissa
//
//	-------------------------------------------------
//	|   Exponent     |    Sign    |    Mantissa     |
//	-------------------------------------------------
//	| 8 bits [31-24] | 1 bit [23] | 23 bits [22-00] |
//	-------------------------------------------------
//
// The formula to calculate N is:
//
//	N = (-1^sign) * mantissa * 256^(exponent-3)
//
// FromCompact reports negative and overflow explicitly rather than folding
// them into the returned value, so a caller can reject a block's claimed
// target outright instead of silently treating it as zero.
func FromCompact(compact uint32) (target Uint256, negative bool, overflow bool) {
	exponent := compact >> 24
	mantissa := compact & 0x007fffff
	negative = mantissa != 0 && compact&0x00800000 != 0

	overflow = mantissa != 0 &&
		((exponent > 34) ||
			(mantissa > 0xff && exponent > 33) ||
			(mantissa > 0xffff && exponent > 32))

	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		return Uint256{uint64(mantissa)}, negative, overflow
	}

	target = Uint256{uint64(mantissa)}.Lsh(uint(8 * (exponent - 3)))
	return target, negative, overflow
}

// ToCompact converts a 256-bit unsigned number to its compact ("nBits")
// representation, normalizing so the high byte of the mantissa is nonzero
// and the sign bit is cleared. If clearing the high bit of a 3-byte
// mantissa would otherwise set the sign bit, the mantissa is shifted right
// one byte and the exponent incremented to compensate.
func ToCompact(target Uint256) uint32 {
	if target.IsZero() {
		return 0
	}

	exponent := uint32(byteLen(target))

	var mantissa uint32
	if exponent <= 3 {
		mantissa = uint32(target.Rsh(0)[0]) << (8 * (3 - exponent))
	} else {
		mantissa = uint32(target.Rsh(uint(8*(exponent-3)))[0] & 0xffffffff)
	}

	// When the mantissa's sign bit would be set, shift it right one byte
	// and increment the exponent so the value is still interpreted as
	// non-negative on decode.
	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}

	return exponent<<24 | mantissa
}

// byteLen returns the number of bytes required to represent n without
// leading zero bytes (n must be non-zero).
func byteLen(n Uint256) int {
	b := n.Bytes()
	for i, v := range b {
		if v != 0 {
			return len(b) - i
		}
	}
	return 0
}
