// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "encoding/hex"

// mustHex32 decodes a 64-character big-endian hex string into a fixed
// 32-byte array. It panics on malformed input, which is appropriate here:
// every call site decodes a hardcoded consensus constant, so a decode
// failure can only mean the constant itself was mistyped.
func mustHex32(s string) [32]byte {
	raw, err := hex.DecodeString(s)
	if err != nil {
		panic("chaincfg: invalid hex constant: " + err.Error())
	}
	if len(raw) != 32 {
		panic("chaincfg: hex constant is not 32 bytes")
	}
	var out [32]byte
	copy(out[:], raw)
	return out
}
