// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash_test

import (
	"bytes"
	"testing"

	"github.com/cannabiscoindev/cannabiscoin420/chainhash"
)

func TestHashFromStrRoundTrip(t *testing.T) {
	want := chainhash.Hash{0x01, 0x02, 0x03}
	h, err := chainhash.NewHashFromStr(want.String())
	if err != nil {
		t.Fatalf("NewHashFromStr failed: %v", err)
	}
	if !h.IsEqual(&want) {
		t.Fatalf("round trip mismatch: got %v, want %v", h, want)
	}
}

func TestDoubleHash(t *testing.T) {
	data := []byte("420")
	once := chainhash.HashB(data)
	twice := chainhash.HashB(once)
	got := chainhash.DoubleHashB(data)
	if !bytes.Equal(got, twice) {
		t.Fatalf("DoubleHashB = %x, want %x", got, twice)
	}
}

func TestSetBytesInvalidLength(t *testing.T) {
	var h chainhash.Hash
	if err := h.SetBytes([]byte{0x01, 0x02}); err == nil {
		t.Fatal("expected error for short byte slice")
	}
}
