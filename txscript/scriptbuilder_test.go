// Copyright (c) 2013-2014 Conformal Systems LLC.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"testing"
)

func TestAddOp(t *testing.T) {
	got := NewScriptBuilder().AddOp(OP_CHECKSIG).Script()
	want := []byte{OP_CHECKSIG}
	if !bytes.Equal(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}
}

func TestAddInt64SmallInts(t *testing.T) {
	tests := []struct {
		val  int64
		want byte
	}{
		{0, OP_0},
		{1, OP_1},
		{16, OP_16},
		{-1, OP_1NEGATE},
	}
	for _, test := range tests {
		got := NewScriptBuilder().AddInt64(test.val).Script()
		if len(got) != 1 || got[0] != test.want {
			t.Errorf("AddInt64(%d) = %x, want [%x]", test.val, got, test.want)
		}
	}
}

func TestAddInt64LargeValue(t *testing.T) {
	got := NewScriptBuilder().AddInt64(486604799).Script()
	// 486604799 = 0x1d00ffff -> little-endian minimal bytes ff ff 00 1d.
	want := []byte{OP_DATA_4, 0xff, 0xff, 0x00, 0x1d}
	if !bytes.Equal(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}
}

func TestAddDataShort(t *testing.T) {
	data := []byte("hi")
	got := NewScriptBuilder().AddData(data).Script()
	want := append([]byte{OP_DATA_2}, data...)
	if !bytes.Equal(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}
}

func TestAddDataPushdata1(t *testing.T) {
	data := make([]byte, 0x4c)
	got := NewScriptBuilder().AddData(data).Script()
	if got[0] != OP_PUSHDATA1 || got[1] != byte(len(data)) {
		t.Errorf("expected OP_PUSHDATA1 prefix, got %x", got[:2])
	}
}

func TestAddDataEmptyIsOp0(t *testing.T) {
	got := NewScriptBuilder().AddData(nil).Script()
	want := []byte{OP_0}
	if !bytes.Equal(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}
}

func TestGenesisScriptSigShape(t *testing.T) {
	ts := []byte("420")
	// The genesis coinbase pushes the 4 as a one-byte data push (01 04),
	// not as the small-int opcode OP_4.
	got := NewScriptBuilder().
		AddInt64(486604799).
		AddOp(OP_DATA_1).
		AddOp(0x04).
		AddData(ts).
		Script()

	want := []byte{OP_DATA_4, 0xff, 0xff, 0x00, 0x1d, OP_DATA_1, 0x04}
	if !bytes.HasPrefix(got, want) {
		t.Errorf("unexpected prefix: %x", got)
	}
	if !bytes.HasSuffix(got, append([]byte{OP_DATA_3}, ts...)) {
		t.Errorf("unexpected suffix: %x", got)
	}
}
