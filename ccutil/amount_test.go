// Copyright (c) 2013, 2014 Conformal Systems LLC.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ccutil

import "testing"

func TestNewAmount(t *testing.T) {
	tests := []struct {
		f       float64
		want    Amount
		wantErr bool
	}{
		{0, 0, false},
		{1, 100000000, false},
		{420, 42000000000, false},
		{0.00000001, 1, false},
		{21000001, 0, true},
	}
	for _, test := range tests {
		got, err := NewAmount(test.f)
		if test.wantErr {
			if err == nil {
				t.Errorf("NewAmount(%v) expected error, got nil", test.f)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewAmount(%v) unexpected error: %v", test.f, err)
			continue
		}
		if got != test.want {
			t.Errorf("NewAmount(%v) = %v, want %v", test.f, got, test.want)
		}
	}
}

func TestAmountToCoin(t *testing.T) {
	a := Amount(42000000000)
	if got, want := a.ToCoin(), 420.0; got != want {
		t.Errorf("ToCoin() = %v, want %v", got, want)
	}
}

func TestAmountString(t *testing.T) {
	a := 420 * COIN
	want := "420 CCN"
	if got := a.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAmountUnitString(t *testing.T) {
	tests := []struct {
		u    AmountUnit
		want string
	}{
		{AmountMegaCoin, "MCCN"},
		{AmountKiloCoin, "kCCN"},
		{AmountCoin, "CCN"},
		{AmountMilliCoin, "mCCN"},
		{AmountMicroCoin, "μCCN"},
		{AmountBase, "Base"},
		{AmountUnit(1), "1e1 CCN"},
	}
	for _, test := range tests {
		if got := test.u.String(); got != test.want {
			t.Errorf("String() = %q, want %q", got, test.want)
		}
	}
}
