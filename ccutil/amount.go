// Copyright (c) 2013, 2014 Conformal Systems LLC.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ccutil provides utilities for working with the network's native
// monetary unit, mirroring the conventions of btcutil.
package ccutil

import (
	"errors"
	"math"
	"strconv"
)

// AmountUnit describes a method of converting an Amount to something other
// than the base unit. The value of the AmountUnit is the exponent
// component of the decadic multiple to convert from an amount in whole
// coins to an amount counted in units.
type AmountUnit int

// These constants define the standard units used when describing a
// monetary amount.
const (
	AmountMegaCoin  AmountUnit = 6
	AmountKiloCoin  AmountUnit = 3
	AmountCoin      AmountUnit = 0
	AmountMilliCoin AmountUnit = -3
	AmountMicroCoin AmountUnit = -6
	AmountBase      AmountUnit = -8
)

// String returns the unit as a string.
func (u AmountUnit) String() string {
	switch u {
	case AmountMegaCoin:
		return "MCCN"
	case AmountKiloCoin:
		return "kCCN"
	case AmountCoin:
		return "CCN"
	case AmountMilliCoin:
		return "mCCN"
	case AmountMicroCoin:
		return "μCCN"
	case AmountBase:
		return "Base"
	default:
		return "1e" + strconv.FormatInt(int64(u), 10) + " CCN"
	}
}

// SatoshiPerBitcoin, kept under its historical name for parity with the
// upstream constant it mirrors, is the number of base units in one whole
// coin.
const SatoshiPerBitcoin = 1e8

// COIN is the number of base units in one whole coin, used throughout
// consensus code (e.g. the genesis block reward) instead of the raw
// literal.
const COIN Amount = 100000000

// MaxAmount is the maximum transaction amount allowed, mirroring the
// 21-million-coin style ceiling used to bound floating point conversion.
const MaxAmount = 21e6 * SatoshiPerBitcoin

// Amount represents the base monetary unit. A single Amount is equal to
// 1e-8 of a whole coin.
type Amount int64

// NewAmount creates an Amount from a floating point value representing an
// amount in whole coins.
func NewAmount(f float64) (Amount, error) {
	a := f * SatoshiPerBitcoin
	switch abs := math.Abs(a); {
	case abs > MaxAmount:
		fallthrough
	case math.IsNaN(abs) || math.IsInf(abs, 1):
		return 0, errors.New("ccutil: invalid amount")
	}

	if a < 0 {
		a -= 0.5
	} else {
		a += 0.5
	}
	return Amount(a), nil
}

// ToUnit converts a monetary amount counted in base units to a floating
// point value representing an amount in the given unit.
func (a Amount) ToUnit(u AmountUnit) float64 {
	return float64(a) / math.Pow10(int(u+8))
}

// ToCoin is a convenience alias for ToUnit(AmountCoin).
func (a Amount) ToCoin() float64 {
	return a.ToUnit(AmountCoin)
}

// Format formats a monetary amount counted in base units as a string for a
// given unit.
func (a Amount) Format(u AmountUnit) string {
	units := " " + u.String()
	return strconv.FormatFloat(a.ToUnit(u), 'f', -int(u+8), 64) + units
}

// String is the equivalent of calling Format with AmountCoin.
func (a Amount) String() string {
	return a.Format(AmountCoin)
}
