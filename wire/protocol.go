// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

// BitcoinNet represents which bitcoin-style network a message belongs to.
type BitcoinNet uint32

// Constants used to indicate the message bitcoin network.
const (
	// MainNet represents the main network.
	MainNet BitcoinNet = 0xdeb9c3fe

	// TestNet represents the test network.
	TestNet BitcoinNet = 0xdebac4fe

	// RegTest represents the regression test network.
	RegTest BitcoinNet = 0xdab5bffa
)

// String returns the BitcoinNet in human-readable form.
func (n BitcoinNet) String() string {
	switch n {
	case MainNet:
		return "MainNet"
	case TestNet:
		return "TestNet"
	case RegTest:
		return "RegTest"
	default:
		return "Unknown BitcoinNet"
	}
}
