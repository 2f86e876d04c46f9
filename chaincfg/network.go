// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"sync/atomic"
)

// Network name constants accepted by SelectParams.
const (
	MainNetName       = "main"
	TestNetName       = "test"
	RegressionNetName = "regtest"
)

// current holds the process-wide selected parameter set. It is written
// exactly once, by SelectParams, and read afterward by ActiveParams. The
// atomic pointer is the publication barrier: once Store has run, every
// reader observes a fully constructed *Params, with no further writes
// except the regtest-only deployment window mutator below.
var current atomic.Pointer[Params]

// SelectParams sets the process-selected parameter set by network name.
// An unknown network name is a fatal configuration error: it panics
// rather than silently defaulting, since continuing with the wrong
// network's consensus rules would be worse than aborting at startup.
func SelectParams(network string) {
	switch network {
	case MainNetName:
		current.Store(&MainNetParams)
	case TestNetName:
		current.Store(&TestNetParams)
	case RegressionNetName:
		current.Store(&RegressionNetParams)
	default:
		panic(fmt.Sprintf("chaincfg: unknown network %q", network))
	}
}

// ActiveParams returns the currently selected parameter set. Calling this
// before SelectParams has run is a programmer error and panics.
func ActiveParams() *Params {
	p := current.Load()
	if p == nil {
		panic("chaincfg: ActiveParams called before SelectParams")
	}
	return p
}

// UpdateRegtestBIP9Parameters mutates only the regtest deployment window
// for the given deployment. Mainnet and testnet parameter sets are never
// mutated after construction. The caller must invoke this before any
// concurrent readers of RegressionNetParams exist; there is no
// synchronization between this write and ActiveParams reads.
func UpdateRegtestBIP9Parameters(id DeploymentID, startTime, expireTime uint64) {
	RegressionNetParams.Deployments[id].StartTime = startTime
	RegressionNetParams.Deployments[id].ExpireTime = expireTime
}
