// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command ccnd is a minimal daemon shell exercising the consensus
// difficulty engine: it selects a network's published parameters, reports
// the resulting genesis identity, and stands up a checkpoint registry
// honoring the -nocheckpoints boundary flag.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/cannabiscoindev/cannabiscoin420/blockchain"
	"github.com/cannabiscoindev/cannabiscoin420/chaincfg"
	ccndlog "github.com/cannabiscoindev/cannabiscoin420/internal/log"
)

const appVersion = "0.1.0"

func version() string {
	return fmt.Sprintf("%s (Go %s)", appVersion, runtime.Version())
}

// ccndMain is the real main function for ccnd. It is necessary to work
// around the fact that deferred functions do not run when os.Exit is
// called.
func ccndMain() error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	ccndlog.InitLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename))
	ccndlog.SetLogLevels(cfg.DebugLevel)
	defer ccndlog.LogRotator.Close()

	if cfg.ShowVersion {
		fmt.Println("ccnd version", version())
		return nil
	}

	networkName, err := cfg.networkName()
	if err != nil {
		return err
	}
	chaincfg.SelectParams(networkName)
	params := chaincfg.ActiveParams()

	ccndlog.CcndLog.Infof("Version %s", version())
	ccndlog.CncfLog.Infof("Active network: %s", params.Name)
	ccndlog.CncfLog.Infof("Genesis hash: %s", params.GenesisHash)
	ccndlog.CncfLog.Infof("PoW limit bits: %08x", params.PowLimitBits)

	registry := blockchain.NewCheckpointRegistry(params, cfg.DisableCheckpoints)
	ccndlog.ChanLog.Infof("Checkpoint registry built; total blocks estimate %d",
		registry.TotalBlocksEstimate())

	return nil
}

func main() {
	if err := ccndMain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
