// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	flags "github.com/jessevdk/go-flags"

	"github.com/cannabiscoindev/cannabiscoin420/chaincfg"
)

const (
	defaultLogLevel   = "info"
	defaultLogFilename = "ccnd.log"
	defaultNetwork    = chaincfg.MainNetName
)

var defaultHomeDir = ccndHomeDir()

// config defines the daemon's command-line and config-file options. It
// exposes the two boundary knobs the consensus engine needs from its
// caller: which of the three published networks is active, and whether
// checkpoint enforcement is switched on.
type config struct {
	ShowVersion bool `short:"V" long:"version" description:"Display version information and exit"`

	DataDir    string `short:"b" long:"datadir" description:"Directory to store data"`
	LogDir     string `long:"logdir" description:"Directory to log output"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`

	TestNet3       bool `long:"testnet" description:"Use the test network"`
	RegressionTest bool `long:"regtest" description:"Use the regression test network"`

	DisableCheckpoints bool `long:"nocheckpoints" description:"Disable built-in checkpoints. Don't do this unless you know what you're doing."`
}

// ccndHomeDir returns an OS-appropriate application data directory.
func ccndHomeDir() string {
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "ccnd")
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".ccnd")
	}
	return "."
}

// validLogLevel reports whether logLevel names a level btclog understands.
func validLogLevel(logLevel string) bool {
	switch logLevel {
	case "trace", "debug", "info", "warn", "error", "critical":
		return true
	}
	return false
}

// networkName resolves the mutually exclusive network selector flags into
// the single name chaincfg.SelectParams expects. It is an error to set more
// than one.
func (c *config) networkName() (string, error) {
	set := 0
	name := defaultNetwork
	if c.TestNet3 {
		set++
		name = chaincfg.TestNetName
	}
	if c.RegressionTest {
		set++
		name = chaincfg.RegressionNetName
	}
	if set > 1 {
		return "", fmt.Errorf("the testnet and regtest flags cannot be used together")
	}
	return name, nil
}

// loadConfig starts from sane defaults, parses the command line over them,
// and returns the resolved config alongside any unconsumed arguments.
func loadConfig() (*config, []string, error) {
	cfg := config{
		DataDir:    defaultHomeDir,
		LogDir:     filepath.Join(defaultHomeDir, "logs"),
		DebugLevel: defaultLogLevel,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, nil, err
	}

	if !validLogLevel(cfg.DebugLevel) {
		return nil, nil, fmt.Errorf("the specified debug level %q is invalid", cfg.DebugLevel)
	}

	cfg.DataDir = filepath.Clean(cfg.DataDir)
	cfg.LogDir = filepath.Clean(cfg.LogDir)

	return &cfg, remainingArgs, nil
}
