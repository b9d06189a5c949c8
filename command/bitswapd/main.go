// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bitswapd/background"
	"github.com/bitmark-inc/bitswapd/counter"
	"github.com/bitmark-inc/bitswapd/engine"
	"github.com/bitmark-inc/bitswapd/fault"
	"github.com/bitmark-inc/bitswapd/ledger"
	"github.com/bitmark-inc/bitswapd/mode"
	"github.com/bitmark-inc/bitswapd/rpc/listeners"
	"github.com/bitmark-inc/bitswapd/rpc/server"
	"github.com/bitmark-inc/bitswapd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "define", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'D'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// variables passed into the Lua configuration as NAME=VALUE
	variables := make(map[string]string)
	for _, v := range options["define"] {
		s := strings.SplitN(v, "=", 2)
		if 2 != len(s) || "" == s[0] {
			exitwithstatus.Message("%s: define: %q is not NAME=VALUE", program, v)
		}
		variables[s[0]] = s[1]
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile, variables)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// last chance logging for panics
	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// the lifecycle starts offline so no query is answered before
	// the history is restored
	state := mode.New(logger.New("mode"))
	defer state.Set(mode.Offline)

	// start the ledger storage
	log.Infof("ledger database: %q", theConfiguration.Ledger.Name)
	ledgers, err := storage.Open(theConfiguration.Ledger.Name, logger.New("storage"))
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer ledgers.Close()

	theEngine := engine.New(logger.New("engine"), ledger.TotalBytes, ledgers)
	err = theEngine.Restore()
	if nil != err {
		log.Criticalf("ledger restore error: %s", err)
		exitwithstatus.Message("ledger restore error: %s", err)
	}

	// these commands are allowed to access the ledger history
	if len(arguments) > 0 && processDataCommand(log, arguments, theEngine, ledgers) {
		return
	}

	// start up the rpc listener
	rpcCount := counter.Counter(0)
	rpcLog := logger.New("rpc")
	rpcServer := server.Create(rpcLog, version, &rpcCount, state, theEngine)

	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	listener, err := listeners.NewRPC(&theConfiguration.ClientRPC, rpcLog, &rpcCount, rpcServer)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	if err = listener.Serve(); nil != err {
		log.Criticalf("rpc serve error: %s", err)
		exitwithstatus.Message("rpc serve error: %s", err)
	}
	defer listener.Close()

	// background processes
	processes := background.Processes{
		&background.Periodic{
			Interval: time.Duration(theConfiguration.Ledger.Checkpoint) * time.Second,
			Action: func() {
				_ = theEngine.Checkpoint()
			},
			Final: true,
		},
		&background.Periodic{
			Interval: time.Duration(theConfiguration.Statistics.Interval) * time.Second,
			Action:   statistics(logger.New("stats"), theEngine),
		},
	}
	if theConfiguration.Statistics.Memory {
		processes = append(processes, &background.Periodic{
			Interval: statsDelay,
			Action:   memstats(logger.New("memory")),
		})
	}
	bg := background.Start(processes, nil)

	// everything is running
	state.Set(mode.Online)

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
	state.Set(mode.Offline)

	// final checkpoint runs as the checkpoint process stops
	bg.Stop()
}
