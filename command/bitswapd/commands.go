// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bitswapd/engine"
	"github.com/bitmark-inc/bitswapd/peerid"
	"github.com/bitmark-inc/bitswapd/rpc/bitswap"
	"github.com/bitmark-inc/bitswapd/storage"
)

// setup command handler
//
// commands that cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "help", "h", "?":
		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version string\n\n")
		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n\n")
		fmt.Printf("  ledgers                    (l)      - print the stored ledger history as JSON\n\n")
		fmt.Printf("  evict-ledger PEER          (evict)  - delete the stored history of a peer\n\n")
		fmt.Printf("\nusage: %s [--config-file=FILE] [--define=NAME=VALUE] [command]\n", program)

	default:
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// configuration command handler
//
// commands that only use the configuration
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := arguments[0]

	switch command {
	case "config-test", "cfg":
		fmt.Printf("\nconfiguration: %s\n", toJSON(options))

	default:
		return false
	}

	return true
}

// data command handler
//
// commands that read or change the stored ledger history, run
// before the daemon goes online
func processDataCommand(log *logger.L, arguments []string, e *engine.Engine, ledgers *storage.Ledgers) bool {

	command := arguments[0]
	arguments = arguments[1:]

	switch command {
	case "ledgers", "l":
		items, _, err := ledgers.Load()
		if nil != err {
			exitwithstatus.Message("load ledgers error: %s", err)
		}
		list := make([]bitswap.LedgerInfo, 0, len(items))
		for _, l := range items {
			list = append(list, bitswap.LedgerInfo{
				Peer:      peerid.String(l.Peer),
				Value:     l.Value,
				Sent:      l.Sent,
				Recv:      l.Recv,
				DupRecv:   l.DupRecv,
				Exchanged: l.Exchanged,
			})
		}
		fmt.Printf("%s\n", toJSON(list))

	case "evict-ledger", "evict":
		if 1 != len(arguments) {
			exitwithstatus.Message("evict-ledger requires exactly one peer")
		}
		p, err := peerid.Parse(arguments[0])
		if nil != err {
			exitwithstatus.Message("peer: %q  error: %s", arguments[0], err)
		}
		if err := e.EvictLedger(p); nil != err {
			log.Errorf("evict ledger: %s  error: %s", arguments[0], err)
			exitwithstatus.Message("evict ledger error: %s", err)
		}
		fmt.Printf("evicted: %s\n", peerid.String(p))

	default:
		log.Errorf("unrecognised command: %q", command)
		fmt.Fprintf(os.Stderr, "unrecognised command: %q\n", command)
		exitwithstatus.Exit(1)
	}

	return true
}

func toJSON(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if nil != err {
		return fmt.Sprintf("marshal error: %s", err)
	}
	return string(b)
}
