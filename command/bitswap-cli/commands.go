// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/bitswapd/command/bitswap-cli/rpccalls"
	"github.com/bitmark-inc/bitswapd/fault"
)

func connect(c *cli.Context) (*rpccalls.Client, *metadata, error) {
	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	return client, m, nil
}

func runInfo(c *cli.Context) error {
	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runWantlist(c *cli.Context) error {
	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Wantlist(c.String("peer"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runLedger(c *cli.Context) error {
	peer := c.String("peer")
	if "" == peer {
		return fault.MissingPeerID
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Ledger(peer)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runStat(c *cli.Context) error {
	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Stat()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runUnwant(c *cli.Context) error {
	keys := []string(c.Args())
	if 0 == len(keys) {
		return fault.MissingParameters
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Unwant(keys)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
