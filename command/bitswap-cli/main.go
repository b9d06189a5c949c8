// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const defaultConnect = "127.0.0.1:2150"

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "bitswap-cli"
	app.Usage = "query a bitswapd block exchange"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: defaultConnect,
			Usage: " bitswapd host/IP and port, `HOST:PORT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "info",
			Usage:     "display bitswapd status",
			ArgsUsage: " ",
			Action:    runInfo,
		},
		{
			Name:      "wantlist",
			Usage:     "list the keys currently wanted",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "peer, p",
					Value: "",
					Usage: " only keys wanted from `PEER`",
				},
			},
			Action: runWantlist,
		},
		{
			Name:      "ledger",
			Usage:     "show the exchange history with a peer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "peer, p",
					Value: "",
					Usage: "*base58 peer id `PEER`",
				},
			},
			Action: runLedger,
		},
		{
			Name:      "stat",
			Usage:     "show exchange statistics",
			ArgsUsage: " ",
			Action:    runStat,
		},
		{
			Name:      "unwant",
			Usage:     "stop wanting some keys",
			ArgsUsage: "KEY...",
			Action:    runUnwant,
		},
		{
			Name:      "version",
			Usage:     "display bitswap-cli version",
			ArgsUsage: " ",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		app.Metadata = map[string]interface{}{
			"config": &metadata{
				connect: c.GlobalString("connect"),
				verbose: c.GlobalBool("verbose"),
				e:       app.ErrWriter,
				w:       app.Writer,
			},
		}
		return nil
	}

	return app
}
