// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	caller  string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "trader-cli"
	app.Usage = "command line client for the traderd marketplace daemon"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2276",
			Usage: " traderd host/IP and port, `HOST:PORT`",
		},
		cli.StringFlag{
			Name:  "caller, i",
			Value: "",
			Usage: " calling account, `BASE58`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "status",
			Usage:  "marketplace state, venue and daemon information",
			Action: runStatus,
		},
		{
			Name:   "initialize",
			Usage:  "open the marketplace (admin only)",
			Action: runInitialize,
		},
		{
			Name:   "close",
			Usage:  "close the marketplace permanently (admin only)",
			Action: runClose,
		},
		{
			Name:      "accept",
			Usage:     "take custody of the caller's portfolio",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "auth, a",
					Usage: "*custody authorization, `ID`",
				},
				cli.Uint64Flag{
					Name:  "portfolio, p",
					Value: 0,
					Usage: " portfolio reference, `NUMBER` [0 = default portfolio]",
				},
			},
			Action: runAccept,
		},
		{
			Name:   "return",
			Usage:  "give the caller's portfolio back, delisting everything",
			Action: runReturn,
		},
		{
			Name:      "withdraw",
			Usage:     "move tracked assets out of custody",
			ArgsUsage: "ASSET-ID…\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "destination, d",
					Value: 0,
					Usage: " destination portfolio reference, `NUMBER`",
				},
			},
			Action: runWithdraw,
		},
		{
			Name:      "list",
			Usage:     "offer assets for sale or delist them",
			ArgsUsage: "ASSET-ID:PRICE… ASSET-ID:-…\n   a price of '-' delists the asset",
			Action:    runList,
		},
		{
			Name:      "get",
			Usage:     "current listing of one asset",
			ArgsUsage: "ASSET-ID",
			Action:    runGet,
		},
		{
			Name:   "listed",
			Usage:  "every asset currently for sale",
			Action: runListed,
		},
		{
			Name:      "buy",
			Usage:     "purchase one listed asset",
			ArgsUsage: "ASSET-ID\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "amount, a",
					Usage: "*attached payment, `AMOUNT`",
				},
			},
			Action: runBuy,
		},
	}

	app.Before = func(c *cli.Context) error {
		app.Metadata = map[string]interface{}{
			"config": &metadata{
				connect: c.GlobalString("connect"),
				caller:  c.GlobalString("caller"),
				verbose: c.GlobalBool("verbose"),
				e:       app.ErrWriter,
				w:       app.Writer,
			},
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		cli.HandleExitCoder(cli.NewExitError(err.Error(), 1))
	}
}
