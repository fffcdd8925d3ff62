// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/nftszn/traderd/ledger"
)

func runWithdraw(c *cli.Context) error {

	client, m, err := clientFromContext(c)
	if nil != err {
		return err
	}
	defer client.Close()

	caller, err := callerFromMetadata(m)
	if nil != err {
		return err
	}

	assets, err := parseAssetIDs(c.Args())
	if nil != err {
		return err
	}
	destination := ledger.PortfolioRef(c.Uint64("destination"))

	reply, err := client.Withdraw(caller, assets, destination)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
