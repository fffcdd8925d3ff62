// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runBuy(c *cli.Context) error {

	client, m, err := clientFromContext(c)
	if nil != err {
		return err
	}
	defer client.Close()

	caller, err := callerFromMetadata(m)
	if nil != err {
		return err
	}

	if 1 != len(c.Args()) {
		return fmt.Errorf("exactly one ASSET-ID is required")
	}
	asset, err := parseAssetID(c.Args()[0])
	if nil != err {
		return err
	}

	amount := c.Uint64("amount")
	if 0 == amount {
		return fmt.Errorf("missing amount: set --amount=AMOUNT")
	}

	reply, err := client.Buy(caller, asset, amount)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
