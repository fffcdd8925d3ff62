// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/nftszn/traderd/ledger"
)

func runAccept(c *cli.Context) error {

	client, m, err := clientFromContext(c)
	if nil != err {
		return err
	}
	defer client.Close()

	caller, err := callerFromMetadata(m)
	if nil != err {
		return err
	}

	authorizationID := c.Uint64("auth")
	if 0 == authorizationID {
		return fmt.Errorf("missing authorization: set --auth=ID")
	}
	portfolio := ledger.PortfolioRef(c.Uint64("portfolio"))

	reply, err := client.Accept(caller, authorizationID, portfolio)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
