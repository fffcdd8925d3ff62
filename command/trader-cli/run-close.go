// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runClose(c *cli.Context) error {

	client, m, err := clientFromContext(c)
	if nil != err {
		return err
	}
	defer client.Close()

	caller, err := callerFromMetadata(m)
	if nil != err {
		return err
	}

	reply, err := client.CloseMarket(caller)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
