// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runGet(c *cli.Context) error {

	client, m, err := clientFromContext(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if 1 != len(c.Args()) {
		return fmt.Errorf("exactly one ASSET-ID is required")
	}
	asset, err := parseAssetID(c.Args()[0])
	if nil != err {
		return err
	}

	reply, err := client.Get(asset)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
