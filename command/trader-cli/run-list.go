// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/nftszn/traderd/rpc"
)

// each argument is ASSET-ID:PRICE to offer or ASSET-ID:- to delist
func runList(c *cli.Context) error {

	client, m, err := clientFromContext(c)
	if nil != err {
		return err
	}
	defer client.Close()

	caller, err := callerFromMetadata(m)
	if nil != err {
		return err
	}

	args := c.Args()
	if 0 == len(args) {
		return fmt.Errorf("at least one ASSET-ID:PRICE is required")
	}

	offers := make([]rpc.SaleOffer, len(args))
	for i, arg := range args {
		parts := strings.SplitN(arg, ":", 2)
		if 2 != len(parts) {
			return fmt.Errorf("invalid offer: %q  expected ASSET-ID:PRICE or ASSET-ID:-", arg)
		}
		asset, err := parseAssetID(parts[0])
		if nil != err {
			return err
		}
		offers[i].Asset = asset
		if "-" == parts[1] {
			continue // delist
		}
		price, err := strconv.ParseUint(parts[1], 10, 64)
		if nil != err {
			return fmt.Errorf("invalid price: %q", parts[1])
		}
		offers[i].Price = &price
	}

	reply, err := client.List(caller, offers)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
