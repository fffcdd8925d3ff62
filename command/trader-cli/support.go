// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	"github.com/nftszn/traderd/account"
	"github.com/nftszn/traderd/command/trader-cli/rpccalls"
	"github.com/nftszn/traderd/nft"
)

// connection and caller for one command
func clientFromContext(c *cli.Context) (*rpccalls.Client, *metadata, error) {
	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	return client, m, nil
}

// the caller account is required for every mutating command
func callerFromMetadata(m *metadata) (account.AccountID, error) {
	if "" == m.caller {
		return account.AccountID{}, fmt.Errorf("missing caller: set --caller=BASE58")
	}
	return account.AccountIDFromBase58(m.caller)
}

func parseAssetID(s string) (nft.ID, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		return 0, fmt.Errorf("invalid asset id: %q", s)
	}
	return nft.ID(id), nil
}

func parseAssetIDs(args []string) ([]nft.ID, error) {
	if 0 == len(args) {
		return nil, fmt.Errorf("at least one asset id is required")
	}
	ids := make([]nft.ID, len(args))
	for i, arg := range args {
		id, err := parseAssetID(arg)
		if nil != err {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}
