// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"io"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/nftszn/traderd/counter"
)

// rate limits per service
const (
	rateLimitTrader  = 50
	rateBurstTrader  = 20
	rateLimitCustody = 100
	rateBurstCustody = 50
	rateLimitSale    = 200
	rateBurstSale    = 100
	rateLimitTrade   = 200
	rateBurstTrade   = 100
)

// globals
var globalData struct {
	version string
	start   time.Time
}

func uptime() time.Duration {
	return time.Since(globalData.start).Round(time.Second)
}

// ServerArgument - the argument passed to the callback
type ServerArgument struct {
	Log    *logger.L
	Server *rpc.Server
	Count  *counter.Counter
}

// Create - make a server with all services registered
func Create(log *logger.L, version string) *rpc.Server {
	globalData.version = version
	globalData.start = time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(&Trader{
		log:     log,
		limiter: rate.NewLimiter(rateLimitTrader, rateBurstTrader),
	})
	_ = server.Register(&Custody{
		log:     log,
		limiter: rate.NewLimiter(rateLimitCustody, rateBurstCustody),
	})
	_ = server.Register(&Sale{
		log:     log,
		limiter: rate.NewLimiter(rateLimitSale, rateBurstSale),
	})
	_ = server.Register(&Trade{
		log:     log,
		limiter: rate.NewLimiter(rateLimitTrade, rateBurstTrade),
	})

	return server
}

// Callback - handle one accepted client connection
func Callback(conn io.ReadWriteCloser, argument interface{}) {

	serverArgument := argument.(*ServerArgument)

	log := serverArgument.Log
	log.Debug("client connected")

	serverArgument.Count.Increment()
	defer serverArgument.Count.Decrement()

	codec := jsonrpc.NewServerCodec(conn)
	defer codec.Close()
	serverArgument.Server.ServeCodec(codec)

	log.Debug("client disconnected")
}
