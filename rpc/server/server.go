// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bitswapd/counter"
	"github.com/bitmark-inc/bitswapd/mode"
	"github.com/bitmark-inc/bitswapd/rpc/bitswap"
	"github.com/bitmark-inc/bitswapd/rpc/node"
)

// Create - an RPC server with every service registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, state *mode.State, engine bitswap.Engine) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(bitswap.New(log, state.Is, engine))
	_ = server.Register(node.New(log, start, version, rpcCount, state.String, engine))

	return server
}
