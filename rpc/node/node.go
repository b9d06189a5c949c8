// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/libp2p/go-libp2p-core/peer"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/bitswapd/counter"
	"github.com/bitmark-inc/bitswapd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Peers - source of the connected peer count
type Peers interface {
	ConnectedPeers() []peer.ID
}

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Mode    func() string
	Peers   Peers
	counter *counter.Counter
}

// New - create the Node RPC service
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, modeName func() string, peers Peers) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Mode:    modeName,
		Peers:   peers,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Mode    string `json:"mode"`
	RPCs    uint64 `json:"rpcs"`
	Peers   uint64 `json:"peers"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// Info - return some information about this node
// this is available in every mode so clients can see why other
// requests are refused
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Mode = node.Mode()
	reply.RPCs = node.counter.Uint64()
	if nil != node.Peers {
		reply.Peers = uint64(len(node.Peers.ConnectedPeers()))
	}
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
