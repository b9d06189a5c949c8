// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/libp2p/go-libp2p-core/peer"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bitswapd/counter"
	"github.com/bitmark-inc/bitswapd/mode"
	"github.com/bitmark-inc/bitswapd/rpc/fixtures"
	"github.com/bitmark-inc/bitswapd/rpc/mocks"
	"github.com/bitmark-inc/bitswapd/rpc/node"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEngine(ctl)
	e.EXPECT().ConnectedPeers().Return([]peer.ID{fixtures.Peer(fixtures.PeerA), fixtures.Peer(fixtures.PeerB)}).Times(1)

	state := mode.New(nil)
	state.Set(mode.Online)

	c := counter.Counter(5)
	n := node.New(
		logger.New(fixtures.LogCategory),
		time.Now(),
		"100",
		&c,
		state.String,
		e,
	)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, mode.Online.String(), reply.Mode, "wrong mode")
	assert.Equal(t, c.Uint64(), reply.RPCs, "wrong connection count")
	assert.Equal(t, uint64(2), reply.Peers, "wrong peer count")
	assert.Equal(t, n.Version, reply.Version, "wrong version")
}

func TestNodeInfoOffline(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	state := mode.New(nil)
	c := counter.Counter(0)
	n := node.New(logger.New(fixtures.LogCategory), time.Now(), "1", &c, state.String, nil)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "info refused while offline")
	assert.Equal(t, mode.Offline.String(), reply.Mode, "wrong mode")
	assert.Equal(t, uint64(0), reply.Peers, "wrong peer count")
}
