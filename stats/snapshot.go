// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stats

import (
	"github.com/libp2p/go-libp2p-core/peer"

	"github.com/bitmark-inc/bitswapd/peerid"
	"github.com/bitmark-inc/bitswapd/wantlist"
)

// Source - the parts of the exchange engine a snapshot reads
type Source interface {
	GetWantlist() []wantlist.Entry
	ConnectedPeers() []peer.ID
	StatCounters() Counters
}

// Consistent - a Source that can hold off updates while reading
type Consistent interface {
	View(func())
}

// Snapshot - immutable point in time statistics
type Snapshot struct {
	Counters
	Wantlist []wantlist.Entry
	Peers    []string
}

// Take - read all parts of a snapshot from the same instant
func Take(src Source) Snapshot {
	var s Snapshot
	var peers []peer.ID

	read := func() {
		s.Counters = src.StatCounters()
		s.Wantlist = src.GetWantlist()
		peers = src.ConnectedPeers()
	}

	if c, ok := src.(Consistent); ok {
		c.View(read)
	} else {
		read()
	}

	if nil == s.Wantlist {
		s.Wantlist = []wantlist.Entry{}
	}
	s.Peers = peerid.Strings(peers)
	return s
}
