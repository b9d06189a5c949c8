// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"math"
	"sync"
	"testing"

	"github.com/libp2p/go-libp2p-core/peer"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bitswapd/counter"
	"github.com/bitmark-inc/bitswapd/ledger"
	"github.com/bitmark-inc/bitswapd/rpc/fixtures"
)

func TestNoHistoryIsAbsent(t *testing.T) {
	s := ledger.NewStore(nil)

	l, ok := s.Get(fixtures.Peer(fixtures.PeerB))
	assert.False(t, ok, "ledger present without history")
	assert.Equal(t, ledger.Ledger{}, l, "non empty absent ledger")
	assert.Equal(t, 0, s.Len(), "lookup created a ledger")
}

func TestAccounting(t *testing.T) {
	s := ledger.NewStore(nil)
	a := fixtures.Peer(fixtures.PeerA)

	s.Sent(a, 100)
	s.Received(a, 40, false)
	s.Received(a, 10, true)

	l, ok := s.Get(a)
	assert.True(t, ok, "ledger missing")
	assert.Equal(t, a, l.Peer, "wrong peer")
	assert.Equal(t, "100", l.Sent.String(), "wrong sent")
	assert.Equal(t, "50", l.Recv.String(), "wrong recv")
	assert.Equal(t, "10", l.DupRecv.String(), "wrong dup recv")
	assert.Equal(t, "3", l.Exchanged.String(), "wrong exchanged")
	assert.Equal(t, "150", l.Value.String(), "wrong default value")
}

func TestCanonicalIdentity(t *testing.T) {
	s := ledger.NewStore(nil)

	stored := fixtures.Peer(fixtures.PeerA)
	s.Sent(stored, 1)

	// an equal id built along a different path
	lookup := peer.ID(string([]byte(fixtures.Peer(fixtures.PeerA))))
	l, ok := s.Get(lookup)
	assert.True(t, ok, "ledger missing")
	assert.Equal(t, fixtures.PeerA, l.Peer.Pretty(), "wrong canonical identity")
}

func TestScorerIsApplied(t *testing.T) {
	calls := 0
	s := ledger.NewStore(func(sent counter.Big, recv counter.Big, exchanged counter.Big) counter.Big {
		calls += 1
		return exchanged.Add(1000)
	})
	a := fixtures.Peer(fixtures.PeerA)

	s.Sent(a, 5)
	s.Received(a, 5, false)

	l, _ := s.Get(a)
	assert.Equal(t, 2, calls, "wrong scorer calls")
	assert.Equal(t, "1002", l.Value.String(), "score not surfaced")
}

func TestBeyondUint64(t *testing.T) {
	s := ledger.NewStore(nil)
	a := fixtures.Peer(fixtures.PeerA)

	s.Received(a, math.MaxUint64, false)
	s.Received(a, math.MaxUint64, false)

	l, _ := s.Get(a)
	assert.Equal(t, "36893488147419103230", l.Recv.String(), "wrong overflow total")
}

func TestRestoreNeverGoesBackwards(t *testing.T) {
	s := ledger.NewStore(nil)
	a := fixtures.Peer(fixtures.PeerA)
	s.Sent(a, 100)

	older := ledger.Ledger{
		Peer:      a,
		Sent:      counter.BigFromUint64(50),
		Exchanged: counter.BigFromUint64(1),
	}
	assert.False(t, s.Restore(older), "older ledger accepted")

	newer := ledger.Ledger{
		Peer:      a,
		Sent:      counter.BigFromUint64(500),
		Exchanged: counter.BigFromUint64(5),
		Value:     counter.BigFromUint64(500),
	}
	assert.True(t, s.Restore(newer), "newer ledger rejected")

	l, _ := s.Get(a)
	assert.Equal(t, "500", l.Sent.String(), "wrong restored value")

	assert.False(t, s.Restore(ledger.Ledger{}), "ledger without peer accepted")
}

func TestEvict(t *testing.T) {
	s := ledger.NewStore(nil)
	a := fixtures.Peer(fixtures.PeerA)
	b := fixtures.Peer(fixtures.PeerB)

	s.Sent(a, 1)
	s.Sent(b, 1)

	assert.Equal(t, 2, len(s.Peers()), "wrong peers")
	assert.True(t, s.Evict(a), "evict failed")
	assert.False(t, s.Evict(a), "double evict")

	_, ok := s.Get(a)
	assert.False(t, ok, "evicted ledger present")
	assert.Equal(t, 1, len(s.All()), "wrong remaining")
}

func TestMonotonicUnderConcurrency(t *testing.T) {
	s := ledger.NewStore(nil)
	a := fixtures.Peer(fixtures.PeerA)

	const n = 500
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i += 1 {
			s.Received(a, 3, 0 == i%2)
			s.Sent(a, 7)
		}
	}()

	failures := 0
	go func() {
		defer wg.Done()
		var previous ledger.Ledger
		for i := 0; i < n; i += 1 {
			l, ok := s.Get(a)
			if !ok {
				continue
			}
			if l.Sent.Cmp(previous.Sent) < 0 ||
				l.Recv.Cmp(previous.Recv) < 0 ||
				l.DupRecv.Cmp(previous.DupRecv) < 0 ||
				l.Exchanged.Cmp(previous.Exchanged) < 0 ||
				l.Value.Cmp(previous.Value) < 0 {
				failures += 1
			}
			previous = l
		}
	}()
	wg.Wait()

	assert.Equal(t, 0, failures, "counters decreased")
	l, _ := s.Get(a)
	assert.Equal(t, "1000", l.Exchanged.String(), "wrong final exchanged")
}
