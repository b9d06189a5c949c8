// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wantlist_test

import (
	"sync"
	"testing"

	cid "github.com/ipfs/go-cid"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bitswapd/rpc/fixtures"
	"github.com/bitmark-inc/bitswapd/wantlist"
)

func cids(entries []wantlist.Entry) []cid.Cid {
	c := make([]cid.Cid, 0, len(entries))
	for _, e := range entries {
		c = append(c, e.Cid)
	}
	return c
}

func TestWantlistOrder(t *testing.T) {
	w := wantlist.New()

	c1 := fixtures.CidV0("one")
	c2 := fixtures.CidV0("two")
	c3 := fixtures.CidV1("three")

	assert.True(t, w.Add(c2, 1), "first add")
	assert.True(t, w.Add(c1, 1), "second add")
	assert.True(t, w.Add(c3, 1), "third add")
	assert.False(t, w.Add(c2, 9), "duplicate add")

	entries := w.Entries()
	assert.Equal(t, []cid.Cid{c2, c1, c3}, cids(entries), "wrong order")
	assert.Equal(t, 9, entries[0].Priority, "priority not updated")

	assert.True(t, w.Remove(c1), "remove present")
	assert.False(t, w.Remove(c1), "remove absent")
	assert.False(t, w.Contains(c1), "still contains")
	assert.Equal(t, 2, w.Len(), "wrong length")
	assert.Equal(t, []cid.Cid{c2, c3}, cids(w.Entries()), "wrong order after remove")

	// re-adding goes to the back
	w.Add(c1, 1)
	assert.Equal(t, []cid.Cid{c2, c3, c1}, cids(w.Entries()), "wrong order after re-add")
}

func TestEntriesIsACopy(t *testing.T) {
	w := wantlist.New()
	c1 := fixtures.CidV0("one")
	w.Add(c1, 1)

	entries := w.Entries()
	entries[0].Priority = 100

	assert.Equal(t, 1, w.Entries()[0].Priority, "internal entry modified")
}

func TestRegistryPeerScenario(t *testing.T) {
	r := wantlist.NewRegistry()
	peerA := fixtures.Peer(fixtures.PeerA)

	c1 := fixtures.CidV0("cid one")
	c2 := fixtures.CidV0("cid two")

	r.WantFrom(peerA, c1, 1)
	r.WantFrom(peerA, c2, 1)

	assert.Equal(t, []cid.Cid{c1, c2}, cids(r.ForPeer(peerA)), "wrong peer wantlist")
	assert.Equal(t, []cid.Cid{c1, c2}, cids(r.Global()), "wrong global wantlist")

	removed := r.Unwant([]cid.Cid{c1})
	assert.Equal(t, []cid.Cid{c1}, removed, "wrong removed")
	assert.Equal(t, []cid.Cid{c2}, cids(r.ForPeer(peerA)), "wrong peer wantlist after unwant")
	assert.Equal(t, []cid.Cid{c2}, cids(r.Global()), "wrong global after unwant")

	// idempotent
	removed = r.Unwant([]cid.Cid{c1})
	assert.Equal(t, 0, len(removed), "second unwant removed something")
}

func TestRegistryUnknownPeer(t *testing.T) {
	r := wantlist.NewRegistry()

	entries := r.ForPeer(fixtures.Peer(fixtures.PeerB))
	assert.NotNil(t, entries, "nil for unknown peer")
	assert.Equal(t, 0, len(entries), "entries for unknown peer")
}

func TestRegistryUnwantMixed(t *testing.T) {
	r := wantlist.NewRegistry()
	peerA := fixtures.Peer(fixtures.PeerA)
	peerB := fixtures.Peer(fixtures.PeerB)

	c1 := fixtures.CidV0("1")
	c2 := fixtures.CidV0("2")
	c3 := fixtures.CidV0("3")
	absent := fixtures.CidV0("absent")

	r.Want(c1, 1)
	r.WantFrom(peerA, c2, 1)
	r.WantFrom(peerB, c2, 1)
	r.WantFrom(peerB, c3, 1)

	removed := r.Unwant([]cid.Cid{absent, c2, c1})
	assert.Equal(t, []cid.Cid{c2, c1}, removed, "wrong removed order")
	assert.Equal(t, 0, len(r.ForPeer(peerA)), "peer a still wants")
	assert.Equal(t, []cid.Cid{c3}, cids(r.ForPeer(peerB)), "wrong peer b")
	assert.Equal(t, []cid.Cid{c3}, cids(r.Global()), "wrong global")
	assert.Equal(t, 1, len(r.Peers()), "empty peer list kept")
}

func TestRegistrySatisfiedAndDrop(t *testing.T) {
	r := wantlist.NewRegistry()
	peerA := fixtures.Peer(fixtures.PeerA)

	c1 := fixtures.CidV0("1")
	c2 := fixtures.CidV0("2")

	r.WantFrom(peerA, c1, 1)
	r.WantFrom(peerA, c2, 1)

	assert.True(t, r.IsWanted(c1), "not wanted")
	assert.True(t, r.Satisfied(c1), "not satisfied")
	assert.False(t, r.Satisfied(c1), "satisfied twice")
	assert.False(t, r.IsWanted(c1), "still wanted")

	r.DropPeer(peerA)
	assert.Equal(t, 0, len(r.ForPeer(peerA)), "peer list kept")
	assert.Equal(t, []cid.Cid{c2}, cids(r.Global()), "global entry lost")
}

func TestRegistryConcurrent(t *testing.T) {
	r := wantlist.NewRegistry()
	peerA := fixtures.Peer(fixtures.PeerA)

	all := make([]cid.Cid, 50)
	for i := range all {
		all[i] = fixtures.CidV0(string(rune('a' + i)))
	}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for _, c := range all {
			r.WantFrom(peerA, c, 1)
		}
	}()
	go func() {
		defer wg.Done()
		for range all {
			_ = r.Global()
			_ = r.ForPeer(peerA)
		}
	}()
	go func() {
		defer wg.Done()
		for _, c := range all {
			r.Unwant([]cid.Cid{c})
		}
	}()
	wg.Wait()

	r.Unwant(all)
	assert.Equal(t, 0, len(r.Global()), "entries remain")
}
