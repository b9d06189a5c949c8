// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package engine - the exchange state the transfer engine mutates and
// the query layer reads
//
// the daemon itself runs no libp2p host; a host embedding the engine
// registers Notifiee on its network to deliver connection events and
// calls the mutation methods as blocks move
package engine

import (
	"sync"

	"github.com/bitmark-inc/logger"
	cid "github.com/ipfs/go-cid"
	"github.com/libp2p/go-libp2p-core/peer"

	"github.com/bitmark-inc/bitswapd/fault"
	"github.com/bitmark-inc/bitswapd/ledger"
	"github.com/bitmark-inc/bitswapd/peerid"
	"github.com/bitmark-inc/bitswapd/stats"
	"github.com/bitmark-inc/bitswapd/wantlist"
)

// Persister - durable ledger history
type Persister interface {
	Save([]ledger.Ledger, stats.Counters) (int, error)
	Load() ([]ledger.Ledger, stats.Counters, error)
	Delete(peer.ID) error
}

// Engine - exchange state mutated by the transfer engine
//
// every mutation holds the event lock exclusively; View holds it
// shared so that a reader can combine several reads from one instant.
// The individual reads only use the locks of the structures they read
// so they are safe inside View
type Engine struct {
	sync.RWMutex

	log       *logger.L
	wants     *wantlist.Registry
	ledgers   *ledger.Store
	collector stats.Collector
	persister Persister

	// held across a checkpoint's copy and save so that an eviction
	// cannot land between them
	persistLock sync.Mutex

	peerLock sync.RWMutex
	peers    map[peer.ID]int // open connections per peer
}

// New - create an empty engine, persister may be nil
func New(log *logger.L, scorer ledger.Scorer, persister Persister) *Engine {
	return &Engine{
		log:       log,
		wants:     wantlist.NewRegistry(),
		ledgers:   ledger.NewStore(scorer),
		persister: persister,
		peers:     make(map[peer.ID]int),
	}
}

// View - run f with all updates held off
func (e *Engine) View(f func()) {
	e.RLock()
	defer e.RUnlock()
	f()
}

// GetWantlist - global wantlist in insertion order
func (e *Engine) GetWantlist() []wantlist.Entry {
	return e.wants.Global()
}

// WantlistForPeer - entries wanted from a peer
func (e *Engine) WantlistForPeer(p peer.ID) []wantlist.Entry {
	return e.wants.ForPeer(p)
}

// LedgerForPeer - exchange history, false when there is none
func (e *Engine) LedgerForPeer(p peer.ID) (ledger.Ledger, bool) {
	return e.ledgers.Get(p)
}

// ConnectedPeers - currently connected peers in canonical order
func (e *Engine) ConnectedPeers() []peer.ID {
	e.peerLock.RLock()
	ids := make([]peer.ID, 0, len(e.peers))
	for p := range e.peers {
		ids = append(ids, p)
	}
	e.peerLock.RUnlock()

	peerid.Sort(ids)
	return ids
}

// StatCounters - cumulative totals
func (e *Engine) StatCounters() stats.Counters {
	return e.collector.Counters()
}

// Want - start seeking a block from any peer
func (e *Engine) Want(c cid.Cid, priority int) {
	e.Lock()
	defer e.Unlock()

	e.wants.Want(c, priority)
	e.log.Debugf("want: %s", c)
}

// WantFrom - start seeking a block from a specific peer
func (e *Engine) WantFrom(p peer.ID, c cid.Cid, priority int) {
	e.Lock()
	defer e.Unlock()

	e.wants.WantFrom(p, c, priority)
	e.log.Debugf("want: %s from: %s", c, p.Pretty())
}

// Unwant - cancel wants, returns those actually removed
func (e *Engine) Unwant(cids []cid.Cid) []cid.Cid {
	e.Lock()
	defer e.Unlock()

	removed := e.wants.Unwant(cids)
	e.log.Debugf("unwant: %d of %d removed", len(removed), len(cids))
	return removed
}

// BlockReceived - a block arrived, returns true if it was not wanted
func (e *Engine) BlockReceived(from peer.ID, c cid.Cid, size uint64) bool {
	e.Lock()
	defer e.Unlock()

	duplicate := !e.wants.Satisfied(c)
	e.collector.BlockReceived(size, duplicate)
	e.ledgers.Received(from, size, duplicate)

	e.log.Debugf("received: %s size: %d from: %s duplicate: %t", c, size, from.Pretty(), duplicate)
	return duplicate
}

// BlockSent - a block was sent to a peer
func (e *Engine) BlockSent(to peer.ID, c cid.Cid, size uint64) {
	e.Lock()
	defer e.Unlock()

	e.collector.BlockSent(size)
	e.ledgers.Sent(to, size)

	e.log.Debugf("sent: %s size: %d to: %s", c, size, to.Pretty())
}

// SetProvideBufLen - current length of the provide queue
func (e *Engine) SetProvideBufLen(n int) {
	e.Lock()
	defer e.Unlock()

	e.collector.SetProvideBufLen(n)
}

// Connected - a connection to a peer opened
func (e *Engine) Connected(p peer.ID) {
	e.Lock()
	defer e.Unlock()

	e.peerLock.Lock()
	e.peers[p] += 1
	n := e.peers[p]
	e.peerLock.Unlock()

	if 1 == n {
		e.log.Infof("connected: %s", p.Pretty())
	}
}

// Disconnected - a connection to a peer closed
//
// when the last connection goes the wants scoped to the peer are
// dropped; the ledger is kept
func (e *Engine) Disconnected(p peer.ID) {
	e.Lock()
	defer e.Unlock()

	e.peerLock.Lock()
	n, ok := e.peers[p]
	if ok && n > 1 {
		e.peers[p] = n - 1
	} else {
		delete(e.peers, p)
	}
	e.peerLock.Unlock()

	if ok && n <= 1 {
		e.wants.DropPeer(p)
		e.log.Infof("disconnected: %s", p.Pretty())
	}
}

// EvictLedger - explicitly forget a peer's exchange history
func (e *Engine) EvictLedger(p peer.ID) error {
	e.persistLock.Lock()
	defer e.persistLock.Unlock()

	e.Lock()
	defer e.Unlock()

	if !e.ledgers.Evict(p) {
		return nil
	}
	e.log.Infof("evict ledger: %s", p.Pretty())

	if nil == e.persister {
		return nil
	}
	return e.persister.Delete(p)
}

// Restore - load saved history, counters resume from the saved totals
func (e *Engine) Restore() error {
	if nil == e.persister {
		return nil
	}

	e.persistLock.Lock()
	defer e.persistLock.Unlock()

	ledgers, counters, err := e.persister.Load()
	if nil != err {
		e.log.Errorf("restore error: %s", err)
		return err
	}

	e.Lock()
	defer e.Unlock()

	restored := 0
	for _, l := range ledgers {
		if e.ledgers.Restore(l) {
			restored += 1
		}
	}
	counters.ProvideBufLen = e.collector.Counters().ProvideBufLen
	e.collector.Restore(counters)

	e.log.Infof("restored: %d ledgers", restored)
	return nil
}

// Checkpoint - save a consistent copy of the history
func (e *Engine) Checkpoint() error {
	if nil == e.persister {
		return fault.LedgerDatabaseNotOpen
	}

	e.persistLock.Lock()
	defer e.persistLock.Unlock()

	var ledgers []ledger.Ledger
	var counters stats.Counters
	e.View(func() {
		ledgers = e.ledgers.All()
		counters = e.collector.Counters()
	})

	n, err := e.persister.Save(ledgers, counters)
	if nil != err {
		e.log.Errorf("checkpoint error: %s", err)
		return err
	}
	e.log.Debugf("checkpoint: %d records written", n)
	return nil
}
