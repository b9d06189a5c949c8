// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/libp2p/go-libp2p-core/peer"

	"github.com/bitmark-inc/bitswapd/counter"
)

// Ledger - exchange history with one peer
type Ledger struct {
	Peer      peer.ID     // canonical identity as stored
	Sent      counter.Big // bytes sent
	Recv      counter.Big // bytes received
	DupRecv   counter.Big // duplicate bytes received
	Exchanged counter.Big // blocks exchanged in either direction
	Value     counter.Big // score supplied by the Scorer
}

// Scorer - relationship value owned by the exchange engine
type Scorer func(sent counter.Big, recv counter.Big, exchanged counter.Big) counter.Big

// TotalBytes - default score: all bytes moved in either direction
func TotalBytes(sent counter.Big, recv counter.Big, _ counter.Big) counter.Big {
	return sent.AddBig(recv)
}

// Store - ledgers keyed by peer, created lazily on first exchange
type Store struct {
	sync.RWMutex
	scorer  Scorer
	ledgers map[peer.ID]*Ledger
}

// NewStore - create a store, a nil scorer selects TotalBytes
func NewStore(scorer Scorer) *Store {
	if nil == scorer {
		scorer = TotalBytes
	}
	return &Store{
		scorer:  scorer,
		ledgers: make(map[peer.ID]*Ledger),
	}
}

// Sent - account one block sent to a peer
func (s *Store) Sent(p peer.ID, bytes uint64) {
	s.Lock()
	defer s.Unlock()

	l := s.find(p)
	l.Sent = l.Sent.Add(bytes)
	l.Exchanged = l.Exchanged.Add(1)
	l.Value = s.scorer(l.Sent, l.Recv, l.Exchanged)
}

// Received - account one block received from a peer
func (s *Store) Received(p peer.ID, bytes uint64, duplicate bool) {
	s.Lock()
	defer s.Unlock()

	l := s.find(p)
	l.Recv = l.Recv.Add(bytes)
	if duplicate {
		l.DupRecv = l.DupRecv.Add(bytes)
	}
	l.Exchanged = l.Exchanged.Add(1)
	l.Value = s.scorer(l.Sent, l.Recv, l.Exchanged)
}

// Get - copy of the ledger, false if there is no exchange history
func (s *Store) Get(p peer.ID) (Ledger, bool) {
	s.RLock()
	defer s.RUnlock()

	l, ok := s.ledgers[p]
	if !ok {
		return Ledger{}, false
	}
	return *l, true
}

// Restore - install a ledger loaded from persistent storage
//
// an existing in-memory ledger is only replaced by one that is not
// behind it, so counters never go backwards
func (s *Store) Restore(l Ledger) bool {
	if "" == l.Peer {
		return false
	}

	s.Lock()
	defer s.Unlock()

	if current, ok := s.ledgers[l.Peer]; ok {
		if l.Sent.Cmp(current.Sent) < 0 ||
			l.Recv.Cmp(current.Recv) < 0 ||
			l.DupRecv.Cmp(current.DupRecv) < 0 ||
			l.Exchanged.Cmp(current.Exchanged) < 0 {
			return false
		}
	}
	restored := l
	s.ledgers[l.Peer] = &restored
	return true
}

// Evict - explicitly forget a peer's history
func (s *Store) Evict(p peer.ID) bool {
	s.Lock()
	defer s.Unlock()

	_, ok := s.ledgers[p]
	delete(s.ledgers, p)
	return ok
}

// Peers - all peers with history
func (s *Store) Peers() []peer.ID {
	s.RLock()
	defer s.RUnlock()

	ids := make([]peer.ID, 0, len(s.ledgers))
	for p := range s.ledgers {
		ids = append(ids, p)
	}
	return ids
}

// All - copies of every ledger
func (s *Store) All() []Ledger {
	s.RLock()
	defer s.RUnlock()

	all := make([]Ledger, 0, len(s.ledgers))
	for _, l := range s.ledgers {
		all = append(all, *l)
	}
	return all
}

// Len - number of ledgers
func (s *Store) Len() int {
	s.RLock()
	defer s.RUnlock()

	return len(s.ledgers)
}

// lock must be held
func (s *Store) find(p peer.ID) *Ledger {
	l, ok := s.ledgers[p]
	if !ok {
		l = &Ledger{Peer: p}
		s.ledgers[p] = l
	}
	return l
}
