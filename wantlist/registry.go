// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wantlist

import (
	"sync"

	cid "github.com/ipfs/go-cid"
	"github.com/libp2p/go-libp2p-core/peer"
)

// Registry - the global wantlist and the wantlists scoped to each peer
//
// a per-peer want is always part of the global wantlist as well
type Registry struct {
	sync.RWMutex
	global *Wantlist
	peers  map[peer.ID]*Wantlist
}

// NewRegistry - create an empty registry
func NewRegistry() *Registry {
	return &Registry{
		global: New(),
		peers:  make(map[peer.ID]*Wantlist),
	}
}

// Want - add to the global wantlist
func (r *Registry) Want(c cid.Cid, priority int) {
	r.Lock()
	defer r.Unlock()

	r.global.Add(c, priority)
}

// WantFrom - add to the wantlist for a specific peer
func (r *Registry) WantFrom(p peer.ID, c cid.Cid, priority int) {
	r.Lock()
	defer r.Unlock()

	w, ok := r.peers[p]
	if !ok {
		w = New()
		r.peers[p] = w
	}
	w.Add(c, priority)
	r.global.Add(c, priority)
}

// Global - all wanted entries
func (r *Registry) Global() []Entry {
	r.RLock()
	defer r.RUnlock()

	return r.global.Entries()
}

// ForPeer - entries wanted from a peer, empty for an unknown peer
func (r *Registry) ForPeer(p peer.ID) []Entry {
	r.RLock()
	defer r.RUnlock()

	w, ok := r.peers[p]
	if !ok {
		return []Entry{}
	}
	return w.Entries()
}

// IsWanted - check the global wantlist
func (r *Registry) IsWanted(c cid.Cid) bool {
	r.RLock()
	defer r.RUnlock()

	return r.global.Contains(c)
}

// Unwant - remove from every wantlist
//
// returns the CIDs that were present anywhere, in argument order, so a
// repeated call with the same CIDs returns nothing
func (r *Registry) Unwant(cids []cid.Cid) []cid.Cid {
	r.Lock()
	defer r.Unlock()

	removed := make([]cid.Cid, 0, len(cids))
	for _, c := range cids {
		if r.remove(c) {
			removed = append(removed, c)
		}
	}
	return removed
}

// Satisfied - a wanted block arrived, returns true if it was wanted
func (r *Registry) Satisfied(c cid.Cid) bool {
	r.Lock()
	defer r.Unlock()

	return r.remove(c)
}

// DropPeer - forget the wantlist scoped to a peer, global entries stay
func (r *Registry) DropPeer(p peer.ID) {
	r.Lock()
	defer r.Unlock()

	delete(r.peers, p)
}

// Peers - peers with at least one open want
func (r *Registry) Peers() []peer.ID {
	r.RLock()
	defer r.RUnlock()

	ids := make([]peer.ID, 0, len(r.peers))
	for p, w := range r.peers {
		if w.Len() > 0 {
			ids = append(ids, p)
		}
	}
	return ids
}

// lock must be held
func (r *Registry) remove(c cid.Cid) bool {
	found := r.global.Remove(c)
	for p, w := range r.peers {
		if w.Remove(c) {
			found = true
		}
		if 0 == w.Len() {
			delete(r.peers, p)
		}
	}
	return found
}
