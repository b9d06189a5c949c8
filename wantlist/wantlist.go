// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wantlist

import (
	"container/list"
	"sync"

	cid "github.com/ipfs/go-cid"
)

// Entry - a wanted block
type Entry struct {
	Cid      cid.Cid
	Priority int
}

// Wantlist - ordered set of entries keyed by CID
//
// iteration order is insertion order; re-adding an existing CID
// updates the priority but keeps the original position
type Wantlist struct {
	sync.RWMutex
	order *list.List
	index map[cid.Cid]*list.Element
}

// New - create an empty wantlist
func New() *Wantlist {
	return &Wantlist{
		order: list.New(),
		index: make(map[cid.Cid]*list.Element),
	}
}

// Add - insert or update, returns true if the CID was not present
func (w *Wantlist) Add(c cid.Cid, priority int) bool {
	w.Lock()
	defer w.Unlock()

	if e, ok := w.index[c]; ok {
		e.Value = Entry{Cid: c, Priority: priority}
		return false
	}
	w.index[c] = w.order.PushBack(Entry{Cid: c, Priority: priority})
	return true
}

// Remove - delete, returns true if the CID was present
func (w *Wantlist) Remove(c cid.Cid) bool {
	w.Lock()
	defer w.Unlock()

	e, ok := w.index[c]
	if !ok {
		return false
	}
	w.order.Remove(e)
	delete(w.index, c)
	return true
}

// Contains - check for a CID
func (w *Wantlist) Contains(c cid.Cid) bool {
	w.RLock()
	defer w.RUnlock()

	_, ok := w.index[c]
	return ok
}

// Len - number of entries
func (w *Wantlist) Len() int {
	w.RLock()
	defer w.RUnlock()

	return len(w.index)
}

// Entries - copy of all entries in insertion order
func (w *Wantlist) Entries() []Entry {
	w.RLock()
	defer w.RUnlock()

	entries := make([]Entry, 0, len(w.index))
	for e := w.order.Front(); nil != e; e = e.Next() {
		entries = append(entries, e.Value.(Entry))
	}
	return entries
}
