// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitswap

import (
	"github.com/bitmark-inc/logger"
	cid "github.com/ipfs/go-cid"
	"github.com/libp2p/go-libp2p-core/peer"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/bitswapd/content"
	"github.com/bitmark-inc/bitswapd/counter"
	"github.com/bitmark-inc/bitswapd/fault"
	"github.com/bitmark-inc/bitswapd/ledger"
	"github.com/bitmark-inc/bitswapd/mode"
	"github.com/bitmark-inc/bitswapd/peerid"
	"github.com/bitmark-inc/bitswapd/rpc/ratelimit"
	"github.com/bitmark-inc/bitswapd/stats"
	"github.com/bitmark-inc/bitswapd/wantlist"
)

//go:generate mockgen -destination=../mocks/engine.go -package=mocks github.com/bitmark-inc/bitswapd/rpc/bitswap Engine

// Bitswap
// -------

const (
	rateLimitBitswap = 200
	rateBurstBitswap = 100

	maximumUnwantKeys = 100
)

// Engine - the exchange state being reported on
type Engine interface {
	GetWantlist() []wantlist.Entry
	WantlistForPeer(peer.ID) []wantlist.Entry
	Unwant([]cid.Cid) []cid.Cid
	LedgerForPeer(peer.ID) (ledger.Ledger, bool)
	ConnectedPeers() []peer.ID
	StatCounters() stats.Counters
}

// Bitswap - type for RPC
type Bitswap struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	IsOnline func(mode.Mode) bool
	Engine   Engine
}

// New - create the Bitswap RPC service
func New(log *logger.L, isOnline func(mode.Mode) bool, engine Engine) *Bitswap {
	return &Bitswap{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitBitswap, rateBurstBitswap),
		IsOnline: isOnline,
		Engine:   engine,
	}
}

// Key - rendered content identifier
type Key struct {
	Cid string `json:"/"`
}

func keysOf(entries []wantlist.Entry) []Key {
	keys := make([]Key, len(entries))
	for i, e := range entries {
		keys[i] = Key{Cid: content.Key(e.Cid)}
	}
	return keys
}

// check the common preconditions of every request
func (bitswap *Bitswap) ready() error {
	if err := ratelimit.Limit(bitswap.Limiter); nil != err {
		return err
	}
	if nil == bitswap.Engine || !bitswap.IsOnline(mode.Online) {
		return fault.NotAvailable
	}
	return nil
}

// Wantlist
// --------

// WantlistArguments - empty arguments for the global wantlist
type WantlistArguments struct{}

// WantlistReply - wanted keys in wantlist order
type WantlistReply struct {
	Keys []Key `json:"Keys"`
}

// Wantlist - list every key currently wanted
func (bitswap *Bitswap) Wantlist(_ *WantlistArguments, reply *WantlistReply) error {
	if err := bitswap.ready(); nil != err {
		return err
	}

	reply.Keys = keysOf(bitswap.Engine.GetWantlist())
	return nil
}

// PeerArguments - a base58 peer id
type PeerArguments struct {
	Peer string `json:"peer"`
}

// WantlistForPeer - list the keys wanted from one peer
func (bitswap *Bitswap) WantlistForPeer(arguments *PeerArguments, reply *WantlistReply) error {
	if err := bitswap.ready(); nil != err {
		return err
	}

	p, err := peerid.Parse(arguments.Peer)
	if nil != err {
		return err
	}

	reply.Keys = keysOf(bitswap.Engine.WantlistForPeer(p))
	return nil
}

// Ledger
// ------

// LedgerInfo - exchange history with one peer
type LedgerInfo struct {
	Peer      string      `json:"Peer"`
	Value     counter.Big `json:"Value"`
	Sent      counter.Big `json:"Sent"`
	Recv      counter.Big `json:"Recv"`
	DupRecv   counter.Big `json:"DupRecv"`
	Exchanged counter.Big `json:"Exchanged"`
}

// LedgerReply - null ledger when there is no history
type LedgerReply struct {
	Ledger *LedgerInfo `json:"ledger"`
}

// Ledger - exchange history with a peer
func (bitswap *Bitswap) Ledger(arguments *PeerArguments, reply *LedgerReply) error {
	if err := bitswap.ready(); nil != err {
		return err
	}

	p, err := peerid.Parse(arguments.Peer)
	if nil != err {
		return err
	}

	l, ok := bitswap.Engine.LedgerForPeer(p)
	if !ok {
		reply.Ledger = nil
		return nil
	}

	reply.Ledger = &LedgerInfo{
		Peer:      peerid.String(l.Peer),
		Value:     l.Value,
		Sent:      l.Sent,
		Recv:      l.Recv,
		DupRecv:   l.DupRecv,
		Exchanged: l.Exchanged,
	}
	return nil
}

// Stat
// ----

// StatArguments - empty arguments for statistics
type StatArguments struct{}

// StatReply - one consistent snapshot of the exchange
type StatReply struct {
	ProvideBufLen   int         `json:"provideBufLen"`
	BlocksReceived  counter.Big `json:"blocksReceived"`
	Wantlist        []Key       `json:"wantlist"`
	Peers           []string    `json:"peers"`
	DupBlksReceived counter.Big `json:"dupBlksReceived"`
	DupDataReceived counter.Big `json:"dupDataReceived"`
	DataReceived    counter.Big `json:"dataReceived"`
	BlocksSent      counter.Big `json:"blocksSent"`
	DataSent        counter.Big `json:"dataSent"`
}

// Stat - counters, wantlist and peers from the same instant
func (bitswap *Bitswap) Stat(_ *StatArguments, reply *StatReply) error {
	if err := bitswap.ready(); nil != err {
		return err
	}

	s := stats.Take(bitswap.Engine)

	reply.ProvideBufLen = s.ProvideBufLen
	reply.BlocksReceived = s.BlocksReceived
	reply.Wantlist = keysOf(s.Wantlist)
	reply.Peers = s.Peers
	reply.DupBlksReceived = s.DupBlksReceived
	reply.DupDataReceived = s.DupDataReceived
	reply.DataReceived = s.DataReceived
	reply.BlocksSent = s.BlocksSent
	reply.DataSent = s.DataSent
	return nil
}

// Unwant
// ------

// UnwantArguments - keys to stop wanting
type UnwantArguments struct {
	Keys Keys `json:"keys"`
}

// UnwantReply - keys actually removed and keys that could not be decoded
type UnwantReply struct {
	Removed []Key    `json:"removed"`
	Invalid []string `json:"invalid"`
}

// Unwant - cancel wants, unknown keys are ignored
func (bitswap *Bitswap) Unwant(arguments *UnwantArguments, reply *UnwantReply) error {
	count := len(arguments.Keys)
	err := ratelimit.LimitN(bitswap.Limiter, count, maximumUnwantKeys)
	if nil != err && fault.InvalidCount != err {
		return err
	}
	if nil == bitswap.Engine || !bitswap.IsOnline(mode.Online) {
		return fault.NotAvailable
	}
	if fault.InvalidCount == err {
		if 0 == count {
			return fault.MissingParameters
		}
		return fault.TooManyKeys
	}

	values := make([]interface{}, count)
	for i, k := range arguments.Keys {
		values[i] = k
	}
	cids, rejected := content.NormalizeAll(values)

	invalid := make([]string, len(rejected))
	for i, v := range rejected {
		invalid[i], _ = v.(string)
	}
	if len(invalid) > 0 {
		bitswap.Log.Debugf("Bitswap.Unwant: skipped invalid keys: %q", invalid)
	}

	removed := []cid.Cid{}
	if len(cids) > 0 {
		removed = bitswap.Engine.Unwant(cids)
	}

	reply.Removed = make([]Key, len(removed))
	for i, c := range removed {
		reply.Removed[i] = Key{Cid: content.Key(c)}
	}
	reply.Invalid = invalid

	bitswap.Log.Infof("Bitswap.Unwant: removed: %d of: %d", len(removed), count)
	return nil
}
