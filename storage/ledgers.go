// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"math/big"
	"sync"

	"github.com/bitmark-inc/logger"
	proto "github.com/golang/protobuf/proto"
	"github.com/libp2p/go-libp2p-core/peer"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/bitswapd/counter"
	"github.com/bitmark-inc/bitswapd/fault"
	"github.com/bitmark-inc/bitswapd/ledger"
	"github.com/bitmark-inc/bitswapd/peerid"
	"github.com/bitmark-inc/bitswapd/stats"
	"github.com/bitmark-inc/bitswapd/storage/ledgerpb"
)

// key prefixes
const (
	ledgerPrefix  = 'L'
	countersKey   = 'S'
	minLedgerSize = 2
)

// Ledgers - leveldb backed ledger history
type Ledgers struct {
	sync.Mutex
	log    *logger.L
	access DataAccess
	cache  *writeCache
}

// Open - open or create the ledger database
func Open(fileName string, log *logger.L) (*Ledgers, error) {
	db, err := leveldb.OpenFile(fileName, nil)
	if nil != err {
		return nil, err
	}

	log.Infof("ledger database: %q", fileName)

	return &Ledgers{
		log:    log,
		access: newDataAccess(db),
		cache:  newWriteCache(),
	}, nil
}

// Close - flush and release the database
func (l *Ledgers) Close() error {
	l.Lock()
	defer l.Unlock()

	if nil == l.access {
		return fault.LedgerDatabaseNotOpen
	}
	err := l.access.Close()
	l.access = nil
	l.cache.clear()
	return err
}

// Save - write changed ledgers and the cumulative counters in one batch
//
// returns the number of records written
func (l *Ledgers) Save(ledgers []ledger.Ledger, counters stats.Counters) (int, error) {
	l.Lock()
	defer l.Unlock()

	if nil == l.access {
		return 0, fault.LedgerDatabaseNotOpen
	}

	type pending struct {
		key   []byte
		value []byte
	}
	writes := make([]pending, 0, len(ledgers)+1)

	for _, item := range ledgers {
		if "" == item.Peer {
			continue
		}
		value, err := proto.Marshal(packLedger(item))
		if nil != err {
			return 0, err
		}
		key := ledgerKey(item.Peer)
		if l.cache.unchanged(key, value) {
			continue
		}
		writes = append(writes, pending{key: key, value: value})
	}

	value, err := proto.Marshal(packCounters(counters))
	if nil != err {
		return 0, err
	}
	key := []byte{countersKey}
	if !l.cache.unchanged(key, value) {
		writes = append(writes, pending{key: key, value: value})
	}

	if 0 == len(writes) {
		return 0, nil
	}

	l.access.Begin()
	for _, w := range writes {
		l.access.Put(w.key, w.value)
	}
	if err := l.access.Write(); nil != err {
		l.log.Errorf("ledger write error: %s", err)
		return 0, fault.CheckpointFailed
	}
	for _, w := range writes {
		l.cache.written(w.key, w.value)
	}

	l.log.Debugf("saved: %d records", len(writes))
	return len(writes), nil
}

// Delete - remove a peer's stored history
func (l *Ledgers) Delete(p peer.ID) error {
	l.Lock()
	defer l.Unlock()

	if nil == l.access {
		return fault.LedgerDatabaseNotOpen
	}

	key := ledgerKey(p)
	l.access.Begin()
	l.access.Delete(key)
	l.cache.forget(key)
	return l.access.Write()
}

// Load - read every stored ledger and the counters
//
// records that do not decode are logged and skipped
func (l *Ledgers) Load() ([]ledger.Ledger, stats.Counters, error) {
	l.Lock()
	defer l.Unlock()

	if nil == l.access {
		return nil, stats.Counters{}, fault.LedgerDatabaseNotOpen
	}

	ledgers := []ledger.Ledger{}

	iter := l.access.Iterator(ldb_util.BytesPrefix([]byte{ledgerPrefix}))
	for iter.Next() {
		item, err := unpackLedger(iter.Key(), iter.Value())
		if nil != err {
			l.log.Warnf("skip ledger record: %x  error: %s", iter.Key(), err)
			continue
		}
		ledgers = append(ledgers, item)

		// what is on disk does not need rewriting
		l.cache.written(append([]byte{}, iter.Key()...), append([]byte{}, iter.Value()...))
	}
	iter.Release()
	if err := iter.Error(); nil != err {
		return nil, stats.Counters{}, err
	}

	var counters stats.Counters
	data, err := l.access.Get([]byte{countersKey})
	switch err {
	case nil:
		var c ledgerpb.Counters
		if err := proto.Unmarshal(data, &c); nil != err {
			l.log.Warnf("skip counters record: %s", err)
		} else {
			counters = unpackCounters(&c)
		}
	case leveldb.ErrNotFound:
	default:
		return nil, stats.Counters{}, err
	}

	l.log.Infof("loaded: %d ledgers", len(ledgers))
	return ledgers, counters, nil
}

func ledgerKey(p peer.ID) []byte {
	key := make([]byte, 0, 1+len(p))
	key = append(key, ledgerPrefix)
	return append(key, p...)
}

func packLedger(l ledger.Ledger) *ledgerpb.Ledger {
	return &ledgerpb.Ledger{
		Peer:      []byte(l.Peer),
		Sent:      bigBytes(l.Sent),
		Recv:      bigBytes(l.Recv),
		DupRecv:   bigBytes(l.DupRecv),
		Exchanged: bigBytes(l.Exchanged),
		Value:     bigBytes(l.Value),
	}
}

func unpackLedger(key []byte, value []byte) (ledger.Ledger, error) {
	if len(key) < minLedgerSize {
		return ledger.Ledger{}, fault.InvalidLedgerRecord
	}

	var record ledgerpb.Ledger
	if err := proto.Unmarshal(value, &record); nil != err {
		return ledger.Ledger{}, fault.InvalidLedgerRecord
	}

	id, err := peerid.Canonical(peer.ID(record.GetPeer()))
	if nil != err || string(key[1:]) != string(id) {
		return ledger.Ledger{}, fault.InvalidLedgerRecord
	}

	return ledger.Ledger{
		Peer:      id,
		Sent:      fromBytes(record.GetSent()),
		Recv:      fromBytes(record.GetRecv()),
		DupRecv:   fromBytes(record.GetDupRecv()),
		Exchanged: fromBytes(record.GetExchanged()),
		Value:     fromBytes(record.GetValue()),
	}, nil
}

func packCounters(c stats.Counters) *ledgerpb.Counters {
	return &ledgerpb.Counters{
		BlocksReceived:  bigBytes(c.BlocksReceived),
		BlocksSent:      bigBytes(c.BlocksSent),
		DataSent:        bigBytes(c.DataSent),
		DataReceived:    bigBytes(c.DataReceived),
		DupBlksReceived: bigBytes(c.DupBlksReceived),
		DupDataReceived: bigBytes(c.DupDataReceived),
	}
}

func unpackCounters(c *ledgerpb.Counters) stats.Counters {
	return stats.Counters{
		BlocksReceived:  fromBytes(c.GetBlocksReceived()),
		BlocksSent:      fromBytes(c.GetBlocksSent()),
		DataSent:        fromBytes(c.GetDataSent()),
		DataReceived:    fromBytes(c.GetDataReceived()),
		DupBlksReceived: fromBytes(c.GetDupBlksReceived()),
		DupDataReceived: fromBytes(c.GetDupDataReceived()),
	}
}

func bigBytes(b counter.Big) []byte {
	return b.Int().Bytes()
}

func fromBytes(b []byte) counter.Big {
	return counter.NewBig(new(big.Int).SetBytes(b))
}
