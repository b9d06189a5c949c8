// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stats

import (
	"sync"

	"github.com/bitmark-inc/bitswapd/counter"
)

// Counters - cumulative transfer totals at one instant
type Counters struct {
	ProvideBufLen   int
	BlocksReceived  counter.Big
	BlocksSent      counter.Big
	DataSent        counter.Big
	DataReceived    counter.Big
	DupBlksReceived counter.Big
	DupDataReceived counter.Big
}

// Collector - the counter set mutated by the exchange engine
//
// all fields are updated and read under one lock so a reader never
// sees half of an update
type Collector struct {
	sync.RWMutex
	c Counters
}

// BlockReceived - account a received block
func (col *Collector) BlockReceived(size uint64, duplicate bool) {
	col.Lock()
	defer col.Unlock()

	col.c.BlocksReceived = col.c.BlocksReceived.Add(1)
	col.c.DataReceived = col.c.DataReceived.Add(size)
	if duplicate {
		col.c.DupBlksReceived = col.c.DupBlksReceived.Add(1)
		col.c.DupDataReceived = col.c.DupDataReceived.Add(size)
	}
}

// BlockSent - account a sent block
func (col *Collector) BlockSent(size uint64) {
	col.Lock()
	defer col.Unlock()

	col.c.BlocksSent = col.c.BlocksSent.Add(1)
	col.c.DataSent = col.c.DataSent.Add(size)
}

// SetProvideBufLen - length of the provide queue, a gauge not a total
func (col *Collector) SetProvideBufLen(n int) {
	if n < 0 {
		n = 0
	}
	col.Lock()
	col.c.ProvideBufLen = n
	col.Unlock()
}

// Restore - start from previously saved totals
func (col *Collector) Restore(c Counters) {
	col.Lock()
	col.c = c
	col.Unlock()
}

// Counters - copy of the current totals
func (col *Collector) Counters() Counters {
	col.RLock()
	defer col.RUnlock()

	// Big values are immutable so a struct copy is a deep copy
	return col.c
}
