// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bitswapd/stats"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// periodic exchange statistics line
func statistics(log *logger.L, source stats.Source) func() {
	return func() {
		s := stats.Take(source)
		log.Infof("peers: %d  wanted: %d  blocks received: %s  duplicate: %s  sent: %s  data received: %s  sent: %s",
			len(s.Peers),
			len(s.Wantlist),
			s.BlocksReceived,
			s.DupBlksReceived,
			s.BlocksSent,
			s.DataReceived,
			s.DataSent,
		)
	}
}

func memstats(log *logger.L) func() {
	return func() {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		text, err := json.Marshal(m)
		if nil != err {
			log.Errorf("marshal error: %s", err)
		} else {
			log.Debugf("stats: %s", text)
		}
		a := m.Alloc / mega
		t := m.TotalAlloc / mega
		s := m.Sys / mega
		log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M", a, t, s)
	}
}
