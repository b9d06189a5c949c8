// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"time"

	cache "github.com/patrickmn/go-cache"
)

// remembers what was last written for a key so that an unchanged
// ledger is not rewritten on every checkpoint
type writeCache struct {
	cache *cache.Cache
}

const (
	defaultExpiration = 10 * time.Minute
	cleanupInterval   = 20 * time.Minute
)

func newWriteCache() *writeCache {
	return &writeCache{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

// unchanged - true if value is what was last written for key
func (c *writeCache) unchanged(key []byte, value []byte) bool {
	obj, found := c.cache.Get(string(key))
	if !found {
		return false
	}
	return bytes.Equal(obj.([]byte), value)
}

func (c *writeCache) written(key []byte, value []byte) {
	c.cache.Set(string(key), value, cache.DefaultExpiration)
}

func (c *writeCache) forget(key []byte) {
	c.cache.Delete(string(key))
}

func (c *writeCache) clear() {
	c.cache.Flush()
}
