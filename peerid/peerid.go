// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peerid

import (
	"sort"
	"strings"

	"github.com/libp2p/go-libp2p-core/peer"
	"github.com/mr-tron/base58/base58"

	"github.com/bitmark-inc/bitswapd/fault"
)

// Parse - base58 peer id string to canonical peer.ID
//
// an empty string is MissingPeerID, surrounding whitespace or anything
// that does not decode to a valid multihash is InvalidPeerID
func Parse(s string) (peer.ID, error) {
	if "" == s {
		return "", fault.MissingPeerID
	}
	if strings.TrimSpace(s) != s {
		return "", fault.InvalidPeerID
	}

	b, err := base58.Decode(s)
	if nil != err || 0 == len(b) {
		return "", fault.InvalidPeerID
	}

	return fromBytes(b)
}

// Canonical - validate an existing peer.ID
func Canonical(id peer.ID) (peer.ID, error) {
	if "" == id {
		return "", fault.MissingPeerID
	}
	return fromBytes([]byte(id))
}

// String - canonical base58 form
func String(id peer.ID) string {
	return peer.IDB58Encode(id)
}

// Strings - canonical forms sorted
func Strings(ids []peer.ID) []string {
	s := make([]string, 0, len(ids))
	for _, id := range ids {
		s = append(s, String(id))
	}
	sort.Strings(s)
	return s
}

// Compare - the result will be 0 if a==b, -1 if a < b, and +1 if a > b
// using the canonical string
func Compare(a, b peer.ID) int {
	return strings.Compare(String(a), String(b))
}

// Sort - order by canonical string
func Sort(ids []peer.ID) {
	sort.Slice(ids, func(i, j int) bool {
		return Compare(ids[i], ids[j]) < 0
	})
}

// the multihash cast inside the peer library is the only validity check
// on raw bytes; guard it so a malformed id can never panic the caller
func fromBytes(b []byte) (id peer.ID, err error) {
	defer func() {
		if r := recover(); nil != r {
			id = ""
			err = fault.InvalidPeerID
		}
	}()

	id, err = peer.IDFromBytes(b)
	if nil != err {
		return "", fault.InvalidPeerID
	}
	return id, nil
}
