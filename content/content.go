// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package content

import (
	cid "github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"

	"github.com/bitmark-inc/bitswapd/fault"
)

// Normalize - convert any accepted block reference to its canonical CID
//
// accepted: cid.Cid, *cid.Cid, string, []byte and mh.Multihash; a
// cid.Cid is returned unchanged
func Normalize(v interface{}) (cid.Cid, error) {
	switch c := v.(type) {
	case cid.Cid:
		if !c.Defined() {
			return cid.Undef, fault.InvalidContentID
		}
		return c, nil

	case *cid.Cid:
		if nil == c {
			return cid.Undef, fault.InvalidContentID
		}
		return Normalize(*c)

	case string:
		if "" == c {
			return cid.Undef, fault.InvalidContentID
		}
		decoded, err := cid.Decode(c)
		if nil != err {
			return cid.Undef, fault.InvalidContentID
		}
		return decoded, nil

	case mh.Multihash:
		if _, err := mh.Decode(c); nil != err {
			return cid.Undef, fault.InvalidContentID
		}
		return cid.NewCidV0(c), nil

	case []byte:
		if 0 == len(c) {
			return cid.Undef, fault.InvalidContentID
		}
		decoded, err := cid.Cast(c)
		if nil != err {
			return cid.Undef, fault.InvalidContentID
		}
		return decoded, nil

	default:
		return cid.Undef, fault.InvalidContentID
	}
}

// NormalizeAll - batch Normalize keeping argument order
//
// duplicates (by canonical encoding) are dropped, rejected inputs are
// returned separately so that the caller can proceed with the rest
func NormalizeAll(values []interface{}) ([]cid.Cid, []interface{}) {
	valid := make([]cid.Cid, 0, len(values))
	invalid := []interface{}{}
	seen := make(map[cid.Cid]struct{}, len(values))

	for _, v := range values {
		c, err := Normalize(v)
		if nil != err {
			invalid = append(invalid, v)
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		valid = append(valid, c)
	}
	return valid, invalid
}

// Key - canonical string form used in rendered output
func Key(c cid.Cid) string {
	return c.String()
}
