// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitswap

import (
	"bytes"
	"encoding/json"

	"github.com/bitmark-inc/bitswapd/fault"
)

// Keys - content identifiers given as a single string, a list of
// strings or a list of {"/": "..."} objects; only a top level value
// that is neither a string nor a list is rejected
type Keys []string

// UnmarshalJSON - accept each of the key forms
func (k *Keys) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if 0 == len(data) || bytes.Equal(data, []byte("null")) {
		*k = nil
		return nil
	}

	if '"' == data[0] {
		var s string
		if err := json.Unmarshal(data, &s); nil != err {
			return err
		}
		*k = Keys{s}
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); nil != err {
		return fault.InvalidContentID
	}

	// an item of any other shape is kept as its JSON text so that it is
	// reported as invalid while the rest of the batch proceeds
	keys := make(Keys, 0, len(items))
	for _, item := range items {
		item = bytes.TrimSpace(item)
		var s string
		if len(item) > 0 && '"' == item[0] && nil == json.Unmarshal(item, &s) {
			keys = append(keys, s)
			continue
		}
		var key Key
		if err := json.Unmarshal(item, &key); nil != err || "" == key.Cid {
			keys = append(keys, string(item))
			continue
		}
		keys = append(keys, key.Cid)
	}
	*k = keys
	return nil
}
