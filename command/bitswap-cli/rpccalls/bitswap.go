// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/bitswapd/rpc/bitswap"
	"github.com/bitmark-inc/bitswapd/rpc/node"
)

// GetInfo - request status from bitswapd
func (client *Client) GetInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := client.client.Call("Node.Info", node.InfoArguments{}, &reply); err != nil {
		return nil, err
	}

	return &reply, nil
}

// Wantlist - global wantlist, or the keys wanted from peer when it
// is not empty
func (client *Client) Wantlist(peer string) (*bitswap.WantlistReply, error) {
	var reply bitswap.WantlistReply

	if "" == peer {
		args := bitswap.WantlistArguments{}
		client.printJson("Wantlist Request", args)
		if err := client.client.Call("Bitswap.Wantlist", args, &reply); err != nil {
			return nil, err
		}
	} else {
		args := bitswap.PeerArguments{Peer: peer}
		client.printJson("WantlistForPeer Request", args)
		if err := client.client.Call("Bitswap.WantlistForPeer", args, &reply); err != nil {
			return nil, err
		}
	}

	client.printJson("Wantlist Reply", reply)
	return &reply, nil
}

// Ledger - exchange history with a peer, nil ledger if none
func (client *Client) Ledger(peer string) (*bitswap.LedgerReply, error) {
	args := bitswap.PeerArguments{Peer: peer}
	client.printJson("Ledger Request", args)

	var reply bitswap.LedgerReply
	if err := client.client.Call("Bitswap.Ledger", args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Ledger Reply", reply)
	return &reply, nil
}

// Stat - exchange statistics snapshot
func (client *Client) Stat() (*bitswap.StatReply, error) {
	var reply bitswap.StatReply
	if err := client.client.Call("Bitswap.Stat", bitswap.StatArguments{}, &reply); err != nil {
		return nil, err
	}

	client.printJson("Stat Reply", reply)
	return &reply, nil
}

// Unwant - stop wanting some keys
func (client *Client) Unwant(keys []string) (*bitswap.UnwantReply, error) {
	args := bitswap.UnwantArguments{Keys: bitswap.Keys(keys)}
	client.printJson("Unwant Request", args)

	var reply bitswap.UnwantReply
	if err := client.client.Call("Bitswap.Unwant", args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Unwant Reply", reply)
	return &reply, nil
}
