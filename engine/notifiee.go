// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	p2pnet "github.com/libp2p/go-libp2p-core/network"
	ma "github.com/multiformats/go-multiaddr"
)

// Notifiee - connection events from a libp2p host, register with
// host.Network().Notify(e.Notifiee())
func (e *Engine) Notifiee() *p2pnet.NotifyBundle {
	return &p2pnet.NotifyBundle{
		ListenF: func(_ p2pnet.Network, addr ma.Multiaddr) {
			e.log.Debugf("host listening at: %s", addr)
		},
		ConnectedF: func(_ p2pnet.Network, conn p2pnet.Conn) {
			e.log.Debugf("conn: %s opened", conn.RemoteMultiaddr())
			e.Connected(conn.RemotePeer())
		},
		DisconnectedF: func(_ p2pnet.Network, conn p2pnet.Conn) {
			e.log.Debugf("conn: %s closed", conn.RemoteMultiaddr())
			e.Disconnected(conn.RemotePeer())
		},
	}
}
