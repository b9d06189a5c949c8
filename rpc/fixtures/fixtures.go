// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"crypto/rand"
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
	cid "github.com/ipfs/go-cid"
	crypto "github.com/libp2p/go-libp2p-core/crypto"
	"github.com/libp2p/go-libp2p-core/peer"
	mh "github.com/multiformats/go-multihash"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// well known base58 peer ids
const (
	PeerA = "QmaCpDMGvV2BGHeYERUEnRQAwe3N8SzbUtfsmvsqQLuvuJ"
	PeerB = "QmNnooDu7bfjPFoTZYxMNLWUQJyrVwtbZg5gBMjTezGAJN"
	PeerC = "QmcZf59bWwK5XFi76CZX8cbJ4BhTzzA3gU1ZjYZcYW3dwt"
)

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// Peer - decode one of the well known ids, panics on a bad constant
func Peer(s string) peer.ID {
	id, err := peer.IDB58Decode(s)
	if nil != err {
		panic(fmt.Sprintf("fixture peer %q: %s", s, err))
	}
	return id
}

// NewPeer - a fresh Ed25519 based peer id
func NewPeer() peer.ID {
	_, publicKey, err := crypto.GenerateEd25519Key(rand.Reader)
	if nil != err {
		panic(err)
	}
	id, err := peer.IDFromPublicKey(publicKey)
	if nil != err {
		panic(err)
	}
	return id
}

// CidV0 - sha2-256 CIDv0 of some text
func CidV0(text string) cid.Cid {
	h, err := mh.Sum([]byte(text), mh.SHA2_256, -1)
	if nil != err {
		panic(err)
	}
	return cid.NewCidV0(h)
}

// CidV1 - sha2-256 raw CIDv1 of some text
func CidV1(text string) cid.Cid {
	h, err := mh.Sum([]byte(text), mh.SHA2_256, -1)
	if nil != err {
		panic(err)
	}
	return cid.NewCidV1(cid.Raw, h)
}
