// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bitswapd/mode"
	"github.com/bitmark-inc/bitswapd/rpc/fixtures"
	"github.com/bitmark-inc/logger"
)

func TestLifecycle(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s := mode.New(logger.New(fixtures.LogCategory))

	assert.True(t, s.Is(mode.Offline), "not offline at start")
	assert.Equal(t, "Offline", s.String(), "wrong start string")

	assert.True(t, s.Set(mode.Online), "online rejected")
	assert.True(t, s.Is(mode.Online), "not online")
	assert.True(t, s.IsNot(mode.Offline), "still offline")

	assert.True(t, s.Set(mode.Offline), "offline rejected")
	assert.True(t, s.Is(mode.Offline), "not back offline")
}

func TestInvalidSet(t *testing.T) {
	s := mode.New(nil)

	assert.False(t, s.Set(mode.Mode(7)), "invalid mode accepted")
	assert.False(t, s.Set(mode.Mode(-1)), "negative mode accepted")
	assert.True(t, s.Is(mode.Offline), "mode changed")
	assert.Equal(t, "*Unknown*", mode.Mode(7).String(), "wrong unknown string")
}
