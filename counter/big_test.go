// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"encoding/json"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bitswapd/counter"
	"github.com/bitmark-inc/bitswapd/fault"
)

func TestBigZero(t *testing.T) {
	var b counter.Big

	assert.True(t, b.IsZero(), "zero value is not zero")
	assert.Equal(t, "0", b.String(), "wrong zero string")
	assert.Equal(t, 0, b.Cmp(counter.BigFromUint64(0)), "wrong zero compare")
	assert.Equal(t, 0, b.Cmp(counter.NewBig(big.NewInt(-5))), "negative not clamped")
}

func TestBigAddBeyondUint64(t *testing.T) {
	b := counter.BigFromUint64(math.MaxUint64)
	b = b.Add(math.MaxUint64)
	b = b.Add(2)

	expected := new(big.Int).SetUint64(math.MaxUint64)
	expected.Add(expected, expected)
	expected.Add(expected, big.NewInt(2))

	assert.Equal(t, expected.String(), b.String(), "wrong sum")
	assert.Equal(t, "36893488147419103232", b.String(), "wrong decimal")
}

func TestBigIsImmutable(t *testing.T) {
	a := counter.BigFromUint64(10)
	b := a.Add(5)
	c := a.AddBig(b)

	assert.Equal(t, "10", a.String(), "original changed")
	assert.Equal(t, "15", b.String(), "wrong add")
	assert.Equal(t, "25", c.String(), "wrong add big")

	i := a.Int()
	i.SetInt64(99)
	assert.Equal(t, "10", a.String(), "copy shares storage")
}

func TestBigJSONExact(t *testing.T) {
	// 2^53 + 1: the first integer a float64 cannot hold
	b, err := counter.ParseBig("9007199254740993")
	assert.Nil(t, err, "wrong parse")

	data, err := json.Marshal(b)
	assert.Nil(t, err, "wrong marshal")
	assert.Equal(t, `"9007199254740993"`, string(data), "wrong json")

	var quoted counter.Big
	err = json.Unmarshal([]byte(`"9007199254740993"`), &quoted)
	assert.Nil(t, err, "wrong quoted unmarshal")
	assert.Equal(t, 0, b.Cmp(quoted), "quoted value differs")

	var bare counter.Big
	err = json.Unmarshal([]byte(`9007199254740993`), &bare)
	assert.Nil(t, err, "wrong bare unmarshal")
	assert.Equal(t, "9007199254740993", bare.String(), "bare value rounded")
}

func TestBigParseErrors(t *testing.T) {
	for _, s := range []string{"", "-1", "1.5", "abc", "1e9"} {
		_, err := counter.ParseBig(s)
		assert.Equal(t, fault.InvalidCount, err, "accepted: %q", s)
	}
}
