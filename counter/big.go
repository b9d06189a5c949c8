// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"bytes"
	"math/big"

	"github.com/bitmark-inc/bitswapd/fault"
)

// Big - an immutable non-negative arbitrary precision total
//
// the zero value is zero; every arithmetic operation returns a new
// value so copies can be shared between goroutines and snapshots
type Big struct {
	v *big.Int
}

// NewBig - copy a big.Int, negative values are clamped to zero
func NewBig(i *big.Int) Big {
	if nil == i || i.Sign() <= 0 {
		return Big{}
	}
	return Big{v: new(big.Int).Set(i)}
}

// BigFromUint64 - convert a native counter
func BigFromUint64(n uint64) Big {
	if 0 == n {
		return Big{}
	}
	return Big{v: new(big.Int).SetUint64(n)}
}

// ParseBig - decimal string to Big
func ParseBig(s string) (Big, error) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok || i.Sign() < 0 {
		return Big{}, fault.InvalidCount
	}
	return NewBig(i), nil
}

// Add - return b + n
func (b Big) Add(n uint64) Big {
	if 0 == n {
		return b
	}
	r := new(big.Int).SetUint64(n)
	if nil != b.v {
		r.Add(r, b.v)
	}
	return Big{v: r}
}

// AddBig - return b + o
func (b Big) AddBig(o Big) Big {
	if nil == o.v {
		return b
	}
	if nil == b.v {
		return o
	}
	return Big{v: new(big.Int).Add(b.v, o.v)}
}

// Cmp - -1, 0, +1 as big.Int.Cmp
func (b Big) Cmp(o Big) int {
	return b.Int().Cmp(o.Int())
}

// IsZero - true for the zero total
func (b Big) IsZero() bool {
	return nil == b.v || 0 == b.v.Sign()
}

// Int - a copy of the value, safe to modify
func (b Big) Int() *big.Int {
	if nil == b.v {
		return new(big.Int)
	}
	return new(big.Int).Set(b.v)
}

// String - exact decimal representation
func (b Big) String() string {
	if nil == b.v {
		return "0"
	}
	return b.v.String()
}

// MarshalJSON - render as a quoted decimal string so that no JSON
// consumer can round it through a float
func (b Big) MarshalJSON() ([]byte, error) {
	s := b.String()
	buffer := make([]byte, 0, len(s)+2)
	buffer = append(buffer, '"')
	buffer = append(buffer, s...)
	buffer = append(buffer, '"')
	return buffer, nil
}

// UnmarshalJSON - accept a quoted decimal string or a bare integer
func (b *Big) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*b = Big{}
		return nil
	}
	if len(data) >= 2 && '"' == data[0] && '"' == data[len(data)-1] {
		data = data[1 : len(data)-1]
	}
	n, err := ParseBig(string(data))
	if nil != err {
		return err
	}
	*b = n
	return nil
}
