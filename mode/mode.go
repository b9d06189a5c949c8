// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode

import (
	"sync"

	"github.com/bitmark-inc/logger"
)

// Mode - type to hold the mode
type Mode int

// all possible modes
const (
	Offline Mode = iota
	Online
	maximum
)

// State - engine lifecycle, starts Offline
type State struct {
	sync.RWMutex
	log  *logger.L
	mode Mode
}

// New - create a state in Offline mode
func New(log *logger.L) *State {
	return &State{
		log:  log,
		mode: Offline,
	}
}

// Set - change mode, returns false for an out of range mode
func (s *State) Set(mode Mode) bool {
	if mode < Offline || mode >= maximum {
		if nil != s.log {
			s.log.Errorf("ignore invalid set: %d", mode)
		}
		return false
	}

	s.Lock()
	previous := s.mode
	s.mode = mode
	s.Unlock()

	if nil != s.log && previous != mode {
		s.log.Infof("set: %s -> %s", previous, mode)
	}
	return true
}

// Is - detect mode
func (s *State) Is(mode Mode) bool {
	s.RLock()
	defer s.RUnlock()
	return mode == s.mode
}

// IsNot - detect mode
func (s *State) IsNot(mode Mode) bool {
	s.RLock()
	defer s.RUnlock()
	return mode != s.mode
}

// String - current mode represented as a string
func (s *State) String() string {
	s.RLock()
	defer s.RUnlock()
	return s.mode.String()
}

// String - mode represented as a string
func (m Mode) String() string {
	switch m {
	case Offline:
		return "Offline"
	case Online:
		return "Online"
	default:
		return "*Unknown*"
	}
}
