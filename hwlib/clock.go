// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/logicsim"

// A Clock drives a clock wire.
//
type Clock struct {
	c     *logicsim.Circuit
	w     logicsim.Wire
	ticks int // number of transitions
	edges int // falling edges
}

// NewClock returns a clock driving wire w. The wire is left untouched until
// the first call to Set, Toggle or Pulse.
//
func NewClock(c *logicsim.Circuit, w logicsim.Wire) *Clock {
	return &Clock{c: c, w: w}
}

// Wire returns the clock wire.
func (k *Clock) Wire() logicsim.Wire { return k.w }

// Level returns the current clock level.
func (k *Clock) Level() logicsim.TriState { return k.c.Value(k.w) }

// Set drives the clock wire to v.
//
func (k *Clock) Set(v logicsim.TriState) {
	prev := k.c.Value(k.w)
	if prev == v {
		return
	}
	if prev == logicsim.High && v == logicsim.Low {
		k.edges++
	}
	if prev != logicsim.Unknown {
		k.ticks++
	}
	k.c.Set(k.w, v)
}

// Toggle inverts the clock level. An Unknown clock goes High.
//
func (k *Clock) Toggle() {
	k.Set(k.Level().Not())
}

// Pulse drives the clock Low then High.
//
func (k *Clock) Pulse() {
	k.Set(logicsim.Low)
	k.Set(logicsim.High)
}

// Ticks returns the number of clock transitions since the clock left the
// Unknown state.
//
func (k *Clock) Ticks() int { return k.ticks }

// Edges returns the number of falling edges so far.
//
func (k *Clock) Edges() int { return k.edges }
