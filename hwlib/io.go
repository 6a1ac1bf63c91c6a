// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of reusable circuits and helpers built on
// top of logicsim gates.
//
package hwlib

import (
	"github.com/db47h/logicsim"
	"github.com/pkg/errors"
)

// ParseBits parses a string of '0' and '1' characters, most significant bit
// first, and returns the corresponding values, least significant bit first.
//
//	ParseBits("110") // []TriState{Low, High, High}
//
func ParseBits(s string) ([]logicsim.TriState, error) {
	out := make([]logicsim.TriState, len(s))
	for i := range s {
		var v logicsim.TriState
		switch s[i] {
		case '0':
			v = logicsim.Low
		case '1':
			v = logicsim.High
		default:
			return nil, errors.Errorf("in %q at pos %d: invalid bit %q", s, i+1, s[i])
		}
		out[len(s)-i-1] = v
	}
	return out, nil
}

// SetBits sets the wires to the bits in s. s is a string of '0' and '1', most
// significant bit first, where the last character goes to wires[0]. It must
// have exactly len(wires) characters.
//
func SetBits(c *logicsim.Circuit, wires []logicsim.Wire, s string) error {
	if len(s) != len(wires) {
		return errors.Errorf("%q: expected %d bits, got %d", s, len(wires), len(s))
	}
	bits, err := ParseBits(s)
	if err != nil {
		return err
	}
	for i, w := range wires {
		c.Set(w, bits[i])
	}
	return nil
}

// Bits returns the values of the wires as a string, most significant bit
// (last wire) first.
//
func Bits(c *logicsim.Circuit, wires []logicsim.Wire) string {
	b := make([]byte, len(wires))
	for i, w := range wires {
		b[len(wires)-i-1] = c.Value(w).String()[0]
	}
	return string(b)
}

// Uint64 returns the wires as an uint64. wires[0] is the lsb. Wires that are
// not High read as 0.
//
func Uint64(c *logicsim.Circuit, wires []logicsim.Wire) uint64 {
	var out uint64
	for bit, w := range wires {
		if c.Value(w).IsHigh() {
			out |= 1 << uint(bit)
		}
	}
	return out
}

// SetUint64 sets the wires to the given uint64 value. wires[0] is the lsb.
//
func SetUint64(c *logicsim.Circuit, wires []logicsim.Wire, v uint64) {
	for bit, w := range wires {
		c.Set(w, logicsim.Bool(v&(1<<uint(bit)) != 0))
	}
}

// CounterValue returns the current count of a Counter gate.
//
func CounterValue(g *logicsim.Gate) uint64 {
	return Uint64(g.Circuit(), g.Counter().Q())
}
