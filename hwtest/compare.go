// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits.
//
package hwtest

import (
	"strings"
	"testing"

	"github.com/db47h/logicsim"
)

func inputString(c *logicsim.Circuit, in []logicsim.Wire) string {
	var b strings.Builder
	for _, w := range in {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.Owner(w).Path())
		b.WriteRune('.')
		b.WriteString(c.Name(w))
		b.WriteRune('=')
		b.WriteString(c.Value(w).String())
	}
	return b.String()
}

// Row returns the input values for row i of a truth table with n inputs. The
// first input is the most significant bit of i.
//
func Row(i, n int) []logicsim.TriState {
	r := make([]logicsim.TriState, n)
	for bit := 0; bit < n; bit++ {
		r[n-bit-1] = logicsim.Bool(i&(1<<uint(bit)) != 0)
	}
	return r
}

// TruthTable drives the in wires with every possible combination of Low and
// High values and checks the resulting values of the out wires against want.
//
// want[o][i] is the expected value of out[o] for row i, where row i sets
// in[0] to the most significant bit of i. Inputs are set in order, and only
// once per row.
//
func TruthTable(t *testing.T, c *logicsim.Circuit, in, out []logicsim.Wire, want [][]logicsim.TriState) {
	t.Helper()

	if len(want) != len(out) {
		t.Fatalf("got %d expected output columns for %d outputs", len(want), len(out))
	}
	tot := 1 << uint(len(in))
	for o := range want {
		if len(want[o]) != tot {
			t.Fatalf("output %s: got %d expected values, need %d", c.Name(out[o]), len(want[o]), tot)
		}
	}

	for i := 0; i < tot; i++ {
		for j, v := range Row(i, len(in)) {
			c.Set(in[j], v)
		}
		for o, w := range out {
			if got := c.Value(w); got != want[o][i] {
				t.Errorf("%s => %s = %v, got %v", inputString(c, in), c.Name(w), want[o][i], got)
			}
		}
	}
}

// Bools converts a string of '0' and '1' to a slice of TriState values. Any
// other character yields Unknown. It is a shorthand for truth tables:
//
//	hwtest.Bools("0001") // AND
//
func Bools(s string) []logicsim.TriState {
	r := make([]logicsim.TriState, len(s))
	for i := range s {
		switch s[i] {
		case '0':
			r[i] = logicsim.Low
		case '1':
			r[i] = logicsim.High
		}
	}
	return r
}
