// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	"github.com/db47h/logicsim"
	"github.com/pkg/errors"
)

// Adder is an N-bits ripple carry adder made of full adders F0 to F(N-1),
// where the carry out of each adder is connected to the carry in of the next
// one.
//
type Adder struct {
	c *logicsim.Circuit
	// F[0] adds the least significant bits.
	F []*logicsim.Gate
}

// NewAdder returns a new N-bits adder. Full adders are named name+"0",
// name+"1", etc.
//
//	Inputs: F[i].A, F[i].B, F[0].Cin
//	Outputs: F[i].S, F[N-1].Cout
//
func NewAdder(c *logicsim.Circuit, name string, bits int) *Adder {
	if bits < 1 {
		panic("invalid adder size " + strconv.Itoa(bits))
	}
	a := &Adder{c: c, F: make([]*logicsim.Gate, bits)}
	for i := range a.F {
		a.F[i] = c.FullAdder(name + strconv.Itoa(i))
		if i > 0 {
			if err := c.Connect(a.F[i-1].FullAdder().Cout, a.F[i].FullAdder().Cin); err != nil {
				panic(err)
			}
		}
	}
	return a
}

// Bits returns the adder size.
//
func (a *Adder) Bits() int { return len(a.F) }

// A returns the wires of the first operand, lsb first.
//
func (a *Adder) A() []logicsim.Wire {
	w := make([]logicsim.Wire, len(a.F))
	for i, f := range a.F {
		w[i] = f.FullAdder().A
	}
	return w
}

// B returns the wires of the second operand, lsb first.
//
func (a *Adder) B() []logicsim.Wire {
	w := make([]logicsim.Wire, len(a.F))
	for i, f := range a.F {
		w[i] = f.FullAdder().B
	}
	return w
}

// Out returns the sum wires, lsb first, followed by the carry out.
//
func (a *Adder) Out() []logicsim.Wire {
	w := make([]logicsim.Wire, len(a.F)+1)
	for i, f := range a.F {
		w[i] = f.FullAdder().S
	}
	w[len(a.F)] = a.F[len(a.F)-1].FullAdder().Cout
	return w
}

// Add clears the carry in and adds the two operands given as strings of '0'
// and '1', most significant bit first. Operands must be exactly Bits() long.
//
// Bits are set from the least significant adder to the most significant one,
// operand A then B for each adder.
//
func (a *Adder) Add(x, y string) error {
	bx, err := a.parse(x)
	if err != nil {
		return err
	}
	by, err := a.parse(y)
	if err != nil {
		return err
	}
	a.c.Set(a.F[0].FullAdder().Cin, logicsim.Low)
	for i, f := range a.F {
		fa := f.FullAdder()
		a.c.Set(fa.A, bx[i])
		a.c.Set(fa.B, by[i])
	}
	return nil
}

func (a *Adder) parse(s string) ([]logicsim.TriState, error) {
	if len(s) != len(a.F) {
		return nil, errors.Errorf("%q: expected %d bits, got %d", s, len(a.F), len(s))
	}
	return ParseBits(s)
}

// AddUint64 adds x and y and returns the result, including the carry as bit
// Bits(). x and y must fit in Bits() bits. Adders of 64 bits or more return
// an error since the carry does not fit in the result.
//
func (a *Adder) AddUint64(x, y uint64) (uint64, error) {
	n := uint(len(a.F))
	if n >= 64 {
		return 0, errors.Errorf("a %d bits adder does not fit in 64 bits with its carry", n)
	}
	if x>>n != 0 || y>>n != 0 {
		return 0, errors.Errorf("operands %d and %d overflow a %d bits adder", x, y, n)
	}
	s := strconv.FormatUint(x, 2)
	t := strconv.FormatUint(y, 2)
	if err := a.Add(pad(s, int(n)), pad(t, int(n))); err != nil {
		return 0, err
	}
	return Uint64(a.c, a.Out()), nil
}

func pad(s string, n int) string {
	for len(s) < n {
		s = "0" + s
	}
	return s
}

// Result returns the carry out followed by the sum bits, most significant
// bit first, i.e. "10000" for 1110 + 0010.
//
func (a *Adder) Result() string {
	return Bits(a.c, a.Out())
}
