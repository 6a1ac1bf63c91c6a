// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	"github.com/db47h/logicsim"
	"github.com/pkg/errors"
)

// Register is a N-bits register made of D flip-flops sharing the same clock.
//
//	Inputs: D[bits], Clk
//	Outputs: Q[bits]
//	Function: Q = D on a falling edge of Clk
//
type Register struct {
	D, Q []logicsim.Wire
	Clk  logicsim.Wire
	FF   []*logicsim.Gate
}

// NewRegister returns a new N-bits register. The clock is the C wire of the
// first flip-flop, connected to the clock of the other ones, so bits cannot
// exceed logicsim.MaxFanout+1.
//
func NewRegister(c *logicsim.Circuit, name string, bits int) (*Register, error) {
	if bits < 1 {
		return nil, errors.Errorf("%s: invalid register size %d", name, bits)
	}
	r := &Register{
		D:  make([]logicsim.Wire, bits),
		Q:  make([]logicsim.Wire, bits),
		FF: make([]*logicsim.Gate, bits),
	}
	clk := make([]logicsim.Wire, 0, bits-1)
	for i := range r.FF {
		g := c.DFlipFlop(name + strconv.Itoa(i))
		r.FF[i] = g
		ff := g.DFlipFlop()
		r.D[i], r.Q[i] = ff.D, ff.Q
		if i == 0 {
			r.Clk = ff.C
		} else {
			clk = append(clk, ff.C)
		}
	}
	if err := c.Connect(r.Clk, clk...); err != nil {
		return nil, errors.Wrapf(err, "register %s", name)
	}
	return r, nil
}
