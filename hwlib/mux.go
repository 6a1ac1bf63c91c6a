// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	"github.com/db47h/logicsim"
	"github.com/pkg/errors"
)

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Mux is a multiplexer made of a NOT, two AND and an OR gate.
//
//	Inputs: A, B, Sel
//	Outputs: Out
//	Function: if Sel == 0 { Out = A } else { Out = B }
//
type Mux struct {
	A, B, Sel logicsim.Wire
	Out       logicsim.Wire
	notSel    logicsim.Wire
}

// NewMux returns a new multiplexer. Its gates are named name+"_not",
// name+"_a", name+"_b" and name+"_or".
//
func NewMux(c *logicsim.Circuit, name string) *Mux {
	not := c.Not(name + "_not").Not()
	a := c.And(name + "_a").Gate2()
	b := c.And(name + "_b").Gate2()
	or := c.Or(name + "_or").Gate2()

	// Sel is b's second input, inverted for a.
	must(c.Connect(b.B, not.A))
	must(c.Connect(not.B, a.B))
	must(c.Connect(a.C, or.A))
	must(c.Connect(b.C, or.B))
	return &Mux{A: a.A, B: b.A, Sel: b.B, Out: or.C, notSel: not.A}
}

// DMux is a demultiplexer made of a NOT and two AND gates.
//
//	Inputs: In, Sel
//	Outputs: A, B
//	Function: if Sel == 0 { A = In; B = 0 } else { A = 0; B = In }
//
type DMux struct {
	In, Sel logicsim.Wire
	A, B    logicsim.Wire
}

// NewDMux returns a new demultiplexer.
//
func NewDMux(c *logicsim.Circuit, name string) *DMux {
	not := c.Not(name + "_not").Not()
	a := c.And(name + "_a").Gate2()
	b := c.And(name + "_b").Gate2()

	must(c.Connect(a.A, b.A))
	must(c.Connect(b.B, not.A))
	must(c.Connect(not.B, a.B))
	return &DMux{In: a.A, Sel: b.B, A: a.C, B: b.C}
}

// MuxN is an N-bits multiplexer.
//
//	Inputs: A[bits], B[bits], Sel
//	Outputs: Out[bits]
//	Function: for i := range Out { if Sel == 0 { Out[i] = A[i] } else { Out[i] = B[i] } }
//
type MuxN struct {
	A, B []logicsim.Wire
	Sel  logicsim.Wire
	Out  []logicsim.Wire
}

// NewMuxN returns a new N-bits multiplexer. Since the select line of the
// first bit drives all the others, bits cannot exceed logicsim.MaxFanout.
//
func NewMuxN(c *logicsim.Circuit, name string, bits int) (*MuxN, error) {
	if bits < 1 || bits > logicsim.MaxFanout {
		return nil, errors.Wrapf(logicsim.ErrFanoutOverflow, "%s: invalid multiplexer size %d", name, bits)
	}
	m := &MuxN{
		A:   make([]logicsim.Wire, bits),
		B:   make([]logicsim.Wire, bits),
		Out: make([]logicsim.Wire, bits),
	}
	sel := make([]logicsim.Wire, 0, bits)
	for i := 0; i < bits; i++ {
		mx := NewMux(c, name+strconv.Itoa(i))
		m.A[i], m.B[i], m.Out[i] = mx.A, mx.B, mx.Out
		if i == 0 {
			m.Sel = mx.Sel
			sel = append(sel, mx.notSel)
		} else {
			sel = append(sel, mx.Sel)
		}
	}
	if err := c.Connect(m.Sel, sel...); err != nil {
		return nil, err
	}
	return m, nil
}
