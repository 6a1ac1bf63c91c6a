// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// HalfAdder is the payload of a half adder.
//
type HalfAdder struct {
	A, B Wire // in
	S, C Wire // out: sum, carry
	X1   *Gate
	A1   *Gate
}

func (*HalfAdder) variant() {}

// HalfAdder returns a new half adder made of a XOR and an AND gate.
//
//	Inputs: A, B
//	Outputs: S, C
//	Function: S = lsb(A + B)
//	          C = msb(A + B)
//
func (c *Circuit) HalfAdder(name string) *Gate { return c.newHalfAdder(nil, name) }

func (c *Circuit) newHalfAdder(parent *Gate, name string) *Gate {
	g := c.newGate(parent, name, KindHalfAdder)
	h := &HalfAdder{
		A: c.allocWire(g, pA, true, false),
		B: c.allocWire(g, pB, true, false),
		S: c.allocWire(g, "S", false, false),
		C: c.allocWire(g, pC, false, false),
	}
	g.payload = h
	h.X1 = c.newXor(g, "X1")
	h.A1 = c.newGate2(g, "A1", KindAnd)

	x1, a1 := h.X1.Xor(), h.A1.Gate2()
	c.mustConnect(h.A, x1.A, a1.A)
	c.mustConnect(h.B, x1.B, a1.B)
	c.mustConnect(x1.C, h.S)
	c.mustConnect(a1.C, h.C)
	return g
}

// FullAdder is the payload of a full adder. All its wires are monitored.
//
type FullAdder struct {
	A, B, Cin Wire // in
	S, Cout   Wire // out
	H1, H2    *Gate
	O1        *Gate
}

func (*FullAdder) variant() {}

// FullAdder returns a new full adder made of two half adders and an OR gate.
//
//	Inputs: A, B, Cin
//	Outputs: S, Cout
//	Function: S = lsb(A + B + Cin)
//	          Cout = msb(A + B + Cin)
//
func (c *Circuit) FullAdder(name string) *Gate { return c.newFullAdder(nil, name) }

func (c *Circuit) newFullAdder(parent *Gate, name string) *Gate {
	g := c.newGate(parent, name, KindFullAdder)
	f := &FullAdder{
		A:    c.allocWire(g, pA, true, true),
		B:    c.allocWire(g, pB, true, true),
		Cin:  c.allocWire(g, "Cin", true, true),
		S:    c.allocWire(g, "S", false, true),
		Cout: c.allocWire(g, "Cout", false, true),
	}
	g.payload = f
	f.H1 = c.newHalfAdder(g, "H1")
	f.H2 = c.newHalfAdder(g, "H2")
	f.O1 = c.newGate2(g, "O1", KindOr)

	h1, h2, o1 := f.H1.HalfAdder(), f.H2.HalfAdder(), f.O1.Gate2()
	c.mustConnect(f.A, h1.A)
	c.mustConnect(f.B, h1.B)
	c.mustConnect(f.Cin, h2.A)
	c.mustConnect(h1.S, h2.B)
	c.mustConnect(h1.C, o1.B)
	c.mustConnect(h2.C, o1.A)
	c.mustConnect(h2.S, f.S)
	c.mustConnect(o1.C, f.Cout)
	return g
}
