// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// common pin names
const (
	pA = "A"
	pB = "B"
	pC = "C"
)

// Not is the payload of a NOT gate.
//
//	Inputs: A
//	Outputs: B
//	Function: B = !A
//
type Not struct {
	A Wire // in
	B Wire // out
}

func (*Not) variant() {}

// Not returns a new inverter. Any input value other than High yields High.
//
func (c *Circuit) Not(name string) *Gate { return c.newNot(nil, name) }

func (c *Circuit) newNot(parent *Gate, name string) *Gate {
	g := c.newGate(parent, name, KindNot)
	g.payload = &Not{
		A: c.allocWire(g, pA, true, false),
		B: c.allocWire(g, pB, false, false),
	}
	return g
}

// Gate2 is the payload shared by all two-input gates.
//
//	Inputs: A, B
//	Outputs: C
//
type Gate2 struct {
	A, B Wire // in
	C    Wire // out
}

func (*Gate2) variant() {}

func (c *Circuit) newGate2(parent *Gate, name string, kind Kind) *Gate {
	g := c.newGate(parent, name, kind)
	g.payload = &Gate2{
		A: c.allocWire(g, pA, true, false),
		B: c.allocWire(g, pB, true, false),
		C: c.allocWire(g, pC, false, false),
	}
	return g
}

// And returns a new AND gate.
//
//	Function: C = A && B
//
func (c *Circuit) And(name string) *Gate { return c.newGate2(nil, name, KindAnd) }

// Or returns a new OR gate.
//
//	Function: C = A || B
//
func (c *Circuit) Or(name string) *Gate { return c.newGate2(nil, name, KindOr) }

// Nand returns a new NAND gate.
//
//	Function: C = !(A && B)
//
func (c *Circuit) Nand(name string) *Gate { return c.newGate2(nil, name, KindNand) }

// Xor is the payload of a XOR gate built from two AND, two NOT and one OR
// gate: C = (A && !B) || (!A && B).
//
type Xor struct {
	A, B   Wire // in
	C      Wire // out
	A1, A2 *Gate
	I1, I2 *Gate
	O1     *Gate
}

func (*Xor) variant() {}

// Xor returns a new XOR gate.
//
//	Inputs: A, B
//	Outputs: C
//	Function: C = A && !B || !A && B
//
func (c *Circuit) Xor(name string) *Gate { return c.newXor(nil, name) }

func (c *Circuit) newXor(parent *Gate, name string) *Gate {
	g := c.newGate(parent, name, KindXor)
	x := &Xor{
		A: c.allocWire(g, pA, true, false),
		B: c.allocWire(g, pB, true, false),
		C: c.allocWire(g, pC, false, false),
	}
	g.payload = x
	x.A1 = c.newGate2(g, "A1", KindAnd)
	x.A2 = c.newGate2(g, "A2", KindAnd)
	x.I1 = c.newNot(g, "I1")
	x.I2 = c.newNot(g, "I2")
	x.O1 = c.newGate2(g, "O1", KindOr)

	a1, a2, o1 := x.A1.Gate2(), x.A2.Gate2(), x.O1.Gate2()
	i1, i2 := x.I1.Not(), x.I2.Not()
	c.mustConnect(x.A, a1.A, i2.A)
	c.mustConnect(x.B, i1.A, a2.A)
	c.mustConnect(i1.B, a1.B)
	c.mustConnect(i2.B, a2.B)
	c.mustConnect(a1.C, o1.A)
	c.mustConnect(a2.C, o1.B)
	c.mustConnect(o1.C, x.C)
	return g
}
