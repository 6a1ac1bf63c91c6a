// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// Latch is the payload of a latch made of two cross-coupled NAND gates.
//
type Latch struct {
	A, B Wire // in
	Q    Wire // out
	N1   *Gate
	N2   *Gate
}

func (*Latch) variant() {}

// Latch returns a new latch. Q is monitored.
//
//	Inputs: A, B
//	Outputs: Q
//	Function: dropping A sets Q, dropping B clears it.
//
func (c *Circuit) Latch(name string) *Gate {
	g := c.newGate(nil, name, KindLatch)
	l := &Latch{
		A: c.allocWire(g, pA, true, false),
		B: c.allocWire(g, pB, true, false),
		Q: c.allocWire(g, "Q", false, true),
	}
	g.payload = l
	l.N1 = c.newGate2(g, "N1", KindNand)
	l.N2 = c.newGate2(g, "N2", KindNand)

	n1, n2 := l.N1.Gate2(), l.N2.Gate2()
	c.mustConnect(l.A, n1.A)
	c.mustConnect(l.B, n2.B)
	c.mustConnect(n1.C, n2.A, l.Q)
	c.mustConnect(n2.C, n1.B)
	return g
}

// DFlipFlop is the payload of a falling edge triggered D flip-flop.
//
type DFlipFlop struct {
	D, C Wire // in: data, clock
	Q    Wire // out
	prev TriState
}

func (*DFlipFlop) variant() {}

// Prev returns the clock value seen during the last evaluation.
//
func (d *DFlipFlop) Prev() TriState { return d.prev }

// DFlipFlop returns a new D flip-flop. Q starts Low.
//
//	Inputs: D, C
//	Outputs: Q
//	Function: Q = D on a High to Low transition of C.
//
func (c *Circuit) DFlipFlop(name string) *Gate { return c.newDFlipFlop(nil, name) }

func (c *Circuit) newDFlipFlop(parent *Gate, name string) *Gate {
	g := c.newGate(parent, name, KindDFlipFlop)
	g.payload = &DFlipFlop{
		D: c.allocWire(g, "D", true, false),
		C: c.allocWire(g, pC, true, false),
		Q: c.allocWire(g, "Q", false, false),
	}
	c.init(g.payload.(*DFlipFlop).Q, Low)
	return g
}

func (d *DFlipFlop) evaluate(c *Circuit) {
	// falling edge?
	if c.Value(d.C) == Low && d.prev == High {
		c.Set(d.Q, c.Value(d.D))
	}
	d.prev = c.Value(d.C)
}
