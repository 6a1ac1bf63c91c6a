// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import "strconv"

// Div2 is the payload of a divide by 2 circuit: a D flip-flop whose inverted
// output is fed back into its data input.
//
type Div2 struct {
	C   Wire // in: clock
	D   Wire // in: connected to DFF.D
	Q   Wire // out
	DFF *Gate
	NOT *Gate
}

func (*Div2) variant() {}

// Div2 returns a new divide by 2 circuit. Q starts Low, is monitored, and
// toggles on every falling edge of C.
//
//	Inputs: C
//	Outputs: Q
//
func (c *Circuit) Div2(name string) *Gate { return c.newDiv2(nil, name) }

func (c *Circuit) newDiv2(parent *Gate, name string) *Gate {
	g := c.newGate(parent, name, KindDiv2)
	d := &Div2{
		C: c.allocWire(g, pC, true, false),
		D: c.allocWire(g, "D", false, false),
		Q: c.allocWire(g, "Q", false, true),
	}
	g.payload = d
	c.init(d.Q, Low)
	d.DFF = c.newDFlipFlop(g, "DFF")
	d.NOT = c.newNot(g, "NOT")

	ff, not := d.DFF.DFlipFlop(), d.NOT.Not()
	c.mustConnect(d.C, ff.C)
	c.mustConnect(d.D, ff.D)
	c.mustConnect(ff.Q, not.A, d.Q)
	c.mustConnect(not.B, ff.D)

	// Q must update the flip-flop's clock memory before the inverted Q
	// reaches D, or it would toggle again.
	c.SetActivates(ff.Q, true)
	c.init(ff.D, c.Value(ff.Q).Not())
	return g
}

// Counter is the payload of a 4 bits ripple counter.
//
type Counter struct {
	// B[0] is the least significant bit. Its C wire is the counter clock.
	B [4]*Gate
}

func (*Counter) variant() {}

// Clock returns the counter's clock input (B[0].C).
//
func (n *Counter) Clock() Wire { return n.B[0].Div2().C }

// Q returns the output wires of the counter, least significant bit first.
//
func (n *Counter) Q() []Wire {
	q := make([]Wire, len(n.B))
	for i, b := range n.B {
		q[i] = b.Div2().Q
	}
	return q
}

// Counter returns a new 4 bits asynchronous counter made of four Div2
// circuits B0 to B3, each one clocked by the output of the previous one. The
// count is incremented on every falling edge of the clock.
//
//	Inputs: B0.C
//	Outputs: B0.Q to B3.Q
//
func (c *Circuit) Counter(name string) *Gate {
	g := c.newGate(nil, name, KindCounter)
	n := &Counter{}
	g.payload = n
	for i := range n.B {
		n.B[i] = c.newDiv2(g, "B"+strconv.Itoa(i))
	}
	for i := 0; i < len(n.B)-1; i++ {
		c.mustConnect(n.B[i].Div2().Q, n.B[i+1].Div2().C)
	}
	return g
}
