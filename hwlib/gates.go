// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	"github.com/db47h/logicsim"
)

// A NewGateFn creates a named two-input gate, like Circuit.And or
// Circuit.Nand.
//
type NewGateFn func(name string) *logicsim.Gate

// GateN is a N-bits logic gate.
//
//	Inputs: A[bits], B[bits]
//	Outputs: Out[bits]
//	Function: for i := range Out { Out[i] = f(A[i], B[i]) }
//
// For a NOT gate, B is nil.
//
type GateN struct {
	A, B  []logicsim.Wire
	Out   []logicsim.Wire
	Gates []*logicsim.Gate
}

// NewGateN returns a new N-bits gate made of bits gates created with newGate,
// named name+"0", name+"1", etc.
//
//	and4 := hwlib.NewGateN("and", 4, c.And)
//
func NewGateN(name string, bits int, newGate NewGateFn) *GateN {
	g := &GateN{
		A:     make([]logicsim.Wire, bits),
		B:     make([]logicsim.Wire, bits),
		Out:   make([]logicsim.Wire, bits),
		Gates: make([]*logicsim.Gate, bits),
	}
	for i := range g.Gates {
		p := newGate(name + strconv.Itoa(i))
		g.Gates[i] = p
		g2 := p.Gate2()
		g.A[i], g.B[i], g.Out[i] = g2.A, g2.B, g2.C
	}
	return g
}

// NotN returns a N-bits NOT gate.
//
//	Inputs: A[bits]
//	Outputs: Out[bits]
//	Function: for i := range Out { Out[i] = !A[i] }
//
func NotN(c *logicsim.Circuit, name string, bits int) *GateN {
	g := &GateN{
		A:     make([]logicsim.Wire, bits),
		Out:   make([]logicsim.Wire, bits),
		Gates: make([]*logicsim.Gate, bits),
	}
	for i := range g.Gates {
		p := c.Not(name + strconv.Itoa(i))
		g.Gates[i] = p
		g.A[i], g.Out[i] = p.Not().A, p.Not().B
	}
	return g
}

// NWay is a N-way gate made of a chain of two-input gates.
//
//	Inputs: In[ways]
//	Outputs: Out
//	Function: Out = f(...f(f(In[0], In[1]), In[2])..., In[ways-1])
//
type NWay struct {
	In  []logicsim.Wire
	Out logicsim.Wire
}

// NewNWay returns a new N-way gate. Only associative gates (AND, OR) make
// sense here.
//
func NewNWay(c *logicsim.Circuit, name string, ways int, newGate NewGateFn) *NWay {
	if ways < 2 {
		panic("invalid gate width " + strconv.Itoa(ways))
	}
	n := &NWay{In: make([]logicsim.Wire, ways)}
	prev := newGate(name + "0").Gate2()
	n.In[0], n.In[1] = prev.A, prev.B
	for i := 2; i < ways; i++ {
		g := newGate(name + strconv.Itoa(i-1)).Gate2()
		must(c.Connect(prev.C, g.A))
		n.In[i] = g.B
		prev = g
	}
	n.Out = prev.C
	return n
}

// OrNWay returns a N-way OR gate.
//
//	Function: Out = In[0] || In[1] || In[2] || ... || In[n-1]
//
func OrNWay(c *logicsim.Circuit, name string, ways int) *NWay {
	return NewNWay(c, name, ways, c.Or)
}

// AndNWay returns a N-way AND gate.
//
//	Function: Out = In[0] && In[1] && In[2] && ... && In[n-1]
//
func AndNWay(c *logicsim.Circuit, name string, ways int) *NWay {
	return NewNWay(c, name, ways, c.And)
}
