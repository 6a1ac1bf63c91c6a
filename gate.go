// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Kind identifies the type of a gate, and hence the type of its payload.
//
type Kind uint8

// Gate kinds.
//
const (
	KindNot       Kind = iota // payload *Not
	KindAnd                   // payload *Gate2
	KindOr                    // payload *Gate2
	KindNand                  // payload *Gate2
	KindXor                   // payload *Xor
	KindHalfAdder             // payload *HalfAdder
	KindFullAdder             // payload *FullAdder
	KindLatch                 // payload *Latch
	KindDFlipFlop             // payload *DFlipFlop
	KindDiv2                  // payload *Div2
	KindCounter               // payload *Counter
)

var kindNames = [...]string{
	KindNot:       "NOT",
	KindAnd:       "AND",
	KindOr:        "OR",
	KindNand:      "NAND",
	KindXor:       "XOR",
	KindHalfAdder: "HalfAdder",
	KindFullAdder: "FullAdder",
	KindLatch:     "Latch",
	KindDFlipFlop: "DFF",
	KindDiv2:      "Div2",
	KindCounter:   "Counter",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// A Variant is the kind specific part of a gate: its wires and sub-gates.
// The set of variants is closed; see the Kind constants.
//
type Variant interface {
	variant()
}

// A Gate is a named logic component. Gates are created by the Circuit
// constructor methods (Not, And, FullAdder, etc.) and live as long as the
// circuit.
//
// A gate owns its wires and sub-gates. The wires of sub-gates may be
// connected to other gates' wires, but ownership is always a tree rooted at a
// top level gate.
//
type Gate struct {
	c       *Circuit
	id      int
	name    string
	kind    Kind
	payload Variant
	parent  *Gate
	parts   []*Gate
	pins    []Wire
}

func (c *Circuit) newGate(parent *Gate, name string, kind Kind) *Gate {
	g := &Gate{
		c:      c,
		id:     len(c.gates),
		name:   name,
		kind:   kind,
		parent: parent,
	}
	c.gates = append(c.gates, g)
	if parent != nil {
		parent.parts = append(parent.parts, g)
	}
	if ce := c.log.Check(zap.DebugLevel, "new gate"); ce != nil {
		ce.Write(zap.String("gate", g.Path()), zap.Stringer("kind", kind))
	}
	return g
}

// Name returns the gate name.
func (g *Gate) Name() string { return g.name }

// Kind returns the gate kind.
func (g *Gate) Kind() Kind { return g.kind }

// Parent returns the gate g is a part of, or nil for a top level gate.
func (g *Gate) Parent() *Gate { return g.parent }

// Parts returns the sub-gates of g in construction order.
func (g *Gate) Parts() []*Gate { return g.parts }

// Circuit returns the circuit g belongs to.
func (g *Gate) Circuit() *Circuit { return g.c }

// Path returns the dot separated names of g's ancestors and g, i.e.
// "F0.H1.X1".
//
func (g *Gate) Path() string {
	if g.parent == nil {
		return g.name
	}
	var names []string
	for p := g; p != nil; p = p.parent {
		names = append(names, p.name)
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, ".")
}

func (g *Gate) String() string {
	return g.kind.String() + " " + g.Path()
}

// Pins returns the wires owned by g (not by its sub-gates) in allocation
// order.
//
func (g *Gate) Pins() []Wire { return g.pins }

// Pin returns the wire owned by g with the given name.
// This function panics if the pin does not exist.
//
func (g *Gate) Pin(name string) Wire {
	for _, n := range g.pins {
		if g.c.wires[n].name == name {
			return n
		}
	}
	panic("pin " + g.Path() + "." + name + " does not exist")
}

// Walk calls fn for g and all its sub-gates, depth first, in construction
// order. depth is 0 for g. If fn returns false, the sub-gates of the current
// gate are skipped.
//
func (g *Gate) Walk(fn func(g *Gate, depth int) bool) {
	g.walk(fn, 0)
}

func (g *Gate) walk(fn func(*Gate, int) bool, depth int) {
	if !fn(g, depth) {
		return
	}
	for _, p := range g.parts {
		p.walk(fn, depth+1)
	}
}

// Variant returns the gate's payload.
//
func (g *Gate) Variant() Variant { return g.payload }

// As returns g's payload if g is of kind k. Otherwise it returns an error
// whose cause is ErrInvalidVariant. A gate whose construction failed has no
// payload and never matches.
//
func (g *Gate) As(k Kind) (Variant, error) {
	if g.kind != k {
		return nil, errors.Wrapf(ErrInvalidVariant, "%s is not a %s gate", g, k)
	}
	if g.payload == nil {
		return nil, errors.Wrapf(ErrInvalidVariant, "%s is incomplete", g)
	}
	return g.payload, nil
}

func (g *Gate) must(k Kind) Variant {
	v, err := g.As(k)
	if err != nil {
		panic(err)
	}
	return v
}

// The following accessors return the payload of g. They panic with
// ErrInvalidVariant if g is not of the matching kind.

// Not returns the payload of a NOT gate.
func (g *Gate) Not() *Not { return g.must(KindNot).(*Not) }

// Gate2 returns the payload of an AND, OR or NAND gate.
func (g *Gate) Gate2() *Gate2 {
	switch g.kind {
	case KindAnd, KindOr, KindNand:
		return g.must(g.kind).(*Gate2)
	}
	panic(errors.Wrapf(ErrInvalidVariant, "%s is not a two input gate", g))
}

// Xor returns the payload of a XOR gate.
func (g *Gate) Xor() *Xor { return g.must(KindXor).(*Xor) }

// HalfAdder returns the payload of a half adder.
func (g *Gate) HalfAdder() *HalfAdder { return g.must(KindHalfAdder).(*HalfAdder) }

// FullAdder returns the payload of a full adder.
func (g *Gate) FullAdder() *FullAdder { return g.must(KindFullAdder).(*FullAdder) }

// Latch returns the payload of a latch.
func (g *Gate) Latch() *Latch { return g.must(KindLatch).(*Latch) }

// DFlipFlop returns the payload of a D flip-flop.
func (g *Gate) DFlipFlop() *DFlipFlop { return g.must(KindDFlipFlop).(*DFlipFlop) }

// Div2 returns the payload of a divide by 2 circuit.
func (g *Gate) Div2() *Div2 { return g.must(KindDiv2).(*Div2) }

// Counter returns the payload of a counter.
func (g *Gate) Counter() *Counter { return g.must(KindCounter).(*Counter) }

// evaluate runs the evaluation function of g. Compound gates have none: they
// only forward values through their wiring.
//
func (c *Circuit) evaluate(g *Gate) {
	if g.payload == nil {
		return
	}
	switch g.kind {
	case KindNot:
		p := g.payload.(*Not)
		c.Set(p.B, c.Value(p.A).Not())
	case KindAnd:
		p := g.payload.(*Gate2)
		c.Set(p.C, Bool(c.Value(p.A).IsHigh() && c.Value(p.B).IsHigh()))
	case KindOr:
		p := g.payload.(*Gate2)
		c.Set(p.C, Bool(c.Value(p.A).IsHigh() || c.Value(p.B).IsHigh()))
	case KindNand:
		p := g.payload.(*Gate2)
		c.Set(p.C, Bool(!(c.Value(p.A).IsHigh() && c.Value(p.B).IsHigh())))
	case KindDFlipFlop:
		g.payload.(*DFlipFlop).evaluate(c)
	}
}
