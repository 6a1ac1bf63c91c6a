// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// MaxFanout is the maximum number of wires a wire can be connected to.
//
const MaxFanout = 10

// A Wire is a wire number in a circuit. Wire numbers are obtained from the
// gates that own them (i.e. g.Not().A) and are only meaningful for the circuit
// that allocated them.
//
type Wire int

type fanout struct {
	w [MaxFanout]Wire
	n int
}

func (f *fanout) list() []Wire { return f.w[:f.n] }

type wire struct {
	value     TriState
	owner     int // gate number
	name      string
	activates bool // evaluate owner on change
	monitor   bool // send an Event on change
	fanout    fanout
}

// An Option configures a Circuit.
//
type Option func(c *Circuit)

// WithObserver sets the Observer that receives events for monitored wires.
//
func WithObserver(o Observer) Option {
	return func(c *Circuit) {
		if o == nil {
			o = nopObserver{}
		}
		c.obs = o
	}
}

// WithLogger overrides the package logger for this circuit.
//
func WithLogger(l *zap.Logger) Option {
	return func(c *Circuit) {
		if l != nil {
			c.log = l
		}
	}
}

// WithWireLimit limits the number of wires that can be allocated in the
// circuit. Allocating more wires than the limit raises ErrOutOfMemory.
// A limit <= 0 means no limit.
//
func WithWireLimit(n int) Option {
	return func(c *Circuit) { c.limit = n }
}

// Circuit is the arena holding all wires and gates of a simulation.
//
// A Circuit is not safe for concurrent use. Hosts driving it from several
// goroutines must serialize all calls to Set.
//
type Circuit struct {
	wires []wire
	gates []*Gate // all gates, in construction order
	limit int
	obs   Observer
	log   *zap.Logger
}

// New returns a new empty circuit.
//
func New(opts ...Option) *Circuit {
	c := &Circuit{obs: nopObserver{}, log: Logger()}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Dispose releases all wires and gates in the circuit. The circuit and its
// gates must not be used afterwards.
//
func (c *Circuit) Dispose() {
	for _, g := range c.gates {
		g.payload = nil
		g.parts = nil
		g.parent = nil
	}
	c.wires = nil
	c.gates = nil
}

// Size returns the number of wires in the circuit.
//
func (c *Circuit) Size() int { return len(c.wires) }

// Gates returns the top level gates of the circuit (gates that are not part
// of another gate), in construction order.
//
func (c *Circuit) Gates() []*Gate {
	var gs []*Gate
	for _, g := range c.gates {
		if g.parent == nil {
			gs = append(gs, g)
		}
	}
	return gs
}

// allocWire allocates a new wire owned by g and returns its number.
//
func (c *Circuit) allocWire(g *Gate, name string, activates, monitor bool) Wire {
	if c.limit > 0 && len(c.wires) >= c.limit {
		panic(errors.Wrapf(ErrOutOfMemory, "allocate wire %s.%s: limit of %d wires reached", g.Path(), name, c.limit))
	}
	n := Wire(len(c.wires))
	c.wires = append(c.wires, wire{
		owner:     g.id,
		name:      name,
		activates: activates,
		monitor:   monitor,
	})
	g.pins = append(g.pins, n)
	return n
}

func (c *Circuit) valid(n Wire) bool {
	return n >= 0 && int(n) < len(c.wires)
}

// wire returns the wire numbered n. It panics if there is no such wire.
//
func (c *Circuit) wire(n Wire) *wire {
	if !c.valid(n) {
		panic(errors.Errorf("wire %d does not exist", n))
	}
	return &c.wires[n]
}

func (c *Circuit) wireName(n Wire) string {
	if !c.valid(n) {
		return "#" + strconv.Itoa(int(n))
	}
	w := &c.wires[n]
	return c.gates[w.owner].Path() + "." + w.name
}

// Connect connects wire n to the given wires: whenever n changes value, the
// new value is propagated to each of them, in the given order. Calling
// Connect again replaces the previous connections.
//
// It returns an error whose cause is ErrFanoutOverflow if more than
// MaxFanout wires are given, in which case the existing connections are left
// unchanged.
//
func (c *Circuit) Connect(n Wire, to ...Wire) error {
	if !c.valid(n) {
		return errors.Errorf("connect: wire %d does not exist", n)
	}
	if len(to) > MaxFanout {
		return errors.Wrapf(ErrFanoutOverflow, "connect %s to %d wires (max %d)", c.wireName(n), len(to), MaxFanout)
	}
	for _, t := range to {
		if !c.valid(t) {
			return errors.Errorf("connect %s: wire %d does not exist", c.wireName(n), t)
		}
	}
	f := &c.wires[n].fanout
	f.n = copy(f.w[:], to)
	return nil
}

// mustConnect is Connect for internal wiring. Errors there are bugs.
//
func (c *Circuit) mustConnect(n Wire, to ...Wire) {
	if err := c.Connect(n, to...); err != nil {
		panic(err)
	}
}

// Set sets the value of wire n.
//
// If the value does not change, Set returns immediately. Otherwise, after
// updating the value, Set evaluates the gate owning n if n activates it,
// notifies the circuit's Observer if n is monitored, then sets every wire n is
// connected to, in connection order, to the same value. Propagation is depth
// first and runs to completion before Set returns.
//
func (c *Circuit) Set(n Wire, v TriState) {
	w := c.wire(n)
	if w.value == v {
		return
	}
	w.value = v
	g := c.gates[w.owner]
	if ce := c.log.Check(zap.DebugLevel, "set"); ce != nil {
		ce.Write(zap.String("gate", g.Path()), zap.String("wire", w.name), zap.Stringer("value", v))
	}
	if w.activates {
		c.evaluate(g)
	}
	if w.monitor {
		c.obs.Observe(Event{Gate: g.name, Wire: w.name, Value: v})
	}
	for _, f := range w.fanout.list() {
		c.Set(f, v)
	}
}

// init sets the initial value of a wire without any side effect.
//
func (c *Circuit) init(n Wire, v TriState) {
	c.wire(n).value = v
}

// Value returns the current value of wire n.
//
func (c *Circuit) Value(n Wire) TriState {
	return c.wire(n).value
}

// Name returns the name of wire n.
//
func (c *Circuit) Name(n Wire) string {
	return c.wire(n).name
}

// Owner returns the gate owning wire n.
//
func (c *Circuit) Owner(n Wire) *Gate {
	return c.gates[c.wire(n).owner]
}

// Fanout returns a copy of the list of wires n is connected to.
//
func (c *Circuit) Fanout(n Wire) []Wire {
	l := c.wire(n).fanout.list()
	out := make([]Wire, len(l))
	copy(out, l)
	return out
}

// Activates returns true if a change of wire n triggers the evaluation of its
// owner.
//
func (c *Circuit) Activates(n Wire) bool { return c.wire(n).activates }

// SetActivates sets whether a change of wire n triggers the evaluation of its
// owner.
//
func (c *Circuit) SetActivates(n Wire, on bool) { c.wire(n).activates = on }

// Monitored returns true if changes of wire n are sent to the observer.
//
func (c *Circuit) Monitored(n Wire) bool { return c.wire(n).monitor }

// Monitor sets whether changes of wire n are sent to the observer.
//
func (c *Circuit) Monitor(n Wire, on bool) { c.wire(n).monitor = on }
