// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import "strconv"

// An Event is emitted whenever a monitored wire changes value.
//
type Event struct {
	Gate  string // name of the gate owning the wire
	Wire  string // wire name
	Value TriState
}

// String formats the event the way the demo program prints it.
//
func (e Event) String() string {
	return "Connector " + e.Gate + "-" + e.Wire + " set to " + e.Value.String()
}

// GoString is used by the %#v verb, mostly in test failures.
func (e Event) GoString() string {
	return "Event{" + strconv.Quote(e.Gate) + ", " + strconv.Quote(e.Wire) + ", " + e.Value.String() + "}"
}

// Observer receives events for monitored wires. Observe is called
// synchronously from within Circuit.Set and must not call Set itself.
//
type Observer interface {
	Observe(e Event)
}

// ObserverFunc adapts a function to the Observer interface.
//
type ObserverFunc func(e Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) { f(e) }

type nopObserver struct{}

func (nopObserver) Observe(Event) {}
