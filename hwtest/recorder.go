// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtest

import (
	"github.com/db47h/logicsim"
)

// A Recorder is a logicsim.Observer that records every event it receives.
//
type Recorder struct {
	Events []logicsim.Event
}

// Observe implements logicsim.Observer.
//
func (r *Recorder) Observe(e logicsim.Event) {
	r.Events = append(r.Events, e)
}

// Reset discards all recorded events.
//
func (r *Recorder) Reset() { r.Events = r.Events[:0] }

// Filter returns the events for the given gate and wire names. An empty name
// matches any gate or wire.
//
func (r *Recorder) Filter(gate, wire string) []logicsim.Event {
	var out []logicsim.Event
	for _, e := range r.Events {
		if (gate == "" || e.Gate == gate) && (wire == "" || e.Wire == wire) {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of events for the given gate and wire names.
//
func (r *Recorder) Count(gate, wire string) int {
	return len(r.Filter(gate, wire))
}

// Values returns the successive values of the given wire as a string of
// '0', '1' and 'X', i.e. "0101".
//
func (r *Recorder) Values(gate, wire string) string {
	ev := r.Filter(gate, wire)
	b := make([]byte, 0, len(ev))
	for _, e := range ev {
		b = append(b, e.Value.String()...)
	}
	return string(b)
}

// Last returns the last event for the given gate and wire names.
//
func (r *Recorder) Last(gate, wire string) (logicsim.Event, bool) {
	ev := r.Filter(gate, wire)
	if len(ev) == 0 {
		return logicsim.Event{}, false
	}
	return ev[len(ev)-1], true
}
