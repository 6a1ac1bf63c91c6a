/*
Package logicsim provides an event driven digital logic simulator.

A Circuit holds wires and gates. Wires carry a TriState value (Unknown, Low or
High) and can be connected to up to MaxFanout other wires. Setting a wire with
Circuit.Set propagates the new value, depth first, to every connected wire and
evaluates the gates whose inputs changed, until the whole circuit is stable.
Setting a wire to the value it already holds does nothing, which is what
stops propagation in circuits with feedback loops like latches.

Primitive gates (Not, And, Or, Nand) are composed into larger circuits only by
connecting wires: Xor, HalfAdder and FullAdder are combinational, Latch and
DFlipFlop hold state, and Div2 and Counter are clocked circuits with feedback.

	c := logicsim.New(logicsim.WithObserver(logicsim.ObserverFunc(func(e logicsim.Event) {
		fmt.Println(e)
	})))
	x := c.Xor("X1").Xor()
	c.Monitor(x.C, true)
	c.Set(x.A, logicsim.High)
	c.Set(x.B, logicsim.Low)

There is no timing model: propagation is instantaneous and a Circuit must
only be used by one goroutine at a time.
*/
package logicsim
