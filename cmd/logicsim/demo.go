// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/hwlib"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// env is the environment shared by all demos.
//
type env struct {
	in    *bufio.Scanner
	out   io.Writer
	a, b  string // adder4 operands
	watch string // extra wires to monitor, see Circuit.LookupAll
}

// circuit returns a new circuit printing monitored wire changes to e.out.
//
func (e *env) circuit() *logicsim.Circuit {
	return logicsim.New(logicsim.WithObserver(logicsim.ObserverFunc(func(ev logicsim.Event) {
		fmt.Fprintln(e.out, ev)
	})))
}

// monitor enables monitoring of the wires listed in e.watch. Paths that do not
// resolve in c are skipped: they usually belong to another demo.
//
func (e *env) monitor(c *logicsim.Circuit) {
	for _, p := range strings.Split(e.watch, ",") {
		if strings.TrimSpace(p) == "" {
			continue
		}
		ws, err := c.LookupAll(p)
		if err != nil {
			logicsim.Logger().Debug("watch", zap.Error(err))
			continue
		}
		for _, w := range ws {
			c.Monitor(w, true)
		}
	}
}

// readLine prints prompt and returns the next line of input, trimmed. ok is
// false at EOF.
//
func (e *env) readLine(prompt string) (line string, ok bool, err error) {
	fmt.Fprint(e.out, prompt)
	if !e.in.Scan() {
		return "", false, e.in.Err()
	}
	return strings.TrimSpace(e.in.Text()), true, nil
}

type demo struct {
	name    string
	title   string
	run     func(e *env) error
	session func(e *env) *session // interactive version, if any
}

var demos = []demo{
	{"not", "Not output", demoNot, nil},
	{"and", "And output", demoAnd, nil},
	{"or", "Or output", demoOr, nil},
	{"nandchain", "Nand output: connecting AND to NOT", demoNandChain, nil},
	{"xor", "Xor output", demoXor, nil},
	{"halfadder", "Half Adder output", demoHalfAdder, nil},
	{"adder4", "4 bits adder output", demoAdder4, adderSession},
	{"nand", "Nand output", demoNand, nil},
	{"latch", "Latch output", demoLatch, latchSession},
	{"div2", "DivBy2 output", demoDiv2, div2Session},
	{"counter", "Counter output", demoCounter, counterSession},
}

func demoNames() []string {
	names := make([]string, len(demos))
	for i := range demos {
		names[i] = demos[i].name
	}
	return names
}

// selectDemos returns the demos with the given names, in order. "all" selects
// every demo.
//
func selectDemos(names []string) ([]demo, error) {
	var sel []demo
	for _, n := range names {
		if n == "all" {
			sel = append(sel, demos...)
			continue
		}
		found := false
		for _, d := range demos {
			if d.name == n {
				sel = append(sel, d)
				found = true
				break
			}
		}
		if !found {
			return nil, errors.Errorf("unknown demo %q", n)
		}
	}
	// wrap run so that every demo gets a heading
	for i := range sel {
		d := sel[i]
		sel[i].run = func(e *env) error {
			fmt.Fprintf(e.out, "\n%s\n", d.title)
			err := d.run(e)
			fmt.Fprintln(e.out)
			return err
		}
	}
	return sel, nil
}

func demoNot(e *env) error {
	c := e.circuit()
	n := c.Not("N1").Not()
	c.Monitor(n.B, true)
	e.monitor(c)
	c.Set(n.A, logicsim.Low)
	c.Set(n.A, logicsim.High)
	return nil
}

func demoAnd(e *env) error {
	c := e.circuit()
	g := c.And("A1").Gate2()
	c.Monitor(g.C, true)
	e.monitor(c)
	c.Set(g.A, logicsim.High)
	c.Set(g.B, logicsim.High)
	c.Set(g.A, logicsim.Low)
	return nil
}

func demoOr(e *env) error {
	c := e.circuit()
	g := c.Or("O1").Gate2()
	c.Monitor(g.C, true)
	e.monitor(c)
	c.Set(g.A, logicsim.Low)
	c.Set(g.B, logicsim.High)
	return nil
}

func demoNandChain(e *env) error {
	c := e.circuit()
	a := c.And("A1").Gate2()
	n := c.Not("N1").Not()
	c.Monitor(a.C, true)
	if err := c.Connect(a.C, n.A); err != nil {
		return err
	}
	c.Monitor(n.B, true)
	e.monitor(c)
	c.Set(a.B, logicsim.High)
	c.Set(a.A, logicsim.High)
	return nil
}

func demoXor(e *env) error {
	c := e.circuit()
	x := c.Xor("X1").Xor()
	c.Monitor(x.C, true)
	e.monitor(c)
	c.Set(x.A, logicsim.Low)
	c.Set(x.B, logicsim.High)
	c.Set(x.A, logicsim.High)
	c.Set(x.B, logicsim.Low)
	return nil
}

func demoHalfAdder(e *env) error {
	c := e.circuit()
	h := c.HalfAdder("H1").HalfAdder()
	c.Monitor(h.S, true)
	c.Monitor(h.C, true)
	e.monitor(c)
	c.Set(h.A, logicsim.Low)
	c.Set(h.B, logicsim.Low)
	c.Set(h.B, logicsim.High)
	c.Set(h.A, logicsim.High)
	return nil
}

func spaced(bits string) string {
	return strings.Join(strings.Split(bits, ""), " ")
}

func newAdder(c *logicsim.Circuit, a, b string) (*hwlib.Adder, error) {
	if len(a) == 0 || len(a) != len(b) {
		return nil, errors.Errorf("operands %q and %q must have the same non-zero length", a, b)
	}
	return hwlib.NewAdder(c, "F", len(a)), nil
}

func demoAdder4(e *env) error {
	c := e.circuit()
	add, err := newAdder(c, e.a, e.b)
	if err != nil {
		return err
	}
	e.monitor(c)
	if err = add.Add(e.a, e.b); err != nil {
		return err
	}
	fmt.Fprintf(e.out, "\n%s\n", spaced(add.Result()))
	return nil
}

func demoNand(e *env) error {
	c := e.circuit()
	g := c.Nand("A1").Gate2()
	c.Monitor(g.C, true)
	e.monitor(c)
	c.Set(g.A, logicsim.High)
	c.Set(g.B, logicsim.High)
	c.Set(g.A, logicsim.Low)
	return nil
}

func pulse(c *logicsim.Circuit, w logicsim.Wire) {
	c.Set(w, logicsim.Low)
	c.Set(w, logicsim.High)
}

func demoLatch(e *env) error {
	c := e.circuit()
	l := c.Latch("ff1").Latch()
	e.monitor(c)
	c.Set(l.A, logicsim.High)
	c.Set(l.B, logicsim.High)
	for {
		line, ok, err := e.readLine("\nInput A or B to drop: ")
		if !ok {
			return err
		}
		switch strings.ToLower(line) {
		case "a":
			pulse(c, l.A)
		case "b":
			pulse(c, l.B)
		default:
			return nil
		}
	}
}

func demoDiv2(e *env) error {
	c := e.circuit()
	x := c.Div2("X").Div2()
	e.monitor(c)
	k := hwlib.NewClock(c, x.C)
	k.Set(logicsim.Low)
	for {
		line, ok, err := e.readLine(fmt.Sprintf("Clock is %v. Hit return to toggle clock ", k.Level()))
		if !ok || line != "" {
			return err
		}
		k.Toggle()
	}
}

func demoCounter(e *env) error {
	c := e.circuit()
	g := c.Counter("x")
	e.monitor(c)
	k := hwlib.NewClock(c, g.Counter().Clock())
	k.Set(logicsim.High)
	for {
		fmt.Fprintf(e.out, "Count is %s\n", spaced(hwlib.Bits(c, g.Counter().Q())))
		line, ok, err := e.readLine("Hit return to pulse the clock ")
		if !ok || line != "" {
			return err
		}
		k.Pulse()
	}
}
