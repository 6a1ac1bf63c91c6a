package logicsim_test

import (
	"testing"

	ls "github.com/db47h/logicsim"
	"github.com/db47h/logicsim/hwtest"
)

func Test_gates(t *testing.T) {
	td := []struct {
		name string
		gate func(c *ls.Circuit) (in, out []ls.Wire)
		want []string
	}{
		{"NOT", func(c *ls.Circuit) ([]ls.Wire, []ls.Wire) {
			g := c.Not("N").Not()
			return []ls.Wire{g.A}, []ls.Wire{g.B}
		}, []string{"10"}},
		{"AND", gate2((*ls.Circuit).And), []string{"0001"}},
		{"OR", gate2((*ls.Circuit).Or), []string{"0111"}},
		{"NAND", gate2((*ls.Circuit).Nand), []string{"1110"}},
		{"XOR", func(c *ls.Circuit) ([]ls.Wire, []ls.Wire) {
			g := c.Xor("X").Xor()
			return []ls.Wire{g.A, g.B}, []ls.Wire{g.C}
		}, []string{"0110"}},
		{"HalfAdder", func(c *ls.Circuit) ([]ls.Wire, []ls.Wire) {
			g := c.HalfAdder("H").HalfAdder()
			return []ls.Wire{g.A, g.B}, []ls.Wire{g.S, g.C}
		}, []string{"0110", "0001"}},
		{"FullAdder", func(c *ls.Circuit) ([]ls.Wire, []ls.Wire) {
			g := c.FullAdder("F").FullAdder()
			return []ls.Wire{g.A, g.B, g.Cin}, []ls.Wire{g.S, g.Cout}
		}, []string{"01101001", "00010111"}},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			c := ls.New()
			in, out := d.gate(c)
			want := make([][]ls.TriState, len(d.want))
			for i, s := range d.want {
				want[i] = hwtest.Bools(s)
			}
			hwtest.TruthTable(t, c, in, out, want)
		})
	}
}

func gate2(fn func(c *ls.Circuit, name string) *ls.Gate) func(c *ls.Circuit) ([]ls.Wire, []ls.Wire) {
	return func(c *ls.Circuit) ([]ls.Wire, []ls.Wire) {
		g := fn(c, "G").Gate2()
		return []ls.Wire{g.A, g.B}, []ls.Wire{g.C}
	}
}

// Unknown inputs read as Low, except for NOT.
func Test_gates_unknown(t *testing.T) {
	c := ls.New()
	not := c.Not("N").Not()
	and := c.And("A").Gate2()
	or := c.Or("O").Gate2()
	nand := c.Nand("NA").Gate2()

	c.Set(not.A, ls.Unknown) // no change, no evaluation
	if v := c.Value(not.B); v != ls.Unknown {
		t.Fatalf("NOT evaluated on a no-op Set: %v", v)
	}
	c.Set(and.A, ls.High)
	c.Set(or.A, ls.Low)
	c.Set(nand.A, ls.High)
	for _, d := range []struct {
		name string
		w    ls.Wire
		want ls.TriState
	}{
		{"AND(1, X)", and.C, ls.Low},
		{"OR(0, X)", or.C, ls.Low},
		{"NAND(1, X)", nand.C, ls.High},
	} {
		if v := c.Value(d.w); v != d.want {
			t.Errorf("%s: expected %v, got %v", d.name, d.want, v)
		}
	}
	c.Set(not.A, ls.High)
	c.Set(not.A, ls.Unknown)
	if v := c.Value(not.B); v != ls.High {
		t.Errorf("NOT(X): expected 1, got %v", v)
	}
}

// Xor events match the demo program output.
func Test_xor_events(t *testing.T) {
	var rec hwtest.Recorder
	c := ls.New(ls.WithObserver(&rec))
	x := c.Xor("X1").Xor()
	c.Monitor(x.C, true)
	wires := []ls.Wire{x.A, x.B, x.A, x.B}
	for i, v := range hwtest.Bools("0110") {
		c.Set(wires[i], v)
	}
	if s := rec.Values("X1", "C"); s != "0101" {
		t.Fatalf("expected 0101, got %s", s)
	}
}
