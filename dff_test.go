package logicsim_test

import (
	"testing"

	ls "github.com/db47h/logicsim"
	"github.com/db47h/logicsim/hwtest"
)

func TestDFlipFlop(t *testing.T) {
	c := ls.New()
	g := c.DFlipFlop("ff")
	ff := g.DFlipFlop()
	if v := c.Value(ff.Q); v != ls.Low {
		t.Fatalf("Q must start Low, got %v", v)
	}
	if ff.Prev() != ls.Unknown {
		t.Fatalf("clock memory must start Unknown, got %v", ff.Prev())
	}

	c.Set(ff.D, ls.High)
	td := []struct {
		c, q ls.TriState
	}{
		{ls.Low, ls.Low},
		{ls.High, ls.Low},
		{ls.Low, ls.High}, // falling edge
		{ls.High, ls.High},
	}
	for i, d := range td {
		c.Set(ff.C, d.c)
		if v := c.Value(ff.Q); v != d.q {
			t.Fatalf("step %d: C = %v, expected Q = %v, got %v", i, d.c, d.q, v)
		}
		if ff.Prev() != d.c {
			t.Fatalf("step %d: expected clock memory %v, got %v", i, d.c, ff.Prev())
		}
	}

	// D changes while the clock is High are ignored until the next falling edge.
	c.Set(ff.D, ls.Low)
	if v := c.Value(ff.Q); v != ls.High {
		t.Fatalf("Q changed without a clock edge")
	}
	c.Set(ff.C, ls.Low)
	if v := c.Value(ff.Q); v != ls.Low {
		t.Fatalf("expected Q = 0 after falling edge, got %v", v)
	}
	// rising edge
	c.Set(ff.D, ls.High)
	c.Set(ff.C, ls.High)
	if v := c.Value(ff.Q); v != ls.Low {
		t.Fatalf("Q changed on a rising edge")
	}
}

func pulse(c *ls.Circuit, w ls.Wire) {
	c.Set(w, ls.Low)
	c.Set(w, ls.High)
}

func TestLatch(t *testing.T) {
	var rec hwtest.Recorder
	c := ls.New(ls.WithObserver(&rec))
	l := c.Latch("L").Latch()

	c.Set(l.A, ls.High)
	c.Set(l.B, ls.High)
	if v := c.Value(l.Q); v != ls.High {
		t.Fatalf("expected Q = 1 after init, got %v", v)
	}
	// Q goes Low while the loop settles, then gets the stale High value
	// propagated from N1.C.
	if s := rec.Values("L", "Q"); s != "01" {
		t.Fatalf("expected init events 01, got %s", s)
	}
	if v := c.Value(l.N1.Gate2().C); v != ls.Low {
		t.Fatalf("expected N1.C = 0 after init, got %v", v)
	}

	// the first pulse on A settles the loop without changing Q
	rec.Reset()
	pulse(c, l.B)
	pulse(c, l.A)
	if v := c.Value(l.Q); v != ls.High || len(rec.Events) != 0 {
		t.Fatalf("expected Q = 1 and no events, got %v and %v", v, rec.Events)
	}
	if v := c.Value(l.N1.Gate2().C); v != ls.High {
		t.Fatalf("expected N1.C = 1, got %v", v)
	}

	td := []struct {
		in     ls.Wire
		q      ls.TriState
		events int
	}{
		{l.B, ls.Low, 1},  // reset
		{l.B, ls.Low, 0},  // hold
		{l.A, ls.High, 1}, // set
		{l.A, ls.High, 0}, // hold
		{l.B, ls.Low, 1},
		{l.A, ls.High, 1},
	}
	for i, d := range td {
		rec.Reset()
		pulse(c, d.in)
		if v := c.Value(l.Q); v != d.q {
			t.Fatalf("step %d: expected Q = %v, got %v", i, d.q, v)
		}
		if n := rec.Count("L", "Q"); n != d.events {
			t.Fatalf("step %d: expected %d events, got %d: %v", i, d.events, n, rec.Events)
		}
	}
}

func TestDiv2(t *testing.T) {
	for n := 0; n < 12; n++ {
		var rec hwtest.Recorder
		c := ls.New(ls.WithObserver(&rec))
		g := c.Div2("D")
		d := g.Div2()
		if v := c.Value(d.Q); v != ls.Low {
			t.Fatalf("Q must start Low, got %v", v)
		}
		if !c.Activates(d.DFF.DFlipFlop().Q) {
			t.Fatal("flip-flop Q must activate it")
		}

		c.Set(d.C, ls.Low)
		clk := ls.Low
		for i := 0; i < n; i++ {
			clk = clk.Not()
			c.Set(d.C, clk)
		}
		if cnt := rec.Count("D", "Q"); cnt != n/2 {
			t.Errorf("%d transitions: expected %d toggles, got %d", n, n/2, cnt)
		}
		want := ls.Bool((n/2)%2 == 1)
		if v := c.Value(d.Q); v != want {
			t.Errorf("%d transitions: expected Q = %v, got %v", n, want, v)
		}
		// D always holds the inverted output once stable
		if v := c.Value(d.DFF.DFlipFlop().D); v != want.Not() {
			t.Errorf("%d transitions: expected D = %v, got %v", n, want.Not(), v)
		}
	}
}

func TestCounter(t *testing.T) {
	c := ls.New()
	g := c.Counter("cnt")
	cnt := g.Counter()
	value := func() int {
		var v int
		for i, q := range cnt.Q() {
			if c.Value(q).IsHigh() {
				v |= 1 << uint(i)
			}
		}
		return v
	}

	for i, b := range cnt.B {
		if b.Name() != "B"+string(rune('0'+i)) || b.Parent() != g {
			t.Fatalf("unexpected bit gate %v", b)
		}
	}
	if cnt.Clock() != cnt.B[0].Div2().C {
		t.Fatal("the counter clock must be B0.C")
	}

	c.Set(cnt.Clock(), ls.High)
	if v := value(); v != 0 {
		t.Fatalf("expected 0 after init, got %d", v)
	}
	for i := 1; i <= 33; i++ {
		pulse(c, cnt.Clock())
		if v := value(); v != i%16 {
			t.Fatalf("after %d pulses: expected %d, got %d", i, i%16, v)
		}
	}
}
