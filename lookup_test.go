package logicsim_test

import (
	"reflect"
	"testing"

	ls "github.com/db47h/logicsim"
)

func TestLookup(t *testing.T) {
	c := ls.New()
	f := c.FullAdder("F0")
	c.FullAdder("F1")

	w, err := c.Lookup("F0.H1.X1.A")
	if err != nil {
		t.Fatal(err)
	}
	if w != f.FullAdder().H1.HalfAdder().X1.Xor().A {
		t.Fatalf("F0.H1.X1.A resolved to %d", w)
	}
	if w, err = c.Lookup("F1.Cout"); err != nil || c.Owner(w).Name() != "F1" {
		t.Fatalf("F1.Cout: %v, %v", c.Owner(w), err)
	}

	for _, p := range []string{"F0", "F2.S", "F0.H3.S", "F0.H1.Q", ""} {
		if _, err = c.Lookup(p); err == nil {
			t.Errorf("%q: expected an error", p)
		}
	}
}

func TestLookupAll(t *testing.T) {
	c := ls.New()
	cnt := c.Counter("cnt").Counter()
	ws, err := c.LookupAll("cnt.B[0..3].Q")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ws, cnt.Q()) {
		t.Fatalf("expected %v, got %v", cnt.Q(), ws)
	}
	ws, err = c.LookupAll("cnt.B[1..0].C, cnt.B3.Q")
	if err != nil {
		t.Fatal(err)
	}
	want := []ls.Wire{cnt.B[1].Div2().C, cnt.B[0].Div2().C, cnt.B[3].Div2().Q}
	if !reflect.DeepEqual(ws, want) {
		t.Fatalf("expected %v, got %v", want, ws)
	}
	if _, err = c.LookupAll("cnt.B[0..4].Q"); err == nil {
		t.Fatal("expected an error for B4")
	}
}

func TestExpandRange(t *testing.T) {
	td := []struct {
		in   string
		want []string
		err  bool
	}{
		{"a.b", []string{"a.b"}, false},
		{"F[0..2].S", []string{"F0.S", "F1.S", "F2.S"}, false},
		{"F[2..0].S", []string{"F2.S", "F1.S", "F0.S"}, false},
		{"x.B[1..1]", []string{"x.B1"}, false},
		{"[0..1].S", nil, true},
		{"x.[0..1].S", nil, true},
		{"F[0.2].S", nil, true},
		{"F[a..2].S", nil, true},
		{"F[0..2.S", nil, true},
		{"F[0..b].S", nil, true},
		{"F[0..9223372036854775807].S", nil, true},
		{"F[-9223372036854775808..9223372036854775807].S", nil, true},
		{"F[9223372036854775807..-9223372036854775808].S", nil, true},
		{"F[0..1024].S", nil, true},
	}
	for _, d := range td {
		got, err := ls.ExpandRange(d.in)
		if d.err && err != nil {
			t.Log(err)
		}
		if d.err {
			if err == nil {
				t.Errorf("%q: expected an error, got %v", d.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", d.in, err)
			continue
		}
		if !reflect.DeepEqual(got, d.want) {
			t.Errorf("%q: expected %v, got %v", d.in, d.want, got)
		}
	}
}
