package logicsim_test

import (
	"testing"

	ls "github.com/db47h/logicsim"
	"github.com/db47h/logicsim/hwtest"
)

func bit(s string, i int) ls.TriState {
	return ls.Bool(s[i] == '1')
}

func Test_adder4(t *testing.T) {
	td := []struct {
		a, b, want string // want is Cout S3 S2 S1 S0
	}{
		{"1110", "0010", "10000"},
		{"0011", "0101", "01000"},
		{"1111", "0001", "10000"},
		{"0000", "0000", "00000"},
		{"1010", "0101", "01111"},
	}
	for _, d := range td {
		t.Run(d.a+"+"+d.b, func(t *testing.T) {
			var rec hwtest.Recorder
			c := ls.New(ls.WithObserver(&rec))
			var f [4]*ls.FullAdder
			for i := range f {
				f[i] = c.FullAdder("F" + string(rune('0'+i))).FullAdder()
				if i > 0 {
					if err := c.Connect(f[i-1].Cout, f[i].Cin); err != nil {
						t.Fatal(err)
					}
				}
			}
			c.Set(f[0].Cin, ls.Low)
			for i := range f {
				c.Set(f[i].A, bit(d.a, 3-i))
				c.Set(f[i].B, bit(d.b, 3-i))
			}
			got := []byte{c.Value(f[3].Cout).String()[0]}
			for i := 3; i >= 0; i-- {
				got = append(got, c.Value(f[i].S).String()[0])
			}
			if string(got) != d.want {
				t.Fatalf("expected %s, got %s", d.want, got)
			}
			// full adder wires are monitored
			if e, ok := rec.Last("F0", "S"); !ok || e.Value != bit(d.want, 4) {
				t.Fatalf("unexpected last event for F0-S: %v", e)
			}
		})
	}
}
