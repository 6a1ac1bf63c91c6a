package hwlib_test

import (
	"testing"
	"testing/quick"

	ls "github.com/db47h/logicsim"
	hl "github.com/db47h/logicsim/hwlib"
	"github.com/db47h/logicsim/hwtest"
	"github.com/pkg/errors"
)

func TestMux(t *testing.T) {
	c := ls.New()
	m := hl.NewMux(c, "mux")
	hwtest.TruthTable(t, c,
		[]ls.Wire{m.A, m.B, m.Sel},
		[]ls.Wire{m.Out},
		[][]ls.TriState{hwtest.Bools("00011011")})
}

func TestDMux(t *testing.T) {
	c := ls.New()
	m := hl.NewDMux(c, "dmux")
	hwtest.TruthTable(t, c,
		[]ls.Wire{m.In, m.Sel},
		[]ls.Wire{m.A, m.B},
		[][]ls.TriState{hwtest.Bools("0010"), hwtest.Bools("0001")})
}

func TestMuxN(t *testing.T) {
	c := ls.New()
	m, err := hl.NewMuxN(c, "mux", 4)
	if err != nil {
		t.Fatal(err)
	}
	f := func(x, y uint8, sel bool) bool {
		x, y = x&0xf, y&0xf
		hl.SetUint64(c, m.A, uint64(x))
		hl.SetUint64(c, m.B, uint64(y))
		c.Set(m.Sel, ls.Bool(sel))
		want := x
		if sel {
			want = y
		}
		return hl.Uint64(c, m.Out) == uint64(want)
	}
	if err = quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestMuxN_size(t *testing.T) {
	c := ls.New()
	if _, err := hl.NewMuxN(c, "ok", ls.MaxFanout); err != nil {
		t.Fatal(err)
	}
	for _, bits := range []int{0, ls.MaxFanout + 1} {
		_, err := hl.NewMuxN(c, "bad", bits)
		if errors.Cause(err) != ls.ErrFanoutOverflow {
			t.Errorf("%d bits: expected fan-out overflow, got %v", bits, err)
		}
	}
}
