package logicsim_test

import (
	"testing"

	ls "github.com/db47h/logicsim"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := ls.New(ls.WithLogger(zap.New(core)))
	not := c.Not("N").Not()
	if n := logs.FilterMessage("new gate").Len(); n != 1 {
		t.Fatalf("expected 1 new gate entry, got %d", n)
	}
	c.Set(not.A, ls.High)
	c.Set(not.A, ls.High)

	sets := logs.FilterMessage("set").AllUntimed()
	if len(sets) != 2 {
		t.Fatalf("expected 2 set entries, got %d", len(sets))
	}
	want := []string{"A=1", "B=0"}
	for i, e := range sets {
		m := e.ContextMap()
		if got := m["gate"].(string) + "." + m["wire"].(string); got != "N."+want[i][:1] {
			t.Errorf("entry %d: unexpected wire %s", i, got)
		}
		if got := m["value"].(string); got != want[i][2:] {
			t.Errorf("entry %d: expected value %s, got %s", i, want[i][2:], got)
		}
	}
}

func TestSetLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ls.SetLogger(zap.New(core))
	defer ls.SetLogger(nil)

	if ls.Logger().Core() != core {
		t.Fatal("SetLogger did not replace the package logger")
	}
	c := ls.New()
	c.Set(c.Not("N").Not().A, ls.Low)
	// debug entries are filtered out
	if logs.Len() != 0 {
		t.Fatalf("unexpected log entries: %v", logs.All())
	}
}
