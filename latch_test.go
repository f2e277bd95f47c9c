package nandsim_test

import (
	"testing"

	ns "github.com/db47h/nandsim"
)

func TestLatch(t *testing.T) {
	c := ns.New()
	data, en := c.NewSignal(), c.NewSignal()
	l := c.Latch(data, en, ns.NC)

	td := []struct {
		data, en bool
		out      ns.Value // during the tic
		state    bool     // after commit
	}{
		{false, false, ns.Lo, false},
		{true, false, ns.Lo, false},
		{true, true, ns.Lo, true},
		{false, false, ns.Hi, true},
		{false, true, ns.Hi, false},
		{true, false, ns.Lo, false},
	}
	for i, d := range td {
		if err := c.Drive(data, d.data); err != nil {
			t.Fatal(err)
		}
		if err := c.Drive(en, d.en); err != nil {
			t.Fatal(err)
		}
		if err := c.Settle(); err != nil {
			t.Fatal(err)
		}
		if got := c.Get(l.Out); got != d.out {
			t.Errorf("tic %d: out = %v, expected %v", i, got, d.out)
		}
		if err := c.Commit(); err != nil {
			t.Fatal(err)
		}
		if l.State() != d.state {
			t.Errorf("tic %d: state = %v, expected %v", i, l.State(), d.state)
		}
	}
}

// A latch whose data input is its own inverted output must toggle every tic.
func TestLatch_feedback(t *testing.T) {
	c := ns.New()
	loop := c.NewSignal()
	l := c.Latch(c.Nand(loop, loop, ns.NC), ns.True, loop)
	for i := 0; i < 10; i++ {
		if err := c.Settle(); err != nil {
			t.Fatal(err)
		}
		if want := ns.Bool(i&1 != 0); c.Get(l.Out) != want {
			t.Fatalf("tic %d: out = %v, expected %v", i, c.Get(l.Out), want)
		}
		if err := c.Commit(); err != nil {
			t.Fatal(err)
		}
	}
	if c.Tics() != 10 {
		t.Fatalf("Tics() = %d", c.Tics())
	}
}

func TestLatch_load(t *testing.T) {
	c := ns.New()
	l := c.Latch(ns.NC, ns.False, ns.NC)
	l.Load(true)
	if !l.State() || !l.Pending() {
		t.Fatal("Load did not set the latch state")
	}
	if err := c.Settle(); err != nil {
		t.Fatal(err)
	}
	if c.Get(l.Out) != ns.Hi {
		t.Fatalf("out = %v after Load", c.Get(l.Out))
	}
}

// Resetting a latch input mid-tic clears its output but keeps its states.
// Only Commit advances the latch.
func TestLatch_reset(t *testing.T) {
	c := ns.New()
	data := c.NewSignal()
	l := c.Latch(data, ns.True, ns.NC)
	if err := c.Drive(data, true); err != nil {
		t.Fatal(err)
	}
	if err := c.Settle(); err != nil {
		t.Fatal(err)
	}
	if c.Get(l.Out) != ns.Lo || !l.Pending() {
		t.Fatalf("out = %v, pending = %v", c.Get(l.Out), l.Pending())
	}
	if err := c.Reset(data); err != nil {
		t.Fatal(err)
	}
	if l.State() {
		t.Fatal("reset committed the pending state")
	}
	if c.Get(l.Out) != ns.Unknown {
		t.Fatalf("out = %v after reset", c.Get(l.Out))
	}
	if err := c.Drive(data, false); err != nil {
		t.Fatal(err)
	}
	if err := c.Settle(); err != nil {
		t.Fatal(err)
	}
	if c.Get(l.Out) != ns.Lo || l.Pending() {
		t.Fatalf("out = %v, pending = %v after reset and settle", c.Get(l.Out), l.Pending())
	}
	if err := c.Commit(); err != nil {
		t.Fatal(err)
	}
	if l.State() {
		t.Fatal("latch did not take the value driven after reset")
	}
}
