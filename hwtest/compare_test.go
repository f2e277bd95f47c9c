package hwtest_test

import (
	"strings"
	"testing"

	ns "github.com/db47h/nandsim"
	"github.com/db47h/nandsim/hwtest"
)

func TestCompareFunc(t *testing.T) {
	c := ns.New()
	a, b := c.NewSignal(), c.NewSignal()
	// custom OR
	out := c.Nand(c.Nand(a, a, ns.NC), c.Nand(b, b, ns.NC), ns.NC)
	hwtest.CompareFunc(t, c, []ns.Word{{a}, {b}}, []ns.Word{{out}}, func(in []uint64) []uint64 {
		return []uint64{in[0] | in[1]}
	})
}

func TestEval(t *testing.T) {
	c := ns.New()
	a := c.NewWord(4)
	out := make(ns.Word, len(a))
	for i := range a {
		out[i] = c.Nand(a[i], a[i], ns.NC)
	}
	res, err := hwtest.Eval(c, []ns.Word{a}, []uint64{5}, []ns.Word{out})
	if err != nil {
		t.Fatal(err)
	}
	if res[0] != 10 {
		t.Fatalf("NOT(5) = %d, expected 10", res[0])
	}
	if c.Tics() != 1 {
		t.Fatalf("Eval did not commit")
	}

	if _, err = hwtest.Eval(c, nil, nil, []ns.Word{out}); err == nil || !strings.Contains(err.Error(), "unknown") {
		t.Fatalf("expected an unknown output error, got %v", err)
	}
	if _, err = hwtest.Eval(c, []ns.Word{a}, nil, nil); err == nil {
		t.Fatal("expected an error")
	}
}

func TestEval_recover(t *testing.T) {
	c := ns.New()
	a := c.NewWord(2)
	out := make(ns.Word, len(a))
	for i := range a {
		out[i] = c.Nand(a[i], a[i], ns.NC)
	}
	// the same word driven twice with different values
	if _, err := hwtest.Eval(c, []ns.Word{a, a}, []uint64{2, 1}, []ns.Word{out}); err == nil {
		t.Fatal("expected a conflict")
	}
	if c.Tics() != 0 {
		t.Fatal("failed Eval committed")
	}
	res, err := hwtest.Eval(c, []ns.Word{a}, []uint64{1}, []ns.Word{out})
	if err != nil {
		t.Fatal(err)
	}
	if res[0] != 2 {
		t.Fatalf("NOT(1) = %d, expected 2", res[0])
	}
}

func TestTic(t *testing.T) {
	c := ns.New()
	loop := c.NewSignal()
	l := c.Latch(c.Nand(loop, loop, ns.NC), ns.True, loop)
	for i := 0; i < 3; i++ {
		if err := hwtest.Tic(c); err != nil {
			t.Fatal(err)
		}
	}
	if !l.State() {
		t.Fatal("latch did not toggle")
	}
}
