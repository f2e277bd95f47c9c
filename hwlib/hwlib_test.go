package hwlib_test

import (
	"testing"

	ns "github.com/db47h/nandsim"
	hl "github.com/db47h/nandsim/hwlib"
	"github.com/db47h/nandsim/hwtest"
)

// a gate builder wires a gate with the given inputs and returns its outputs.
type gateFn func(c *ns.Circuit, in []ns.Signal) []ns.Signal

func testGate(t *testing.T, name string, nIn int, gate gateFn, result [][]bool) {
	t.Helper()
	c := ns.New()
	inputs := c.NewWord(nIn)
	outputs := gate(c, inputs)
	tot := 1 << uint(nIn)
	for i := 0; i < tot; i++ {
		if err := c.DriveWord(inputs, uint64(i)); err != nil {
			t.Fatal(err)
		}
		if err := c.Settle(); err != nil {
			t.Fatal(err)
		}
		for o, out := range outputs {
			exp := ns.Bool(result[o][i])
			if got := c.Get(out); got != exp {
				t.Errorf("%s %s = %v, got %v", name, inputs.Format(c), exp, got)
			}
		}
		if err := c.Commit(); err != nil {
			t.Fatal(err)
		}
	}
}

func one(f func(c *ns.Circuit, in, out ns.Signal) ns.Signal) gateFn {
	return func(c *ns.Circuit, in []ns.Signal) []ns.Signal { return []ns.Signal{f(c, in[0], ns.NC)} }
}

func two(f func(c *ns.Circuit, a, b, out ns.Signal) ns.Signal) gateFn {
	return func(c *ns.Circuit, in []ns.Signal) []ns.Signal { return []ns.Signal{f(c, in[0], in[1], ns.NC)} }
}

func Test_gates(t *testing.T) {
	td := []struct {
		name   string
		nIn    int
		gate   gateFn
		result [][]bool // a=0 && b=0, a=0 && b=1, a=1 && b=0, a=1 && b=1
	}{
		{"NAND", 2, two(func(c *ns.Circuit, a, b, out ns.Signal) ns.Signal { return c.Nand(a, b, out) }), [][]bool{{true, true, true, false}}},
		{"NOT", 1, one(hl.Not), [][]bool{{true, false}}},
		{"AND", 2, two(hl.And), [][]bool{{false, false, false, true}}},
		{"OR", 2, two(hl.Or), [][]bool{{false, true, true, true}}},
		{"NOR", 2, two(hl.Nor), [][]bool{{true, false, false, false}}},
		{"XOR", 2, two(hl.Xor), [][]bool{{false, true, true, false}}},
		{"XNOR", 2, two(hl.Xnor), [][]bool{{true, false, false, true}}},
		{"MUX", 3, func(c *ns.Circuit, in []ns.Signal) []ns.Signal {
			return []ns.Signal{hl.Mux(c, in[0], in[1], in[2], ns.NC)}
		}, [][]bool{{false, false, false, true, true, false, true, true}}},
		{"DMUX", 2, func(c *ns.Circuit, in []ns.Signal) []ns.Signal {
			a, b := hl.DMux(c, in[0], in[1], ns.NC, ns.NC)
			return []ns.Signal{a, b}
		}, [][]bool{{false, false, true, false}, {false, false, false, true}}},
		{"HALFADDER", 2, func(c *ns.Circuit, in []ns.Signal) []ns.Signal {
			s, cy := hl.HalfAdder(c, in[0], in[1], ns.NC, ns.NC)
			return []ns.Signal{s, cy}
		}, [][]bool{{false, true, true, false}, {false, false, false, true}}},
		{"FULLADDER", 3, func(c *ns.Circuit, in []ns.Signal) []ns.Signal {
			s, cy := hl.FullAdder(c, in[0], in[1], in[2], ns.NC, ns.NC)
			return []ns.Signal{s, cy}
		}, [][]bool{
			{false, true, true, false, true, false, false, true},
			{false, false, false, true, false, true, true, true},
		}},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			testGate(t, d.name, d.nIn, d.gate, d.result)
		})
	}
}

func Test_gateN(t *testing.T) {
	td := []struct {
		name string
		gate func(c *ns.Circuit, a, b, out ns.Word) (ns.Word, error)
		ctrl func(a, b uint64) uint64
	}{
		{"AND", hl.AndN, func(a, b uint64) uint64 { return a & b }},
		{"OR", hl.OrN, func(a, b uint64) uint64 { return a | b }},
		{"NOT", func(c *ns.Circuit, a, b, out ns.Word) (ns.Word, error) { return hl.NotN(c, a, out) },
			func(a, b uint64) uint64 { return ^a }},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			c := ns.New()
			a, b := c.NewWord(8), c.NewWord(8)
			out, err := d.gate(c, a, b, nil)
			if err != nil {
				t.Fatal(err)
			}
			hwtest.CompareFunc(t, c, []ns.Word{a, b}, []ns.Word{out}, func(in []uint64) []uint64 {
				return []uint64{d.ctrl(in[0], in[1])}
			})
		})
	}
}

func TestNotN_42(t *testing.T) {
	c := ns.New()
	a := c.NewWord(8)
	out, err := hl.NotN(c, a, nil)
	if err != nil {
		t.Fatal(err)
	}
	res, err := hwtest.Eval(c, []ns.Word{a}, []uint64{42}, []ns.Word{out})
	if err != nil {
		t.Fatal(err)
	}
	if res[0] != 213 {
		t.Fatalf("NOT(42) = %d, expected 213", res[0])
	}
}

func Test_gateN_shape(t *testing.T) {
	c := ns.New()
	if _, err := hl.AndN(c, c.NewWord(8), c.NewWord(4), nil); err == nil {
		t.Fatal("expected a shape error")
	}
	if _, err := hl.OrN(c, c.NewWord(8), c.NewWord(8), c.NewWord(7)); err == nil {
		t.Fatal("expected a shape error")
	}
}
