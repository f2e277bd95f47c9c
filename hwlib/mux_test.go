package hwlib_test

import (
	"testing"

	ns "github.com/db47h/nandsim"
	hl "github.com/db47h/nandsim/hwlib"
	"github.com/db47h/nandsim/hwtest"
	"github.com/pkg/errors"
)

func TestMuxN(t *testing.T) {
	c := ns.New()
	a, b, sel := c.NewWord(8), c.NewWord(8), c.NewSignal()
	out, err := hl.MuxN(c, a, b, sel, nil)
	if err != nil {
		t.Fatal(err)
	}
	hwtest.CompareFunc(t, c, []ns.Word{a, b, {sel}}, []ns.Word{out}, func(in []uint64) []uint64 {
		if in[2] == 0 {
			return []uint64{in[0]}
		}
		return []uint64{in[1]}
	})
}

func TestMux4Way(t *testing.T) {
	c := ns.New()
	a, b, cc, d, sel := c.NewWord(8), c.NewWord(8), c.NewWord(8), c.NewWord(8), c.NewWord(2)
	out, err := hl.Mux4Way(c, a, b, cc, d, sel, nil)
	if err != nil {
		t.Fatal(err)
	}
	hwtest.CompareFunc(t, c, []ns.Word{a, b, cc, d, sel}, []ns.Word{out}, func(in []uint64) []uint64 {
		return []uint64{in[in[4]]}
	})

	_, err = hl.Mux4Way(c, a, b, cc, d, c.NewWord(3), nil)
	var se *ns.ShapeError
	if !errors.As(err, &se) || se.Port != "sel" {
		t.Fatalf("expected a shape error on sel, got %v", err)
	}
}

func TestMuxTree(t *testing.T) {
	c := ns.New()
	in := make([]ns.Word, 8)
	vals := make([]uint64, len(in))
	for i := range in {
		in[i] = c.NewWord(4)
		vals[i] = uint64(15 - i)
	}
	sel := c.NewWord(3)
	out, err := hl.MuxTree(c, in, sel, nil)
	if err != nil {
		t.Fatal(err)
	}
	for s := range in {
		res, err := hwtest.Eval(c, append(append([]ns.Word(nil), in...), sel), append(vals, uint64(s)), []ns.Word{out})
		if err != nil {
			t.Fatal(err)
		}
		if res[0] != vals[s] {
			t.Errorf("MuxTree[%d] = %d, expected %d", s, res[0], vals[s])
		}
	}

	if _, err = hl.MuxTree(c, in[:5], sel, nil); err == nil {
		t.Fatal("expected a shape error")
	}
	in[3] = c.NewWord(5)
	if _, err = hl.MuxTree(c, in, sel, nil); err == nil {
		t.Fatal("expected a shape error")
	}
}
