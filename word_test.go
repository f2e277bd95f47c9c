package nandsim_test

import (
	"testing"
	"testing/quick"

	ns "github.com/db47h/nandsim"
	"github.com/pkg/errors"
)

func TestWord_bigEndian(t *testing.T) {
	c := ns.New()
	w := c.WordOf(false, true, false, true)
	if v, ok := w.Uint(c); !ok || v != 5 {
		t.Fatalf("WordOf(0101) = %d, %v", v, ok)
	}
	if s := w.Format(c); s != "0101" {
		t.Fatalf("Format() = %q", s)
	}
	k := c.Const(0xa5, 8)
	if k[0] != ns.True || k[7] != ns.True || k[1] != ns.False {
		t.Fatalf("bad constant word %v", k)
	}
	if v, _ := k.Uint(c); v != 0xa5 {
		t.Fatalf("Const(0xa5) = %#x", v)
	}
}

func TestWord_SetUint(t *testing.T) {
	c := ns.New()
	w := c.NewWord(8)
	if _, ok := w.Uint(c); ok {
		t.Fatal("new word has a known value")
	}
	if s := w.Format(c); s != "xxxxxxxx" {
		t.Fatalf("Format() = %q", s)
	}
	f := func(v uint8) bool {
		if err := w.SetUint(c, uint64(v)); err != nil {
			t.Error(err)
			return false
		}
		got, ok := w.Uint(c)
		w.Reset(c)
		return ok && got == uint64(v)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestWord_partial(t *testing.T) {
	c := ns.New()
	w := c.NewWord(4)
	if err := c.Drive(w[0], true); err != nil {
		t.Fatal(err)
	}
	if _, ok := w.Uint(c); ok {
		t.Fatal("partially known word has a known value")
	}
	vs := w.Values(c)
	if vs[0] != ns.Hi || vs[1] != ns.Unknown {
		t.Fatalf("Values() = %v", vs)
	}
	err := c.DriveWord(w, 0)
	var ce *ns.ConflictError
	if !errors.As(err, &ce) || ce.Signal != w[0] {
		t.Fatalf("expected a conflict on %v, got %v", w[0], err)
	}
}

func TestConcat(t *testing.T) {
	c := ns.New()
	a, b := c.Const(0xa, 4), c.Const(0x5, 4)
	w := ns.Concat(a, b)
	if v, _ := w.Uint(c); v != 0xa5 {
		t.Fatalf("Concat = %#x", v)
	}
	w[0] = ns.False
	if a[0] != ns.True {
		t.Fatal("Concat shares storage with its arguments")
	}
}

func TestWord_Reset_constants(t *testing.T) {
	c := ns.New()
	in := c.NewWord(4)
	w := ns.Concat(in, c.Const(5, 4))
	if err := in.SetUint(c, 9); err != nil {
		t.Fatal(err)
	}
	if v, ok := w.Uint(c); !ok || v != 0x95 {
		t.Fatalf("w = %#x, %v", v, ok)
	}
	w.Reset(c)
	if s := w.Format(c); s != "xxxx0101" {
		t.Fatalf("after reset: %s", s)
	}
	if err := in.SetUint(c, 6); err != nil {
		t.Fatalf("set after reset: %v", err)
	}
	if v, _ := w.Uint(c); v != 0x65 {
		t.Fatalf("w = %#x", v)
	}
	c.WordOf(true, false).Reset(c)
	if c.Get(ns.True) != ns.Hi || c.Get(ns.False) != ns.Lo {
		t.Fatal("reset cleared the constant rails")
	}
}
