package asm

import (
	"strings"
	"testing"
)

func TestLexer(t *testing.T) {
	l := NewLexer("ONE, add 0x2a\n@16 # comment, ADD\n7")
	exp := []Item{
		{Ident, 0, "ONE"},
		{Ident, 5, "add"},
		{Int, 9, "0x2a"},
		{Origin, 15, "16"},
		{Int, 33, "7"},
		{EOF, 34, ""},
		{EOF, 34, ""},
	}
	for _, e := range exp {
		if i := l.Lex(); i != e {
			t.Fatalf("expected %v at %d, got %v at %d", e, e.Pos, i, i.Pos)
		}
	}
}

func TestParse(t *testing.T) {
	img, err := Parse("ONE, add 0x2a @16 7")
	if err != nil {
		t.Fatal(err)
	}
	for addr, v := range map[int]byte{0: 63, 1: 1, 2: 42, 3: 0, 16: 7} {
		if img.Data[addr] != v {
			t.Errorf("mem[%d] = %d, expected %d", addr, img.Data[addr], v)
		}
	}
	if img.Len != 4 || img.End != 17 || len(img.Bytes()) != 17 {
		t.Fatalf("Len = %d, End = %d", img.Len, img.End)
	}

	img, err = Parse("  # nothing\n\n")
	if err != nil {
		t.Fatal(err)
	}
	if img.Len != 0 || len(img.Bytes()) != 0 {
		t.Fatalf("empty program has %d bytes", img.Len)
	}
}

func TestParse_errors(t *testing.T) {
	td := []struct {
		src string
		msg string
	}{
		{"ONE, FOO", `line 1, col 6 (pos 6): unknown opcode "FOO"`},
		{"ADD\n  256", "line 2, col 3 (pos 7): value out of range [0, 255]"},
		{"0x", "malformed integer"},
		{"ADD ; SUB", `pos 5): unexpected character ";"`},
		{"@ 1", `unexpected character "@"`},
		{"@255 1 2", "program does not fit in memory"},
	}
	for _, d := range td {
		_, err := Parse(d.src)
		if err == nil {
			t.Errorf("%q: expected an error", d.src)
			continue
		}
		if !strings.Contains(err.Error(), d.msg) {
			t.Errorf("%q: got error %q, expected %q", d.src, err, d.msg)
		}
	}
}
