// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	"github.com/db47h/nandsim"
	"github.com/pkg/errors"
)

// Mux adds a multiplexer to the circuit.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux(c *nandsim.Circuit, a, b, sel, out nandsim.Signal) nandsim.Signal {
	p := c.Chip("MUX")
	a, b, sel, out = p.Input(a), p.Input(b), p.Input(sel), p.Output(out)
	nsel := c.Nand(sel, sel, nandsim.NC)
	return c.Nand(c.Nand(a, nsel, nandsim.NC), c.Nand(b, sel, nandsim.NC), out)
}

// DMux adds a demultiplexer to the circuit.
//
//	Inputs: in, sel
//	Outputs: a, b
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
//
func DMux(c *nandsim.Circuit, in, sel, a, b nandsim.Signal) (nandsim.Signal, nandsim.Signal) {
	p := c.Chip("DMUX")
	in, sel = p.Input(in), p.Input(sel)
	a, b = p.Output(a), p.Output(b)
	And(c, in, Not(c, sel, nandsim.NC), a)
	And(c, in, sel, b)
	return a, b
}

// MuxN adds an n-bits multiplexer to the circuit, where n = len(a).
//
//	Inputs: a[n], b[n], sel
//	Outputs: out[n]
//	Function: for i := range out { if sel == 0 { out[i] = a[i] } else { out[i] = b[i] } }
//
func MuxN(c *nandsim.Circuit, a, b nandsim.Word, sel nandsim.Signal, out nandsim.Word) (nandsim.Word, error) {
	p := c.Chip("MUXN")
	n := len(a)
	a, _ = p.InputWord("a", a, n)
	b, err := p.InputWord("b", b, n)
	if err != nil {
		return nil, errors.Wrap(err, "MuxN")
	}
	sel = p.Input(sel)
	if out, err = p.OutputWord("out", out, n); err != nil {
		return nil, errors.Wrap(err, "MuxN")
	}
	// share the inverted select line among all bits.
	nsel := c.Nand(sel, sel, nandsim.NC)
	for i := range out {
		c.Nand(c.Nand(a[i], nsel, nandsim.NC), c.Nand(b[i], sel, nandsim.NC), out[i])
	}
	return out, nil
}

// MuxTree adds an N-to-1 multiplexer to the circuit. It selects one of the
// 2^k words in by the k-bits select word sel. All words in must have the same
// width.
//
//	Inputs: in[2^k][n], sel[k]
//	Outputs: out[n]
//	Function: out = in[sel]
//
func MuxTree(c *nandsim.Circuit, in []nandsim.Word, sel nandsim.Word, out nandsim.Word) (nandsim.Word, error) {
	name := "MUXTREE" + strconv.Itoa(len(in))
	if len(in) == 0 || len(in) != 1<<uint(len(sel)) {
		return nil, &nandsim.ShapeError{Block: name, Port: "in", Want: 1 << uint(len(sel)), Got: len(in)}
	}
	p := c.Chip(name)
	n := len(in[0])
	sel, _ = p.InputWord("sel", sel, len(sel))
	level := make([]nandsim.Word, len(in))
	for i, w := range in {
		var err error
		if level[i], err = p.InputWord("in"+strconv.Itoa(i), w, n); err != nil {
			return nil, errors.Wrap(err, name)
		}
	}
	out, err := p.OutputWord("out", out, n)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	if len(sel) == 0 {
		// single input, just buffer it.
		for i := range out {
			And(c, level[0][i], nandsim.True, out[i])
		}
		return out, nil
	}
	// sel[0] is the msb: adjacent words differ by the last select bit.
	for k := len(sel) - 1; k >= 0; k-- {
		next := make([]nandsim.Word, len(level)/2)
		for i := range next {
			var o nandsim.Word
			if k == 0 {
				o = out
			}
			if next[i], err = MuxN(c, level[2*i], level[2*i+1], sel[k], o); err != nil {
				return nil, errors.Wrap(err, name)
			}
		}
		level = next
	}
	return out, nil
}

// Mux4Way adds a 4 way multiplexer to the circuit, where n = len(a).
//
//	Inputs: a[n], b[n], c[n], d[n], sel[2]
//	Outputs: out[n]
//	Function: out = [a, b, c, d][sel]
//
func Mux4Way(c *nandsim.Circuit, a, b, cc, d nandsim.Word, sel nandsim.Word, out nandsim.Word) (nandsim.Word, error) {
	if len(sel) != 2 {
		return nil, &nandsim.ShapeError{Block: "MUX4WAY", Port: "sel", Want: 2, Got: len(sel)}
	}
	out, err := MuxTree(c, []nandsim.Word{a, b, cc, d}, sel, out)
	return out, errors.Wrap(err, "Mux4Way")
}
