// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of reusable parts for nandsim, all built
// from NAND gates and latches.
//
// Copyright 2018 Denis Bernard <db047h@gmail.com>
//
// This package is licensed under the MIT license. See license text in the LICENSE file.
//
// Single bit parts take their input signals and an output signal, and return
// the output signal. Passing nandsim.NC as an output allocates a new signal.
// Word parts work the same way with a nil output word and return an error if
// the width of a connected word does not match.
//
package hwlib

import (
	"github.com/db47h/nandsim"
	"github.com/pkg/errors"
)

// Not adds a NOT gate to the circuit.
//
//	Inputs: in
//	Outputs: out
//	Function: out = !in
//
func Not(c *nandsim.Circuit, in, out nandsim.Signal) nandsim.Signal {
	p := c.Chip("NOT")
	in, out = p.Input(in), p.Output(out)
	return c.Nand(in, in, out)
}

// And adds an AND gate to the circuit.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b
//
func And(c *nandsim.Circuit, a, b, out nandsim.Signal) nandsim.Signal {
	p := c.Chip("AND")
	a, b, out = p.Input(a), p.Input(b), p.Output(out)
	n := c.Nand(a, b, nandsim.NC)
	return c.Nand(n, n, out)
}

// Or adds an OR gate to the circuit.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a || b
//
func Or(c *nandsim.Circuit, a, b, out nandsim.Signal) nandsim.Signal {
	p := c.Chip("OR")
	a, b, out = p.Input(a), p.Input(b), p.Output(out)
	return c.Nand(c.Nand(a, a, nandsim.NC), c.Nand(b, b, nandsim.NC), out)
}

// Nor adds a NOR gate to the circuit.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a || b)
//
func Nor(c *nandsim.Circuit, a, b, out nandsim.Signal) nandsim.Signal {
	p := c.Chip("NOR")
	a, b, out = p.Input(a), p.Input(b), p.Output(out)
	o := Or(c, a, b, nandsim.NC)
	return c.Nand(o, o, out)
}

// Xor adds a XOR gate to the circuit.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && !b || !a && b
//
func Xor(c *nandsim.Circuit, a, b, out nandsim.Signal) nandsim.Signal {
	p := c.Chip("XOR")
	a, b, out = p.Input(a), p.Input(b), p.Output(out)
	nab := c.Nand(a, b, nandsim.NC)
	return c.Nand(c.Nand(a, nab, nandsim.NC), c.Nand(b, nab, nandsim.NC), out)
}

// Xnor adds a XNOR gate to the circuit.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b || !a && !b
//
func Xnor(c *nandsim.Circuit, a, b, out nandsim.Signal) nandsim.Signal {
	p := c.Chip("XNOR")
	a, b, out = p.Input(a), p.Input(b), p.Output(out)
	x := Xor(c, a, b, nandsim.NC)
	return c.Nand(x, x, out)
}

// NotN adds an n-bits NOT gate to the circuit, where n = len(in).
//
//	Inputs: in[n]
//	Outputs: out[n]
//	Function: for i := range out { out[i] = !in[i] }
//
func NotN(c *nandsim.Circuit, in, out nandsim.Word) (nandsim.Word, error) {
	p := c.Chip("NOTN")
	in, _ = p.InputWord("in", in, len(in))
	out, err := p.OutputWord("out", out, len(in))
	if err != nil {
		return nil, errors.Wrap(err, "NotN")
	}
	for i := range in {
		c.Nand(in[i], in[i], out[i])
	}
	return out, nil
}

// gateN wires a two input single bit gate across words a and b.
//
func gateN(c *nandsim.Circuit, name string, g func(*nandsim.Circuit, nandsim.Signal, nandsim.Signal, nandsim.Signal) nandsim.Signal,
	a, b, out nandsim.Word) (nandsim.Word, error) {
	p := c.Chip(name)
	n := len(a)
	a, _ = p.InputWord("a", a, n)
	b, err := p.InputWord("b", b, n)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	if out, err = p.OutputWord("out", out, n); err != nil {
		return nil, errors.Wrap(err, name)
	}
	for i := range out {
		g(c, a[i], b[i], out[i])
	}
	return out, nil
}

// AndN adds an n-bits AND gate to the circuit, where n = len(a).
//
//	Inputs: a[n], b[n]
//	Outputs: out[n]
//	Function: for i := range out { out[i] = a[i] && b[i] }
//
func AndN(c *nandsim.Circuit, a, b, out nandsim.Word) (nandsim.Word, error) {
	return gateN(c, "ANDN", And, a, b, out)
}

// OrN adds an n-bits OR gate to the circuit, where n = len(a).
//
//	Inputs: a[n], b[n]
//	Outputs: out[n]
//	Function: for i := range out { out[i] = a[i] || b[i] }
//
func OrN(c *nandsim.Circuit, a, b, out nandsim.Word) (nandsim.Word, error) {
	return gateN(c, "ORN", Or, a, b, out)
}
