// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/nandsim"
	"github.com/pkg/errors"
)

// HalfAdder adds a half adder to the circuit.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = lsb(a + b)
//	          c = msb(a + b)
//
func HalfAdder(c *nandsim.Circuit, a, b, s, carry nandsim.Signal) (nandsim.Signal, nandsim.Signal) {
	p := c.Chip("HALFADDER")
	a, b = p.Input(a), p.Input(b)
	s, carry = p.Output(s), p.Output(carry)
	nab := c.Nand(a, b, nandsim.NC)
	c.Nand(c.Nand(a, nab, nandsim.NC), c.Nand(b, nab, nandsim.NC), s)
	c.Nand(nab, nab, carry)
	return s, carry
}

// FullAdder adds a 3 bits adder to the circuit.
//
//	Inputs: a, b, cin
//	Outputs: s, cout
//	Function: s = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
func FullAdder(c *nandsim.Circuit, a, b, cin, s, cout nandsim.Signal) (nandsim.Signal, nandsim.Signal) {
	p := c.Chip("FULLADDER")
	a, b, cin = p.Input(a), p.Input(b), p.Input(cin)
	s, cout = p.Output(s), p.Output(cout)
	// (a ^ b) ^ cin, carry = nand(nand(a, b), nand(a^b, cin))
	nab := c.Nand(a, b, nandsim.NC)
	x := c.Nand(c.Nand(a, nab, nandsim.NC), c.Nand(b, nab, nandsim.NC), nandsim.NC)
	nxc := c.Nand(x, cin, nandsim.NC)
	c.Nand(c.Nand(x, nxc, nandsim.NC), c.Nand(cin, nxc, nandsim.NC), s)
	c.Nand(nab, nxc, cout)
	return s, cout
}

// An Adder is an n-bits ripple carry adder.
//
//	Inputs: a[n], b[n], cin
//	Outputs: out[n], cout
//	Function: out = (a + b + cin) % 2^n
//	          cout = a + b + cin >= 2^n
//
// Subtraction is done by negating one operand and setting cin.
//
type Adder struct {
	Out  nandsim.Word
	Cout nandsim.Signal
}

// NewAdder adds an n-bits adder to the circuit, where n = len(a).
//
func NewAdder(c *nandsim.Circuit, a, b nandsim.Word, cin nandsim.Signal, out nandsim.Word) (*Adder, error) {
	p := c.Chip("ADDER")
	n := len(a)
	a, _ = p.InputWord("a", a, n)
	b, err := p.InputWord("b", b, n)
	if err != nil {
		return nil, errors.Wrap(err, "Adder")
	}
	cin = p.Input(cin)
	if out, err = p.OutputWord("out", out, n); err != nil {
		return nil, errors.Wrap(err, "Adder")
	}
	cout := p.Output(nandsim.NC)
	// ripple from the lsb (last) to the msb (first).
	carry := cin
	for i := n - 1; i >= 0; i-- {
		co := nandsim.NC
		if i == 0 {
			co = cout
		}
		_, carry = FullAdder(c, a[i], b[i], carry, out[i], co)
	}
	if n == 0 {
		And(c, cin, nandsim.True, cout)
	}
	return &Adder{Out: out, Cout: cout}, nil
}
