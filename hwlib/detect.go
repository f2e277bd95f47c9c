// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/nandsim"
	"github.com/pkg/errors"
)

// reduce builds a balanced tree of two input gates over in and drives out with
// its root.
//
func reduce(c *nandsim.Circuit, g func(*nandsim.Circuit, nandsim.Signal, nandsim.Signal, nandsim.Signal) nandsim.Signal,
	in nandsim.Word, unit, out nandsim.Signal) nandsim.Signal {
	switch len(in) {
	case 0:
		return g(c, unit, unit, out)
	case 1:
		return g(c, in[0], unit, out)
	case 2:
		return g(c, in[0], in[1], out)
	}
	h := len(in) / 2
	return g(c, reduce(c, g, in[:h], unit, nandsim.NC), reduce(c, g, in[h:], unit, nandsim.NC), out)
}

// OrWay adds an n-way OR gate to the circuit, built as a balanced tree.
//
//	Inputs: in[n]
//	Outputs: out
//	Function: out = in[0] || in[1] || ... || in[n-1]
//
func OrWay(c *nandsim.Circuit, in nandsim.Word, out nandsim.Signal) nandsim.Signal {
	p := c.Chip("ORWAY")
	in, _ = p.InputWord("in", in, len(in))
	return reduce(c, Or, in, nandsim.False, p.Output(out))
}

// AndWay adds an n-way AND gate to the circuit, built as a balanced tree.
//
//	Inputs: in[n]
//	Outputs: out
//	Function: out = in[0] && in[1] && ... && in[n-1]
//
func AndWay(c *nandsim.Circuit, in nandsim.Word, out nandsim.Signal) nandsim.Signal {
	p := c.Chip("ANDWAY")
	in, _ = p.InputWord("in", in, len(in))
	return reduce(c, And, in, nandsim.True, p.Output(out))
}

// NonZero adds a zero detector to the circuit.
//
//	Inputs: in[n]
//	Outputs: out
//	Function: out = in != 0
//
func NonZero(c *nandsim.Circuit, in nandsim.Word, out nandsim.Signal) nandsim.Signal {
	return OrWay(c, in, out)
}

// Equal adds an n-bits comparator to the circuit, where n = len(a).
//
//	Inputs: a[n], b[n]
//	Outputs: out
//	Function: out = a == b
//
func Equal(c *nandsim.Circuit, a, b nandsim.Word, out nandsim.Signal) (nandsim.Signal, error) {
	p := c.Chip("EQUAL")
	n := len(a)
	a, _ = p.InputWord("a", a, n)
	b, err := p.InputWord("b", b, n)
	if err != nil {
		return nandsim.NC, errors.Wrap(err, "Equal")
	}
	out = p.Output(out)
	same, err := gateN(c, "XNORN", Xnor, a, b, nil)
	if err != nil {
		return nandsim.NC, errors.Wrap(err, "Equal")
	}
	diff, err := NotN(c, same, nil)
	if err != nil {
		return nandsim.NC, errors.Wrap(err, "Equal")
	}
	return Not(c, NonZero(c, diff, nandsim.NC), out), nil
}
