// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

// Nand adds a NAND gate to the circuit and returns its output. This is the
// only combinational primitive: every other gate is built from it.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a && b)
//
// The output resolves to true as soon as either input is known false, and to
// false once both inputs are known true. It stays unknown otherwise.
//
// If out is NC, a new Signal is allocated.
//
func (c *Circuit) Nand(a, b, out Signal) Signal {
	id := c.newBlock(kindNand, "NAND", a, b)
	return c.drive(id, out)
}

func (c *Circuit) settleNand(b *block) error {
	out := b.out[0]
	if c.signals[out].value.Known() {
		return nil
	}
	va, vb := c.signals[b.in[0]].value, c.signals[b.in[1]].value
	switch {
	case va == Lo || vb == Lo:
		return c.Set(out, true)
	case va == Hi && vb == Hi:
		return c.Set(out, false)
	}
	return nil
}
