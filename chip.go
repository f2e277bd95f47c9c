// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

// A Chip is a composite block under construction. Chips only declare ports:
// the actual logic is made of the leaf blocks (and other chips) built while
// wiring the chip's internals. Settling a chip is a no-op and resetting it
// clears its declared outputs.
//
// A custom part is typically written like this:
//
//	func Xor(c *nandsim.Circuit, a, b, out nandsim.Signal) nandsim.Signal {
//		p := c.Chip("XOR")
//		a, b, out = p.Input(a), p.Input(b), p.Output(out)
//		nab := c.Nand(a, b, nandsim.NC)
//		c.Nand(c.Nand(a, nab, nandsim.NC), c.Nand(b, nab, nandsim.NC), out)
//		return out
//	}
//
type Chip struct {
	c  *Circuit
	id Block
}

// Chip starts a new composite block.
//
func (c *Circuit) Chip(name string) *Chip {
	return &Chip{c: c, id: c.newBlock(kindComposite, name)}
}

// Name returns the chip name.
//
func (p *Chip) Name() string { return p.c.blocks[p.id].name }

// Block returns the chip's block handle.
//
func (p *Chip) Block() Block { return p.id }

// Input registers s as an input of the chip. NC is wired to False.
//
func (p *Chip) Input(s Signal) Signal {
	if s == NC {
		s = False
	}
	p.c.connect(s, p.id)
	b := &p.c.blocks[p.id]
	b.in = append(b.in, s)
	return s
}

// InputWord registers all signals in w as inputs of the chip. It fails with a
// *ShapeError if w is not exactly width signals wide.
//
func (p *Chip) InputWord(port string, w Word, width int) (Word, error) {
	if len(w) != width {
		return nil, &ShapeError{Block: p.Name(), Port: port, Want: width, Got: len(w)}
	}
	r := make(Word, width)
	for i, s := range w {
		r[i] = p.Input(s)
	}
	return r, nil
}

// Output declares s as an output of the chip. If s is NC, a new Signal is
// allocated. The Signal must be driven by a leaf block built by the caller.
//
func (p *Chip) Output(s Signal) Signal {
	if s == NC {
		s = p.c.NewSignal()
	}
	b := &p.c.blocks[p.id]
	b.out = append(b.out, s)
	return s
}

// OutputWord declares all signals in w as outputs of the chip. If w is nil,
// a new word of the given width is allocated, as are NC elements of w. The
// returned Word must be used in place of w. It fails with a *ShapeError if
// w is not nil and not exactly width signals wide.
//
func (p *Chip) OutputWord(port string, w Word, width int) (Word, error) {
	if w == nil {
		w = p.c.NewWord(width)
	} else if len(w) != width {
		return nil, &ShapeError{Block: p.Name(), Port: port, Want: width, Got: len(w)}
	}
	r := make(Word, width)
	for i, s := range w {
		r[i] = p.Output(s)
	}
	return r, nil
}
