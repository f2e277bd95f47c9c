// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	"github.com/db47h/nandsim"
	"github.com/pkg/errors"
)

// A Memory is a RAM of 2^k words of n bits.
//
//	Inputs: addr[k], in[n], write
//	Outputs: out[n]
//	Function: out(t) = mem[addr(t)](t-1)
//	          if write(t-1) { mem[addr(t-1)](t) = in(t-1) }
//
// Each word is a Register selected by a constant address match (an AND tree
// over the address bits or their complement). Unselected words are masked to
// zero and the output is the OR reduction of all words.
//
type Memory struct {
	cells []*Register
	Out   nandsim.Word
}

// NewMemory adds a memory to the circuit, where k = len(addr) and n = len(in).
// k must be at least 1.
//
func NewMemory(c *nandsim.Circuit, addr, in nandsim.Word, write nandsim.Signal, out nandsim.Word) (*Memory, error) {
	k, n := len(addr), len(in)
	if k == 0 {
		return nil, &nandsim.ShapeError{Block: "MEMORY", Port: "addr", Want: 1, Got: 0}
	}
	p := c.Chip("MEMORY" + strconv.Itoa(1<<uint(k)))
	addr, _ = p.InputWord("addr", addr, k)
	in, _ = p.InputWord("in", in, n)
	write = p.Input(write)
	out, err := p.OutputWord("out", out, n)
	if err != nil {
		return nil, errors.Wrap(err, "Memory")
	}
	naddr, err := NotN(c, addr, nil)
	if err != nil {
		return nil, errors.Wrap(err, "Memory")
	}
	zero := Zero(c, n)
	m := &Memory{cells: make([]*Register, 1<<uint(k)), Out: out}
	words := make([]nandsim.Word, len(m.cells))
	terms := make(nandsim.Word, k)
	for i := range m.cells {
		for j := range terms {
			if i&(1<<uint(k-1-j)) != 0 {
				terms[j] = addr[j]
			} else {
				terms[j] = naddr[j]
			}
		}
		sel := AndWay(c, terms, nandsim.NC)
		if m.cells[i], err = NewRegister(c, in, And(c, sel, write, nandsim.NC), nil); err != nil {
			return nil, errors.Wrapf(err, "Memory: cell %d", i)
		}
		if words[i], err = MuxN(c, zero, m.cells[i].Out, sel, nil); err != nil {
			return nil, errors.Wrapf(err, "Memory: cell %d", i)
		}
	}
	if err = orTree(c, words, out); err != nil {
		return nil, errors.Wrap(err, "Memory")
	}
	return m, nil
}

// orTree ORs all words together through a balanced tree of depth log2(len(ws))
// and drives out with the result. len(ws) must be a power of two.
//
func orTree(c *nandsim.Circuit, ws []nandsim.Word, out nandsim.Word) error {
	if len(ws) == 1 {
		_, err := OrN(c, ws[0], Zero(c, len(out)), out)
		return err
	}
	for len(ws) > 2 {
		next := make([]nandsim.Word, len(ws)/2)
		for i := range next {
			var err error
			if next[i], err = OrN(c, ws[2*i], ws[2*i+1], nil); err != nil {
				return err
			}
		}
		ws = next
	}
	_, err := OrN(c, ws[0], ws[1], out)
	return err
}

// Size returns the number of words in the memory.
//
func (m *Memory) Size() int { return len(m.cells) }

// Peek returns the committed value of the word at address addr.
//
func (m *Memory) Peek(addr int) uint64 { return m.cells[addr].State() }

// Poke forces the value of the word at address addr to v.
//
func (m *Memory) Poke(addr int, v uint64) { m.cells[addr].Load(v) }
