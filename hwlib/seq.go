// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/nandsim"
	"github.com/pkg/errors"
)

// A Register is an n-bits register: n latches sharing the same enable line.
//
//	Inputs: in[n], enable
//	Outputs: out[n]
//	Function: if enable(t-1) { out(t) = in(t-1) } else { out(t) = out(t-1) }
//
type Register struct {
	latches []*nandsim.Latch
	Out     nandsim.Word
}

// NewRegister adds an n-bits register to the circuit, where n = len(in).
//
func NewRegister(c *nandsim.Circuit, in nandsim.Word, enable nandsim.Signal, out nandsim.Word) (*Register, error) {
	p := c.Chip("REGISTER")
	n := len(in)
	in, _ = p.InputWord("in", in, n)
	enable = p.Input(enable)
	out, err := p.OutputWord("out", out, n)
	if err != nil {
		return nil, errors.Wrap(err, "Register")
	}
	r := &Register{latches: make([]*nandsim.Latch, n), Out: out}
	for i := range in {
		r.latches[i] = c.Latch(in[i], enable, out[i])
	}
	return r, nil
}

// State returns the committed state of the register.
//
func (r *Register) State() uint64 {
	var v uint64
	for _, l := range r.latches {
		v <<= 1
		if l.State() {
			v |= 1
		}
	}
	return v
}

// Load forces the state of the register to v.
//
func (r *Register) Load(v uint64) {
	for i := len(r.latches) - 1; i >= 0; i-- {
		r.latches[i].Load(v&1 != 0)
		v >>= 1
	}
}

// A Counter is an n-bits counter.
//
//	Inputs: enable, reset
//	Outputs: out[n]
//	Function: if reset(t-1) { out(t) = 0 }
//	          else if enable(t-1) { out(t) = out(t-1) + 1 }
//	          else { out(t) = out(t-1) }
//
// The count wraps around to 0 after 2^n - 1.
//
type Counter struct {
	reg *Register
	Out nandsim.Word
}

// NewCounter adds an n-bits counter to the circuit.
//
func NewCounter(c *nandsim.Circuit, n int, enable, reset nandsim.Signal, out nandsim.Word) (*Counter, error) {
	p := c.Chip("COUNTER")
	enable, reset = p.Input(enable), p.Input(reset)
	out, err := p.OutputWord("out", out, n)
	if err != nil {
		return nil, errors.Wrap(err, "Counter")
	}
	// the adder reads last tic's count from the register, the loop goes
	// through its latches.
	loop := c.NewWord(n)
	reg, err := NewRegister(c, loop, nandsim.True, out)
	if err != nil {
		return nil, errors.Wrap(err, "Counter")
	}
	zero := Zero(c, n)
	inc, err := NewAdder(c, reg.Out, zero, enable, nil)
	if err != nil {
		return nil, errors.Wrap(err, "Counter")
	}
	if _, err = MuxN(c, inc.Out, zero, reset, loop); err != nil {
		return nil, errors.Wrap(err, "Counter")
	}
	return &Counter{reg: reg, Out: out}, nil
}

// Value returns the committed count.
//
func (k *Counter) Value() uint64 { return k.reg.State() }

// Load forces the count to v.
//
func (k *Counter) Load(v uint64) { k.reg.Load(v) }
