// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package cpu implements a minimal 8 bits stored-program computer at gate
// level.
//
// The machine alternates between two phases driven by the LSB of a free
// running clock counter:
//
//	fetch (clock even):   OP = mem[PC]; PC = PC + 1
//	execute (clock odd):  X = ALU(OP)(X, Y); Y = X
//
// Every byte of a program is therefore an ALU opcode (see hwlib.Opcode). A
// program made of ONE followed by a series of ADD computes the Fibonacci
// sequence in X.
//
package cpu

import (
	"io"
	"log/slog"

	"github.com/db47h/nandsim"
	"github.com/db47h/nandsim/hwlib"
	"github.com/pkg/errors"
)

// MemSize is the size of the machine's memory in bytes.
//
const MemSize = 256

// Registers is a snapshot of the machine's committed registers.
//
type Registers struct {
	Clock uint8 `json:"clock" yaml:"clock"`
	X     uint8 `json:"x" yaml:"x"`
	Y     uint8 `json:"y" yaml:"y"`
	PC    uint8 `json:"pc" yaml:"pc"`
	OP    uint8 `json:"op" yaml:"op"`
}

// A Machine is the computer along with the circuit it is built on.
//
type Machine struct {
	c     *nandsim.Circuit
	log   *slog.Logger
	clock *hwlib.Counter
	x, y  *hwlib.Register
	pc    *hwlib.Register
	op    *hwlib.Register
	mem   *hwlib.Memory

	// loader
	load     nandsim.Signal
	loadAddr nandsim.Word
	loadData nandsim.Word
}

// An Option configures a Machine.
//
type Option func(*Machine)

// WithLogger sets the logger used by the machine and its circuit.
//
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.log = l
		}
	}
}

// New builds a new machine. Its memory and registers are all zero.
//
func New(opts ...Option) (*Machine, error) {
	m := &Machine{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, o := range opts {
		o(m)
	}
	c := nandsim.New(nandsim.WithLogger(m.log))
	m.c = c
	if err := m.build(); err != nil {
		return nil, errors.Wrap(err, "build machine")
	}
	signals, blocks := c.Size()
	m.log.Debug("machine built", "signals", signals, "blocks", blocks)
	return m, nil
}

func (m *Machine) build() error {
	var err error
	c := m.c

	m.load, m.loadAddr, m.loadData = c.NewSignal(), c.NewWord(8), c.NewWord(8)
	run := hwlib.Not(c, m.load, nandsim.NC)

	if m.clock, err = hwlib.NewCounter(c, 8, run, nandsim.False, nil); err != nil {
		return err
	}
	execute := m.clock.Out[7]
	fetch := hwlib.Not(c, execute, nandsim.NC)
	fetchEn := hwlib.And(c, fetch, run, nandsim.NC)
	execEn := hwlib.And(c, execute, run, nandsim.NC)

	// PC and its incrementer
	pcNext := c.NewWord(8)
	if m.pc, err = hwlib.NewRegister(c, pcNext, fetchEn, nil); err != nil {
		return errors.Wrap(err, "PC")
	}
	if _, err = hwlib.NewAdder(c, m.pc.Out, hwlib.Zero(c, 8), nandsim.True, pcNext); err != nil {
		return errors.Wrap(err, "PC")
	}

	// memory, addressed by the loader while loading
	addr, err := hwlib.MuxN(c, m.pc.Out, m.loadAddr, m.load, nil)
	if err != nil {
		return errors.Wrap(err, "address bus")
	}
	if m.mem, err = hwlib.NewMemory(c, addr, m.loadData, m.load, nil); err != nil {
		return err
	}
	if m.op, err = hwlib.NewRegister(c, m.mem.Out, fetchEn, nil); err != nil {
		return errors.Wrap(err, "OP")
	}

	// X = ALU(OP)(X, Y); Y = X
	xNext := c.NewWord(8)
	if m.x, err = hwlib.NewRegister(c, xNext, execEn, nil); err != nil {
		return errors.Wrap(err, "X")
	}
	if m.y, err = hwlib.NewRegister(c, m.x.Out, execEn, nil); err != nil {
		return errors.Wrap(err, "Y")
	}
	_, err = hwlib.NewALU(c, m.x.Out, m.y.Out, m.op.Out, nandsim.False, xNext)
	return err
}

// Circuit returns the underlying circuit.
//
func (m *Machine) Circuit() *nandsim.Circuit { return m.c }

// Tic runs one clock cycle.
//
func (m *Machine) Tic() error {
	if err := m.c.Drive(m.load, false); err != nil {
		return err
	}
	if err := m.c.Settle(); err != nil {
		return err
	}
	return m.c.Commit()
}

// Run runs n clock cycles.
//
func (m *Machine) Run(n int) error {
	for i := 0; i < n; i++ {
		if err := m.Tic(); err != nil {
			return errors.Wrapf(err, "tic %d", m.c.Tics())
		}
	}
	m.log.Debug("run", "tics", n, "clock", m.clock.Value())
	return nil
}

// LoadProgram writes prog to memory starting at address 0 through the loader
// inputs, one byte per tic. The clock and registers hold while loading.
//
func (m *Machine) LoadProgram(prog []byte) error {
	if len(prog) > MemSize {
		return errors.Errorf("program too large: %d bytes", len(prog))
	}
	c := m.c
	for i, b := range prog {
		if err := c.Drive(m.load, true); err != nil {
			return err
		}
		if err := c.DriveWord(m.loadAddr, uint64(i)); err != nil {
			return err
		}
		if err := c.DriveWord(m.loadData, uint64(b)); err != nil {
			return err
		}
		if err := c.Settle(); err != nil {
			return errors.Wrapf(err, "load byte %d", i)
		}
		if err := c.Commit(); err != nil {
			return err
		}
	}
	m.log.Debug("program loaded", "bytes", len(prog))
	return nil
}

// Registers returns the committed state of the registers.
//
func (m *Machine) Registers() Registers {
	return Registers{
		Clock: uint8(m.clock.Value()),
		X:     uint8(m.x.State()),
		Y:     uint8(m.y.State()),
		PC:    uint8(m.pc.State()),
		OP:    uint8(m.op.State()),
	}
}

// Peek returns the committed value of the memory byte at addr.
//
func (m *Machine) Peek(addr uint8) byte { return byte(m.mem.Peek(int(addr))) }
