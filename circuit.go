// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

import (
	"context"
	"io"
	"log/slog"
	"strconv"

	"github.com/db47h/nandsim/internal/logging"
	"github.com/pkg/errors"
)

// A Signal is a handle to a single tri-state wire in a Circuit.
//
// Signal handles are only meaningful for the Circuit that allocated them,
// except for the reserved handles NC, False and True which exist in every
// Circuit.
//
type Signal int

// Reserved signal handles.
//
const (
	// NC means "not connected". As an output argument, it requests the
	// allocation of a fresh Signal. As an input, it is wired to False.
	NC Signal = iota
	// False is the constant false rail.
	False
	// True is the constant true rail.
	True

	cstCount
)

func (s Signal) String() string {
	switch s {
	case NC:
		return "nc"
	case False:
		return "false"
	case True:
		return "true"
	}
	return "#" + strconv.Itoa(int(s))
}

// A Block is a handle to a component in a Circuit.
//
type Block int

type blockKind uint8

const (
	kindComposite blockKind = iota
	kindNand
	kindLatch
)

type signal struct {
	value    Value
	constant bool
	driven   bool // has a leaf driver
	notified bool // fanout notified this tic
	cleared  bool // reset this tic
	fanout   []Block
}

type block struct {
	kind    blockKind
	name    string
	in      []Signal
	out     []Signal
	state   bool // latch only
	pending bool // latch only
}

// Circuit is the simulation context. It owns every Signal and Block of a
// circuit as well as the constant rails.
//
// A simulation tic is:
//
//	1. drive external inputs with Drive or DriveWord,
//	2. call Settle to resolve everything that can be resolved,
//	3. read outputs,
//	4. call Commit to advance latches and clear transient values.
//
// Steps 1 and 2 can be swapped: driving a Signal immediately cascades to its
// fanout.
//
// A Circuit is not safe for concurrent use.
//
type Circuit struct {
	signals []signal
	blocks  []block
	latches []Block
	tics    uint
	log     *slog.Logger
}

// An Option configures a Circuit.
//
type Option func(*Circuit)

// WithLogger sets the logger used by the circuit. Commits are logged at debug
// level and composite block creation at trace level.
//
func WithLogger(l *slog.Logger) Option {
	return func(c *Circuit) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns a new empty Circuit with its constant rails allocated.
//
func New(opts ...Option) *Circuit {
	c := &Circuit{
		signals: make([]signal, cstCount, 1024),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	c.signals[NC] = signal{constant: true}
	c.signals[False] = signal{value: Lo, constant: true}
	c.signals[True] = signal{value: Hi, constant: true}
	for _, o := range opts {
		o(c)
	}
	return c
}

// NewSignal allocates a new Signal.
//
func (c *Circuit) NewSignal() Signal {
	s := Signal(len(c.signals))
	c.signals = append(c.signals, signal{})
	return s
}

// Get returns the current value of s.
//
func (c *Circuit) Get(s Signal) Value {
	return c.signals[s].value
}

// Set sets the value of s and notifies its fanout the first time the value
// becomes known within the current tic. Setting s to the value it already
// carries is a no-op. Setting it to the opposite value fails with a
// *ConflictError. Constant signals cannot be set.
//
func (c *Circuit) Set(s Signal, v bool) error {
	sg := &c.signals[s]
	nv := Bool(v)
	if sg.constant {
		return &InvariantError{Signal: s, Op: "set", Msg: "constant signal"}
	}
	switch sg.value {
	case nv:
		return nil
	case Unknown:
	default:
		return &ConflictError{Signal: s, Have: sg.value, Want: nv}
	}
	sg.value = nv
	sg.cleared = false
	if sg.notified {
		return nil
	}
	sg.notified = true
	for _, b := range sg.fanout {
		if err := c.settle(b); err != nil {
			return err
		}
	}
	return nil
}

// Drive sets an external input.
//
func (c *Circuit) Drive(s Signal, v bool) error {
	return errors.Wrapf(c.Set(s, v), "drive %v", s)
}

// DriveWord sets the value of an external input word.
//
func (c *Circuit) DriveWord(w Word, v uint64) error {
	return errors.Wrap(w.SetUint(c, v), "drive word")
}

// Reset clears the value of s and recursively resets its fanout: every block
// reading s clears its outputs. Latches keep both their committed and pending
// states; only Commit advances them. A Signal is only reset once until it is
// set again.
//
// Resetting a constant Signal fails with an *InvariantError.
//
func (c *Circuit) Reset(s Signal) error {
	if c.signals[s].constant {
		return &InvariantError{Signal: s, Op: "reset", Msg: "constant signal"}
	}
	c.reset(s)
	return nil
}

func (c *Circuit) reset(s Signal) {
	sg := &c.signals[s]
	if sg.constant || sg.cleared {
		return
	}
	sg.cleared = true
	sg.notified = false
	sg.value = Unknown
	for _, b := range sg.fanout {
		c.resetBlock(b)
	}
}

func (c *Circuit) resetBlock(id Block) {
	b := &c.blocks[id]
	for _, o := range b.out {
		c.reset(o)
	}
}

// Settle visits every leaf block once. Since every leaf is idempotent and
// Set cascades to the fanout, a single pass reaches the fixed point: every
// Signal that can be resolved from the driven inputs, the constant rails and
// the latches' committed state is known when Settle returns.
//
func (c *Circuit) Settle() error {
	for id := range c.blocks {
		if err := c.settle(Block(id)); err != nil {
			return errors.Wrapf(err, "settle %s", c.blocks[id].name)
		}
	}
	return nil
}

// Commit ends the current tic: every latch takes its pending state and every
// non-constant Signal is cleared.
//
func (c *Circuit) Commit() error {
	if c.signals[False].value != Lo || c.signals[True].value != Hi {
		return &InvariantError{Signal: True, Op: "commit", Msg: "true or false constants have been overwritten"}
	}
	for _, id := range c.latches {
		b := &c.blocks[id]
		b.state = b.pending
	}
	for i := range c.signals {
		sg := &c.signals[i]
		if sg.constant {
			continue
		}
		sg.value = Unknown
		sg.notified = false
		sg.cleared = true
	}
	c.tics++
	c.log.Debug("commit", "tic", c.tics, "latches", len(c.latches))
	return nil
}

// Tics returns the number of commits since the circuit was created.
//
func (c *Circuit) Tics() uint { return c.tics }

// Size returns the number of signals and blocks allocated in the circuit.
//
func (c *Circuit) Size() (signals, blocks int) {
	return len(c.signals), len(c.blocks)
}

func (c *Circuit) settle(id Block) error {
	b := &c.blocks[id]
	switch b.kind {
	case kindNand:
		return c.settleNand(b)
	case kindLatch:
		return c.settleLatch(b)
	}
	return nil
}

// newBlock allocates a block and registers it on the fanout of its inputs.
// Unconnected inputs are wired to False.
//
func (c *Circuit) newBlock(kind blockKind, name string, in ...Signal) Block {
	id := Block(len(c.blocks))
	for i, s := range in {
		if s == NC {
			in[i] = False
		}
		c.connect(in[i], id)
	}
	c.blocks = append(c.blocks, block{kind: kind, name: name, in: in})
	if kind == kindComposite && c.log.Enabled(context.Background(), logging.LevelTrace) {
		c.log.Log(context.Background(), logging.LevelTrace, "new chip", "name", name, "block", int(id))
	}
	return id
}

func (c *Circuit) connect(s Signal, id Block) {
	c.signals[s].fanout = append(c.signals[s].fanout, id)
}

// drive binds out as the output of leaf block id. It allocates a new Signal if
// out is NC. Wiring a leaf output to a constant or to a Signal that already
// has a driver is a programming error and panics with an *InvariantError.
//
func (c *Circuit) drive(id Block, out Signal) Signal {
	if out == NC {
		out = c.NewSignal()
	}
	sg := &c.signals[out]
	if sg.constant {
		panic(&InvariantError{Signal: out, Op: "bind", Msg: c.blocks[id].name + " output connected to a constant"})
	}
	if sg.driven {
		panic(&InvariantError{Signal: out, Op: "bind", Msg: c.blocks[id].name + " output already driven"})
	}
	sg.driven = true
	c.blocks[id].out = append(c.blocks[id].out, out)
	return out
}
