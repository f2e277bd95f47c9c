// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

// A Latch is the only stateful primitive. It holds a committed state, visible
// on Out during the whole tic, and a pending state captured while the tic
// settles. Commit copies the pending state into the committed state.
//
// Since Out always serves the state committed at the end of the previous tic,
// any feedback loop that goes through a Latch resolves without ever reading
// the value being computed in the current tic.
//
type Latch struct {
	c  *Circuit
	id Block

	Out Signal
}

// Latch adds a latch to the circuit.
//
//	Inputs: data, enable
//	Outputs: out
//	Function: out(t) = enable(t-1) ? data(t-1) : out(t-1)
//
// The initial state is false. If out is NC, a new Signal is allocated.
//
func (c *Circuit) Latch(data, enable, out Signal) *Latch {
	id := c.newBlock(kindLatch, "LATCH", data, enable)
	out = c.drive(id, out)
	c.latches = append(c.latches, id)
	return &Latch{c: c, id: id, Out: out}
}

// State returns the committed state of the latch.
//
func (l *Latch) State() bool { return l.c.blocks[l.id].state }

// Pending returns the state captured during the current tic.
//
func (l *Latch) Pending() bool { return l.c.blocks[l.id].pending }

// Load forces both the committed and pending states to v. If Out is already
// known in the current tic, it keeps its value until the next tic. Otherwise
// the next settle drives Out to v.
//
func (l *Latch) Load(v bool) {
	b := &l.c.blocks[l.id]
	b.state, b.pending = v, v
}

func (c *Circuit) settleLatch(b *block) error {
	data, en := c.signals[b.in[0]].value, c.signals[b.in[1]].value
	if en == Hi && data.Known() {
		b.pending = data.Bool()
	} else {
		b.pending = b.state
	}
	out := b.out[0]
	if c.signals[out].value.Known() {
		return nil
	}
	return c.Set(out, b.state)
}
