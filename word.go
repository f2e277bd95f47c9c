// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

import (
	"strings"

	"github.com/pkg/errors"
)

// A Word is a fixed width, ordered group of signals (a bus) representing an
// unsigned integer. Word[0] is the most significant bit.
//
// A Word has no state of its own: all its methods delegate to its signals.
// Integer conversions are limited to 64 bits.
//
type Word []Signal

// NewWord allocates a word of n new signals.
//
func (c *Circuit) NewWord(n int) Word {
	w := make(Word, n)
	for i := range w {
		w[i] = c.NewSignal()
	}
	return w
}

// WordOf returns a constant word made of the constant rails. bits[0] is the
// most significant bit.
//
func (c *Circuit) WordOf(bits ...bool) Word {
	w := make(Word, len(bits))
	for i, b := range bits {
		w[i] = rail(b)
	}
	return w
}

// Const returns a constant word of the given width with value v.
//
func (c *Circuit) Const(v uint64, width int) Word {
	w := make(Word, width)
	for i := width - 1; i >= 0; i-- {
		w[i] = rail(v&1 != 0)
		v >>= 1
	}
	return w
}

func rail(b bool) Signal {
	if b {
		return True
	}
	return False
}

// Concat returns a new word made of the concatenation of ws.
//
func Concat(ws ...Word) Word {
	n := 0
	for _, w := range ws {
		n += len(w)
	}
	r := make(Word, 0, n)
	for _, w := range ws {
		r = append(r, w...)
	}
	return r
}

// Uint returns the value of w as an unsigned integer. The second return value
// is false if any signal in w is unknown.
//
func (w Word) Uint(c *Circuit) (uint64, bool) {
	var v uint64
	for _, s := range w {
		b := c.Get(s)
		if !b.Known() {
			return 0, false
		}
		v <<= 1
		if b == Hi {
			v |= 1
		}
	}
	return v, true
}

// SetUint sets the signals of w to the bits of v. Bits of v that do not fit in
// w are ignored.
//
func (w Word) SetUint(c *Circuit, v uint64) error {
	for i := len(w) - 1; i >= 0; i-- {
		if err := c.Set(w[i], v&1 != 0); err != nil {
			return errors.Wrapf(err, "bit %d", len(w)-1-i)
		}
		v >>= 1
	}
	return nil
}

// Reset resets every signal in w. Constant signals are left untouched.
//
func (w Word) Reset(c *Circuit) {
	for _, s := range w {
		c.reset(s)
	}
}

// Values returns the values of the signals in w.
//
func (w Word) Values(c *Circuit) []Value {
	vs := make([]Value, len(w))
	for i, s := range w {
		vs[i] = c.Get(s)
	}
	return vs
}

// Format returns the bits of w as a string, most significant bit first, with
// unknown bits shown as 'x'.
//
func (w Word) Format(c *Circuit) string {
	var b strings.Builder
	b.Grow(len(w))
	for _, s := range w {
		b.WriteString(c.Get(s).String())
	}
	return b.String()
}
