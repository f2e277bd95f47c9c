// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits.
//
package hwtest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/db47h/nandsim"
	"github.com/pkg/errors"
)

// Eval runs one simulation tic: it drives each word in[i] with vals[i],
// settles the circuit, reads the value of every word in out and commits.
//
// It fails if any output is still unknown after settling. On failure, the
// inputs are reset and the tic is not committed: the circuit can be driven
// again right away.
//
func Eval(c *nandsim.Circuit, in []nandsim.Word, vals []uint64, out []nandsim.Word) ([]uint64, error) {
	if len(in) != len(vals) {
		return nil, errors.Errorf("got %d input values for %d inputs", len(vals), len(in))
	}
	fail := func(err error) ([]uint64, error) {
		for _, w := range in {
			w.Reset(c)
		}
		return nil, err
	}
	for i, w := range in {
		if err := c.DriveWord(w, vals[i]); err != nil {
			return fail(errors.Wrapf(err, "input %d", i))
		}
	}
	if err := c.Settle(); err != nil {
		return fail(err)
	}
	res := make([]uint64, len(out))
	for i, w := range out {
		v, ok := w.Uint(c)
		if !ok {
			return fail(errors.Errorf("output %d is unknown: %s", i, w.Format(c)))
		}
		res[i] = v
	}
	return res, c.Commit()
}

// Tic settles and commits c without driving any input.
//
func Tic(c *nandsim.Circuit) error {
	if err := c.Settle(); err != nil {
		return err
	}
	return c.Commit()
}

func mask(w nandsim.Word) uint64 {
	if len(w) >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(len(w)) - 1
}

// CompareFunc compares the outputs of a circuit against a reference function
// given the same inputs. It tries all inputs set to 0, then all set to 1, then
// random input vectors.
//
// The inputs and outputs are passed to f and returned by it in the same order
// as in and out.
//
func CompareFunc(t testing.TB, c *nandsim.Circuit, in, out []nandsim.Word, f func(in []uint64) []uint64) {
	t.Helper()

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	errString := func(vals []uint64, o int, ex, got uint64) string {
		var b strings.Builder
		for i, v := range vals {
			if b.Len() > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "in%d=%d", i, v)
		}
		return fmt.Sprintf("\nExpected %s => out%d=%d\nGot %d", b.String(), o, ex, got)
	}

	bits := 0
	for _, w := range in {
		bits += len(w)
	}
	if bits > 10 {
		bits = 10
	}
	iter := 1 << uint(bits)

	start := time.Now()
	tics := c.Tics()
	vals := make([]uint64, len(in))
	check := func() {
		t.Helper()
		got, err := Eval(c, in, vals, out)
		if err != nil {
			t.Fatal(err)
		}
		exp := f(vals)
		for o := range out {
			if e := exp[o] & mask(out[o]); got[o] != e {
				t.Fatal(errString(vals, o, e, got[o]))
			}
		}
	}

	// try all 0
	check()

	// try all 1
	for i, w := range in {
		vals[i] = mask(w)
	}
	check()

	for n := 0; n < iter; n++ {
		for i, w := range in {
			vals[i] = rnd.Uint64() & mask(w)
		}
		check()
	}

	elapsed := time.Since(start)
	signals, blocks := c.Size()
	tics = c.Tics() - tics
	t.Logf("%d signals, %d blocks. %d tics in %v => %.2f Hz", signals, blocks, tics, elapsed, float64(tics)/(float64(elapsed)/float64(time.Second)))
}
