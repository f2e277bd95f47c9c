// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/nandsim"
	"github.com/pkg/errors"
)

// LeftShift adds a barrel shifter to the circuit, where n = len(in) and
// k = len(shift).
//
//	Inputs: in[n], shift[k]
//	Outputs: out[n]
//	Function: out = in << shift
//
// The shifter is built as a cascade of muxes, one per power of two below n,
// driven by the low bits of shift. Any of the remaining high bits being set
// forces the output to zero.
//
func LeftShift(c *nandsim.Circuit, in, shift nandsim.Word, out nandsim.Word) (nandsim.Word, error) {
	p := c.Chip("LSHIFT")
	n := len(in)
	in, _ = p.InputWord("in", in, n)
	shift, _ = p.InputWord("shift", shift, len(shift))
	out, err := p.OutputWord("out", out, n)
	if err != nil {
		return nil, errors.Wrap(err, "LeftShift")
	}

	stages := 0
	for 1<<uint(stages) < n {
		stages++
	}
	if stages > len(shift) {
		stages = len(shift)
	}
	x := in
	for j := 0; j < stages; j++ {
		d := 1 << uint(j)
		shifted := make(nandsim.Word, n)
		for i := range shifted {
			if i+d < n {
				shifted[i] = x[i+d]
			} else {
				shifted[i] = nandsim.False
			}
		}
		if x, err = MuxN(c, x, shifted, shift[len(shift)-1-j], nil); err != nil {
			return nil, errors.Wrap(err, "LeftShift")
		}
	}

	big := nandsim.False
	if high := shift[:len(shift)-stages]; len(high) > 0 {
		big = OrWay(c, high, nandsim.NC)
	}
	if _, err = MuxN(c, x, Zero(c, n), big, out); err != nil {
		return nil, errors.Wrap(err, "LeftShift")
	}
	return out, nil
}
