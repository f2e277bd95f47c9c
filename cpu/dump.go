// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cpu

import (
	"bufio"
	"fmt"
	"io"
)

// HexDump writes a human readable dump of the registers and memory to w:
//
//	CLOCK: 0a
//	X: 05  Y: 03  PC: 05  OP: 01
//
//	00: 3f 01 01 01 01 00 00 00 00 00 00 00 00 00 00 00
//	10: 00 00 ...
//
func (m *Machine) HexDump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	r := m.Registers()
	fmt.Fprintf(bw, "CLOCK: %02x\n", r.Clock)
	fmt.Fprintf(bw, "X: %02x  Y: %02x  PC: %02x  OP: %02x\n\n", r.X, r.Y, r.PC, r.OP)
	for row := 0; row < MemSize; row += 16 {
		fmt.Fprintf(bw, "%02x:", row)
		for i := row; i < row+16; i++ {
			fmt.Fprintf(bw, " %02x", m.Peek(uint8(i)))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
