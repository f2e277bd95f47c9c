// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/nandsim"

// Const returns a constant word of the given width with value v, wired to the
// circuit's constant rails. Bits of v that do not fit are ignored.
//
func Const(c *nandsim.Circuit, v uint64, width int) nandsim.Word {
	return c.Const(v, width)
}

// Zero returns a constant word of the given width with all bits set to false.
//
func Zero(c *nandsim.Circuit, width int) nandsim.Word {
	return c.Const(0, width)
}
