// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

import (
	"strconv"
)

// A ConflictError is returned when a Signal that already carries a value is
// set to the opposite value within the same tic. This is either a wiring bug or
// two drivers contending for the same Signal.
//
type ConflictError struct {
	Signal Signal
	Have   Value
	Want   Value
}

func (e *ConflictError) Error() string {
	return "signal " + e.Signal.String() + " set to " + e.Want.String() + " but already " + e.Have.String()
}

// A ShapeError is returned when a Word bound to a port does not have the
// expected width.
//
type ShapeError struct {
	Block string // block name
	Port  string
	Want  int
	Got   int
}

func (e *ShapeError) Error() string {
	return e.Block + "." + e.Port + ": expected " + strconv.Itoa(e.Want) + " signals, got " + strconv.Itoa(e.Got)
}

// An InvariantError reports an attempt to set or reset a constant Signal, to
// drive a Signal that already has a driver, or a broken constant rail.
//
type InvariantError struct {
	Signal Signal
	Op     string
	Msg    string
}

func (e *InvariantError) Error() string {
	return e.Op + " signal " + e.Signal.String() + ": " + e.Msg
}
