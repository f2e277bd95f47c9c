// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

// Value is the tri-state value carried by a Signal.
//
type Value int8

// Signal values.
//
const (
	Unknown Value = iota
	Lo
	Hi
)

// Bool converts a boolean to a known Value.
//
func Bool(b bool) Value {
	if b {
		return Hi
	}
	return Lo
}

// Known returns true if v is either Lo or Hi.
//
func (v Value) Known() bool { return v != Unknown }

// Bool returns true if v is Hi. Unknown maps to false.
//
func (v Value) Bool() bool { return v == Hi }

func (v Value) String() string {
	switch v {
	case Lo:
		return "0"
	case Hi:
		return "1"
	}
	return "x"
}
