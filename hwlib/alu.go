// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/db47h/nandsim"
	"github.com/pkg/errors"
)

// An Opcode is an 8 bits ALU control word. Each bit drives one stage of the
// ALU:
//
//	bit 7, 6: unused
//	bit 5 (ZA): a = 0
//	bit 4 (NA): a = !a (after ZA)
//	bit 3 (ZB): b = 0
//	bit 2 (NB): b = !b (after ZB)
//	bit 1 (NO): out = !out
//	bit 0 (F):  out = F ? a + b + cin : a & b (before NO)
//
type Opcode uint8

// ALU control bits.
//
const (
	OpF Opcode = 1 << iota
	OpNO
	OpNB
	OpZB
	OpNA
	OpZA
)

// Named opcodes. The function of each opcode assumes cin = 0.
//
const (
	AND  Opcode = 0                                      // a & b
	ADD  Opcode = OpF                                    // a + b
	NAND Opcode = OpNO                                   // !(a & b)
	MSUB Opcode = OpNB | OpNO | OpF                      // b - a
	A    Opcode = OpZB | OpF                             // a
	DECA Opcode = OpZB | OpNB | OpF                      // a - 1
	MA   Opcode = OpZB | OpNB | OpNO | OpF               // -a
	SUB  Opcode = OpNA | OpNO | OpF                      // a - b
	NOR  Opcode = OpNA | OpNB                            // !(a | b)
	OR   Opcode = OpNA | OpNB | OpNO                     // a | b
	NA   Opcode = OpNA | OpZB | OpNB                     // !a
	INCA Opcode = OpNA | OpZB | OpNB | OpNO | OpF        // a + 1
	B    Opcode = OpZA | OpF                             // b
	ZERO Opcode = OpZA | OpZB                            // 0
	MONE Opcode = OpZA | OpZB | OpNO                     // -1
	DECB Opcode = OpZA | OpNA | OpF                      // b - 1
	MB   Opcode = OpZA | OpNA | OpNO | OpF               // -b
	NB   Opcode = OpZA | OpNA | OpNB                     // !b
	INCB Opcode = OpZA | OpNA | OpNB | OpNO | OpF        // b + 1
	ONE  Opcode = OpZA | OpNA | OpZB | OpNB | OpNO | OpF // 1
)

var opNames = map[Opcode]string{
	AND: "AND", ADD: "ADD", NAND: "NAND", MSUB: "MSUB", A: "A", DECA: "DECA",
	MA: "MA", SUB: "SUB", NOR: "NOR", OR: "OR", NA: "NA", INCA: "INCA",
	B: "B", ZERO: "ZERO", MONE: "MONE", DECB: "DECB", MB: "MB", NB: "NB",
	INCB: "INCB", ONE: "ONE",
}

var opByName = func() map[string]Opcode {
	m := make(map[string]Opcode, len(opNames))
	for op, n := range opNames {
		m[n] = op
	}
	return m
}()

// Opcodes returns all named opcodes in increasing order.
//
func Opcodes() []Opcode {
	ops := make([]Opcode, 0, len(opNames))
	for op := 0; op < 256; op++ {
		if _, ok := opNames[Opcode(op)]; ok {
			ops = append(ops, Opcode(op))
		}
	}
	return ops
}

// OpcodeByName returns the opcode with the given name (case-insensitive).
//
func OpcodeByName(name string) (Opcode, bool) {
	op, ok := opByName[strings.ToUpper(name)]
	return op, ok
}

func (op Opcode) String() string {
	if n, ok := opNames[op]; ok {
		return n
	}
	return "OP(" + strconv.Itoa(int(op)) + ")"
}

// Eval computes the result of op on a and b for n-bits operands, the way the
// ALU does. n must be in the range [1, 64].
//
func (op Opcode) Eval(a, b uint64, cin bool, n int) (out uint64, cout bool) {
	mask := ^uint64(0)
	if n < 64 {
		mask = uint64(1)<<uint(n) - 1
	}
	a, b = a&mask, b&mask
	if op&OpZA != 0 {
		a = 0
	}
	if op&OpNA != 0 {
		a = ^a & mask
	}
	if op&OpZB != 0 {
		b = 0
	}
	if op&OpNB != 0 {
		b = ^b & mask
	}
	var ci uint64
	if cin {
		ci = 1
	}
	sum, carry := bits.Add64(a, b, ci)
	cout = carry != 0 || sum > mask
	if op&OpF != 0 {
		out = sum & mask
	} else {
		out = a & b
	}
	if op&OpNO != 0 {
		out = ^out & mask
	}
	return out, cout
}

// An ALU is an n-bits arithmetic and logic unit.
//
//	Inputs: a[n], b[n], op[8], cin
//	Outputs: out[n], cout
//	Function: see Opcode
//
// op[7] is the F bit (the lsb of the opcode). cout is the carry out of the
// adder, whatever the value of F.
//
type ALU struct {
	Out  nandsim.Word
	Cout nandsim.Signal
}

// NewALU adds an n-bits ALU to the circuit, where n = len(a).
//
func NewALU(c *nandsim.Circuit, a, b, op nandsim.Word, cin nandsim.Signal, out nandsim.Word) (*ALU, error) {
	p := c.Chip("ALU")
	n := len(a)
	a, _ = p.InputWord("a", a, n)
	b, err := p.InputWord("b", b, n)
	if err != nil {
		return nil, errors.Wrap(err, "ALU")
	}
	if op, err = p.InputWord("op", op, 8); err != nil {
		return nil, errors.Wrap(err, "ALU")
	}
	cin = p.Input(cin)
	if out, err = p.OutputWord("out", out, n); err != nil {
		return nil, errors.Wrap(err, "ALU")
	}
	cout := p.Output(nandsim.NC)

	zero := Zero(c, n)
	x, err := zeroNeg(c, a, zero, op[2], op[3])
	if err != nil {
		return nil, errors.Wrap(err, "ALU: operand a")
	}
	y, err := zeroNeg(c, b, zero, op[4], op[5])
	if err != nil {
		return nil, errors.Wrap(err, "ALU: operand b")
	}
	sum, err := NewAdder(c, x, y, cin, nil)
	if err != nil {
		return nil, errors.Wrap(err, "ALU")
	}
	and, err := AndN(c, x, y, nil)
	if err != nil {
		return nil, errors.Wrap(err, "ALU")
	}
	r, err := MuxN(c, and, sum.Out, op[7], nil)
	if err != nil {
		return nil, errors.Wrap(err, "ALU")
	}
	if _, err = negate(c, r, op[6], out); err != nil {
		return nil, errors.Wrap(err, "ALU: result")
	}
	And(c, sum.Cout, nandsim.True, cout)
	return &ALU{Out: out, Cout: cout}, nil
}

// zeroNeg returns !(z ? 0 : w) if neg is set, (z ? 0 : w) otherwise.
//
func zeroNeg(c *nandsim.Circuit, w, zero nandsim.Word, z, neg nandsim.Signal) (nandsim.Word, error) {
	w, err := MuxN(c, w, zero, z, nil)
	if err != nil {
		return nil, err
	}
	return negate(c, w, neg, nil)
}

// negate returns !w if neg is set, w otherwise.
//
func negate(c *nandsim.Circuit, w nandsim.Word, neg nandsim.Signal, out nandsim.Word) (nandsim.Word, error) {
	nw, err := NotN(c, w, nil)
	if err != nil {
		return nil, err
	}
	return MuxN(c, w, nw, neg, out)
}
