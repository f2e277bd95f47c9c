// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package asm parses program source for the cpu package into a memory image.
//
// A program is a list of items separated by commas, white space or new lines.
// A '#' starts a comment that runs until the end of the line. Items are:
//
//	ADD, inca     ALU opcode names (case-insensitive)
//	42, 0x2a      raw bytes, decimal or hexadecimal
//	@16, @0x10    moves the load address
//
package asm

import (
	"strconv"
	"strings"

	"github.com/db47h/nandsim/hwlib"
	"github.com/pkg/errors"
)

// Size is the size of a memory image.
//
const Size = 256

// An Image is a memory image.
//
type Image struct {
	Data [Size]byte
	// Len is the number of bytes written by the program.
	Len int
	// End is the address following the last byte written.
	End int
}

// Bytes returns the image up to its last written byte.
//
func (img *Image) Bytes() []byte { return img.Data[:img.End] }

// Parse parses the program source src.
//
func Parse(src string) (*Image, error) {
	var (
		img  Image
		addr int
	)
	l := NewLexer(src)
	for {
		i := l.Lex()
		var v byte
		switch i.Type {
		case EOF:
			return &img, nil
		case Ident:
			op, ok := hwlib.OpcodeByName(i.Value)
			if !ok {
				return nil, parseError(src, i.Pos, "unknown opcode "+strconv.Quote(i.Value))
			}
			v = byte(op)
		case Int:
			n, err := parseInt(i.Value)
			if err != nil {
				return nil, parseError(src, i.Pos, err.Error())
			}
			v = n
		case Origin:
			n, err := parseInt(i.Value)
			if err != nil {
				return nil, parseError(src, i.Pos, err.Error())
			}
			addr = int(n)
			continue
		default:
			return nil, parseError(src, i.Pos, "unexpected "+i.String())
		}
		if addr >= Size {
			return nil, parseError(src, i.Pos, "program does not fit in memory")
		}
		img.Data[addr] = v
		img.Len++
		addr++
		if addr > img.End {
			img.End = addr
		}
	}
}

func parseInt(s string) (byte, error) {
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s, base = s[2:], 16
	}
	n, err := strconv.ParseUint(s, base, 8)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return 0, errors.New("value out of range [0, 255]")
		}
		return 0, errors.New("malformed integer")
	}
	return byte(n), nil
}

func parseError(in string, pos int, msg string) error {
	line, col := 1, pos+1
	if nl := strings.LastIndexByte(in[:pos], '\n'); nl >= 0 {
		line = strings.Count(in[:pos], "\n") + 1
		col = pos - nl
	}
	return errors.Errorf("line %d, col %d (pos %d): %s", line, col, pos+1, msg)
}
