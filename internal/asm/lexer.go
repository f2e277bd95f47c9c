// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package asm

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Type is the type of a lexical item.
//
type Type int

// Tokens
const (
	EOF Type = iota
	Raw
	Ident
	Int
	Origin
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "end of input"
	case Raw:
		return "character"
	case Ident:
		return "identifier"
	case Int:
		return "integer"
	case Origin:
		return "origin"
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// An Item is a lexical item. Pos is the byte offset of the item in the input.
//
type Item struct {
	Type  Type
	Pos   int
	Value string
}

func (i Item) String() string {
	if i.Type == EOF {
		return i.Type.String()
	}
	return i.Type.String() + " " + strconv.Quote(i.Value)
}

// StateFn is a lexer state function.
//
type StateFn func(l *Lexer) StateFn

// Lexer splits program source into items.
//
type Lexer struct {
	input string
	start int
	pos   int
	width int
	state StateFn
	items []Item
}

// NewLexer returns a new lexer for the given input.
//
func NewLexer(input string) *Lexer {
	return &Lexer{input: input, state: lexInit}
}

// Lex returns the next item in the input stream. Once the end of input or an
// invalid character has been reached, Lex keeps returning EOF.
//
func (l *Lexer) Lex() Item {
	for len(l.items) == 0 {
		l.state = l.state(l)
	}
	i := l.items[0]
	l.items = l.items[1:]
	return i
}

const eof = -1

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += w
	l.width = w
	return r
}

func (l *Lexer) backup() { l.pos -= l.width }

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) acceptWhile(f func(rune) bool) {
	for f(l.next()) {
	}
	l.backup()
}

func (l *Lexer) emit(t Type) {
	l.items = append(l.items, Item{Type: t, Pos: l.start, Value: l.input[l.start:l.pos]})
	l.start = l.pos
}

func (l *Lexer) ignore() { l.start = l.pos }

func isSpace(r rune) bool { return r == ',' || unicode.IsSpace(r) }

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

func isHexDigit(r rune) bool {
	return isDigit(r) || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F'
}

func isIdent(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' }

func lexInit(l *Lexer) StateFn {
	r := l.next()
	switch {
	case r == eof:
		return lexEOF
	case isSpace(r):
		l.acceptWhile(isSpace)
		l.ignore()
	case r == '#':
		l.acceptWhile(func(r rune) bool { return r != '\n' && r != eof })
		l.ignore()
	case unicode.IsLetter(r) || r == '_':
		l.acceptWhile(isIdent)
		l.emit(Ident)
	case isDigit(r):
		lexNumber(l)
		l.emit(Int)
	case r == '@':
		if !isDigit(l.peek()) {
			l.emit(Raw)
			return lexEOF
		}
		l.ignore()
		l.next()
		lexNumber(l)
		l.emit(Origin)
	default:
		l.emit(Raw)
		return lexEOF
	}
	return lexInit
}

// lexNumber scans the rest of a decimal or 0x prefixed hexadecimal number
// whose first digit has already been read.
//
func lexNumber(l *Lexer) {
	if l.input[l.pos-1] == '0' && (l.peek() == 'x' || l.peek() == 'X') {
		l.next()
		l.acceptWhile(isHexDigit)
		return
	}
	l.acceptWhile(isDigit)
}

// lexEOF places the lexer in End-Of-File state.
// Once in this state, the lexer will only emit EOF.
//
func lexEOF(l *Lexer) StateFn {
	l.start = l.pos
	l.items = append(l.items, Item{Type: EOF, Pos: l.pos})
	return lexEOF
}
