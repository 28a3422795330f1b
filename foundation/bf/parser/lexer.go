// File: lexer.go
// Title: Lexical Filter
// Description: Converts source text into the stream of command tokens,
//              discarding every other character. Tracks byte offset, line
//              and column of each token for diagnostics.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial lexical filter

package parser

import (
	"fmt"
	"unicode/utf8"

	"github.com/msto63/bfi/foundation/bf/ast"
)

// TokenKind represents the type of a lexical token
type TokenKind int

const (
	TokenMoveRight TokenKind = iota // >
	TokenMoveLeft                   // <
	TokenIncrement                  // +
	TokenDecrement                  // -
	TokenReadByte                   // ,
	TokenWriteByte                  // .
	TokenLoopStart                  // [
	TokenLoopEnd                    // ]
)

// String returns a string representation of the token kind
func (k TokenKind) String() string {
	switch k {
	case TokenMoveRight:
		return "MOVE_RIGHT"
	case TokenMoveLeft:
		return "MOVE_LEFT"
	case TokenIncrement:
		return "INCREMENT"
	case TokenDecrement:
		return "DECREMENT"
	case TokenReadByte:
		return "READ_BYTE"
	case TokenWriteByte:
		return "WRITE_BYTE"
	case TokenLoopStart:
		return "LOOP_START"
	case TokenLoopEnd:
		return "LOOP_END"
	default:
		return fmt.Sprintf("TOKEN(%d)", int(k))
	}
}

// Symbol returns the source character of the token kind
func (k TokenKind) Symbol() byte {
	switch k {
	case TokenMoveRight:
		return '>'
	case TokenMoveLeft:
		return '<'
	case TokenIncrement:
		return '+'
	case TokenDecrement:
		return '-'
	case TokenReadByte:
		return ','
	case TokenWriteByte:
		return '.'
	case TokenLoopStart:
		return '['
	case TokenLoopEnd:
		return ']'
	default:
		return 0
	}
}

// Op returns the leaf op for the six non-bracket kinds
func (k TokenKind) Op() (ast.Op, bool) {
	switch k {
	case TokenMoveRight:
		return ast.OpMoveRight, true
	case TokenMoveLeft:
		return ast.OpMoveLeft, true
	case TokenIncrement:
		return ast.OpIncrement, true
	case TokenDecrement:
		return ast.OpDecrement, true
	case TokenReadByte:
		return ast.OpReadByte, true
	case TokenWriteByte:
		return ast.OpWriteByte, true
	default:
		return 0, false
	}
}

// Token is one command character with its source position
type Token struct {
	Kind TokenKind
	Pos  ast.Position
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("%s(%c)@%s", t.Kind, t.Kind.Symbol(), t.Pos)
}

func kindOf(r rune) (TokenKind, bool) {
	switch r {
	case '>':
		return TokenMoveRight, true
	case '<':
		return TokenMoveLeft, true
	case '+':
		return TokenIncrement, true
	case '-':
		return TokenDecrement, true
	case ',':
		return TokenReadByte, true
	case '.':
		return TokenWriteByte, true
	case '[':
		return TokenLoopStart, true
	case ']':
		return TokenLoopEnd, true
	default:
		return 0, false
	}
}

// Lexer scans source text incrementally
type Lexer struct {
	input  string
	offset int
	line   int
	column int
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	return &Lexer{input: input, line: 1, column: 1}
}

// Next returns the next command token. The second result is false once the
// input is exhausted.
func (l *Lexer) Next() (Token, bool) {
	for l.offset < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.offset:])
		pos := ast.Position{Offset: l.offset, Line: l.line, Column: l.column}

		l.offset += size
		if r == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}

		if kind, ok := kindOf(r); ok {
			return Token{Kind: kind, Pos: pos}, true
		}
	}
	return Token{}, false
}

// Filter returns the command tokens of source in order. It never fails;
// input without commands yields an empty slice.
func Filter(source string) []Token {
	tokens := make([]Token, 0, len(source))
	lexer := NewLexer(source)
	for {
		tok, ok := lexer.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// Kinds projects tokens onto their kinds
func Kinds(tokens []Token) []TokenKind {
	kinds := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}
