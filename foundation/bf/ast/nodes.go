// File: nodes.go
// Title: Instruction Tree Node Definitions
// Description: Defines the instruction kinds, the Instruction node and the
//              Program root, with their string representations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial node definitions

package ast

import (
	"fmt"
	"strings"
)

// Op identifies the kind of an instruction
type Op int

const (
	OpMoveRight Op = iota // >
	OpMoveLeft            // <
	OpIncrement           // +
	OpDecrement           // -
	OpReadByte            // ,
	OpWriteByte           // .
	OpLoop                // [ ... ]
)

// String returns the name of the op
func (o Op) String() string {
	switch o {
	case OpMoveRight:
		return "MoveRight"
	case OpMoveLeft:
		return "MoveLeft"
	case OpIncrement:
		return "Increment"
	case OpDecrement:
		return "Decrement"
	case OpReadByte:
		return "ReadByte"
	case OpWriteByte:
		return "WriteByte"
	case OpLoop:
		return "Loop"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Symbol returns the source character of a leaf op. Loop has no single
// symbol and returns 0.
func (o Op) Symbol() byte {
	switch o {
	case OpMoveRight:
		return '>'
	case OpMoveLeft:
		return '<'
	case OpIncrement:
		return '+'
	case OpDecrement:
		return '-'
	case OpReadByte:
		return ','
	case OpWriteByte:
		return '.'
	default:
		return 0
	}
}

// IsLeaf reports whether o is one of the six non-looping kinds
func (o Op) IsLeaf() bool {
	return o >= OpMoveRight && o <= OpWriteByte
}

// Position represents a position in the source text
type Position struct {
	Offset int // Byte offset (0-based)
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position was set
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Instruction is a node of the instruction tree. Body is only used by
// OpLoop; leaves leave it nil. For a loop, Pos is the opening bracket.
type Instruction struct {
	Op   Op
	Body Program
	Pos  Position
}

// Leaf creates a leaf instruction
func Leaf(op Op, pos Position) Instruction {
	return Instruction{Op: op, Pos: pos}
}

// Loop creates a loop instruction owning body
func Loop(body Program, pos Position) Instruction {
	return Instruction{Op: OpLoop, Body: body, Pos: pos}
}

// String returns the canonical source text of the instruction
func (i Instruction) String() string {
	var b strings.Builder
	writeSource(&b, i)
	return b.String()
}

// Program is an ordered sequence of instructions
type Program []Instruction

// String returns the canonical source text of the program
func (p Program) String() string {
	return Source(p)
}
