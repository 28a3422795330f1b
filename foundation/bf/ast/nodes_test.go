// File: nodes_test.go
// Title: Instruction Tree Node Tests
// Description: Tests for op names, symbols and node constructors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial node tests

package ast

import "testing"

func TestOpStringAndSymbol(t *testing.T) {
	tests := []struct {
		op     Op
		name   string
		symbol byte
		leaf   bool
	}{
		{OpMoveRight, "MoveRight", '>', true},
		{OpMoveLeft, "MoveLeft", '<', true},
		{OpIncrement, "Increment", '+', true},
		{OpDecrement, "Decrement", '-', true},
		{OpReadByte, "ReadByte", ',', true},
		{OpWriteByte, "WriteByte", '.', true},
		{OpLoop, "Loop", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.op.Symbol(); got != tt.symbol {
				t.Errorf("Symbol() = %q, want %q", got, tt.symbol)
			}
			if got := tt.op.IsLeaf(); got != tt.leaf {
				t.Errorf("IsLeaf() = %v, want %v", got, tt.leaf)
			}
		})
	}

	if got := Op(42).String(); got != "Op(42)" {
		t.Errorf("unknown op String() = %q", got)
	}
}

func TestInstructionString(t *testing.T) {
	loop := Loop(Program{
		Leaf(OpDecrement, Position{}),
		Loop(nil, Position{}),
	}, Position{Line: 1, Column: 1})

	if got := loop.String(); got != "[-[]]" {
		t.Errorf("String() = %q, want %q", got, "[-[]]")
	}
	if loop.Op != OpLoop || len(loop.Body) != 2 {
		t.Errorf("Loop() built %+v", loop)
	}
}

func TestPosition(t *testing.T) {
	p := Position{Offset: 10, Line: 2, Column: 4}
	if p.String() != "2:4" {
		t.Errorf("String() = %q", p.String())
	}
	if !p.IsValid() || (Position{}).IsValid() {
		t.Error("IsValid() mismatch")
	}
}
