// File: lexer_test.go
// Title: Lexical Filter Unit Tests
// Description: Tests token filtering, position tracking and kind rendering.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial lexer tests

package parser

import (
	"reflect"
	"testing"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []TokenKind
	}{
		{
			name:  "Comments are dropped",
			input: "a+b>c",
			want:  []TokenKind{TokenIncrement, TokenMoveRight},
		},
		{
			name:  "Empty input",
			input: "",
			want:  []TokenKind{},
		},
		{
			name:  "No commands",
			input: "hello world\n",
			want:  []TokenKind{},
		},
		{
			name:  "All eight commands",
			input: "><+-,.[]",
			want: []TokenKind{
				TokenMoveRight, TokenMoveLeft, TokenIncrement, TokenDecrement,
				TokenReadByte, TokenWriteByte, TokenLoopStart, TokenLoopEnd,
			},
		},
		{
			name:  "Unbalanced brackets still filter",
			input: "]][",
			want:  []TokenKind{TokenLoopEnd, TokenLoopEnd, TokenLoopStart},
		},
		{
			name:  "Multibyte comments",
			input: "ü+→-",
			want:  []TokenKind{TokenIncrement, TokenDecrement},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Kinds(Filter(tt.input))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	input := "++ loop [>+<-] done."
	first := Filter(input)

	var canonical []byte
	for _, tok := range first {
		canonical = append(canonical, tok.Kind.Symbol())
	}
	second := Filter(string(canonical))

	if !reflect.DeepEqual(Kinds(first), Kinds(second)) {
		t.Errorf("Refiltering changed kinds: %v vs %v", Kinds(first), Kinds(second))
	}
}

func TestLexer_Positions(t *testing.T) {
	input := "x+\n ü[\n]"
	lexer := NewLexer(input)

	want := []struct {
		kind   TokenKind
		offset int
		line   int
		column int
	}{
		{TokenIncrement, 1, 1, 2},
		{TokenLoopStart, 6, 2, 3},
		{TokenLoopEnd, 8, 3, 1},
	}

	for i, w := range want {
		tok, ok := lexer.Next()
		if !ok {
			t.Fatalf("Token %d: lexer exhausted early", i)
		}
		if tok.Kind != w.kind {
			t.Errorf("Token %d: expected kind %s, got %s", i, w.kind, tok.Kind)
		}
		if tok.Pos.Offset != w.offset || tok.Pos.Line != w.line || tok.Pos.Column != w.column {
			t.Errorf("Token %d: expected %d@%d:%d, got %d@%d:%d", i,
				w.offset, w.line, w.column, tok.Pos.Offset, tok.Pos.Line, tok.Pos.Column)
		}
	}

	if _, ok := lexer.Next(); ok {
		t.Error("Expected lexer to be exhausted")
	}
}

func TestTokenKind_Rendering(t *testing.T) {
	tests := []struct {
		kind   TokenKind
		name   string
		symbol byte
	}{
		{TokenMoveRight, "MOVE_RIGHT", '>'},
		{TokenMoveLeft, "MOVE_LEFT", '<'},
		{TokenIncrement, "INCREMENT", '+'},
		{TokenDecrement, "DECREMENT", '-'},
		{TokenReadByte, "READ_BYTE", ','},
		{TokenWriteByte, "WRITE_BYTE", '.'},
		{TokenLoopStart, "LOOP_START", '['},
		{TokenLoopEnd, "LOOP_END", ']'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.kind.Symbol(); got != tt.symbol {
				t.Errorf("Symbol() = %q, want %q", got, tt.symbol)
			}
			_, isLeaf := tt.kind.Op()
			wantLeaf := tt.kind != TokenLoopStart && tt.kind != TokenLoopEnd
			if isLeaf != wantLeaf {
				t.Errorf("Op() leaf = %v, want %v", isLeaf, wantLeaf)
			}
		})
	}

	if got := TokenKind(42).String(); got != "TOKEN(42)" {
		t.Errorf("Unknown kind rendered as %q", got)
	}
}
