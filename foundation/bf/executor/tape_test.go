// File: tape_test.go
// Title: Tape Unit Tests
// Description: Tests tape construction, pointer bounds and cell windows.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial tape tests

package executor

import (
	"reflect"
	"testing"

	bfierror "github.com/msto63/bfi/foundation/core/error"
)

func TestNewTape(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		start   int
		wantErr bool
	}{
		{"Default length", DefaultTapeLength, 0, false},
		{"Start at reference offset", DefaultTapeLength, 1000, false},
		{"Single cell", 1, 0, false},
		{"Last cell", 10, 9, false},
		{"Zero length", 0, 0, true},
		{"Negative length", -5, 0, true},
		{"Negative start", 10, -1, true},
		{"Start past end", 10, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tape, err := NewTape(tt.length, tt.start)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error")
				}
				if !bfierror.HasCode(err, bfierror.CodeInvalidConfig) {
					t.Errorf("Expected INVALID_CONFIG, got %s", bfierror.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tape.Len() != tt.length || tape.Pointer() != tt.start {
				t.Errorf("Expected len %d ptr %d, got len %d ptr %d",
					tt.length, tt.start, tape.Len(), tape.Pointer())
			}
			for i, c := range tape.Cells() {
				if c != 0 {
					t.Fatalf("Cell %d not zero: %d", i, c)
				}
			}
		})
	}
}

func TestTape_Move(t *testing.T) {
	tape, _ := NewTape(3, 1)

	if _, ok := tape.move(1); !ok || tape.Pointer() != 2 {
		t.Errorf("Expected move to 2, pointer %d", tape.Pointer())
	}
	if target, ok := tape.move(1); ok || target != 3 || tape.Pointer() != 2 {
		t.Errorf("Expected rejected move to 3, got target %d ok %v ptr %d", target, ok, tape.Pointer())
	}

	tape.move(-2)
	if target, ok := tape.move(-1); ok || target != -1 || tape.Pointer() != 0 {
		t.Errorf("Expected rejected move to -1, got target %d ok %v ptr %d", target, ok, tape.Pointer())
	}
}

func TestTape_Window(t *testing.T) {
	tape, _ := NewTape(6, 0)
	for i := range tape.cells {
		tape.cells[i] = byte(i + 1)
	}

	tests := []struct {
		name   string
		ptr    int
		radius int
		want   []byte
		offset int
	}{
		{"Clipped left", 0, 2, []byte{1, 2, 3}, 0},
		{"Middle", 3, 1, []byte{3, 4, 5}, 2},
		{"Clipped right", 5, 2, []byte{4, 5, 6}, 3},
		{"Zero radius", 2, 0, []byte{3}, 2},
		{"Radius larger than tape", 2, 100, []byte{1, 2, 3, 4, 5, 6}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tape.ptr = tt.ptr
			got, offset := tape.Window(tt.radius)
			if !reflect.DeepEqual(got, tt.want) || offset != tt.offset {
				t.Errorf("Window(%d) = %v@%d, want %v@%d", tt.radius, got, offset, tt.want, tt.offset)
			}
		})
	}

	cells := tape.Cells()
	cells[0] = 99
	if tape.cells[0] == 99 {
		t.Error("Cells() must return a copy")
	}
}
