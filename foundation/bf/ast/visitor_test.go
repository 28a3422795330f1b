// File: visitor_test.go
// Title: Instruction Tree Traversal Tests
// Description: Tests for Walk, Inspect, Count, Source and Dump.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial traversal tests

package ast

import (
	"strings"
	"testing"
)

func pos(col int) Position { return Position{Offset: col - 1, Line: 1, Column: col} }

// ++[>[-]<-].
func sampleProgram() Program {
	return Program{
		Leaf(OpIncrement, pos(1)),
		Leaf(OpIncrement, pos(2)),
		Loop(Program{
			Leaf(OpMoveRight, pos(4)),
			Loop(Program{Leaf(OpDecrement, pos(6))}, pos(5)),
			Leaf(OpMoveLeft, pos(8)),
			Leaf(OpDecrement, pos(9)),
		}, pos(3)),
		Leaf(OpWriteByte, pos(11)),
	}
}

type recordingVisitor struct {
	events *[]string
}

func (r recordingVisitor) Visit(ins *Instruction, depth int) Visitor {
	if ins == nil {
		*r.events = append(*r.events, "end")
		return nil
	}
	*r.events = append(*r.events, strings.Repeat(".", depth)+ins.Op.String())
	return r
}

func TestWalkOrder(t *testing.T) {
	var events []string
	Walk(recordingVisitor{events: &events}, sampleProgram())

	want := []string{
		"Increment", "Increment", "Loop",
		".MoveRight", ".Loop", "..Decrement", "end",
		".MoveLeft", ".Decrement", "end",
		"WriteByte",
	}
	if strings.Join(events, ",") != strings.Join(want, ",") {
		t.Errorf("Walk order =\n%v\nwant\n%v", events, want)
	}
}

func TestInspectSkipsBody(t *testing.T) {
	var seen []Op
	Inspect(sampleProgram(), func(ins *Instruction, depth int) bool {
		seen = append(seen, ins.Op)
		return ins.Op != OpLoop
	})

	want := []Op{OpIncrement, OpIncrement, OpLoop, OpWriteByte}
	if len(seen) != len(want) {
		t.Fatalf("Inspect saw %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("seen[%d] = %v, want %v", i, seen[i], want[i])
		}
	}
}

func TestCount(t *testing.T) {
	stats := Count(sampleProgram())

	if stats.Leaves != 7 {
		t.Errorf("Leaves = %d, want 7", stats.Leaves)
	}
	if stats.Loops != 2 {
		t.Errorf("Loops = %d, want 2", stats.Loops)
	}
	if stats.MaxDepth != 2 {
		t.Errorf("MaxDepth = %d, want 2", stats.MaxDepth)
	}
	if stats.ByOp[OpIncrement] != 2 || stats.ByOp[OpDecrement] != 2 || stats.ByOp[OpLoop] != 2 {
		t.Errorf("ByOp = %v", stats.ByOp)
	}

	empty := Count(nil)
	if empty.Leaves != 0 || empty.Loops != 0 || empty.MaxDepth != 0 {
		t.Errorf("Count(nil) = %+v", empty)
	}
}

func TestSource(t *testing.T) {
	if got := Source(sampleProgram()); got != "++[>[-]<-]." {
		t.Errorf("Source() = %q", got)
	}
	if got := sampleProgram().String(); got != "++[>[-]<-]." {
		t.Errorf("String() = %q", got)
	}
	if Source(nil) != "" {
		t.Error("Source(nil) should be empty")
	}
}

func TestDump(t *testing.T) {
	want := strings.Join([]string{
		"Increment x2 @1:1",
		"Loop @1:3",
		"  MoveRight @1:4",
		"  Loop @1:5",
		"    Decrement @1:6",
		"  MoveLeft @1:8",
		"  Decrement @1:9",
		"WriteByte @1:11",
	}, "\n") + "\n"

	if got := Dump(sampleProgram()); got != want {
		t.Errorf("Dump() =\n%s\nwant\n%s", got, want)
	}
}
