// File: visitor.go
// Title: Instruction Tree Traversal
// Description: Depth-first traversal of the instruction tree plus read-only
//              utilities built on it: shape statistics, canonical source and
//              an indented dump.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial traversal utilities

package ast

import (
	"fmt"
	"strings"
)

// Visitor is called for every instruction during Walk. If Visit returns a
// nil Visitor the children of a loop are skipped; otherwise they are walked
// with the returned Visitor. After the children, Visit(nil, depth) is called
// on that Visitor to signal the end of the loop body.
type Visitor interface {
	Visit(ins *Instruction, depth int) Visitor
}

// Walk traverses program depth-first in source order
func Walk(v Visitor, program Program) {
	walk(v, program, 0)
}

func walk(v Visitor, program Program, depth int) {
	for i := range program {
		ins := &program[i]
		w := v.Visit(ins, depth)
		if w == nil || ins.Op != OpLoop {
			continue
		}
		walk(w, ins.Body, depth+1)
		w.Visit(nil, depth+1)
	}
}

type inspector func(*Instruction, int) bool

func (f inspector) Visit(ins *Instruction, depth int) Visitor {
	if ins == nil {
		return nil
	}
	if f(ins, depth) {
		return f
	}
	return nil
}

// Inspect traverses program calling f for every instruction with its
// nesting depth (0 for top level). Returning false skips a loop's body.
func Inspect(program Program, f func(ins *Instruction, depth int) bool) {
	Walk(inspector(f), program)
}

// Stats describes the shape of a program
type Stats struct {
	Leaves   int        // leaf instructions, all depths
	Loops    int        // loop nodes, all depths
	MaxDepth int        // deepest loop nesting; 0 without loops
	ByOp     map[Op]int // instructions per op, loops included
}

// Count computes the statistics of program
func Count(program Program) Stats {
	stats := Stats{ByOp: make(map[Op]int)}
	Inspect(program, func(ins *Instruction, depth int) bool {
		stats.ByOp[ins.Op]++
		if ins.Op == OpLoop {
			stats.Loops++
			if depth+1 > stats.MaxDepth {
				stats.MaxDepth = depth + 1
			}
		} else {
			stats.Leaves++
		}
		return true
	})
	return stats
}

// Source returns the canonical command-only text of program. Parsing the
// result yields an identical tree (positions aside).
func Source(program Program) string {
	var b strings.Builder
	for _, ins := range program {
		writeSource(&b, ins)
	}
	return b.String()
}

func writeSource(b *strings.Builder, ins Instruction) {
	if ins.Op != OpLoop {
		b.WriteByte(ins.Op.Symbol())
		return
	}
	b.WriteByte('[')
	for _, child := range ins.Body {
		writeSource(b, child)
	}
	b.WriteByte(']')
}

// Dump returns an indented listing of program, one instruction per line.
// Consecutive identical leaves are shown on one line with a repeat count;
// the tree itself is not altered.
func Dump(program Program) string {
	var b strings.Builder
	dump(&b, program, 0)
	return b.String()
}

func dump(b *strings.Builder, program Program, depth int) {
	indent := strings.Repeat("  ", depth)
	for i := 0; i < len(program); {
		ins := program[i]
		if ins.Op == OpLoop {
			fmt.Fprintf(b, "%sLoop @%s\n", indent, ins.Pos)
			dump(b, ins.Body, depth+1)
			i++
			continue
		}

		run := 1
		for i+run < len(program) && program[i+run].Op == ins.Op {
			run++
		}
		if run > 1 {
			fmt.Fprintf(b, "%s%s x%d @%s\n", indent, ins.Op, run, ins.Pos)
		} else {
			fmt.Fprintf(b, "%s%s @%s\n", indent, ins.Op, ins.Pos)
		}
		i += run
	}
}
