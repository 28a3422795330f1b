// File: doc.go
// Title: Instruction Tree Package Documentation
// Description: Documents the instruction tree produced by the parser and
//              consumed by the executor.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial instruction tree

/*
Package ast defines the instruction tree of a bfi program.

A Program is an ordered list of Instructions. Six instruction kinds are
leaves (move right/left, increment, decrement, read, write); Loop is the
only composite kind and owns its Body. The tree is built once by the parser
and never mutated afterwards, so it can be shared freely between readers.

The package also provides traversal (Walk, Inspect) and a few read-only
utilities built on it: Count for shape statistics, Source for the canonical
command-only text of a program, and Dump for an indented listing.
*/
package ast
