// File: doc.go
// Title: Parser Package Documentation
// Description: Documents the lexical filter and the structural parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser implementation

/*
Package parser turns bfi source text into an instruction tree.

It works in two stages:

  - Filter scans the source and keeps the eight command characters
    (> < + - . , [ ]) as Tokens, in order. Everything else is a comment.
    Filtering cannot fail.
  - Parse matches brackets and builds the tree. Each matched pair becomes
    an ast.Loop whose body is parsed recursively from the tokens strictly
    between the brackets.

Unbalanced brackets are reported as *ParseError with the code
UNMATCHED_CLOSE or UNMATCHED_OPEN, the absolute token index and the source
position of the offending bracket. A program that fails to parse is never
handed to the executor.
*/
package parser
