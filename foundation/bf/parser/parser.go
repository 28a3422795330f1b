// File: parser.go
// Title: Structural Parser
// Description: Matches loop brackets in a token sequence and builds the
//              instruction tree. Each matched bracket pair becomes a Loop
//              node whose body is parsed recursively. Unbalanced brackets
//              are reported with absolute token index and source position.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser implementation
// - 2026-10-19 v0.1.1: Depth counter instead of an open-bracket stack per level

package parser

import (
	"errors"
	"fmt"

	"github.com/msto63/bfi/foundation/bf/ast"
	bfierror "github.com/msto63/bfi/foundation/core/error"
	bfilog "github.com/msto63/bfi/foundation/core/log"
)

// ParseError represents a structural error with position information
type ParseError struct {
	code    bfierror.Code
	Message string
	Index   int // absolute index into the token sequence
	Pos     ast.Position
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("%s at token %d (line %d, column %d)",
		pe.Message, pe.Index, pe.Pos.Line, pe.Pos.Column)
}

// Code returns UNMATCHED_CLOSE or UNMATCHED_OPEN
func (pe *ParseError) Code() bfierror.Code {
	return pe.code
}

func unmatchedClose(tokens []Token, index int) *ParseError {
	return &ParseError{
		code:    bfierror.CodeUnmatchedClose,
		Message: "unmatched closing bracket",
		Index:   index,
		Pos:     tokens[index].Pos,
	}
}

func unmatchedOpen(tokens []Token, index int) *ParseError {
	return &ParseError{
		code:    bfierror.CodeUnmatchedOpen,
		Message: "unmatched opening bracket",
		Index:   index,
		Pos:     tokens[index].Pos,
	}
}

// Parse builds the instruction tree for tokens
func Parse(tokens []Token) (ast.Program, error) {
	program, err := parseRange(tokens, 0, len(tokens))
	if err != nil {
		return nil, err
	}
	return program, nil
}

// ParseSource filters source and parses the resulting tokens
func ParseSource(source string) (ast.Program, error) {
	return Parse(Filter(source))
}

// parseRange parses tokens[lo:hi]. Indexes stay absolute so that errors
// point into the full sequence. Only the opening index of the current
// top-level loop is kept; nested brackets are just counted.
func parseRange(tokens []Token, lo, hi int) (ast.Program, *ParseError) {
	program := ast.Program{}
	depth := 0
	start := 0

	for i := lo; i < hi; i++ {
		tok := tokens[i]

		switch tok.Kind {
		case TokenLoopStart:
			if depth == 0 {
				start = i
			}
			depth++

		case TokenLoopEnd:
			if depth == 0 {
				return nil, unmatchedClose(tokens, i)
			}
			depth--
			if depth > 0 {
				continue
			}
			body, err := parseRange(tokens, start+1, i)
			if err != nil {
				return nil, err
			}
			program = append(program, ast.Loop(body, tokens[start].Pos))

		default:
			if depth > 0 {
				// owned by the enclosing loop's recursive parse
				continue
			}
			op, _ := tok.Kind.Op()
			program = append(program, ast.Leaf(op, tok.Pos))
		}
	}

	if depth > 0 {
		return nil, unmatchedOpen(tokens, innermostOpen(tokens, lo, hi))
	}
	return program, nil
}

// innermostOpen returns the last LoopStart in tokens[lo:hi] that no later
// LoopEnd closes
func innermostOpen(tokens []Token, lo, hi int) int {
	balance := 0
	for i := hi - 1; i >= lo; i-- {
		switch tokens[i].Kind {
		case TokenLoopEnd:
			balance++
		case TokenLoopStart:
			if balance == 0 {
				return i
			}
			balance--
		}
	}
	return lo
}

// Parser wraps Filter and Parse with logging and input limits
type Parser struct {
	logger  *bfilog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger *bfilog.Logger
	// MaxSourceLength rejects longer sources; 0 means unlimited
	MaxSourceLength int
}

// New creates a new parser with the given options
func New(opts Options) *Parser {
	logger := opts.Logger
	if logger == nil {
		logger = bfilog.NewNop()
	}
	return &Parser{
		logger:  logger.WithField("component", "parser"),
		options: opts,
	}
}

// Parse filters and parses source
func (p *Parser) Parse(source string) ([]Token, ast.Program, error) {
	if p.options.MaxSourceLength > 0 && len(source) > p.options.MaxSourceLength {
		return nil, nil, bfierror.Newf("source length %d exceeds limit %d",
			len(source), p.options.MaxSourceLength).
			WithCode(bfierror.CodeInvalidInput).
			WithDetail("length", len(source)).
			WithOperation("parser.Parse")
	}

	tokens := Filter(source)
	p.logger.Debug("source filtered", bfilog.Fields{
		"source_bytes": len(source),
		"tokens":       len(tokens),
	})

	program, err := Parse(tokens)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			p.logger.Debug("parse failed", bfilog.Fields{
				"code":   string(pe.Code()),
				"index":  pe.Index,
				"line":   pe.Pos.Line,
				"column": pe.Pos.Column,
			})
		}
		return tokens, nil, err
	}

	stats := ast.Count(program)
	p.logger.Debug("program parsed", bfilog.Fields{
		"leaves":    stats.Leaves,
		"loops":     stats.Loops,
		"max_depth": stats.MaxDepth,
	})
	return tokens, program, nil
}
