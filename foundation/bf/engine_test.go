// File: engine_test.go
// Title: bfi Engine Tests
// Description: Tests compile and run through the high-level engine,
//              including run IDs, configuration validation and timeouts.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial engine tests

package bf

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/msto63/bfi/foundation/bf/executor"
	"github.com/msto63/bfi/foundation/bf/parser"
	bfierror "github.com/msto63/bfi/foundation/core/error"
	bfilog "github.com/msto63/bfi/foundation/core/log"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"Defaults", Options{}, false},
		{"Reference start offset", Options{StartOffset: 1000}, false},
		{"Start outside tape", Options{TapeLength: 10, StartOffset: 10}, true},
		{"Negative tape length", Options{TapeLength: -1}, true},
		{"Negative step limit", Options{StepLimit: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, err := New(tt.opts)
			if tt.wantErr {
				if !bfierror.HasCode(err, bfierror.CodeInvalidConfig) {
					t.Fatalf("Expected INVALID_CONFIG, got %v", err)
				}
				if bfierror.ExitCode(err) != bfierror.ExitConfig {
					t.Errorf("Expected config exit code, got %d", bfierror.ExitCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if engine.Options().TapeLength != executor.DefaultTapeLength && tt.opts.TapeLength == 0 {
				t.Errorf("Expected default tape length, got %d", engine.Options().TapeLength)
			}
		})
	}
}

func TestEngine_Run(t *testing.T) {
	engine, err := New(Options{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var out bytes.Buffer
	result, err := engine.Run(context.Background(), "echo: ,[.,]", strings.NewReader("hi"), &out)
	if !bfierror.HasCode(err, bfierror.CodeInputExhausted) {
		t.Fatalf("Expected INPUT_EXHAUSTED with default EOF policy, got %v", err)
	}
	if out.String() != "hi" {
		t.Errorf("Expected output %q, got %q", "hi", out.String())
	}
	if _, perr := uuid.Parse(result.RunID); perr != nil {
		t.Errorf("Expected UUID run ID, got %q", result.RunID)
	}

	zero, _ := New(Options{EOF: executor.EOFZero})
	out.Reset()
	result, err = zero.Run(context.Background(), ",[.,]", strings.NewReader("hi"), &out)
	if err != nil {
		t.Fatalf("Unexpected error with zero EOF policy: %v", err)
	}
	if out.String() != "hi" || result.OutputBytes != 2 {
		t.Errorf("Unexpected output %q (%d bytes)", out.String(), result.OutputBytes)
	}
	if result.Steps == 0 || result.Tape == nil {
		t.Errorf("Expected populated result, got %+v", result)
	}
}

func TestEngine_RunIDsAreUnique(t *testing.T) {
	engine, _ := New(Options{})
	first, _ := engine.Run(context.Background(), "+", nil, nil)
	second, _ := engine.Run(context.Background(), "+", nil, nil)
	if first.RunID == second.RunID {
		t.Error("Expected distinct run IDs")
	}
}

func TestEngine_CompileError(t *testing.T) {
	engine, _ := New(Options{})

	var out bytes.Buffer
	result, err := engine.Run(context.Background(), "+.[", nil, &out)
	if !bfierror.HasCode(err, bfierror.CodeUnmatchedOpen) {
		t.Fatalf("Expected UNMATCHED_OPEN, got %v", err)
	}
	var pe *parser.ParseError
	if !errors.As(err, &pe) || pe.Index != 2 {
		t.Errorf("Expected *parser.ParseError at index 2, got %v", err)
	}
	if out.Len() != 0 {
		t.Error("Structural errors must prevent execution")
	}
	if result == nil || result.RunID == "" || result.Steps != 0 {
		t.Errorf("Expected result with run ID and no steps, got %+v", result)
	}
}

func TestEngine_StartOffset(t *testing.T) {
	engine, _ := New(Options{TapeLength: 2000, StartOffset: 1000})
	result, err := engine.Run(context.Background(), "<<+", nil, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Pointer != 998 || result.Tape.Cell() != 1 {
		t.Errorf("Expected pointer 998 with cell 1, got %d/%d", result.Pointer, result.Tape.Cell())
	}
}

func TestEngine_Timeout(t *testing.T) {
	engine, _ := New(Options{Timeout: 20 * time.Millisecond})
	start := time.Now()
	_, err := engine.Run(context.Background(), "+[]", nil, nil)
	if !bfierror.HasCode(err, bfierror.CodeCancelled) {
		t.Fatalf("Expected CANCELLED, got %v", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Errorf("Timeout took too long: %v", time.Since(start))
	}
}

func TestEngine_StepLimit(t *testing.T) {
	engine, _ := New(Options{StepLimit: 10})
	result, err := engine.Run(context.Background(), "+[]", nil, nil)
	if !bfierror.HasCode(err, bfierror.CodeStepLimit) {
		t.Fatalf("Expected STEP_LIMIT, got %v", err)
	}
	if result.Steps != 10 {
		t.Errorf("Expected 10 steps, got %d", result.Steps)
	}
}

func TestEngine_LogsRunID(t *testing.T) {
	var logs bytes.Buffer
	logger := bfilog.NewWithConfig(bfilog.Config{
		Level:  bfilog.LevelDebug,
		Format: bfilog.FormatJSON,
		Output: &logs,
	})

	engine, _ := New(Options{Logger: logger})
	result, err := engine.Run(context.Background(), "+.", nil, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(logs.String(), `"run_id":"`+result.RunID+`"`) {
		t.Errorf("Expected run ID in logs, got:\n%s", logs.String())
	}
	if !strings.Contains(logs.String(), "run completed") {
		t.Errorf("Expected completion entry, got:\n%s", logs.String())
	}
}

func TestEngine_Tracer(t *testing.T) {
	rec := executor.NewRecorder(0, 0)
	engine, _ := New(Options{Tracer: rec})
	if _, err := engine.Run(context.Background(), "+[-]", nil, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if rec.Total() != 4 {
		t.Errorf("Expected 4 traced steps, got %d", rec.Total())
	}
}

func TestEngine_Tokens(t *testing.T) {
	engine, _ := New(Options{})
	if got := len(engine.Tokens("a+b>c")); got != 2 {
		t.Errorf("Expected 2 tokens, got %d", got)
	}
}
