// File: doc.go
// Title: bfi Engine Package Documentation
// Description: Documents the high-level interpreter engine.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial engine implementation

/*
Package bf is the entry point to the interpreter. An Engine combines the
lexical filter, the structural parser and the executor:

	engine, err := bf.New(bf.Options{Logger: logger, StepLimit: 1_000_000})
	if err != nil {
		return err
	}
	result, err := engine.Run(ctx, source, os.Stdin, os.Stdout)

Every run gets a random run ID that tags its log entries and is returned
in the Result, so a run can be correlated with its history record.

The sub-packages can also be used directly:

  - ast: instruction tree, walking, statistics and dumps
  - parser: lexical filter and structural parser
  - executor: tape, executor and tracing
*/
package bf
