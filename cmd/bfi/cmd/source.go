package cmd

import (
	"os"

	bfierror "github.com/msto63/bfi/foundation/core/error"
)

// sourceError attaches the program text to an error so diagnostics can
// show the offending line
type sourceError struct {
	err    error
	path   string
	source string
}

func (e *sourceError) Error() string {
	return e.err.Error()
}

func (e *sourceError) Unwrap() error {
	return e.err
}

func withSource(err error, path, source string) error {
	if err == nil {
		return nil
	}
	return &sourceError{err: err, path: path, source: source}
}

// readSource reads a program file
func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", bfierror.Newf("program file not found: %s", path).
				WithCode(bfierror.CodeNotFound).
				WithDetail("path", path)
		}
		return "", bfierror.Wrap(err, "failed to read program").
			WithCode(bfierror.CodeIO).
			WithDetail("path", path)
	}
	return string(data), nil
}
