package main

import (
	"os"

	"github.com/msto63/bfi/cmd/bfi/cmd"
	bfierror "github.com/msto63/bfi/foundation/core/error"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(bfierror.ExitCode(err))
	}
}
