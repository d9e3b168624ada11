package main

import (
	"os" // os supplies the argument list, stdout, and the exit status

	"go.uber.org/zap" // zap is used to report failures on stderr

	"passfixture/internal/cli"     // cli defines --pass_text, builds the record, and prints
	"passfixture/internal/logging" // logging builds the stderr logger
)

// main hands os.Args and stdout to cli.Run. A failed run has written
// nothing to stdout; the error is logged to stderr and the process exits
// with status 1.
func main() {
	logger := logging.Default()
	defer logger.Sync() //nolint:errcheck

	if err := cli.Run(os.Args, os.Stdout, logger); err != nil {
		logger.Error("passtext failed", zap.Error(err))
		logger.Sync() //nolint:errcheck
		os.Exit(1)
	}
}
