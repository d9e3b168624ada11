package main

import (
	"os" // os supplies stdin, stdout, and the exit status

	"go.uber.org/zap" // zap is used to report failures on stderr

	"passfixture/internal/logging" // logging builds the stderr logger
	"passfixture/internal/plugin"  // plugin rewrites simple_plugin into go_binary
)

// main reads a simple_plugin component from stdin and writes the matching
// go_binary component to stdout.
func main() {
	logger := logging.Default()
	defer logger.Sync() //nolint:errcheck

	if err := plugin.Transform(os.Stdin, os.Stdout); err != nil {
		logger.Error("simple_plugin failed", zap.Error(err))
		logger.Sync() //nolint:errcheck
		os.Exit(1)
	}
}
