package main

import (
	"os" // os supplies stdout and the exit status

	"go.uber.org/zap" // zap is used to report failures on stderr

	"passfixture/internal/logging"         // logging builds the stderr logger
	"passfixture/internal/proto/a"         // a owns FooProto and RunFooA
	_ "passfixture/internal/proto/a/atest" // atest links FooProto into the global registries
)

// main prints "FooA" followed by the text form of an empty FooProto.
func main() {
	logger := logging.Default()
	defer logger.Sync() //nolint:errcheck

	if err := a.RunFooA(os.Stdout); err != nil {
		logger.Error("fooa failed", zap.Error(err))
		logger.Sync() //nolint:errcheck
		os.Exit(1)
	}
}
