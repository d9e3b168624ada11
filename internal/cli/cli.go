package cli

import (
	"fmt" // fmt is used to print the resolved value and build readable error messages
	"io"  // io lets the caller choose where the value is printed

	"go.uber.org/zap" // zap is used for debug-level tracing of each step

	// These import paths must match the module path from go.mod.
	"passfixture/internal/flags"
	"passfixture/internal/proto/a"

	// atest is imported only so the FooProto schema gets linked into the
	// global protobuf registries before Run constructs a record.
	_ "passfixture/internal/proto/a/atest"
)

///////////////////////////////////////////////////////////////////////////////
// Flags
///////////////////////////////////////////////////////////////////////////////

// passText is the one option this program defines. It is registered on the
// process-wide registry when the package is initialized, which is always
// before Run gets a chance to parse.
var passText = flags.String("pass_text", "PASS", "What to print")

///////////////////////////////////////////////////////////////////////////////
// Top-level CLI runner
///////////////////////////////////////////////////////////////////////////////

// Run is the main entry point for the CLI layer. It:
//
//  1. Parses argv (argv[0] is the program name) into the flag registry.
//  2. Constructs an empty FooProto and throws it away.
//  3. Writes the value of --pass_text and a newline to stdout.
//
// Any error stops the sequence before anything is written to stdout.
func Run(argv []string, stdout io.Writer, logger *zap.Logger) error {
	if err := flags.Parse(argv); err != nil {
		return err
	}
	logger.Debug("flags parsed", zap.String("pass_text", *passText), zap.Strings("args", flags.Args()))

	if _, err := a.NewFooProto(); err != nil {
		return fmt.Errorf("failed to construct FooProto: %w", err)
	}
	logger.Debug("record constructed", zap.String("type", string(a.FooProtoName)))

	if _, err := fmt.Fprintln(stdout, *passText); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
