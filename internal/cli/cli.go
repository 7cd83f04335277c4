// Package cli handles command line interface logic
package cli

import (
	"fmt"
	"os"

	"github.com/retroenv/bfgorun/internal/options"
)

// ParseArgs validates the command line arguments and returns the program
// options. The interface is exactly one positional argument, the source file
// to interpret; there are no flags.
func ParseArgs(args []string) (options.Program, error) {
	opts := options.New()

	if len(args) != 2 {
		return opts, &UsageError{progName: progName(args)}
	}

	opts.Input = args[1]
	return opts, nil
}

// UsageError represents an error that should show usage information.
type UsageError struct {
	progName string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("usage: %s filename", e.progName)
}

// ShowUsage prints the usage information to the error stream.
func (e *UsageError) ShowUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s filename\n", e.progName)
}

func progName(args []string) string {
	if len(args) == 0 {
		return "bfgorun"
	}
	return args[0]
}
