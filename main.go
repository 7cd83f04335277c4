// Package main implements the main entry point for a Brainfuck interpreter
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/retroenv/bfgorun/internal/cli"
	"github.com/retroenv/bfgorun/internal/config"
	"github.com/retroenv/bfgorun/internal/interpreter"
	"github.com/retroenv/bfgorun/internal/options"
	"github.com/retroenv/bfgorun/internal/parser"
	"github.com/retroenv/retrogolib/log"
)

func main() {
	opts, err := cli.ParseArgs(os.Args)
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			usageErr.ShowUsage()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}

	logger := config.CreateLogger()
	if err := run(logger, opts); err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		os.Exit(1)
	}
}

// run parses the source file and executes it against the standard streams.
func run(logger *log.Logger, opts options.Program) error {
	file, err := os.Open(opts.Input)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}

	program, err := parser.Parse(logger, file, opts)
	_ = file.Close()
	if err != nil {
		return err
	}

	ip, err := interpreter.New(logger, program, opts, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	return ip.Run()
}

// errorMessage maps an error to the exact message the command reports.
func errorMessage(err error) string {
	var pathErr *fs.PathError

	switch {
	case errors.Is(err, parser.ErrNestingTooDeep):
		return "Error: loop nesting too deep"
	case errors.Is(err, parser.ErrUnmatchedClose):
		return "Syntax error: unmatched ']'"
	case errors.Is(err, parser.ErrUnmatchedOpen):
		return "Syntax error: unmatched '['"
	case errors.As(err, &pathErr):
		return fmt.Sprintf("Error opening file: %v", pathErr)
	default:
		return err.Error()
	}
}
