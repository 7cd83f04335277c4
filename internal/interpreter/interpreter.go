// Package interpreter implements a tree walking interpreter that executes a
// parsed program tree against a byte tape.
package interpreter

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/retroenv/bfgorun/internal/ast"
	"github.com/retroenv/bfgorun/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Interpreter executes a program tree. The tape is its only mutable state
// besides the input and output streams, execution is fully synchronous.
type Interpreter struct {
	logger  *log.Logger
	options options.Program

	program *ast.Node
	tape    *Tape

	in  *bufio.Reader
	out *bufio.Writer
}

// New creates a new interpreter for the parsed program. The tape is
// allocated with the configured size, input and output carry the raw bytes
// the program reads and writes.
func New(logger *log.Logger, program *ast.Node, opts options.Program,
	in io.Reader, out io.Writer) (*Interpreter, error) {

	if opts.TapeSize <= 0 {
		return nil, fmt.Errorf("invalid tape size %d", opts.TapeSize)
	}

	return &Interpreter{
		logger:  logger,
		options: opts,
		program: program,
		tape:    NewTape(opts.TapeSize),
		in:      bufio.NewReader(in),
		out:     bufio.NewWriter(out),
	}, nil
}

// Run executes the program and returns once the last instruction finished,
// with all output flushed. A program whose loop condition never becomes zero
// runs forever, that is a property of the interpreted program and not an
// interpreter fault.
func (ip *Interpreter) Run() error {
	if err := ip.runSequence(ip.program); err != nil {
		return err
	}
	if err := ip.out.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}

	ip.logger.Debug("Program finished",
		log.Int("tape_size", ip.options.TapeSize),
		log.Int("pointer", ip.tape.Pointer()),
	)
	return nil
}

// runSequence executes a sibling chain left to right, recursing into loop
// bodies. A loop re-reads the current cell before every body iteration,
// including the first. Recursion depth is bounded by the nesting depth limit
// enforced during parsing.
func (ip *Interpreter) runSequence(node *ast.Node) error {
	for ; node != nil; node = node.Next {
		switch node.Type {
		case ast.IncrementPointer:
			ip.tape.Forward()

		case ast.DecrementPointer:
			ip.tape.Backward()

		case ast.IncrementCell:
			ip.tape.Increment()

		case ast.DecrementCell:
			ip.tape.Decrement()

		case ast.OutputCell:
			if err := ip.out.WriteByte(ip.tape.Cell()); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}

		case ast.InputCell:
			if err := ip.readCell(); err != nil {
				return err
			}

		case ast.Loop:
			for ip.tape.Cell() != 0 {
				if err := ip.runSequence(node.Child); err != nil {
					return err
				}
			}

		default:
			return fmt.Errorf("unsupported node type %s", node.Type)
		}
	}
	return nil
}

// readCell reads one byte from the input stream into the current cell.
// Pending output is flushed first to keep the observable stream order.
// End of input stores 0 instead of failing.
func (ip *Interpreter) readCell() error {
	if err := ip.out.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}

	b, err := ip.in.ReadByte()
	switch {
	case errors.Is(err, io.EOF):
		ip.tape.SetCell(0)
	case err != nil:
		return fmt.Errorf("reading input: %w", err)
	default:
		ip.tape.SetCell(b)
	}
	return nil
}
