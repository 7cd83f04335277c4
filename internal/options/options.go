// Package options contains the program options.
package options

// Default runtime limits of the interpreter.
const (
	// DefaultTapeSize is the number of byte cells the tape holds.
	DefaultTapeSize = 65535

	// DefaultMaxLoopDepth is the maximum loop nesting depth accepted
	// during parsing.
	DefaultMaxLoopDepth = 512
)

// Program options of the interpreter.
type Program struct {
	Input string // source file to interpret

	TapeSize     int // number of byte cells on the tape
	MaxLoopDepth int // maximum loop nesting depth during parsing
}

// New returns a new options instance with default options.
func New() Program {
	return Program{
		TapeSize:     DefaultTapeSize,
		MaxLoopDepth: DefaultMaxLoopDepth,
	}
}
