package interpreter

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/retroenv/bfgorun/internal/options"
	"github.com/retroenv/bfgorun/internal/parser"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// runProgram parses and executes a source string with the given input bytes
// and returns the produced output bytes.
func runProgram(t *testing.T, source, input string, opts options.Program) []byte {
	t.Helper()

	logger := log.NewTestLogger(t)
	program, err := parser.Parse(logger, strings.NewReader(source), opts)
	assert.NoError(t, err)

	var out bytes.Buffer
	ip, err := New(logger, program, opts, strings.NewReader(input), &out)
	assert.NoError(t, err)

	assert.NoError(t, ip.Run())
	return out.Bytes()
}

func TestRunPrograms(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		input    string
		expected []byte
	}{
		{
			name:     "output 64",
			source:   "++++++++[>++++++++<-]>.",
			expected: []byte{'@'},
		},
		{
			name:     "echo one byte",
			source:   ",.",
			input:    "A",
			expected: []byte{'A'},
		},
		{
			name:     "read at end of input stores zero",
			source:   ",.",
			expected: []byte{0},
		},
		{
			name:     "clear loop terminates",
			source:   "+++++[-].",
			expected: []byte{0},
		},
		{
			name:     "nested loops multiply",
			source:   "++[>++[>+<-]<-]>>.",
			expected: []byte{4},
		},
		{
			name:     "echo until end of input",
			source:   ",[.,]",
			input:    "hello",
			expected: []byte("hello"),
		},
		{
			name:     "comment only source",
			source:   "no command characters here",
			expected: nil,
		},
		{
			name:     "empty source",
			source:   "",
			expected: nil,
		},
		{
			name:     "cell wraps modulo 256",
			source:   "-.",
			expected: []byte{255},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runProgram(t, tt.source, tt.input, options.New())
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRunPointerWrapsOnSmallTape(t *testing.T) {
	opts := options.New()
	opts.TapeSize = 3

	// three forward moves on a 3 cell tape return to the start cell
	out := runProgram(t, "+>>>.", "", opts)
	assert.Equal(t, []byte{1}, out)

	// one backward move from the start wraps to the last cell
	out = runProgram(t, "+<.", "", opts)
	assert.Equal(t, []byte{0}, out)
}

func TestRunLoopRetestsCellBeforeFirstIteration(t *testing.T) {
	// the loop body never runs when the cell is already zero
	out := runProgram(t, "[+.].", "", options.New())
	assert.Equal(t, []byte{0}, out)
}

func TestNewRejectsInvalidTapeSize(t *testing.T) {
	logger := log.NewTestLogger(t)
	opts := options.New()
	opts.TapeSize = 0

	var out bytes.Buffer
	_, err := New(logger, nil, opts, strings.NewReader(""), &out)
	assert.Error(t, err)
}

func TestRunFlushesOutputBeforeRead(t *testing.T) {
	logger := log.NewTestLogger(t)
	opts := options.New()

	program, err := parser.Parse(logger, strings.NewReader("+.,"), opts)
	assert.NoError(t, err)

	var out bytes.Buffer
	in := &recordingReader{out: &out}
	ip, err := New(logger, program, opts, in, &out)
	assert.NoError(t, err)
	assert.NoError(t, ip.Run())

	// the output byte written before the read must have been flushed by the
	// time the input stream was consulted
	assert.Equal(t, 1, in.flushedAtRead)
}

// recordingReader captures how many output bytes were visible when the first
// read happened.
type recordingReader struct {
	out           *bytes.Buffer
	flushedAtRead int
	read          bool
}

func (r *recordingReader) Read(p []byte) (int, error) {
	if !r.read {
		r.read = true
		r.flushedAtRead = r.out.Len()
	}
	return 0, io.EOF
}
