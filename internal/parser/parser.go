// Package parser implements parsing of raw source bytes into a program tree.
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/retroenv/bfgorun/internal/ast"
	"github.com/retroenv/bfgorun/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Syntax errors returned by Parse.
var (
	// ErrNestingTooDeep indicates that loop nesting exceeded the configured
	// maximum depth.
	ErrNestingTooDeep = errors.New("loop nesting too deep")

	// ErrUnmatchedClose indicates a ']' without a matching '['.
	ErrUnmatchedClose = errors.New("unmatched ']'")

	// ErrUnmatchedOpen indicates a '[' that is still open at end of input.
	ErrUnmatchedOpen = errors.New("unmatched '['")
)

// parser contains the state of a single parse run.
type parser struct {
	logger   *log.Logger
	maxDepth int

	root  *ast.Node
	depth int

	openLoops   []*ast.Node // currently open loop node at each depth
	lastAtDepth []*ast.Node // last appended node at each depth, for constant time appends

	nodes          int
	deepestNesting int
}

// Parse reads the source in a single left to right scan and builds the
// program tree. Bytes that are not one of the 8 command characters are
// ignored and act as comments. A source containing no command characters
// results in a nil tree. On a syntax error no tree is returned.
func Parse(logger *log.Logger, reader io.Reader, opts options.Program) (*ast.Node, error) {
	p := &parser{
		logger:      logger,
		maxDepth:    opts.MaxLoopDepth,
		openLoops:   make([]*ast.Node, opts.MaxLoopDepth),
		lastAtDepth: make([]*ast.Node, opts.MaxLoopDepth+1),
	}

	buf := bufio.NewReader(reader)
	for {
		b, err := buf.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("reading source: %w", err)
		}

		if err := p.parseByte(b); err != nil {
			return nil, err
		}
	}

	if p.depth != 0 {
		return nil, ErrUnmatchedOpen
	}

	p.logger.Debug("Parsed program",
		log.Int("nodes", p.nodes),
		log.Int("deepest_nesting", p.deepestNesting),
	)
	return p.root, nil
}

// parseByte processes one source byte and updates the tree being built.
func (p *parser) parseByte(b byte) error {
	var typ ast.NodeType

	switch b {
	case '>':
		typ = ast.IncrementPointer
	case '<':
		typ = ast.DecrementPointer
	case '+':
		typ = ast.IncrementCell
	case '-':
		typ = ast.DecrementCell
	case '.':
		typ = ast.OutputCell
	case ',':
		typ = ast.InputCell

	case '[':
		return p.openLoop()

	case ']':
		return p.closeLoop()

	default:
		return nil // any other byte is a comment
	}

	p.append(ast.New(typ))
	return nil
}

// openLoop appends a new loop node and makes it the target for appends of
// the following nodes until it is closed.
func (p *parser) openLoop() error {
	if p.depth >= p.maxDepth {
		return ErrNestingTooDeep
	}

	node := ast.New(ast.Loop)
	p.append(node)

	p.openLoops[p.depth] = node
	p.depth++
	p.lastAtDepth[p.depth] = nil

	if p.depth > p.deepestNesting {
		p.deepestNesting = p.depth
	}
	return nil
}

// closeLoop closes the innermost open loop, the closing character itself
// does not create a node.
func (p *parser) closeLoop() error {
	if p.depth == 0 {
		return ErrUnmatchedClose
	}
	p.depth--
	return nil
}

// append attaches a node as the next sibling of the current block: the top
// level sequence at depth 0, otherwise the body chain of the innermost open
// loop.
func (p *parser) append(node *ast.Node) {
	switch last := p.lastAtDepth[p.depth]; {
	case last != nil:
		last.Next = node
	case p.depth == 0:
		p.root = node
	default:
		p.openLoops[p.depth-1].Child = node
	}

	p.lastAtDepth[p.depth] = node
	p.nodes++
}
