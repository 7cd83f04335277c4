// Package ast defines the program tree built by the parser and walked by the
// interpreter. A program is a forest of nodes linked through sibling and loop
// body references; it is immutable once parsing finishes.
package ast

// NodeType defines the type of a program tree node.
type NodeType uint8

// instruction kinds of the language.
const (
	IncrementPointer NodeType = iota // > move the pointer forward
	DecrementPointer                 // < move the pointer backward
	IncrementCell                    // + increment the current cell
	DecrementCell                    // - decrement the current cell
	OutputCell                       // . write the current cell to output
	InputCell                        // , read one byte into the current cell
	Loop                             // [ ... ] repeat body while cell is not zero
)

// String implements the fmt.Stringer interface.
func (n NodeType) String() string {
	switch n {
	case IncrementPointer:
		return "increment pointer"
	case DecrementPointer:
		return "decrement pointer"
	case IncrementCell:
		return "increment cell"
	case DecrementCell:
		return "decrement cell"
	case OutputCell:
		return "output cell"
	case InputCell:
		return "input cell"
	case Loop:
		return "loop"
	default:
		return "unknown"
	}
}

// Node represents one instruction occurrence in source order.
type Node struct {
	Type NodeType

	Child *Node // first node of the loop body, nil for non loop nodes
	Next  *Node // next sibling in the same sequence
}

// New creates a new program tree node of the given type.
func New(typ NodeType) *Node {
	return &Node{
		Type: typ,
	}
}

// Count returns the number of nodes of the sequence starting at this node,
// including all nested loop bodies.
func (n *Node) Count() int {
	count := 0
	for node := n; node != nil; node = node.Next {
		count++
		if node.Child != nil {
			count += node.Child.Count()
		}
	}
	return count
}
