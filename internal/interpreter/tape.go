package interpreter

// Tape is the interpreter's memory: a fixed number of byte cells plus one
// pointer indexing the current cell. Pointer moves wrap around the tape ends
// using modulo arithmetic against the configured length, so the pointer is a
// valid index at every observable point regardless of the tape size. Cell
// arithmetic wraps modulo 256.
type Tape struct {
	cells   []byte
	pointer int
}

// NewTape creates a zero initialized tape with the given number of cells.
func NewTape(size int) *Tape {
	return &Tape{
		cells: make([]byte, size),
	}
}

// Forward moves the pointer one cell forward, wrapping around the tape end.
func (t *Tape) Forward() {
	t.pointer = (t.pointer + 1) % len(t.cells)
}

// Backward moves the pointer one cell backward, wrapping around the tape start.
func (t *Tape) Backward() {
	t.pointer = (t.pointer + len(t.cells) - 1) % len(t.cells)
}

// Increment adds 1 to the current cell, wrapping from 255 to 0.
func (t *Tape) Increment() {
	t.cells[t.pointer]++
}

// Decrement subtracts 1 from the current cell, wrapping from 0 to 255.
func (t *Tape) Decrement() {
	t.cells[t.pointer]--
}

// Cell returns the value of the current cell.
func (t *Tape) Cell() byte {
	return t.cells[t.pointer]
}

// SetCell sets the value of the current cell.
func (t *Tape) SetCell(value byte) {
	t.cells[t.pointer] = value
}

// Pointer returns the current pointer position.
func (t *Tape) Pointer() int {
	return t.pointer
}

// Size returns the number of cells on the tape.
func (t *Tape) Size() int {
	return len(t.cells)
}
