package buffer

import (
	"bytes"
	"errors"
	"io"
)

// Errors returned by buffer operations.
var (
	ErrLineOutOfRange   = errors.New("line out of range")
	ErrColumnOutOfRange = errors.New("column out of range")
)

// newline is the only line separator the buffer recognizes.
const newline = '\n'

// Buffer holds a document as an ordered sequence of raw byte lines.
type Buffer struct {
	lines           [][]byte
	trailingNewline bool
	revision        Revision
}

// New creates a new empty buffer with zero lines.
func New() *Buffer {
	return &Buffer{}
}

// FromBytes creates a buffer by splitting data on the newline byte.
// A final newline does not produce an empty trailing line; it is recorded
// so that Bytes reproduces data exactly.
func FromBytes(data []byte) *Buffer {
	b := New()
	if len(data) == 0 {
		return b
	}

	if data[len(data)-1] == newline {
		b.trailingNewline = true
		data = data[:len(data)-1]
	}

	segments := bytes.Split(data, []byte{newline})
	b.lines = make([][]byte, len(segments))
	for i, seg := range segments {
		// Copy so callers can reuse data and lines can grow independently.
		b.lines[i] = append([]byte(nil), seg...)
	}
	return b
}

// FromReader creates a buffer from all bytes read from r.
func FromReader(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return FromBytes(data), nil
}

// Read Operations

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// IsEmpty returns true if the buffer has no lines.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 0
}

// Line returns the bytes of a line (without newline).
// The second result is false when index is outside [0, LineCount()).
// The returned slice aliases buffer storage and must not be modified.
func (b *Buffer) Line(index int) ([]byte, bool) {
	if index < 0 || index >= len(b.lines) {
		return nil, false
	}
	return b.lines[index], true
}

// LineLen returns the length of a line in bytes, or 0 if it does not exist.
func (b *Buffer) LineLen(index int) int {
	line, ok := b.Line(index)
	if !ok {
		return 0
	}
	return len(line)
}

// Len returns the length of the serialized buffer in bytes.
func (b *Buffer) Len() int {
	n := 0
	for _, line := range b.lines {
		n += len(line)
	}
	if len(b.lines) > 1 {
		n += len(b.lines) - 1
	}
	if b.trailingNewline {
		n++
	}
	return n
}

// Bytes joins all lines with the newline byte and restores the trailing
// newline recorded at load time.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, 0, b.Len())
	for i, line := range b.lines {
		if i > 0 {
			out = append(out, newline)
		}
		out = append(out, line...)
	}
	if b.trailingNewline {
		out = append(out, newline)
	}
	return out
}

// WriteTo writes the serialized buffer to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Bytes())
	return int64(n), err
}

// Revision returns the current revision.
func (b *Buffer) Revision() Revision {
	return b.revision
}

// Clamp returns the nearest position that refers to existing content.
// An empty buffer clamps everything to (0:0).
func (b *Buffer) Clamp(p Point) Point {
	if len(b.lines) == 0 {
		return Point{}
	}
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line >= len(b.lines) {
		p.Line = len(b.lines) - 1
	}
	if p.Column < 0 {
		p.Column = 0
	}
	if n := len(b.lines[p.Line]); p.Column > n {
		p.Column = n
	}
	return p
}
