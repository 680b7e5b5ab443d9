package buffer

import (
	"fmt"
	"unicode/utf8"
)

// Write Operations

// Insert inserts text at the given position.
// Text must not contain newlines; use SplitLine to break a line.
// Returns the position just after the inserted text.
func (b *Buffer) Insert(p Point, text []byte) (Point, error) {
	b.materialize(p)
	if err := b.check(p); err != nil {
		return p, err
	}
	if len(text) == 0 {
		return p, nil
	}

	line := b.lines[p.Line]
	grown := make([]byte, 0, len(line)+len(text))
	grown = append(grown, line[:p.Column]...)
	grown = append(grown, text...)
	grown = append(grown, line[p.Column:]...)
	b.lines[p.Line] = grown
	b.revision++

	return Point{Line: p.Line, Column: p.Column + len(text)}, nil
}

// SplitLine breaks the line at p into two lines.
// Returns column 0 of the newly created line.
func (b *Buffer) SplitLine(p Point) (Point, error) {
	b.materialize(p)
	if err := b.check(p); err != nil {
		return p, err
	}

	line := b.lines[p.Line]
	head := append([]byte(nil), line[:p.Column]...)
	tail := append([]byte(nil), line[p.Column:]...)

	b.lines = append(b.lines, nil)
	copy(b.lines[p.Line+2:], b.lines[p.Line+1:])
	b.lines[p.Line] = head
	b.lines[p.Line+1] = tail
	b.revision++

	return Point{Line: p.Line + 1, Column: 0}, nil
}

// DeleteBefore removes the character immediately before p.
//
// A character is one UTF-8 encoded rune; bytes that do not form a valid
// encoding are removed one at a time. At column 0 of any line after the
// first, the line is joined onto the previous one and the returned position
// is the former end of the previous line. At (0:0) nothing changes.
func (b *Buffer) DeleteBefore(p Point) (Point, error) {
	if len(b.lines) == 0 && p.IsZero() {
		return p, nil
	}
	if err := b.check(p); err != nil {
		return p, err
	}

	if p.Column == 0 {
		if p.Line == 0 {
			return p, nil
		}
		return b.joinWithPrevious(p.Line), nil
	}

	line := b.lines[p.Line]
	_, size := utf8.DecodeLastRune(line[:p.Column])
	start := p.Column - size
	b.lines[p.Line] = append(line[:start], line[p.Column:]...)
	b.revision++

	return Point{Line: p.Line, Column: start}, nil
}

// joinWithPrevious appends line onto line-1 and removes it.
func (b *Buffer) joinWithPrevious(line int) Point {
	prev := b.lines[line-1]
	joint := len(prev)
	b.lines[line-1] = append(prev, b.lines[line]...)
	b.lines = append(b.lines[:line], b.lines[line+1:]...)
	b.revision++
	return Point{Line: line - 1, Column: joint}
}

// materialize creates line 0 when an empty buffer receives its first edit.
func (b *Buffer) materialize(p Point) {
	if len(b.lines) == 0 && p.Line == 0 {
		b.lines = [][]byte{{}}
	}
}

// check validates that p refers to existing content.
func (b *Buffer) check(p Point) error {
	if p.Line < 0 || p.Line >= len(b.lines) {
		return fmt.Errorf("%w: %d (have %d lines)", ErrLineOutOfRange, p.Line, len(b.lines))
	}
	if p.Column < 0 || p.Column > len(b.lines[p.Line]) {
		return fmt.Errorf("%w: %s (line length %d)", ErrColumnOutOfRange, p, len(b.lines[p.Line]))
	}
	return nil
}
