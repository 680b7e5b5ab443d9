// Package buffer provides the line-oriented text buffer at the heart of the
// editor engine.
//
// A Buffer stores a document as an ordered sequence of lines, each kept as
// the raw bytes read from disk. No encoding validation happens at storage
// time; conversion to displayable text happens later and is lossy.
//
// The buffer package provides:
//
//   - Exact round-tripping: FromBytes(b).Bytes() reproduces b byte for byte
//   - Line access that reports absence instead of failing
//   - Byte-offset mutation primitives (insert, split, delete-before)
//   - Revision tracking for modified-state detection
//
// Basic usage:
//
//	buf := buffer.FromBytes([]byte("Hello\nWorld\n"))
//
//	// Insert text at line 0, column 5
//	buf.Insert(buffer.Point{Line: 0, Column: 5}, []byte(","))
//
//	// Backspace at the start of line 1 joins it onto line 0
//	pos, _ := buf.DeleteBefore(buffer.Point{Line: 1, Column: 0})
//
// Trailing Newlines:
//
// When the input ends with a newline byte the final empty segment is not
// stored as a line; the buffer records that the newline existed and Bytes
// writes it back. An empty input produces zero lines.
//
// Thread Safety:
//
// Buffer is not safe for concurrent use. The editor drives it from a single
// event loop goroutine.
package buffer
