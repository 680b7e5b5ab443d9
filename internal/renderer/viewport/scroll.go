package viewport

// Scroll returns new window offsets that keep cur inside a window of the
// given dimensions. Offsets only change when the cursor is outside the
// window, and then by the smallest amount that reveals it. A zero-sized
// axis cannot show anything and keeps its offset.
func Scroll(cur Cursor, height, width, startLine, startCol int) (line, col int) {
	return scrollAxis(cur.Y, height, startLine), scrollAxis(cur.X, width, startCol)
}

// scrollAxis solves Scroll for a single dimension.
func scrollAxis(pos, size, start int) int {
	if size <= 0 {
		return start
	}
	if pos < start {
		return pos
	}
	if pos >= start+size {
		return pos - size + 1
	}
	return start
}
