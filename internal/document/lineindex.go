package document

import "sort"

// lineIndex keeps the offset at which every row starts. starts[0] is always 0
// and starts[i] is the offset just past the i-th newline.
type lineIndex struct {
	starts []int
}

func newLineIndex(content []byte) *lineIndex {
	starts := []int{0}
	for i, b := range content {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{starts: starts}
}

// newlines returns the number of newline bytes indexed.
func (l *lineIndex) newlines() int {
	return len(l.starts) - 1
}

// start returns the offset of row, which the caller has already clamped.
func (l *lineIndex) start(row int) int {
	return l.starts[row]
}

// rowOf returns the row containing offset.
func (l *lineIndex) rowOf(offset int) int {
	// First start strictly greater than offset, minus one.
	return sort.SearchInts(l.starts, offset+1) - 1
}

// inserted patches the index after b was stored at offset.
func (l *lineIndex) inserted(offset int, b byte) {
	row := l.rowOf(offset)
	for i := row + 1; i < len(l.starts); i++ {
		l.starts[i]++
	}
	if b != '\n' {
		return
	}
	l.starts = append(l.starts, 0)
	copy(l.starts[row+2:], l.starts[row+1:])
	l.starts[row+1] = offset + 1
}

// deleted patches the index after b was removed from offset.
func (l *lineIndex) deleted(offset int, b byte) {
	row := l.rowOf(offset)
	if b == '\n' {
		// The row after the removed newline merges into row.
		l.starts = append(l.starts[:row+1], l.starts[row+2:]...)
	}
	for i := row + 1; i < len(l.starts); i++ {
		l.starts[i]--
	}
}
