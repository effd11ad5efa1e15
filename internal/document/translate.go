package document

// Row/column translation. Nothing outside this file converts between
// (row, col) and flat offsets.

// clampRow limits row to the rows that exist.
func (d *Document) clampRow(row int) int {
	return max(0, min(row, d.LineCount()))
}

// OffsetOfRowStart returns the offset of the first byte of row.
// Rows past the last line clamp to the last line.
func (d *Document) OffsetOfRowStart(row int) int {
	return d.lines.start(d.clampRow(row))
}

// RowLength returns the length of row without its terminating newline.
func (d *Document) RowLength(row int) int {
	row = d.clampRow(row)
	start := d.lines.start(row)
	if row == d.LineCount() {
		return d.length - start
	}
	// Next row starts just past this row's newline.
	return d.lines.start(row+1) - 1 - start
}

// OffsetOf returns the offset addressed by (row, col). The column is clamped to
// the row's length so a past-the-end column appends to the row.
func (d *Document) OffsetOf(row, col int) int {
	row = d.clampRow(row)
	col = max(0, min(col, d.RowLength(row)))
	return d.lines.start(row) + col
}

// RowCol returns the (row, col) of offset, clamped to [0, Len()].
func (d *Document) RowCol(offset int) (row, col int) {
	offset = max(0, min(offset, d.length))
	row = d.lines.rowOf(offset)
	return row, offset - d.lines.start(row)
}

// Row returns the text of row without its newline.
func (d *Document) Row(row int) []byte {
	start := d.OffsetOfRowStart(row)
	return d.data[start : start+d.RowLength(row)]
}

// LastRow returns the last row holding text. A trailing newline does not start
// a new text row, so "a\nb\n" ends at row 1.
func (d *Document) LastRow() int {
	n := d.LineCount()
	if n > 0 && d.data[d.length-1] == '\n' {
		return n - 1
	}
	return n
}
