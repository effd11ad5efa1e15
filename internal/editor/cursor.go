package editor

// Cursor is the editing position. Col may equal the row length, which is the
// append position. Sticky remembers the widest column chosen horizontally so
// vertical moves through short rows can return to it.
type Cursor struct {
	Row    int
	Col    int
	Sticky int
}

// MoveLeft moves one column left, saturating at column 0.
func (c *Cursor) MoveLeft() {
	if c.Col > 0 {
		c.Col--
	}
	c.Sticky = c.Col
}

// MoveRight moves one column right while the column is below rowLength and,
// when limit > 0, below the horizontal limit.
func (c *Cursor) MoveRight(rowLength, limit int) {
	if c.Col < rowLength && (limit <= 0 || c.Col < limit) {
		c.Col++
	}
	c.Sticky = c.Col
}

// MoveDown moves to the next row, whose length is nextRowLength. The caller
// checks that the row exists.
func (c *Cursor) MoveDown(nextRowLength int) {
	c.Row++
	c.Col = min(max(c.Col, c.Sticky), nextRowLength)
}

// MoveUp moves to the previous row, whose length is prevRowLength. The caller
// checks that the row exists.
func (c *Cursor) MoveUp(prevRowLength int) {
	c.Row--
	c.Col = min(max(c.Col, c.Sticky), prevRowLength)
}

// JumpToFirstLine moves to row 0, clamping the column to that row's length.
func (c *Cursor) JumpToFirstLine(rowLength int) {
	c.Row = 0
	c.Col = min(c.Col, rowLength)
}

// JumpToLastLine moves to lastRow, clamping the column to that row's length.
func (c *Cursor) JumpToLastLine(lastRow, rowLength int) {
	c.Row = lastRow
	c.Col = min(c.Col, rowLength)
}

// SetColumn places the cursor after an edit and resets the sticky column.
func (c *Cursor) SetColumn(col int) {
	c.Col = max(col, 0)
	c.Sticky = c.Col
}
