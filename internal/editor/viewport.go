package editor

// Viewport is the window of rows mapped onto the terminal's text area.
type Viewport struct {
	First  int // First visible row
	Height int // Rows available for text
	Width  int // Columns available for text; 0 means unknown
}

// NewViewport creates a viewport of the given size starting at row 0.
func NewViewport(height, width int) Viewport {
	v := Viewport{}
	v.Resize(height, width)
	return v
}

// Resize updates the geometry. Height never drops below one row.
func (v *Viewport) Resize(height, width int) {
	v.Height = max(height, 1)
	v.Width = max(width, 0)
}

// HorizontalLimit is the largest column the cursor may reach by moving right,
// or 0 when the width is unknown.
func (v Viewport) HorizontalLimit() int {
	if v.Width <= 0 {
		return 0
	}
	return v.Width - 1
}

// Sync scrolls just enough to keep row visible. Below the window the first
// row advances by exactly the overflow; above it the window retreats to row.
func (v *Viewport) Sync(row int) {
	if overflow := row - v.First - v.Height + 1; overflow > 0 {
		v.First += overflow
	}
	if row < v.First {
		v.First = row
	}
	v.First = max(v.First, 0)
}

// JumpTo sets the first visible row directly after a first/last line jump.
func (v *Viewport) JumpTo(row int) {
	switch {
	case row < v.Height:
		v.First = 0
	case row < v.First:
		v.First = row
	case row >= v.First+v.Height:
		v.First = row - v.Height + 1
	}
}

// DisplayRow returns the on-screen row of row, clamped into [0, Height).
func (v Viewport) DisplayRow(row int) int {
	return max(0, min(row-v.First, v.Height-1))
}

// Contains reports whether row is inside the window.
func (v Viewport) Contains(row int) bool {
	return row >= v.First && row < v.First+v.Height
}
