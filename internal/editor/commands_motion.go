package editor

import "context"

// ============================================================================
// Motion Commands
// ============================================================================
//
// Motions saturate at document boundaries; they never fail. Every motion that
// changes the row resynchronizes the viewport: single steps scroll by the
// overflow, line jumps set the first visible row directly.

// MoveLeftCommand moves cursor one column left (h motion).
type MoveLeftCommand struct {
	MotionBase
}

// Execute moves the cursor one column to the left.
func (c *MoveLeftCommand) Execute(_ context.Context, s *Session) (ExecuteResult, error) {
	s.cursor.MoveLeft()
	return Executed, nil
}

// Keys returns the trigger keys for this command.
func (c *MoveLeftCommand) Keys() []string {
	return []string{"h"}
}

// Mode returns the mode this command operates in.
func (c *MoveLeftCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *MoveLeftCommand) ID() string {
	return "move.left"
}

// MoveRightCommand moves cursor one column right (l motion).
type MoveRightCommand struct {
	MotionBase
}

// Execute moves the cursor one column to the right, up to the append position
// of the row and the viewport's horizontal limit.
func (c *MoveRightCommand) Execute(_ context.Context, s *Session) (ExecuteResult, error) {
	s.cursor.MoveRight(s.doc.RowLength(s.cursor.Row), s.viewport.HorizontalLimit())
	return Executed, nil
}

// Keys returns the trigger keys for this command.
func (c *MoveRightCommand) Keys() []string {
	return []string{"l"}
}

// Mode returns the mode this command operates in.
func (c *MoveRightCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *MoveRightCommand) ID() string {
	return "move.right"
}

// MoveDownCommand moves cursor one row down (j motion).
type MoveDownCommand struct {
	MotionBase
}

// Execute moves the cursor down, restoring the sticky column where the row is
// long enough.
func (c *MoveDownCommand) Execute(_ context.Context, s *Session) (ExecuteResult, error) {
	if s.cursor.Row >= s.doc.LineCount() {
		return Skipped, nil
	}
	s.cursor.MoveDown(s.doc.RowLength(s.cursor.Row + 1))
	s.viewport.Sync(s.cursor.Row)
	return Executed, nil
}

// Keys returns the trigger keys for this command.
func (c *MoveDownCommand) Keys() []string {
	return []string{"j"}
}

// Mode returns the mode this command operates in.
func (c *MoveDownCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *MoveDownCommand) ID() string {
	return "move.down"
}

// MoveUpCommand moves cursor one row up (k motion).
type MoveUpCommand struct {
	MotionBase
}

// Execute moves the cursor up, restoring the sticky column where the row is
// long enough.
func (c *MoveUpCommand) Execute(_ context.Context, s *Session) (ExecuteResult, error) {
	if s.cursor.Row == 0 {
		return Skipped, nil
	}
	s.cursor.MoveUp(s.doc.RowLength(s.cursor.Row - 1))
	s.viewport.Sync(s.cursor.Row)
	return Executed, nil
}

// Keys returns the trigger keys for this command.
func (c *MoveUpCommand) Keys() []string {
	return []string{"k"}
}

// Mode returns the mode this command operates in.
func (c *MoveUpCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *MoveUpCommand) ID() string {
	return "move.up"
}

// MoveToFirstLineCommand jumps to the first row (gg motion).
// Reached through the pending registry, never by a single key.
type MoveToFirstLineCommand struct {
	MotionBase
}

// Execute jumps to row 0 and resets the viewport to the top.
func (c *MoveToFirstLineCommand) Execute(_ context.Context, s *Session) (ExecuteResult, error) {
	s.cursor.JumpToFirstLine(s.doc.RowLength(0))
	s.viewport.JumpTo(s.cursor.Row)
	return Executed, nil
}

// Keys returns the trigger keys for this command.
func (c *MoveToFirstLineCommand) Keys() []string {
	return []string{"gg"}
}

// Mode returns the mode this command operates in.
func (c *MoveToFirstLineCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *MoveToFirstLineCommand) ID() string {
	return "move.first_line"
}

// MoveToLastLineCommand jumps to the last text row (G motion).
type MoveToLastLineCommand struct {
	MotionBase
}

// Execute jumps to the last row and scrolls it into view directly.
func (c *MoveToLastLineCommand) Execute(_ context.Context, s *Session) (ExecuteResult, error) {
	last := s.doc.LastRow()
	s.cursor.JumpToLastLine(last, s.doc.RowLength(last))
	s.viewport.JumpTo(s.cursor.Row)
	return Executed, nil
}

// Keys returns the trigger keys for this command.
func (c *MoveToLastLineCommand) Keys() []string {
	return []string{"G"}
}

// Mode returns the mode this command operates in.
func (c *MoveToLastLineCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *MoveToLastLineCommand) ID() string {
	return "move.last_line"
}
