package editor

import (
	"context"
	"fmt"
)

// ============================================================================
// Insert Mode Commands
// ============================================================================
//
// Every edit goes through the document's offset operations; the offset comes
// from the translator so a column past the row end appends instead of
// corrupting the row. Errors returned here are storage exhaustion and are
// fatal to the session.

// InsertCharCommand inserts a single typed byte at the cursor.
// Built per key by the session; never registered.
type InsertCharCommand struct {
	InsertBase
	char byte
}

// Execute inserts the byte and advances the cursor past it.
func (c *InsertCharCommand) Execute(_ context.Context, s *Session) (ExecuteResult, error) {
	offset := s.doc.OffsetOf(s.cursor.Row, s.cursor.Col)
	if err := s.doc.InsertAt(offset, c.char); err != nil {
		return Skipped, fmt.Errorf("insert %q at offset %d: %w", c.char, offset, err)
	}
	_, col := s.doc.RowCol(offset + 1)
	s.cursor.SetColumn(col)
	return Executed, nil
}

// Keys returns the trigger keys for this command.
func (c *InsertCharCommand) Keys() []string {
	return []string{string(rune(c.char))}
}

// Mode returns the mode this command operates in.
func (c *InsertCharCommand) Mode() Mode {
	return ModeInsert
}

// ID returns the hierarchical identifier for this command.
func (c *InsertCharCommand) ID() string {
	return "insert.char"
}

// SplitLineCommand breaks the row at the cursor (enter in insert mode).
type SplitLineCommand struct {
	InsertBase
}

// Execute inserts a newline and moves to column 0 of the new row.
func (c *SplitLineCommand) Execute(_ context.Context, s *Session) (ExecuteResult, error) {
	offset := s.doc.OffsetOf(s.cursor.Row, s.cursor.Col)
	if err := s.doc.InsertAt(offset, '\n'); err != nil {
		return Skipped, fmt.Errorf("split line at offset %d: %w", offset, err)
	}
	s.cursor.Row++
	s.cursor.SetColumn(0)
	s.viewport.Sync(s.cursor.Row)
	return Executed, nil
}

// Keys returns the trigger keys for this command.
func (c *SplitLineCommand) Keys() []string {
	return []string{"<enter>"}
}

// Mode returns the mode this command operates in.
func (c *SplitLineCommand) Mode() Mode {
	return ModeInsert
}

// ID returns the hierarchical identifier for this command.
func (c *SplitLineCommand) ID() string {
	return "insert.split_line"
}

// BackspaceCommand deletes the byte before the cursor. At column 0 it removes
// the previous row's newline, joining the current row onto it.
type BackspaceCommand struct {
	InsertBase
}

// Execute deletes backwards. Skipped at the very start of the document.
func (c *BackspaceCommand) Execute(_ context.Context, s *Session) (ExecuteResult, error) {
	switch {
	case s.cursor.Col > 0:
		offset := s.doc.OffsetOf(s.cursor.Row, s.cursor.Col)
		if !s.doc.DeleteAt(offset - 1) {
			return Skipped, nil
		}
		s.cursor.SetColumn(s.cursor.Col - 1)
	case s.cursor.Row > 0:
		prevLen := s.doc.RowLength(s.cursor.Row - 1)
		offset := s.doc.OffsetOfRowStart(s.cursor.Row)
		if !s.doc.DeleteAt(offset - 1) {
			return Skipped, nil
		}
		s.cursor.Row--
		s.cursor.SetColumn(prevLen)
		s.viewport.Sync(s.cursor.Row)
	default:
		return Skipped, nil
	}
	return Executed, nil
}

// Keys returns the trigger keys for this command.
func (c *BackspaceCommand) Keys() []string {
	return []string{"<backspace>"}
}

// Mode returns the mode this command operates in.
func (c *BackspaceCommand) Mode() Mode {
	return ModeInsert
}

// ID returns the hierarchical identifier for this command.
func (c *BackspaceCommand) ID() string {
	return "insert.backspace"
}
