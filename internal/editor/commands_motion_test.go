package editor

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/vedit/internal/document"
)

// ============================================================================
// Motion Command Tests
// ============================================================================

// TestMoveLeftCommand_SaturatesAtZero verifies h stops at column 0
func TestMoveLeftCommand_SaturatesAtZero(t *testing.T) {
	ts := newTestSession(t, "hello")
	ts.RestoreCursor(0, 2)

	ts.press(t, 'h', 'h', 'h')

	require.Equal(t, 0, ts.Cursor().Col)
	require.Equal(t, 0, ts.Cursor().Sticky)
}

// TestMoveRightCommand_StopsAtAppendPosition verifies l may reach the row length but not past it
func TestMoveRightCommand_StopsAtAppendPosition(t *testing.T) {
	ts := newTestSession(t, "abc\nxy")

	ts.press(t, 'l', 'l', 'l', 'l', 'l')

	require.Equal(t, 0, ts.Cursor().Row)
	require.Equal(t, 3, ts.Cursor().Col)
	require.Equal(t, 3, ts.Cursor().Sticky)
}

// TestMoveRightCommand_HorizontalLimit verifies l stops at the last visible column
func TestMoveRightCommand_HorizontalLimit(t *testing.T) {
	ts := newTestSession(t, "abcdefgh", func(o *Options) { o.Width = 4 })

	ts.press(t, 'l', 'l', 'l', 'l', 'l', 'l')

	require.Equal(t, 3, ts.Cursor().Col)
}

// TestMoveDownCommand_LastRowIsNoop verifies j on the last row does nothing
func TestMoveDownCommand_LastRowIsNoop(t *testing.T) {
	ts := newTestSession(t, "ab\ncd")
	ts.press(t, 'j', 'j', 'j')

	require.Equal(t, 1, ts.Cursor().Row)
}

// TestMoveDownCommand_OntoTrailingEmptyRow verifies the row after a final newline is reachable
func TestMoveDownCommand_OntoTrailingEmptyRow(t *testing.T) {
	ts := newTestSession(t, "ab\n")
	ts.press(t, 'l', 'l', 'j')

	require.Equal(t, 1, ts.Cursor().Row)
	require.Equal(t, 0, ts.Cursor().Col)
}

// TestMoveUpCommand_FirstRowIsNoop verifies k on row 0 does nothing
func TestMoveUpCommand_FirstRowIsNoop(t *testing.T) {
	ts := newTestSession(t, "ab\ncd")
	ts.press(t, 'l', 'k')

	require.Equal(t, Cursor{Row: 0, Col: 1, Sticky: 1}, ts.Cursor())
}

// TestStickyColumn_Law verifies the cursor returns to its chosen column after
// crossing rows of length 2, 0 and 5
func TestStickyColumn_Law(t *testing.T) {
	ts := newTestSession(t, "abcdefgh\nab\n\nabcde")
	ts.RestoreCursor(0, 6)

	ts.press(t, 'j')
	require.Equal(t, 2, ts.Cursor().Col)
	ts.press(t, 'j')
	require.Equal(t, 0, ts.Cursor().Col)
	ts.press(t, 'j')
	require.Equal(t, 5, ts.Cursor().Col, "min(C, 5), not min(C, 0)")

	ts.press(t, 'k', 'k', 'k')
	require.Equal(t, 0, ts.Cursor().Row)
	require.Equal(t, 6, ts.Cursor().Col)
}

// TestStickyColumn_ResetByHorizontalMove verifies h chooses a new sticky column
func TestStickyColumn_ResetByHorizontalMove(t *testing.T) {
	ts := newTestSession(t, "abcdefgh\nab\nabcdefgh")
	ts.RestoreCursor(0, 6)

	ts.press(t, 'j', 'h', 'j')

	require.Equal(t, 2, ts.Cursor().Row)
	require.Equal(t, 1, ts.Cursor().Col)
}

// TestMoveToFirstLine_ResetsViewport verifies gg jumps to row 0 and the top of the file
func TestMoveToFirstLine_ResetsViewport(t *testing.T) {
	ts := newTestSession(t, strings.Repeat("line\n", 30)+"end", func(o *Options) { o.Height = 5 })
	ts.press(t, 'G')
	require.Equal(t, 30, ts.Cursor().Row)
	require.Equal(t, 26, ts.Viewport().First)

	ts.press(t, 'g', 'g')

	require.Equal(t, 0, ts.Cursor().Row)
	require.Equal(t, 0, ts.Viewport().First)
}

// TestMoveToLastLine_TrailingNewline verifies G lands on the last text row
func TestMoveToLastLine_TrailingNewline(t *testing.T) {
	ts := newTestSession(t, "ab\ncd\nef\n")
	ts.press(t, 'l', 'l', 'G')

	require.Equal(t, 2, ts.Cursor().Row)
	require.Equal(t, 2, ts.Cursor().Col)
}

// TestMoveToLastLine_ClampsColumn verifies G keeps the column when it fits and clamps otherwise
func TestMoveToLastLine_ClampsColumn(t *testing.T) {
	ts := newTestSession(t, "abcdef\nxy")
	ts.RestoreCursor(0, 5)

	ts.press(t, 'G')

	require.Equal(t, 1, ts.Cursor().Row)
	require.Equal(t, 2, ts.Cursor().Col)
}

// TestSingleStepScrollsByOne verifies j past the bottom scrolls exactly one row
func TestSingleStepScrollsByOne(t *testing.T) {
	ts := newTestSession(t, "0\n1\n2\n3\n4\n5", func(o *Options) { o.Height = 3 })

	ts.press(t, 'j', 'j')
	require.Equal(t, 0, ts.Viewport().First)
	ts.press(t, 'j')
	require.Equal(t, 1, ts.Viewport().First)
	ts.press(t, 'j')
	require.Equal(t, 2, ts.Viewport().First)

	ts.press(t, 'k', 'k', 'k')
	require.Equal(t, 1, ts.Cursor().Row)
	require.Equal(t, 1, ts.Viewport().First)
}

// TestMotionCommands_Metadata verifies motion command metadata
func TestMotionCommands_Metadata(t *testing.T) {
	tests := []struct {
		cmd  Command
		keys []string
		id   string
	}{
		{&MoveLeftCommand{}, []string{"h"}, "move.left"},
		{&MoveRightCommand{}, []string{"l"}, "move.right"},
		{&MoveDownCommand{}, []string{"j"}, "move.down"},
		{&MoveUpCommand{}, []string{"k"}, "move.up"},
		{&MoveToFirstLineCommand{}, []string{"gg"}, "move.first_line"},
		{&MoveToLastLineCommand{}, []string{"G"}, "move.last_line"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			require.Equal(t, tt.keys, tt.cmd.Keys())
			require.Equal(t, ModeNormal, tt.cmd.Mode())
			require.Equal(t, tt.id, tt.cmd.ID())
			require.False(t, tt.cmd.ChangesContent())
			require.False(t, tt.cmd.IsModeChange())
		})
	}
}

// ============================================================================
// Property Tests
// ============================================================================

var navigationKeys = []Key{'h', 'j', 'k', 'l', 'G', 'g'}

// TestViewportInvariant_Property verifies the cursor stays inside the
// viewport and the document after any mix of moves, jumps and edits
func TestViewportInvariant_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows := rapid.SliceOfN(rapid.StringMatching(`[a-z]{0,12}`), 1, 40).Draw(t, "rows")
		height := rapid.IntRange(1, 8).Draw(t, "height")
		width := rapid.IntRange(0, 10).Draw(t, "width")

		s := NewSession(document.New([]byte(strings.Join(rows, "\n"))), Options{
			Clock:  newFakeClock(),
			Height: height,
			Width:  width,
		})

		steps := rapid.IntRange(1, 200).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			var k Key
			switch s.Mode() {
			case ModeInsert:
				k = rapid.SampledFrom([]Key{'x', KeyEnter, KeyBackspace, KeyEscape}).Draw(t, "insertKey")
			default:
				k = rapid.SampledFrom(append([]Key{'i'}, navigationKeys...)).Draw(t, "normalKey")
			}
			if _, err := s.HandleKey(context.Background(), k); err != nil {
				t.Fatalf("HandleKey(%q): %v", k, err)
			}

			c, v, doc := s.Cursor(), s.Viewport(), s.Document()
			if v.First < 0 || c.Row < v.First || c.Row >= v.First+v.Height {
				t.Fatalf("cursor row %d outside viewport [%d, %d)", c.Row, v.First, v.First+v.Height)
			}
			if c.Row > doc.LineCount() {
				t.Fatalf("cursor row %d past line count %d", c.Row, doc.LineCount())
			}
			if c.Col < 0 || c.Col > doc.RowLength(c.Row) {
				t.Fatalf("cursor col %d outside row %d of length %d", c.Col, c.Row, doc.RowLength(c.Row))
			}
		}
	})
}
