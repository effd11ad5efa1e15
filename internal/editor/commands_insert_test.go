package editor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// ============================================================================
// Insert Command Tests
// ============================================================================

// TestInsertCharCommand_Execute verifies a typed byte lands at the cursor
func TestInsertCharCommand_Execute(t *testing.T) {
	ts := newTestSession(t, "hllo")
	ts.RestoreCursor(0, 1)

	cmd := &InsertCharCommand{char: 'e'}
	result, err := cmd.Execute(context.Background(), ts.Session)

	require.NoError(t, err)
	require.Equal(t, Executed, result)
	require.Equal(t, "hello", ts.content())
	require.Equal(t, 2, ts.Cursor().Col)
	require.Equal(t, 2, ts.Cursor().Sticky)
}

// TestInsertCharCommand_Tab verifies tab is stored verbatim
func TestInsertCharCommand_Tab(t *testing.T) {
	ts := newTestSession(t, "x")
	ts.press(t, 'i', KeyTab)

	require.Equal(t, "\tx", ts.content())
	require.Equal(t, 1, ts.Cursor().Col)
}

// TestInsertMode_NonPrintableIgnored verifies control keys insert nothing
func TestInsertMode_NonPrintableIgnored(t *testing.T) {
	ts := newTestSession(t, "x")
	ts.press(t, 'i', Key(0x01), Key(0x80))

	require.Equal(t, "x", ts.content())
}

// TestInsertMode_NormalKeysAreText verifies h/j/k/l are typed in insert mode
func TestInsertMode_NormalKeysAreText(t *testing.T) {
	ts := newTestSession(t, "")
	ts.press(t, 'i')
	ts.typeText(t, "hjkl:G")

	require.Equal(t, "hjkl:G", ts.content())
	require.Equal(t, ModeInsert, ts.Mode())
}

// TestSplitLineCommand_Middle verifies enter splits the row at the cursor
func TestSplitLineCommand_Middle(t *testing.T) {
	ts := newTestSession(t, "abcd")
	ts.RestoreCursor(0, 2)
	ts.press(t, 'i', KeyEnter)

	require.Equal(t, "ab\ncd", ts.content())
	require.Equal(t, Cursor{Row: 1, Col: 0, Sticky: 0}, ts.Cursor())
}

// TestSplitLineCommand_ScrollsViewport verifies enter on the last visible row scrolls
func TestSplitLineCommand_ScrollsViewport(t *testing.T) {
	ts := newTestSession(t, "a\nb", func(o *Options) { o.Height = 2 })
	ts.press(t, 'j', 'a', KeyEnter)

	require.Equal(t, 2, ts.Cursor().Row)
	require.Equal(t, 1, ts.Viewport().First)
}

// TestBackspaceCommand_DeletesBeforeCursor verifies backspace with col > 0
func TestBackspaceCommand_DeletesBeforeCursor(t *testing.T) {
	ts := newTestSession(t, "abc")
	ts.RestoreCursor(0, 2)
	ts.press(t, 'i', KeyBackspace)

	require.Equal(t, "ac", ts.content())
	require.Equal(t, 1, ts.Cursor().Col)
}

// TestBackspaceCommand_MergesLines verifies backspace at col 0 joins onto the previous row
func TestBackspaceCommand_MergesLines(t *testing.T) {
	ts := newTestSession(t, "abc\ndef\nghi")
	ts.RestoreCursor(1, 0)
	ts.press(t, 'i', KeyBackspace)

	require.Equal(t, "abcdef\nghi", ts.content())
	require.Equal(t, 0, ts.Cursor().Row)
	require.Equal(t, 3, ts.Cursor().Col)
	require.Equal(t, 1, ts.Document().LineCount())
}

// TestBackspaceCommand_MergeEmptyRows verifies joining onto an empty row lands on col 0
func TestBackspaceCommand_MergeEmptyRows(t *testing.T) {
	ts := newTestSession(t, "\n\nx")
	ts.RestoreCursor(2, 0)
	ts.press(t, 'i', KeyBackspace)

	require.Equal(t, "\nx", ts.content())
	require.Equal(t, Cursor{Row: 1, Col: 0, Sticky: 0}, ts.Cursor())
}

// TestBackspaceCommand_MergeScrollsUp verifies joining onto a row above the viewport scrolls back
func TestBackspaceCommand_MergeScrollsUp(t *testing.T) {
	ts := newTestSession(t, "a\nb\nc", func(o *Options) { o.Height = 1 })
	ts.press(t, 'j', 'j')
	require.Equal(t, 2, ts.Viewport().First)

	ts.press(t, 'i', KeyBackspace)

	require.Equal(t, 1, ts.Cursor().Row)
	require.Equal(t, 1, ts.Viewport().First)
}

// TestBackspaceCommand_StartOfDocument verifies backspace at (0,0) is skipped
func TestBackspaceCommand_StartOfDocument(t *testing.T) {
	ts := newTestSession(t, "abc")
	ts.press(t, 'i')

	result, err := (&BackspaceCommand{}).Execute(context.Background(), ts.Session)

	require.NoError(t, err)
	require.Equal(t, Skipped, result)
	require.Equal(t, "abc", ts.content())
	require.False(t, ts.Modified())
}

// TestInsertCommands_Metadata verifies insert command metadata
func TestInsertCommands_Metadata(t *testing.T) {
	tests := []struct {
		cmd  Command
		keys []string
		id   string
	}{
		{&InsertCharCommand{char: 'x'}, []string{"x"}, "insert.char"},
		{&SplitLineCommand{}, []string{"<enter>"}, "insert.split_line"},
		{&BackspaceCommand{}, []string{"<backspace>"}, "insert.backspace"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			require.Equal(t, tt.keys, tt.cmd.Keys())
			require.Equal(t, ModeInsert, tt.cmd.Mode())
			require.Equal(t, tt.id, tt.cmd.ID())
			require.True(t, tt.cmd.ChangesContent())
			require.False(t, tt.cmd.IsModeChange())
		})
	}
}
