package editor

import "github.com/zjrosen/vedit/internal/document"

// Snapshot is everything a renderer needs to draw one frame.
type Snapshot struct {
	SessionID   string
	Path        string
	Document    *document.Document
	Cursor      Cursor
	Viewport    Viewport
	Mode        Mode
	Shape       CursorShape
	CommandLine string
	Message     string
	MessageErr  bool
	Modified    bool
}

// ScreenRow is the row of the viewport the cursor is drawn on.
func (s Snapshot) ScreenRow() int {
	return s.Viewport.DisplayRow(s.Cursor.Row)
}

// Snapshot captures the session state for rendering.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		SessionID:   s.id,
		Path:        s.path,
		Document:    s.doc,
		Cursor:      s.cursor,
		Viewport:    s.viewport,
		Mode:        s.mode,
		Shape:       s.shape,
		CommandLine: string(s.cmdline),
		Message:     s.message,
		MessageErr:  s.messageErr,
		Modified:    s.Modified(),
	}
}
