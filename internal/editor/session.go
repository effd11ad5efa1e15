package editor

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/zjrosen/vedit/internal/document"
	"github.com/zjrosen/vedit/internal/log"
)

// DefaultSequenceTimeout is how long a pending multi-key sequence waits for
// its next key.
const DefaultSequenceTimeout = 300 * time.Millisecond

// Loader produces the initial content for path. A missing file yields empty
// content, not an error.
type Loader interface {
	Load(ctx context.Context, path string) ([]byte, error)
}

// Saver persists content to path verbatim.
type Saver interface {
	Save(ctx context.Context, path string, content []byte) error
}

// Options configures a Session.
type Options struct {
	Path            string        // file the document is saved to
	Saver           Saver         // used by the w and wq commands
	Clock           Clock         // defaults to RealClock
	SequenceTimeout time.Duration // defaults to DefaultSequenceTimeout
	ConfirmQuit     bool          // q refuses while the document is modified
	Height          int           // visible text rows
	Width           int           // visible text columns; 0 means unknown
}

// Session owns one document being edited together with its cursor, viewport
// and mode. It is not safe for concurrent use; every method must be called
// from the goroutine running the input loop.
type Session struct {
	id   string
	path string

	doc      *document.Document
	cursor   Cursor
	viewport Viewport
	mode     Mode
	shape    CursorShape

	cmdline    []byte
	message    string
	messageErr bool
	pending    *PendingCommandBuilder

	savedRev uint64
	quitting bool

	saver           Saver
	clock           Clock
	sequenceTimeout time.Duration
	confirmQuit     bool

	registry        *CommandRegistry
	pendingRegistry *PendingCommandRegistry
}

// NewSession creates a session in NORMAL mode with the cursor at (0, 0).
func NewSession(doc *document.Document, opts Options) *Session {
	if doc == nil {
		doc = document.New(nil)
	}
	clock := opts.Clock
	if clock == nil {
		clock = RealClock{}
	}
	timeout := opts.SequenceTimeout
	if timeout <= 0 {
		timeout = DefaultSequenceTimeout
	}

	s := &Session{
		id:              uuid.NewString(),
		path:            opts.Path,
		doc:             doc,
		viewport:        NewViewport(opts.Height, opts.Width),
		mode:            ModeNormal,
		shape:           ShapeBlock,
		pending:         NewPendingCommandBuilder(),
		savedRev:        doc.Revision(),
		saver:           opts.Saver,
		clock:           clock,
		sequenceTimeout: timeout,
		confirmQuit:     opts.ConfirmQuit,
		registry:        DefaultRegistry,
		pendingRegistry: DefaultPendingRegistry,
	}
	log.Debug(log.CatEditor, "Session created", "session", s.id, "path", s.path, "bytes", doc.Len())
	return s
}

// HandleKey routes one key to the handler for the current mode and returns the
// resulting mode. KeyNone is ignored. A non-nil error means the document could
// not grow and the session cannot continue.
func (s *Session) HandleKey(ctx context.Context, k Key) (Mode, error) {
	if k == KeyNone || s.quitting {
		return s.mode, nil
	}

	if s.mode == ModeNormal && !s.pending.IsEmpty() {
		if !s.Expire(s.clock.Now()) {
			return s.handlePending(ctx, k)
		}
	}

	cmd, ok := s.registry.Get(s.mode, k.String())
	if !ok {
		cmd = s.typedCommand(k)
	}
	if cmd == nil {
		return s.mode, nil
	}
	return s.execute(ctx, cmd)
}

// typedCommand builds the per-key command for a printable key, or nil when the
// key means nothing in the current mode.
func (s *Session) typedCommand(k Key) Command {
	if !k.IsPrintable() {
		return nil
	}
	switch s.mode {
	case ModeInsert:
		return &InsertCharCommand{char: byte(k)}
	case ModeCommand:
		return &CommandLineAppendCommand{char: byte(k)}
	}
	return nil
}

// handlePending completes or abandons the pending sequence. The key is
// consumed either way.
func (s *Session) handlePending(ctx context.Context, k Key) (Mode, error) {
	operator := s.pending.Operator()
	s.pending.AppendKey(k.String())
	keys := s.pending.KeyBuffer()
	s.pending.Clear()

	cmd, ok := s.pendingRegistry.Get(operator, keys)
	if !ok {
		log.Debug(log.CatMode, "Pending sequence abandoned", "operator", string(operator), "keys", keys)
		return s.mode, nil
	}
	return s.execute(ctx, cmd)
}

func (s *Session) execute(ctx context.Context, cmd Command) (Mode, error) {
	prevMode, prevRev := s.mode, s.doc.Revision()
	result, err := cmd.Execute(ctx, s)
	if err != nil {
		log.ErrorErr(log.CatEditor, "Command failed", err, "command", cmd.ID(), "session", s.id)
		return s.mode, err
	}
	if result == Skipped {
		log.Debug(log.CatEditor, "Command skipped", "command", cmd.ID())
		return s.mode, nil
	}
	s.checkEffects(cmd, prevMode, prevRev)
	return s.mode, nil
}

// checkEffects logs what an executed command changed. A change the command
// does not declare is logged as an error.
func (s *Session) checkEffects(cmd Command, prevMode Mode, prevRev uint64) {
	if s.mode != prevMode {
		if cmd.IsModeChange() {
			log.Debug(log.CatMode, "Mode change", "command", cmd.ID(), "from", prevMode, "to", s.mode)
		} else {
			log.Error(log.CatMode, "Undeclared mode change", "command", cmd.ID(), "from", prevMode, "to", s.mode)
		}
	}

	if rev := s.doc.Revision(); rev != prevRev {
		if cmd.ChangesContent() {
			log.Debug(log.CatDoc, "Document changed", "command", cmd.ID(), "revision", rev, "bytes", s.doc.Len())
		} else {
			log.Error(log.CatDoc, "Undeclared content change", "command", cmd.ID(), "revision", rev)
		}
	}
}

func (s *Session) setMode(m Mode) {
	s.mode = m
	s.pending.Clear()
	if m == ModeInsert {
		s.shape = ShapeBar
	} else {
		s.shape = ShapeBlock
	}
}

// Expire abandons a pending sequence whose deadline has passed. It reports
// whether anything was discarded.
func (s *Session) Expire(now time.Time) bool {
	if !s.pending.Expired(now) {
		return false
	}
	log.Debug(log.CatMode, "Pending sequence expired", "operator", string(s.pending.Operator()))
	s.pending.Clear()
	return true
}

// PendingDeadline returns the deadline of the pending sequence, if any.
func (s *Session) PendingDeadline() (time.Time, bool) {
	if s.pending.IsEmpty() {
		return time.Time{}, false
	}
	return s.pending.Deadline(), true
}

// Resize applies new text-area geometry and keeps the cursor visible.
func (s *Session) Resize(height, width int) {
	s.viewport.Resize(height, width)
	s.viewport.Sync(s.cursor.Row)
}

// RestoreCursor places the cursor at (row, col), clamped into the document,
// and scrolls it into view. Used to reopen a file where it was left.
func (s *Session) RestoreCursor(row, col int) {
	row = max(0, min(row, s.doc.LastRow()))
	s.cursor.Row = row
	s.cursor.SetColumn(min(col, s.doc.RowLength(row)))
	s.viewport.JumpTo(row)
}

// SetMessage replaces the status message.
func (s *Session) SetMessage(msg string) {
	s.message = msg
	s.messageErr = false
}

// SetError replaces the status message with an error.
func (s *Session) SetError(msg string) {
	s.setError(msg)
}

func (s *Session) setError(msg string) {
	s.message = msg
	s.messageErr = true
}

func (s *Session) clearMessage() {
	s.message = ""
	s.messageErr = false
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Path returns the file the session saves to.
func (s *Session) Path() string { return s.path }

// Document returns the edited document. Callers must not mutate it.
func (s *Session) Document() *document.Document { return s.doc }

// Cursor returns the cursor position.
func (s *Session) Cursor() Cursor { return s.cursor }

// Viewport returns the visible window.
func (s *Session) Viewport() Viewport { return s.viewport }

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// Shape returns the cursor style for the current mode.
func (s *Session) Shape() CursorShape { return s.shape }

// CommandLine returns the text typed after ':' in command mode.
func (s *Session) CommandLine() string { return string(s.cmdline) }

// Message returns the status message, if any.
func (s *Session) Message() string { return s.message }

// MessageIsError reports whether the status message describes a failure.
func (s *Session) MessageIsError() bool { return s.messageErr }

// Modified reports whether the document changed since it was loaded or last
// written.
func (s *Session) Modified() bool { return s.doc.Revision() != s.savedRev }

// Quitting reports whether a quit command ended the session.
func (s *Session) Quitting() bool { return s.quitting }

// Pending reports whether a multi-key sequence is waiting for its next key.
func (s *Session) Pending() bool { return !s.pending.IsEmpty() }
