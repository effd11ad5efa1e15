// Package app contains the root bubbletea model that drives an editing session.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/vedit/internal/cachemanager"
	"github.com/zjrosen/vedit/internal/config"
	"github.com/zjrosen/vedit/internal/document"
	"github.com/zjrosen/vedit/internal/editor"
	"github.com/zjrosen/vedit/internal/flags"
	"github.com/zjrosen/vedit/internal/infrastructure/sqlite"
	"github.com/zjrosen/vedit/internal/keys"
	"github.com/zjrosen/vedit/internal/log"
	"github.com/zjrosen/vedit/internal/paths"
	"github.com/zjrosen/vedit/internal/pubsub"
	"github.com/zjrosen/vedit/internal/render"
)

// historyLimit is how many files keep a remembered cursor position.
const historyLimit = 1000

// Store loads and saves the edited file.
type Store interface {
	editor.Loader
	editor.Saver
}

// PositionStore remembers the cursor position per file.
type PositionStore interface {
	Get(ctx context.Context, path string) (sqlite.Position, bool, error)
	Put(ctx context.Context, path string, row, col int) error
	Prune(ctx context.Context, keep int) (int64, error)
}

// Deps are the collaborators of the application model.
type Deps struct {
	Config config.Config
	File   paths.File
	Store  Store

	// Positions is optional; nil disables the cursor history.
	Positions PositionStore

	// Changes is optional; it delivers events for the file changed on disk.
	Changes pubsub.Subscriber[string]

	Flags *flags.Registry
	Clock editor.Clock
}

// pendingExpiredMsg fires when a pending key sequence reaches its deadline.
type pendingExpiredMsg struct {
	deadline time.Time
}

// Model is the root application state.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	session  *editor.Session
	renderer *render.Renderer
	file     paths.File
	store    Store
	saver    *trackingSaver

	positions PositionStore
	flags     *flags.Registry
	clock     editor.Clock

	reservedRows    int
	width           int
	height          int
	pendingDeadline time.Time

	changes *pubsub.Listener[string]

	err error
}

// New loads the file and creates the model. Load failures are returned;
// a missing file opens as an empty document.
func New(ctx context.Context, deps Deps) (Model, error) {
	cfg := deps.Config
	content, err := deps.Store.Load(ctx, deps.File.Path)
	if err != nil {
		return Model{}, fmt.Errorf("loading %s: %w", deps.File.Path, err)
	}

	clock := deps.Clock
	if clock == nil {
		clock = editor.RealClock{}
	}

	saver := newTrackingSaver(deps.Store)
	doc, err := document.Open(content, document.WithLimit(cfg.Editor.MaxDocumentBytes))
	if err != nil {
		return Model{}, fmt.Errorf("loading %s: %w", deps.File.Path, err)
	}
	session := editor.NewSession(doc, editor.Options{
		Path:            deps.File.Path,
		Saver:           saver,
		Clock:           clock,
		SequenceTimeout: cfg.Editor.SequenceTimeout,
		ConfirmQuit:     cfg.Editor.ConfirmQuit,
		Height:          1,
	})

	var lineCache cachemanager.CacheManager[render.LineKey, string]
	if deps.Flags.Enabled(flags.FlagRenderCache) {
		lineCache = cachemanager.NewInMemoryCacheManager[render.LineKey, string](
			"render-lines", cfg.Editor.RenderCacheTTL, cachemanager.DefaultCleanupInterval)
	}

	appCtx, cancel := context.WithCancel(ctx)
	m := Model{
		ctx:          appCtx,
		cancel:       cancel,
		session:      session,
		renderer:     render.New(render.Options{Cache: lineCache, TTL: cfg.Editor.RenderCacheTTL}),
		file:         deps.File,
		store:        deps.Store,
		saver:        saver,
		positions:    deps.Positions,
		flags:        deps.Flags,
		clock:        clock,
		reservedRows: max(cfg.Editor.ReservedRows, 0),
	}
	if deps.Changes != nil {
		m.changes = pubsub.NewListener(appCtx, deps.Changes)
	}

	m.restorePosition()
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.changes != nil {
		return m.changes.Listen()
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.session.Resize(msg.Height-m.reservedRows, msg.Width)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Special.ForceQuit) {
			log.Info(log.CatEditor, "Force quit", "session", m.session.ID())
			return m, m.quit()
		}
		return m.handleKeys(keys.Translate(msg))

	case pendingExpiredMsg:
		if msg.deadline.Equal(m.pendingDeadline) {
			m.session.Expire(m.clock.Now())
			m.pendingDeadline = time.Time{}
		}
		return m, nil

	case pubsub.Event[string]:
		if m.changes == nil {
			return m, nil
		}
		return m, tea.Batch(m.checkExternalChange(msg), m.changes.Listen())

	case externalChangeMsg:
		m.showExternalChange(msg)
		return m, nil
	}
	return m, nil
}

// handleKeys feeds keys to the session in order and reacts to the outcome.
func (m Model) handleKeys(ks []editor.Key) (tea.Model, tea.Cmd) {
	for _, k := range ks {
		if _, err := m.session.HandleKey(m.ctx, k); err != nil {
			log.ErrorErr(log.CatEditor, "Fatal editing error", err, "session", m.session.ID())
			m.err = err
			return m, tea.Quit
		}
		if m.session.Quitting() {
			return m, m.quit()
		}
	}
	return m, m.schedulePendingExpiry()
}

// schedulePendingExpiry starts a timer for a newly started pending sequence.
func (m *Model) schedulePendingExpiry() tea.Cmd {
	deadline, ok := m.session.PendingDeadline()
	if !ok {
		m.pendingDeadline = time.Time{}
		return nil
	}
	if deadline.Equal(m.pendingDeadline) {
		return nil
	}
	m.pendingDeadline = deadline
	return tea.Tick(deadline.Sub(m.clock.Now()), func(time.Time) tea.Msg {
		return pendingExpiredMsg{deadline: deadline}
	})
}

// quit records the cursor position and ends the program.
func (m Model) quit() tea.Cmd {
	m.savePosition()
	return tea.Quit
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	return m.renderer.Render(m.ctx, m.session.Snapshot())
}

// Session returns the editing session.
func (m Model) Session() *editor.Session {
	return m.session
}

// Err returns the fatal error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Close stops listening for file changes.
func (m Model) Close() {
	if m.cancel != nil {
		m.cancel()
	}
}

func (m Model) restorePosition() {
	if m.positions == nil {
		return
	}
	if removed, err := m.positions.Prune(m.ctx, historyLimit); err != nil {
		log.ErrorErr(log.CatHistory, "Pruning history failed", err)
	} else if removed > 0 {
		log.Debug(log.CatHistory, "Pruned history", "removed", removed)
	}

	pos, ok, err := m.positions.Get(m.ctx, m.file.Abs)
	if err != nil {
		log.ErrorErr(log.CatHistory, "Reading cursor position failed", err, "path", m.file.Abs)
		return
	}
	if ok {
		m.session.RestoreCursor(pos.Row, pos.Col)
		log.Debug(log.CatHistory, "Restored cursor", "path", m.file.Abs, "row", pos.Row, "col", pos.Col)
	}
}

func (m Model) savePosition() {
	if m.positions == nil {
		return
	}
	c := m.session.Cursor()
	if err := m.positions.Put(m.ctx, m.file.Abs, c.Row, c.Col); err != nil {
		log.ErrorErr(log.CatHistory, "Saving cursor position failed", err, "path", m.file.Abs)
	}
}
