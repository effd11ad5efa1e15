package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vedit/internal/config"
	"github.com/zjrosen/vedit/internal/document"
	"github.com/zjrosen/vedit/internal/editor"
	"github.com/zjrosen/vedit/internal/flags"
	"github.com/zjrosen/vedit/internal/infrastructure/sqlite"
	"github.com/zjrosen/vedit/internal/paths"
	"github.com/zjrosen/vedit/internal/pubsub"
	"github.com/zjrosen/vedit/internal/storage"
)

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time { return c.now }

type memPositions struct {
	stored map[string]sqlite.Position
	pruned bool
}

func newMemPositions() *memPositions {
	return &memPositions{stored: make(map[string]sqlite.Position)}
}

func (p *memPositions) Get(_ context.Context, path string) (sqlite.Position, bool, error) {
	pos, ok := p.stored[path]
	return pos, ok, nil
}

func (p *memPositions) Put(_ context.Context, path string, row, col int) error {
	p.stored[path] = sqlite.Position{Path: path, Row: row, Col: col}
	return nil
}

func (p *memPositions) Prune(context.Context, int) (int64, error) {
	p.pruned = true
	return 0, nil
}

type harness struct {
	fs        afero.Fs
	positions *memPositions
	clock     *testClock
	deps      Deps
}

func newHarness(t *testing.T, content string) *harness {
	t.Helper()
	fs := afero.NewMemMapFs()
	if content != "" {
		require.NoError(t, afero.WriteFile(fs, "notes.txt", []byte(content), 0o644))
	}
	h := &harness{
		fs:        fs,
		positions: newMemPositions(),
		clock:     &testClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	h.deps = Deps{
		Config:    config.Defaults(),
		File:      paths.File{Path: "notes.txt", Abs: "/work/notes.txt"},
		Store:     storage.NewFileStore(fs),
		Positions: h.positions,
		Flags:     flags.New(nil),
		Clock:     h.clock,
	}
	return h
}

func (h *harness) model(t *testing.T) Model {
	t.Helper()
	m, err := New(context.Background(), h.deps)
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return m
}

func (h *harness) disk(t *testing.T) string {
	t.Helper()
	data, err := afero.ReadFile(h.fs, "notes.txt")
	require.NoError(t, err)
	return string(data)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func typeKeys(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// TestApp_EditAndWriteQuit drives a full session through the bubbletea program
func TestApp_EditAndWriteQuit(t *testing.T) {
	h := newHarness(t, "")
	tm := teatest.NewTestModel(t, h.model(t), teatest.WithInitialTermSize(40, 10))

	tm.Type("ihi")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	tm.Type("x")
	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	tm.Type(":wq")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))
	final := tm.FinalModel(t).(Model)

	require.NoError(t, final.Err())
	require.Equal(t, "hi\nx", h.disk(t))
	require.True(t, final.Session().Quitting())
	require.Equal(t, editor.Cursor{Row: 1, Col: 1, Sticky: 1}, final.Session().Cursor())
	require.Equal(t, sqlite.Position{Path: "/work/notes.txt", Row: 1, Col: 1}, h.positions.stored["/work/notes.txt"])
}

// TestApp_ShowsStatusLine verifies the rendered frame carries mode and position
func TestApp_ShowsStatusLine(t *testing.T) {
	h := newHarness(t, "hello\nworld")
	tm := teatest.NewTestModel(t, h.model(t), teatest.WithInitialTermSize(40, 6))

	tm.Type("jl")
	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return strings.Contains(string(b), "1:1")
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))
}

func TestApp_WindowSizeReservesRows(t *testing.T) {
	h := newHarness(t, "a")
	m := h.model(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	require.Equal(t, 22, m.Session().Viewport().Height)
	require.Equal(t, 80, m.Session().Viewport().Width)
	require.Equal(t, 24, len(strings.Split(m.View(), "\n")))
}

func TestApp_ViewEmptyBeforeSize(t *testing.T) {
	m := newHarness(t, "a").model(t)
	require.Empty(t, m.View())
}

func TestApp_LoadsExistingFile(t *testing.T) {
	m := newHarness(t, "one\ntwo\n").model(t)

	require.Equal(t, "one\ntwo\n", m.Session().Document().String())
	require.False(t, m.Session().Modified())
}

func TestApp_LoadError(t *testing.T) {
	h := newHarness(t, "")
	h.deps.Store = failingStore{err: errors.New("disk on fire")}

	_, err := New(context.Background(), h.deps)
	require.ErrorContains(t, err, "disk on fire")
}

type failingStore struct{ err error }

func (s failingStore) Load(context.Context, string) ([]byte, error) { return nil, s.err }
func (s failingStore) Save(context.Context, string, []byte) error   { return s.err }

func TestApp_RestoresPosition(t *testing.T) {
	h := newHarness(t, "a\nbb\nccc\n")
	h.positions.stored["/work/notes.txt"] = sqlite.Position{Row: 2, Col: 9}

	m := h.model(t)

	require.True(t, h.positions.pruned)
	require.Equal(t, 2, m.Session().Cursor().Row)
	require.Equal(t, 3, m.Session().Cursor().Col)
}

func TestApp_NoPositionStore(t *testing.T) {
	h := newHarness(t, "abc")
	h.deps.Positions = nil
	m := h.model(t)

	m = typeKeys(t, m, ":q")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.True(t, isQuit(cmd))
	require.True(t, m.Session().Quitting())
}

func TestApp_StorageExhaustedIsFatal(t *testing.T) {
	h := newHarness(t, "")
	h.deps.Config.Editor.MaxDocumentBytes = 16
	m := h.model(t)

	m = typeKeys(t, m, "i")
	var cmd tea.Cmd
	for i := 0; i < 64 && m.Err() == nil; i++ {
		m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	}

	require.ErrorIs(t, m.Err(), document.ErrStorageExhausted)
	require.True(t, isQuit(cmd))
}

func TestApp_FileLargerThanLimitFailsToLoad(t *testing.T) {
	h := newHarness(t, "0123456789abcdefghij")
	h.deps.Config.Editor.MaxDocumentBytes = 16

	_, err := New(context.Background(), h.deps)

	require.ErrorIs(t, err, document.ErrStorageExhausted)
	require.Contains(t, err.Error(), "notes.txt")
}

func TestApp_ForceQuitDoesNotSave(t *testing.T) {
	h := newHarness(t, "abc")
	m := h.model(t)
	m = typeKeys(t, m, "ix")

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.True(t, isQuit(cmd))
	require.Equal(t, "abc", h.disk(t))
	require.Contains(t, h.positions.stored, "/work/notes.txt")
}

func TestApp_PendingSequenceExpires(t *testing.T) {
	h := newHarness(t, "a\nb\nc")
	m := h.model(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	require.NotNil(t, cmd, "a timer is scheduled for the pending g")
	require.True(t, m.Session().Pending())

	deadline, ok := m.Session().PendingDeadline()
	require.True(t, ok)

	h.clock.now = deadline
	m, _ = update(t, m, pendingExpiredMsg{deadline: deadline})

	require.False(t, m.Session().Pending())
	require.Equal(t, 0, m.Session().Cursor().Row)
}

func TestApp_StaleExpiryIgnored(t *testing.T) {
	h := newHarness(t, "a\nb\nc")
	m := h.model(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	m, _ = update(t, m, pendingExpiredMsg{deadline: h.clock.now.Add(-time.Hour)})

	require.True(t, m.Session().Pending())
}

func TestApp_ExternalChangeReported(t *testing.T) {
	h := newHarness(t, "a\nb\n")
	m := h.model(t)
	require.NoError(t, afero.WriteFile(h.fs, "notes.txt", []byte("a\nb\nc\n"), 0o644))

	msg := m.checkExternalChange(pubsub.Event[string]{Kind: pubsub.ChangedEvent, Payload: "/work/notes.txt"})()
	m, _ = update(t, m, msg)

	require.Equal(t, `W: "notes.txt" changed on disk (+1 -0)`, m.Session().Message())
	require.True(t, m.Session().MessageIsError())
}

func TestApp_ExternalChangeWithoutDiff(t *testing.T) {
	h := newHarness(t, "a\n")
	h.deps.Flags = flags.New(map[string]bool{flags.FlagExternalDiff: false})
	m := h.model(t)
	require.NoError(t, afero.WriteFile(h.fs, "notes.txt", []byte("z\n"), 0o644))

	msg := m.checkExternalChange(pubsub.Event[string]{Kind: pubsub.ChangedEvent})()
	m, _ = update(t, m, msg)

	require.Equal(t, `W: "notes.txt" changed on disk`, m.Session().Message())
}

func TestApp_OwnWriteIgnored(t *testing.T) {
	h := newHarness(t, "a\n")
	m := h.model(t)
	m = typeKeys(t, m, "ix")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = typeKeys(t, m, ":w")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "xa\n", h.disk(t))

	msg := m.checkExternalChange(pubsub.Event[string]{Kind: pubsub.ChangedEvent})()

	require.Nil(t, msg)
}

func TestApp_ExternalRemove(t *testing.T) {
	m := newHarness(t, "a").model(t)

	msg := m.checkExternalChange(pubsub.Event[string]{Kind: pubsub.RemovedEvent})()
	m, _ = update(t, m, msg)

	require.Equal(t, `W: "notes.txt" was removed on disk`, m.Session().Message())
}

func TestApp_ListensForChanges(t *testing.T) {
	h := newHarness(t, "a")
	broker := pubsub.NewBroker[string]()
	t.Cleanup(broker.Close)
	h.deps.Changes = broker
	m := h.model(t)

	cmd := m.Init()
	require.NotNil(t, cmd)

	broker.Publish(pubsub.ChangedEvent, "/work/notes.txt")
	ev, ok := cmd().(pubsub.Event[string])
	require.True(t, ok)
	require.Equal(t, pubsub.ChangedEvent, ev.Kind)
}
