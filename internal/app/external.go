package app

import (
	"bytes"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/vedit/internal/diffstat"
	"github.com/zjrosen/vedit/internal/flags"
	"github.com/zjrosen/vedit/internal/log"
	"github.com/zjrosen/vedit/internal/pubsub"
)

// externalChangeMsg describes a change made to the file by another program.
type externalChangeMsg struct {
	removed bool
	stat    diffstat.Stat
	diffed  bool
}

// checkExternalChange reads the file after a watcher event and reports it
// unless the change is our own write or leaves the content as edited.
func (m Model) checkExternalChange(ev pubsub.Event[string]) tea.Cmd {
	if ev.Kind == pubsub.RemovedEvent {
		return func() tea.Msg { return externalChangeMsg{removed: true} }
	}

	current := bytes.Clone(m.session.Document().Bytes())
	withDiff := m.flags.Enabled(flags.FlagExternalDiff)
	return func() tea.Msg {
		disk, err := m.store.Load(m.ctx, m.file.Path)
		if err != nil {
			log.ErrorErr(log.CatWatcher, "Reading changed file failed", err, "path", m.file.Path)
			return nil
		}
		if m.saver.wrote(disk) || bytes.Equal(disk, current) {
			return nil
		}
		msg := externalChangeMsg{}
		if withDiff {
			msg.stat = diffstat.Compute(string(current), string(disk))
			msg.diffed = true
		}
		return msg
	}
}

func (m Model) showExternalChange(msg externalChangeMsg) {
	var text string
	switch {
	case msg.removed:
		text = fmt.Sprintf("W: %q was removed on disk", m.file.Path)
	case msg.diffed:
		text = fmt.Sprintf("W: %q changed on disk (%s)", m.file.Path, msg.stat)
	default:
		text = fmt.Sprintf("W: %q changed on disk", m.file.Path)
	}
	log.Warn(log.CatWatcher, "External change", "path", m.file.Path, "removed", msg.removed)
	m.session.SetError(text)
}
