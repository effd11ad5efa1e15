// Package keys contains keybinding definitions and the translation from
// terminal key events to editor keys.
package keys

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/vedit/internal/editor"
)

// Special keys normalized before they reach the editor.
var Special = struct {
	Enter     key.Binding
	Backspace key.Binding
	Escape    key.Binding
	Tab       key.Binding
	ForceQuit key.Binding
}{
	Enter: key.NewBinding(
		key.WithKeys("enter", "ctrl+m"),
		key.WithHelp("enter", "split line / run command"),
	),
	Backspace: key.NewBinding(
		key.WithKeys("backspace", "ctrl+h"),
		key.WithHelp("backspace", "delete backwards"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back to NORMAL"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "insert a tab"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit without saving"),
	),
}

// Section is a titled group of bindings for the key reference.
type Section struct {
	Title    string
	Bindings []key.Binding
}

// Reference lists every binding by mode.
func Reference() []Section {
	return []Section{
		{
			Title: editor.ModeNormal.String(),
			Bindings: []key.Binding{
				key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "move left")),
				key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "move right")),
				key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "move down")),
				key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "move up")),
				key.NewBinding(key.WithKeys("g"), key.WithHelp("gg", "first line")),
				key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "last line")),
				key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert before cursor")),
				key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "insert after cursor")),
				key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command line")),
			},
		},
		{
			Title: editor.ModeInsert.String(),
			Bindings: []key.Binding{
				Special.Enter,
				Special.Backspace,
				Special.Tab,
				Special.Escape,
			},
		},
		{
			Title: editor.ModeCommand.String(),
			Bindings: []key.Binding{
				key.NewBinding(key.WithKeys("w"), key.WithHelp(":w", "write the file")),
				key.NewBinding(key.WithKeys("q"), key.WithHelp(":q", "quit")),
				key.NewBinding(key.WithKeys("wq"), key.WithHelp(":wq", "write, then quit")),
				key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete; on empty line back to NORMAL")),
				key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "discard command")),
			},
		},
		{
			Title:    "Any mode",
			Bindings: []key.Binding{Special.ForceQuit},
		},
	}
}

// Translate converts a terminal key event into editor keys. Pasted text
// yields one key per character. Unhandled keys yield nothing.
func Translate(msg tea.KeyMsg) []editor.Key {
	switch {
	case key.Matches(msg, Special.Enter):
		return []editor.Key{editor.KeyEnter}
	case key.Matches(msg, Special.Backspace):
		return []editor.Key{editor.KeyBackspace}
	case key.Matches(msg, Special.Escape):
		return []editor.Key{editor.KeyEscape}
	case key.Matches(msg, Special.Tab):
		return []editor.Key{editor.KeyTab}
	}

	switch msg.Type {
	case tea.KeySpace:
		return []editor.Key{' '}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		out := make([]editor.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			switch k := editor.Key(r); {
			case r == '\n' || r == '\r':
				out = append(out, editor.KeyEnter)
			case k.IsPrintable():
				out = append(out, k)
			}
		}
		return out
	}
	return nil
}
