// Package styles contains Lip Gloss style definitions for the editor screen.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	TextColor           = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"}
	TildeColor          = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#5C6370"}
	StatusFgColor       = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#000000"}
	StatusBgColor       = lipgloss.AdaptiveColor{Light: "#00FFFF", Dark: "#00FFFF"}
	StatusModifiedColor = lipgloss.AdaptiveColor{Light: "#AA0000", Dark: "#AA0000"}
	CursorFgColor       = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#000000"}
	CursorBgColor       = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"}
	CommandLineColor    = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"}
	MessageColor        = lipgloss.AdaptiveColor{Light: "#B58900", Dark: "#E5C07B"}
	ErrorColor          = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	TextStyle           lipgloss.Style
	TildeStyle          lipgloss.Style
	StatusStyle         lipgloss.Style
	StatusModifiedStyle lipgloss.Style
	CursorBlockStyle    lipgloss.Style
	CursorBarStyle      lipgloss.Style
	CommandLineStyle    lipgloss.Style
	MessageStyle        lipgloss.Style
	ErrorStyle          lipgloss.Style
)

func init() {
	rebuildStyles()
}

// rebuildStyles recreates every style from the current colors.
func rebuildStyles() {
	TextStyle = lipgloss.NewStyle().Foreground(TextColor)
	TildeStyle = lipgloss.NewStyle().Foreground(TildeColor)
	StatusStyle = lipgloss.NewStyle().Foreground(StatusFgColor).Background(StatusBgColor)
	StatusModifiedStyle = StatusStyle.Foreground(StatusModifiedColor).Bold(true)
	CursorBlockStyle = lipgloss.NewStyle().Foreground(CursorFgColor).Background(CursorBgColor)
	CursorBarStyle = lipgloss.NewStyle().Foreground(CursorBgColor).Underline(true).Bold(true)
	CommandLineStyle = lipgloss.NewStyle().Foreground(CommandLineColor)
	MessageStyle = lipgloss.NewStyle().Foreground(MessageColor)
	ErrorStyle = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
}
