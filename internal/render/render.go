// Package render draws an editor snapshot as a terminal frame.
package render

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/zjrosen/vedit/internal/cachemanager"
	"github.com/zjrosen/vedit/internal/editor"
	"github.com/zjrosen/vedit/internal/log"
	"github.com/zjrosen/vedit/internal/ui/styles"
)

// DefaultLineTTL is how long a rendered row stays cached.
const DefaultLineTTL = time.Minute

// LineKey identifies a rendered row by width and content.
type LineKey string

type lineInput struct {
	text  []byte
	width int
}

// Options configures a Renderer.
type Options struct {
	// Cache stores rendered rows. nil disables caching.
	Cache cachemanager.CacheManager[LineKey, string]
	TTL   time.Duration
}

// Renderer turns snapshots into screens.
type Renderer struct {
	lines *cachemanager.ReadThroughCache[LineKey, string, lineInput]
	ttl   time.Duration
}

// New creates a Renderer.
func New(opts Options) *Renderer {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultLineTTL
	}
	return &Renderer{
		lines: cachemanager.NewReadThroughCache[LineKey, string, lineInput](opts.Cache, renderLine, opts.Cache == nil),
		ttl:   ttl,
	}
}

// Render draws the visible rows, the status line and the command line.
// The cursor cell is drawn on the viewport row holding the cursor, or at the
// end of the command line in COMMAND mode.
func (r *Renderer) Render(ctx context.Context, snap editor.Snapshot) string {
	var b strings.Builder
	width := snap.Viewport.Width
	doc := snap.Document
	cursorRow := -1
	if snap.Mode != editor.ModeCommand {
		cursorRow = snap.ScreenRow()
	}

	for i := 0; i < snap.Viewport.Height; i++ {
		row := snap.Viewport.First + i
		switch {
		case i == cursorRow:
			b.WriteString(cursorLine(doc.Row(snap.Cursor.Row), snap.Cursor.Col, width, snap.Shape))
		case row > doc.LineCount():
			b.WriteString(styles.TildeStyle.Render("~"))
		default:
			b.WriteString(r.line(ctx, doc.Row(row), width))
		}
		b.WriteByte('\n')
	}

	b.WriteString(statusLine(snap, width))
	b.WriteByte('\n')
	b.WriteString(commandLine(snap, width))
	return b.String()
}

// line renders a row without the cursor, through the cache when enabled.
func (r *Renderer) line(ctx context.Context, text []byte, width int) string {
	key := LineKey(fmt.Sprintf("%d\x00%s", width, text))
	out, err := r.lines.Get(ctx, key, lineInput{text: text, width: width}, r.ttl)
	if err != nil {
		log.ErrorErr(log.CatRender, "Rendering row failed", err)
		return ""
	}
	return out
}

func renderLine(_ context.Context, in lineInput) (string, error) {
	return styles.TextStyle.Render(clip(cells(in.text), in.width)), nil
}

// cursorLine renders the cursor row, clamping the cursor to the last column.
func cursorLine(text []byte, col, width int, shape editor.CursorShape) string {
	s := cells(text)
	x := col
	if width > 0 && x >= width {
		x = width - 1
	}
	s = clip(s, width)

	under := " "
	if x < len(s) {
		under = s[x : x+1]
	}
	cursorStyle := styles.CursorBlockStyle
	if shape == editor.ShapeBar {
		cursorStyle = styles.CursorBarStyle
	}

	var b strings.Builder
	b.WriteString(styles.TextStyle.Render(s[:min(x, len(s))]))
	b.WriteString(cursorStyle.Render(under))
	if x+1 < len(s) {
		b.WriteString(styles.TextStyle.Render(s[x+1:]))
	}
	return b.String()
}

// statusLine renders " MODE [+] path" on the left and "row:col " on the right.
func statusLine(snap editor.Snapshot, width int) string {
	left := " " + snap.Mode.String()
	if snap.Modified {
		left += " [+]"
	}
	if snap.Path != "" {
		left += " " + snap.Path
	}
	right := fmt.Sprintf("%d:%d ", snap.Cursor.Row, snap.Cursor.Col)

	if width <= 0 {
		return styles.StatusStyle.Render(left + " " + right)
	}

	room := width - runewidth.StringWidth(right)
	if runewidth.StringWidth(left) >= room {
		left = runewidth.Truncate(left, max(room-1, 0), "…")
	}
	gap := max(width-runewidth.StringWidth(left)-runewidth.StringWidth(right), 0)

	if marker := " [+]"; snap.Modified && strings.Contains(left, marker) {
		before, after, _ := strings.Cut(left, marker)
		return styles.StatusStyle.Render(before) +
			styles.StatusModifiedStyle.Render(marker) +
			styles.StatusStyle.Render(after+strings.Repeat(" ", gap)+right)
	}
	return styles.StatusStyle.Render(left + strings.Repeat(" ", gap) + right)
}

// commandLine renders ":" and the accumulator in COMMAND mode, otherwise the
// status message.
func commandLine(snap editor.Snapshot, width int) string {
	if snap.Mode == editor.ModeCommand {
		text := ":" + cells([]byte(snap.CommandLine))
		if width > 1 && len(text) >= width {
			text = ansi.TruncateLeft(text, len(text)-width+1, "")
		}
		return styles.CommandLineStyle.Render(text) + styles.CursorBlockStyle.Render(" ")
	}

	msg := snap.Message
	if width > 0 {
		msg = truncate.StringWithTail(msg, uint(width), "…")
	}
	if msg == "" {
		return ""
	}
	if snap.MessageErr {
		return styles.ErrorStyle.Render(msg)
	}
	return styles.MessageStyle.Render(msg)
}

// cells maps each byte to one printable cell.
func cells(text []byte) string {
	out := make([]byte, len(text))
	for i, c := range text {
		switch {
		case c == '\t':
			out[i] = ' '
		case c < 0x20 || c >= 0x7f:
			out[i] = '?'
		default:
			out[i] = c
		}
	}
	return string(out)
}

func clip(s string, width int) string {
	if width > 0 && len(s) > width {
		return s[:width]
	}
	return s
}
