package styles

// ColorToken is a named, themeable color.
type ColorToken string

// Color tokens users can override in the config.
const (
	TokenText           ColorToken = "text"
	TokenTilde          ColorToken = "tilde"
	TokenStatusFg       ColorToken = "status.fg"
	TokenStatusBg       ColorToken = "status.bg"
	TokenStatusModified ColorToken = "status.modified"
	TokenCursorFg       ColorToken = "cursor.fg"
	TokenCursorBg       ColorToken = "cursor.bg"
	TokenCommandLine    ColorToken = "cmdline"
	TokenMessage        ColorToken = "message"
	TokenError          ColorToken = "error"
)

// AllTokens returns every known token in display order.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenText,
		TokenTilde,
		TokenStatusFg,
		TokenStatusBg,
		TokenStatusModified,
		TokenCursorFg,
		TokenCursorBg,
		TokenCommandLine,
		TokenMessage,
		TokenError,
	}
}
