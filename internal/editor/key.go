package editor

// Key is a normalized key code. Printable keys are their ASCII value; the
// special keys below are normalized by the key source before reaching the
// session.
type Key rune

const (
	// KeyNone means no key was available.
	KeyNone Key = 0
	// KeyTab is inserted verbatim.
	KeyTab Key = '\t'
	// KeyEnter submits or breaks a line.
	KeyEnter Key = '\r'
	// KeyEscape leaves INSERT and COMMAND modes.
	KeyEscape Key = 0x1b
	// KeyBackspace deletes backwards.
	KeyBackspace Key = 0x7f
)

// String returns the registry key string for k.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return ""
	case KeyEnter:
		return "<enter>"
	case KeyEscape:
		return "<escape>"
	case KeyBackspace:
		return "<backspace>"
	case KeyTab:
		return "<tab>"
	default:
		return string(rune(k))
	}
}

// IsPrintable reports whether k is stored as a single byte when typed.
func (k Key) IsPrintable() bool {
	return k == KeyTab || (k >= 0x20 && k < 0x7f)
}
