package styles

// Preset is a complete color scheme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains the built-in schemes.
var Presets = map[string]Preset{
	"default":       DefaultPreset,
	"high-contrast": HighContrastPreset,
	"nord":          NordPreset,
}

// DefaultPreset is black on cyan status with a reverse-video block cursor.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Cyan status line on the terminal's own colors",
	Colors: map[ColorToken]string{
		TokenText:           "#CCCCCC",
		TokenTilde:          "#5C6370",
		TokenStatusFg:       "#000000",
		TokenStatusBg:       "#00FFFF",
		TokenStatusModified: "#AA0000",
		TokenCursorFg:       "#000000",
		TokenCursorBg:       "#CCCCCC",
		TokenCommandLine:    "#CCCCCC",
		TokenMessage:        "#E5C07B",
		TokenError:          "#FF8787",
	},
}

// HighContrastPreset maximizes contrast.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "White text, yellow status line",
	Colors: map[ColorToken]string{
		TokenText:           "#FFFFFF",
		TokenTilde:          "#AAAAAA",
		TokenStatusFg:       "#000000",
		TokenStatusBg:       "#FFFF00",
		TokenStatusModified: "#FF0000",
		TokenCursorFg:       "#000000",
		TokenCursorBg:       "#FFFFFF",
		TokenCommandLine:    "#FFFFFF",
		TokenMessage:        "#00FFFF",
		TokenError:          "#FF0000",
	},
}

// NordPreset uses the Nord palette.
var NordPreset = Preset{
	Name:        "nord",
	Description: "Arctic, north-bluish palette",
	Colors: map[ColorToken]string{
		TokenText:           "#D8DEE9",
		TokenTilde:          "#4C566A",
		TokenStatusFg:       "#2E3440",
		TokenStatusBg:       "#88C0D0",
		TokenStatusModified: "#BF616A",
		TokenCursorFg:       "#2E3440",
		TokenCursorBg:       "#D8DEE9",
		TokenCommandLine:    "#E5E9F0",
		TokenMessage:        "#EBCB8B",
		TokenError:          "#BF616A",
	},
}
