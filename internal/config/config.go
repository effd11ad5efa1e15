// Package config provides configuration types, defaults and validation for vedit.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/vedit/internal/log"
)

// Config holds all configuration options for vedit.
type Config struct {
	Editor  EditorConfig    `mapstructure:"editor" yaml:"editor"`
	Theme   ThemeConfig     `mapstructure:"theme" yaml:"theme"`
	Watch   WatchConfig     `mapstructure:"watch" yaml:"watch"`
	History HistoryConfig   `mapstructure:"history" yaml:"history"`
	Tracing TracingConfig   `mapstructure:"tracing" yaml:"tracing"`
	Log     LogConfig       `mapstructure:"log" yaml:"log"`
	Flags   map[string]bool `mapstructure:"flags" yaml:"flags,omitempty"`
}

// EditorConfig holds editing behavior.
type EditorConfig struct {
	// SequenceTimeout is how long `g` waits for the second key of `gg`.
	SequenceTimeout time.Duration `mapstructure:"sequence_timeout" yaml:"sequence_timeout"`

	// ReservedRows are terminal rows not used for text (status and command line).
	ReservedRows int `mapstructure:"reserved_rows" yaml:"reserved_rows"`

	// ConfirmQuit makes `:q` refuse while there are unsaved changes.
	ConfirmQuit bool `mapstructure:"confirm_quit" yaml:"confirm_quit"`

	// MaxDocumentBytes caps the document buffer. 0 means unlimited.
	MaxDocumentBytes int `mapstructure:"max_document_bytes" yaml:"max_document_bytes"`

	// RenderCacheTTL is how long rendered rows stay cached.
	RenderCacheTTL time.Duration `mapstructure:"render_cache_ttl" yaml:"render_cache_ttl"`
}

// ThemeConfig holds color customization.
type ThemeConfig struct {
	// Preset selects a built-in color scheme: "default", "high-contrast", "nord".
	Preset string `mapstructure:"preset" yaml:"preset,omitempty"`

	// Mode forces light or dark mode. If empty, uses terminal detection.
	// Valid values: "light", "dark", ""
	Mode string `mapstructure:"mode" yaml:"mode"`

	// Colors overrides individual color tokens, nested or in dot notation:
	//   colors:
	//     status:
	//       bg: "#00FFFF"
	// or
	//   colors:
	//     "status.bg": "#00FFFF"
	Colors map[string]any `mapstructure:"colors" yaml:"colors,omitempty"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any, len(val))
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// WatchConfig controls detection of changes made to the file outside vedit.
type WatchConfig struct {
	Enabled  bool          `mapstructure:"enabled" yaml:"enabled"`
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

// HistoryConfig controls the remembered cursor position per file.
type HistoryConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Path is the SQLite database file.
	// Default: ~/.config/vedit/history.db
	Path string `mapstructure:"path" yaml:"path"`
}

// TracingConfig holds distributed tracing configuration.
type TracingConfig struct {
	// Enabled controls whether tracing is active.
	// Default: false
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	// Default: "file"
	Exporter string `mapstructure:"exporter" yaml:"exporter"`

	// FilePath is the output file for "file" exporter.
	// Default: ~/.config/vedit/traces/traces.jsonl
	FilePath string `mapstructure:"file_path" yaml:"file_path"`

	// OTLPEndpoint is the collector endpoint for "otlp" exporter.
	// Default: "localhost:4317"
	OTLPEndpoint string `mapstructure:"otlp_endpoint" yaml:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	// Default: 1.0
	SampleRate float64 `mapstructure:"sample_rate" yaml:"sample_rate"`
}

// LogConfig controls the debug log enabled by --debug.
type LogConfig struct {
	Path  string `mapstructure:"path" yaml:"path"`
	Level string `mapstructure:"level" yaml:"level"`
}

// configDir returns ~/.config/vedit or empty string if home dir unavailable.
func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "vedit")
}

// DefaultTracesFilePath returns the default path for trace file export.
func DefaultTracesFilePath() string {
	dir := configDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "traces", "traces.jsonl")
}

// DefaultHistoryPath returns the default cursor history database path.
func DefaultHistoryPath() string {
	dir := configDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "history.db")
}

// UserConfigPath returns ~/.config/vedit/config.yaml.
func UserConfigPath() string {
	dir := configDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Editor: EditorConfig{
			SequenceTimeout:  300 * time.Millisecond,
			ReservedRows:     2,
			ConfirmQuit:      false,
			MaxDocumentBytes: 0,
			RenderCacheTTL:   time.Minute,
		},
		Watch: WatchConfig{
			Enabled:  true,
			Debounce: 100 * time.Millisecond,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    DefaultHistoryPath(),
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     DefaultTracesFilePath(),
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
		Log: LogConfig{
			Path:  "vedit-debug.log",
			Level: "debug",
		},
	}
}

// Validate checks the whole configuration.
func (c Config) Validate() error {
	if err := ValidateEditor(c.Editor); err != nil {
		return err
	}
	if err := ValidateTheme(c.Theme); err != nil {
		return err
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %v", c.Watch.Debounce)
	}
	if c.History.Enabled && c.History.Path == "" {
		return fmt.Errorf("history.path is required when history is enabled")
	}
	return ValidateTracing(c.Tracing)
}

// ValidateEditor checks editor configuration for errors.
func ValidateEditor(e EditorConfig) error {
	if e.SequenceTimeout <= 0 {
		return fmt.Errorf("editor.sequence_timeout must be positive, got %v", e.SequenceTimeout)
	}
	if e.ReservedRows < 0 {
		return fmt.Errorf("editor.reserved_rows must not be negative, got %d", e.ReservedRows)
	}
	if e.MaxDocumentBytes < 0 {
		return fmt.Errorf("editor.max_document_bytes must not be negative, got %d", e.MaxDocumentBytes)
	}
	return nil
}

// ValidateTheme checks theme configuration for errors.
func ValidateTheme(t ThemeConfig) error {
	switch t.Mode {
	case "", "light", "dark":
	default:
		return fmt.Errorf("theme.mode must be \"light\", \"dark\" or empty, got %q", t.Mode)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	// Only validate path requirements when tracing is enabled
	if tracing.Enabled {
		if tracing.Exporter == "file" && tracing.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# vedit configuration

editor:
  # How long 'g' waits for a second 'g'
  sequence_timeout: 300ms
  # Terminal rows kept for the status line and command line
  reserved_rows: 2
  # Refuse ':q' while there are unsaved changes
  confirm_quit: false
  # Largest document in bytes (0 = unlimited)
  max_document_bytes: 0
  render_cache_ttl: 1m

# Warn when the open file changes on disk
watch:
  enabled: true
  debounce: 100ms

# Reopen files at the last cursor position
history:
  enabled: true
  # path: ~/.config/vedit/history.db

theme:
  # preset: default
  # mode: dark
  # colors:
  #   status:
  #     fg: "#000000"
  #     bg: "#00FFFF"
  #   tilde: "#5C6370"
  #   message: "#E5C07B"
  #   error: "#E06C75"

# Tracing of load, save and command dispatch
tracing:
  enabled: false
  exporter: file
  # file_path: ~/.config/vedit/traces/traces.jsonl
  # otlp_endpoint: localhost:4317
  sample_rate: 1.0

# Debug log written when run with --debug
log:
  path: vedit-debug.log
  level: debug

# flags:
#   render-cache: true
#   external-diff: true
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
