package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/vedit/internal/app"
	"github.com/zjrosen/vedit/internal/config"
	"github.com/zjrosen/vedit/internal/flags"
	"github.com/zjrosen/vedit/internal/infrastructure/sqlite"
	"github.com/zjrosen/vedit/internal/log"
	"github.com/zjrosen/vedit/internal/paths"
	"github.com/zjrosen/vedit/internal/storage"
	"github.com/zjrosen/vedit/internal/tracing"
	"github.com/zjrosen/vedit/internal/ui/styles"
	"github.com/zjrosen/vedit/internal/watcher"
)

func init() {
	// Query the terminal background before bubbletea owns stdin so the
	// OSC 11 reply does not arrive as typed keys.
	_ = lipgloss.HasDarkBackground()
}

// projectConfigPath is checked before the user config.
const projectConfigPath = ".vedit/config.yaml"

var errNoFile = errors.New("no file given")

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
	cfgPath   string
)

var rootCmd = &cobra.Command{
	Use:   "vedit <file>",
	Short: "A small modal text editor for the terminal",
	Long: `vedit opens one file in a modal editor with NORMAL, INSERT and COMMAND modes.

Move with h/j/k/l, gg and G, type after i or a, and save or quit with :w, :q and :wq.
A file that does not exist yet is created on the first write.`,
	Version:       version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE:          runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .vedit/config.yaml, then ~/.config/vedit/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write a debug log (also enabled by VEDIT_DEBUG)")
}

func initConfig() {
	var err error
	cfg, cfgPath, err = loadConfig(viper.GetViper(), cfgFile, config.UserConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "vedit: %v\n", err)
	}
}

// loadConfig reads the config file into v. Lookup order is explicit,
// then .vedit/config.yaml, then userPath. When nothing exists a default
// config is written to userPath. It returns the effective config and the
// file it came from.
func loadConfig(v *viper.Viper, explicit, userPath string) (config.Config, string, error) {
	setDefaults(v)

	path := explicit
	if path == "" {
		if _, err := os.Stat(projectConfigPath); err == nil {
			path = projectConfigPath
		} else {
			path = userPath
		}
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) && explicit == "" {
		if writeErr := config.WriteDefaultConfig(path); writeErr != nil {
			log.ErrorErr(log.CatConfig, "Could not write default config", writeErr, "path", path)
			path = ""
		}
	}

	var result config.Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config.Defaults(), path, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(&result); err != nil {
		return config.Defaults(), path, fmt.Errorf("parsing config: %w", err)
	}
	return result, path, nil
}

func setDefaults(v *viper.Viper) {
	d := config.Defaults()
	v.SetDefault("editor.sequence_timeout", d.Editor.SequenceTimeout)
	v.SetDefault("editor.reserved_rows", d.Editor.ReservedRows)
	v.SetDefault("editor.confirm_quit", d.Editor.ConfirmQuit)
	v.SetDefault("editor.max_document_bytes", d.Editor.MaxDocumentBytes)
	v.SetDefault("editor.render_cache_ttl", d.Editor.RenderCacheTTL)
	v.SetDefault("watch.enabled", d.Watch.Enabled)
	v.SetDefault("watch.debounce", d.Watch.Debounce)
	v.SetDefault("history.enabled", d.History.Enabled)
	v.SetDefault("history.path", d.History.Path)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.file_path", d.Tracing.FilePath)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
	v.SetDefault("log.path", d.Log.Path)
	v.SetDefault("log.level", d.Log.Level)
}

func runApp(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		_ = cmd.Help()
		return errNoFile
	}

	if os.Getenv("VEDIT_DEBUG") != "" || debugFlag {
		cleanup, err := log.Init(cfg.Log.Path)
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		defer cleanup()
		log.SetMinLevel(log.ParseLevel(cfg.Log.Level))
		log.Info(log.CatConfig, "vedit starting", "version", version, "config", cfgPath)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := styles.ApplyTheme(styles.ThemeConfig{
		Preset: cfg.Theme.Preset,
		Mode:   cfg.Theme.Mode,
		Colors: cfg.Theme.FlattenedColors(),
	}); err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}

	ctx := context.Background()
	provider, err := tracing.NewProvider(ctx, tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		Exporter:     cfg.Tracing.Exporter,
		FilePath:     cfg.Tracing.FilePath,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRate:   cfg.Tracing.SampleRate,
	})
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() { _ = provider.Shutdown(context.Background()) }()

	file, err := paths.ResolveFile(args[0])
	if err != nil {
		return err
	}

	deps := app.Deps{
		Config: cfg,
		File:   file,
		Store:  storage.NewFileStore(afero.NewOsFs()),
		Flags:  flags.New(cfg.Flags),
	}

	if cfg.History.Enabled {
		db, err := sqlite.NewDB(cfg.History.Path)
		if err != nil {
			log.ErrorErr(log.CatHistory, "Cursor history unavailable", err, "path", cfg.History.Path)
		} else {
			defer func() { _ = db.Close() }()
			deps.Positions = db.Positions()
		}
	}

	if cfg.Watch.Enabled {
		if w := startWatcher(file.Abs); w != nil {
			defer func() { _ = w.Stop() }()
			deps.Changes = w
		}
	}

	model, err := app.New(ctx, deps)
	if err != nil {
		return err
	}
	defer model.Close()

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	if m, ok := final.(app.Model); ok && m.Err() != nil {
		return fmt.Errorf("editing %s: %w", file.Path, m.Err())
	}
	return nil
}

// startWatcher watches path, returning nil when watching is not possible.
// The editor works without it.
func startWatcher(path string) *watcher.Watcher {
	w, err := watcher.New(watcherConfig(path, cfg.Watch))
	if err != nil {
		log.ErrorErr(log.CatWatcher, "Watcher unavailable", err, "path", path)
		return nil
	}
	if err := w.Start(); err != nil {
		_ = w.Stop()
		log.ErrorErr(log.CatWatcher, "Watcher failed to start", err, "dir", filepath.Dir(path))
		return nil
	}
	return w
}

// watcherConfig applies the configured debounce over the watcher defaults.
func watcherConfig(path string, watch config.WatchConfig) watcher.Config {
	wcfg := watcher.DefaultConfig(path)
	if watch.Debounce > 0 {
		wcfg.Debounce = watch.Debounce
	}
	return wcfg
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
