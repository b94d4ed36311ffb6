package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/quill/internal/config"
	"github.com/zjrosen/quill/internal/flags"
	"github.com/zjrosen/quill/internal/log"
	"github.com/zjrosen/quill/internal/store"
	"github.com/zjrosen/quill/internal/ui"
	"github.com/zjrosen/quill/internal/watcher"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:     "quill <file>",
	Short:   "A terminal viewer for SQL and properties files",
	Long:    `A terminal viewer with syntax highlighting, code folding and regex search for SQL and properties files.`,
	Version: version,
	Args:    cobra.ExactArgs(1),
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/quill/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write a debug log")
	rootCmd.Flags().Bool("no-reload", false,
		"disable automatic reload when the file changes on disk")
	rootCmd.PersistentFlags().String("theme", "",
		"theme preset (overrides config)")

	_ = viper.BindPFlag("theme.preset", rootCmd.PersistentFlags().Lookup("theme"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("auto_reload", defaults.AutoReload)
	viper.SetDefault("ui.show_line_numbers", defaults.UI.ShowLineNumbers)
	viper.SetDefault("ui.show_fold_gutter", defaults.UI.ShowFoldGutter)
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("search.cache_entries", defaults.Search.CacheEntries)
	viper.SetDefault("search.cache_ttl_seconds", defaults.Search.CacheTTLSeconds)
	viper.SetDefault("watcher.debounce_ms", defaults.Watcher.DebounceMs)
	viper.SetDefault("store.path", defaults.Store.Path)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .quill/config.yaml (current directory)
		// 2. ~/.config/quill/config.yaml (user config)
		if _, err := os.Stat(".quill/config.yaml"); err == nil {
			viper.SetConfigFile(".quill/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "quill"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .quill/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".quill/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// initDebugLog wires the debug log when requested via flag or env var.
func initDebugLog(prefix string) (func(), error) {
	if os.Getenv("QUILL_DEBUG") == "" && !debugFlag {
		return func() {}, nil
	}
	logPath := os.Getenv("QUILL_LOG")
	if logPath == "" {
		logPath = "debug.log"
	}
	cleanup, err := log.InitWithTeaLog(logPath, prefix)
	if err != nil {
		return nil, fmt.Errorf("initializing logging: %w", err)
	}
	log.Info(log.CatConfig, "Quill starting", "debug", true, "logPath", logPath)
	return cleanup, nil
}

func runApp(cmd *cobra.Command, args []string) error {
	cleanup, err := initDebugLog("quill")
	if err != nil {
		return err
	}
	defer cleanup()

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := applyTheme(cfg); err != nil {
		return err
	}

	provider, err := buildTracing(cfg)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer shutdownTracing(provider)

	doc, lang, err := loadDocument(args[0], cfg, provider.Tracer())
	if err != nil {
		return err
	}

	registry := flags.New(cfg.Flags)

	var snapshots *store.FoldStore
	var db *store.DB
	if registry.Enabled(flags.FlagFoldSnapshots) && cfg.Store.Path != "" {
		db, err = store.NewDB(cfg.Store.Path)
		if err != nil {
			return fmt.Errorf("opening snapshot store: %w", err)
		}
		defer func() { _ = db.Close() }()
		snapshots = db.FoldStore()
		saveFoldSnapshot(snapshots, doc)
	}

	var fileWatcher *watcher.Watcher
	if noReload, _ := cmd.Flags().GetBool("no-reload"); !noReload &&
		(cfg.AutoReload || registry.Enabled(flags.FlagLiveReload)) {
		wcfg := watcher.DefaultConfig(args[0])
		if cfg.Watcher.DebounceMs > 0 {
			wcfg.DebounceDur = time.Duration(cfg.Watcher.DebounceMs) * time.Millisecond
		}
		fileWatcher, err = watcher.New(wcfg)
		if err != nil {
			return fmt.Errorf("creating file watcher: %w", err)
		}
		defer func() { _ = fileWatcher.Stop() }()
	}

	model := ui.New(doc, lang, ui.Options{
		Config:    cfg,
		Tracer:    provider.Tracer(),
		Flags:     registry,
		Watcher:   fileWatcher,
		Snapshots: snapshots,
	})
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
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
