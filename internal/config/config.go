// Package config provides configuration types and defaults for quill.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zjrosen/quill/internal/log"
)

// LanguageConfig defines a single language the viewer can lex.
type LanguageConfig struct {
	Name       string         `mapstructure:"name"`
	Lexer      string         `mapstructure:"lexer"`      // "sql" (default) or "props"
	Extensions []string       `mapstructure:"extensions"` // file extensions mapped to this language
	Properties map[string]int `mapstructure:"properties"` // lexer/fold property overrides
	Wordlists  string         `mapstructure:"wordlists"`  // path to a YAML keyword pack (sql only)
}

// Config holds all configuration options for quill.
type Config struct {
	AutoReload bool             `mapstructure:"auto_reload"`
	UI         UIConfig         `mapstructure:"ui"`
	Theme      ThemeConfig      `mapstructure:"theme"`
	Languages  []LanguageConfig `mapstructure:"languages"`
	Search     SearchConfig     `mapstructure:"search"`
	Watcher    WatcherConfig    `mapstructure:"watcher"`
	Store      StoreConfig      `mapstructure:"store"`
	Tracing    TracingConfig    `mapstructure:"tracing"`
	Flags      map[string]bool  `mapstructure:"flags"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowLineNumbers bool `mapstructure:"show_line_numbers"`
	ShowFoldGutter  bool `mapstructure:"show_fold_gutter"`
	ShowStatusBar   bool `mapstructure:"show_status_bar"`
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "catppuccin-mocha", "catppuccin-latte",
	// "dracula", "nord", "high-contrast"
	Preset string `mapstructure:"preset"`

	// Mode forces light or dark mode. If empty, uses terminal detection.
	// Valid values: "light", "dark", ""
	Mode string `mapstructure:"mode"`

	// Colors allows overriding individual color tokens.
	// Supports both nested YAML structure and dot notation.
	// Example YAML:
	//   colors:
	//     style:
	//       keyword: "#FF0000"
	// Or quoted dot notation:
	//   colors:
	//     "style.keyword": "#FF0000"
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
// This handles both nested YAML structures and already-flat keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

// flattenColors recursively flattens a nested map into dot-notation keys.
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
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// SearchConfig holds search service configuration.
type SearchConfig struct {
	// CacheEntries set to 0 turns the search cache off; any positive value
	// turns it on. The number of memoised match lists is not bounded.
	// Default: 128
	CacheEntries int `mapstructure:"cache_entries"`

	// CacheTTLSeconds expires memoised match lists after this many seconds.
	// 0 keeps entries until evicted or the document changes.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds"`
}

// WatcherConfig holds file watcher configuration.
type WatcherConfig struct {
	// DebounceMs coalesces rapid file writes into one reload.
	// Default: 250
	DebounceMs int `mapstructure:"debounce_ms"`
}

// StoreConfig holds fold snapshot storage configuration.
type StoreConfig struct {
	// Path is the SQLite database file for fold snapshots.
	// Default: ~/.quill/quill.db
	Path string `mapstructure:"path"`
}

// TracingConfig holds distributed tracing configuration.
type TracingConfig struct {
	// Enabled controls whether tracing is active.
	// Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	// Default: "file"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for "file" exporter.
	// Default: ~/.config/quill/traces/traces.jsonl
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for "otlp" exporter.
	// Default: "localhost:4317"
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	// 1.0 = all traces, 0.1 = 10% of traces
	// Default: 1.0
	SampleRate float64 `mapstructure:"sample_rate"`
}

// DefaultTracesFilePath returns the default path for trace file export.
// Returns ~/.config/quill/traces/traces.jsonl or empty string if home dir unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "quill", "traces", "traces.jsonl")
}

// DefaultStorePath returns the default path for the fold snapshot database.
// Returns ~/.quill/quill.db or empty string if home dir unavailable.
func DefaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".quill", "quill.db")
}

// DefaultSQLProperties returns the lexer/fold property defaults for SQL.
func DefaultSQLProperties() map[string]int {
	return map[string]int{
		"fold":                           1,
		"fold.comment":                   1,
		"fold.compact":                   0,
		"fold.sql.only.begin":            0,
		"fold.sql.at.else":               0,
		"lexer.sql.backticks.identifier": 1,
		"lexer.sql.numbersign.comment":   1,
		"lexer.sql.backslash.escapes":    1,
		"lexer.sql.allow.dotted.word":    0,
	}
}

// DefaultPropsProperties returns the lexer/fold property defaults for properties files.
func DefaultPropsProperties() map[string]int {
	return map[string]int{
		"fold":                             1,
		"fold.compact":                     1,
		"lexer.props.allow.initial.spaces": 1,
	}
}

// DefaultLanguages returns the default language configuration.
func DefaultLanguages() []LanguageConfig {
	return []LanguageConfig{
		{
			Name:       "SQL",
			Lexer:      "sql",
			Extensions: []string{".sql", ".ddl", ".dml"},
			Properties: DefaultSQLProperties(),
		},
		{
			Name:       "Properties",
			Lexer:      "props",
			Extensions: []string{".properties", ".ini", ".cfg", ".conf"},
			Properties: DefaultPropsProperties(),
		},
	}
}

// ValidateLanguages checks language configuration for errors.
// Returns nil if languages are valid or empty (will use defaults).
func ValidateLanguages(langs []LanguageConfig) error {
	if len(langs) == 0 {
		return nil // Will use defaults
	}

	for i, lang := range langs {
		if lang.Name == "" {
			return fmt.Errorf("language %d: name is required", i)
		}

		switch lang.Lexer {
		case "", "sql", "props":
			// Valid
		default:
			return fmt.Errorf("language %d (%s): invalid lexer %q (must be \"sql\" or \"props\")", i, lang.Name, lang.Lexer)
		}

		for _, ext := range lang.Extensions {
			if ext == "" || ext[0] != '.' {
				return fmt.Errorf("language %d (%s): extension %q must start with a dot", i, lang.Name, ext)
			}
		}
	}
	return nil
}

// ValidateWatcher checks watcher configuration for errors.
func ValidateWatcher(w WatcherConfig) error {
	if w.DebounceMs < 0 {
		return fmt.Errorf("watcher.debounce_ms must be non-negative, got %d", w.DebounceMs)
	}
	return nil
}

// ValidateSearch checks search configuration for errors.
func ValidateSearch(s SearchConfig) error {
	if s.CacheEntries < 0 {
		return fmt.Errorf("search.cache_entries must be non-negative, got %d", s.CacheEntries)
	}
	if s.CacheTTLSeconds < 0 {
		return fmt.Errorf("search.cache_ttl_seconds must be non-negative, got %d", s.CacheTTLSeconds)
	}
	return nil
}

// ValidateStore checks store configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateStore(s StoreConfig) error {
	// Path must be absolute if set
	if s.Path != "" && !filepath.IsAbs(s.Path) {
		return fmt.Errorf("store.path must be an absolute path, got %q", s.Path)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing TracingConfig) error {
	// Validate SampleRate is in range [0.0, 1.0]
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	// Validate Exporter is a valid option
	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
			// Valid
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	// Only validate path requirements when tracing is enabled
	if tracing.Enabled {
		// FilePath is required when Exporter is "file"
		if tracing.Exporter == "file" && tracing.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}

		// OTLPEndpoint is required when Exporter is "otlp"
		if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// Validate checks the whole configuration for errors.
func Validate(cfg Config) error {
	if err := ValidateLanguages(cfg.Languages); err != nil {
		return err
	}
	if err := ValidateWatcher(cfg.Watcher); err != nil {
		return err
	}
	if err := ValidateSearch(cfg.Search); err != nil {
		return err
	}
	if err := ValidateStore(cfg.Store); err != nil {
		return err
	}
	if err := ValidateTracing(cfg.Tracing); err != nil {
		return err
	}
	return nil
}

// GetLanguages returns the configured languages, or DefaultLanguages() if none configured.
func (c Config) GetLanguages() []LanguageConfig {
	if len(c.Languages) > 0 {
		return c.Languages
	}
	return DefaultLanguages()
}

// LanguageFor returns the language configuration matching the file's extension.
// Falls back to the first configured language when no extension matches.
func (c Config) LanguageFor(path string) LanguageConfig {
	langs := c.GetLanguages()
	ext := filepath.Ext(path)
	for _, lang := range langs {
		for _, e := range lang.Extensions {
			if e == ext {
				return lang
			}
		}
	}
	return langs[0]
}

// MergedProperties returns the language's property overrides layered on the
// lexer's defaults, so partial overrides keep the remaining defaults.
func (l LanguageConfig) MergedProperties() map[string]int {
	var base map[string]int
	switch l.Lexer {
	case "props":
		base = DefaultPropsProperties()
	default:
		base = DefaultSQLProperties()
	}
	for k, v := range l.Properties {
		base[k] = v
	}
	return base
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		AutoReload: true,
		UI: UIConfig{
			ShowLineNumbers: true,
			ShowFoldGutter:  true,
			ShowStatusBar:   true,
		},
		Theme: ThemeConfig{
			// Default theme uses the "default" preset
			Preset: "",
		},
		Languages: DefaultLanguages(),
		Search: SearchConfig{
			CacheEntries:    128,
			CacheTTLSeconds: 0,
		},
		Watcher: WatcherConfig{
			DebounceMs: 250,
		},
		Store: StoreConfig{
			Path: DefaultStorePath(),
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // Derived from config dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Quill Configuration

# Reload and re-lex the file when it changes on disk
auto_reload: true

# UI settings
ui:
  show_line_numbers: true  # Show line numbers in the gutter
  show_fold_gutter: true   # Show fold markers next to line numbers
  show_status_bar: true    # Show status bar at bottom

# Theme configuration
# Use a preset theme or customize individual colors
theme:
  # Use a preset (run 'quill themes' to see available presets):
  # preset: catppuccin-mocha
  #
  # Available presets:
  #   default           - Default quill theme
  #   catppuccin-mocha  - Warm, cozy dark theme
  #   catppuccin-latte  - Warm, cozy light theme
  #   dracula           - Dark theme with vibrant colors
  #   nord              - Arctic, north-bluish palette
  #   high-contrast     - High contrast for accessibility
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   style.keyword: "#FF79C6"
  #   style.string: "#F1FA8C"
  #   style.comment: "#6272A4"

# Languages - each entry maps file extensions to a lexer with property overrides
languages:
  - name: SQL
    lexer: sql
    extensions: [".sql", ".ddl", ".dml"]
    properties:
      fold: 1
      fold.comment: 1
      lexer.sql.numbersign.comment: 1
      lexer.sql.backticks.identifier: 1
    # Load extra keywords from a YAML pack:
    # wordlists: ~/.config/quill/sql-keywords.yaml

  - name: Properties
    lexer: props
    extensions: [".properties", ".ini", ".cfg", ".conf"]
    properties:
      fold: 1
      fold.compact: 1
      lexer.props.allow.initial.spaces: 1

# Language options:
#   name: Display name (required)
#   lexer: sql or props
#   extensions: File extensions mapped to this language
#   properties: Lexer and fold property overrides - see property table below
#   wordlists: Path to a YAML keyword pack (sql only)
#
# Property table:
#   fold                             1  Compute fold levels
#   fold.compact                     0  Blank lines inherit the following fold level
#   fold.comment                     1  Fold multi-line comment blocks
#   fold.sql.only.begin              0  Only BEGIN opens a fold
#   fold.sql.at.else                 0  ELSE starts its own fold region
#   lexer.sql.backticks.identifier   1  Recognise backtick-quoted identifiers
#   lexer.sql.numbersign.comment     1  Treat # as a line comment
#   lexer.sql.backslash.escapes      1  Backslash escapes inside strings
#   lexer.sql.allow.dotted.word      0  Allow dots inside identifiers
#   lexer.props.allow.initial.spaces 1  Continuation-indented properties lines

# Search settings
search:
  cache_entries: 128     # 0 turns the search cache off
  cache_ttl_seconds: 0   # 0 keeps entries until the document changes

# File watcher settings
watcher:
  debounce_ms: 250  # Coalesce rapid writes into one reload

# Fold snapshot storage
# store:
#   path: ~/.quill/quill.db

# Distributed tracing configuration
# Enables end-to-end visibility into lex, fold, and search timings
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/quill/traces/traces.jsonl  # Output file for file exporter
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)
#
# Example: Enable tracing with file export
# tracing:
#   enabled: true
#   exporter: file
#   file_path: ~/.config/quill/traces/traces.jsonl

# Feature flags
# flags:
#   fold-snapshots: true
#   search-cache: true
#   live-reload: true
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	// Create parent directory if needed
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	// Write the template
	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
