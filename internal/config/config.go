// Package config provides configuration types and defaults for quad.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"quad/internal/log"
)

// Config holds all configuration options for quad.
type Config struct {
	// CatalogPath points at a YAML catalog file. Empty means the
	// embedded seed catalog.
	CatalogPath string `mapstructure:"catalog_path"`

	// AutoReload re-reads the catalog file when it changes on disk.
	// Only meaningful when CatalogPath is set.
	AutoReload bool `mapstructure:"auto_reload"`

	Dialogue DialogueConfig `mapstructure:"dialogue"`
	UI       UIConfig       `mapstructure:"ui"`
	Theme    ThemeConfig    `mapstructure:"theme"`
	Tracing  TracingConfig  `mapstructure:"tracing"`
}

// DialogueConfig holds conversation engine options.
type DialogueConfig struct {
	// PendingPolicy controls what a digression does to an unconfirmed
	// action: "preserve" (default) keeps it armed, "discard" drops it.
	PendingPolicy string `mapstructure:"pending_policy"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowStatusBar bool   `mapstructure:"show_status_bar"`
	MarkdownStyle string `mapstructure:"markdown_style"` // "dark" (default) or "light"
}

// ThemeConfig holds color customization options.
type ThemeConfig struct {
	// Colors allows overriding individual color tokens.
	// Supports both nested YAML structure and dot notation.
	// Example YAML:
	//   colors:
	//     chat:
	//       user: "#FF0000"
	// Or quoted dot notation:
	//   colors:
	//     "chat.user": "#FF0000"
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
// This handles both nested YAML structures and already-flat keys.
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

// TracingConfig holds tracing configuration for the dialogue engine.
type TracingConfig struct {
	// Enabled controls whether tracing is active.
	// Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout"
	// Default: "file"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for "file" exporter.
	// Default: ~/.config/quad/traces/traces.jsonl
	FilePath string `mapstructure:"file_path"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	// 1.0 = all traces, 0.1 = 10% of traces
	// Default: 1.0
	SampleRate float64 `mapstructure:"sample_rate"`
}

// DefaultTracesFilePath returns the default path for trace file export.
// Returns ~/.config/quad/traces/traces.jsonl or empty string if home dir unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "quad", "traces", "traces.jsonl")
}

// ValidateDialogue checks dialogue configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateDialogue(d DialogueConfig) error {
	switch d.PendingPolicy {
	case "", "preserve", "discard":
		return nil
	default:
		return fmt.Errorf("dialogue.pending_policy must be \"preserve\" or \"discard\", got %q", d.PendingPolicy)
	}
}

// ValidateUI checks UI configuration for errors.
func ValidateUI(ui UIConfig) error {
	switch ui.MarkdownStyle {
	case "", "dark", "light":
		return nil
	default:
		return fmt.Errorf("ui.markdown_style must be \"dark\" or \"light\", got %q", ui.MarkdownStyle)
	}
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout":
			// Valid
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", or \"stdout\", got %q", tracing.Exporter)
		}
	}

	// Only validate path requirements when tracing is enabled
	if tracing.Enabled && tracing.Exporter == "file" && tracing.FilePath == "" {
		return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
	}

	return nil
}

// Validate checks the full configuration for errors.
func Validate(cfg Config) error {
	if err := ValidateDialogue(cfg.Dialogue); err != nil {
		return err
	}
	if err := ValidateUI(cfg.UI); err != nil {
		return err
	}
	return ValidateTracing(cfg.Tracing)
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		CatalogPath: "",
		AutoReload:  true,
		Dialogue: DialogueConfig{
			PendingPolicy: "preserve",
		},
		UI: UIConfig{
			ShowStatusBar: true,
			MarkdownStyle: "dark",
		},
		Tracing: TracingConfig{
			Enabled:    false,
			Exporter:   "file",
			FilePath:   "", // Derived from config dir at runtime
			SampleRate: 1.0,
		},
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Quad Configuration

# Path to a YAML course catalog file (default: built-in seed catalog)
# catalog_path: /path/to/catalog.yaml

# Re-read the catalog file when it changes on disk
# Only applies when catalog_path is set
auto_reload: true

# Conversation engine settings
dialogue:
  # What a digression does to an unconfirmed register/drop action:
  #   preserve - the pending action stays armed; a later "yes" executes it
  #   discard  - any non-confirm input drops the pending action
  pending_policy: preserve

# UI settings
ui:
  show_status_bar: true   # Show the session status bar at the bottom
  # markdown_style: dark  # Markdown rendering style: "dark" (default) or "light"

# Theme configuration
# Override specific chat colors:
# theme:
#   colors:
#     chat.user: "#54A0FF"
#     chat.bot: "#73F59F"
#     status.bar: "#BBBBBB"

# Tracing configuration
# Records a span per conversation turn with intent and outcome attributes
# tracing:
#   enabled: false       # Enable/disable tracing (default: false)
#   exporter: file       # Export backend: none, file, stdout (default: file)
#   file_path: ~/.config/quad/traces/traces.jsonl  # Output file for file exporter
#   sample_rate: 1.0     # Trace sampling rate 0.0-1.0 (default: 1.0)
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
