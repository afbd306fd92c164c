package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"quad/internal/app"
	"quad/internal/catalog"
	"quad/internal/config"
	"quad/internal/dialogue"
	"quad/internal/log"
	"quad/internal/pubsub"
	"quad/internal/telemetry"
	"quad/internal/ui/styles"
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
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "quad",
	Short:   "A terminal ui for course catalog browsing and registration",
	Long:    `A conversational terminal assistant for university course registration. Ask about courses, prerequisites, schedules and departments, then register or drop with a confirmation step.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/quad/config.yaml)")
	rootCmd.Flags().String("catalog", "",
		"path to catalog YAML file (default: built-in seed catalog)")
	rootCmd.Flags().Bool("no-auto-reload", false,
		"disable automatic catalog reload when the file changes")
	rootCmd.PersistentFlags().Bool("debug", false,
		"write debug logs to ~/.config/quad/quad.log (also QUAD_DEBUG=1)")

	// Bind flags to viper
	_ = viper.BindPFlag("catalog_path", rootCmd.Flags().Lookup("catalog"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("auto_reload", defaults.AutoReload)
	viper.SetDefault("dialogue.pending_policy", defaults.Dialogue.PendingPolicy)
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("ui.markdown_style", defaults.UI.MarkdownStyle)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .quad/config.yaml (current directory)
		// 2. ~/.config/quad/config.yaml (user config)
		if _, err := os.Stat(".quad/config.yaml"); err == nil {
			viper.SetConfigFile(".quad/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "quad"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .quad/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".quad/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// loadCatalog resolves the catalog store from config. An explicit path
// must parse; with no path the built-in seed catalog is used.
func loadCatalog() (*catalog.Store, string, error) {
	if cfg.CatalogPath == "" {
		return catalog.NewStore(catalog.Seed()), "", nil
	}

	doc, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		return nil, "", fmt.Errorf("loading catalog: %w", err)
	}
	return catalog.NewStore(doc), cfg.CatalogPath, nil
}

func runApp(cmd *cobra.Command, args []string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := styles.ApplyTheme(cfg.Theme.FlattenedColors()); err != nil {
		return fmt.Errorf("invalid theme configuration: %w", err)
	}

	// Handle --no-auto-reload flag (negated logic)
	if noAutoReload, _ := cmd.Flags().GetBool("no-auto-reload"); noAutoReload {
		cfg.AutoReload = false
	}

	// Logging is opt-in: without it the log package is a no-op.
	debug, _ := cmd.Flags().GetBool("debug")
	if os.Getenv("QUAD_DEBUG") != "" {
		debug = true
	}
	if debug {
		home, _ := os.UserHomeDir()
		logPath := filepath.Join(home, ".config", "quad", "quad.log")
		_ = os.MkdirAll(filepath.Dir(logPath), 0o750)
		cleanupLog, err := log.InitWithTeaLog(logPath, "quad")
		if err != nil {
			return fmt.Errorf("initializing log file: %w", err)
		}
		defer cleanupLog()
	}

	store, catalogPath, err := loadCatalog()
	if err != nil {
		return err
	}

	tracesPath := cfg.Tracing.FilePath
	if tracesPath == "" {
		tracesPath = config.DefaultTracesFilePath()
	}
	provider, err := telemetry.NewProvider(telemetry.Config{
		Enabled:    cfg.Tracing.Enabled,
		Exporter:   cfg.Tracing.Exporter,
		FilePath:   tracesPath,
		SampleRate: cfg.Tracing.SampleRate,
	})
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}

	policy, err := dialogue.ParsePendingPolicy(cfg.Dialogue.PendingPolicy)
	if err != nil {
		return err
	}

	turnBroker := pubsub.NewBroker[dialogue.Turn]()
	engine := dialogue.New(dialogue.Config{
		Catalog: store,
		Policy:  policy,
		Broker:  turnBroker,
		Tracer:  provider.Tracer(),
	})

	model := app.New(app.Config{
		Engine:      engine,
		Store:       store,
		TurnBroker:  turnBroker,
		CatalogPath: catalogPath,
		AppConfig:   cfg,
	})
	p := tea.NewProgram(
		&model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()

	// Clean up watcher and subscription resources
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	turnBroker.Close()
	if shutdownErr := provider.Shutdown(cmd.Context()); shutdownErr != nil && err == nil {
		err = shutdownErr
	}

	if err != nil {
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
