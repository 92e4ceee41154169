// Package cli implements the logomaker command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/logomaker/pkg/buildinfo"
	"github.com/matzehuels/logomaker/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "logomaker"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// settingsPath overrides the settings file location (--config).
	settingsPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level. At debug level the observability
// hooks are routed to the logger as well.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		registerDebugHooks(c.Logger)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Logomaker designs simple shape-and-text logos",
		Long:         `Logomaker composes a logo from a geometric shape and a company name, applies style templates and AI suggestions, and exports SVG, PNG, PDF, CSS and JSON.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.settingsPath, "config", "", "settings file (default $XDG_CONFIG_HOME/logomaker/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.cssCommand())
	root.AddCommand(c.templatesCommand())
	root.AddCommand(c.shapesCommand())
	root.AddCommand(c.geometryCommand())
	root.AddCommand(c.suggestCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(cmd *cobra.Command, st Settings, noCache bool) (*pipeline.Runner, error) {
	ch, err := newCache(cmd.Context(), st, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(ch, st.keyer(), c.Logger), nil
}

// loadSettings reads the settings file, applying environment overrides.
func (c *CLI) loadSettings() (Settings, error) {
	path := c.settingsPath
	if path == "" {
		p, err := settingsFile()
		if err != nil {
			return defaultSettings(), nil
		}
		path = p
	}
	st, err := loadSettings(path)
	if err != nil {
		return Settings{}, err
	}
	st.applyEnv(osLookup)
	c.Logger.Debug("settings loaded", "path", path, "cache", st.Cache.Backend, "provider", st.AI.Provider)
	return st, nil
}
