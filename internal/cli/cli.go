// Package cli implements the columns command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/columns/pkg/buildinfo"
	"github.com/matzehuels/columns/pkg/columns"
	"github.com/matzehuels/columns/pkg/config"
	"github.com/matzehuels/columns/pkg/errors"
	"github.com/matzehuels/columns/pkg/geom"
	"github.com/matzehuels/columns/pkg/layout"
	"github.com/matzehuels/columns/pkg/sim"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "columns"

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
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Columns is an equal-width column tiling layout",
		Long:         `Columns tiles windows into at most N equal-width columns, stacking extra windows vertically in the least populated column. It runs scenario scripts, serves a simulated workspace over HTTP, and offers an interactive playground.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.runCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.algorithmsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Session Factory
// =============================================================================

// sessionOptions are the flags shared by commands that drive a session.
type sessionOptions struct {
	configPath string
	algorithm  string
	width      float64
	height     float64
}

func (o *sessionOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/columns/columns.toml)")
	cmd.Flags().StringVar(&o.algorithm, "algorithm", columns.Name, "layout algorithm")
	cmd.Flags().Float64Var(&o.width, "width", sim.DefaultWorkArea.W, "work area width")
	cmd.Flags().Float64Var(&o.height, "height", sim.DefaultWorkArea.H, "work area height")
}

// newRegistry returns the registry of built-in algorithms with their config
// keys registered in store.
func newRegistry(store *config.Store) (*layout.Registry, error) {
	reg := layout.NewRegistry()
	if err := columns.Register(reg, store); err != nil {
		return nil, err
	}
	return reg, nil
}

// loadConfig registers the built-in keys and loads the config file. It
// returns the registry, the store and the resolved path.
func (c *CLI) loadConfig(path string) (*layout.Registry, *config.Store, string, error) {
	store := config.NewStore()
	reg, err := newRegistry(store)
	if err != nil {
		return nil, nil, "", err
	}

	if path == "" {
		if path, err = config.DefaultPath(); err != nil {
			return reg, store, "", nil
		}
	}
	unknown, err := store.Load(path)
	if err != nil {
		return nil, nil, "", err
	}
	for _, key := range unknown {
		c.Logger.Warn("unknown config key", "key", key, "path", path)
	}
	c.Logger.Debug("config loaded", "path", path)
	return reg, store, path, nil
}

// newSession loads config and creates a session from opts.
func (c *CLI) newSession(opts sessionOptions) (*sim.Session, string, error) {
	if err := errors.ValidateWorkArea(0, 0, opts.width, opts.height); err != nil {
		return nil, "", err
	}
	reg, store, path, err := c.loadConfig(opts.configPath)
	if err != nil {
		return nil, "", err
	}
	sess, err := sim.New(sim.Options{
		Algorithm: opts.algorithm,
		WorkArea:  geom.Rect{W: opts.width, H: opts.height},
		Config:    store,
		Registry:  reg,
		Logger:    c.Logger,
	})
	if err != nil {
		return nil, "", err
	}
	return sess, path, nil
}
