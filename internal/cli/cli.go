// Package cli implements the ghfinder command-line interface.
package cli

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ghfinder/internal/config"
	"github.com/matzehuels/ghfinder/pkg/buildinfo"
	"github.com/matzehuels/ghfinder/pkg/integrations/github"
	"github.com/matzehuels/ghfinder/pkg/observability"
	"github.com/matzehuels/ghfinder/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "ghfinder"

// ErrReported is returned by commands that already printed their failure.
// main exits non-zero without printing it again.
var ErrReported = errors.New("failure already reported")

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

	configPath string
	config     config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "ghfinder searches GitHub users and shows their profiles",
		Long:          `ghfinder searches GitHub users by name and shows a profile page with the user's details, their three most-starred repositories and their profile README.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/ghfinder/config.toml)")

	// Register all subcommands
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.profileCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file and routes client and store events to the
// logger.
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.config = cfg
	c.Logger.Debug("config loaded", "api_url", cfg.APIURL, "per_page", cfg.PerPage)

	hooks := newLogHooks(c.Logger)
	observability.SetHTTPHooks(hooks)
	observability.SetStoreHooks(hooks)
	return nil
}

// =============================================================================
// Store Factory
// =============================================================================

// newClient creates the GitHub client for the configured endpoint.
func (c *CLI) newClient() *github.Client {
	return github.NewClient(c.config.APIURL)
}

// newStore creates an application store backed by a fresh GitHub client.
// perPage overrides the configured page size when positive.
func (c *CLI) newStore(perPage int) *store.Store {
	if perPage < 1 {
		perPage = c.config.PerPage
	}
	return store.New(c.newClient(), store.WithPerPage(perPage))
}
