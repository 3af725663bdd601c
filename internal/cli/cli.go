// Package cli implements the labtopo command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/zeroent/labtopo/pkg/buildinfo"
	"github.com/zeroent/labtopo/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display and completions.
	appName = "labtopo"

	// defaultConfigFile is read from the working directory when present.
	defaultConfigFile = "labtopo.toml"
)

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
// Running the root command without a subcommand renders the diagram with the
// default settings (plus labtopo.toml, if present).
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "labtopo renders the zeroent lab architecture diagram",
		Long:         `labtopo draws the zeroent lab topology (ingress, Gitea, Drone CI, runners and the SmallStep CA) and writes it to topology.png in the working directory.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			observability.SetRenderHooks(logHooks{logger: c.Logger})
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadRenderOpts(cmd, defaultRenderOpts(), "")
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.describeCommand())
	root.AddCommand(c.completionCommand())

	return root
}
