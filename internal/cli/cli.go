// Package cli implements the pomdesc command-line interface.
//
// This package provides commands for translating Maven POMs into
// resolver-ready module descriptors and inspecting the result: a styled or
// JSON dump of the descriptor, an interactive dependency browser, and a
// Graphviz export of the configuration graph. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - describe: translate a pom.xml and print the module descriptor
//   - graph: export the configuration/dependency graph as DOT or SVG
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so command helpers can report scope
// coercions and other degradations without plumbing a logger everywhere.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pomdesc/pomdesc/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "pomdesc"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger and the user's
// configuration file applied (defaults when no file exists).
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
	if cfg, err := LoadConfig(""); err == nil {
		c.Config = cfg
	} else {
		c.Logger.Debugf("config file ignored: %v", err)
	}
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "pomdesc translates Maven POMs into resolver-ready module descriptors",
		Long:         `pomdesc reads a Maven project descriptor (pom.xml) and translates it into a normalized module descriptor: usage configurations, dependencies mapped onto them, exclusion rules and artifact classifiers, ready for a dependency resolver.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.describeCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// configDir returns the configuration directory using the XDG standard
// (~/.config/pomdesc/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
