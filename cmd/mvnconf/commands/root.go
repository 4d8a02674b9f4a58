// Package commands implements the CLI commands for mvnconf.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/mvnconf/internal/app"
	"go.trai.ch/mvnconf/internal/build"
	"go.trai.ch/mvnconf/internal/core/domain"
)

// CLI represents the command line interface for mvnconf.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Show(ctx context.Context, w io.Writer, req app.Request, format string) error
	Check(ctx context.Context, w io.Writer, req app.Request, probe bool) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "mvnconf",
		Short:         "Inspect and validate Maven resolver options",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	pf := rootCmd.PersistentFlags()
	pf.StringP("config", "c", "", "Path to the config file (default: search for "+domain.ConfigFileName+")")
	pf.StringArrayP("define", "D", nil, "Define a property as key=value (repeatable)")
	pf.String("local-repo", "", "Override the local repository directory")
	pf.StringArray("remote-repo", nil, "Override the remote repositories (repeatable)")
	pf.Bool("no-remote", false, "Use no remote repositories at all")
	pf.String("http-proxy", "", "Override the proxy for http repositories")
	pf.String("https-proxy", "", "Override the proxy for https repositories")
	pf.String("snapshot-policy", "", "Override the remote snapshot policy")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
