// Package commands implements the CLI commands for the spoolsync tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.bittr.nu/spoolsync/internal/app"
	"go.bittr.nu/spoolsync/internal/build"
)

// CLI represents the command line interface for spoolsync.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	SyncOnce(ctx context.Context, opts app.Options) error
	Watch(ctx context.Context, opts app.Options) error
	Clean(ctx context.Context, opts app.Options) error
	Seed(ctx context.Context, opts app.Options) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "spoolsync",
		Short:         "Keep slicer filament configs in sync with Spoolman",
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
	pf.StringP("dir", "d", "", "The slicer's filament config dir")
	pf.StringP("slicer", "s", "", "The slicer: orcaslicer, prusaslicer, slic3r or superslicer")
	pf.StringP("url", "u", "", "URL for the Spoolman installation")
	pf.StringP("template-dir", "t", "", "Directory holding the template files")
	pf.StringP("variants", "V", "", "Write one output per value, separated by comma")
	pf.String("create-per-spool", "", "Create one output file per spool: all, least-left or most-recent")
	pf.BoolP("verbose", "v", false, "Verbose output")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newSyncCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newSeedCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// options collects the persistent flag values into app.Options.
func options(cmd *cobra.Command) app.Options {
	flags := cmd.Flags()
	dir, _ := flags.GetString("dir")
	slicer, _ := flags.GetString("slicer")
	url, _ := flags.GetString("url")
	templateDir, _ := flags.GetString("template-dir")
	variants, _ := flags.GetString("variants")
	mode, _ := flags.GetString("create-per-spool")
	verbose, _ := flags.GetBool("verbose")

	return app.Options{
		URL:         url,
		OutputDir:   dir,
		Slicer:      slicer,
		TemplateDir: templateDir,
		Variants:    variants,
		Mode:        mode,
		Verbose:     verbose,
	}
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
