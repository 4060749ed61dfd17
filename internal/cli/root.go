package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
// It is called by main with values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// NewRootCommand builds the diffform command tree. Logs go to stderr;
// command output goes to the command's stdout.
func NewRootCommand(stderr io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "diffform",
		Short:         "diffform evaluates exterior-calculus worksheets",
		Long:          `diffform is a symbolic calculator for differential forms: wedge products, exterior derivatives, interior products, Hodge duals and Lie derivatives, driven by TOML worksheets.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("diffform %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.SetErr(stderr)

	root.AddCommand(newEvalCmd())
	root.AddCommand(newCheckCmd())

	return root
}

// Execute runs the CLI with args under ctx.
func Execute(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	root := NewRootCommand(stderr)
	root.SetOut(stdout)
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}
