package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/diffform/internal/worksheet"
)

// evalOpts holds the command-line flags for the eval command.
type evalOpts struct {
	steps []string // print only these steps; all when empty
}

// newEvalCmd creates the eval command, which runs a worksheet and prints one
// "name = value" line per step.
func newEvalCmd() *cobra.Command {
	var opts evalOpts

	cmd := &cobra.Command{
		Use:   "eval [worksheet.toml]",
		Short: "Evaluate a worksheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.steps, "step", "s", nil, "print only the named steps (repeatable)")

	return cmd
}

func runEval(cmd *cobra.Command, path string, opts evalOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	w, err := worksheet.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded worksheet", "path", path, "steps", len(w.Steps))

	prog := newStepProgress(logger, len(w.Steps))
	results, err := w.Run(ctx, logger)
	prog.done("Evaluated", len(results))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range results {
		if len(opts.steps) > 0 && !slices.Contains(opts.steps, r.Name) {
			continue
		}
		fmt.Fprintf(out, "%s = %s\n", r.Name, r.Value)
	}

	return nil
}

// newCheckCmd creates the check command, which validates names, ops and
// arity without evaluating.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [worksheet.toml]",
		Short: "Validate a worksheet without evaluating it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			w, err := worksheet.Load(args[0])
			if err != nil {
				return err
			}
			prog := newStepProgress(logger, len(w.Steps))
			if err := w.Validate(); err != nil {
				return err
			}
			prog.done("Checked", len(w.Steps))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d steps)\n", args[0], len(w.Steps))

			return nil
		},
	}
}
