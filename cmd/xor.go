package cmd

import (
	"errors"
	"fmt"

	kerrors "github.com/PolarWolf314/seedxor/internal/errors"
	"github.com/PolarWolf314/seedxor/internal/ui"
	"github.com/PolarWolf314/seedxor/internal/utils"
	"github.com/PolarWolf314/seedxor/internal/workflows"

	"github.com/spf13/cobra"
)

var xorOut string

func init() {
	xorCmd.Flags().StringVarP(&xorOut, "out", "o", "", "output file (default stdout)")
}

// resetXorCommandState resets the xor command's global state for testing.
func resetXorCommandState() {
	xorOut = ""
}

var xorCmd = &cobra.Command{
	Use:   "xor SOURCE SOURCE [SOURCE...]",
	Short: "XOR mnemonic files together",
	Long: `XORs the secrets on corresponding lines of every SOURCE and writes one
mnemonic per line.

This recombines the shares written by ` + "`seedxor split`" + `, in any order,
and works as a plain N-way XOR on any mnemonic files. All sources must have
the same number of lines.

Sources may be glob patterns; matches are used in sorted order.
Use -o/--out to write to a new file instead of stdout.

Examples:
  # Recover secrets to stdout
  seedxor xor share-1.txt share-2.txt share-3.txt

  # Recover into a new file
  seedxor xor 'share-*.txt' -o secrets.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting xor command")

		sources, err := utils.ExpandPaths(args)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve sources: %w", err)
		}
		if len(sources) < 2 {
			return Logger.ErrorfAndReturn("%w, got %d", kerrors.ErrTooFewSources, len(sources))
		}
		Logger.Debugf("Sources: %v", sources)

		opts := workflows.XorOptions{
			Common:  commonOptions(),
			Sources: sources,
			Dest:    xorOut,
			Out:     cmd.OutOrStdout(),
			Atomic:  Config.Xor.AtomicOutput,
		}

		if xorOut == "" {
			warnIfTerminal(cmd)
			if _, err := workflows.Xor(cmd.Context(), opts); err != nil {
				return Logger.ErrorfAndReturn("failed to xor files: %w", err)
			}
			return nil
		}

		spinner, cleanup := startSpinner(cmd, "Combining files...")
		defer cleanup()

		result, err := workflows.Xor(cmd.Context(), opts)
		if err != nil {
			if !opts.Atomic && !errors.Is(err, kerrors.ErrDestinationExists) {
				Logger.WarnfAlways("%s may hold a partial result", xorOut)
			}
			return Logger.ErrorfAndReturn("failed to xor files into %s: %w", xorOut, err)
		}
		reportAuditError(result.AuditErr)
		Logger.Infof("Xor command completed successfully")

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Combined " + ui.Highlight.Sprint(len(sources)) +
			" files into " + ui.Path.Sprint(result.Dest) + " " + ui.Muted.Sprint(fmt.Sprintf("%d lines", result.Lines))
		return nil
	},
}
