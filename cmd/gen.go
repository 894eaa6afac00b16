package cmd

import (
	"fmt"

	"github.com/PolarWolf314/seedxor/internal/ui"
	"github.com/PolarWolf314/seedxor/internal/utils"
	"github.com/PolarWolf314/seedxor/internal/workflows"

	"github.com/spf13/cobra"
)

var genLines int

func init() {
	genCmd.Flags().IntVarP(&genLines, "lines", "l", 0, "number of mnemonics per destination (default from config, 200)")
}

// resetGenCommandState resets the gen command's global state for testing.
func resetGenCommandState() {
	genLines = 0
}

var genCmd = &cobra.Command{
	Use:   "gen [DEST...]",
	Short: "Generate new files of random mnemonics",
	Long: `Generates random 256-bit secrets and writes them as 24-word mnemonics,
one per line.

Each destination gets its own independent secrets. Destinations must not
exist; if any of them does, none are created. With no destination the
mnemonics are printed to stdout.

Examples:
  # Print 200 random mnemonics
  seedxor gen

  # Write 10 random mnemonics to each of two new files
  seedxor gen -l 10 keys-a.txt keys-b.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting gen command")

		lines := Config.Gen.Lines
		if cmd.Flags().Changed("lines") {
			lines = genLines
		}
		if lines < 0 {
			return fmt.Errorf("--lines must not be negative, got %d", lines)
		}
		Logger.Debugf("Generating %d lines into %d destinations", lines, len(args))

		opts := workflows.GenOptions{
			Common: commonOptions(),
			Dests:  args,
			Lines:  lines,
			Out:    cmd.OutOrStdout(),
		}

		if len(args) == 0 {
			warnIfTerminal(cmd)
			_, err := workflows.Gen(cmd.Context(), opts)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to generate mnemonics: %w", err)
			}
			return nil
		}

		spinner, cleanup := startSpinner(cmd, "Generating mnemonics...")
		defer cleanup()

		result, err := workflows.Gen(cmd.Context(), opts)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to generate mnemonics: %w", err)
		}
		reportAuditError(result.AuditErr)
		Logger.Infof("Gen command completed successfully")

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Generated " + ui.Highlight.Sprint(result.Lines) +
			" mnemonics in each of:" + utils.FormatPaths(result.Dests)
		return nil
	},
}
