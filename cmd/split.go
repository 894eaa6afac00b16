package cmd

import (
	"github.com/PolarWolf314/seedxor/internal/ui"
	"github.com/PolarWolf314/seedxor/internal/utils"
	"github.com/PolarWolf314/seedxor/internal/workflows"

	"github.com/spf13/cobra"
)

var splitCmd = &cobra.Command{
	Use:   "split SOURCE DEST DEST [DEST...]",
	Short: "Split a mnemonic file into share files",
	Long: `Splits every line of SOURCE into one line in each DEST.

The first destination receives the secret XORed with fresh random pads;
every other destination receives one of those pads. XORing all destinations
together with ` + "`seedxor xor`" + ` gives back SOURCE. Any fewer than all of
them reveal nothing about it.

Destinations must not exist. If any destination can't be created or any
source line is invalid, no destination is left behind.

Examples:
  # Split into three shares
  seedxor split secrets.txt share-1.txt share-2.txt share-3.txt`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting split command")
		source, dests := args[0], args[1:]
		Logger.Debugf("Source: %s, destinations: %v", source, dests)

		spinner, cleanup := startSpinner(cmd, "Splitting secrets...")
		defer cleanup()

		result, err := workflows.Split(cmd.Context(), workflows.SplitOptions{
			Common: commonOptions(),
			Source: source,
			Dests:  dests,
		})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to split %s: %w", source, err)
		}
		reportAuditError(result.AuditErr)
		Logger.Infof("Split command completed successfully")

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Split " + ui.Highlight.Sprint(result.Lines) +
			" secrets from " + ui.Path.Sprint(source) + " into:" + utils.FormatPaths(result.Dests) +
			ui.Info.Sprint("→") + " All " + ui.Highlight.Sprint(len(result.Dests)) + " files are needed to recover the secrets"
		return nil
	},
}
