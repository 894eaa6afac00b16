package cmd

import (
	"fmt"

	"github.com/PolarWolf314/seedxor/internal/ui"
	"github.com/PolarWolf314/seedxor/internal/utils"
	"github.com/PolarWolf314/seedxor/internal/workflows"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE [FILE...]",
	Short: "Validate mnemonic files",
	Long: `Decodes every line of every FILE and reports the first invalid one.

Also reports whether all files have the same number of lines, which
` + "`seedxor xor`" + ` requires. FILE may be a glob pattern.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting check command")

		paths, err := utils.ExpandPaths(args)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve files: %w", err)
		}

		result, err := workflows.Check(cmd.Context(), workflows.CheckOptions{Paths: paths})
		if err != nil {
			return Logger.ErrorfAndReturn("check failed: %w", err)
		}

		out := cmd.OutOrStdout()
		for _, f := range result.Files {
			fmt.Fprintf(out, "%s %s %s\n", ui.Success.Sprint("✓"), ui.Path.Sprint(f.Path), ui.Muted.Sprint(fmt.Sprintf("%d lines", f.Lines)))
		}
		if len(result.Files) > 1 && !result.SameLength {
			fmt.Fprintln(out, ui.Warning.Sprint("⚠")+" Files have different line counts and can't be combined with "+ui.Code.Sprint("seedxor xor"))
		}
		return nil
	},
}
