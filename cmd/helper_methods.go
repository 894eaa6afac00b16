package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/PolarWolf314/seedxor/internal/ui"
	"github.com/PolarWolf314/seedxor/internal/utils"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// startSpinner starts a spinner on stderr with the given message unless
// running in verbose or debug mode, or stderr is not a terminal.
// Returns the spinner and a cleanup function that should be deferred.
//
// spinner.FinalMSG values do not need trailing newlines. The cleanup function
// stops the spinner and prints FinalMSG to the command's stderr with
// ui.EnsureNewline applied.
func startSpinner(cmd *cobra.Command, message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message

	// Ignore color errors, the spinner still works without it.
	_ = s.Color("cyan")

	animate := !verbose && !debug && utils.IsTerminal(os.Stderr)
	if animate {
		s.Start()
	} else {
		Logger.Infof("%s", message)
	}

	cleanup := func() {
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}
		if animate {
			s.Stop()
		}
		if finalMsg != "" {
			fmt.Fprint(cmd.ErrOrStderr(), finalMsg)
		}
	}

	return s, cleanup
}

// warnIfTerminal warns when secrets are about to be printed to an interactive terminal.
func warnIfTerminal(cmd *cobra.Command) {
	if f, ok := cmd.OutOrStdout().(*os.File); ok && utils.IsTerminal(f) {
		Logger.WarnfAlways("Printing secrets to the terminal, consider writing them to a file instead")
	}
}

// reportAuditError surfaces an audit log failure without failing the command.
func reportAuditError(err error) {
	if err != nil {
		Logger.WarnfAlways("Failed to write audit log %s: %v", Config.Audit.Path, err)
	}
}
