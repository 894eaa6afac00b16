package cmd

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/seedxor/internal/configs"
	logger "github.com/PolarWolf314/seedxor/internal/logging"
	"github.com/PolarWolf314/seedxor/internal/ui"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	// Config is loaded before every subcommand runs.
	Config *configs.Config

	RootCmd = &cobra.Command{
		Use:   "seedxor",
		Short: "Split 24-word mnemonic secrets into XOR shares and put them back together",
		Long: `seedxor works on plain text files holding one 24-word BIP39 mnemonic per line.

Every line encodes a 256-bit secret. seedxor can generate random secrets,
split a file of secrets into N share files whose lines XOR back to the
original, and XOR any number of mnemonic files back into one.

Every share is needed to recover a secret; any single share reveals nothing.
seedxor never overwrites an existing file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing %s with verbose=%t, debug=%t", cmd.Name(), verbose, debug)

			path, err := configs.ConfigPath()
			if err != nil {
				return err
			}
			Logger.Debugf("Loading config from %s", path)
			Config, err = configs.LoadFrom(path)
			if err != nil {
				return err
			}
			for _, key := range Config.Unknown {
				Logger.Warnf("Unknown config key %s in %s", key, path)
			}
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			banner := figure.NewFigure("seedxor", "small", true)
			fmt.Fprintln(cmd.OutOrStdout(), banner.String())
			fmt.Fprintln(cmd.OutOrStdout(), "Run "+ui.Code.Sprint("seedxor --help")+" to see available commands.")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(genCmd)
	RootCmd.AddCommand(splitCmd)
	RootCmd.AddCommand(xorCmd)
	RootCmd.AddCommand(checkCmd)
	RootCmd.AddCommand(ConfigCmd)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error.Sprint("✗")+" "+err.Error())
		os.Exit(1)
	}
}

// Helper functions for testing

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	Config = nil
	resetGenCommandState()
	resetXorCommandState()
	resetConfigCommandState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState clears Changed on every flag so tests don't leak into each other.
func resetCobraFlagState(c *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		flag.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetCobraFlagState(sub)
	}
}
