package cmd

import (
	"github.com/spf13/cobra"
)

// ConfigCmd is the top-level config command.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage seedxor configuration",
	Long: `Provides commands for managing the seedxor configuration file.

The file lives at $XDG_CONFIG_HOME/seedxor/config.toml unless SEEDXOR_CONFIG
points elsewhere.

Examples:
  # Write a config file with the defaults
  seedxor config init

  # Show the configuration in effect
  seedxor config show --json`,
}

func init() {
	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configShowCmd)
}

// resetConfigCommandState resets all config command global variables for testing.
func resetConfigCommandState() {
	configInitForce = false
	configShowJSON = false
}
