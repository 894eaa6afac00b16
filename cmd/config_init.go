package cmd

import (
	"github.com/PolarWolf314/seedxor/internal/configs"
	"github.com/PolarWolf314/seedxor/internal/ui"

	"github.com/spf13/cobra"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config init command")

		path, err := configs.ConfigPath()
		if err != nil {
			return err
		}
		Logger.Debugf("Writing defaults to %s (force=%t)", path, configInitForce)

		if err := configs.Save(path, configs.Default(), configInitForce); err != nil {
			return Logger.ErrorfAndReturn("failed to write config: %w", err)
		}

		cmd.PrintErrln(ui.Success.Sprint("✓") + " Wrote default configuration to " + ui.Path.Sprint(path))
		return nil
	},
}
