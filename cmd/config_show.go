package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/seedxor/internal/configs"
	"github.com/PolarWolf314/seedxor/internal/ui"

	"github.com/spf13/cobra"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the configuration in effect",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")
		out := cmd.OutOrStdout()

		if configShowJSON {
			data, err := json.MarshalIndent(Config, "", "  ")
			if err != nil {
				return Logger.ErrorfAndReturn("failed to encode config: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		path, err := configs.ConfigPath()
		if err != nil {
			return err
		}
		auditPath := Config.Audit.Path
		if auditPath == "" {
			auditPath = ui.Muted.Sprint("disabled")
		}

		fmt.Fprintln(out, "Config file: "+ui.Path.Sprint(path))
		fmt.Fprintf(out, "  gen.lines:         %s\n", ui.Highlight.Sprint(Config.Gen.Lines))
		fmt.Fprintf(out, "  xor.atomic_output: %s\n", ui.Highlight.Sprint(Config.Xor.AtomicOutput))
		fmt.Fprintf(out, "  audit.path:        %s\n", auditPath)
		return nil
	},
}
