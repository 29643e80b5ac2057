package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"niri-app-hotkey/pkg/config"
	"niri-app-hotkey/pkg/global"
)

// validate only exercises configuration loading; it never contacts the
// compositor.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath, log)
		if err != nil {
			return err
		}
		global.InitGlobals(log, cfg.NotifyCommand())
		fmt.Println("Configuration file is valid.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
