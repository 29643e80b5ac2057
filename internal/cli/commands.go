package cli

import (
	"github.com/spf13/cobra"

	"niri-app-hotkey/internal/action"
	"niri-app-hotkey/internal/app"
	"niri-app-hotkey/pkg/config"
	"niri-app-hotkey/pkg/global"
)

// The five verbs share one shape: load config, resolve the application,
// run the command against the compositor.
func newAppCommand(command action.Command, short string) *cobra.Command {
	return &cobra.Command{
		Use:   command.String() + " APP_NAME",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, log)
			if err != nil {
				return err
			}
			// Globals wait for the config: the notifier honors the
			// configured notify command.
			global.InitGlobals(log, cfg.NotifyCommand())
			return app.Run(command, args[0], cfg)
		},
	}
}

func init() {
	rootCmd.AddCommand(
		newAppCommand(action.Launch, "Launch the specified application"),
		newAppCommand(action.Show, "Show the specified application window"),
		newAppCommand(action.Hide, "Hide the specified application window"),
		newAppCommand(action.Activate, "Activate the specified application window"),
		newAppCommand(action.Toggle, "Toggle the specified application window"),
	)
}
