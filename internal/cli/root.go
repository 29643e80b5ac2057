package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"niri-app-hotkey/pkg/global"
	"niri-app-hotkey/pkg/logger"
	"niri-app-hotkey/pkg/notify"
)

var (
	configPath string
	debug      bool
	log        *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "niri-app-hotkey",
	Short: "Launch, show, hide, and toggle application windows on niri",
	Long: `niri-app-hotkey drives application windows on the niri compositor
through short hotkey-bound commands. A declarative configuration maps an
application name to a spawn command and a set of window-matching rules;
each invocation reads fresh compositor state, decides on an action, and
exits.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logLevel := zerolog.InfoLevel
		if debug {
			logLevel = zerolog.DebugLevel
		}

		opts := []logger.Option{logger.WithLevel(logLevel)}
		if isTerminal() {
			opts = append(opts, logger.WithConsole())
		}

		var err error
		log, err = logger.NewLogger(opts...)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			log.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to the configuration file (default $XDG_CONFIG_HOME/niri/niri-app-hotkey.kdl)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// Execute runs the command tree. Errors are surfaced both as a desktop
// notification (hotkey invocations have no terminal) and the exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if notifier := global.GetNotifier(); notifier != nil {
			notifier.Show(err.Error(), notify.Error)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func isTerminal() bool {
	fileInfo, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
