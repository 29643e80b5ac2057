package app

import (
	"fmt"

	"niri-app-hotkey/internal/action"
	"niri-app-hotkey/internal/matcher"
	"niri-app-hotkey/internal/niri"
	"niri-app-hotkey/pkg/config"
	"niri-app-hotkey/pkg/global"
	"niri-app-hotkey/pkg/logger"
)

// Compositor is everything one invocation needs from the compositor: the
// query round plus the action verbs.
type Compositor interface {
	action.Dispatcher
	Windows() ([]niri.Window, error)
	Workspaces() ([]niri.Workspace, error)
}

// Run executes one hotkey command: look up the application entry, connect
// to the compositor, resolve candidates, plan, and execute. The connection
// is scoped to this call and released on every path.
func Run(cmd action.Command, appName string, cfg *config.Config) error {
	log := global.GetLogger()

	application, err := cfg.FindApplication(appName)
	if err != nil {
		return err
	}

	client, err := niri.Connect(log)
	if err != nil {
		return err
	}
	defer client.Close()

	return runOn(cmd, application, client, log)
}

func runOn(cmd action.Command, application *config.Application, compositor Compositor, log *logger.Logger) error {
	var candidates []matcher.Candidate
	var workspaces []niri.Workspace

	// Launch ignores window state entirely; skip the query round.
	if cmd != action.Launch {
		windows, err := compositor.Windows()
		if err != nil {
			return err
		}
		workspaces, err = compositor.Workspaces()
		if err != nil {
			return err
		}

		candidates = matcher.Resolve(windows, workspaces, application)
		log.Debug("Resolved candidates",
			"application", application.Name,
			"command", cmd.String(),
			"count", len(candidates))
	}

	plan, err := action.PlanCommand(cmd, application, candidates, workspaces)
	if err != nil {
		return err
	}

	if plan.IsNoop() {
		log.Info("Nothing to do",
			"application", application.Name,
			"command", cmd.String())
		return nil
	}

	if err := action.Execute(compositor, plan); err != nil {
		return fmt.Errorf("%s %s: %w", cmd.String(), application.Name, err)
	}

	log.Info("Command completed",
		"application", application.Name,
		"command", cmd.String(),
		"step_count", len(plan.Steps))
	return nil
}
