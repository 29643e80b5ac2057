package action

import (
	"fmt"
)

// Dispatcher is the slice of the compositor client the orchestrator needs
// to carry out a plan. *niri.Client satisfies it.
type Dispatcher interface {
	FocusWindow(windowID uint64) error
	MoveWindowToWorkspace(windowID, workspaceID uint64, focus bool) error
	Spawn(command []string) error
	SpawnShell(command string) error
}

// Execute issues the plan's actions in order over the dispatcher. Steps are
// single-shot: the first failure aborts the remainder, leaving earlier
// steps applied.
func Execute(d Dispatcher, plan Plan) error {
	if plan.Spawn != nil {
		return d.Spawn(plan.Spawn)
	}
	if plan.SpawnSh != "" {
		return d.SpawnShell(plan.SpawnSh)
	}

	for _, step := range plan.Steps {
		switch step.Kind {
		case StepFocus:
			if err := d.FocusWindow(step.WindowID); err != nil {
				return err
			}
		case StepMove:
			if err := d.MoveWindowToWorkspace(step.WindowID, step.WorkspaceID, step.Focus); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown step kind %d", step.Kind)
		}
	}
	return nil
}
