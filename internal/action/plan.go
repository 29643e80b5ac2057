package action

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"niri-app-hotkey/internal/matcher"
	"niri-app-hotkey/internal/niri"
	"niri-app-hotkey/pkg/config"
)

// StepKind enumerates the per-window compositor actions a plan can contain.
type StepKind int

const (
	StepFocus StepKind = iota
	StepMove
)

// Step is one per-window compositor action.
type Step struct {
	Kind        StepKind
	WindowID    uint64
	WorkspaceID uint64 // StepMove only
	Focus       bool   // StepMove only
}

// Plan is the resolved set of compositor actions for one invocation:
// either a spawn, or a sequence of window steps in candidate order. An
// empty plan is a legitimate no-op.
type Plan struct {
	Spawn   []string
	SpawnSh string
	Steps   []Step
}

// IsNoop reports whether the plan carries no action at all.
func (p Plan) IsNoop() bool {
	return p.Spawn == nil && p.SpawnSh == "" && len(p.Steps) == 0
}

// PlanCommand derives the concrete plan for a command from the classified
// candidate set. It issues nothing itself; the caller executes the plan.
func PlanCommand(cmd Command, app *config.Application, candidates []matcher.Candidate, workspaces []niri.Workspace) (Plan, error) {
	switch cmd {
	case Launch:
		return planLaunch(app)
	case Show:
		return planShow(candidates, workspaces)
	case Hide:
		return planHide(candidates, workspaces)
	case Activate:
		return planActivate(candidates), nil
	case Toggle:
		return planToggle(app, candidates, workspaces)
	default:
		return Plan{}, fmt.Errorf("unknown command %d", cmd)
	}
}

// planLaunch ignores candidates entirely and spawns unconditionally.
func planLaunch(app *config.Application) (Plan, error) {
	if app.SpawnSh != "" {
		return Plan{SpawnSh: app.SpawnSh}, nil
	}
	if len(app.Spawn) == 0 {
		return Plan{}, fmt.Errorf("application %q has no spawn command", app.Name)
	}

	argv := make([]string, len(app.Spawn))
	copy(argv, app.Spawn)
	argv[0] = expandHome(argv[0])
	return Plan{Spawn: argv}, nil
}

// planShow moves every hidden candidate to the currently focused workspace
// and focuses it there. Visible candidates are left untouched.
func planShow(candidates []matcher.Candidate, workspaces []niri.Workspace) (Plan, error) {
	var plan Plan
	hidden := withVisibility(candidates, matcher.Hidden)
	if len(hidden) == 0 {
		return plan, nil
	}

	focused, ok := niri.FocusedWorkspace(workspaces)
	if !ok {
		return plan, fmt.Errorf("no focused workspace found")
	}

	for _, candidate := range hidden {
		plan.Steps = append(plan.Steps, Step{
			Kind:        StepMove,
			WindowID:    candidate.Window.ID,
			WorkspaceID: focused.ID,
			Focus:       true,
		})
	}
	return plan, nil
}

// planHide moves every visible candidate to the hidden workspace. The
// missing-hidden-workspace precondition fails the invocation even when
// there is nothing to hide.
func planHide(candidates []matcher.Candidate, workspaces []niri.Workspace) (Plan, error) {
	var plan Plan
	hiddenWS, ok := niri.HiddenWorkspace(workspaces)
	if !ok {
		return plan, fmt.Errorf("no workspace is flagged hidden: declare one in your niri configuration to use hide")
	}

	for _, candidate := range candidates {
		if candidate.Visibility == matcher.Hidden {
			continue
		}
		plan.Steps = append(plan.Steps, Step{
			Kind:        StepMove,
			WindowID:    candidate.Window.ID,
			WorkspaceID: hiddenWS.ID,
			Focus:       false,
		})
	}
	return plan, nil
}

// planActivate focuses every visible candidate. Hidden candidates stay put;
// activate never un-hides.
func planActivate(candidates []matcher.Candidate) Plan {
	var plan Plan
	for _, candidate := range candidates {
		if candidate.Visibility == matcher.Hidden {
			continue
		}
		plan.Steps = append(plan.Steps, Step{
			Kind:     StepFocus,
			WindowID: candidate.Window.ID,
		})
	}
	return plan
}

// planToggle infers one of launch/hide/show/activate from the candidate
// set, evaluated once over the whole set: dismiss whatever is in front
// first, then bring back what is stashed, and only fall back to plain
// focus when nothing needs to move.
func planToggle(app *config.Application, candidates []matcher.Candidate, workspaces []niri.Workspace) (Plan, error) {
	if len(candidates) == 0 {
		return planLaunch(app)
	}
	if focused := withVisibility(candidates, matcher.VisibleFocused); len(focused) > 0 {
		return planHide(focused, workspaces)
	}
	if hidden := withVisibility(candidates, matcher.Hidden); len(hidden) > 0 {
		return planShow(hidden, workspaces)
	}
	return planActivate(candidates), nil
}

func withVisibility(candidates []matcher.Candidate, visibility matcher.Visibility) []matcher.Candidate {
	var subset []matcher.Candidate
	for _, candidate := range candidates {
		if candidate.Visibility == visibility {
			subset = append(subset, candidate)
		}
	}
	return subset
}

// expandHome resolves a leading ~ in the spawn executable path.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
