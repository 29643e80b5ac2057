package matcher

import (
	"niri-app-hotkey/internal/niri"
)

// Visibility is the classified state of a candidate window.
type Visibility int

const (
	// Hidden means the window sits on a workspace flagged hidden.
	Hidden Visibility = iota
	// VisibleUnfocused means the window is on an ordinary workspace
	// without keyboard focus.
	VisibleUnfocused
	// VisibleFocused means the window is on an ordinary workspace and
	// holds keyboard focus.
	VisibleFocused
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case VisibleUnfocused:
		return "visible"
	case VisibleFocused:
		return "focused"
	default:
		return "unknown"
	}
}

// Classify determines the visibility of a window from the workspace list.
// A hidden workspace hides all of its windows, regardless of their own
// focused flag. A window whose workspace is not in the list is treated as
// visible and unfocused rather than failing the command.
func Classify(window niri.Window, workspaces []niri.Workspace) Visibility {
	ws, ok := findWorkspace(workspaces, window.WorkspaceID)
	if !ok {
		return VisibleUnfocused
	}
	if ws.IsHidden {
		return Hidden
	}
	if window.IsFocused {
		return VisibleFocused
	}
	return VisibleUnfocused
}

func findWorkspace(workspaces []niri.Workspace, id uint64) (niri.Workspace, bool) {
	for _, ws := range workspaces {
		if ws.ID == id {
			return ws, true
		}
	}
	return niri.Workspace{}, false
}
