package niri

// Window is a toplevel window as reported by the compositor.
type Window struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	AppID       string `json:"app_id"`
	PID         int32  `json:"pid"`
	WorkspaceID uint64 `json:"workspace_id"`
	IsFocused   bool   `json:"is_focused"`
}

// Workspace is a workspace as reported by the compositor. IsHidden comes
// from the operator's niri configuration, it is not computed at runtime.
type Workspace struct {
	ID        uint64 `json:"id"`
	Idx       uint8  `json:"idx"`
	Name      string `json:"name"`
	Output    string `json:"output"`
	IsActive  bool   `json:"is_active"`
	IsFocused bool   `json:"is_focused"`
	IsHidden  bool   `json:"is_hidden"`
}

// FocusedWorkspace returns the workspace holding keyboard focus.
func FocusedWorkspace(workspaces []Workspace) (Workspace, bool) {
	for _, ws := range workspaces {
		if ws.IsFocused {
			return ws, true
		}
	}
	return Workspace{}, false
}

// HiddenWorkspace returns the first workspace flagged hidden, the parking
// location used by hide-class operations.
func HiddenWorkspace(workspaces []Workspace) (Workspace, bool) {
	for _, ws := range workspaces {
		if ws.IsHidden {
			return ws, true
		}
	}
	return Workspace{}, false
}
