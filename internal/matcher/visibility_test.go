package matcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"niri-app-hotkey/internal/niri"
)

func TestClassifyHiddenWorkspaceDominatesFocus(t *testing.T) {
	// A hidden workspace's windows are never considered focused.
	window := niri.Window{ID: 1, WorkspaceID: 9, IsFocused: true}
	workspaces := []niri.Workspace{{ID: 9, IsHidden: true}}

	require.Equal(t, Hidden, Classify(window, workspaces))
}

func TestClassifyVisibleFocused(t *testing.T) {
	window := niri.Window{ID: 1, WorkspaceID: 2, IsFocused: true}
	workspaces := []niri.Workspace{{ID: 2}}

	require.Equal(t, VisibleFocused, Classify(window, workspaces))
}

func TestClassifyVisibleUnfocused(t *testing.T) {
	window := niri.Window{ID: 1, WorkspaceID: 2}
	workspaces := []niri.Workspace{{ID: 2}}

	require.Equal(t, VisibleUnfocused, Classify(window, workspaces))
}

func TestClassifyUnknownWorkspaceDefaultsToVisibleUnfocused(t *testing.T) {
	window := niri.Window{ID: 1, WorkspaceID: 42, IsFocused: true}
	workspaces := []niri.Workspace{{ID: 2}}

	require.Equal(t, VisibleUnfocused, Classify(window, workspaces))
}
