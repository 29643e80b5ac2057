package matcher

import (
	"sort"

	"niri-app-hotkey/internal/niri"
	"niri-app-hotkey/pkg/config"
)

// Candidate is a window that survived match/exclude filtering and index
// selection, tagged with its visibility state.
type Candidate struct {
	Window     niri.Window
	Visibility Visibility
}

// Filter evaluates the application's rules against the window list and
// returns the candidate windows sorted by pid ascending. A window is a
// candidate when it satisfies at least one match rule (all patterns present
// on a rule must match) and no exclude rule. When a match rule carries an
// index, only the candidate at that position of the sorted list survives;
// an out-of-range index yields an empty list.
func Filter(windows []niri.Window, app *config.Application) []niri.Window {
	var matched []niri.Window
	for _, window := range windows {
		if !matchesAny(window, app.Matches) {
			continue
		}
		if matchesAny(window, app.Excludes) {
			continue
		}
		matched = append(matched, window)
	}

	// Stable so windows of one process keep the compositor's order.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].PID < matched[j].PID
	})

	if rule := app.IndexRule(); rule != nil {
		index := *rule.Index
		if index >= len(matched) {
			return nil
		}
		matched = matched[index : index+1]
	}

	return matched
}

// Resolve filters the window list and classifies every candidate.
func Resolve(windows []niri.Window, workspaces []niri.Workspace, app *config.Application) []Candidate {
	filtered := Filter(windows, app)
	candidates := make([]Candidate, 0, len(filtered))
	for _, window := range filtered {
		candidates = append(candidates, Candidate{
			Window:     window,
			Visibility: Classify(window, workspaces),
		})
	}
	return candidates
}

func matchesAny(window niri.Window, rules []config.Rule) bool {
	for _, rule := range rules {
		if matches(window, rule) {
			return true
		}
	}
	return false
}

func matches(window niri.Window, rule config.Rule) bool {
	if rule.AppID != nil && !rule.AppID.MatchString(window.AppID) {
		return false
	}
	if rule.Title != nil && !rule.Title.MatchString(window.Title) {
		return false
	}
	return true
}
