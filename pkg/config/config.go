package config

import (
	"fmt"
	"regexp"
)

// Rule is a compiled window-matching rule. A window satisfies the rule when
// every pattern that is present matches; patterns use search semantics (no
// implicit anchoring), the same way niri's own window rules match.
type Rule struct {
	AppID *regexp.Regexp
	Title *regexp.Regexp

	// Index selects a single candidate by position in the final sorted
	// candidate list. Only meaningful on match rules.
	Index *int
}

// Application is one validated configuration entry: how to launch the
// application and how to recognize its windows.
type Application struct {
	Name     string
	Spawn    []string
	SpawnSh  string
	Matches  []Rule
	Excludes []Rule
}

// IndexRule returns the single match rule carrying an index, or nil.
// Validation guarantees there is at most one.
func (a *Application) IndexRule() *Rule {
	for i := range a.Matches {
		if a.Matches[i].Index != nil {
			return &a.Matches[i]
		}
	}
	return nil
}

// Config holds the validated application entries. Fields are private to
// keep the loaded configuration immutable.
type Config struct {
	notifyCommand string
	applications  []Application
}

// NotifyCommand returns the configured notification command, or the empty
// string when none was set.
func (c *Config) NotifyCommand() string {
	return c.notifyCommand
}

// Applications returns all configured applications.
func (c *Config) Applications() []Application {
	return c.applications
}

// FindApplication looks up an application entry by its exact name.
func (c *Config) FindApplication(name string) (*Application, error) {
	for i := range c.applications {
		if c.applications[i].Name == name {
			return &c.applications[i], nil
		}
	}
	return nil, fmt.Errorf("application %q not found in configuration", name)
}
