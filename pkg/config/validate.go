package config

import (
	"fmt"
	"regexp"

	"github.com/hashicorp/go-multierror"
)

// validate checks every shape invariant of the raw document and compiles
// the regex patterns. All findings are collected so `validate` reports the
// whole list at once rather than the first offending entry.
func validate(raw *rawConfig) (*Config, error) {
	var result *multierror.Error

	seen := make(map[string]bool, len(raw.Applications))
	applications := make([]Application, 0, len(raw.Applications))

	for i, rawApp := range raw.Applications {
		name := rawApp.Name
		if name == "" {
			result = multierror.Append(result, fmt.Errorf("application #%d: name must not be empty", i+1))
			name = fmt.Sprintf("#%d", i+1)
		} else if seen[name] {
			result = multierror.Append(result, fmt.Errorf("application %q: duplicate name", name))
		}
		seen[rawApp.Name] = true

		app := Application{Name: rawApp.Name}

		hasSpawn := rawApp.Spawn != nil
		hasSpawnSh := rawApp.SpawnSh != nil
		switch {
		case hasSpawn && hasSpawnSh:
			result = multierror.Append(result, fmt.Errorf("application %q: spawn and spawn-sh are mutually exclusive", name))
		case !hasSpawn && !hasSpawnSh:
			result = multierror.Append(result, fmt.Errorf("application %q: either spawn or spawn-sh is required", name))
		case hasSpawn && len(rawApp.Spawn) == 0:
			result = multierror.Append(result, fmt.Errorf("application %q: spawn command must not be empty", name))
		case hasSpawnSh && *rawApp.SpawnSh == "":
			result = multierror.Append(result, fmt.Errorf("application %q: spawn-sh command must not be empty", name))
		case hasSpawn:
			app.Spawn = rawApp.Spawn
		default:
			app.SpawnSh = *rawApp.SpawnSh
		}

		if len(rawApp.Matches) == 0 {
			result = multierror.Append(result, fmt.Errorf("application %q: at least one match rule is required", name))
		}

		indexRules := 0
		for j, rawMatch := range rawApp.Matches {
			rule, err := compileRule(rawMatch, name, "match", j)
			if err != nil {
				result = multierror.Append(result, err)
				continue
			}
			if rule.Index != nil {
				indexRules++
			}
			app.Matches = append(app.Matches, rule)
		}
		if indexRules > 1 {
			result = multierror.Append(result, fmt.Errorf("application %q: at most one match rule may carry an index", name))
		}

		for j, rawExclude := range rawApp.Excludes {
			if rawExclude.Index != nil {
				result = multierror.Append(result, fmt.Errorf("application %q: exclude rule #%d: index is only valid on match rules", name, j+1))
				continue
			}
			rule, err := compileRule(rawExclude, name, "exclude", j)
			if err != nil {
				result = multierror.Append(result, err)
				continue
			}
			app.Excludes = append(app.Excludes, rule)
		}

		applications = append(applications, app)
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	cfg := &Config{applications: applications}
	if raw.NotifyCommand != nil {
		cfg.notifyCommand = *raw.NotifyCommand
	}
	return cfg, nil
}

func compileRule(raw rawRule, app, kind string, pos int) (Rule, error) {
	if raw.AppID == nil && raw.Title == nil {
		return Rule{}, fmt.Errorf("application %q: %s rule #%d: at least one of app-id or title is required", app, kind, pos+1)
	}

	rule := Rule{Index: raw.Index}
	if raw.AppID != nil {
		re, err := regexp.Compile(*raw.AppID)
		if err != nil {
			return Rule{}, fmt.Errorf("application %q: %s rule #%d: invalid app-id pattern: %w", app, kind, pos+1, err)
		}
		rule.AppID = re
	}
	if raw.Title != nil {
		re, err := regexp.Compile(*raw.Title)
		if err != nil {
			return Rule{}, fmt.Errorf("application %q: %s rule #%d: invalid title pattern: %w", app, kind, pos+1, err)
		}
		rule.Title = re
	}
	if raw.Index != nil && *raw.Index < 0 {
		return Rule{}, fmt.Errorf("application %q: %s rule #%d: index must not be negative", app, kind, pos+1)
	}
	return rule, nil
}
