package config

import (
	"fmt"
	"os"
	"path/filepath"

	kdl "github.com/sblinch/kdl-go"

	"niri-app-hotkey/pkg/logger"
)

// DefaultFileName is the config file looked up under the niri config
// directory when no explicit path is given.
const DefaultFileName = "niri-app-hotkey.kdl"

// Raw decode targets for the KDL document. Patterns stay as strings here;
// compilation and shape checks happen in validate.
type rawRule struct {
	AppID *string `kdl:"app-id"`
	Title *string `kdl:"title"`
	Index *int    `kdl:"index"`
}

type rawApplication struct {
	Name     string    `kdl:",arg"`
	Spawn    []string  `kdl:"spawn"`
	SpawnSh  *string   `kdl:"spawn-sh"`
	Matches  []rawRule `kdl:"match,multiple"`
	Excludes []rawRule `kdl:"exclude,multiple"`
}

type rawConfig struct {
	NotifyCommand *string          `kdl:"notify-command"`
	Applications  []rawApplication `kdl:"application,multiple"`
}

// DefaultPath returns $XDG_CONFIG_HOME/niri/niri-app-hotkey.kdl.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine config directory, please provide a path via --config: %w", err)
	}
	return filepath.Join(configDir, "niri", DefaultFileName), nil
}

// Load reads, parses, and validates the configuration file at path. An
// empty path selects the default location.
func Load(path string, log *logger.Logger) (*Config, error) {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}
	log.Debug("Loading configuration", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file at %s: %w", path, err)
	}

	return Parse(data, log)
}

// Parse decodes and validates a KDL configuration document.
func Parse(data []byte, log *logger.Logger) (*Config, error) {
	var raw rawConfig
	if err := kdl.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg, err := validate(&raw)
	if err != nil {
		return nil, err
	}

	log.Debug("Configuration loaded", "application_count", len(cfg.applications))
	return cfg, nil
}
