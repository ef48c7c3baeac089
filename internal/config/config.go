package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ToolSpec is a user-configured launch candidate for a VCS action.
type ToolSpec struct {
	Name string   `json:"name"`
	Args []string `json:"args,omitempty"`
}

// Settings is the on-disk configuration shape.
type Settings struct {
	// ConfirmLaunch asks before starting a GUI tool. Defaults to true.
	ConfirmLaunch *bool `json:"confirm_launch,omitempty"`

	// Tools maps VCS name → action → extra launch candidates, tried
	// before the built-in ones.
	Tools map[string]map[string][]ToolSpec `json:"tools,omitempty"`
}

// ShouldConfirmLaunch returns the confirm_launch setting, defaulting to true.
func (s Settings) ShouldConfirmLaunch() bool {
	if s.ConfirmLaunch == nil {
		return true
	}
	return *s.ConfirmLaunch
}

// Config manages the configuration stored at ~/.config/vcsinfo/config.json.
type Config struct {
	path string
}

// New creates a Config. If configPath is empty, uses the default location.
func New(configPath string) *Config {
	if configPath == "" {
		home, _ := os.UserHomeDir()
		configPath = filepath.Join(home, ".config", "vcsinfo", "config.json")
	}
	return &Config{path: configPath}
}

// Path returns the config file path.
func (c *Config) Path() string {
	return c.path
}

// Read returns the settings, or defaults if the file doesn't exist.
func (c *Config) Read() (Settings, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{}, nil
		}
		return Settings{}, err
	}
	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Write persists the settings to disk, creating directories as needed.
func (c *Config) Write(settings Settings) error {
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, b, 0o644)
}
