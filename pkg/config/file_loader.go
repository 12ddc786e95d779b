package config

import (
	"encoding/json"
	"os"

	"hypr-switch/pkg/logger"
)

// fileConfig is the JSON shape of the configuration file.
type fileConfig struct {
	LauncherClass string   `json:"launcher_class"`
	Fuzzy         bool     `json:"fuzzy"`
	TriggerPrefix string   `json:"trigger_prefix"`
	HyprctlPath   string   `json:"hyprctl_path"`
	DesktopDirs   []string `json:"desktop_dirs"`
	SocketPath    string   `json:"socket_path"`
	RofiTheme     string   `json:"rofi_theme"`
	NotifyCommand string   `json:"notify_command"`
	LogFile       string   `json:"log_file"`
}

// LoadFromFile loads the configuration from a JSON file. Fields absent
// from the file keep their defaults.
func (c *Config) LoadFromFile(path string, log *logger.Logger) error {
	log.Debug("Loading configuration from file", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("Failed to read config file", err, "path", path)
		return err
	}
	log.Debug("Config file read successfully", "size_bytes", len(data))

	var temp fileConfig
	if err := json.Unmarshal(data, &temp); err != nil {
		log.Error("Failed to parse config JSON", err)
		return err
	}
	log.Debug("Config JSON parsed successfully")

	// Assign to private fields
	c.launcherClass = temp.LauncherClass
	c.fuzzy = temp.Fuzzy
	c.triggerPrefix = temp.TriggerPrefix
	c.hyprctlPath = temp.HyprctlPath
	c.desktopDirs = temp.DesktopDirs
	c.socketPath = temp.SocketPath
	c.rofiTheme = temp.RofiTheme
	c.notifyCommand = temp.NotifyCommand
	c.logFile = temp.LogFile

	c.applyDefaults()
	return nil
}

// MarshalJSON exposes the private fields when the default configuration
// file gets written out.
func (c *Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(fileConfig{
		LauncherClass: c.launcherClass,
		Fuzzy:         c.fuzzy,
		TriggerPrefix: c.triggerPrefix,
		HyprctlPath:   c.hyprctlPath,
		DesktopDirs:   c.desktopDirs,
		SocketPath:    c.socketPath,
		RofiTheme:     c.rofiTheme,
		NotifyCommand: c.notifyCommand,
		LogFile:       c.logFile,
	})
}

// loadConfigFromPath loads the configuration from a file.
func loadConfigFromPath(path string, log *logger.Logger) (*Config, error) {
	config := &Config{log: log}
	if err := config.LoadFromFile(path, log); err != nil {
		return nil, err
	}
	return config, nil
}
