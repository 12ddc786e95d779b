package config

import (
	"hypr-switch/pkg/logger"
)

// Config holds the application configuration.
type Config struct {
	// Configurable via JSON file (private fields to enforce immutability)
	launcherClass string
	fuzzy         bool
	triggerPrefix string
	hyprctlPath   string
	desktopDirs   []string
	socketPath    string
	rofiTheme     string
	notifyCommand string
	logFile       string

	// Internal fields
	log       *logger.Logger
	assetsDir string
}

// New creates a new Config instance with the provided logger.
func New(log *logger.Logger) *Config {
	return &Config{
		log: log,
	}
}

// GetLauncherClass returns the window class of the launcher itself, which
// is never offered as a switch target.
func (c *Config) GetLauncherClass() string {
	return c.launcherClass
}

// GetFuzzy returns whether fuzzy matching is enabled by default.
func (c *Config) GetFuzzy() bool {
	return c.fuzzy
}

// GetTriggerPrefix returns the query trigger prefix exposed to hosts.
func (c *Config) GetTriggerPrefix() string {
	return c.triggerPrefix
}

// GetHyprctlPath returns the compositor control tool name or path.
func (c *Config) GetHyprctlPath() string {
	return c.hyprctlPath
}

// GetSocketPath returns the unix socket path for the IPC server.
func (c *Config) GetSocketPath() string {
	return c.socketPath
}

// GetNotifyCommand returns the custom notification command, if any.
func (c *Config) GetNotifyCommand() string {
	return c.notifyCommand
}

// GetLogFile returns the configured log file path. Empty means the
// logger's default path applies.
func (c *Config) GetLogFile() string {
	return c.logFile
}
