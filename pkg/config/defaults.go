package config

import (
	"hypr-switch/pkg/logger"
)

const (
	defaultLauncherClass = "albert"
	defaultTriggerPrefix = "w"
	defaultHyprctlPath   = "hyprctl"
	defaultSocketPath    = "/tmp/hypr-switch.sock"
)

// DefaultConfig creates a default configuration.
func DefaultConfig(log *logger.Logger) *Config {
	log.Debug("Creating default configuration")

	config := &Config{log: log}
	config.applyDefaults()

	log.Info("Created default configuration",
		"launcher_class", config.launcherClass,
		"trigger_prefix", config.triggerPrefix,
		"socket_path", config.socketPath,
		"desktop_dir_count", len(config.desktopDirs))

	return config
}

// applyDefaults fills every unset field, so a partial config file only
// overrides what it names.
func (c *Config) applyDefaults() {
	if c.launcherClass == "" {
		c.launcherClass = defaultLauncherClass
	}
	if c.triggerPrefix == "" {
		c.triggerPrefix = defaultTriggerPrefix
	}
	if c.hyprctlPath == "" {
		c.hyprctlPath = defaultHyprctlPath
	}
	if c.socketPath == "" {
		c.socketPath = defaultSocketPath
	}
	if len(c.desktopDirs) == 0 {
		c.desktopDirs = defaultDesktopDirs(c.log)
	}
}
