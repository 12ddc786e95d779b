package config

import (
	"os"
	"path/filepath"
	"strings"

	"hypr-switch/pkg/logger"
)

// GetDesktopDirs returns the application directories searched for desktop
// entries. Returns a copy to prevent external modifications.
func (c *Config) GetDesktopDirs() []string {
	dirs := make([]string, len(c.desktopDirs))
	copy(dirs, c.desktopDirs)
	return dirs
}

// defaultDesktopDirs resolves the XDG application directories: the user's
// own entries first, then every XDG_DATA_DIRS entry.
func defaultDesktopDirs(log *logger.Logger) []string {
	var parts []string

	home, err := os.UserHomeDir()
	if err != nil {
		log.Warn("Failed to get home directory for desktop dirs", "error", err)
	} else {
		parts = append(parts, filepath.Join(home, ".local", "share"))
	}

	xdg := os.Getenv("XDG_DATA_DIRS")
	if xdg == "" {
		xdg = "/usr/local/share:/usr/share"
	}
	parts = append(parts, strings.Split(xdg, ":")...)

	var dirs []string
	seen := map[string]bool{}
	for _, p := range parts {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		dirs = append(dirs, filepath.Join(p, "applications"))
	}

	return dirs
}
