package desktop

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"hypr-switch/pkg/logger"
)

// Entry is the display metadata resolved for a window class.
type Entry struct {
	Name string
	Icon string
}

// Resolver maps window classes to desktop entry metadata. A missing or
// unreadable entry is the normal default path, never an error: both
// fields fall back to the class itself.
type Resolver struct {
	log   *logger.Logger
	dirs  []string
	cache *cache
}

// NewResolver builds a resolver over the given application directories.
// When the directories can be watched, resolved entries are memoized and
// the memo dropped on any change underneath them; otherwise every call
// re-reads the files.
func NewResolver(log *logger.Logger, dirs []string) *Resolver {
	r := &Resolver{log: log, dirs: dirs}

	c, err := newCache(log, dirs)
	if err != nil {
		log.Warn("Desktop entry cache disabled", "error", err)
	} else {
		r.cache = c
	}

	return r
}

// Close releases the directory watcher, if one was established.
func (r *Resolver) Close() error {
	if r.cache != nil {
		return r.cache.close()
	}
	return nil
}

// Resolve returns the display name and icon for class.
func (r *Resolver) Resolve(class string) Entry {
	if r.cache != nil {
		if e, ok := r.cache.get(class); ok {
			return e
		}
	}

	e := r.lookup(class)
	if r.cache != nil {
		r.cache.put(class, e)
	}
	return e
}

func (r *Resolver) lookup(class string) Entry {
	path := r.findFile(class)
	if path == "" {
		r.log.Debug("No desktop entry for class", "class", class)
		return Entry{Name: class, Icon: class}
	}

	e := parseEntry(path, class)
	r.log.Debug("Resolved desktop entry",
		"class", class,
		"path", path,
		"name", e.Name,
		"icon", e.Icon)
	return e
}

// findFile probes for <class>.desktop across all directories, then for
// the final dot-separated segment of the class. Reverse-DNS classes like
// org.foo.Bar commonly ship their entry as Bar.desktop.
func (r *Resolver) findFile(class string) string {
	candidates := []string{class + ".desktop"}
	if i := strings.LastIndex(class, "."); i >= 0 && i+1 < len(class) {
		candidates = append(candidates, class[i+1:]+".desktop")
	}

	for _, name := range candidates {
		for _, dir := range r.dirs {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}

// parseEntry scans a desktop entry file line by line. Only the
// [Desktop Entry] section counts, and the first non-empty Name and Icon
// inside it win. Anything unparseable leaves the class defaults intact.
func parseEntry(path, class string) Entry {
	entry := Entry{Name: class, Icon: class}

	f, err := os.Open(path)
	if err != nil {
		return entry
	}
	defer f.Close()

	in := false
	nameSet, iconSet := false, false
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		if line == "[Desktop Entry]" {
			in = true
			continue
		}
		if strings.HasPrefix(line, "[") {
			in = false
			continue
		}
		if !in {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch {
		case key == "Name" && !nameSet && value != "":
			entry.Name = value
			nameSet = true
		case key == "Icon" && !iconSet && value != "":
			entry.Icon = value
			iconSet = true
		}
		if nameSet && iconSet {
			break
		}
	}

	return entry
}
