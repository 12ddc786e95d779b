package desktop

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"hypr-switch/pkg/logger"
)

// cache memoizes resolved entries between queries. Any change to a
// .desktop file under a watched directory drops the whole map, so a
// rewritten entry is never served stale.
type cache struct {
	log     *logger.Logger
	watcher *fsnotify.Watcher

	mu      sync.RWMutex
	entries map[string]Entry
}

func newCache(log *logger.Logger, dirs []string) (*cache, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	watched := 0
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			log.Debug("Not watching desktop directory", "dir", dir, "error", err)
			continue
		}
		watched++
	}
	if watched == 0 {
		w.Close()
		return nil, fmt.Errorf("no desktop directory could be watched")
	}

	c := &cache{
		log:     log,
		watcher: w,
		entries: make(map[string]Entry),
	}
	go c.watch()

	log.Debug("Desktop entry cache enabled", "watched_dirs", watched)
	return c, nil
}

func (c *cache) watch() {
	for {
		select {
		case event, ok := <-c.watcher.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(event.Name, ".desktop") {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			c.log.Debug("Desktop entry changed, dropping cache", "file", event.Name, "op", event.Op.String())
			c.invalidate()
		case err, ok := <-c.watcher.Errors:
			if !ok {
				return
			}
			c.log.Warn("Desktop entry watcher error", "error", err)
		}
	}
}

func (c *cache) invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]Entry)
	c.mu.Unlock()
}

func (c *cache) get(class string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[class]
	return e, ok
}

func (c *cache) put(class string, e Entry) {
	c.mu.Lock()
	c.entries[class] = e
	c.mu.Unlock()
}

func (c *cache) close() error {
	return c.watcher.Close()
}
