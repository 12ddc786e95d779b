package switcher

import (
	"hypr-switch/internal/desktop"
	"hypr-switch/internal/hypr"
	"hypr-switch/pkg/config"
	"hypr-switch/pkg/logger"
)

// compositor is the slice of the hypr client the switcher consumes.
type compositor interface {
	Clients() ([]hypr.Window, error)
	ActiveWorkspace() (hypr.WorkspaceRef, error)
	FocusWindow(addr string) error
	MoveToWorkspace(addr string, ws int) error
	CloseWindow(addr string) error
}

// metadata resolves display metadata for window classes.
type metadata interface {
	Resolve(class string) desktop.Entry
}

// Switcher runs the query pipeline: snapshot, enrich, match, present.
// Every surface in the binary funnels through it.
type Switcher struct {
	log  *logger.Logger
	cfg  *config.Config
	comp compositor
	meta metadata
}

// New wires the pipeline together.
func New(log *logger.Logger, cfg *config.Config, comp compositor, meta metadata) *Switcher {
	return &Switcher{
		log:  log,
		cfg:  cfg,
		comp: comp,
		meta: meta,
	}
}

// Query snapshots the session and returns the windows matching text,
// most recently focused first. Snapshot failures degrade to an empty
// result so interactive hosts stay responsive.
func (s *Switcher) Query(text string, fuzzy bool) Result {
	windows, err := s.comp.Clients()
	if err != nil {
		s.log.Error("Window snapshot failed, returning no results", err, "query", text)
		return Result{}
	}

	ws, err := s.comp.ActiveWorkspace()
	if err != nil {
		s.log.Error("Active workspace fetch failed, returning no results", err, "query", text)
		return Result{}
	}

	launcher := s.cfg.GetLauncherClass()
	entries := make([]Entry, 0, len(windows))
	for _, w := range windows {
		// The launcher itself is never a switch target.
		if w.Class == launcher {
			continue
		}
		meta := s.meta.Resolve(w.Class)
		entries = append(entries, Entry{Window: w, Name: meta.Name, Icon: meta.Icon})
	}

	matched := Filter(entries, text, fuzzy)
	s.log.Debug("Query completed",
		"query", text,
		"fuzzy", fuzzy,
		"windows", len(windows),
		"matches", len(matched),
		"active_workspace", ws.Id)

	return Result{Entries: matched, ActiveWorkspace: ws.Id}
}

// Items converts matched entries to their displayable form.
func (s *Switcher) Items(entries []Entry) []Item {
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, Item{
			ID:        e.Address,
			Text:      e.Name,
			Subtext:   e.Title,
			Icon:      e.Icon,
			Workspace: e.Workspace.Id,
			Actions:   []string{ActionSwitch, ActionMoveHere, ActionClose},
		})
	}
	return items
}

// Focus switches input focus to the window at addr.
func (s *Switcher) Focus(addr string) error {
	return s.comp.FocusWindow(addr)
}

// MoveTo brings the window at addr to workspace ws, the one the query
// cycle captured as active.
func (s *Switcher) MoveTo(addr string, ws int) error {
	return s.comp.MoveToWorkspace(addr, ws)
}

// MoveHere brings the window at addr to whatever workspace is active
// right now. Used by hosts that did not keep the query cycle's result.
func (s *Switcher) MoveHere(addr string) error {
	ws, err := s.comp.ActiveWorkspace()
	if err != nil {
		s.log.Error("Failed to resolve move target workspace", err, "address", addr)
		return err
	}
	return s.comp.MoveToWorkspace(addr, ws.Id)
}

// Close asks the window at addr to close.
func (s *Switcher) Close(addr string) error {
	return s.comp.CloseWindow(addr)
}

// Metadata returns the presentation metadata hosts ask for once.
func (s *Switcher) Metadata() Describe {
	return Describe{
		TriggerPrefix: s.cfg.GetTriggerPrefix(),
		Synopsis:      TriggerSynopsis,
	}
}

// DefaultFuzzy reports the configured fuzzy-mode default for hosts that
// do not carry their own toggle.
func (s *Switcher) DefaultFuzzy() bool {
	return s.cfg.GetFuzzy()
}
