package switcher

import "hypr-switch/internal/hypr"

// Action labels offered for every matched window.
const (
	ActionSwitch   = "Switch"
	ActionMoveHere = "Move Here"
	ActionClose    = "Close"
)

// MatchRelevance is the constant relevance reported to hosts for every
// match. Result order already encodes recency, so no finer grade exists.
const MatchRelevance = 1.0

// TriggerSynopsis is the usage hint hosts show next to the trigger prefix.
const TriggerSynopsis = "<window class, title or app name>"

// Entry is a window enriched with its desktop metadata. Entries are built
// fresh for every query and discarded with it.
type Entry struct {
	hypr.Window
	Name string
	Icon string
}

// Item is the displayable form of a matched window. The ID is the window
// address, which the three actions dispatch against.
type Item struct {
	ID        string   `json:"id" yaml:"id"`
	Text      string   `json:"text" yaml:"text"`
	Subtext   string   `json:"subtext" yaml:"subtext"`
	Icon      string   `json:"icon" yaml:"icon"`
	Workspace int      `json:"workspace" yaml:"workspace"`
	Actions   []string `json:"actions" yaml:"actions"`
}

// Result is one query cycle's outcome: the matched windows, most recently
// focused first, and the workspace a "Move Here" action would target.
type Result struct {
	Entries         []Entry
	ActiveWorkspace int
}

// Describe carries the presentation metadata hosts ask for once.
type Describe struct {
	TriggerPrefix string `json:"trigger_prefix" yaml:"trigger_prefix"`
	Synopsis      string `json:"synopsis" yaml:"synopsis"`
}
