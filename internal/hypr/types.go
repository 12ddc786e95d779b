package hypr

// Window is one client entry from `hyprctl clients -j`. The address is
// the stable identifier; every dispatch targets it rather than the title,
// which may be shared between windows.
type Window struct {
	Address        string       `json:"address"`
	Title          string       `json:"title"`
	Class          string       `json:"class"`
	InitialClass   string       `json:"initialClass"`
	InitialTitle   string       `json:"initialTitle"`
	At             [2]int       `json:"at"`
	Size           [2]int       `json:"size"`
	Workspace      WorkspaceRef `json:"workspace"`
	Floating       bool         `json:"floating"`
	Hidden         bool         `json:"hidden"`
	Fullscreen     bool         `json:"fullscreen"`
	Pinned         bool         `json:"pinned"`
	Xwayland       bool         `json:"xwayland"`
	Monitor        int          `json:"monitor"`
	Pid            int          `json:"pid"`
	Grouped        []string     `json:"grouped"`
	FocusHistoryID int          `json:"focusHistoryID"`
}

// WorkspaceRef identifies the workspace a window sits on. The same shape
// comes back from `hyprctl activeworkspace -j`.
type WorkspaceRef struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}
