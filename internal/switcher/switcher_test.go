package switcher

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"hypr-switch/internal/desktop"
	"hypr-switch/internal/hypr"
	"hypr-switch/pkg/config"
	"hypr-switch/pkg/logger"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(
		logger.WithLevel(zerolog.Disabled),
		logger.WithFile(filepath.Join(t.TempDir(), "test.log")),
	)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	return log
}

type fakeCompositor struct {
	windows   []hypr.Window
	workspace hypr.WorkspaceRef
	clientErr error
	wsErr     error

	focused []string
	moved   [][2]interface{}
	closed  []string
}

func (f *fakeCompositor) Clients() ([]hypr.Window, error) {
	if f.clientErr != nil {
		return nil, f.clientErr
	}
	return f.windows, nil
}

func (f *fakeCompositor) ActiveWorkspace() (hypr.WorkspaceRef, error) {
	if f.wsErr != nil {
		return hypr.WorkspaceRef{}, f.wsErr
	}
	return f.workspace, nil
}

func (f *fakeCompositor) FocusWindow(addr string) error {
	f.focused = append(f.focused, addr)
	return nil
}

func (f *fakeCompositor) MoveToWorkspace(addr string, ws int) error {
	f.moved = append(f.moved, [2]interface{}{addr, ws})
	return nil
}

func (f *fakeCompositor) CloseWindow(addr string) error {
	f.closed = append(f.closed, addr)
	return nil
}

// fakeMetadata serves canned entries and falls back to class defaults the
// way the real resolver does.
type fakeMetadata struct {
	entries map[string]desktop.Entry
}

func (f *fakeMetadata) Resolve(class string) desktop.Entry {
	if e, ok := f.entries[class]; ok {
		return e
	}
	return desktop.Entry{Name: class, Icon: class}
}

func testConfig(t *testing.T, log *logger.Logger) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"launcher_class": "albert"}`), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg := config.New(log)
	if err := cfg.LoadFromFile(path, log); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	return cfg
}

func newTestSwitcher(t *testing.T, comp *fakeCompositor, meta *fakeMetadata) *Switcher {
	t.Helper()
	log := newTestLogger(t)
	if meta == nil {
		meta = &fakeMetadata{}
	}
	return New(log, testConfig(t, log), comp, meta)
}

func TestQueryEnrichesAndOrders(t *testing.T) {
	comp := &fakeCompositor{
		windows: []hypr.Window{
			{Address: "0x1", Class: "kitty", Title: "vim", FocusHistoryID: 1, Workspace: hypr.WorkspaceRef{Id: 2}},
			{Address: "0x2", Class: "firefox", Title: "docs", FocusHistoryID: 0, Workspace: hypr.WorkspaceRef{Id: 1}},
		},
		workspace: hypr.WorkspaceRef{Id: 3},
	}
	meta := &fakeMetadata{entries: map[string]desktop.Entry{
		"firefox": {Name: "Firefox", Icon: "firefox-icon"},
	}}
	s := newTestSwitcher(t, comp, meta)

	res := s.Query("", false)
	if len(res.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(res.Entries))
	}
	if res.ActiveWorkspace != 3 {
		t.Errorf("active workspace = %d, want 3", res.ActiveWorkspace)
	}

	first := res.Entries[0]
	if first.Address != "0x2" || first.Name != "Firefox" || first.Icon != "firefox-icon" {
		t.Errorf("unexpected first entry: %+v", first)
	}
	// No desktop entry for kitty, so the class stands in.
	second := res.Entries[1]
	if second.Name != "kitty" || second.Icon != "kitty" {
		t.Errorf("expected class defaults for kitty, got %+v", second)
	}
}

func TestQueryExcludesLauncherClass(t *testing.T) {
	comp := &fakeCompositor{
		windows: []hypr.Window{
			{Address: "0x1", Class: "albert", Title: "Albert", FocusHistoryID: 0},
			{Address: "0x2", Class: "kitty", Title: "terminal", FocusHistoryID: 1},
		},
	}
	s := newTestSwitcher(t, comp, nil)

	for _, query := range []string{"", "albert", "a"} {
		res := s.Query(query, false)
		for _, e := range res.Entries {
			if e.Class == "albert" {
				t.Errorf("query %q offered the launcher itself", query)
			}
		}
	}
}

func TestQueryDegradesOnSnapshotFailure(t *testing.T) {
	comp := &fakeCompositor{clientErr: errors.New("hyprctl exploded")}
	s := newTestSwitcher(t, comp, nil)

	res := s.Query("kitty", false)
	if len(res.Entries) != 0 {
		t.Errorf("expected empty result on snapshot failure, got %d", len(res.Entries))
	}
}

func TestQueryDegradesOnWorkspaceFailure(t *testing.T) {
	comp := &fakeCompositor{
		windows: []hypr.Window{{Address: "0x1", Class: "kitty"}},
		wsErr:   errors.New("hyprctl exploded"),
	}
	s := newTestSwitcher(t, comp, nil)

	res := s.Query("", false)
	if len(res.Entries) != 0 {
		t.Errorf("expected empty result on workspace failure, got %d", len(res.Entries))
	}
}

func TestItemsBindAddressesAndActions(t *testing.T) {
	comp := &fakeCompositor{
		windows: []hypr.Window{
			{Address: "0xabc", Class: "kitty", Title: "vim", Workspace: hypr.WorkspaceRef{Id: 4}},
		},
	}
	s := newTestSwitcher(t, comp, nil)

	res := s.Query("", false)
	items := s.Items(res.Entries)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	item := items[0]
	if item.ID != "0xabc" || item.Text != "kitty" || item.Subtext != "vim" || item.Workspace != 4 {
		t.Errorf("unexpected item: %+v", item)
	}
	want := []string{ActionSwitch, ActionMoveHere, ActionClose}
	if len(item.Actions) != len(want) {
		t.Fatalf("expected %d actions, got %d", len(want), len(item.Actions))
	}
	for i, a := range want {
		if item.Actions[i] != a {
			t.Errorf("action %d = %q, want %q", i, item.Actions[i], a)
		}
	}
}

func TestDispatchPassThrough(t *testing.T) {
	comp := &fakeCompositor{workspace: hypr.WorkspaceRef{Id: 5}}
	s := newTestSwitcher(t, comp, nil)

	if err := s.Focus("0x1"); err != nil {
		t.Fatalf("Focus: %v", err)
	}
	if err := s.MoveTo("0x2", 7); err != nil {
		t.Fatalf("MoveTo: %v", err)
	}
	if err := s.MoveHere("0x3"); err != nil {
		t.Fatalf("MoveHere: %v", err)
	}
	if err := s.Close("0x4"); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if len(comp.focused) != 1 || comp.focused[0] != "0x1" {
		t.Errorf("focused = %v", comp.focused)
	}
	if len(comp.moved) != 2 {
		t.Fatalf("moved = %v", comp.moved)
	}
	if comp.moved[0] != [2]interface{}{"0x2", 7} {
		t.Errorf("MoveTo recorded %v", comp.moved[0])
	}
	if comp.moved[1] != [2]interface{}{"0x3", 5} {
		t.Errorf("MoveHere should target the live workspace, recorded %v", comp.moved[1])
	}
	if len(comp.closed) != 1 || comp.closed[0] != "0x4" {
		t.Errorf("closed = %v", comp.closed)
	}
}

func TestMetadataExposesTrigger(t *testing.T) {
	comp := &fakeCompositor{}
	s := newTestSwitcher(t, comp, nil)

	d := s.Metadata()
	if d.TriggerPrefix != "w" {
		t.Errorf("trigger prefix = %q, want w", d.TriggerPrefix)
	}
	if d.Synopsis == "" {
		t.Error("synopsis should not be empty")
	}
}
