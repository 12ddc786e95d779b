package hypr

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

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

// fakeRunner replaces the hyprctl process layer. Outputs are keyed by the
// joined argument list; every Detach call is recorded in order.
type fakeRunner struct {
	outputs   map[string]string
	outErr    error
	detached  [][]string
	detachErr map[string]error
}

func (f *fakeRunner) Output(args ...string) ([]byte, error) {
	if f.outErr != nil {
		return nil, f.outErr
	}
	return []byte(f.outputs[strings.Join(args, " ")]), nil
}

func (f *fakeRunner) Detach(args ...string) error {
	f.detached = append(f.detached, args)
	if err, ok := f.detachErr[strings.Join(args, " ")]; ok {
		return err
	}
	return nil
}

func newFakeClient(t *testing.T, run *fakeRunner) *Client {
	t.Helper()
	return &Client{log: newTestLogger(t), run: run}
}

func TestNewChecksToolPresence(t *testing.T) {
	dir := t.TempDir()
	tool := filepath.Join(dir, "hyprctl")
	if err := os.WriteFile(tool, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("write fake tool: %v", err)
	}
	t.Setenv("PATH", dir)

	if _, err := New(newTestLogger(t), "hyprctl"); err != nil {
		t.Fatalf("expected tool on PATH to be accepted, got %v", err)
	}

	_, err := New(newTestLogger(t), "no-such-tool")
	if !errors.Is(err, ErrToolNotFound) {
		t.Fatalf("expected ErrToolNotFound, got %v", err)
	}
}

func TestClientsParsesSnapshot(t *testing.T) {
	run := &fakeRunner{outputs: map[string]string{
		"clients -j": `[
			{
				"address": "0x55dd5c089a40",
				"title": "notes.md - nvim",
				"class": "kitty",
				"initialClass": "kitty",
				"initialTitle": "kitty",
				"at": [1280, 0],
				"size": [1280, 1440],
				"workspace": {"id": 2, "name": "2"},
				"floating": false,
				"monitor": 0,
				"pid": 4242,
				"xwayland": false,
				"grouped": ["0x55dd5c089a40"],
				"focusHistoryID": 1
			},
			{
				"address": "0x55dd5c0b1200",
				"title": "Mozilla Firefox",
				"class": "firefox",
				"workspace": {"id": 1, "name": "1"},
				"focusHistoryID": 0
			}
		]`,
	}}
	c := newFakeClient(t, run)

	windows, err := c.Clients()
	if err != nil {
		t.Fatalf("Clients: %v", err)
	}
	if len(windows) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(windows))
	}

	w := windows[0]
	if w.Address != "0x55dd5c089a40" || w.Class != "kitty" || w.Title != "notes.md - nvim" {
		t.Errorf("unexpected first window: %+v", w)
	}
	if w.Workspace.Id != 2 || w.At[0] != 1280 || w.Size[1] != 1440 || w.Pid != 4242 {
		t.Errorf("unexpected first window details: %+v", w)
	}
	if w.FocusHistoryID != 1 || windows[1].FocusHistoryID != 0 {
		t.Errorf("focus history not captured: %d, %d", w.FocusHistoryID, windows[1].FocusHistoryID)
	}
}

func TestClientsInvocationFailure(t *testing.T) {
	run := &fakeRunner{outErr: errors.New("exit status 1")}
	c := newFakeClient(t, run)

	_, err := c.Clients()
	if !errors.Is(err, ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool, got %v", err)
	}
}

func TestClientsMalformedOutput(t *testing.T) {
	run := &fakeRunner{outputs: map[string]string{"clients -j": "not json at all"}}
	c := newFakeClient(t, run)

	_, err := c.Clients()
	if !errors.Is(err, ErrMalformedData) {
		t.Fatalf("expected ErrMalformedData, got %v", err)
	}
}

func TestActiveWorkspace(t *testing.T) {
	run := &fakeRunner{outputs: map[string]string{
		"activeworkspace -j": `{"id": 3, "name": "3", "monitor": "DP-1"}`,
	}}
	c := newFakeClient(t, run)

	ws, err := c.ActiveWorkspace()
	if err != nil {
		t.Fatalf("ActiveWorkspace: %v", err)
	}
	if ws.Id != 3 || ws.Name != "3" {
		t.Errorf("unexpected workspace: %+v", ws)
	}
}

func TestActiveWorkspaceMalformed(t *testing.T) {
	run := &fakeRunner{outputs: map[string]string{"activeworkspace -j": "{"}}
	c := newFakeClient(t, run)

	_, err := c.ActiveWorkspace()
	if !errors.Is(err, ErrMalformedData) {
		t.Fatalf("expected ErrMalformedData, got %v", err)
	}
}
