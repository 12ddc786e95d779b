package hypr

import (
	"encoding/json"
	"fmt"
	"os/exec"

	"hypr-switch/pkg/logger"
)

// runner executes the compositor control tool. Tests substitute a fake.
type runner interface {
	Output(args ...string) ([]byte, error)
	Detach(args ...string) error
}

type execRunner struct {
	path string
}

func (r *execRunner) Output(args ...string) ([]byte, error) {
	return exec.Command(r.path, args...).Output()
}

// Detach starts the command without waiting for its result. The goroutine
// reaps the process once it exits; the exit code is discarded.
func (r *execRunner) Detach(args ...string) error {
	cmd := exec.Command(r.path, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// Client talks to Hyprland through hyprctl.
type Client struct {
	log *logger.Logger
	run runner
}

// New verifies the control tool is reachable and returns a ready client.
func New(log *logger.Logger, tool string) (*Client, error) {
	if tool == "" {
		tool = "hyprctl"
	}

	path, err := exec.LookPath(tool)
	if err != nil {
		log.Error("hyprctl not found in PATH", err, "tool", tool)
		return nil, fmt.Errorf("%w: %v", ErrToolNotFound, err)
	}
	log.Debug("Found hyprctl", "path", path)

	return &Client{log: log, run: &execRunner{path: path}}, nil
}

// Clients returns every open window known to the compositor.
func (c *Client) Clients() ([]Window, error) {
	out, err := c.run.Output("clients", "-j")
	if err != nil {
		c.log.Error("Failed to execute hyprctl clients", err)
		return nil, fmt.Errorf("%w: %v", ErrExternalTool, err)
	}

	var windows []Window
	if err := json.Unmarshal(out, &windows); err != nil {
		c.log.Error("Failed to parse hyprctl clients output", err, "output", string(out))
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}

	c.log.Debug("Fetched window snapshot", "count", len(windows))
	return windows, nil
}

// ActiveWorkspace returns the workspace that currently holds focus.
func (c *Client) ActiveWorkspace() (WorkspaceRef, error) {
	out, err := c.run.Output("activeworkspace", "-j")
	if err != nil {
		c.log.Error("Failed to execute hyprctl activeworkspace", err)
		return WorkspaceRef{}, fmt.Errorf("%w: %v", ErrExternalTool, err)
	}

	var ws WorkspaceRef
	if err := json.Unmarshal(out, &ws); err != nil {
		c.log.Error("Failed to parse hyprctl activeworkspace output", err, "output", string(out))
		return WorkspaceRef{}, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}

	c.log.Debug("Fetched active workspace", "id", ws.Id, "name", ws.Name)
	return ws, nil
}
