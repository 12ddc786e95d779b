package hypr

import (
	"fmt"
	"strconv"
)

// FocusWindow switches input focus to the window at addr.
func (c *Client) FocusWindow(addr string) error {
	c.log.Debug("Dispatching focus", "address", addr)
	return c.dispatch("focuswindow", "address:"+addr)
}

// MoveToWorkspace brings the window at addr to workspace ws. The focus
// dispatch goes out first, then the move as a second spawn; hyprctl has
// no atomic focus-and-move. The move is still attempted when the focus
// spawn fails, since the two processes are independent anyway.
func (c *Client) MoveToWorkspace(addr string, ws int) error {
	c.log.Debug("Dispatching move", "address", addr, "workspace", ws)
	focusErr := c.dispatch("focuswindow", "address:"+addr)
	moveErr := c.dispatch("movetoworkspace", strconv.Itoa(ws))
	if focusErr != nil {
		return focusErr
	}
	return moveErr
}

// CloseWindow asks the window at addr to close.
func (c *Client) CloseWindow(addr string) error {
	c.log.Debug("Dispatching close", "address", addr)
	return c.dispatch("closewindow", "address:"+addr)
}

// dispatch spawns a detached hyprctl dispatch invocation. Only spawn
// failures are observable; the command's own exit status never is.
func (c *Client) dispatch(args ...string) error {
	if err := c.run.Detach(append([]string{"dispatch"}, args...)...); err != nil {
		c.log.Error("Failed to spawn hyprctl dispatch", err, "args", args)
		return fmt.Errorf("%w: %v", ErrExternalTool, err)
	}
	return nil
}
