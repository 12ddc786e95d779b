package rofi

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"hypr-switch/internal/switcher"
	"hypr-switch/pkg/global"
	"hypr-switch/pkg/logger"
)

// Config holds the configuration for the Rofi menu.
type Config struct {
	Args    []string
	Message string
}

// ActionHandler defines a function type for handling a chosen window.
type ActionHandler func(item switcher.Item) error

var (
	// Custom bindings use modifiers so plain letters keep filtering the
	// list.
	baseArgs = []string{
		"-dmenu",
		"-i",
		"-markup-rows",
		"-show-icons",
		"-kb-custom-1", "Alt+m",
		"-kb-custom-2", "Alt+x",
		"-kb-accept-entry", "Return",
		"-markup",
		"-eh", "2",
		"-p", "window",
	}

	WindowConfig = Config{
		Args:    []string{},
		Message: "Enter (switch) | Alt+M (move here) | Alt+X (close)",
	}
)

var indexRe = regexp.MustCompile(`^\[(\d+)\]`)

// WindowDisplayManager shows matched windows in a Rofi menu and routes
// the chosen action back to its handler.
type WindowDisplayManager struct {
	config        Config
	items         []switcher.Item
	switchHandler ActionHandler
	moveHandler   ActionHandler
	closeHandler  ActionHandler
	log           *logger.Logger
}

// NewWindowDisplayManager creates a new display manager.
func NewWindowDisplayManager(switchHandler, moveHandler, closeHandler ActionHandler) *WindowDisplayManager {
	log := global.GetLogger()
	log.Info("Initializing Rofi window display")

	themePath, err := global.GetConfig().GetRofiThemePath()
	if err != nil {
		log.Error("Failed to get Rofi theme path", err)
	}

	args := append(baseArgs, "-theme", themePath)
	config := Config{
		Args:    args,
		Message: WindowConfig.Message,
	}

	return &WindowDisplayManager{
		config:        config,
		switchHandler: switchHandler,
		moveHandler:   moveHandler,
		closeHandler:  closeHandler,
		log:           log,
	}
}

// FormatWindow renders one two-line row: display name, then the title,
// with the icon attached through rofi's row metadata.
func (d *WindowDisplayManager) FormatWindow(item switcher.Item, index int) string {
	return fmt.Sprintf("[%d] %s&#x0a;<i>%s</i>\x00icon\x1f%s",
		index,
		item.Text,
		item.Subtext,
		item.Icon)
}

// DisplayWindows shows the items and dispatches the chosen action.
func (d *WindowDisplayManager) DisplayWindows(items []switcher.Item) error {
	d.log.Debug("Starting DisplayWindows", "window_count", len(items))
	if len(items) == 0 {
		d.log.Warn("No windows to display")
		return fmt.Errorf("no windows to display")
	}

	d.items = items
	rows := make([]string, 0, len(items))
	for i, item := range items {
		rows = append(rows, d.FormatWindow(item, i))
	}

	args := append(d.config.Args, "-mesg", d.config.Message)
	d.log.Debug("Constructed Rofi command", "args", args)

	cmd := exec.Command("rofi", args...)
	cmd.Stdin = strings.NewReader(strings.Join(rows, "\n"))
	d.log.Info("Executing Rofi command", "command", cmd.String())

	output, err := cmd.CombinedOutput()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			d.log.Debug("Rofi exited with code", "exit_code", exitErr.ExitCode())
			return d.handleSelection(string(output), exitErr.ExitCode())
		}
		d.log.Error("Failed to run Rofi", err)
		return fmt.Errorf("failed to run rofi: %w", err)
	}

	// Exit code 0 means the entry was accepted with Return.
	return d.handleSelection(string(output), 0)
}

// handleSelection maps the Rofi exit code to the bound action handler.
func (d *WindowDisplayManager) handleSelection(selected string, exitCode int) error {
	selected = strings.TrimSpace(selected)
	if selected == "" {
		d.log.Debug("No selection made in Rofi")
		return nil
	}

	item, err := d.itemFromSelection(selected)
	if err != nil {
		return err
	}

	d.log.Debug("Processing Rofi selection", "exit_code", exitCode, "address", item.ID)
	switch exitCode {
	case 0: // Return - switch
		if d.switchHandler != nil {
			d.log.Info("Switch action triggered", "address", item.ID)
			return d.switchHandler(item)
		}
	case 10: // Alt+m - move here
		if d.moveHandler != nil {
			d.log.Info("Move action triggered", "address", item.ID)
			return d.moveHandler(item)
		}
	case 11: // Alt+x - close
		if d.closeHandler != nil {
			d.log.Info("Close action triggered", "address", item.ID)
			return d.closeHandler(item)
		}
	}
	d.log.Warn("Unhandled Rofi exit code", "exit_code", exitCode)
	return nil
}

// itemFromSelection recovers the displayed item from its index prefix.
// The index, not the text, correlates the selection back to an address:
// two windows may render identical rows.
func (d *WindowDisplayManager) itemFromSelection(selected string) (switcher.Item, error) {
	matches := indexRe.FindStringSubmatch(selected)
	if len(matches) < 2 {
		d.log.Error("Failed to extract window index",
			fmt.Errorf("invalid selected string format: %s", selected))
		return switcher.Item{}, fmt.Errorf("invalid selected string format: %s", selected)
	}

	idx, err := strconv.Atoi(matches[1])
	if err != nil || idx < 0 || idx >= len(d.items) {
		return switcher.Item{}, fmt.Errorf("selection index %s out of range", matches[1])
	}
	return d.items[idx], nil
}
