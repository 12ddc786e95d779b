package app

import (
	"fmt"
	"io"

	"hypr-switch/internal/desktop"
	"hypr-switch/internal/hypr"
	"hypr-switch/internal/ipc"
	"hypr-switch/internal/output"
	"hypr-switch/internal/rofi"
	"hypr-switch/internal/switcher"
	"hypr-switch/internal/tui"
	"hypr-switch/pkg/config"
	"hypr-switch/pkg/global"
	"hypr-switch/pkg/logger"
	"hypr-switch/pkg/notify"
)

// HyprSwitch wires the query pipeline behind every run mode of the
// binary: IPC daemon, rofi picker, terminal picker, one-shot CLI and
// MCP server.
type HyprSwitch struct {
	log      *logger.Logger
	cfg      *config.Config
	notifier *notify.NotifyService
	resolver *desktop.Resolver
	Switcher *switcher.Switcher
}

// NewHyprSwitch builds the pipeline. The hyprctl PATH check happens
// here, so a missing control tool fails startup rather than the first
// query.
func NewHyprSwitch() (*HyprSwitch, error) {
	cfg, log, notifier := global.GetAll()
	log.Info("Initializing Hypr Switch")

	client, err := hypr.New(log, cfg.GetHyprctlPath())
	if err != nil {
		notifier.Show("Hyprland control tool not found. Is hyprctl installed?", notify.Error)
		return nil, fmt.Errorf("failed to initialize compositor client: %w", err)
	}

	resolver := desktop.NewResolver(log, cfg.GetDesktopDirs())
	sw := switcher.New(log, cfg, client, resolver)

	log.Info("Hypr Switch initialized successfully")
	return &HyprSwitch{
		log:      log,
		cfg:      cfg,
		notifier: notifier,
		resolver: resolver,
		Switcher: sw,
	}, nil
}

// Run serves the IPC socket until the process exits.
func (h *HyprSwitch) Run() error {
	ipc.StartSocketServer(h.Switcher)
	return nil
}

// Stop releases the desktop entry watcher.
func (h *HyprSwitch) Stop() {
	if err := h.resolver.Close(); err != nil {
		h.log.Warn("Failed to close desktop entry resolver", "error", err)
	}
}

// ShowWindows runs a query and presents the matches in rofi. The chosen
// action dispatches against the address carried by the selected item.
func (h *HyprSwitch) ShowWindows(query string, fuzzy bool) error {
	res := h.Switcher.Query(query, fuzzy)
	items := h.Switcher.Items(res.Entries)
	if len(items) == 0 {
		h.notifier.Show("No matching windows", notify.Info)
		return nil
	}

	display := rofi.NewWindowDisplayManager(
		func(item switcher.Item) error {
			return h.notifyOnError("Switch", h.Switcher.Focus(item.ID))
		},
		func(item switcher.Item) error {
			return h.notifyOnError("Move Here", h.Switcher.MoveTo(item.ID, res.ActiveWorkspace))
		},
		func(item switcher.Item) error {
			return h.notifyOnError("Close", h.Switcher.Close(item.ID))
		},
	)
	return display.DisplayWindows(items)
}

// RunTUI presents the matches in the terminal picker.
func (h *HyprSwitch) RunTUI(fuzzy bool) error {
	return tui.Run(h.Switcher, fuzzy)
}

// PrintQuery runs a one-shot query and writes the matches to w.
func (h *HyprSwitch) PrintQuery(w io.Writer, format output.Format, query string, fuzzy bool) error {
	res := h.Switcher.Query(query, fuzzy)
	return output.PrintQuery(w, format, output.QueryResult{
		Query:           query,
		Fuzzy:           fuzzy,
		ActiveWorkspace: res.ActiveWorkspace,
		Items:           h.Switcher.Items(res.Entries),
	})
}

// Focus switches input focus to the window at addr.
func (h *HyprSwitch) Focus(addr string) error {
	return h.notifyOnError("Switch", h.Switcher.Focus(addr))
}

// MoveHere brings the window at addr to the currently active workspace.
func (h *HyprSwitch) MoveHere(addr string) error {
	return h.notifyOnError("Move Here", h.Switcher.MoveHere(addr))
}

// CloseWindow asks the window at addr to close.
func (h *HyprSwitch) CloseWindow(addr string) error {
	return h.notifyOnError("Close", h.Switcher.Close(addr))
}

// notifyOnError surfaces dispatch spawn failures as a notification.
// Failures past the spawn stay unobservable: the dispatches are
// detached and report nothing back.
func (h *HyprSwitch) notifyOnError(action string, err error) error {
	if err != nil {
		h.notifier.Show(fmt.Sprintf("%s failed: %v", action, err), notify.Error)
	}
	return err
}
