package main

import (
	"embed"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/rs/zerolog"

	"hypr-switch/internal/app"
	"hypr-switch/internal/ipc"
	"hypr-switch/internal/output"
	"hypr-switch/pkg/config"
	"hypr-switch/pkg/global"
	"hypr-switch/pkg/logger"
)

//go:embed assets/*
var embeddedAssets embed.FS

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "path to config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	query := flag.String("query", "", "run a one-shot query and print the matches")
	fuzzy := flag.Bool("fuzzy", false, "use fuzzy (subsequence) matching instead of substring")
	outputFormat := flag.String("output", "text", "one-shot output format: text, json or yaml")
	show := flag.Bool("show", false, "show matched windows in a rofi picker")
	tuiMode := flag.Bool("tui", false, "show matched windows in a terminal picker")
	mcpMode := flag.Bool("mcp", false, "serve the switcher as MCP tools on stdio")
	focusAddr := flag.String("focus", "", "focus the window at this address and exit")
	moveAddr := flag.String("move", "", "move the window at this address to the active workspace and exit")
	closeAddr := flag.String("close", "", "close the window at this address and exit")
	flag.Parse()

	// Setup logging level
	logLevel := zerolog.InfoLevel
	if *debug {
		logLevel = zerolog.DebugLevel
	}

	// Initialize logger first for early logging
	log, err := logger.NewLogger(
		logger.WithConsole(),
		logger.WithLevel(logLevel),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { log.Close() }()

	log.Info("Starting Hypr Switch",
		"version", "1.0.0",
		"pid", os.Getpid(),
		"os", runtime.GOOS,
		"arch", runtime.GOARCH,
		"debug", *debug)

	// Load configuration
	log.Debug("Loading configuration", "provided_path", *configPath)

	cfg, err := config.FindConfig(*configPath, log, embeddedAssets)
	if err != nil {
		log.Error("Failed to load configuration", err,
			"provided_path", *configPath)
		os.Exit(1)
	}
	log.Info("Configuration loaded successfully",
		"launcher_class", cfg.GetLauncherClass(),
		"socket_path", cfg.GetSocketPath(),
		"desktop_dir_count", len(cfg.GetDesktopDirs()))

	// Switch logging to the configured file, if one is set.
	if lf := cfg.GetLogFile(); lf != "" {
		fileLog, err := logger.NewLogger(
			logger.WithConsole(),
			logger.WithLevel(logLevel),
			logger.WithFile(lf),
		)
		if err != nil {
			log.Warn("Failed to open configured log file", "path", lf, "error", err)
		} else {
			log.Close()
			log = fileLog
			log.Debug("Logging to configured file", "path", lf)
		}
	}

	// Initialize globals
	log.Debug("Initializing global instances")
	global.InitGlobals(cfg, log)

	// The config default applies unless the flag was given explicitly.
	useFuzzy := cfg.GetFuzzy()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "fuzzy" {
			useFuzzy = *fuzzy
		}
	})

	switch {
	case *focusAddr != "":
		oneShotAction(log, ipc.Request{Command: "focus", Address: *focusAddr})
	case *moveAddr != "":
		oneShotAction(log, ipc.Request{Command: "move", Address: *moveAddr})
	case *closeAddr != "":
		oneShotAction(log, ipc.Request{Command: "close", Address: *closeAddr})
	case hasFlag("query"):
		format, err := output.ParseFormat(*outputFormat)
		if err != nil {
			log.Fatal("Invalid output format", err)
		}
		oneShotQuery(log, *query, useFuzzy, format)
	case *show:
		log.Info("Showing rofi window picker")
		hs := newApp(log)
		defer hs.Stop()
		if err := hs.ShowWindows(*query, useFuzzy); err != nil {
			log.Fatal("Failed to show windows", err)
		}
	case *tuiMode:
		log.Info("Showing terminal window picker")
		hs := newApp(log)
		defer hs.Stop()
		if err := hs.RunTUI(useFuzzy); err != nil {
			log.Fatal("Terminal picker failed", err)
		}
	case *mcpMode:
		log.Info("Serving MCP tools on stdio")
		hs := newApp(log)
		defer hs.Stop()
		if err := hs.RunMCP(); err != nil {
			log.Fatal("MCP server failed", err)
		}
	default:
		log.Info("Starting IPC daemon")
		hs := newApp(log)
		defer hs.Stop()
		if err := hs.Run(); err != nil {
			log.Fatal("Application error", err)
		}
	}
}

func newApp(log *logger.Logger) *app.HyprSwitch {
	hs, err := app.NewHyprSwitch()
	if err != nil {
		log.Fatal("Failed to create Hypr Switch", err)
	}
	return hs
}

// oneShotAction routes a dispatch through a running daemon when one is
// listening on the socket, so the CLI works without hyprctl on PATH as
// long as the daemon has it. Without a daemon it dispatches directly.
func oneShotAction(log *logger.Logger, req ipc.Request) {
	if resp, err := ipc.SendCommand(req); err == nil {
		if resp.Status != "success" {
			log.Fatal("Daemon rejected dispatch",
				fmt.Errorf("%s", resp.Message), "command", req.Command)
		}
		log.Info("Dispatched through daemon", "command", req.Command, "address", req.Address)
		return
	}
	log.Debug("No daemon listening, dispatching directly", "command", req.Command)

	hs := newApp(log)
	defer hs.Stop()

	var err error
	switch req.Command {
	case "focus":
		err = hs.Focus(req.Address)
	case "move":
		err = hs.MoveHere(req.Address)
	case "close":
		err = hs.CloseWindow(req.Address)
	}
	if err != nil {
		log.Fatal("Dispatch failed", err, "command", req.Command)
	}
}

// oneShotQuery prints the matches for a single query, preferring a
// running daemon's snapshot pipeline over a fresh local one.
func oneShotQuery(log *logger.Logger, query string, fuzzy bool, format output.Format) {
	resp, err := ipc.SendCommand(ipc.Request{Command: "query", Query: query, Fuzzy: &fuzzy})
	if err == nil && resp.Status == "success" {
		if err := output.PrintQuery(os.Stdout, format, output.QueryResult{
			Query:           query,
			Fuzzy:           fuzzy,
			ActiveWorkspace: resp.ActiveWorkspace,
			Items:           resp.Items,
		}); err != nil {
			log.Fatal("Failed to print query result", err)
		}
		return
	}
	log.Debug("No daemon listening, querying directly")

	hs := newApp(log)
	defer hs.Stop()
	if err := hs.PrintQuery(os.Stdout, format, query, fuzzy); err != nil {
		log.Fatal("Query failed", err)
	}
}

// hasFlag reports whether a flag was set explicitly on the command line.
// An empty -query is a valid query (it lists every window), so presence
// matters, not the value.
func hasFlag(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
