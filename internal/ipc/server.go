package ipc

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"hypr-switch/internal/switcher"
	"hypr-switch/pkg/global"
	"hypr-switch/pkg/logger"
)

type Request struct {
	Command string `json:"command"`
	Query   string `json:"query,omitempty"`
	Fuzzy   *bool  `json:"fuzzy,omitempty"`
	Address string `json:"address,omitempty"`
	// Workspace is the move target. Zero means unset: regular
	// workspaces start at 1, special workspaces are negative.
	Workspace int `json:"workspace,omitempty"`
}

type Response struct {
	Status          string          `json:"status"`
	Message         string          `json:"message"`
	Items           []switcher.Item `json:"items,omitempty"`
	ActiveWorkspace int             `json:"active_workspace,omitempty"`
	TriggerPrefix   string          `json:"trigger_prefix,omitempty"`
	Synopsis        string          `json:"synopsis,omitempty"`
}

func StartSocketServer(sw *switcher.Switcher) {
	log := global.GetLogger()
	socketPath := global.GetConfig().GetSocketPath()

	// Remove the socket file if it already exists
	if err := os.Remove(socketPath); err != nil && !os.IsNotExist(err) {
		log.Error("Failed to remove existing socket file", err)
		return
	}

	// Create the directory for the socket file
	dir := filepath.Dir(socketPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatal("Failed to create socket directory", err)
	}

	// Listen on the Unix domain socket
	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		log.Fatal("Failed to start socket server", err)
	}
	defer listener.Close()

	log.Info("Socket server started", "path", socketPath)

	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Error("Failed to accept connection", err)
			continue
		}

		log.Debug("New connection accepted", "remote_addr", conn.RemoteAddr())

		go handleConnection(conn, log, sw)
	}
}

func handleConnection(conn net.Conn, log *logger.Logger, sw *switcher.Switcher) {
	defer conn.Close()

	var req Request
	decoder := json.NewDecoder(conn)
	if err := decoder.Decode(&req); err != nil {
		log.Error("Failed to decode request", err)
		return
	}

	log.Info("Received request", "command", req.Command)

	resp := handleRequest(log, sw, req)

	encoder := json.NewEncoder(conn)
	if err := encoder.Encode(resp); err != nil {
		log.Error("Failed to encode response", err)
	} else {
		log.Debug("Response sent successfully", "status", resp.Status)
	}
}

func handleRequest(log *logger.Logger, sw *switcher.Switcher, req Request) Response {
	switch req.Command {
	case "query":
		log.Debug("Handling query request", "query", req.Query)
		fuzzy := sw.DefaultFuzzy()
		if req.Fuzzy != nil {
			fuzzy = *req.Fuzzy
		}
		res := sw.Query(req.Query, fuzzy)
		return Response{
			Status:          "success",
			Message:         fmt.Sprintf("%d windows matched", len(res.Entries)),
			Items:           sw.Items(res.Entries),
			ActiveWorkspace: res.ActiveWorkspace,
		}
	case "focus":
		log.Debug("Handling focus request", "address", req.Address)
		if req.Address == "" {
			return Response{Status: "error", Message: "Missing window address"}
		}
		if err := sw.Focus(req.Address); err != nil {
			log.Error("Focus command failed", err)
			return Response{Status: "error", Message: err.Error()}
		}
		return Response{Status: "success", Message: "Window focused"}
	case "move":
		log.Debug("Handling move request", "address", req.Address, "workspace", req.Workspace)
		if req.Address == "" {
			return Response{Status: "error", Message: "Missing window address"}
		}
		var err error
		if req.Workspace != 0 {
			err = sw.MoveTo(req.Address, req.Workspace)
		} else {
			err = sw.MoveHere(req.Address)
		}
		if err != nil {
			log.Error("Move command failed", err)
			return Response{Status: "error", Message: err.Error()}
		}
		return Response{Status: "success", Message: "Window moved to active workspace"}
	case "close":
		log.Debug("Handling close request", "address", req.Address)
		if req.Address == "" {
			return Response{Status: "error", Message: "Missing window address"}
		}
		if err := sw.Close(req.Address); err != nil {
			log.Error("Close command failed", err)
			return Response{Status: "error", Message: err.Error()}
		}
		return Response{Status: "success", Message: "Window closed"}
	case "describe":
		log.Debug("Handling describe request")
		meta := sw.Metadata()
		return Response{
			Status:        "success",
			Message:       "Window switcher",
			TriggerPrefix: meta.TriggerPrefix,
			Synopsis:      meta.Synopsis,
		}
	case "ping":
		return Response{Status: "success", Message: "pong"}
	default:
		log.Error("Unknown command received", fmt.Errorf("command: %s", req.Command))
		return Response{Status: "error", Message: "Unknown command"}
	}
}
