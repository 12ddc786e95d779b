package app

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"hypr-switch/internal/switcher"
	"hypr-switch/pkg/logger"
)

// mcpSurface exposes the switcher pipeline as MCP tools over stdio, so
// LLM hosts can query and drive windows through the same path every
// other surface uses.
type mcpSurface struct {
	log *logger.Logger
	sw  *switcher.Switcher
	mcp *mcpserver.MCPServer
}

// RunMCP serves the MCP tools on stdio until the host disconnects.
func (h *HyprSwitch) RunMCP() error {
	s := &mcpSurface{
		log: h.log,
		sw:  h.Switcher,
		mcp: mcpserver.NewMCPServer("hypr-switch", "1.0.0"),
	}
	s.registerTools()
	return mcpserver.ServeStdio(s.mcp)
}

func (s *mcpSurface) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("list_windows",
			mcp.WithDescription("List open Hyprland windows matching a query, most recently focused first. An empty query lists every window."),
			mcp.WithString("query", mcp.Description("Text matched against class, title and application name")),
			mcp.WithBoolean("fuzzy", mcp.Description("Use fuzzy (subsequence) matching instead of substring")),
		),
		s.handleListWindows,
	)

	s.mcp.AddTool(
		mcp.NewTool("focus_window",
			mcp.WithDescription("Switch input focus to the window with the given address"),
			mcp.WithString("address", mcp.Required(), mcp.Description("Window address from list_windows")),
		),
		s.handleFocusWindow,
	)

	s.mcp.AddTool(
		mcp.NewTool("move_window",
			mcp.WithDescription("Move the window with the given address to a workspace. Without a workspace it moves to the currently active one."),
			mcp.WithString("address", mcp.Required(), mcp.Description("Window address from list_windows")),
			mcp.WithNumber("workspace", mcp.Description("Target workspace id (omit for the active workspace)")),
		),
		s.handleMoveWindow,
	)

	s.mcp.AddTool(
		mcp.NewTool("close_window",
			mcp.WithDescription("Ask the window with the given address to close"),
			mcp.WithString("address", mcp.Required(), mcp.Description("Window address from list_windows")),
		),
		s.handleCloseWindow,
	)
}

func (s *mcpSurface) handleListWindows(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := request.GetString("query", "")
	fuzzy := request.GetBool("fuzzy", s.sw.DefaultFuzzy())
	s.log.Debug("MCP list_windows", "query", query, "fuzzy", fuzzy)

	res := s.sw.Query(query, fuzzy)
	payload := struct {
		ActiveWorkspace int             `json:"active_workspace"`
		Windows         []switcher.Item `json:"windows"`
	}{
		ActiveWorkspace: res.ActiveWorkspace,
		Windows:         s.sw.Items(res.Entries),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("failed to encode windows", err), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *mcpSurface) handleFocusWindow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	addr, err := request.RequireString("address")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.log.Debug("MCP focus_window", "address", addr)

	if err := s.sw.Focus(addr); err != nil {
		return mcp.NewToolResultErrorFromErr("focus dispatch failed", err), nil
	}
	return mcp.NewToolResultText("focused " + addr), nil
}

func (s *mcpSurface) handleMoveWindow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	addr, err := request.RequireString("address")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ws := request.GetInt("workspace", 0)
	s.log.Debug("MCP move_window", "address", addr, "workspace", ws)

	if ws != 0 {
		err = s.sw.MoveTo(addr, ws)
	} else {
		err = s.sw.MoveHere(addr)
	}
	if err != nil {
		return mcp.NewToolResultErrorFromErr("move dispatch failed", err), nil
	}
	return mcp.NewToolResultText("moved " + addr), nil
}

func (s *mcpSurface) handleCloseWindow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	addr, err := request.RequireString("address")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.log.Debug("MCP close_window", "address", addr)

	if err := s.sw.Close(addr); err != nil {
		return mcp.NewToolResultErrorFromErr("close dispatch failed", err), nil
	}
	return mcp.NewToolResultText("closed " + addr), nil
}
