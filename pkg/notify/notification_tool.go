package notify

import (
	"fmt"
	"os/exec"
)

// notifyAppName groups our notifications under one source in the
// notification daemon's history.
const notifyAppName = "hypr-switch"

// notifyTimeoutMs keeps transient dispatch notices from lingering over
// the compositor session.
const notifyTimeoutMs = "4000"

type notificationTool struct {
	name         string
	buildCommand func(tool string, title string, message string, nType NotificationType) *exec.Cmd
}

func urgencyFor(nType NotificationType) string {
	if nType == Error {
		return "critical"
	}
	return "normal"
}

var notificationTools = []notificationTool{
	{
		name: "dunstify",
		buildCommand: func(tool string, title string, message string, nType NotificationType) *exec.Cmd {
			if nType == Error {
				title += " Error"
			}
			return exec.Command(tool,
				"-a", notifyAppName,
				"-u", urgencyFor(nType),
				"-t", notifyTimeoutMs,
				title, message)
		},
	},
	{
		name: "notify-send",
		buildCommand: func(tool string, title string, message string, nType NotificationType) *exec.Cmd {
			if nType == Error {
				title += " Error"
			}
			return exec.Command(tool,
				"-a", notifyAppName,
				"-u", urgencyFor(nType),
				"-t", notifyTimeoutMs,
				title, message)
		},
	},
	{
		name: "zenity",
		buildCommand: func(tool string, title string, message string, nType NotificationType) *exec.Cmd {
			flag := "--info"
			if nType == Error {
				flag = "--error"
			}
			return exec.Command(tool, flag, "--text", message, "--title", title)
		},
	},
}

func (n *NotifyService) trySystemNotification(title string, message string, nType NotificationType) error {
	for _, tool := range notificationTools {
		if _, err := exec.LookPath(tool.name); err == nil {
			cmd := tool.buildCommand(tool.name, title, message, nType)
			if err := cmd.Run(); err == nil {
				n.log.Debug("Notification sent successfully",
					"tool", tool.name,
					"type", nType)
				return nil
			}
		}
	}
	return fmt.Errorf("no notification tools available")
}
