package notify

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

func (n *NotifyService) tryTerminalNotification(title string, message string, nType NotificationType) error {
	terminal := getSystemTerminal()
	if terminal == "" {
		return fmt.Errorf("no terminal found")
	}

	colorCode := "\\e[32m" // Green for info
	prefix := fmt.Sprintf("%s - %s", title, "Info")
	if nType == Error {
		colorCode = "\\e[31m" // Red for error
		prefix = fmt.Sprintf("%s - %s", title, "Error")
	}

	displayMsg := fmt.Sprintf("echo -e '%s%s:\\e[0m %s\nPress any key to continue...'",
		colorCode, prefix, message)

	var cmd *exec.Cmd
	switch terminal {
	case "gnome-terminal", "xfce4-terminal":
		cmd = exec.Command(terminal, "--", "bash", "-c", displayMsg+"; read -n 1")
	default:
		cmd = exec.Command(terminal, "-e", "bash", "-c", displayMsg+"; read -n 1")
	}

	if err := cmd.Run(); err == nil {
		if n.log != nil {
			n.log.Debug("Terminal notification sent",
				"terminal", terminal,
				"type", nType)
		}
		return nil
	}
	return fmt.Errorf("failed to show terminal notification")
}

func (n *NotifyService) writeToLogFile(title string, message string, nType NotificationType) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	typeStr := "INFO"
	if nType == Error {
		typeStr = "ERROR"
	}

	logPath := fmt.Sprintf("%s/.hypr-switch-notifications.log", homeDir)
	logMessage := fmt.Sprintf("[%s] %s - %s: %s\n",
		time.Now().Format("2006-01-02 15:04:05"),
		title,
		typeStr,
		message)

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open notification log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(logMessage); err != nil {
		return fmt.Errorf("failed to write to log file: %w", err)
	}

	if n.log != nil {
		n.log.Debug("Notification written to log file",
			"path", logPath,
			"type", nType)
	}
	return nil
}

func (n *NotifyService) printToTerminal(title string, message string, nType NotificationType) error {
	var colorCode string
	var prefix string

	switch nType {
	case Error:
		colorCode = "\x1b[31m" // Red
		prefix = fmt.Sprintf("%s - Error", title)
	case Info:
		colorCode = "\x1b[32m" // Green
		prefix = fmt.Sprintf("%s - Info", title)
	}

	fmt.Fprintf(os.Stderr, "%s%s: %s\x1b[0m\n", colorCode, prefix, message)
	return nil
}

func isRunningInTerminal() bool {
	// Check if stderr is connected to a terminal
	fileInfo, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// getSystemTerminal tries to find the user's terminal by checking common
// environment variables, then $TERM, then a list of known emulators.
func getSystemTerminal() string {
	terminalVars := []string{
		"TERMINAL",
		"TERMCMD",
		"TERMINAL_EMULATOR",
		"KONSOLE_DBUS_SESSION",
		"GNOME_TERMINAL_SCREEN",
		"ALACRITTY_LOG",
		"KITTY_WINDOW_ID",
	}

	for _, envVar := range terminalVars {
		if terminal := os.Getenv(envVar); terminal != "" {
			// Extract actual terminal name from path if needed
			termName := strings.Split(terminal, "/")
			terminal = termName[len(termName)-1]

			// Remove any arguments or parameters
			terminal = strings.Split(terminal, " ")[0]

			if _, err := exec.LookPath(terminal); err == nil {
				return terminal
			}
		}
	}

	// Check $TERM (but only if it contains an actual terminal name)
	if term := os.Getenv("TERM"); term != "" {
		termName := strings.Split(term, "-")[0]
		if _, err := exec.LookPath(termName); err == nil {
			return termName
		}
	}

	// Fallback to common terminals
	commonTerminals := []string{
		"x-terminal-emulator",
		"foot",
		"alacritty",
		"kitty",
		"wezterm",
		"gnome-terminal",
		"konsole",
		"xfce4-terminal",
		"terminator",
		"urxvt",
		"st",
		"xterm",
	}

	for _, term := range commonTerminals {
		if _, err := exec.LookPath(term); err == nil {
			return term
		}
	}

	return ""
}
