package notify

import (
	"strings"
	"testing"
)

func toolByName(t *testing.T, name string) notificationTool {
	t.Helper()
	for _, tool := range notificationTools {
		if tool.name == name {
			return tool
		}
	}
	t.Fatalf("no tool named %s", name)
	return notificationTool{}
}

func TestDunstifyCommandCarriesAppNameAndUrgency(t *testing.T) {
	tool := toolByName(t, "dunstify")

	cmd := tool.buildCommand("dunstify", "Hypr Switch", "moved window", Info)
	args := strings.Join(cmd.Args, " ")
	for _, want := range []string{"-a " + notifyAppName, "-u normal", "-t " + notifyTimeoutMs} {
		if !strings.Contains(args, want) {
			t.Errorf("dunstify args %q missing %q", args, want)
		}
	}

	cmd = tool.buildCommand("dunstify", "Hypr Switch", "dispatch failed", Error)
	args = strings.Join(cmd.Args, " ")
	if !strings.Contains(args, "-u critical") {
		t.Errorf("error notification not critical: %q", args)
	}
	if !strings.Contains(args, "Hypr Switch Error") {
		t.Errorf("error title not marked: %q", args)
	}
}

func TestNotifySendCommandCarriesAppName(t *testing.T) {
	tool := toolByName(t, "notify-send")

	cmd := tool.buildCommand("notify-send", "Hypr Switch", "closed window", Info)
	args := strings.Join(cmd.Args, " ")
	if !strings.Contains(args, "-a "+notifyAppName) {
		t.Errorf("notify-send args %q missing app name", args)
	}
}

func TestZenityCommandUsesDialogFlags(t *testing.T) {
	tool := toolByName(t, "zenity")

	cmd := tool.buildCommand("zenity", "Hypr Switch", "oops", Error)
	args := strings.Join(cmd.Args, " ")
	if !strings.Contains(args, "--error") {
		t.Errorf("zenity error args %q missing --error", args)
	}
	if !strings.Contains(args, "--text oops") {
		t.Errorf("zenity args %q missing message", args)
	}
}
