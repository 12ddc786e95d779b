package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"hypr-switch/internal/switcher"
)

func sampleResult() QueryResult {
	return QueryResult{
		Query:           "fire",
		ActiveWorkspace: 2,
		Items: []switcher.Item{
			{
				ID:        "0xabc",
				Text:      "Firefox",
				Subtext:   "Mozilla Firefox",
				Icon:      "firefox",
				Workspace: 1,
				Actions:   []string{switcher.ActionSwitch, switcher.ActionMoveHere, switcher.ActionClose},
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"text", "json", "yaml"} {
		if _, err := ParseFormat(valid); err != nil {
			t.Errorf("ParseFormat(%q): %v", valid, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestPrintQueryJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintQuery(&buf, FormatJSON, sampleResult()); err != nil {
		t.Fatalf("PrintQuery: %v", err)
	}

	// Compact output is a single line.
	if got := strings.Count(buf.String(), "\n"); got != 1 {
		t.Errorf("expected single-line JSON, got %d newlines:\n%s", got, buf.String())
	}

	var decoded QueryResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Query != "fire" || len(decoded.Items) != 1 || decoded.Items[0].ID != "0xabc" {
		t.Errorf("round trip lost data: %+v", decoded)
	}
}

func TestPrintQueryYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintQuery(&buf, FormatYAML, sampleResult()); err != nil {
		t.Fatalf("PrintQuery: %v", err)
	}

	var decoded QueryResult
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.ActiveWorkspace != 2 || len(decoded.Items) != 1 {
		t.Errorf("round trip lost data: %+v", decoded)
	}
	if decoded.Items[0].Subtext != "Mozilla Firefox" {
		t.Errorf("subtext = %q", decoded.Items[0].Subtext)
	}
}

func TestPrintQueryText(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintQuery(&buf, FormatText, sampleResult()); err != nil {
		t.Fatalf("PrintQuery: %v", err)
	}

	line := strings.TrimRight(buf.String(), "\n")
	fields := strings.Split(line, "\t")
	if len(fields) != 4 {
		t.Fatalf("expected 4 tab fields, got %d: %q", len(fields), line)
	}
	if fields[0] != "0xabc" || fields[1] != "1" || fields[2] != "Firefox" {
		t.Errorf("unexpected text fields: %v", fields)
	}
}

func TestPrintQueryUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintQuery(&buf, Format("xml"), sampleResult()); err == nil {
		t.Error("expected error for unknown format")
	}
}
