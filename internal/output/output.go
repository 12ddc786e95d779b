package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"hypr-switch/internal/switcher"
)

// Format represents the output format of one-shot queries.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name from the command line.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (use text, json or yaml)", s)
	}
}

// QueryResult is the top-level shape of a one-shot query.
type QueryResult struct {
	Query           string          `json:"query"            yaml:"query"`
	Fuzzy           bool            `json:"fuzzy"            yaml:"fuzzy"`
	ActiveWorkspace int             `json:"active_workspace" yaml:"active_workspace"`
	Items           []switcher.Item `json:"items"            yaml:"items"`
}

// PrintQuery serializes res to w in the given format.
func PrintQuery(w io.Writer, format Format, res QueryResult) error {
	switch format {
	case FormatJSON:
		return printJSON(w, res)
	case FormatYAML:
		return printYAML(w, res)
	case FormatText:
		return printText(w, res)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// printJSON writes compact single-line JSON.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func printYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}

// printText writes one window per line: address, workspace, name, title.
func printText(w io.Writer, res QueryResult) error {
	for _, item := range res.Items {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			item.ID, item.Workspace, item.Text, item.Subtext); err != nil {
			return err
		}
	}
	return nil
}
