package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the picker.
type Styles struct {
	Prompt       lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	ItemTitle    lipgloss.Style
	Workspace    lipgloss.Style
	Status       lipgloss.Style
	Help         lipgloss.Style
	Muted        lipgloss.Style
}

// DefaultStyles returns the default picker palette.
func DefaultStyles() Styles {
	accent := lipgloss.Color("#89b4fa")
	text := lipgloss.Color("#cdd6f4")
	muted := lipgloss.Color("#6c7086")
	selectedBg := lipgloss.Color("#313244")

	return Styles{
		Prompt: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		Item: lipgloss.NewStyle().
			Foreground(text).
			PaddingLeft(2),
		ItemSelected: lipgloss.NewStyle().
			Foreground(accent).
			Background(selectedBg).
			Bold(true),
		ItemTitle: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),
		Workspace: lipgloss.NewStyle().
			Foreground(muted),
		Status: lipgloss.NewStyle().
			Foreground(text).
			Background(selectedBg).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(muted),
		Muted: lipgloss.NewStyle().
			Foreground(muted),
	}
}
