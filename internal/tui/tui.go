package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"hypr-switch/internal/switcher"
)

// Model is the terminal window picker. Typing narrows the list through
// the same query pipeline the other surfaces use; actions dispatch
// against the selected window's address.
type Model struct {
	sw     *switcher.Switcher
	input  textinput.Model
	keys   keyMap
	styles Styles

	fuzzy           bool
	items           []switcher.Item
	activeWorkspace int
	cursor          int
	status          string

	width  int
	height int
}

// New builds the picker model and runs the initial (empty) query.
func New(sw *switcher.Switcher, fuzzy bool) *Model {
	ti := textinput.New()
	ti.Placeholder = switcher.TriggerSynopsis
	ti.Prompt = "> "
	ti.Focus()

	m := &Model{
		sw:     sw,
		input:  ti,
		keys:   defaultKeyMap,
		styles: DefaultStyles(),
		fuzzy:  fuzzy,
	}
	m.refresh()
	return m
}

// Run shows the picker until an action or quit.
func Run(sw *switcher.Switcher, fuzzy bool) error {
	p := tea.NewProgram(New(sw, fuzzy), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// refresh re-runs the query and clamps the cursor into the new list.
func (m *Model) refresh() {
	res := m.sw.Query(m.input.Value(), m.fuzzy)
	m.items = m.sw.Items(res.Entries)
	m.activeWorkspace = res.ActiveWorkspace
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selected returns the item under the cursor, if any.
func (m *Model) selected() (switcher.Item, bool) {
	if len(m.items) == 0 {
		return switcher.Item{}, false
	}
	return m.items[m.cursor], true
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Switch):
			if item, ok := m.selected(); ok {
				if err := m.sw.Focus(item.ID); err != nil {
					m.status = fmt.Sprintf("switch failed: %v", err)
					return m, nil
				}
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Move):
			if item, ok := m.selected(); ok {
				if err := m.sw.MoveTo(item.ID, m.activeWorkspace); err != nil {
					m.status = fmt.Sprintf("move failed: %v", err)
				} else {
					m.status = fmt.Sprintf("moved %s to workspace %d", item.Text, m.activeWorkspace)
				}
				m.refresh()
			}
			return m, nil

		case key.Matches(msg, m.keys.Close):
			if item, ok := m.selected(); ok {
				if err := m.sw.Close(item.ID); err != nil {
					m.status = fmt.Sprintf("close failed: %v", err)
				} else {
					m.status = fmt.Sprintf("closed %s", item.Text)
				}
				m.refresh()
			}
			return m, nil

		case key.Matches(msg, m.keys.Yank):
			if item, ok := m.selected(); ok {
				if err := clipboard.WriteAll(item.ID); err != nil {
					m.status = fmt.Sprintf("yank failed: %v", err)
				} else {
					m.status = fmt.Sprintf("yanked %s", item.ID)
				}
			}
			return m, nil

		case key.Matches(msg, m.keys.Fuzzy):
			m.fuzzy = !m.fuzzy
			m.refresh()
			return m, nil
		}

		// Everything else edits the query.
		var cmd tea.Cmd
		before := m.input.Value()
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			m.cursor = 0
			m.refresh()
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	mode := "substring"
	if m.fuzzy {
		mode = "fuzzy"
	}
	b.WriteString(m.styles.Prompt.Render("windows") +
		m.styles.Muted.Render(fmt.Sprintf(" (%s, %d matched)", mode, len(m.items))))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(m.styles.Muted.Render("  no matching windows"))
		b.WriteString("\n")
	}

	for i, item := range m.items {
		line := fmt.Sprintf("%s %s %s",
			item.Text,
			m.styles.ItemTitle.Render(item.Subtext),
			m.styles.Workspace.Render(fmt.Sprintf("[ws %d]", item.Workspace)))
		if i == m.cursor {
			b.WriteString(m.styles.ItemSelected.Render("> " + line))
		} else {
			b.WriteString(m.styles.Item.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render(
		"enter switch · alt+m move here · alt+x close · alt+y yank · alt+f fuzzy · esc quit"))
	return b.String()
}
