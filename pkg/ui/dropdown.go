package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/sahilm/fuzzy"
)

// DropDownModel is a button that opens into a flyout list. Closed, it
// renders a button face showing the selected item; open, it shows a
// filterable list. Typing narrows the items with fuzzy matching, enter
// picks the highlighted item, esc dismisses the flyout without changing
// the selection.
type DropDownModel struct {
	label    string
	items    []string
	filtered []int

	filter textinput.Model
	theme  Theme

	open     bool
	cursor   int
	selected int
	chosen   bool

	maxVisible int
	faceWidth  int
}

// NewDropDown creates a dropdown over the given items with the first one
// selected.
func NewDropDown(label string, items []string, theme Theme) DropDownModel {
	ti := textinput.New()
	ti.Placeholder = "filter..."
	ti.Prompt = "/ "
	ti.CharLimit = 40

	m := DropDownModel{
		label:      label,
		items:      items,
		filter:     ti,
		theme:      theme,
		maxVisible: 8,
		faceWidth:  18,
	}
	m.refilter()
	return m
}

// SetItems replaces the item list, keeping the selection when the current
// value survives the swap.
func (m *DropDownModel) SetItems(items []string) {
	current := m.Value()
	m.items = items
	m.selected = 0
	for i, it := range items {
		if it == current {
			m.selected = i
			break
		}
	}
	m.cursor = 0
	m.filter.Reset()
	m.refilter()
}

// Open shows the flyout with the filter cleared.
func (m *DropDownModel) Open() tea.Cmd {
	m.open = true
	m.chosen = false
	m.cursor = 0
	m.filter.Reset()
	m.refilter()
	m.filter.Focus()
	return textinput.Blink
}

// Close dismisses the flyout without changing the selection.
func (m *DropDownModel) Close() {
	m.open = false
	m.filter.Blur()
}

// IsOpen reports whether the flyout is showing.
func (m DropDownModel) IsOpen() bool { return m.open }

// Selected returns the index of the selected item.
func (m DropDownModel) Selected() int { return m.selected }

// Value returns the selected item, or "" for an empty dropdown.
func (m DropDownModel) Value() string {
	if m.selected < 0 || m.selected >= len(m.items) {
		return ""
	}
	return m.items[m.selected]
}

// Chosen reports whether the last Update took a selection.
func (m DropDownModel) Chosen() bool { return m.chosen }

// ResetChosen clears the chosen flag after the owner has consumed it.
func (m *DropDownModel) ResetChosen() { m.chosen = false }

// Update handles input while the flyout is open.
func (m DropDownModel) Update(msg tea.Msg) (DropDownModel, tea.Cmd) {
	if !m.open {
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.Close()
			return m, nil
		case "enter":
			if len(m.filtered) > 0 {
				m.selected = m.filtered[m.cursor]
				m.chosen = true
			}
			m.Close()
			return m, nil
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.refilter()
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
	return m, cmd
}

func (m *DropDownModel) refilter() {
	query := strings.TrimSpace(m.filter.Value())
	if query == "" {
		m.filtered = make([]int, len(m.items))
		for i := range m.items {
			m.filtered[i] = i
		}
		return
	}

	matches := fuzzy.Find(query, m.items)
	m.filtered = make([]int, 0, len(matches))
	for _, match := range matches {
		m.filtered = append(m.filtered, match.Index)
	}
}

// View renders the closed button face.
func (m DropDownModel) View() string {
	labelStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext)
	faceStyle := m.theme.Renderer.NewStyle().
		Foreground(m.theme.Text).
		Background(m.theme.BgSubtle).
		Padding(0, 1)
	if m.open {
		faceStyle = faceStyle.Foreground(m.theme.Primary)
	}

	face := truncate.StringWithTail(m.Value(), uint(m.faceWidth), "…")
	pad := m.faceWidth - runewidth.StringWidth(face)
	if pad > 0 {
		face += strings.Repeat(" ", pad)
	}
	return labelStyle.Render(m.label+": ") + faceStyle.Render(face+" ▾")
}

// ViewFlyout renders the open list under the button face.
func (m DropDownModel) ViewFlyout() string {
	if !m.open {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.filter.View())
	b.WriteString("\n")

	itemStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext)
	cursorStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Primary).Bold(true)

	if len(m.filtered) == 0 {
		b.WriteString(m.theme.Renderer.NewStyle().Foreground(m.theme.Muted).Italic(true).Render("no matches"))
	}

	start := 0
	if m.cursor >= m.maxVisible {
		start = m.cursor - m.maxVisible + 1
	}
	end := start + m.maxVisible
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	for i := start; i < end; i++ {
		name := truncate.StringWithTail(m.items[m.filtered[i]], uint(m.faceWidth+4), "…")
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("› " + name))
		} else {
			b.WriteString(itemStyle.Render("  " + name))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	boxStyle := m.theme.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.FocusedBorder).
		Padding(0, 1)
	return boxStyle.Render(b.String())
}
