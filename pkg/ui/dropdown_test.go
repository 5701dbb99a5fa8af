package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// keyMsg creates a tea.KeyMsg for testing
func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "shift+left":
		return tea.KeyMsg{Type: tea.KeyShiftLeft}
	case "shift+right":
		return tea.KeyMsg{Type: tea.KeyShiftRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func testTheme() Theme {
	return DefaultTheme(lipgloss.DefaultRenderer())
}

func TestDropDownSelectByCursor(t *testing.T) {
	dd := NewDropDown("Mode", []string{"RGB", "HSV"}, testTheme())
	dd.Open()

	dd, _ = dd.Update(keyMsg("down"))
	dd, _ = dd.Update(keyMsg("enter"))

	if !dd.Chosen() {
		t.Fatal("selection not flagged as chosen")
	}
	if dd.Value() != "HSV" {
		t.Errorf("Value = %q, want HSV", dd.Value())
	}
	if dd.IsOpen() {
		t.Error("flyout still open after selection")
	}
}

func TestDropDownFilterNarrowsItems(t *testing.T) {
	dd := NewDropDown("Palette", []string{"Red", "Green", "Blue"}, testTheme())
	dd.Open()

	dd, _ = dd.Update(keyMsg("g"))
	dd, _ = dd.Update(keyMsg("r"))

	if len(dd.filtered) != 1 {
		t.Fatalf("filter left %d items, want 1", len(dd.filtered))
	}

	dd, _ = dd.Update(keyMsg("enter"))
	if dd.Value() != "Green" {
		t.Errorf("Value = %q, want Green", dd.Value())
	}
}

func TestDropDownEscKeepsSelection(t *testing.T) {
	dd := NewDropDown("Mode", []string{"RGB", "HSV"}, testTheme())
	dd.Open()

	dd, _ = dd.Update(keyMsg("down"))
	dd, _ = dd.Update(keyMsg("esc"))

	if dd.Chosen() {
		t.Error("esc flagged a choice")
	}
	if dd.Value() != "RGB" {
		t.Errorf("Value = %q, want RGB unchanged", dd.Value())
	}
	if dd.IsOpen() {
		t.Error("flyout still open after esc")
	}
}

func TestDropDownEnterWithNoMatchesKeepsSelection(t *testing.T) {
	dd := NewDropDown("Palette", []string{"Red", "Green"}, testTheme())
	dd.Open()

	dd, _ = dd.Update(keyMsg("z"))
	dd, _ = dd.Update(keyMsg("z"))
	dd, _ = dd.Update(keyMsg("enter"))

	if dd.Chosen() {
		t.Error("enter on empty filter flagged a choice")
	}
	if dd.Value() != "Red" {
		t.Errorf("Value = %q, want Red unchanged", dd.Value())
	}
}

func TestDropDownSetItemsKeepsSurvivingValue(t *testing.T) {
	dd := NewDropDown("Palette", []string{"Red", "Green", "Blue"}, testTheme())
	dd.Open()
	dd, _ = dd.Update(keyMsg("down"))
	dd, _ = dd.Update(keyMsg("enter"))

	dd.SetItems([]string{"Cyan", "Green"})
	if dd.Value() != "Green" {
		t.Errorf("Value = %q, want Green to survive the swap", dd.Value())
	}

	dd.SetItems([]string{"Cyan", "Teal"})
	if dd.Value() != "Cyan" {
		t.Errorf("Value = %q, want reset to first item", dd.Value())
	}
}

func TestDropDownIgnoresInputWhileClosed(t *testing.T) {
	dd := NewDropDown("Mode", []string{"RGB", "HSV"}, testTheme())
	dd, _ = dd.Update(keyMsg("down"))
	dd, _ = dd.Update(keyMsg("enter"))
	if dd.Chosen() || dd.Value() != "RGB" {
		t.Errorf("closed dropdown reacted to input: chosen=%v value=%q", dd.Chosen(), dd.Value())
	}
}
