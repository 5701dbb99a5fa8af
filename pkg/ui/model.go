package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tintpick/tintpick/pkg/palette"
	"github.com/tintpick/tintpick/pkg/store"
)

// paletteReloadedMsg carries a hot-reloaded palette into the update loop.
type paletteReloadedMsg struct {
	palette *palette.Palette
}

// Model is the top-level program model: the picker plus its persistence
// and palette hot-reload plumbing. Store and Watcher may be nil; the
// picker then runs without recents, favorites, or reload.
type Model struct {
	picker  PickerModel
	store   *store.Store
	watcher *palette.Watcher

	result    string
	confirmed bool
}

// NewModel builds the program model around a configured picker.
func NewModel(cfg PickerConfig, st *store.Store, w *palette.Watcher) Model {
	if st != nil && len(cfg.Recents) == 0 {
		if recents, err := st.Recents(); err == nil {
			cfg.Recents = recents
		}
	}
	return Model{
		picker:  NewPickerModel(cfg),
		store:   st,
		watcher: w,
	}
}

// Result returns the confirmed hex string, if any.
func (m Model) Result() (string, bool) {
	return m.result, m.confirmed
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.waitForReload()
}

func (m Model) waitForReload() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	updates := m.watcher.Updates()
	return func() tea.Msg {
		p, ok := <-updates
		if !ok {
			return nil
		}
		return paletteReloadedMsg{palette: p}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case paletteReloadedMsg:
		m.picker.SetPalette(msg.palette)
		return m, m.waitForReload()
	case tea.WindowSizeMsg:
		m.picker.SetSize(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if name, hex, ok := m.picker.TakeFavorite(); ok && m.store != nil {
		// Persistence failures only cost the saved favorite.
		_ = m.store.SaveFavorite(name, hex)
	}

	if m.picker.Confirmed() {
		m.result = m.picker.HexValue()
		m.confirmed = true
		if m.store != nil {
			_ = m.store.AddRecent(m.result)
		}
		return m, tea.Quit
	}
	if m.picker.Cancelled() {
		return m, tea.Quit
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	return m.picker.View()
}
