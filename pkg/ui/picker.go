package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tintpick/tintpick/pkg/colorstate"
	"github.com/tintpick/tintpick/pkg/palette"
)

type pickerFocus int

const (
	focusSliders pickerFocus = iota
	focusHex
	focusFavName
)

// Color modes select which slider group edits the color.
const (
	ModeRGB = "RGB"
	ModeHSV = "HSV"
)

// PickerConfig configures a new picker.
type PickerConfig struct {
	Start        colorstate.State
	Bounds       colorstate.Bounds
	Palette      *palette.Palette
	IncludeAlpha bool
	Recents      []string
	Theme        Theme
}

// PickerModel is the color picker control. It owns one colorstate.State;
// every slider move, hex submit, palette pick, or recents pick builds a
// new state, clamps it to the configured bounds, and publishes it. The
// RGB and HSV triples it displays therefore never disagree.
type PickerModel struct {
	theme Theme
	keys  KeyMap
	help  help.Model

	state  colorstate.State
	bounds colorstate.Bounds

	includeAlpha bool
	sliders      []Slider
	cursor       int

	hexInput textinput.Model
	lastHex  string

	favInput textinput.Model
	focus    pickerFocus

	mode      DropDownModel
	paletteDD DropDownModel
	pal       *palette.Palette
	recents   []string

	width    int
	showHelp bool
	flash    string

	confirmed bool
	cancelled bool

	favName    string
	favHex     string
	favPending bool
}

// NewPickerModel creates a picker editing cfg.Start under cfg.Bounds.
func NewPickerModel(cfg PickerConfig) PickerModel {
	theme := cfg.Theme
	if theme.Renderer == nil {
		theme = DefaultTheme(lipgloss.DefaultRenderer())
	}
	pal := cfg.Palette
	if pal == nil {
		pal = palette.Builtin()
	}

	hex := textinput.New()
	hex.Placeholder = "#RRGGBB"
	hex.Prompt = ""
	hex.CharLimit = 9
	hex.Width = 12

	fav := textinput.New()
	fav.Placeholder = "favorite name"
	fav.Prompt = "save as: "
	fav.CharLimit = 40

	m := PickerModel{
		theme:        theme,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		bounds:       cfg.Bounds,
		includeAlpha: cfg.IncludeAlpha,
		hexInput:     hex,
		favInput:     fav,
		mode:         NewDropDown("Mode", []string{ModeRGB, ModeHSV}, theme),
		paletteDD:    NewDropDown("Palette", pal.Names(), theme),
		pal:          pal,
		recents:      cfg.Recents,
		width:        80,
	}
	m.rebuildSliders()
	m.setState(cfg.Start)
	return m
}

// State returns the current color.
func (m PickerModel) State() colorstate.State { return m.state }

// HexValue returns the last valid hex rendering of the current color.
func (m PickerModel) HexValue() string { return m.lastHex }

// Confirmed reports whether the user accepted the current color.
func (m PickerModel) Confirmed() bool { return m.confirmed }

// Cancelled reports whether the user dismissed the picker.
func (m PickerModel) Cancelled() bool { return m.cancelled }

// TakeFavorite returns a pending favorite-save request and clears it.
func (m *PickerModel) TakeFavorite() (name, hex string, ok bool) {
	if !m.favPending {
		return "", "", false
	}
	m.favPending = false
	return m.favName, m.favHex, true
}

// SetPalette swaps the palette behind the palette dropdown.
func (m *PickerModel) SetPalette(p *palette.Palette) {
	m.pal = p
	m.paletteDD.SetItems(p.Names())
	m.flash = fmt.Sprintf("palette %q loaded", p.Name)
}

// SetRecents replaces the recents strip.
func (m *PickerModel) SetRecents(recents []string) { m.recents = recents }

// SetSize adjusts the layout width.
func (m *PickerModel) SetSize(width, height int) {
	m.width = width
	m.help.Width = width
}

func (m *PickerModel) rebuildSliders() {
	switch m.mode.Value() {
	case ModeHSV:
		m.sliders = hsvSliders()
	default:
		m.sliders = rgbSliders()
	}
	if m.includeAlpha {
		m.sliders = append(m.sliders, alphaSlider())
	}
	if m.cursor >= len(m.sliders) {
		m.cursor = len(m.sliders) - 1
	}
}

// setState clamps and publishes a new state, keeping the hex field text in
// step while it is not being edited.
func (m *PickerModel) setState(s colorstate.State) {
	m.state = s.ClampToBounds(m.bounds)
	m.lastHex = m.state.HexString(m.includeAlpha)
	if m.focus != focusHex {
		m.hexInput.SetValue(m.lastHex)
	}
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (PickerModel, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if isKey && m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.mode.IsOpen() {
		var cmd tea.Cmd
		m.mode, cmd = m.mode.Update(msg)
		if m.mode.Chosen() {
			m.mode.ResetChosen()
			m.cursor = 0
			m.rebuildSliders()
		}
		return m, cmd
	}
	if m.paletteDD.IsOpen() {
		var cmd tea.Cmd
		m.paletteDD, cmd = m.paletteDD.Update(msg)
		if m.paletteDD.Chosen() {
			m.paletteDD.ResetChosen()
			if c, ok := m.pal.Lookup(m.paletteDD.Value()); ok {
				// Palette entries are RGB; the current alpha survives.
				m.setState(c.With(colorstate.Overrides{Alpha: colorstate.Set(m.state.Alpha)}))
			}
		}
		return m, cmd
	}

	switch m.focus {
	case focusHex:
		return m.updateHexFocus(msg, keyMsg, isKey)
	case focusFavName:
		return m.updateFavFocus(msg, keyMsg, isKey)
	}

	if !isKey {
		return m, nil
	}
	return m.updateSliderFocus(keyMsg)
}

func (m PickerModel) updateHexFocus(msg tea.Msg, keyMsg tea.KeyMsg, isKey bool) (PickerModel, tea.Cmd) {
	if isKey {
		switch keyMsg.String() {
		case "esc":
			m.hexInput.SetValue(m.lastHex)
			m.hexInput.Blur()
			m.focus = focusSliders
			return m, nil
		case "enter":
			next, err := m.state.SetHex(m.hexInput.Value())
			if err != nil {
				// Reject the edit wholesale: text reverts to the last valid
				// hex, the color stays put.
				m.hexInput.SetValue(m.lastHex)
				m.flash = err.Error()
				return m, nil
			}
			m.hexInput.Blur()
			m.focus = focusSliders
			m.setState(next)
			m.flash = ""
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.hexInput, cmd = m.hexInput.Update(msg)
	return m, cmd
}

func (m PickerModel) updateFavFocus(msg tea.Msg, keyMsg tea.KeyMsg, isKey bool) (PickerModel, tea.Cmd) {
	if isKey {
		switch keyMsg.String() {
		case "esc":
			m.favInput.Blur()
			m.focus = focusSliders
			return m, nil
		case "enter":
			name := strings.TrimSpace(m.favInput.Value())
			if name == "" {
				m.flash = "favorite needs a name"
				return m, nil
			}
			m.favName, m.favHex, m.favPending = name, m.lastHex, true
			m.favInput.Blur()
			m.focus = focusSliders
			m.flash = fmt.Sprintf("saved %q", name)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.favInput, cmd = m.favInput.Update(msg)
	return m, cmd
}

func (m PickerModel) updateSliderFocus(keyMsg tea.KeyMsg) (PickerModel, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.keys.Cancel):
		m.cancelled = true
	case key.Matches(keyMsg, m.keys.Confirm):
		m.confirmed = true
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.sliders)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Decr):
		m.adjust(-1)
	case key.Matches(keyMsg, m.keys.Incr):
		m.adjust(1)
	case key.Matches(keyMsg, m.keys.BigDecr):
		m.adjust(-10)
	case key.Matches(keyMsg, m.keys.BigIncr):
		m.adjust(10)
	case key.Matches(keyMsg, m.keys.Hex):
		m.focus = focusHex
		m.hexInput.SetValue(m.lastHex)
		m.hexInput.CursorEnd()
		return m, m.hexInput.Focus()
	case key.Matches(keyMsg, m.keys.Copy):
		if err := clipboard.WriteAll(m.lastHex); err != nil {
			m.flash = "clipboard unavailable"
		} else {
			m.flash = m.lastHex + " copied"
		}
	case key.Matches(keyMsg, m.keys.Favorite):
		m.focus = focusFavName
		m.favInput.Reset()
		return m, m.favInput.Focus()
	case key.Matches(keyMsg, m.keys.Mode):
		return m, m.mode.Open()
	case key.Matches(keyMsg, m.keys.Palette):
		return m, m.paletteDD.Open()
	case key.Matches(keyMsg, m.keys.Help):
		m.showHelp = true
	default:
		if n := recentIndex(keyMsg.String()); n >= 0 && n < len(m.recents) {
			if s, err := m.state.SetHex(m.recents[n]); err == nil {
				m.setState(s)
			}
		}
	}
	return m, nil
}

// recentIndex maps keys 1-9 to recents positions.
func recentIndex(key string) int {
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return int(key[0] - '1')
	}
	return -1
}

func (m *PickerModel) adjust(steps int) {
	sl := m.sliders[m.cursor]
	pos := sl.Get(m.state) + float64(steps)*sl.Step
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	m.setState(sl.Apply(m.state, pos))
	m.flash = ""
}

// View implements tea.Model.
func (m PickerModel) View() string {
	if m.showHelp {
		return m.viewHelp()
	}

	var b strings.Builder

	titleStyle := m.theme.Renderer.NewStyle().Bold(true).Foreground(m.theme.Primary)
	b.WriteString(titleStyle.Render("tintpick"))
	b.WriteString("\n\n")

	b.WriteString(m.viewSwatch())
	b.WriteString("\n\n")

	b.WriteString(m.mode.View())
	b.WriteString("  ")
	b.WriteString(m.paletteDD.View())
	b.WriteString("\n")
	if fly := m.mode.ViewFlyout(); fly != "" {
		b.WriteString(fly)
		b.WriteString("\n")
	}
	if fly := m.paletteDD.ViewFlyout(); fly != "" {
		b.WriteString(fly)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	trackWidth := m.width - 24
	if trackWidth > 48 {
		trackWidth = 48
	}
	for i, sl := range m.sliders {
		focused := m.focus == focusSliders && i == m.cursor
		b.WriteString(RenderSlider(m.theme, sl, m.state, trackWidth, focused))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	hexLabel := m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext).Width(11).Render("Hex")
	b.WriteString(hexLabel + " " + m.hexInput.View())
	b.WriteString("\n")

	if m.focus == focusFavName {
		b.WriteString(m.favInput.View())
		b.WriteString("\n")
	}

	if len(m.recents) > 0 {
		b.WriteString("\n")
		b.WriteString(m.viewRecents())
		b.WriteString("\n")
	}

	if m.flash != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Renderer.NewStyle().Foreground(m.theme.Secondary).Render(m.flash))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m PickerModel) viewSwatch() string {
	hex := m.state.HexString(false)
	swatch := m.theme.Renderer.NewStyle().
		Background(lipgloss.Color(hex)).
		Width(14).
		Height(3).
		Render("")

	name := m.state.NearestName()
	if name == "" {
		name = "—"
	}
	info := fmt.Sprintf("%s\n%s", m.lastHex, name)
	infoStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Text).MarginLeft(2)

	return lipgloss.JoinHorizontal(lipgloss.Center, swatch, infoStyle.Render(info))
}

func (m PickerModel) viewRecents() string {
	labelStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext).Width(11)
	numStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Muted)

	var cells []string
	for i, hex := range m.recents {
		if i >= 9 {
			break
		}
		s, err := colorstate.ParseHex(hex)
		if err != nil {
			continue
		}
		block := m.theme.Renderer.NewStyle().
			Background(lipgloss.Color(s.HexString(false))).
			Render("  ")
		cells = append(cells, numStyle.Render(fmt.Sprintf("%d", i+1))+block)
	}
	return labelStyle.Render("Recent") + " " + strings.Join(cells, " ")
}

func (m PickerModel) viewHelp() string {
	title := m.theme.Renderer.NewStyle().Bold(true).Foreground(m.theme.Primary).Render("Keys")
	body := m.help.FullHelpView(m.keys.FullHelp())
	hint := m.theme.Renderer.NewStyle().Faint(true).Render("press any key to close")

	box := m.theme.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2)
	return box.Render(title + "\n\n" + body + "\n\n" + hint)
}
