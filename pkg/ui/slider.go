package ui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/tintpick/tintpick/pkg/colorstate"
)

// Slider is one adjustable channel row of the picker. Get reports the
// handle position as a fraction of the track, Apply writes the fraction
// back into a state, and At gives the color shown at a given track
// position so the track renders as a live gradient of what each position
// would produce.
type Slider struct {
	Label  string
	Step   float64
	Get    func(colorstate.State) float64
	Apply  func(colorstate.State, float64) colorstate.State
	At     func(colorstate.State, float64) colorstate.State
	Format func(colorstate.State) string
}

// channel step: one 8-bit count; hue step: one degree.
const (
	byteStep = 1.0 / 255
	hueStep  = 1.0 / 359
	pctStep  = 0.01
)

func rgbSliders() []Slider {
	return []Slider{
		{
			Label: "Red",
			Step:  byteStep,
			Get:   func(s colorstate.State) float64 { return s.Red },
			Apply: func(s colorstate.State, v float64) colorstate.State {
				return s.With(colorstate.Overrides{Red: colorstate.Set(v)})
			},
			At: func(s colorstate.State, t float64) colorstate.State {
				return s.With(colorstate.Overrides{Red: colorstate.Set(t)})
			},
			Format: func(s colorstate.State) string { r, _, _, _ := s.RGBA8(); return fmt.Sprintf("%3d", r) },
		},
		{
			Label: "Green",
			Step:  byteStep,
			Get:   func(s colorstate.State) float64 { return s.Green },
			Apply: func(s colorstate.State, v float64) colorstate.State {
				return s.With(colorstate.Overrides{Green: colorstate.Set(v)})
			},
			At: func(s colorstate.State, t float64) colorstate.State {
				return s.With(colorstate.Overrides{Green: colorstate.Set(t)})
			},
			Format: func(s colorstate.State) string { _, g, _, _ := s.RGBA8(); return fmt.Sprintf("%3d", g) },
		},
		{
			Label: "Blue",
			Step:  byteStep,
			Get:   func(s colorstate.State) float64 { return s.Blue },
			Apply: func(s colorstate.State, v float64) colorstate.State {
				return s.With(colorstate.Overrides{Blue: colorstate.Set(v)})
			},
			At: func(s colorstate.State, t float64) colorstate.State {
				return s.With(colorstate.Overrides{Blue: colorstate.Set(t)})
			},
			Format: func(s colorstate.State) string { _, _, b, _ := s.RGBA8(); return fmt.Sprintf("%3d", b) },
		},
	}
}

func hsvSliders() []Slider {
	return []Slider{
		{
			Label: "Hue",
			Step:  hueStep,
			Get:   func(s colorstate.State) float64 { return s.Hue / 359 },
			Apply: func(s colorstate.State, v float64) colorstate.State {
				return s.With(colorstate.Overrides{Hue: colorstate.Set(v * 359)})
			},
			At: func(s colorstate.State, t float64) colorstate.State {
				// Full-strength hue ramp reads better than one scaled by the
				// current saturation/value.
				full := colorstate.FromFractions(1, 0, 0, 1)
				return full.With(colorstate.Overrides{Hue: colorstate.Set(t * 359)})
			},
			Format: func(s colorstate.State) string { return fmt.Sprintf("%3.0f°", s.Hue) },
		},
		{
			Label: "Saturation",
			Step:  pctStep,
			Get:   func(s colorstate.State) float64 { return s.Saturation },
			Apply: func(s colorstate.State, v float64) colorstate.State {
				return s.With(colorstate.Overrides{Saturation: colorstate.Set(v)})
			},
			At: func(s colorstate.State, t float64) colorstate.State {
				return s.With(colorstate.Overrides{Saturation: colorstate.Set(t)})
			},
			Format: func(s colorstate.State) string { return fmt.Sprintf("%3.0f%%", s.Saturation*100) },
		},
		{
			Label: "Value",
			Step:  pctStep,
			Get:   func(s colorstate.State) float64 { return s.Value },
			Apply: func(s colorstate.State, v float64) colorstate.State {
				return s.With(colorstate.Overrides{Value: colorstate.Set(v)})
			},
			At: func(s colorstate.State, t float64) colorstate.State {
				return s.With(colorstate.Overrides{Value: colorstate.Set(t)})
			},
			Format: func(s colorstate.State) string { return fmt.Sprintf("%3.0f%%", s.Value*100) },
		},
	}
}

func alphaSlider() Slider {
	return Slider{
		Label: "Alpha",
		Step:  byteStep,
		Get:   func(s colorstate.State) float64 { return s.Alpha },
		Apply: func(s colorstate.State, v float64) colorstate.State {
			return s.With(colorstate.Overrides{Alpha: colorstate.Set(v)})
		},
		At: func(s colorstate.State, t float64) colorstate.State {
			// Fade toward black to suggest transparency on a dark terminal.
			return colorstate.FromFractions(s.Red*t, s.Green*t, s.Blue*t, 1)
		},
		Format: func(s colorstate.State) string { _, _, _, a := s.RGBA8(); return fmt.Sprintf("%3d", a) },
	}
}

// RenderSlider draws one slider row: label, gradient track with handle,
// and the formatted channel value.
func RenderSlider(t Theme, sl Slider, s colorstate.State, trackWidth int, focused bool) string {
	if trackWidth < 2 {
		trackWidth = 2
	}

	labelColor := t.Subtext
	handleColor := t.Text
	if focused {
		labelColor = t.Primary
		handleColor = t.Primary
	}
	labelStyle := t.Renderer.NewStyle().Foreground(labelColor).Width(11)
	valueStyle := t.Renderer.NewStyle().Foreground(t.Subtext)

	handle := int(math.Round(sl.Get(s) * float64(trackWidth-1)))

	track := make([]string, 0, trackWidth)
	for i := 0; i < trackWidth; i++ {
		at := sl.At(s, float64(i)/float64(trackWidth-1))
		bg := lipgloss.Color(at.HexString(false))
		cell := t.Renderer.NewStyle().Background(bg)
		if i == handle {
			track = append(track, cell.Foreground(handleColor).Render("┃"))
		} else {
			track = append(track, cell.Render(" "))
		}
	}

	row := labelStyle.Render(sl.Label) + " "
	for _, c := range track {
		row += c
	}
	return row + " " + valueStyle.Render(sl.Format(s))
}
