// Package colorstate implements the color value model behind the picker
// widgets: a single immutable state that carries a color in RGB and HSV
// coordinates at once, plus alpha, and keeps the two triples in agreement
// across edits, clamping, and hex round-trips.
package colorstate

import (
	"image/color"
	"math"
)

// State is a color held in both RGB and HSV coordinates. Red, Green, Blue,
// Alpha, Saturation, and Value are fractions in [0, 1]; Hue is degrees in
// [0, 360). Every exported operation returns a new State whose two triples
// describe the same color — callers never see them disagree.
//
// States are plain values. Share them freely; "mutation" is building a new
// value with With, ClampToBounds, or SetHex and publishing that instead.
type State struct {
	Red   float64
	Green float64
	Blue  float64
	Alpha float64

	Hue        float64
	Saturation float64
	Value      float64
}

// FromRGBA builds a State from 8-bit channels. Any input is valid.
func FromRGBA(r, g, b, a uint8) State {
	return FromFractions(float64(r)/255, float64(g)/255, float64(b)/255, float64(a)/255)
}

// FromFractions builds a State from normalized channel fractions, clamping
// each to [0, 1] and deriving the HSV triple.
func FromFractions(r, g, b, a float64) State {
	s := State{
		Red:   clamp01(r),
		Green: clamp01(g),
		Blue:  clamp01(b),
		Alpha: clamp01(a),
	}
	s.Hue, s.Saturation, s.Value = RGBToHSV(s.Red, s.Green, s.Blue, 0)
	return s
}

// Overrides names the fields to replace in a With call. A nil field keeps
// the current value. Set wraps literals for use here.
type Overrides struct {
	Red   *float64
	Green *float64
	Blue  *float64
	Alpha *float64

	Hue        *float64
	Saturation *float64
	Value      *float64
}

// Set wraps a literal for an Overrides field.
func Set(v float64) *float64 { return &v }

// With returns a copy of s with the given fields replaced and the other
// representation re-derived. An RGB-side override recomputes HSV from the
// resulting RGB triple (retaining the current hue if the result is
// achromatic); an HSV-side override recomputes RGB. When both sides are
// overridden in one call, RGB is authoritative and the HSV overrides are
// ignored. Alpha alone touches no other field. Out-of-range numbers are
// clamped, never rejected.
func (s State) With(o Overrides) State {
	n := s
	if o.Alpha != nil {
		n.Alpha = clamp01(*o.Alpha)
	}

	rgbEdit := o.Red != nil || o.Green != nil || o.Blue != nil
	hsvEdit := o.Hue != nil || o.Saturation != nil || o.Value != nil

	switch {
	case rgbEdit:
		if o.Red != nil {
			n.Red = clamp01(*o.Red)
		}
		if o.Green != nil {
			n.Green = clamp01(*o.Green)
		}
		if o.Blue != nil {
			n.Blue = clamp01(*o.Blue)
		}
		n.Hue, n.Saturation, n.Value = RGBToHSV(n.Red, n.Green, n.Blue, s.Hue)
	case hsvEdit:
		if o.Hue != nil {
			n.Hue = clampFloat(*o.Hue, 0, 359)
		}
		if o.Saturation != nil {
			n.Saturation = clamp01(*o.Saturation)
		}
		if o.Value != nil {
			n.Value = clamp01(*o.Value)
		}
		n.Red, n.Green, n.Blue = HSVToRGB(n.Hue, n.Saturation, n.Value)
	}
	return n
}

// Bounds restricts the HSV coordinates a State may take. Hue bounds are
// inclusive degrees; saturation and value bounds are inclusive percent
// (0–100), the way slider ranges express them.
type Bounds struct {
	MinHue int
	MaxHue int

	MinSaturation int
	MaxSaturation int

	MinValue int
	MaxValue int
}

// DefaultBounds is the unrestricted range: hue 0–359, saturation and
// value 0–100.
func DefaultBounds() Bounds {
	return Bounds{MinHue: 0, MaxHue: 359, MinSaturation: 0, MaxSaturation: 100, MinValue: 0, MaxValue: 100}
}

// ClampToBounds saturates the HSV triple to b and re-derives RGB from the
// clamped coordinates, so both representations stay in agreement. Clamping
// an already-clamped state is the identity.
func (s State) ClampToBounds(b Bounds) State {
	n := s
	n.Hue = clampFloat(s.Hue, float64(b.MinHue), float64(b.MaxHue))
	n.Saturation = clampFloat(s.Saturation*100, float64(b.MinSaturation), float64(b.MaxSaturation)) / 100
	n.Value = clampFloat(s.Value*100, float64(b.MinValue), float64(b.MaxValue)) / 100
	n.Red, n.Green, n.Blue = HSVToRGB(n.Hue, n.Saturation, n.Value)
	return n
}

// RGBA8 quantizes the channels to 8 bits, rounding to nearest. Feeding the
// result back through FromRGBA reproduces s within 1/255 per channel.
func (s State) RGBA8() (r, g, b, a uint8) {
	return quantize(s.Red), quantize(s.Green), quantize(s.Blue), quantize(s.Alpha)
}

// NRGBA projects the state to a non-premultiplied stdlib color.
func (s State) NRGBA() color.NRGBA {
	r, g, b, a := s.RGBA8()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

func quantize(frac float64) uint8 {
	return uint8(math.Round(clamp01(frac) * 255))
}
