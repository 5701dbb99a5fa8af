package colorstate

import "math"

// RGBToHSV converts normalized RGB fractions to hue (degrees), saturation,
// and value. prevHue is returned as the hue whenever the input is achromatic
// (all channels equal, including pure black): hue is undefined there, and
// reusing the caller's last hue keeps a hue control from snapping to zero
// when a color desaturates to gray.
func RGBToHSV(r, g, b, prevHue float64) (h, s, v float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	v = max
	if delta == 0 || max == 0 {
		return prevHue, 0, v
	}
	s = delta / max

	switch max {
	case r:
		h = (g - b) / delta
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return h, s, v
}

// HSVToRGB converts hue (degrees), saturation, and value to normalized RGB
// fractions. It is the numeric inverse of RGBToHSV for chromatic inputs.
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}

	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	sector := h / 60
	i := math.Floor(sector)
	f := sector - i

	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch int(i) {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// clamp01 restricts a fraction to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func clampFloat(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}
