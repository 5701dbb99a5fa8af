package colorstate

import (
	"fmt"
	"strings"
)

// ParseError reports a malformed hex color string. It is the only error
// the package produces; every other operation is total.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse hex color %q: %s", e.Input, e.Reason)
}

// ParseHex builds a State from a hex string. The leading '#' is optional;
// 6 digits are RRGGBB with alpha 1.0, 8 digits are AARRGGBB with the alpha
// byte first.
func ParseHex(text string) (State, error) {
	return State{Alpha: 1}.SetHex(text)
}

// SetHex returns a copy of s holding the color parsed from text. The
// 8-digit form carries alpha in its first byte; the 6-digit form keeps the
// receiver's alpha. HSV is re-derived from the parsed RGB, retaining the
// receiver's hue if the parsed color is achromatic. On any parse failure
// the receiver is returned unchanged alongside a *ParseError.
func (s State) SetHex(text string) (State, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(text), "#")

	var alpha byte
	var rgb string
	switch len(digits) {
	case 6:
		rgb = digits
		alpha = quantize(s.Alpha)
	case 8:
		b, err := hexByte(text, digits[0:2])
		if err != nil {
			return s, err
		}
		alpha = b
		rgb = digits[2:]
	default:
		return s, &ParseError{Input: text, Reason: fmt.Sprintf("want 6 or 8 hex digits, got %d", len(digits))}
	}

	r, err := hexByte(text, rgb[0:2])
	if err != nil {
		return s, err
	}
	g, err := hexByte(text, rgb[2:4])
	if err != nil {
		return s, err
	}
	b, err := hexByte(text, rgb[4:6])
	if err != nil {
		return s, err
	}

	n := s
	n.Red = float64(r) / 255
	n.Green = float64(g) / 255
	n.Blue = float64(b) / 255
	n.Alpha = float64(alpha) / 255
	n.Hue, n.Saturation, n.Value = RGBToHSV(n.Red, n.Green, n.Blue, s.Hue)
	return n, nil
}

// HexString formats the quantized channels as "#RRGGBB", or "#AARRGGBB"
// with the alpha byte first. Digits are uppercase. The result parses back
// through SetHex to the same quantized channels.
func (s State) HexString(withAlpha bool) string {
	r, g, b, a := s.RGBA8()
	if withAlpha {
		return fmt.Sprintf("#%02X%02X%02X%02X", a, r, g, b)
	}
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func hexByte(input, pair string) (byte, error) {
	hi, ok := hexNibble(pair[0])
	if !ok {
		return 0, &ParseError{Input: input, Reason: fmt.Sprintf("invalid hex digit %q", pair[0])}
	}
	lo, ok := hexNibble(pair[1])
	if !ok {
		return 0, &ParseError{Input: input, Reason: fmt.Sprintf("invalid hex digit %q", pair[1])}
	}
	return hi<<4 | lo, nil
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
