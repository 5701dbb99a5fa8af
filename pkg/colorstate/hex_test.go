package colorstate

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestHexRoundTrip(t *testing.T) {
	bytes := []uint8{0, 1, 17, 127, 128, 200, 254, 255}
	for _, r := range bytes {
		for _, g := range bytes {
			a := 255 - g
			b := 255 - r
			s := FromRGBA(r, g, b, a)

			back, err := State{}.SetHex(s.HexString(true))
			if err != nil {
				t.Fatalf("SetHex(%q): %v", s.HexString(true), err)
			}
			br, bg, bb, ba := back.RGBA8()
			if br != r || bg != g || bb != b || ba != a {
				t.Fatalf("round trip (%d,%d,%d,%d) came back as (%d,%d,%d,%d)",
					r, g, b, a, br, bg, bb, ba)
			}
		}
	}
}

func TestHexStringFormats(t *testing.T) {
	s := FromRGBA(255, 170, 0, 128)
	if got := s.HexString(false); got != "#FFAA00" {
		t.Errorf("HexString(false) = %q, want #FFAA00", got)
	}
	if got := s.HexString(true); got != "#80FFAA00" {
		t.Errorf("HexString(true) = %q, want #80FFAA00", got)
	}
}

func TestSetHexInvalidLeavesStateUnchanged(t *testing.T) {
	orig := FromRGBA(12, 34, 56, 78)

	for _, bad := range []string{
		"#12345",  // 5 digits
		"#ZZZZZZ", // not hex
		"",
		"#",
		"#FFF", // shorthand unsupported
		"#FFAA0001x",
		"#GG0000",
		"#80FF00ZZ",
	} {
		got, err := orig.SetHex(bad)
		if err == nil {
			t.Errorf("SetHex(%q): expected error", bad)
			continue
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("SetHex(%q): error %T is not *ParseError", bad, err)
		}
		if got != orig {
			t.Errorf("SetHex(%q) changed the state: %+v", bad, got)
		}
	}
}

func TestSetHexSixDigitsPreservesAlpha(t *testing.T) {
	s := FromRGBA(0, 0, 0, 99)
	n, err := s.SetHex("#00FF00")
	if err != nil {
		t.Fatal(err)
	}
	if n.Alpha != s.Alpha {
		t.Errorf("6-digit SetHex moved alpha from %v to %v", s.Alpha, n.Alpha)
	}
	if n.Green != 1 || n.Red != 0 || n.Blue != 0 {
		t.Errorf("parsed RGB (%v,%v,%v)", n.Red, n.Green, n.Blue)
	}
}

func TestSetHexEightDigitsTakesAlphaFromFirstByte(t *testing.T) {
	s, err := State{}.SetHex("#80FF0000")
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(s.Alpha, 128.0/255, 1e-12) {
		t.Errorf("alpha = %v, want 128/255", s.Alpha)
	}
	if s.Red != 1 || s.Green != 0 || s.Blue != 0 {
		t.Errorf("RGB = (%v,%v,%v), want (1,0,0)", s.Red, s.Green, s.Blue)
	}
	if s.Hue != 0 || s.Saturation != 1 || s.Value != 1 {
		t.Errorf("HSV not re-derived: h=%v s=%v v=%v", s.Hue, s.Saturation, s.Value)
	}
}

func TestSetHexGrayRetainsHue(t *testing.T) {
	s := FromRGBA(0, 0, 255, 255) // hue 240
	n, err := s.SetHex("#808080")
	if err != nil {
		t.Fatal(err)
	}
	if n.Hue != 240 {
		t.Errorf("hue = %v after gray hex, want 240 retained", n.Hue)
	}
}

func TestParseHexAcceptsLowercaseAndBareDigits(t *testing.T) {
	a, err := ParseHex("#ffaa00")
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseHex("FFAA00")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("case/prefix variants disagree: %+v vs %+v", a, b)
	}
	if a.Alpha != 1 {
		t.Errorf("6-digit ParseHex alpha = %v, want 1", a.Alpha)
	}
}
