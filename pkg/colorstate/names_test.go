package colorstate

import "testing"

func TestNearestNameExactMatches(t *testing.T) {
	for _, nc := range BasicPalette() {
		s, err := ParseHex(nc.Hex)
		if err != nil {
			t.Fatalf("palette entry %s: %v", nc.Name, err)
		}
		if got := s.NearestName(); got != nc.Name {
			t.Errorf("%s (%s): NearestName = %q", nc.Name, nc.Hex, got)
		}
	}
}

func TestNearestNameNearMiss(t *testing.T) {
	s := FromRGBA(250, 5, 5, 255)
	if got := s.NearestName(); got != "Red" {
		t.Errorf("near-red: got %q, want Red", got)
	}
}

func TestNearestNameIgnoresAlpha(t *testing.T) {
	opaque := FromRGBA(255, 0, 0, 255)
	clear := FromRGBA(255, 0, 0, 0)
	if opaque.NearestName() != clear.NearestName() {
		t.Errorf("alpha changed the name: %q vs %q", opaque.NearestName(), clear.NearestName())
	}
}

func TestNearestNameOutsideThreshold(t *testing.T) {
	// A mid brown sits far from every table entry in Lab space.
	s, err := ParseHex("#D2691E")
	if err != nil {
		t.Fatal(err)
	}
	if got := s.NearestName(); got != "" {
		t.Errorf("got %q, want no match", got)
	}
}

func TestBasicPaletteIsACopy(t *testing.T) {
	p := BasicPalette()
	p[0].Name = "mutated"
	if BasicPalette()[0].Name == "mutated" {
		t.Error("BasicPalette leaks the internal table")
	}
}
