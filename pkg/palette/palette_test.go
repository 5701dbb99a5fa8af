package palette

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltinLookup(t *testing.T) {
	p := Builtin()
	if len(p.Entries) == 0 {
		t.Fatal("builtin palette is empty")
	}

	red, ok := p.Lookup("red")
	if !ok {
		t.Fatal("Lookup(red) not found")
	}
	if red.Red != 1 || red.Green != 0 || red.Blue != 0 {
		t.Errorf("red = (%v,%v,%v)", red.Red, red.Green, red.Blue)
	}

	if _, ok := p.Lookup("no such color"); ok {
		t.Error("Lookup matched a nonexistent name")
	}
}

func TestSearchFuzzyMatch(t *testing.T) {
	p := Builtin()

	hits := p.Search("gry")
	if len(hits) == 0 {
		t.Fatal("Search(gry) found nothing")
	}
	for _, e := range hits {
		if !strings.Contains(strings.ToLower(e.Name), "g") {
			t.Errorf("unexpected hit %q", e.Name)
		}
	}

	all := p.Search("  ")
	if len(all) != len(p.Entries) {
		t.Errorf("blank query returned %d of %d entries", len(all), len(p.Entries))
	}
}

func writePalette(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "palette.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writePalette(t, `
name: Warm
colors:
  - name: Ember
    hex: "#D35400"
  - name: Sand
    hex: "#F4D03F"
`)

	p, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Warm" || len(p.Entries) != 2 {
		t.Fatalf("loaded %q with %d entries", p.Name, len(p.Entries))
	}
	if p.Entries[0].Name != "Ember" {
		t.Errorf("first entry = %q", p.Entries[0].Name)
	}
	if got := p.Entries[1].Color.HexString(false); got != "#F4D03F" {
		t.Errorf("Sand = %s", got)
	}
}

func TestLoadFileBadEntryNamesTheEntry(t *testing.T) {
	path := writePalette(t, `
name: Broken
colors:
  - name: Fine
    hex: "#112233"
  - name: Bogus
    hex: "#NOPE"
`)

	_, err := LoadFile(path)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Bogus") {
		t.Errorf("error does not name the bad entry: %v", err)
	}
}

func TestLoadFileRejectsEmpty(t *testing.T) {
	for name, content := range map[string]string{
		"no name":   "colors:\n  - name: X\n    hex: \"#112233\"\n",
		"no colors": "name: Empty\n",
		"bad yaml":  "name: [unterminated\n",
	} {
		path := writePalette(t, content)
		if _, err := LoadFile(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
