// Package palette provides named color tables for the picker: the built-in
// basic table, user palettes loaded from YAML files, fuzzy name search, and
// hot reload of palette files.
package palette

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/tintpick/tintpick/pkg/colorstate"
)

// Entry is one named color in a palette.
type Entry struct {
	Name  string
	Color colorstate.State
}

// Palette is an ordered list of named colors.
type Palette struct {
	Name    string
	Entries []Entry
}

// Builtin returns the built-in palette backing the nearest-name lookup.
func Builtin() *Palette {
	basics := colorstate.BasicPalette()
	p := &Palette{Name: "Basic", Entries: make([]Entry, 0, len(basics))}
	for _, nc := range basics {
		s, err := colorstate.ParseHex(nc.Hex)
		if err != nil {
			// The table is compiled in; a bad entry is a programming error.
			panic(err)
		}
		p.Entries = append(p.Entries, Entry{Name: nc.Name, Color: s})
	}
	return p
}

// Lookup finds an entry by name, case-insensitively.
func (p *Palette) Lookup(name string) (colorstate.State, bool) {
	for _, e := range p.Entries {
		if strings.EqualFold(e.Name, name) {
			return e.Color, true
		}
	}
	return colorstate.State{}, false
}

// Names returns the entry names in palette order.
func (p *Palette) Names() []string {
	names := make([]string, len(p.Entries))
	for i, e := range p.Entries {
		names[i] = e.Name
	}
	return names
}

// Search returns the entries whose names fuzzy-match query, best match
// first. An empty query returns all entries in palette order.
func (p *Palette) Search(query string) []Entry {
	if strings.TrimSpace(query) == "" {
		out := make([]Entry, len(p.Entries))
		copy(out, p.Entries)
		return out
	}

	matches := fuzzy.Find(query, p.Names())
	out := make([]Entry, 0, len(matches))
	for _, m := range matches {
		out = append(out, p.Entries[m.Index])
	}
	return out
}
