package palette

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tintpick/tintpick/pkg/colorstate"
)

// paletteFile is the YAML document shape:
//
//	name: Warm
//	colors:
//	  - name: Ember
//	    hex: "#D35400"
type paletteFile struct {
	Name   string `yaml:"name"`
	Colors []struct {
		Name string `yaml:"name"`
		Hex  string `yaml:"hex"`
	} `yaml:"colors"`
}

// LoadFile reads a palette from a YAML file. Every entry must carry a name
// and a parseable hex color; a bad entry fails the whole load with the
// entry's name in the error rather than being dropped silently.
func LoadFile(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette: %w", err)
	}

	var doc paletteFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse palette %s: %w", path, err)
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("palette %s: missing name", path)
	}
	if len(doc.Colors) == 0 {
		return nil, fmt.Errorf("palette %s: no colors", path)
	}

	p := &Palette{Name: doc.Name, Entries: make([]Entry, 0, len(doc.Colors))}
	for i, c := range doc.Colors {
		if c.Name == "" {
			return nil, fmt.Errorf("palette %s: color %d has no name", path, i)
		}
		s, err := colorstate.ParseHex(c.Hex)
		if err != nil {
			return nil, fmt.Errorf("palette %s: entry %q: %w", path, c.Name, err)
		}
		p.Entries = append(p.Entries, Entry{Name: c.Name, Color: s})
	}
	return p, nil
}
