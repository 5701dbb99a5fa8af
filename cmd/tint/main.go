package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/tintpick/tintpick/pkg/colorstate"
	"github.com/tintpick/tintpick/pkg/export"
	"github.com/tintpick/tintpick/pkg/palette"
	"github.com/tintpick/tintpick/pkg/store"
	"github.com/tintpick/tintpick/pkg/ui"
)

const version = "0.1.0"

func main() {
	hex := flag.String("hex", "#5A56E0", "Starting color")
	paletteFile := flag.String("palette", "", "Palette YAML file (default: built-in)")
	watch := flag.Bool("watch", false, "Reload the palette file when it changes")
	exportDir := flag.String("export", "", "Write a swatch sheet to this directory and exit")
	noAlpha := flag.Bool("no-alpha", false, "Hide the alpha channel")
	dbPath := flag.String("db", "", "Swatch database path (default: user config dir)")
	showVersion := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *showVersion {
		fmt.Println("tint version " + version)
		os.Exit(0)
	}

	pal := palette.Builtin()
	if *paletteFile != "" {
		var err error
		pal, err = palette.LoadFile(*paletteFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading palette: %v\n", err)
			os.Exit(1)
		}
	}

	if *exportDir != "" {
		base := strings.ToLower(strings.ReplaceAll(pal.Name, " ", "-"))
		pngPath, svgPath, err := export.WriteSheet(*exportDir, base, pal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting swatch sheet: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(pngPath)
		fmt.Println(svgPath)
		os.Exit(0)
	}

	start, err := colorstate.ParseHex(*hex)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "tint needs a terminal; use -export for non-interactive output")
		os.Exit(1)
	}

	// The picker still runs if the swatch database is unavailable; recents
	// and favorites just won't stick.
	st, err := store.Open(storePath(*dbPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: swatch store unavailable: %v\n", err)
		st = nil
	} else {
		defer st.Close()
	}

	var watcher *palette.Watcher
	if *watch && *paletteFile != "" {
		watcher, err = palette.Watch(*paletteFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error watching palette: %v\n", err)
			os.Exit(1)
		}
		defer watcher.Close()
	}

	cfg := ui.PickerConfig{
		Start:        start,
		Bounds:       colorstate.DefaultBounds(),
		Palette:      pal,
		IncludeAlpha: !*noAlpha,
	}
	m := ui.NewModel(cfg, st, watcher)

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
		os.Exit(1)
	}

	if fm, ok := final.(ui.Model); ok {
		if hex, confirmed := fm.Result(); confirmed {
			fmt.Println(hex)
		}
	}
}

func storePath(override string) string {
	if override != "" {
		return override
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "tintpick.db")
	}
	return filepath.Join(dir, "tintpick", "swatches.db")
}
