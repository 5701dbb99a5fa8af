// Package export renders palettes to swatch sheet files.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	gg "git.sr.ht/~sbinet/gg"
	svg "github.com/ajstarks/svgo"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/sync/errgroup"

	"github.com/tintpick/tintpick/pkg/palette"
)

// Sheet geometry in pixels.
const (
	cellWidth   = 140
	cellHeight  = 90
	swatchInset = 10
	labelHeight = 26
	columns     = 4
)

// WriteSheet renders p as a labeled swatch grid and writes it to
// dir/base.png and dir/base.svg, producing both files concurrently.
// It returns the two paths.
func WriteSheet(dir, base string, p *palette.Palette) (pngPath, svgPath string, err error) {
	if len(p.Entries) == 0 {
		return "", "", fmt.Errorf("palette %q has no colors", p.Name)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", "", fmt.Errorf("create export directory: %w", err)
	}

	pngPath = filepath.Join(dir, base+".png")
	svgPath = filepath.Join(dir, base+".svg")

	var eg errgroup.Group
	eg.Go(func() error { return writePNG(pngPath, p) })
	eg.Go(func() error { return writeSVG(svgPath, p) })
	if err := eg.Wait(); err != nil {
		return "", "", err
	}
	return pngPath, svgPath, nil
}

func sheetSize(n int) (w, h, rows int) {
	rows = (n + columns - 1) / columns
	return columns * cellWidth, rows * cellHeight, rows
}

func writePNG(path string, p *palette.Palette) error {
	w, h, _ := sheetSize(len(p.Entries))
	dc := gg.NewContext(w, h)

	dc.SetRGB(0.13, 0.13, 0.15)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	for i, e := range p.Entries {
		x := float64((i % columns) * cellWidth)
		y := float64((i / columns) * cellHeight)

		dc.SetRGB(e.Color.Red, e.Color.Green, e.Color.Blue)
		dc.DrawRectangle(x+swatchInset, y+swatchInset,
			cellWidth-2*swatchInset, cellHeight-swatchInset-labelHeight)
		dc.Fill()

		dc.SetRGB(0.95, 0.95, 0.93)
		dc.DrawString(e.Name, x+swatchInset, y+float64(cellHeight)-labelHeight/2)
		dc.DrawString(e.Color.HexString(false), x+swatchInset, y+float64(cellHeight)-6)
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeSVG(path string, p *palette.Palette) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer f.Close()

	w, h, _ := sheetSize(len(p.Entries))
	canvas := svg.New(f)
	canvas.Start(w, h)
	canvas.Rect(0, 0, w, h, "fill:#212126")

	for i, e := range p.Entries {
		x := (i % columns) * cellWidth
		y := (i / columns) * cellHeight

		canvas.Rect(x+swatchInset, y+swatchInset,
			cellWidth-2*swatchInset, cellHeight-swatchInset-labelHeight,
			"fill:"+e.Color.HexString(false))
		canvas.Text(x+swatchInset, y+cellHeight-labelHeight/2, e.Name,
			"fill:#F2F2EE;font-family:monospace;font-size:11px")
		canvas.Text(x+swatchInset, y+cellHeight-6, e.Color.HexString(false),
			"fill:#F2F2EE;font-family:monospace;font-size:11px")
	}

	canvas.End()
	return f.Close()
}
