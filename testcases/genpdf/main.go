// seehuhn.de/go/covbuf - a tiled coverage buffer for occlusion culling
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command genpdf renders the coverage buffer state after the occluders
// of each scene have been inserted.  For every scene it writes a PDF
// file, with covered pixels drawn as gray rectangles shaded by depth,
// and a zoomed PNG image.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/covbuf"
	"seehuhn.de/go/covbuf/testcases"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

func main() {
	outDir := flag.String("out", "testdata/coverage", "output directory")
	zoom := flag.Int("zoom", 2, "zoom factor for PNG output")
	verbose := flag.Bool("v", false, "log buffer setup")
	flag.Parse()

	if *verbose {
		covbuf.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(*outDir, *zoom); err != nil {
		fmt.Fprintln(os.Stderr, "genpdf:", err)
		os.Exit(1)
	}
}

func run(outDir string, zoom int) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	b := covbuf.New(1, 1)
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, s := range testcases.All[category] {
			name := category + "_" + s.Name

			b.Setup(s.Width, s.Height)
			b.CTM = matrix.Identity
			if s.CTM != (matrix.Matrix{}) {
				b.CTM = s.CTM
			}
			for _, ins := range s.Occluders() {
				b.InsertPath(ins.Path, ins.Depth)
			}

			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := writePDF(b, pdfPath); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			pngPath := filepath.Join(outDir, name+".png")
			if err := writePNG(b, zoom, pngPath); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			slog.Info("rendered", "scene", name)
		}
	}
	return nil
}

// writePDF draws the covered pixels of b, one rectangle per horizontal
// run of pixels with the same shade.
func writePDF(b *covbuf.Buffer, pdfPath string) error {
	w, h := b.Width(), b.Height()
	img := b.Image()

	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(w),
		URy: float64(h),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(w), float64(h))
	page.Fill()

	// PDF origin is bottom-left; the buffer uses top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(h)})

	for y := range h {
		row := img.Pix[y*img.Stride : y*img.Stride+w]
		for x := 0; x < w; {
			shade := row[x]
			end := x + 1
			for end < w && row[end] == shade {
				end++
			}
			if shade != 0 {
				page.SetFillColor(color.DeviceGray(float64(shade) / 255))
				page.Rectangle(float64(x), float64(y), float64(end-x), 1)
				page.Fill()
			}
			x = end
		}
	}

	return page.Close()
}

func writePNG(b *covbuf.Buffer, zoom int, pngPath string) error {
	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	err = png.Encode(f, b.DebugImage(zoom))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
