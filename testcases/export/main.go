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

// Command export writes all scenes to testdata/scenes.json, so that
// they can be replayed by other implementations.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/covbuf/testcases"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

const outFile = "testdata/scenes.json"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "export:", err)
		os.Exit(1)
	}
}

func run() error {
	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, s := range testcases.All[category] {
			out.Scenes = append(out.Scenes, toJSON(category, s))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		return err
	}
	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	err = enc.Encode(out)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%s: %w", outFile, err)
	}
	slog.Info("scenes exported", "file", outFile, "count", len(out.Scenes))
	return nil
}

type jsonScene struct {
	Name   string     `json:"name"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
	CTM    []float64  `json:"ctm,omitempty"`
	Steps  []jsonStep `json:"steps"`
}

type jsonStep struct {
	Op      string        `json:"op"` // insert, test_path, test_point, test_rect, quick_test_rect
	Path    []jsonSegment `json:"path,omitempty"`
	Point   []float64     `json:"point,omitempty"`
	Rect    []float64     `json:"rect,omitempty"`
	Depth   float32       `json:"depth"`
	Visible *bool         `json:"visible,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, s testcases.Scene) jsonScene {
	js := jsonScene{
		Name:   category + "_" + s.Name,
		Width:  s.Width,
		Height: s.Height,
	}
	if s.CTM != (matrix.Matrix{}) {
		js.CTM = s.CTM[:]
	}

	for _, step := range s.Steps {
		var st jsonStep
		switch step := step.(type) {
		case testcases.Insert:
			st = jsonStep{Op: "insert", Path: pathToJSON(step.Path), Depth: step.Depth}
		case testcases.TestPath:
			st = jsonStep{Op: "test_path", Path: pathToJSON(step.Path), Depth: step.Depth}
			st.Visible = &step.Visible
		case testcases.TestPoint:
			st = jsonStep{Op: "test_point", Point: []float64{step.At.X, step.At.Y}, Depth: step.Depth}
			st.Visible = &step.Visible
		case testcases.TestRect:
			r := step.Rect
			st = jsonStep{Op: "test_rect", Rect: []float64{r.LLx, r.LLy, r.URx, r.URy}, Depth: step.Depth}
			if step.Quick {
				st.Op = "quick_test_rect"
			}
			st.Visible = &step.Visible
		}
		js.Steps = append(js.Steps, st)
	}
	return js
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
