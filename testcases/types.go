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

package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Scene is a sequence of occluder insertions and visibility queries,
// applied in order to a freshly initialised coverage buffer.
type Scene struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Width  int           // viewport width in pixels
	Height int           // viewport height in pixels
	CTM    matrix.Matrix // path to pixel transformation (zero-value means identity)
	Steps  []Step
}

// Step is a single operation of a scene.
type Step interface {
	isStep()
}

// Insert adds the area enclosed by Path as an occluder.
type Insert struct {
	Path  path.Path
	Depth float32
}

func (Insert) isStep() {}

// TestPath checks the visibility of the area enclosed by Path.
type TestPath struct {
	Path    path.Path
	Depth   float32
	Visible bool // expected result
}

func (TestPath) isStep() {}

// TestPoint checks the visibility of a single pixel.  At is given in
// pixel coordinates and is not affected by the scene CTM.
type TestPoint struct {
	At      vec.Vec2
	Depth   float32
	Visible bool // expected result
}

func (TestPoint) isStep() {}

// TestRect checks the visibility of a screen-space rectangle, given in
// pixel coordinates.  If Quick is set, the coarse tile-level test is used.
type TestRect struct {
	Rect    rect.Rect
	Depth   float32
	Quick   bool
	Visible bool // expected result
}

func (TestRect) isStep() {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// box is a helper to create a rect.Rect from its corners.
func box(x1, y1, x2, y2 float64) rect.Rect {
	return rect.Rect{LLx: x1, LLy: y1, URx: x2, URy: y2}
}

// Occluders returns the paths inserted by the scene, in order.
func (s *Scene) Occluders() []Insert {
	var res []Insert
	for _, step := range s.Steps {
		if ins, ok := step.(Insert); ok {
			res = append(res, ins)
		}
	}
	return res
}
