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

var largeScenes = []Scene{
	stripes(),
	{
		Name:   "rectangle_grid",
		Width:  640,
		Height: 480,
		Steps: []Step{
			Insert{Path: rectangleGrid(4, 4, 640, 480, 10), Depth: 5},
			TestPoint{At: pt(80, 60), Depth: 9, Visible: false},
			TestPoint{At: pt(560, 420), Depth: 9, Visible: false},
			TestPoint{At: pt(400, 180), Depth: 9, Visible: false},
			TestPoint{At: pt(160, 60), Depth: 9, Visible: true},
			TestPath{Path: rectangle(30, 30, 130, 90), Depth: 9, Visible: false},
			TestPath{Path: rectangle(130, 30, 190, 90), Depth: 9, Visible: true},
		},
	},
}

// stripes builds a scene of ten horizontal stripes covering the whole
// viewport, each one farther away than the one above.
func stripes() Scene {
	const n = 10
	s := Scene{
		Name:   "stripes",
		Width:  256,
		Height: 250,
	}
	for i := range n {
		y := float64(25 * i)
		s.Steps = append(s.Steps, Insert{Path: rectangle(0, y, 256, y+25), Depth: float32(i + 1)})
	}
	for i := range n {
		p := pt(100, float64(25*i+12))
		s.Steps = append(s.Steps,
			TestPoint{At: p, Depth: float32(i) + 1.5, Visible: false},
			TestPoint{At: p, Depth: float32(i) + 0.5, Visible: true},
		)
	}
	s.Steps = append(s.Steps,
		TestRect{Rect: box(0, 0, 255, 249), Depth: n + 1, Visible: false},
		// rows 250..255 of the last tile row are never covered
		TestRect{Rect: box(0, 0, 255, 249), Depth: n + 1, Quick: true, Visible: true},
	)
	return s
}
