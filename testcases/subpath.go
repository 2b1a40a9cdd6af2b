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

var subpathScenes = []Scene{
	{
		Name:   "two_triangles",
		Width:  128,
		Height: 64,
		Steps: []Step{
			Insert{Path: twoTriangles(32, 32, 96, 32, 12), Depth: 5},
			TestPoint{At: pt(32, 36), Depth: 9, Visible: false},
			TestPoint{At: pt(96, 36), Depth: 9, Visible: false},
			TestPoint{At: pt(64, 36), Depth: 9, Visible: true},
		},
	},
	{
		Name:   "ring_hole",
		Width:  128,
		Height: 64,
		Steps: []Step{
			Insert{Path: ring(64, 32, 28, 12), Depth: 5},
			TestPoint{At: pt(64, 32), Depth: 9, Visible: true},
			TestPoint{At: pt(40, 32), Depth: 9, Visible: false},
			TestPath{Path: rectangle(56, 26, 72, 38), Depth: 9, Visible: true},
			TestPath{Path: rectangle(40, 8, 88, 16), Depth: 9, Visible: false},
		},
	},
	{
		Name:   "star_evenodd",
		Width:  128,
		Height: 64,
		Steps: []Step{
			Insert{Path: fivePointStar(64, 32, 28), Depth: 5},
			TestPoint{At: pt(64, 32), Depth: 9, Visible: true},
			TestPoint{At: pt(64, 15), Depth: 9, Visible: false},
		},
	},
}
