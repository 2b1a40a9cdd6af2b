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

var clipScenes = []Scene{
	{
		Name:   "offscreen_left",
		Width:  128,
		Height: 64,
		Steps: []Step{
			Insert{Path: rectangle(-50, 10, 40, 50), Depth: 5},
			TestPoint{At: pt(0, 20), Depth: 9, Visible: false},
			TestPoint{At: pt(39, 20), Depth: 9, Visible: false},
			TestPoint{At: pt(40, 20), Depth: 9, Visible: true},
			TestPoint{At: pt(20, 5), Depth: 9, Visible: true},
		},
	},
	{
		Name:   "offscreen_right",
		Width:  128,
		Height: 64,
		Steps: []Step{
			Insert{Path: rectangle(100, 10, 300, 50), Depth: 5},
			TestPoint{At: pt(127, 20), Depth: 9, Visible: false},
			TestPoint{At: pt(110, 30), Depth: 9, Visible: false},
			TestPoint{At: pt(99, 20), Depth: 9, Visible: true},
			TestRect{Rect: box(100, 10, 200, 50), Depth: 9, Visible: false},
		},
	},
	{
		Name:   "slanted_offscreen",
		Width:  128,
		Height: 64,
		Steps: []Step{
			Insert{Path: triangle(-40, 0, 60, 32, -40, 63), Depth: 5},
			TestPoint{At: pt(0, 32), Depth: 9, Visible: false},
			TestPoint{At: pt(50, 32), Depth: 9, Visible: false},
			TestPoint{At: pt(70, 32), Depth: 9, Visible: true},
			TestPoint{At: pt(5, 2), Depth: 9, Visible: true},
		},
	},
	{
		Name:   "fully_offscreen",
		Width:  128,
		Height: 64,
		Steps: []Step{
			Insert{Path: triangle(-100, -100, -10, -100, -10, -10), Depth: 1},
			TestPath{Path: rectangle(-50, -50, -20, -20), Depth: 0, Visible: false},
			TestPath{Path: rectangle(200, 10, 250, 50), Depth: 0, Visible: false},
			TestPoint{At: pt(-5, 5), Depth: 0, Visible: false},
			TestPoint{At: pt(5, 5), Depth: 100, Visible: true},
			TestRect{Rect: box(130, 0, 150, 10), Depth: 0, Visible: false},
		},
	},
	{
		Name:   "full_viewport",
		Width:  100,
		Height: 70,
		Steps: []Step{
			Insert{Path: rectangle(-10, -10, 200, 100), Depth: 7},
			TestPoint{At: pt(0, 0), Depth: 8, Visible: false},
			TestPoint{At: pt(99, 0), Depth: 8, Visible: false},
			TestPoint{At: pt(0, 69), Depth: 8, Visible: false},
			TestPoint{At: pt(99, 69), Depth: 8, Visible: false},
			TestPoint{At: pt(99, 69), Depth: 7, Visible: false},
			TestPoint{At: pt(99, 69), Depth: 6, Visible: true},
			TestRect{Rect: box(0, 0, 99, 69), Depth: 8, Visible: false},
			TestRect{Rect: box(0, 0, 99, 69), Depth: 7, Visible: false},
			TestRect{Rect: box(0, 0, 99, 69), Depth: 6, Visible: true},
			TestRect{Rect: box(-1000, -1000, 1000, 1000), Depth: 8, Visible: false},
			TestPath{Path: rectangle(-5, -5, 105, 75), Depth: 8, Visible: false},
		},
	},
}
