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

var precisionScenes = []Scene{
	{
		Name:   "thin_sliver",
		Width:  128,
		Height: 64,
		Steps: []Step{
			Insert{Path: rectangle(10, 0, 11, 64), Depth: 5},
			TestPoint{At: pt(10, 32), Depth: 9, Visible: false},
			TestPoint{At: pt(9, 32), Depth: 9, Visible: true},
			TestPoint{At: pt(11, 32), Depth: 9, Visible: true},
		},
	},
	{
		Name:   "half_pixel_rounding",
		Width:  64,
		Height: 64,
		Steps: []Step{
			Insert{Path: rectangle(10.4, 10.4, 20.6, 20.6), Depth: 5},
			TestPoint{At: pt(10, 10), Depth: 9, Visible: false},
			TestPoint{At: pt(20, 21), Depth: 9, Visible: false},
			TestPoint{At: pt(21, 15), Depth: 9, Visible: true},
			TestPoint{At: pt(9, 15), Depth: 9, Visible: true},
			TestPoint{At: pt(15, 22), Depth: 9, Visible: true},
		},
	},
	{
		Name:   "tile_boundaries",
		Width:  128,
		Height: 128,
		Steps: []Step{
			Insert{Path: rectangle(32, 64, 64, 128), Depth: 5},
			TestPoint{At: pt(32, 64), Depth: 9, Visible: false},
			TestPoint{At: pt(63, 127), Depth: 9, Visible: false},
			TestPoint{At: pt(31, 64), Depth: 9, Visible: true},
			TestPoint{At: pt(64, 64), Depth: 9, Visible: true},
			TestPoint{At: pt(32, 63), Depth: 9, Visible: true},
			TestRect{Rect: box(32, 64, 63, 127), Depth: 9, Visible: false},
			TestRect{Rect: box(32, 64, 63, 127), Depth: 9, Quick: true, Visible: false},
		},
	},
}
