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

import "seehuhn.de/go/geom/matrix"

var basicScenes = []Scene{
	{
		Name:   "quad_640x480",
		Width:  640,
		Height: 480,
		Steps: []Step{
			Insert{Path: rectangle(50, 50, 600, 430), Depth: 10},
			TestPoint{At: pt(100, 100), Depth: 5, Visible: true},
			TestPoint{At: pt(100, 100), Depth: 10, Visible: false},
			TestPoint{At: pt(100, 100), Depth: 15, Visible: false},
			TestPoint{At: pt(599, 100), Depth: 5, Visible: true},
			TestPoint{At: pt(599, 100), Depth: 15, Visible: false},
			TestPoint{At: pt(601, 100), Depth: 5, Visible: true},
			TestPoint{At: pt(601, 100), Depth: 15, Visible: true},
			TestPath{Path: rectangle(100, 100, 200, 200), Depth: 15, Visible: false},
			TestPath{Path: rectangle(100, 100, 200, 200), Depth: 5, Visible: true},
			TestRect{Rect: box(100, 100, 200, 200), Depth: 15, Visible: false},
			TestRect{Rect: box(100, 100, 200, 200), Depth: 5, Visible: true},
			TestRect{Rect: box(580, 100, 620, 120), Depth: 15, Visible: true},
		},
	},
	{
		Name:   "two_depths",
		Width:  128,
		Height: 64,
		Steps: []Step{
			Insert{Path: rectangle(0, 0, 64, 64), Depth: 5},
			Insert{Path: rectangle(64, 0, 128, 64), Depth: 8},
			TestPath{Path: rectangle(10, 10, 110, 50), Depth: 9, Visible: false},
			TestPath{Path: rectangle(10, 10, 110, 50), Depth: 6, Visible: true},
			TestPath{Path: rectangle(10, 10, 50, 50), Depth: 6, Visible: false},
			TestPoint{At: pt(20, 20), Depth: 6, Visible: false},
			TestPoint{At: pt(100, 20), Depth: 6, Visible: true},
			TestRect{Rect: box(0, 0, 127, 63), Depth: 9, Visible: false},
			TestRect{Rect: box(0, 0, 127, 63), Depth: 9, Quick: true, Visible: false},
			TestRect{Rect: box(0, 0, 63, 63), Depth: 6, Quick: true, Visible: false},
			TestRect{Rect: box(0, 0, 127, 63), Depth: 6, Quick: true, Visible: true},
		},
	},
	{
		Name:   "depth_monotonic",
		Width:  128,
		Height: 64,
		Steps: []Step{
			Insert{Path: rectangle(0, 0, 64, 64), Depth: 3},
			Insert{Path: rectangle(0, 0, 64, 64), Depth: 20},
			TestPoint{At: pt(32, 32), Depth: 10, Visible: false},
			TestPoint{At: pt(40, 32), Depth: 10, Visible: false},
			TestPoint{At: pt(40, 32), Depth: 2, Visible: true},
		},
	},
	{
		Name:   "ctm_scaled",
		Width:  128,
		Height: 64,
		CTM:    matrix.Matrix{2, 0, 0, 2, 0, 0},
		Steps: []Step{
			Insert{Path: rectangle(10, 10, 30, 20), Depth: 5},
			TestPoint{At: pt(40, 30), Depth: 9, Visible: false},
			TestPoint{At: pt(15, 30), Depth: 9, Visible: true},
			TestPath{Path: rectangle(15, 12, 25, 18), Depth: 9, Visible: false},
			TestPath{Path: rectangle(25, 12, 35, 18), Depth: 9, Visible: true},
		},
	},
}
