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

var curveScenes = []Scene{
	{
		Name:   "circle",
		Width:  128,
		Height: 64,
		Steps: []Step{
			Insert{Path: circle(64, 32, 24), Depth: 4},
			TestPoint{At: pt(64, 32), Depth: 5, Visible: false},
			TestPoint{At: pt(64, 12), Depth: 5, Visible: false},
			TestPoint{At: pt(10, 32), Depth: 5, Visible: true},
			TestPoint{At: pt(100, 5), Depth: 5, Visible: true},
			TestPath{Path: circle(64, 32, 10), Depth: 5, Visible: false},
			TestPath{Path: circle(64, 32, 10), Depth: 3, Visible: true},
		},
	},
	{
		Name:   "lens",
		Width:  128,
		Height: 64,
		Steps: []Step{
			Insert{Path: lens(20, 108, 32, 12), Depth: 4},
			TestPoint{At: pt(64, 32), Depth: 5, Visible: false},
			TestPoint{At: pt(64, 24), Depth: 5, Visible: false},
			TestPoint{At: pt(64, 10), Depth: 5, Visible: true},
		},
	},
}
