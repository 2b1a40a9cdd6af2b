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

// Package covbuf implements a tiled coverage buffer for software
// occlusion culling.
//
// A [Buffer] records, for every pixel of a viewport, whether it is covered
// by an occluder inserted during the current frame.  Coverage is stored
// as one bit per pixel in tiles of 32x64 pixels, and a depth value is kept
// for every 8x8 block: the largest depth of any occluder covering part of
// the block.  Queries answer whether a candidate shape at a given depth
// could be visible.  Answers err on the side of visibility, so a false
// result can be trusted.
//
// Shapes are rasterised without anti-aliasing by parity: each edge queues
// row toggles on the tiles it crosses, and the toggles are resolved by a
// single left to right sweep over each tile row when the shape is
// flushed.
package covbuf

//go:generate go run ./testcases/export
