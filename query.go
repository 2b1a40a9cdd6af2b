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

package covbuf

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// InsertPolygon adds a polygon, in pixel coordinates, as an occluder at
// the given depth.  The depth should be the maximum depth of the
// occluder.  Vertices are rounded to the nearest pixel.
func (b *Buffer) InsertPolygon(verts []vec.Vec2, depth float32) {
	b.setPolygon(verts)
	if !b.rasterize() {
		return
	}
	b.flushShape(depth)
}

// TestPolygon reports whether a polygon, in pixel coordinates, at the
// given depth could be visible.  The depth should be the minimum depth of
// the candidate.  Polygons entirely outside the viewport are not visible.
func (b *Buffer) TestPolygon(verts []vec.Vec2, depth float32) bool {
	b.setPolygon(verts)
	if !b.rasterize() {
		return false
	}
	return b.testShape(depth)
}

func (b *Buffer) setPolygon(verts []vec.Vec2) {
	b.pts = append(b.pts[:0], verts...)
	b.contourEnd = append(b.contourEnd[:0], len(b.pts))
}

// flushShape merges the queued shape into the touched tiles.
func (b *Buffer) flushShape(depth float32) {
	for ty := range b.tilesY {
		left, right := b.dirtySpan(ty)
		fvalue := emptyColumn
		for tx := left; tx <= right; tx++ {
			b.tileAt(tx, ty).flush(&fvalue, depth, &b.scratch)
		}
	}
}

// testShape tests the queued shape against the touched tiles.  The queue
// of every touched tile is cleared, also after the result is known.
func (b *Buffer) testShape(depth float32) bool {
	visible := false
	for ty := range b.tilesY {
		left, right := b.dirtySpan(ty)
		fvalue := emptyColumn
		for tx := left; tx <= right; tx++ {
			t := b.tileAt(tx, ty)
			if !visible {
				visible = t.testFlush(&fvalue, depth, &b.scratch)
			}
			t.ops = t.ops[:0]
		}
	}
	return visible
}

// TestPoint reports whether a candidate at point p, in pixel coordinates,
// at the given depth could be visible.  Points outside the viewport are
// not visible.
func (b *Buffer) TestPoint(p vec.Vec2, depth float32) bool {
	x, y := roundCoord(p.X), roundCoord(p.Y)
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return false
	}
	t := b.tileAt(x>>tileColShift, y>>tileRowShift)
	return t.testPoint(x&(TileWidth-1), y&(TileHeight-1), depth)
}

// RectQuery is a screen-space rectangle prepared for testing against a
// Buffer.  It is computed by [Buffer.PrepareTestRectangle] and stays
// valid until the next call to Setup.
type RectQuery struct {
	// MinX, MinY, MaxX, MaxY are the pixel bounds of the rectangle,
	// clamped to the viewport.  Bounds are inclusive.
	MinX, MinY, MaxX, MaxY int

	startRow, endRow int
	startCol, endCol int
	startX, endX     int // pixel column within the first and last tile
}

// PrepareTestRectangle converts r, in pixel coordinates, into a query
// for TestRectangle and QuickTestRectangle.  The corners are rounded to
// the nearest pixel.  It reports false if the rectangle lies outside the
// viewport.
func (b *Buffer) PrepareTestRectangle(r rect.Rect) (RectQuery, bool) {
	var q RectQuery

	if r.URx > rectClamp {
		q.MaxX = rectClamp
	} else {
		if r.URx <= 0 {
			return q, false
		}
		q.MaxX = roundCoord(r.URx)
	}
	if r.URy > rectClamp {
		q.MaxY = rectClamp
	} else {
		if r.URy <= 0 {
			return q, false
		}
		q.MaxY = roundCoord(r.URy)
	}
	if r.LLx < -rectClamp {
		q.MinX = -rectClamp
	} else {
		if r.LLx > rectClamp {
			return q, false
		}
		q.MinX = roundCoord(r.LLx)
		if q.MinX >= b.width {
			return q, false
		}
	}
	if r.LLy < -rectClamp {
		q.MinY = -rectClamp
	} else {
		if r.LLy > rectClamp {
			return q, false
		}
		q.MinY = roundCoord(r.LLy)
		if q.MinY >= b.height {
			return q, false
		}
	}

	q.MinX = max(q.MinX, 0)
	q.MinY = max(q.MinY, 0)
	q.MaxX = min(q.MaxX, b.width-1)
	q.MaxY = min(q.MaxY, b.height-1)

	q.startRow = q.MinY >> tileRowShift
	q.endRow = q.MaxY >> tileRowShift
	q.startCol = q.MinX >> tileColShift
	q.endCol = q.MaxX >> tileColShift
	q.startX = q.MinX & (TileWidth - 1)
	q.endX = q.MaxX & (TileWidth - 1)
	return q, true
}

// TestRectangle reports whether a candidate covering the prepared
// rectangle, at the given depth, could be visible.  The depth should be
// the minimum depth of the candidate.
func (b *Buffer) TestRectangle(q *RectQuery, depth float32) bool {
	for ty := q.startRow; ty <= q.endRow; ty++ {
		vermask := fullColumn
		partialRows := false
		if ty == q.startRow && q.MinY&(TileHeight-1) != 0 {
			vermask = endMask[q.MinY&(TileHeight-1)]
			partialRows = true
		}
		if ty == q.endRow && q.MaxY&(TileHeight-1) != TileHeight-1 {
			vermask &= startMask[q.MaxY&(TileHeight-1)]
			partialRows = true
		}

		for tx := q.startCol; tx <= q.endCol; tx++ {
			sx, ex := 0, TileWidth-1
			if tx == q.startCol {
				sx = q.startX
			}
			if tx == q.endCol {
				ex = q.endX
			}

			t := b.tileAt(tx, ty)
			if partialRows || sx != 0 || ex != TileWidth-1 {
				if t.testRect(vermask, sx, ex, depth) {
					return true
				}
			} else if t.testFullRect(depth) {
				return true
			}
		}
	}
	return false
}

// QuickTestRectangle is a coarser and faster version of TestRectangle.
// Every tile touched by the rectangle is tested as a whole, so the result
// may be true where TestRectangle returns false.
func (b *Buffer) QuickTestRectangle(q *RectQuery, depth float32) bool {
	for ty := q.startRow; ty <= q.endRow; ty++ {
		for tx := q.startCol; tx <= q.endCol; tx++ {
			if b.tileAt(tx, ty).testFullRect(depth) {
				return true
			}
		}
	}
	return false
}
