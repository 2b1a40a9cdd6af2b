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
	"math"
	"slices"
)

// Edge rasterisation model:
//
// A shape is filled by parity.  Every edge toggles, in each pixel row it
// crosses, the coverage of all pixels from its crossing point to the
// right border of the viewport.  Edges only queue these toggles on the
// tiles they pass through.  When the shape is flushed, each tile row is
// swept from left to right: fvalue holds the toggles accumulated so far
// and is the fill state of the current column.
//
// An edge from (x1, y1) to (x2, y2) with y1 < y2 crosses rows y1..y2-1.
// Edges which end on the bottom row of the shape also cross row y2, so
// that the bottom row of the shape is filled.  Parts of an edge left of
// the viewport are moved to column 0.  Parts right of the viewport are
// dropped, but the tile row is marked dirty up to its last tile, so that
// the sweep carries the fill state to the right border.

// roundCoord rounds a coordinate to the nearest pixel, halfway cases away
// from zero.
func roundCoord(v float64) int {
	switch {
	case v > maxCoord:
		return maxCoord
	case v < -maxCoord:
		return -maxCoord
	case v != v:
		return 0
	}
	return int(math.Round(v))
}

// rasterize queues the edges of all contours in b.pts on the tiles.
// It reports false, and queues nothing, if the rounded bounding box lies
// outside the viewport.
func (b *Buffer) rasterize() bool {
	n := len(b.pts)
	if n == 0 {
		return false
	}
	b.xs = slices.Grow(b.xs[:0], n)[:n]
	b.ys = slices.Grow(b.ys[:0], n)[:n]

	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := math.MinInt, math.MinInt
	for i, p := range b.pts {
		x, y := roundCoord(p.X), roundCoord(p.Y)
		b.xs[i], b.ys[i] = x, y
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}
	if maxX <= 0 || maxY <= 0 || minX >= b.width || minY >= b.height {
		return false
	}

	b.resetDirty()
	start := 0
	for _, end := range b.contourEnd {
		for i := start; i < end; i++ {
			j := i + 1
			if j == end {
				j = start
			}
			b.queueEdge(b.xs[i], b.ys[i], b.xs[j], b.ys[j], maxY)
		}
		start = end
	}
	return true
}

// queueEdge orders the end points of a polygon edge from top to bottom
// and rasterises it.  Horizontal edges are skipped.
func (b *Buffer) queueEdge(xa, ya, xb, yb, bottom int) {
	if ya == yb {
		return
	}
	if ya > yb {
		xa, ya, xb, yb = xb, yb, xa, ya
	}
	yfurther := 0
	if yb == bottom {
		yfurther = 1
	}
	b.drawEdge(xa, ya, xb, yb, yfurther)
}

// drawEdge queues the row toggles of the edge from (x1, y1) to (x2, y2),
// y1 < y2, on the tiles it passes through.  If yfurther is 1, row y2 is
// included.
func (b *Buffer) drawEdge(x1, y1, x2, y2, yfurther int) {
	if debugChecks {
		assert(y1 < y2, "edge rows %d..%d not ordered", y1, y2)
	}
	ylo := max(y1, 0)
	yhi := min(y2+yfurther, b.height)
	if ylo >= yhi {
		return
	}

	switch {
	case x1 <= 0 && x2 <= 0:
		b.pushVerticalRun(0, ylo, yhi)
	case x1 >= b.width && x2 >= b.width:
		b.markRightRows(ylo, yhi)
	case x1 == x2:
		b.pushVerticalRun(x1, ylo, yhi)
	default:
		b.walkEdge(x1, y1, x2, y2, ylo, yhi)
	}
}

// pushVerticalRun queues a toggle of rows ylo..yhi-1 in pixel column x.
func (b *Buffer) pushVerticalRun(x, ylo, yhi int) {
	tx := x >> tileColShift
	lx := (x & (TileWidth - 1)) << 16
	for ty := ylo >> tileRowShift; ty <= (yhi-1)>>tileRowShift; ty++ {
		top := ty << tileRowShift
		r1 := max(ylo-top, 0)
		r2 := min(yhi-1-top, TileHeight-1)
		t := b.tileAt(tx, ty)
		if r1 == 0 && r2 == TileHeight-1 {
			t.pushFullVLine(lx)
		} else {
			t.pushVLine(lx, r1, r2)
		}
		b.markTileDirty(tx, ty)
	}
}

// markRightRows marks rows ylo..yhi-1 as touched right of the viewport.
func (b *Buffer) markRightRows(ylo, yhi int) {
	for ty := ylo >> tileRowShift; ty <= (yhi-1)>>tileRowShift; ty++ {
		b.markTileDirty(b.tilesX, ty)
	}
}

// segKind classifies the rows of an edge by their position relative to
// the viewport.
type segKind uint8

const (
	segNone segKind = iota
	segLeft
	segInside
	segRight
)

// edgeSegment is the part of an edge, within a single tile, which has
// been walked but not yet queued.
type edgeSegment struct {
	kind   segKind
	tx, ty int
	x1, y1 int // first row, x in fixed point
	x2, y2 int // last row, x in fixed point
}

// walkEdge queues the rows ylo..yhi-1 of a slanted edge, one tile
// segment at a time.
//
// The slope is taken from the visible part of the edge, so that an end
// point far outside the viewport does not magnify its rounding error.
func (b *Buffer) walkEdge(x1, y1, x2, y2, ylo, yhi int) {
	yend := min(y2, yhi)
	x := edgeX(x1, y1, x2, y2, ylo)
	var dx int
	if yend > ylo {
		dx = (edgeX(x1, y1, x2, y2, yend) - x) / (yend - ylo)
	}

	var seg edgeSegment
	for y := ylo; y < yhi; y++ {
		col := x >> 16
		kind, tx := segInside, col>>tileColShift
		if col < 0 {
			kind, tx = segLeft, 0
		} else if col >= b.width {
			kind, tx = segRight, b.tilesX
		}
		ty := y >> tileRowShift

		if kind != seg.kind || tx != seg.tx || ty != seg.ty {
			b.queueSegment(&seg, dx)
			seg = edgeSegment{kind: kind, tx: tx, ty: ty, x1: x, y1: y}
		}
		seg.x2, seg.y2 = x, y
		x += dx
	}
	b.queueSegment(&seg, dx)
}

// edgeX returns the x coordinate, in fixed point, where the line through
// (x1, y1) and (x2, y2) meets row y.
func edgeX(x1, y1, x2, y2, y int) int {
	switch y {
	case y1:
		return x1 << 16
	case y2:
		return x2 << 16
	}
	x := float64(x1) + float64(x2-x1)*float64(y-y1)/float64(y2-y1)
	return int(math.Floor(x * 65536))
}

// queueSegment queues a walked edge segment on its tile.
func (b *Buffer) queueSegment(seg *edgeSegment, dx int) {
	switch seg.kind {
	case segLeft:
		b.pushVerticalRun(0, seg.y1, seg.y2+1)
	case segRight:
		b.markTileDirty(b.tilesX, seg.ty)
	case segInside:
		origin := seg.tx << (tileColShift + 16)
		top := seg.ty << tileRowShift
		t := b.tileAt(seg.tx, seg.ty)
		t.pushLine(seg.x1-origin, seg.y1-top, seg.x2-origin, seg.y2-top, dx)
		b.markTileDirty(seg.tx, seg.ty)
	}
}
