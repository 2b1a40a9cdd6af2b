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

import "math"

// opKind identifies the type of a queued line operation.
type opKind uint8

const (
	// opFullVLine toggles all rows of one column.
	opFullVLine opKind = iota

	// opVLine toggles rows y1..y2 of one column.
	opVLine

	// opLine toggles one row per step along a slanted edge, moving
	// dx to the right for every row.
	opLine
)

// lineOp is an edge fragment queued on a tile.
// The x coordinates are 16.16 fixed point, relative to the tile's left
// border.  Row coordinates are relative to the tile's top row.
type lineOp struct {
	kind   opKind
	x1, y1 int
	x2, y2 int
	dx     int
}

// unsetDepth marks a depth block that has never received coverage.
var unsetDepth = float32(math.Inf(1))

// tile is a TileWidth x TileHeight region of the coverage buffer.
//
// While a tile is empty, the contents of coverage and depth are
// undefined.  Each depth entry is the farthest depth of any coverage
// recorded in its 8x8 block.
type tile struct {
	empty bool
	full  bool

	// ops is the queue of edge fragments rasterised since the last
	// flush.  The slice grows as needed but never shrinks.
	ops []lineOp

	coverage [TileWidth]TileColumn
	depth    [depthBlocks]float32

	minDepth float32
	maxDepth float32
}

// makeEmpty resets the tile to the empty state and drops queued operations.
func (t *tile) makeEmpty() {
	t.empty = true
	t.full = false
	t.ops = t.ops[:0]
}

// activate turns an empty tile into a non-empty tile without coverage.
func (t *tile) activate() {
	t.empty = false
	t.full = false
	clear(t.coverage[:])
	for i := range t.depth {
		t.depth[i] = unsetDepth
	}
}

// pushFullVLine queues a column toggle covering all rows.
// x is in fixed point.
func (t *tile) pushFullVLine(x int) {
	if debugChecks {
		assert(x >= 0 && x>>16 < TileWidth, "full vline x=%d out of range", x>>16)
	}
	t.ops = append(t.ops, lineOp{kind: opFullVLine, x1: x, x2: x, y2: TileHeight - 1})
}

// pushVLine queues a column toggle for rows y1..y2 (inclusive).
// x is in fixed point.
func (t *tile) pushVLine(x, y1, y2 int) {
	if debugChecks {
		assert(x >= 0 && x>>16 < TileWidth, "vline x=%d out of range", x>>16)
		assert(y1 >= 0 && y1 < TileHeight && y2 >= 0 && y2 < TileHeight,
			"vline rows %d..%d out of range", y1, y2)
	}
	t.ops = append(t.ops, lineOp{kind: opVLine, x1: x, y1: y1, x2: x, y2: y2})
}

// pushLine queues a slanted edge fragment from (x1, y1) to (x2, y2),
// y1 <= y2, advancing dx per row.  x1, x2 and dx are in fixed point.
func (t *tile) pushLine(x1, y1, x2, y2, dx int) {
	if debugChecks {
		assert(y1 >= 0 && y1 <= y2 && y2 < TileHeight,
			"line rows %d..%d out of range", y1, y2)
		assert(x1 >= 0 && x1>>16 < TileWidth, "line x1=%d out of range", x1>>16)
		xe := x1 + (y2-y1)*dx
		assert(xe >= 0 && xe>>16 < TileWidth, "line end x=%d out of range", xe>>16)
	}
	t.ops = append(t.ops, lineOp{kind: opLine, x1: x1, y1: y1, x2: x2, y2: y2, dx: dx})
}

// materialize converts the queued operations into per-column toggle
// masks in scratch and clears the queue.
func (t *tile) materialize(scratch *[TileWidth]TileColumn) {
	clear(scratch[:])
	for i := range t.ops {
		op := &t.ops[i]
		switch op.kind {
		case opFullVLine:
			scratch[op.x1>>16] ^= fullColumn
		case opVLine:
			y1, y2 := op.y1, op.y2
			if y1 > y2 {
				y1, y2 = y2, y1
			}
			scratch[op.x1>>16] ^= rowSpan(y1, y2)
		case opLine:
			x := op.x1
			for y := op.y1; y <= op.y2; y++ {
				col := &scratch[x>>16]
				*col = col.XorBit(y)
				x += op.dx
			}
		}
	}
	t.ops = t.ops[:0]
}

// sweepOps applies the net row toggles of the queued operations to
// fvalue and clears the queue.  Column positions are irrelevant for
// the value of fvalue at the right border of the tile.
func (t *tile) sweepOps(fvalue *TileColumn) {
	for i := range t.ops {
		op := &t.ops[i]
		if op.kind == opFullVLine {
			*fvalue = fvalue.Invert()
			continue
		}
		y1, y2 := op.y1, op.y2
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		*fvalue ^= rowSpan(y1, y2)
	}
	t.ops = t.ops[:0]
}

// flush merges the queued operations into the tile, OR-ing the covered
// area into the coverage and updating depth.  fvalue carries the fill
// state from the tile on the left and is updated to the fill state at
// the right border of this tile.
func (t *tile) flush(fvalue *TileColumn, depth float32, scratch *[TileWidth]TileColumn) {
	if len(t.ops) == 0 {
		switch {
		case fvalue.IsFull():
			t.flushFullConst(depth)
		case fvalue.IsEmpty(), t.full:
			// nothing changes
		case t.empty:
			clear(scratch[:])
			t.flushEmpty(fvalue, depth, scratch)
		default:
			clear(scratch[:])
			t.flushGeneral(fvalue, depth, scratch)
		}
		return
	}

	switch {
	case t.empty:
		t.materialize(scratch)
		t.flushEmpty(fvalue, depth, scratch)
	case t.full:
		t.sweepOps(fvalue)
	default:
		t.materialize(scratch)
		t.flushGeneral(fvalue, depth, scratch)
	}
}

// flushFullConst covers the whole tile.
func (t *tile) flushFullConst(depth float32) {
	if t.empty {
		t.empty = false
		for i := range t.depth {
			t.depth[i] = depth
		}
		t.minDepth = depth
	} else {
		for i, d := range t.depth {
			if depth < d {
				t.depth[i] = depth
			}
		}
		t.minDepth = min(t.minDepth, depth)
	}
	for i := range t.coverage {
		t.coverage[i] = fullColumn
	}
	t.maxDepth = depth
	t.full = true
}

// flushEmpty writes the swept fill state into a tile which had no
// coverage before.
func (t *tile) flushEmpty(fvalue *TileColumn, depth float32, cc *[TileWidth]TileColumn) {
	t.activate()

	fulltest := fullColumn
	for g := range blockCols {
		var mods TileColumn
		for i := g * blockSize; i < (g+1)*blockSize; i++ {
			*fvalue ^= cc[i]
			t.coverage[i] = *fvalue
			mods |= *fvalue
			fulltest &= *fvalue
		}
		if mods.IsEmpty() {
			continue
		}
		for n := range blockRows {
			if mods.Byte(n) != 0 {
				t.depth[n*blockCols+g] = depth
			}
		}
	}

	t.full = fulltest.IsFull()
	t.minDepth = depth
	t.maxDepth = depth
}

// flushGeneral merges the swept fill state into a partially covered tile.
//
// Where the new coverage fills a whole 8x8 block the block depth can only
// move closer.  Where it adds coverage to part of a block the block depth
// moves farther, so that it stays an upper bound for everything recorded
// in the block.
func (t *tile) flushGeneral(fvalue *TileColumn, depth float32, cc *[TileWidth]TileColumn) {
	fulltest := fullColumn
	for g := range blockCols {
		var mods TileColumn
		fullcover := fullColumn
		for i := g * blockSize; i < (g+1)*blockSize; i++ {
			*fvalue ^= cc[i]
			mods |= fvalue.AndNot(t.coverage[i])
			fullcover &= *fvalue
			t.coverage[i] |= *fvalue
			fulltest &= t.coverage[i]
		}
		if mods.IsEmpty() {
			continue
		}
		for n := range blockRows {
			d := &t.depth[n*blockCols+g]
			switch {
			case fullcover.Byte(n) == 0xff:
				if depth < *d {
					*d = depth
				}
			case mods.Byte(n) != 0:
				if *d == unsetDepth || depth > *d {
					*d = depth
				}
			}
		}
	}

	t.full = fulltest.IsFull()
	t.updateDepthRange()
}

// updateDepthRange recomputes minDepth and maxDepth from the depth blocks
// which hold coverage.
func (t *tile) updateDepthRange() {
	lo, hi := unsetDepth, float32(math.Inf(-1))
	for _, d := range t.depth {
		if d == unsetDepth {
			continue
		}
		lo = min(lo, d)
		hi = max(hi, d)
	}
	if lo == unsetDepth {
		hi = unsetDepth
	}
	t.minDepth = lo
	t.maxDepth = hi
}
