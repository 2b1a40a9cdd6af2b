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

// testFlush reports whether the queued shape, at the given depth, could
// be visible anywhere in this tile.  The tile coverage is not modified.
// If the result is false, fvalue is left at the fill state of the right
// border and the queue is empty.  If the result is true, fvalue and the
// queue are unspecified and the caller must clear the queue.
func (t *tile) testFlush(fvalue *TileColumn, depth float32, scratch *[TileWidth]TileColumn) bool {
	if len(t.ops) == 0 && fvalue.IsEmpty() {
		return false
	}
	if t.empty {
		return true
	}
	if t.full {
		if depth < t.maxDepth {
			return true
		}
		t.sweepOps(fvalue)
		return false
	}

	t.materialize(scratch)
	cc := scratch
	for i := range cc {
		*fvalue ^= cc[i]
		cc[i] = *fvalue
		if fvalue.TestInvertedMask(t.coverage[i]) {
			return true
		}
	}

	if depth < t.minDepth {
		return true
	}

	for g := range blockCols {
		var mods TileColumn
		for i := g * blockSize; i < (g+1)*blockSize; i++ {
			mods |= cc[i]
		}
		if mods.IsEmpty() {
			continue
		}
		for n := range blockRows {
			if mods.Byte(n) != 0 && depth < t.depth[n*blockCols+g] {
				return true
			}
		}
	}
	return false
}

// testFullRect reports whether a candidate at the given depth could be
// visible somewhere in the tile.
func (t *tile) testFullRect(depth float32) bool {
	if t.full {
		return depth < t.maxDepth
	}
	return true
}

// testRect reports whether a candidate at the given depth could be
// visible in columns start..end (inclusive) of the tile, restricted to
// the rows set in vermask.
func (t *tile) testRect(vermask TileColumn, start, end int, depth float32) bool {
	if t.empty {
		return true
	}
	if depth < t.minDepth {
		return true
	}
	if !t.full {
		for i := start; i <= end; i++ {
			if vermask.TestInvertedMask(t.coverage[i]) {
				return true
			}
		}
	}
	if depth >= t.maxDepth {
		return false
	}

	// Every pixel of the rectangle is covered.  Look for a block in
	// the rectangle which is farther away than the candidate.
	for g := start / blockSize; g <= end/blockSize; g++ {
		var testmask TileColumn
		for n := range blockRows {
			if depth < t.depth[n*blockCols+g] {
				testmask |= byteMask(n)
			}
		}
		if testmask.TestMask(vermask) {
			return true
		}
	}
	return false
}

// testPoint reports whether a candidate at pixel (x, y) of the tile,
// at the given depth, could be visible.
func (t *tile) testPoint(x, y int, depth float32) bool {
	if t.empty {
		return true
	}
	if depth < t.depth[(y/blockSize)*blockCols+x/blockSize] {
		return true
	}
	if t.full {
		return false
	}
	return !t.coverage[x].Bit(y)
}
