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

import "math/bits"

// Tile geometry.
const (
	// TileWidth is the number of pixel columns in a tile.
	TileWidth = 1 << tileColShift

	// TileHeight is the number of pixel rows in a tile.  One row maps to
	// one bit of a TileColumn.
	TileHeight = 1 << tileRowShift

	tileColShift = 5
	tileRowShift = 6

	// depth is tracked per 8x8 block of pixels
	blockSize   = 8
	blockCols   = TileWidth / blockSize  // 4
	blockRows   = TileHeight / blockSize // 8
	depthBlocks = blockCols * blockRows
)

// TileColumn holds the coverage of one pixel column of a tile.
// Bit y is set if row y of the column is covered.
type TileColumn uint64

const (
	emptyColumn TileColumn = 0
	fullColumn  TileColumn = ^TileColumn(0)
)

// startMask[y] has bits 0..y set, endMask[y] has bits y..63 set.
var startMask, endMask [TileHeight]TileColumn

func init() {
	for y := range TileHeight {
		startMask[y] = fullColumn >> (TileHeight - 1 - y)
		endMask[y] = fullColumn << y
	}
}

// rowSpan returns a column with rows y1..y2 (inclusive) set.
func rowSpan(y1, y2 int) TileColumn {
	return startMask[y2] & endMask[y1]
}

// IsEmpty reports whether no row of the column is covered.
func (c TileColumn) IsEmpty() bool {
	return c == emptyColumn
}

// IsFull reports whether every row of the column is covered.
func (c TileColumn) IsFull() bool {
	return c == fullColumn
}

// Invert returns the complement of c.
func (c TileColumn) Invert() TileColumn {
	return ^c
}

// AndNot returns the rows covered in c but not in o.
func (c TileColumn) AndNot(o TileColumn) TileColumn {
	return c &^ o
}

// Bit reports whether row y is covered.
func (c TileColumn) Bit(y int) bool {
	return c&(1<<uint(y)) != 0
}

// XorBit toggles row y.
func (c TileColumn) XorBit(y int) TileColumn {
	return c ^ (1 << uint(y))
}

// TestMask reports whether c and mask share a covered row.
func (c TileColumn) TestMask(mask TileColumn) bool {
	return c&mask != 0
}

// TestInvertedMask reports whether some row set in c is not set in mask.
func (c TileColumn) TestInvertedMask(mask TileColumn) bool {
	return c&^mask != 0
}

// Byte returns the 8 rows of block row n (rows 8n..8n+7) as a byte.
func (c TileColumn) Byte(n int) uint8 {
	return uint8(c >> (uint(n) * blockSize))
}

// byteMask returns a column with all rows of block row n set.
func byteMask(n int) TileColumn {
	return TileColumn(0xff) << (uint(n) * blockSize)
}

// Count returns the number of covered rows.
func (c TileColumn) Count() int {
	return bits.OnesCount64(uint64(c))
}
