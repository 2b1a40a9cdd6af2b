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
	"math/bits"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Buffer is a coverage buffer for one viewport.
//
// Occluders are inserted with the Insert* methods, and candidates are
// queried with the Test* methods.  All queries are conservative: a
// result of false means that the candidate is certainly hidden behind
// the inserted occluders.  Depth values grow with distance from the
// viewer.
//
// The caller creates one instance and reuses it for every frame, calling
// Initialize at the start of each frame.  Internal buffers grow as needed
// but never shrink.  A Buffer is not safe for concurrent use.
type Buffer struct {
	// CTM maps the coordinates of paths given to InsertPath and TestPath
	// to pixel coordinates.  Must be a non-singular matrix.
	CTM matrix.Matrix

	// Flatness is the curve flattening tolerance in pixels.
	// Must be > 0.
	Flatness float64

	width, height int
	widthPo2      int // width rounded up to a power of two
	tilesX        int
	tilesY        int

	tiles []tile

	// dirtyLeft and dirtyRight give, for every tile row, the range of
	// tile columns touched by the shape currently being rasterised.
	// dirtyRight may be tilesX, which stands for the last column.
	dirtyLeft  []int
	dirtyRight []int

	scratch [TileWidth]TileColumn

	// Vertex buffers (reused across calls)
	pts        []vec.Vec2 // vertices of all contours, contiguous
	contourEnd []int      // end index of each contour in pts
	xs, ys     []int      // rounded vertex coordinates
	camera     []Vec3     // camera space vertices for outlines
	used       []bool     // outline vertices referenced by an edge
}

// New allocates a buffer for a viewport of the given size in pixels.
func New(width, height int) *Buffer {
	b := &Buffer{
		CTM:      matrix.Identity,
		Flatness: defaultFlatness,
	}
	b.Setup(width, height)
	return b
}

// Setup resizes the buffer for a viewport of the given size in pixels
// and leaves every tile empty.  Sizes are clamped to at least one pixel.
//
// Tile rows are allocated for ceil(height/64) rows.  The width is
// padded to the next power of two, so the rightmost tiles may lie
// partly or entirely outside the viewport.
func (b *Buffer) Setup(width, height int) {
	width = max(width, 1)
	height = max(height, 1)

	b.width = width
	b.height = height
	b.widthPo2 = max(1<<bits.Len(uint(width-1)), TileWidth)
	b.tilesX = b.widthPo2 >> tileColShift
	b.tilesY = (height + TileHeight - 1) >> tileRowShift

	n := b.tilesX * b.tilesY
	if cap(b.tiles) < n {
		b.tiles = make([]tile, n)
	}
	b.tiles = b.tiles[:n]
	if cap(b.dirtyLeft) < b.tilesY {
		b.dirtyLeft = make([]int, b.tilesY)
		b.dirtyRight = make([]int, b.tilesY)
	}
	b.dirtyLeft = b.dirtyLeft[:b.tilesY]
	b.dirtyRight = b.dirtyRight[:b.tilesY]

	b.Initialize()

	Logger().Debug("covbuf: setup",
		"width", width, "height", height,
		"paddedWidth", b.widthPo2,
		"tilesX", b.tilesX, "tilesY", b.tilesY)
}

// Initialize empties every tile.  This is called once per frame, before
// the first occluder is inserted.
func (b *Buffer) Initialize() {
	for i := range b.tiles {
		b.tiles[i].makeEmpty()
	}
	b.resetDirty()
}

// Width returns the viewport width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the viewport height in pixels.
func (b *Buffer) Height() int { return b.height }

// tileAt returns the tile at tile column tx and tile row ty.
func (b *Buffer) tileAt(tx, ty int) *tile {
	return &b.tiles[ty*b.tilesX+tx]
}

func (b *Buffer) resetDirty() {
	for i := range b.dirtyLeft {
		b.dirtyLeft[i] = math.MaxInt
		b.dirtyRight[i] = -1
	}
}

// markTileDirty extends the dirty span of tile row ty to include tile
// column tx.
func (b *Buffer) markTileDirty(tx, ty int) {
	if debugChecks {
		assert(ty >= 0 && ty < b.tilesY, "tile row %d out of range", ty)
		assert(tx >= 0 && tx <= b.tilesX, "tile column %d out of range", tx)
	}
	b.dirtyLeft[ty] = min(b.dirtyLeft[ty], tx)
	b.dirtyRight[ty] = max(b.dirtyRight[ty], tx)
}

// dirtySpan returns the range of tile columns to walk in tile row ty.
// The range is empty if the row was not touched.
func (b *Buffer) dirtySpan(ty int) (left, right int) {
	return b.dirtyLeft[ty], min(b.dirtyRight[ty], b.tilesX-1)
}

// Covered reports whether pixel (x, y) is covered, and if so, the depth
// recorded for its 8x8 block.
func (b *Buffer) Covered(x, y int) (bool, float32) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return false, 0
	}
	t := b.tileAt(x>>tileColShift, y>>tileRowShift)
	if t.empty {
		return false, 0
	}
	lx, ly := x&(TileWidth-1), y&(TileHeight-1)
	if !t.full && !t.coverage[lx].Bit(ly) {
		return false, 0
	}
	return true, t.depth[(ly/blockSize)*blockCols+lx/blockSize]
}

// Default values for buffer parameters.
const (
	// defaultFlatness is the default curve flattening tolerance in
	// pixels.  Coverage is binary, so half a pixel is the resolution
	// limit and 0.25 is comfortably below it.
	defaultFlatness = 0.25
)

// Numerical limits.
const (
	// maxCoord bounds vertex coordinates before conversion to fixed
	// point, so that intermediate products fit into an int.
	maxCoord = 1 << 30

	// rectClamp bounds the corners of test rectangles.
	rectClamp = 10000
)
