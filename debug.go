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
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"
)

// Cells of the density map produced by Dump.
const (
	dumpCellW = 4
	dumpCellH = 8
)

// Dump returns a text map of the coverage.  Each character stands for
// a 4x8 pixel cell: ' ' is empty, '.' is sparsely covered, 'x' is
// partially covered, '*' is nearly and '#' is completely covered.
func (b *Buffer) Dump() string {
	var sb strings.Builder
	for ty := range b.tilesY {
		for cy := range TileHeight / dumpCellH {
			for tx := range b.tilesX {
				t := b.tileAt(tx, ty)
				for cx := range TileWidth / dumpCellW {
					sb.WriteByte(densityChar(t.cellCount(cx, cy)))
				}
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// cellCount returns the number of covered pixels in Dump cell (cx, cy).
func (t *tile) cellCount(cx, cy int) int {
	const cellArea = dumpCellW * dumpCellH
	switch {
	case t.empty:
		return 0
	case t.full:
		return cellArea
	}
	mask := TileColumn(0xff) << (cy * dumpCellH)
	count := 0
	for x := cx * dumpCellW; x < (cx+1)*dumpCellW; x++ {
		count += (t.coverage[x] & mask).Count()
	}
	return count
}

func densityChar(count int) byte {
	const cellArea = dumpCellW * dumpCellH
	switch {
	case count == cellArea:
		return '#'
	case count > cellArea*85/100:
		return '*'
	case count == 0:
		return ' '
	case count < cellArea*15/100:
		return '.'
	default:
		return 'x'
	}
}

// DumpTile describes the state of the tile at tile column tx and tile
// row ty: its flags, the depth of each 8x8 block, the queued line
// operations and the coverage bits.
func (b *Buffer) DumpTile(tx, ty int) string {
	if tx < 0 || ty < 0 || tx >= b.tilesX || ty >= b.tilesY {
		return ""
	}
	t := b.tileAt(tx, ty)

	var sb strings.Builder
	fmt.Fprintf(&sb, "tile %d,%d full=%t empty=%t depth=%g..%g\n",
		tx, ty, t.full, t.empty, t.minDepth, t.maxDepth)
	for n := range blockRows {
		sb.WriteString("  d")
		for g := range blockCols {
			fmt.Fprintf(&sb, " %g", t.depth[n*blockCols+g])
		}
		sb.WriteByte('\n')
	}
	for _, op := range t.ops {
		switch op.kind {
		case opFullVLine:
			fmt.Fprintf(&sb, "  fullvline x=%d\n", op.x1>>16)
		case opVLine:
			fmt.Fprintf(&sb, "  vline x=%d y=%d..%d\n", op.x1>>16, op.y1, op.y2)
		case opLine:
			fmt.Fprintf(&sb, "  line x=%d,%d y=%d..%d dx=%d\n",
				op.x1>>16, op.x2>>16, op.y1, op.y2, op.dx)
		}
	}
	for y := range TileHeight {
		sb.WriteString("  ")
		for x := range TileWidth {
			c := byte('.')
			if !t.empty && (t.full || t.coverage[x].Bit(y)) {
				c = '#'
			}
			sb.WriteByte(c)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Image returns the coverage of the viewport as a grayscale image.
// Uncovered pixels are black.  Covered pixels are shaded by the depth
// of their 8x8 block, from white (depth 0) to dark gray (depth 205 and
// beyond).
func (b *Buffer) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.width, b.height))
	for y := range b.height {
		row := img.Pix[y*img.Stride : y*img.Stride+b.width]
		for x := range row {
			covered, d := b.Covered(x, y)
			if covered {
				row[x] = depthShade(d)
			}
		}
	}
	return img
}

func depthShade(d float32) uint8 {
	v := 255 - d
	if v < 50 || v != v {
		v = 50
	} else if v > 255 {
		v = 255
	}
	return uint8(v)
}

// DebugImage returns Image scaled up by the integer factor zoom, using
// nearest neighbour sampling so that pixel boundaries stay visible.
func (b *Buffer) DebugImage(zoom int) *image.Gray {
	src := b.Image()
	if zoom <= 1 {
		return src
	}
	dst := image.NewGray(image.Rect(0, 0, b.width*zoom, b.height*zoom))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

