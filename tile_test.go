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

import "testing"

// newEmptyTile returns a tile in the state left by Initialize.
func newEmptyTile() *tile {
	t := &tile{}
	t.makeEmpty()
	return t
}

// fillRect queues and flushes the rectangle covering columns x1..x2-1
// and rows y1..y2 of the tile.
func fillRect(t *tile, x1, y1, x2, y2 int, depth float32) {
	var scratch [TileWidth]TileColumn
	t.pushVLine(x1<<16, y1, y2)
	if x2 < TileWidth {
		t.pushVLine(x2<<16, y1, y2)
	}
	fvalue := emptyColumn
	t.flush(&fvalue, depth, &scratch)
}

// queueRect queues the rectangle covering columns x1..x2-1 and rows
// y1..y2 of the tile without flushing.
func queueRect(t *tile, x1, y1, x2, y2 int) {
	t.pushVLine(x1<<16, y1, y2)
	if x2 < TileWidth {
		t.pushVLine(x2<<16, y1, y2)
	}
}

func TestMaterialize(t *testing.T) {
	tl := newEmptyTile()
	var scratch [TileWidth]TileColumn

	tl.pushFullVLine(3 << 16)
	tl.pushVLine(5<<16, 10, 2) // rows given bottom to top
	tl.pushLine(0, 0, 31<<16, 31, 1<<16)
	tl.materialize(&scratch)

	if len(tl.ops) != 0 {
		t.Errorf("%d operations left after materialize", len(tl.ops))
	}
	for x := range TileWidth {
		want := TileColumn(1) << uint(x)
		switch x {
		case 3:
			want ^= fullColumn
		case 5:
			want ^= rowSpan(2, 10)
		}
		if scratch[x] != want {
			t.Errorf("column %d = %x, want %x", x, scratch[x], want)
		}
	}
}

func TestSweepOps(t *testing.T) {
	tl := newEmptyTile()
	tl.pushFullVLine(0)
	tl.pushVLine(7<<16, 0, 9)
	tl.pushLine(1<<16, 20, 9<<16, 28, 1<<16)

	fvalue := emptyColumn
	tl.sweepOps(&fvalue)
	want := endMask[10] ^ rowSpan(20, 28)
	if fvalue != want {
		t.Errorf("fvalue = %x, want %x", fvalue, want)
	}
	if len(tl.ops) != 0 {
		t.Error("queue not cleared")
	}
}

func TestFlushEmpty(t *testing.T) {
	tl := newEmptyTile()
	fillRect(tl, 4, 8, 12, 15, 3)

	if tl.empty || tl.full {
		t.Fatalf("empty=%t full=%t", tl.empty, tl.full)
	}
	for x := range TileWidth {
		want := emptyColumn
		if x >= 4 && x < 12 {
			want = rowSpan(8, 15)
		}
		if tl.coverage[x] != want {
			t.Errorf("column %d = %x, want %x", x, tl.coverage[x], want)
		}
	}
	// blocks touched by the rectangle get its depth, others stay unset
	for n := range blockRows {
		for g := range blockCols {
			want := unsetDepth
			if n == 1 && g <= 1 {
				want = 3
			}
			if d := tl.depth[n*blockCols+g]; d != want {
				t.Errorf("block %d,%d depth %g, want %g", g, n, d, want)
			}
		}
	}
	if tl.minDepth != 3 || tl.maxDepth != 3 {
		t.Errorf("depth range %g..%g", tl.minDepth, tl.maxDepth)
	}
}

func TestFlushFullConst(t *testing.T) {
	var scratch [TileWidth]TileColumn

	tl := newEmptyTile()
	fvalue := fullColumn
	tl.flush(&fvalue, 4, &scratch)
	if !tl.full || tl.empty || fvalue != fullColumn {
		t.Fatalf("full=%t empty=%t fvalue=%x", tl.full, tl.empty, fvalue)
	}
	for i, d := range tl.depth {
		if d != 4 {
			t.Fatalf("block %d depth %g", i, d)
		}
	}

	// a closer full cover moves every block closer
	tl.flush(&fvalue, 2, &scratch)
	if tl.minDepth != 2 || tl.depth[0] != 2 {
		t.Errorf("depth after closer cover: min=%g block=%g", tl.minDepth, tl.depth[0])
	}
	// a farther one leaves the blocks alone
	tl.flush(&fvalue, 9, &scratch)
	if tl.depth[0] != 2 {
		t.Errorf("depth after farther cover: %g", tl.depth[0])
	}

	// partly covered tiles become full
	tl = newEmptyTile()
	fillRect(tl, 0, 0, 8, 7, 6)
	tl.flush(&fvalue, 8, &scratch)
	if !tl.full {
		t.Error("tile not full after full cover")
	}
	if tl.depth[0] != 6 || tl.depth[1] != 8 {
		t.Errorf("block depths %g, %g, want 6, 8", tl.depth[0], tl.depth[1])
	}
}

func TestFlushNoChange(t *testing.T) {
	var scratch [TileWidth]TileColumn

	tl := newEmptyTile()
	fvalue := emptyColumn
	tl.flush(&fvalue, 1, &scratch)
	if !tl.empty {
		t.Error("empty flush activated the tile")
	}

	// ops on a full tile only update fvalue
	fvalue = fullColumn
	tl.flush(&fvalue, 5, &scratch)
	tl.pushVLine(3<<16, 0, 9)
	fvalue = emptyColumn
	tl.flush(&fvalue, 1, &scratch)
	if fvalue != rowSpan(0, 9) {
		t.Errorf("fvalue = %x", fvalue)
	}
	if tl.minDepth != 5 {
		t.Errorf("full tile depth changed to %g", tl.minDepth)
	}
}

func TestFlushGeneralDepth(t *testing.T) {
	tl := newEmptyTile()

	// upper half of block (0, 0)
	fillRect(tl, 0, 0, 8, 3, 5)
	if tl.depth[0] != 5 {
		t.Fatalf("depth %g, want 5", tl.depth[0])
	}

	// lower half, farther away: the block keeps the farthest depth
	fillRect(tl, 0, 4, 8, 7, 8)
	if tl.depth[0] != 8 {
		t.Errorf("depth after partial cover %g, want 8", tl.depth[0])
	}
	// blocks without coverage do not count towards the depth range
	if tl.minDepth != 8 || tl.maxDepth != 8 {
		t.Errorf("depth range %g..%g, want 8..8", tl.minDepth, tl.maxDepth)
	}

	// covering the whole block closer moves it closer; the partly
	// covered block below takes the new depth
	fillRect(tl, 0, 0, 8, 15, 2)
	if tl.depth[0] != 2 {
		t.Errorf("depth after full block cover %g, want 2", tl.depth[0])
	}
	if tl.depth[blockCols] != 2 {
		t.Errorf("depth of fresh block %g, want 2", tl.depth[blockCols])
	}
	if tl.minDepth != 2 {
		t.Errorf("minimum depth %g, want 2", tl.minDepth)
	}

	// nothing new is covered, so nothing changes
	fillRect(tl, 0, 0, 8, 7, 20)
	if tl.depth[0] != 2 {
		t.Errorf("depth after redundant cover %g, want 2", tl.depth[0])
	}
}

func TestFlushGeneralFull(t *testing.T) {
	tl := newEmptyTile()
	fillRect(tl, 0, 0, 16, TileHeight-1, 1)
	if tl.full {
		t.Fatal("half tile reported full")
	}
	fillRect(tl, 16, 0, TileWidth, TileHeight-1, 2)
	if !tl.full {
		t.Error("tile not full after covering both halves")
	}
	if tl.minDepth != 1 || tl.maxDepth != 2 {
		t.Errorf("depth range %g..%g", tl.minDepth, tl.maxDepth)
	}
}

func TestTestFlush(t *testing.T) {
	var scratch [TileWidth]TileColumn

	// rows 0..31 of the whole tile at depth 5
	tl := newEmptyTile()
	fillRect(tl, 0, 0, TileWidth, 31, 5)

	cases := []struct {
		name           string
		x1, y1, x2, y2 int
		depth          float32
		visible        bool
	}{
		{"behind", 8, 8, 16, 15, 6, false},
		{"same depth", 8, 8, 16, 15, 5, false},
		{"in front", 8, 8, 16, 15, 4, true},
		{"uncovered", 8, 40, 16, 47, 6, true},
		{"straddling", 8, 28, 16, 35, 6, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			queueRect(tl, c.x1, c.y1, c.x2, c.y2)
			fvalue := emptyColumn
			got := tl.testFlush(&fvalue, c.depth, &scratch)
			tl.ops = tl.ops[:0]
			if got != c.visible {
				t.Errorf("testFlush = %t, want %t", got, c.visible)
			}
		})
	}

	// testing does not change the tile
	for x := range TileWidth {
		if tl.coverage[x] != rowSpan(0, 31) {
			t.Fatalf("column %d changed to %x", x, tl.coverage[x])
		}
	}
}

func TestTestFlushBlockDepth(t *testing.T) {
	var scratch [TileWidth]TileColumn

	// two blocks at different depths
	tl := newEmptyTile()
	fillRect(tl, 0, 0, 8, 7, 2)
	fillRect(tl, 8, 0, 16, 7, 9)

	queueRect(tl, 0, 0, 8, 7)
	fvalue := emptyColumn
	if tl.testFlush(&fvalue, 5, &scratch) {
		t.Error("candidate behind near block reported visible")
	}
	queueRect(tl, 8, 0, 16, 7)
	fvalue = emptyColumn
	if !tl.testFlush(&fvalue, 5, &scratch) {
		t.Error("candidate in front of far block reported hidden")
	}
	tl.ops = tl.ops[:0]
}

func TestTestFlushFullTile(t *testing.T) {
	var scratch [TileWidth]TileColumn

	tl := newEmptyTile()
	fvalue := fullColumn
	tl.flush(&fvalue, 5, &scratch)

	tl.pushVLine(5<<16, 0, 9)
	fvalue = emptyColumn
	if tl.testFlush(&fvalue, 6, &scratch) {
		t.Error("candidate behind full tile reported visible")
	}
	if fvalue != rowSpan(0, 9) || len(tl.ops) != 0 {
		t.Errorf("fvalue=%x, %d ops left", fvalue, len(tl.ops))
	}

	fvalue = fullColumn
	if tl.testFlush(&fvalue, 5, &scratch) {
		t.Error("candidate at tile depth reported visible")
	}
	fvalue = fullColumn
	if !tl.testFlush(&fvalue, 4, &scratch) {
		t.Error("candidate in front of full tile reported hidden")
	}
	tl.ops = tl.ops[:0]

	empty := newEmptyTile()
	if !empty.testFlush(&fvalue, 100, &scratch) {
		t.Error("candidate in empty tile reported hidden")
	}
	fvalue = emptyColumn
	if empty.testFlush(&fvalue, 100, &scratch) {
		t.Error("tile without candidate coverage reported visible")
	}
}

func TestTestRect(t *testing.T) {
	var scratch [TileWidth]TileColumn

	full := newEmptyTile()
	fvalue := fullColumn
	full.flush(&fvalue, 5, &scratch)

	half := newEmptyTile()
	fillRect(half, 0, 0, TileWidth, 31, 5)

	cases := []struct {
		name       string
		tile       *tile
		vermask    TileColumn
		start, end int
		depth      float32
		visible    bool
	}{
		{"full behind", full, fullColumn, 0, 31, 6, false},
		{"full same depth", full, fullColumn, 0, 31, 5, false},
		{"full part behind", full, rowSpan(3, 9), 4, 20, 6, false},
		{"half covered rows", half, rowSpan(0, 31), 0, 31, 6, false},
		{"half uncovered rows", half, rowSpan(0, 40), 0, 31, 6, true},
		{"half front", half, rowSpan(0, 31), 0, 31, 4, true},
		{"empty", newEmptyTile(), fullColumn, 0, 31, 100, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.tile.testRect(c.vermask, c.start, c.end, c.depth); got != c.visible {
				t.Errorf("testRect = %t, want %t", got, c.visible)
			}
		})
	}

	if full.testFullRect(5) || !full.testFullRect(4) || !half.testFullRect(100) {
		t.Error("testFullRect wrong")
	}
}

func TestTestRectBlockDepth(t *testing.T) {
	// a full tile with one block farther away than the rest
	tl := newEmptyTile()
	fillRect(tl, 0, 0, TileWidth, TileHeight-1, 3)
	tl.depth[2*blockCols+1] = 9
	tl.updateDepthRange()

	if !tl.testRect(rowSpan(16, 23), 8, 15, 5) {
		t.Error("candidate in front of far block reported hidden")
	}
	if tl.testRect(rowSpan(24, 31), 8, 15, 5) {
		t.Error("candidate behind near block reported visible")
	}
}

func TestTestPoint(t *testing.T) {
	tl := newEmptyTile()
	fillRect(tl, 0, 0, TileWidth, 31, 5)

	cases := []struct {
		x, y    int
		depth   float32
		visible bool
	}{
		{3, 3, 6, false},
		{3, 3, 5, false},
		{3, 3, 4, true},
		{3, 40, 6, true},
		{31, 31, 6, false},
		{31, 32, 6, true},
	}
	for _, c := range cases {
		if got := tl.testPoint(c.x, c.y, c.depth); got != c.visible {
			t.Errorf("testPoint(%d, %d, %g) = %t, want %t",
				c.x, c.y, c.depth, got, c.visible)
		}
	}
	if !newEmptyTile().testPoint(0, 0, 100) {
		t.Error("point in empty tile reported hidden")
	}
}
