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

func TestMasks(t *testing.T) {
	if startMask[0] != 1 || startMask[TileHeight-1] != fullColumn {
		t.Errorf("startMask ends = %x, %x", startMask[0], startMask[TileHeight-1])
	}
	if endMask[0] != fullColumn || endMask[TileHeight-1] != 1<<(TileHeight-1) {
		t.Errorf("endMask ends = %x, %x", endMask[0], endMask[TileHeight-1])
	}
	for y := range TileHeight {
		if got := startMask[y].Count(); got != y+1 {
			t.Errorf("startMask[%d] has %d rows", y, got)
		}
		if got := endMask[y].Count(); got != TileHeight-y {
			t.Errorf("endMask[%d] has %d rows", y, got)
		}
		if startMask[y]&endMask[y] != 1<<uint(y) {
			t.Errorf("startMask[%d] and endMask[%d] overlap in more than row %d", y, y, y)
		}
	}
}

func TestRowSpan(t *testing.T) {
	cases := []struct {
		y1, y2 int
		want   TileColumn
	}{
		{0, 0, 1},
		{3, 5, 0b111000},
		{0, 7, 0xff},
		{8, 15, 0xff00},
		{0, TileHeight - 1, fullColumn},
		{TileHeight - 1, TileHeight - 1, 1 << (TileHeight - 1)},
	}
	for _, c := range cases {
		if got := rowSpan(c.y1, c.y2); got != c.want {
			t.Errorf("rowSpan(%d, %d) = %x, want %x", c.y1, c.y2, got, c.want)
		}
	}
}

func TestTileColumnOps(t *testing.T) {
	c := rowSpan(0, 7)

	if c.IsEmpty() || c.IsFull() {
		t.Error("partial column reported empty or full")
	}
	if !emptyColumn.IsEmpty() || !fullColumn.IsFull() {
		t.Error("constant columns misclassified")
	}
	if c.Invert() != endMask[8] {
		t.Errorf("Invert = %x", c.Invert())
	}
	if got := c.AndNot(rowSpan(0, 3)); got != rowSpan(4, 7) {
		t.Errorf("AndNot = %x", got)
	}
	if !c.Bit(7) || c.Bit(8) {
		t.Error("Bit reports wrong rows")
	}
	if got := c.XorBit(8).XorBit(0); got != rowSpan(1, 8) {
		t.Errorf("XorBit = %x", got)
	}
	if !c.TestMask(rowSpan(7, 9)) || c.TestMask(rowSpan(8, 9)) {
		t.Error("TestMask wrong")
	}
	if !c.TestInvertedMask(rowSpan(0, 3)) || c.TestInvertedMask(rowSpan(0, 9)) {
		t.Error("TestInvertedMask wrong")
	}
	if got := (TileColumn(0xab) << 16).Byte(2); got != 0xab {
		t.Errorf("Byte(2) = %x", got)
	}
	if byteMask(2) != rowSpan(16, 23) {
		t.Errorf("byteMask(2) = %x", byteMask(2))
	}
	if c.Count() != 8 || fullColumn.Count() != TileHeight {
		t.Error("Count wrong")
	}
}
