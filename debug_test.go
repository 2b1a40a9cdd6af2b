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
	"image"
	"math"
	"strings"
	"testing"
)

// leftHalf returns a 64x64 buffer with the left tile covered at depth 10.
func leftHalf() *Buffer {
	b := New(64, 64)
	b.InsertPolygon(rectPoly(0, 0, 32, 64), 10)
	return b
}

func TestDump(t *testing.T) {
	b := leftHalf()
	want := strings.Repeat("########        \n", 8)
	if got := b.Dump(); got != want {
		t.Errorf("Dump() =\n%s\nwant\n%s", got, want)
	}
}

func TestDensityChar(t *testing.T) {
	cases := []struct {
		count int
		want  byte
	}{
		{32, '#'},
		{28, '*'},
		{27, 'x'},
		{4, 'x'},
		{3, '.'},
		{1, '.'},
		{0, ' '},
	}
	for _, c := range cases {
		if got := densityChar(c.count); got != c.want {
			t.Errorf("densityChar(%d) = %q, want %q", c.count, got, c.want)
		}
	}
}

func TestDumpTile(t *testing.T) {
	b := leftHalf()

	s := b.DumpTile(0, 0)
	if !strings.HasPrefix(s, "tile 0,0 full=true empty=false depth=10..10\n") {
		t.Errorf("unexpected header:\n%s", s)
	}
	if got := strings.Count(s, strings.Repeat("#", TileWidth)); got != TileHeight {
		t.Errorf("%d covered rows, want %d", got, TileHeight)
	}

	if s := b.DumpTile(2, 0); s != "" {
		t.Errorf("DumpTile outside the buffer = %q", s)
	}
}

func TestImage(t *testing.T) {
	b := leftHalf()

	img := b.Image()
	if img.Bounds() != image.Rect(0, 0, 64, 64) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if v := img.GrayAt(5, 5).Y; v != 245 {
		t.Errorf("covered pixel = %d, want 245", v)
	}
	if v := img.GrayAt(40, 5).Y; v != 0 {
		t.Errorf("uncovered pixel = %d, want 0", v)
	}

	big := b.DebugImage(3)
	if big.Bounds() != image.Rect(0, 0, 192, 192) {
		t.Fatalf("zoomed bounds = %v", big.Bounds())
	}
	if v := big.GrayAt(17, 17).Y; v != 245 {
		t.Errorf("zoomed covered pixel = %d, want 245", v)
	}
	if v := big.GrayAt(121, 5).Y; v != 0 {
		t.Errorf("zoomed uncovered pixel = %d, want 0", v)
	}
}

func TestDepthShade(t *testing.T) {
	cases := []struct {
		d    float32
		want uint8
	}{
		{0, 255},
		{-5, 255},
		{100, 155},
		{300, 50},
		{float32(math.Inf(1)), 50},
		{float32(math.NaN()), 50},
	}
	for _, c := range cases {
		if got := depthShade(c.d); got != c.want {
			t.Errorf("depthShade(%g) = %d, want %d", c.d, got, c.want)
		}
	}
}
