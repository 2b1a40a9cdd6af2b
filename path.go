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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// InsertPath adds the area enclosed by p as an occluder at the given
// depth.  Coordinates are mapped to pixels by CTM.  All subpaths are
// implicitly closed and filled together using the even-odd rule.
func (b *Buffer) InsertPath(p path.Path, depth float32) {
	b.setPath(p)
	if !b.rasterize() {
		return
	}
	b.flushShape(depth)
}

// TestPath reports whether the area enclosed by p, at the given depth,
// could be visible.  Coordinates are mapped to pixels by CTM.
func (b *Buffer) TestPath(p path.Path, depth float32) bool {
	b.setPath(p)
	if !b.rasterize() {
		return false
	}
	return b.testShape(depth)
}

// setPath flattens p into device space contours in b.pts.
func (b *Buffer) setPath(p path.Path) {
	b.pts = b.pts[:0]
	b.contourEnd = b.contourEnd[:0]

	var current, start vec.Vec2 // device space
	inSubpath := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			b.endContour()
			current = b.toDevice(pts[0])
			start = current
			b.pts = append(b.pts, current)
			inSubpath = true

		case path.CmdLineTo:
			if !inSubpath {
				continue
			}
			current = b.toDevice(pts[0])
			b.pts = append(b.pts, current)

		case path.CmdQuadTo:
			if !inSubpath {
				continue
			}
			p1, p2 := b.toDevice(pts[0]), b.toDevice(pts[1])
			b.flattenQuadratic(current, p1, p2)
			current = p2

		case path.CmdCubeTo:
			if !inSubpath {
				continue
			}
			p1, p2, p3 := b.toDevice(pts[0]), b.toDevice(pts[1]), b.toDevice(pts[2])
			b.flattenCubic(current, p1, p2, p3)
			current = p3

		case path.CmdClose:
			if inSubpath {
				b.endContour()
				current = start
				inSubpath = false
			}
		}
	}
	b.endContour()
}

// endContour terminates the contour started by the last MoveTo, if any.
func (b *Buffer) endContour() {
	last := 0
	if n := len(b.contourEnd); n > 0 {
		last = b.contourEnd[n-1]
	}
	if len(b.pts) > last {
		b.contourEnd = append(b.contourEnd, len(b.pts))
	}
}

// toDevice maps a point from path coordinates to pixel coordinates.
func (b *Buffer) toDevice(p vec.Vec2) vec.Vec2 {
	m := b.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// flattenQuadratic appends the end points of a polygonal approximation of
// the quadratic Bézier curve p0, p1, p2 to b.pts.  All points are in
// device space and p0 has already been added.
func (b *Buffer) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	// error vector: e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if errDev := e.Length(); errDev > b.Flatness {
		n = int(math.Ceil(math.Sqrt(errDev / b.Flatness)))
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		b.pts = append(b.pts, pt)
	}
}

// flattenCubic appends the end points of a polygonal approximation of the
// cubic Bézier curve p0, p1, p2, p3 to b.pts.  All points are in device
// space and p0 has already been added.
func (b *Buffer) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	// Wang's formula: n = ceil(sqrt(3 * m / (4 * ε)))
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nFloat := math.Sqrt(3 * m / (4 * b.Flatness)); nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		b.pts = append(b.pts, pt)
	}
}
