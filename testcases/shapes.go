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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

// polygon builds a closed polygonal path through the given vertices.
func polygon(pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i, p := range pts {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, []vec.Vec2{p}) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) path.Path {
	return polygon(pt(x1, y1), pt(x2, y2), pt(x3, y3))
}

// rectangle builds an axis-aligned rectangle from two opposite corners.
func rectangle(x1, y1, x2, y2 float64) path.Path {
	return polygon(pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2))
}

// fivePointStar builds a five-pointed star (self-intersecting).  Under
// the even-odd rule the central pentagon is a hole.
func fivePointStar(cx, cy, r float64) path.Path {
	var pts [5]vec.Vec2
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	// connect every second point: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	return polygon(pts[0], pts[2], pts[4], pts[1], pts[3])
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) path.Path {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an approximate ellipse using four cubic Bezier curves.
func ellipse(cx, cy, rx, ry float64) path.Path {
	kx := rx * kappa
	ky := ry * kappa
	segs := [][]vec.Vec2{
		{pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)}, // top-right quadrant
		{pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)}, // top-left quadrant
		{pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)}, // bottom-left quadrant
		{pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)}, // bottom-right quadrant
	}
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{pt(cx+rx, cy)}) {
			return
		}
		for _, seg := range segs {
			if !yield(path.CmdCubeTo, seg) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// lens builds a shape bounded by two quadratic Bezier curves between
// (x1, y) and (x2, y), bulging by h up and down.
func lens(x1, x2, y, h float64) path.Path {
	mid := (x1 + x2) / 2
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{pt(x1, y)}) {
			return
		}
		if !yield(path.CmdQuadTo, []vec.Vec2{pt(mid, y-2*h), pt(x2, y)}) {
			return
		}
		if !yield(path.CmdQuadTo, []vec.Vec2{pt(mid, y+2*h), pt(x1, y)}) {
			return
		}
		yield(path.CmdClose, nil)
	}
}

// concat joins the subpaths of several paths into one path.
func concat(parts ...path.Path) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, p := range parts {
			for cmd, pts := range p {
				if !yield(cmd, pts) {
					return
				}
			}
		}
	}
}

// ring builds a square ring: an outer square with a square hole.
func ring(cx, cy, outer, inner float64) path.Path {
	return concat(
		rectangle(cx-outer, cy-outer, cx+outer, cy+outer),
		rectangle(cx-inner, cy-inner, cx+inner, cy+inner),
	)
}

// twoTriangles builds two separate, disjoint triangles.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) path.Path {
	return concat(
		triangle(cx1, cy1-size, cx1+size, cy1+size, cx1-size, cy1+size),
		triangle(cx2, cy2-size, cx2+size, cy2+size, cx2-size, cy2+size),
	)
}

// rectangleGrid builds a grid of rectangles separated by gaps.
func rectangleGrid(rows, cols, width, height int, gap float64) path.Path {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	var parts []path.Path
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap
			parts = append(parts, rectangle(x1, y1, x2, y2))
		}
	}
	return concat(parts...)
}
