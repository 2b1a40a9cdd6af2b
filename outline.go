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
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// NearPlaneZ is the camera space depth of the near plane.  Outline
// vertices closer than this can only be inserted with splatting.
const NearPlaneZ = 0.2

// nearSplitZ is the depth used to decide whether an outline edge
// crosses the near plane.
const nearSplitZ = NearPlaneZ + 1e-6

// Outline is the silhouette of an object: a set of vertices in object
// space and the edges between them which form the projected outline.
// The edges must form closed loops.
type Outline struct {
	Vertices []Vec3
	Edges    [][2]int // pairs of indices into Vertices
}

// Projection maps camera space to pixel coordinates.  A point (x, y, z)
// with z > 0 is mapped to Screen applied to (x/z, y/z).
type Projection struct {
	Screen matrix.Matrix
}

// NewProjection returns the perspective projection with focal length fov
// (in pixels) and the optical axis at pixel (cx, cy).
func NewProjection(fov, cx, cy float64) Projection {
	return Projection{Screen: matrix.Scale(fov, fov).Translate(cx, cy)}
}

// project maps the perspective-divided point (x, y) to pixels.
func (p Projection) project(x, y float64) vec.Vec2 {
	m := p.Screen
	return vec.Vec2{
		X: m[0]*x + m[2]*y + m[4],
		Y: m[1]*x + m[3]*y + m[5],
	}
}

// InsertOutline adds the area enclosed by the projected outline as an
// occluder.  The depth of the occluder is the largest camera space depth
// of any vertex of the outline.
//
// If splat is false, the outline is rejected when one of its edge
// vertices is in front of the near plane.  If splat is true, such
// vertices are projected as if they were on the near plane and edges
// crossing the near plane are split there.  InsertOutline reports
// whether the outline was inserted.
func (b *Buffer) InsertOutline(o *Outline, cam Transform, proj Projection, splat bool) bool {
	depth, ok := b.rasterizeOutline(o, cam, proj, splat)
	if !ok {
		return false
	}
	b.flushShape(depth)
	return true
}

// rasterizeOutline projects the outline and queues its edges on the tiles.
// It returns the depth of the outline.
func (b *Buffer) rasterizeOutline(o *Outline, cam Transform, proj Projection, splat bool) (float32, bool) {
	n := len(o.Vertices)
	if n == 0 || len(o.Edges) == 0 {
		return 0, false
	}
	b.camera = slices.Grow(b.camera[:0], n)[:n]
	b.used = slices.Grow(b.used[:0], n)[:n]
	b.xs = slices.Grow(b.xs[:0], n)[:n]
	b.ys = slices.Grow(b.ys[:0], n)[:n]
	clear(b.used)

	for _, e := range o.Edges {
		b.used[e[0]] = true
		b.used[e[1]] = true
	}

	maxDepth := math.Inf(-1)
	for i, v := range o.Vertices {
		c := cam.Apply(v)
		b.camera[i] = c
		maxDepth = max(maxDepth, c[2])
	}

	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := math.MinInt, math.MinInt
	needSplit := false
	for i, c := range b.camera {
		if !b.used[i] {
			continue
		}
		z := c[2]
		if z <= NearPlaneZ {
			if !splat {
				Logger().Debug("covbuf: outline rejected at near plane",
					"vertex", i, "z", z)
				return 0, false
			}
			needSplit = true
			z = NearPlaneZ
		}
		p := proj.project(c[0]/z, c[1]/z)
		x, y := roundCoord(p.X), roundCoord(p.Y)
		b.xs[i], b.ys[i] = x, y
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}
	if maxX <= 0 || maxY <= 0 || minX >= b.width || minY >= b.height {
		return 0, false
	}

	b.resetDirty()
	for _, e := range o.Edges {
		i1, i2 := e[0], e[1]
		x1, y1 := b.xs[i1], b.ys[i1]
		x2, y2 := b.xs[i2], b.ys[i2]

		if needSplit {
			c1, c2 := b.camera[i1], b.camera[i2]
			if (c1[2] <= nearSplitZ) != (c2[2] <= nearSplitZ) {
				t := (NearPlaneZ - c1[2]) / (c2[2] - c1[2])
				c := c1.Add(c2.Sub(c1).Scale(t))
				p := proj.project(c[0]/NearPlaneZ, c[1]/NearPlaneZ)
				xi, yi := roundCoord(p.X), roundCoord(p.Y)
				b.outlineEdge(x1, y1, xi, yi)
				b.outlineEdge(xi, yi, x2, y2)
				continue
			}
		}
		b.outlineEdge(x1, y1, x2, y2)
	}
	return float32(maxDepth), true
}

// outlineEdge rasterises one projected outline edge.
func (b *Buffer) outlineEdge(xa, ya, xb, yb int) {
	if ya == yb {
		return
	}
	if ya > yb {
		xa, ya, xb, yb = xb, yb, xa, ya
	}
	b.drawEdge(xa, ya, xb, yb, 0)
}
