// seehuhn.de/go/contour - isocontours of scalar fields
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

package contour

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Result holds the geometry produced by [Marcher.March].
type Result struct {
	// Segments contains the contour line, two points per segment.
	Segments []vec.Vec2

	// Triangles covers the region where the field is at least the
	// contour level, three points per triangle.
	Triangles []vec.Vec2

	// Cells is the number of grid cells which were visited.
	Cells int
}

// NumSegments returns the number of line segments.
func (r *Result) NumSegments() int {
	return len(r.Segments) / 2
}

// NumTriangles returns the number of triangles.
func (r *Result) NumTriangles() int {
	return len(r.Triangles) / 3
}

// Area returns the total signed area of the triangles.
// Since all triangles are wound counter-clockwise, this is the area of
// the region inside the contour.
func (r *Result) Area() float64 {
	var sum float64
	for i := 0; i+2 < len(r.Triangles); i += 3 {
		sum += triangleArea(r.Triangles[i], r.Triangles[i+1], r.Triangles[i+2])
	}
	return sum
}

// Outline returns the contour segments as a path.
// Each segment becomes a separate, open subpath.
func (r *Result) Outline() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		for i := 0; i+1 < len(r.Segments); i += 2 {
			buf[0] = r.Segments[i]
			if !yield(path.CmdMoveTo, buf[:]) {
				return
			}
			buf[0] = r.Segments[i+1]
			if !yield(path.CmdLineTo, buf[:]) {
				return
			}
		}
	}
}

// Mesh returns the triangles as a path.
// Each triangle becomes a closed subpath.
func (r *Result) Mesh() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		for i := 0; i+2 < len(r.Triangles); i += 3 {
			buf[0] = r.Triangles[i]
			if !yield(path.CmdMoveTo, buf[:]) {
				return
			}
			for _, p := range r.Triangles[i+1 : i+3] {
				buf[0] = p
				if !yield(path.CmdLineTo, buf[:]) {
					return
				}
			}
			if !yield(path.CmdClose, nil) {
				return
			}
		}
	}
}

// triangleArea returns the signed area of the triangle abc.
// The result is positive if the triangle is wound counter-clockwise.
func triangleArea(a, b, c vec.Vec2) float64 {
	u := b.Sub(a)
	v := c.Sub(a)
	return (u.X*v.Y - u.Y*v.X) / 2
}
