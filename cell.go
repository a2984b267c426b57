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
	"math/bits"

	"seehuhn.de/go/geom/vec"
)

// Cell is one square of the sampling grid.
//
// Corners are stored in clockwise order, starting at the bottom-left:
//
//	3 --- 2
//	|     |
//	0 --- 1
//
// Value[i] is the field value at Corner[i].
type Cell struct {
	Corner [4]vec.Vec2
	Value  [4]float64
}

// Mask encodes which corners of a cell are inside the contour.
// Bit i is set if corner i is inside.
type Mask uint8

// Inside returns the number of corners which are inside.
func (m Mask) Inside() int {
	return bits.OnesCount8(uint8(m & 15))
}

// IsSaddle reports whether exactly two diagonally opposite corners are inside.
func (m Mask) IsSaddle() bool {
	return m == 5 || m == 10
}

// Mask returns the inside/outside code of the cell.
// A corner is inside if its value is greater than or equal to iso.
func (c *Cell) Mask(iso float64) Mask {
	var m Mask
	for i, v := range c.Value {
		if v >= iso {
			m |= 1 << i
		}
	}
	return m
}

// Emit appends the geometry for the cell to segments and triangles and
// returns the extended slices.
//
// Triangles cover the part of the cell where the field is at least iso.
// All triangles are wound counter-clockwise when the y axis points up.
// Segments approximate the part of the contour line crossing the cell.
//
// The two saddle configurations (mask 5 and 10) are always resolved as two
// separate corners: two unconnected triangles and two segments are emitted,
// the value at the cell centre is not consulted.
func (c *Cell) Emit(iso float64, segments, triangles []vec.Vec2) ([]vec.Vec2, []vec.Vec2) {
	return caseTable[c.Mask(iso)](c, iso, segments, triangles)
}

// cross returns the crossing point on the edge from corner i to corner j.
func (c *Cell) cross(i, j int, iso float64) vec.Vec2 {
	return Interpolate(c.Corner[i], c.Corner[j], c.Value[i], c.Value[j], iso)
}

// Interpolate returns the point on the segment from p1 to p2 where the
// linear interpolation between the values v1 at p1 and v2 at p2 equals iso.
//
// If v1 == v2 there is no unique crossing and p1 is returned.
func Interpolate(p1, p2 vec.Vec2, v1, v2, iso float64) vec.Vec2 {
	if v1 == v2 {
		return p1
	}
	mu := (iso - v1) / (v2 - v1)
	return p1.Add(p2.Sub(p1).Mul(mu))
}

type caseFunc func(c *Cell, iso float64, segs, tris []vec.Vec2) ([]vec.Vec2, []vec.Vec2)

// caseTable maps every mask to the code which generates its geometry.
// The vertex order within each case determines triangle winding and
// segment orientation, and must not be changed.
var caseTable = [16]caseFunc{
	0:  emitNone,
	1:  emitCorner0,
	2:  emitCorner1,
	3:  emitBottom,
	4:  emitCorner2,
	5:  emitSaddle02,
	6:  emitRight,
	7:  emitAllBut3,
	8:  emitCorner3,
	9:  emitLeft,
	10: emitSaddle13,
	11: emitAllBut2,
	12: emitTop,
	13: emitAllBut1,
	14: emitAllBut0,
	15: emitFull,
}

func emitNone(_ *Cell, _ float64, segs, tris []vec.Vec2) ([]vec.Vec2, []vec.Vec2) {
	return segs, tris
}

// one corner inside

func emitCorner0(c *Cell, iso float64, segs, tris []vec.Vec2) ([]vec.Vec2, []vec.Vec2) {
	a := c.Corner[0]
	b := c.cross(0, 1, iso)
	d := c.cross(0, 3, iso)
	return append(segs, b, d), append(tris, a, b, d)
}

func emitCorner1(c *Cell, iso float64, segs, tris []vec.Vec2) ([]vec.Vec2, []vec.Vec2) {
	a := c.cross(1, 0, iso)
	b := c.Corner[1]
	d := c.cross(1, 2, iso)
	return append(segs, a, d), append(tris, a, b, d)
}

func emitCorner2(c *Cell, iso float64, segs, tris []vec.Vec2) ([]vec.Vec2, []vec.Vec2) {
	a := c.cross(2, 1, iso)
	b := c.Corner[2]
	d := c.cross(2, 3, iso)
	return append(segs, a, d), append(tris, a, b, d)
}

func emitCorner3(c *Cell, iso float64, segs, tris []vec.Vec2) ([]vec.Vec2, []vec.Vec2) {
	a := c.cross(3, 0, iso)
	b := c.cross(3, 2, iso)
	d := c.Corner[3]
	return append(segs, a, b), append(tris, a, b, d)
}

// two adjacent corners inside

func emitBottom(c *Cell, iso float64, segs, tris []vec.Vec2) ([]vec.Vec2, []vec.Vec2) {
	a := c.Corner[0]
	b := c.Corner[1]
	p := c.cross(1, 2, iso)
	d := c.cross(0, 3, iso)
	return append(segs, d, p), append(tris, a, b, d, d, b, p)
}

func emitRight(c *Cell, iso float64, segs, tris []vec.Vec2) ([]vec.Vec2, []vec.Vec2) {
	a := c.cross(1, 0, iso)
	b := c.Corner[1]
	p := c.Corner[2]
	d := c.cross(2, 3, iso)
	return append(segs, a, d), append(tris, a, b, d, d, b, p)
}

func emitLeft(c *Cell, iso float64, segs, tris []vec.Vec2) ([]vec.Vec2, []vec.Vec2) {
	a := c.Corner[0]
	b := c.cross(0, 1, iso)
	p := c.cross(3, 2, iso)
	d := c.Corner[3]
	return append(segs, b, p), append(tris, a, b, d, d, b, p)
}

func emitTop(c *Cell, iso float64, segs, tris []vec.Vec2) ([]vec.Vec2, []vec.Vec2) {
	a := c.cross(3, 0, iso)
	b := c.cross(2, 1, iso)
	p := c.Corner[2]
	d := c.Corner[3]
	return append(segs, a, b), append(tris, a, b, d, d, b, p)
}

// two opposite corners inside

func emitSaddle02(c *Cell, iso float64, segs, tris []vec.Vec2) ([]vec.Vec2, []vec.Vec2) {
	a := c.Corner[0]
	b := c.cross(0, 1, iso)
	p := c.cross(0, 3, iso)
	d := c.cross(2, 1, iso)
	e := c.Corner[2]
	f := c.cross(2, 3, iso)
	return append(segs, b, p, d, f), append(tris, a, b, p, d, e, f)
}

func emitSaddle13(c *Cell, iso float64, segs, tris []vec.Vec2) ([]vec.Vec2, []vec.Vec2) {
	a := c.cross(1, 0, iso)
	b := c.Corner[1]
	p := c.cross(1, 2, iso)
	d := c.cross(3, 0, iso)
	e := c.cross(3, 2, iso)
	f := c.Corner[3]
	return append(segs, a, p, d, e), append(tris, a, b, p, d, e, f)
}

// three corners inside

func emitAllBut3(c *Cell, iso float64, segs, tris []vec.Vec2) ([]vec.Vec2, []vec.Vec2) {
	a := c.Corner[0]
	b := c.Corner[1]
	p := c.Corner[2]
	d := c.cross(2, 3, iso)
	e := c.cross(0, 3, iso)
	return append(segs, e, d), append(tris, a, b, e, e, b, d, d, b, p)
}

func emitAllBut2(c *Cell, iso float64, segs, tris []vec.Vec2) ([]vec.Vec2, []vec.Vec2) {
	a := c.Corner[0]
	b := c.Corner[1]
	p := c.cross(1, 2, iso)
	d := c.cross(3, 2, iso)
	e := c.Corner[3]
	return append(segs, p, d), append(tris, a, b, p, a, p, d, a, d, e)
}

func emitAllBut1(c *Cell, iso float64, segs, tris []vec.Vec2) ([]vec.Vec2, []vec.Vec2) {
	a := c.Corner[0]
	b := c.cross(0, 1, iso)
	p := c.cross(2, 1, iso)
	d := c.Corner[2]
	e := c.Corner[3]
	return append(segs, b, p), append(tris, a, b, e, e, b, p, e, p, d)
}

func emitAllBut0(c *Cell, iso float64, segs, tris []vec.Vec2) ([]vec.Vec2, []vec.Vec2) {
	a := c.cross(1, 0, iso)
	b := c.Corner[1]
	p := c.Corner[2]
	d := c.Corner[3]
	e := c.cross(3, 0, iso)
	return append(segs, a, e), append(tris, a, b, p, a, p, e, e, p, d)
}

// all corners inside: the whole cell, no contour

func emitFull(c *Cell, _ float64, segs, tris []vec.Vec2) ([]vec.Vec2, []vec.Vec2) {
	v := &c.Corner
	return segs, append(tris, v[0], v[1], v[3], v[3], v[1], v[2])
}
