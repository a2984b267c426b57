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
	"fmt"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"
)

// unitCell returns the cell [0,1]x[0,1] with the given corner values.
func unitCell(values [4]float64) *Cell {
	return &Cell{
		Corner: [4]vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		Value:  values,
	}
}

// genericValues returns corner values which produce the given mask for
// isovalue 0. All values are distinct, so that no crossing point is
// at an edge midpoint.
func genericValues(m Mask) [4]float64 {
	in := [4]float64{0.9, 0.7, 0.8, 0.6}
	out := [4]float64{-0.3, -0.5, -0.2, -0.4}
	var v [4]float64
	for i := range v {
		if m&(1<<i) != 0 {
			v[i] = in[i]
		} else {
			v[i] = out[i]
		}
	}
	return v
}

func emitAll(c *Cell, iso float64) (segs, tris []vec.Vec2) {
	return c.Emit(iso, nil, nil)
}

func TestInterpolate(t *testing.T) {
	p1 := vec.Vec2{X: 1, Y: 2}
	p2 := vec.Vec2{X: 3, Y: 2}

	cases := []struct {
		v1, v2, iso float64
		want        vec.Vec2
	}{
		{0, 1, 0.5, vec.Vec2{X: 2, Y: 2}},
		{0, 1, 0, p1},
		{0, 1, 1, p2},
		{4, 0, 1, vec.Vec2{X: 2.5, Y: 2}},
		{-1, 3, 0, vec.Vec2{X: 1.5, Y: 2}},
		{2, 2, 2, p1}, // degenerate edge
	}
	for _, c := range cases {
		got := Interpolate(p1, p2, c.v1, c.v2, c.iso)
		if got != c.want {
			t.Errorf("Interpolate(%v, %v, %g, %g, %g) = %v, want %v",
				p1, p2, c.v1, c.v2, c.iso, got, c.want)
		}
	}
}

func TestMask(t *testing.T) {
	for m := range Mask(16) {
		c := unitCell(genericValues(m))
		if got := c.Mask(0); got != m {
			t.Errorf("mask %d: got %d", m, got)
		}
	}

	// ties count as inside
	c := unitCell([4]float64{1, 0.5, 1, 2})
	if got := c.Mask(1); got != 13 {
		t.Errorf("ties: got mask %d, want 13", got)
	}
}

func TestMaskInside(t *testing.T) {
	want := [16]int{0, 1, 1, 2, 1, 2, 2, 3, 1, 2, 2, 3, 2, 3, 3, 4}
	for m := range Mask(16) {
		if got := m.Inside(); got != want[m] {
			t.Errorf("mask %d: %d corners inside, want %d", m, got, want[m])
		}
		if m.IsSaddle() != (m == 5 || m == 10) {
			t.Errorf("mask %d: wrong saddle classification", m)
		}
	}
}

// TestCaseTable checks the exact output of every case, for a cell where
// all crossings are at the edge midpoints.
func TestCaseTable(t *testing.T) {
	var (
		A  = vec.Vec2{X: 0, Y: 0}
		B  = vec.Vec2{X: 1, Y: 0}
		C  = vec.Vec2{X: 1, Y: 1}
		D  = vec.Vec2{X: 0, Y: 1}
		ab = vec.Vec2{X: 0.5, Y: 0}
		bc = vec.Vec2{X: 1, Y: 0.5}
		cd = vec.Vec2{X: 0.5, Y: 1}
		da = vec.Vec2{X: 0, Y: 0.5}
	)

	type geometry struct {
		tris []vec.Vec2
		segs []vec.Vec2
	}
	want := [16]geometry{
		0:  {},
		1:  {[]vec.Vec2{A, ab, da}, []vec.Vec2{ab, da}},
		2:  {[]vec.Vec2{ab, B, bc}, []vec.Vec2{ab, bc}},
		3:  {[]vec.Vec2{A, B, da, da, B, bc}, []vec.Vec2{da, bc}},
		4:  {[]vec.Vec2{bc, C, cd}, []vec.Vec2{bc, cd}},
		5:  {[]vec.Vec2{A, ab, da, bc, C, cd}, []vec.Vec2{ab, da, bc, cd}},
		6:  {[]vec.Vec2{ab, B, cd, cd, B, C}, []vec.Vec2{ab, cd}},
		7:  {[]vec.Vec2{A, B, da, da, B, cd, cd, B, C}, []vec.Vec2{da, cd}},
		8:  {[]vec.Vec2{da, cd, D}, []vec.Vec2{da, cd}},
		9:  {[]vec.Vec2{A, ab, D, D, ab, cd}, []vec.Vec2{ab, cd}},
		10: {[]vec.Vec2{ab, B, bc, da, cd, D}, []vec.Vec2{ab, bc, da, cd}},
		11: {[]vec.Vec2{A, B, bc, A, bc, cd, A, cd, D}, []vec.Vec2{bc, cd}},
		12: {[]vec.Vec2{da, bc, D, D, bc, C}, []vec.Vec2{da, bc}},
		13: {[]vec.Vec2{A, ab, D, D, ab, bc, D, bc, C}, []vec.Vec2{ab, bc}},
		14: {[]vec.Vec2{ab, B, C, ab, C, da, da, C, D}, []vec.Vec2{ab, da}},
		15: {[]vec.Vec2{A, B, D, D, B, C}, nil},
	}

	for m := range Mask(16) {
		t.Run(fmt.Sprintf("mask%02d", m), func(t *testing.T) {
			segs, tris := emitAll(unitCell(maskValues(m, 1, -1)), 0)
			if !slices.Equal(tris, want[m].tris) {
				t.Errorf("triangles:\n got %v\nwant %v", tris, want[m].tris)
			}
			if !slices.Equal(segs, want[m].segs) {
				t.Errorf("segments:\n got %v\nwant %v", segs, want[m].segs)
			}
		})
	}
}

func TestEmitCounts(t *testing.T) {
	wantTris := [16]int{0, 1, 1, 2, 1, 2, 2, 3, 1, 2, 2, 3, 2, 3, 3, 2}
	wantSegs := [16]int{0, 1, 1, 1, 1, 2, 1, 1, 1, 1, 2, 1, 1, 1, 1, 0}
	for m := range Mask(16) {
		segs, tris := emitAll(unitCell(genericValues(m)), 0)
		if len(tris) != 3*wantTris[m] {
			t.Errorf("mask %d: %d triangle points, want %d", m, len(tris), 3*wantTris[m])
		}
		if len(segs) != 2*wantSegs[m] {
			t.Errorf("mask %d: %d segment points, want %d", m, len(segs), 2*wantSegs[m])
		}
	}
}

func TestEmitAppends(t *testing.T) {
	prevSeg := []vec.Vec2{{X: 7, Y: 7}, {X: 8, Y: 8}}
	prevTri := []vec.Vec2{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}
	c := unitCell(genericValues(5))
	segs, tris := c.Emit(0, slices.Clone(prevSeg), slices.Clone(prevTri))

	if !slices.Equal(segs[:2], prevSeg) || len(segs) != 2+4 {
		t.Errorf("segments not appended: %v", segs)
	}
	if !slices.Equal(tris[:3], prevTri) || len(tris) != 3+6 {
		t.Errorf("triangles not appended: %v", tris)
	}
}

func TestEmitWinding(t *testing.T) {
	for m := range Mask(16) {
		_, tris := emitAll(unitCell(genericValues(m)), 0)
		for i := 0; i < len(tris); i += 3 {
			if a := triangleArea(tris[i], tris[i+1], tris[i+2]); !(a > 0) {
				t.Errorf("mask %d, triangle %d: area %g", m, i/3, a)
			}
		}
	}
}

// TestSegmentsOnContour checks that every segment endpoint lies on a cell
// edge, at the position where the interpolated field equals the isovalue,
// and that it is also a vertex of the emitted triangles.
func TestSegmentsOnContour(t *testing.T) {
	const iso = 0
	edges := [4][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}

	for m := range Mask(16) {
		c := unitCell(genericValues(m))
		segs, tris := emitAll(c, iso)

	points:
		for _, p := range segs {
			if !slices.Contains(tris, p) {
				t.Errorf("mask %d: segment point %v is not a triangle vertex", m, p)
			}
			for _, e := range edges {
				p0, p1 := c.Corner[e[0]], c.Corner[e[1]]
				d := p1.Sub(p0)
				s := p.Sub(p0).Dot(d) / d.Dot(d)
				if s < 0 || s > 1 || p0.Add(d.Mul(s)).Sub(p).Length() > 1e-12 {
					continue
				}
				v := c.Value[e[0]] + s*(c.Value[e[1]]-c.Value[e[0]])
				if math.Abs(v-iso) > 1e-12 {
					t.Errorf("mask %d: field at %v is %g", m, p, v)
				}
				continue points
			}
			t.Errorf("mask %d: segment point %v not on the cell boundary", m, p)
		}
	}
}

func TestFullAndEmpty(t *testing.T) {
	c := unitCell([4]float64{0.2, 0.4, 0.3, 0.1})

	segs, tris := emitAll(c, 0.05)
	if c.Mask(0.05) != 15 || len(segs) != 0 {
		t.Errorf("isovalue below all corners: mask %d, %d segment points", c.Mask(0.05), len(segs))
	}
	if a := (&Result{Triangles: tris}).Area(); a != 1 {
		t.Errorf("isovalue below all corners: area %g, want 1", a)
	}

	segs, tris = emitAll(c, 0.5)
	if c.Mask(0.5) != 0 || len(segs) != 0 || len(tris) != 0 {
		t.Errorf("isovalue above all corners: mask %d, %d segment points, %d triangle points",
			c.Mask(0.5), len(segs), len(tris))
	}
}

func TestSingleCornerArea(t *testing.T) {
	for _, m := range []Mask{1, 2, 4, 8} {
		segs, tris := emitAll(unitCell(genericValues(m)), 0)
		a := (&Result{Triangles: tris}).Area()
		if !(a > 0 && a < 1) {
			t.Errorf("mask %d: area %g", m, a)
		}

		// the segment joins the two non-corner vertices of the triangle
		var crossings []vec.Vec2
		for _, p := range tris {
			if p.X != 0 && p.X != 1 || p.Y != 0 && p.Y != 1 {
				crossings = append(crossings, p)
			}
		}
		if !slices.Equal(crossings, segs) && !slices.Equal(crossings, []vec.Vec2{segs[1], segs[0]}) {
			t.Errorf("mask %d: segment %v does not match crossings %v", m, segs, crossings)
		}
	}
}

// TestComplementTiling checks that a configuration and its complement
// together cover the cell exactly once. The complement is obtained by
// negating both the field and the isovalue.
func TestComplementTiling(t *testing.T) {
	const iso = 0.05
	for m := range Mask(16) {
		if m.IsSaddle() {
			continue
		}
		v := genericValues(m)
		neg := [4]float64{-v[0], -v[1], -v[2], -v[3]}

		c1 := unitCell(v)
		c2 := unitCell(neg)
		if c2.Mask(-iso) != 15-c1.Mask(iso) {
			t.Fatalf("mask %d: complement has mask %d", c1.Mask(iso), c2.Mask(-iso))
		}

		_, t1 := emitAll(c1, iso)
		_, t2 := emitAll(c2, -iso)
		a1 := (&Result{Triangles: t1}).Area()
		a2 := (&Result{Triangles: t2}).Area()
		if math.Abs(a1+a2-1) > 1e-12 {
			t.Errorf("mask %d: areas %g + %g != 1", m, a1, a2)
		}
		if n := (len(t1) + len(t2)) / 3; m != 0 && m != 15 && n != 4 {
			t.Errorf("mask %d: %d triangles in total, want 4", m, n)
		}
	}
}

// TestSaddle checks that saddle cells are always split into two separate
// corners, independent of the values at the cell centre.
func TestSaddle(t *testing.T) {
	centre := vec.Vec2{X: 0.5, Y: 0.5}
	for _, m := range []Mask{5, 10} {
		for _, v := range [][4]float64{
			genericValues(m),
			maskValues(m, 5, -0.1), // centre average far above the isovalue
			maskValues(m, 0.1, -5), // centre average far below the isovalue
		} {
			c := unitCell(v)
			if c.Mask(0) != m {
				t.Fatalf("values %v: mask %d, want %d", v, c.Mask(0), m)
			}

			segs, tris := emitAll(c, 0)
			if len(tris) != 6 || len(segs) != 4 {
				t.Fatalf("mask %d: %d triangle points, %d segment points", m, len(tris), len(segs))
			}
			for _, p := range tris[:3] {
				if slices.Contains(tris[3:], p) {
					t.Errorf("mask %d: triangles share vertex %v", m, p)
				}
			}
			if slices.Contains(segs[2:], segs[0]) || slices.Contains(segs[2:], segs[1]) {
				t.Errorf("mask %d: segments are connected: %v", m, segs)
			}

			for i := 0; i < len(tris); i += 3 {
				if containsPoint(tris[i], tris[i+1], tris[i+2], centre) {
					t.Errorf("mask %d, values %v: triangle %d covers the centre", m, v, i/3)
				}
			}
		}
	}
}

// maskValues returns corner values in for the corners selected by m,
// and out for the others.
func maskValues(m Mask, in, out float64) [4]float64 {
	var v [4]float64
	for i := range v {
		v[i] = out
		if m&(1<<i) != 0 {
			v[i] = in
		}
	}
	return v
}

// containsPoint reports whether p is inside or on the boundary of the
// counter-clockwise triangle abc.
func containsPoint(a, b, c, p vec.Vec2) bool {
	return triangleArea(a, b, p) >= 0 && triangleArea(b, c, p) >= 0 && triangleArea(c, a, p) >= 0
}
