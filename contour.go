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

// Package contour extracts isocontours of a scalar field using the marching
// squares algorithm.
//
// The field is sampled on a uniform grid of square cells. For every cell,
// the region where the field is at least the isovalue is approximated by
// triangles, and the boundary of this region by line segments. Crossing
// points on the cell edges are found by linear interpolation.
package contour

import (
	"errors"
	"math"
	"sync"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Sampler evaluates a scalar field at a point.
// The function must be deterministic and free of side effects.
type Sampler func(p vec.Vec2) float64

var (
	// ErrCellSize is returned if the cell size is not a positive, finite number.
	ErrCellSize = errors.New("contour: cell size must be positive and finite")

	// ErrBounds is returned if the sampling domain has non-finite coordinates.
	ErrBounds = errors.New("contour: bounds must be finite")

	// ErrGridSize is returned if the grid would have too many cells along
	// one axis.
	ErrGridSize = errors.New("contour: too many grid cells")
)

// maxCells limits the number of cells along each axis.
const maxCells = 1 << 30

// MarchingSquares samples the field f on a grid of square cells covering
// bounds and returns the contour at level iso.
//
// Every consecutive pair of points in segments is one line segment of the
// contour, every consecutive triple in triangles is one triangle of the
// region where f >= iso. Cells are visited column by column, starting at
// the lower left corner of bounds; within a column cells are visited from
// bottom to top. Only complete cells are visited: if the size of bounds is
// not a multiple of cellSize, the remaining strip at the top or right is
// ignored.
func MarchingSquares(bounds rect.Rect, cellSize float64, f Sampler, iso float64) (segments, triangles []vec.Vec2, err error) {
	m := NewMarcher(cellSize, iso)
	res, err := m.March(bounds, f)
	if err != nil {
		return nil, nil, err
	}
	return res.Segments, res.Triangles, nil
}

// Marcher runs the marching squares algorithm. Create one instance and reuse
// it for several fields; internal sample buffers are kept between calls.
//
// A Marcher is not safe for concurrent use.
type Marcher struct {
	// CellSize is the side length of the grid cells. Must be positive.
	CellSize float64

	// IsoValue is the contour level. Points where the field is greater
	// than or equal to IsoValue are inside.
	IsoValue float64

	// Workers is the number of goroutines used to process the grid.
	// Values less than 2 run everything on the calling goroutine.
	// The output does not depend on this setting.
	Workers int

	// ShareCorners causes every grid vertex to be sampled only once.
	// By default, each cell samples its four corners independently,
	// so that interior grid vertices are evaluated four times.
	ShareCorners bool

	xs, ys      []float64 // grid line coordinates
	left, right []float64 // column samples for ShareCorners
}

// NewMarcher returns a sequential Marcher for the given cell size and
// contour level.
func NewMarcher(cellSize, iso float64) *Marcher {
	return &Marcher{
		CellSize: cellSize,
		IsoValue: iso,
	}
}

// March samples the field f over bounds and returns the contour geometry.
func (m *Marcher) March(bounds rect.Rect, f Sampler) (*Result, error) {
	if !(m.CellSize > 0) || math.IsInf(m.CellSize, 1) {
		return nil, ErrCellSize
	}
	for _, x := range []float64{bounds.LLx, bounds.LLy, bounds.URx, bounds.URy} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, ErrBounds
		}
	}

	g := grid{
		iso: m.IsoValue,
		f:   f,
	}
	g.nx, g.ny = GridSize(bounds, m.CellSize)
	if g.nx >= maxCells || g.ny >= maxCells {
		return nil, ErrGridSize
	}

	res := &Result{}
	if g.nx == 0 || g.ny == 0 {
		return res, nil
	}

	m.xs = steps(m.xs, bounds.LLx, m.CellSize, g.nx+1)
	m.ys = steps(m.ys, bounds.LLy, m.CellSize, g.ny+1)
	g.xs, g.ys = m.xs, m.ys

	workers := min(max(m.Workers, 1), g.nx)
	if workers == 1 {
		if m.ShareCorners {
			m.left = growFloats(m.left, g.ny+1)
			m.right = growFloats(m.right, g.ny+1)
			g.marchShared(res, 0, g.nx, m.left, m.right)
		} else {
			g.march(res, 0, g.nx)
		}
		return res, nil
	}

	// Split the columns into contiguous blocks, one per worker, and
	// concatenate the partial results in column order.
	parts := make([]Result, workers)
	var wg sync.WaitGroup
	for k := range workers {
		lo := k * g.nx / workers
		hi := (k + 1) * g.nx / workers
		wg.Add(1)
		go func() {
			defer wg.Done()
			if m.ShareCorners {
				g.marchShared(&parts[k], lo, hi, make([]float64, g.ny+1), make([]float64, g.ny+1))
			} else {
				g.march(&parts[k], lo, hi)
			}
		}()
	}
	wg.Wait()

	var nSeg, nTri int
	for i := range parts {
		nSeg += len(parts[i].Segments)
		nTri += len(parts[i].Triangles)
	}
	res.Segments = make([]vec.Vec2, 0, nSeg)
	res.Triangles = make([]vec.Vec2, 0, nTri)
	for i := range parts {
		res.Segments = append(res.Segments, parts[i].Segments...)
		res.Triangles = append(res.Triangles, parts[i].Triangles...)
		res.Cells += parts[i].Cells
	}
	return res, nil
}

// GridSize returns the number of cells visited in x and y direction
// when bounds is covered by cells of the given size.
// Incomplete cells at the top and right are not counted.
func GridSize(bounds rect.Rect, cellSize float64) (nx, ny int) {
	return cellCount(bounds.URx-bounds.LLx, cellSize), cellCount(bounds.URy-bounds.LLy, cellSize)
}

func cellCount(extent, cellSize float64) int {
	if !(extent > 0) || !(cellSize > 0) {
		return 0
	}
	q := extent / cellSize
	if q >= maxCells {
		return maxCells
	}
	// Allow for rounding errors when extent is a multiple of cellSize.
	return int(math.Floor(q + q*1e-12))
}

// grid describes one traversal.
type grid struct {
	xs, ys []float64
	nx, ny int
	iso    float64
	f      Sampler
}

// vertex returns the location of grid vertex (i, j).
func (g *grid) vertex(i, j int) vec.Vec2 {
	return vec.Vec2{X: g.xs[i], Y: g.ys[j]}
}

// steps fills buf with n grid line coordinates, starting at start.
// The coordinates are accumulated by repeated addition of cellSize, and
// the far edge of a cell is the next grid line, so every corner equals
// the running sum x + cellSize of a column-by-column walk.
func steps(buf []float64, start, cellSize float64, n int) []float64 {
	buf = growFloats(buf, n)
	buf[0] = start
	for i := 1; i < n; i++ {
		buf[i] = buf[i-1] + cellSize
	}
	return buf
}

// march processes columns lo to hi-1, sampling all four corners of every cell.
func (g *grid) march(res *Result, lo, hi int) {
	var c Cell
	for i := lo; i < hi; i++ {
		for j := range g.ny {
			c.Corner[0] = g.vertex(i, j)
			c.Corner[1] = g.vertex(i+1, j)
			c.Corner[2] = g.vertex(i+1, j+1)
			c.Corner[3] = g.vertex(i, j+1)
			for k := range c.Corner {
				c.Value[k] = g.f(c.Corner[k])
			}
			res.Segments, res.Triangles = c.Emit(g.iso, res.Segments, res.Triangles)
			res.Cells++
		}
	}
}

// marchShared processes columns lo to hi-1, sampling every grid vertex
// once. The buffers left and right must have length g.ny+1.
func (g *grid) marchShared(res *Result, lo, hi int, left, right []float64) {
	for j := range left {
		left[j] = g.f(g.vertex(lo, j))
	}

	var c Cell
	for i := lo; i < hi; i++ {
		for j := range right {
			right[j] = g.f(g.vertex(i+1, j))
		}
		for j := range g.ny {
			c.Corner[0] = g.vertex(i, j)
			c.Corner[1] = g.vertex(i+1, j)
			c.Corner[2] = g.vertex(i+1, j+1)
			c.Corner[3] = g.vertex(i, j+1)
			c.Value = [4]float64{left[j], right[j], right[j+1], left[j+1]}
			res.Segments, res.Triangles = c.Emit(g.iso, res.Segments, res.Triangles)
			res.Cells++
		}
		left, right = right, left
	}
}

func growFloats(buf []float64, n int) []float64 {
	if cap(buf) < n {
		return make([]float64, n)
	}
	return buf[:n]
}
