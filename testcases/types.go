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

package testcases

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single contouring test.
type TestCase struct {
	Name     string                 // lowercase a-z, 0-9 and _ only
	Field    func(vec.Vec2) float64 // the scalar field to contour
	Bounds   rect.Rect              // sampling domain
	CellSize float64                // grid spacing (>0)
	IsoValue float64                // contour level
	Width    int                    // canvas width in pixels
	Height   int                    // canvas height in pixels

	// Area is the exact area of the region where Field >= IsoValue inside
	// the visited cells, or 0 if not known.
	Area float64
}

// box is a helper to create a rect.Rect from its corner coordinates.
func box(llx, lly, urx, ury float64) rect.Rect {
	return rect.Rect{LLx: llx, LLy: lly, URx: urx, URy: ury}
}
