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

// Command genpdf draws the contours of all test cases.
// It writes one PDF per test case, showing the triangle mesh in gray and
// the contour line in black. If Ghostscript is installed, a PNG preview
// is rendered as well.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/testcases"
)

const outDir = "testdata/pdf"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	_, gsErr := exec.LookPath("gs")

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			pngPath := filepath.Join(outDir, name+".png")

			res, err := contour.NewMarcher(tc.CellSize, tc.IsoValue).March(tc.Bounds, tc.Field)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := generatePDF(tc, res, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			fmt.Printf("%s: %d cells, %d triangles, %d segments\n",
				name, res.Cells, res.NumTriangles(), res.NumSegments())

			if gsErr != nil {
				continue
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, res *contour.Result, pdfPath string) error {
	// Page size in points, the domain is scaled to fill the page.
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left, like the contour domain, so no flip is needed.
	sx := float64(tc.Width) / (tc.Bounds.URx - tc.Bounds.LLx)
	sy := float64(tc.Height) / (tc.Bounds.URy - tc.Bounds.LLy)
	page.Transform(matrix.Matrix{sx, 0, 0, sy, -tc.Bounds.LLx * sx, -tc.Bounds.LLy * sy})

	page.SetFillColor(color.DeviceGray(0.8))
	drawPath(page, res.Mesh())
	page.Fill()

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(1 / sx)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	drawPath(page, res.Outline())
	page.Stroke()

	return page.Close()
}

func drawPath(page *document.Page, p path.Path) {
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
