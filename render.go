package contour

//go:generate go run ./testcases/export

import (
	"image"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/contour/testcases"
)

// FitCTM returns the transformation which maps bounds onto an image of
// the given size. The y axis of the image points down, so that the lower
// left corner of bounds ends up at the bottom left of the image.
func FitCTM(bounds rect.Rect, width, height int) matrix.Matrix {
	sx := float64(width) / (bounds.URx - bounds.LLx)
	sy := float64(height) / (bounds.URy - bounds.LLy)
	return matrix.Matrix{
		sx, 0,
		0, -sy,
		-bounds.LLx * sx, float64(height) + bounds.LLy*sy,
	}
}

// RasterizeMesh fills the triangles of res into dst, after transforming
// them with ctm. Pixels are painted with full opacity, scaled by coverage.
func RasterizeMesh(dst *image.Alpha, ctm matrix.Matrix, res *Result) {
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())

	tris := res.Triangles
	for i := 0; i+2 < len(tris); i += 3 {
		x, y := devicePoint(ctm, tris[i], b.Min)
		r.MoveTo(x, y)
		x, y = devicePoint(ctm, tris[i+1], b.Min)
		r.LineTo(x, y)
		x, y = devicePoint(ctm, tris[i+2], b.Min)
		r.LineTo(x, y)
		r.ClosePath()
	}

	r.Draw(dst, b, image.Opaque, image.Point{})
}

func devicePoint(ctm matrix.Matrix, p vec.Vec2, origin image.Point) (float32, float32) {
	x := ctm[0]*p.X + ctm[2]*p.Y + ctm[4]
	y := ctm[1]*p.X + ctm[3]*p.Y + ctm[5]
	return float32(x - float64(origin.X)), float32(y - float64(origin.Y))
}

// RenderExample renders the contour region of a test case into a grayscale
// buffer. The buffer is pre-initialized with zeros, in row-major order.
// Each byte represents coverage from 0 (outside) to 255 (inside).
func RenderExample(tc testcases.TestCase, buf []byte, width, height, stride int) error {
	res, err := NewMarcher(tc.CellSize, tc.IsoValue).March(tc.Bounds, tc.Field)
	if err != nil {
		return err
	}

	img := image.NewAlpha(image.Rect(0, 0, width, height))
	RasterizeMesh(img, FitCTM(tc.Bounds, width, height), res)

	for y := range height {
		copy(buf[y*stride:y*stride+width], img.Pix[y*img.Stride:])
	}
	return nil
}
