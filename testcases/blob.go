package testcases

import (
	"seehuhn.de/go/geom/vec"
)

var blobCases = []TestCase{
	{
		Name: "metaballs",
		Field: metaballs(
			ball{0.35, 0.4, 0.12},
			ball{0.65, 0.55, 0.15},
			ball{0.45, 0.75, 0.08},
		),
		Bounds:   box(0, 0, 1, 1),
		CellSize: 1.0 / 40,
		IsoValue: 1,
		Width:    128,
		Height:   128,
	},
	{
		Name: "separate",
		Field: metaballs(
			ball{0.25, 0.5, 0.1},
			ball{0.75, 0.5, 0.1},
		),
		Bounds:   box(0, 0, 1, 1),
		CellSize: 1.0 / 16,
		IsoValue: 1,
		Width:    64,
		Height:   64,
	},
}

type ball struct {
	x, y, r float64
}

// metaballs returns the sum of r^2/d^2 over all balls, where d is the
// distance to the ball centre.
func metaballs(balls ...ball) func(vec.Vec2) float64 {
	return func(p vec.Vec2) float64 {
		var sum float64
		for _, b := range balls {
			dx := p.X - b.x
			dy := p.Y - b.y
			d2 := dx*dx + dy*dy
			if d2 == 0 {
				d2 = 1e-12
			}
			sum += b.r * b.r / d2
		}
		return sum
	}
}
