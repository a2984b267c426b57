package testcases

import (
	"seehuhn.de/go/geom/vec"
)

// saddleCases contain cells where two opposite corners are inside.
var saddleCases = []TestCase{
	{
		// The centre cell has corners at (+-0.25, +-0.25) and is a saddle.
		Name:     "hyperbola",
		Field:    product,
		Bounds:   box(-1.25, -1.25, 1.25, 1.25),
		CellSize: 0.5,
		IsoValue: 0,
		Width:    80,
		Height:   80,
	},
	{
		Name:     "hyperbola_fine",
		Field:    product,
		Bounds:   box(-1.25, -1.25, 1.25, 1.25),
		CellSize: 0.125,
		IsoValue: 0.05,
		Width:    80,
		Height:   80,
	},
	{
		Name:     "checkerboard",
		Field:    checker,
		Bounds:   box(0, 0, 4, 4),
		CellSize: 1,
		IsoValue: 0,
		Width:    64,
		Height:   64,
		Area:     4,
	},
}

func product(p vec.Vec2) float64 {
	return p.X * p.Y
}

// checker is +1 and -1 on alternate grid vertices, so that every
// cell of a unit grid is a saddle.
func checker(p vec.Vec2) float64 {
	if (int(p.X)+int(p.Y))%2 == 0 {
		return 1
	}
	return -1
}
