package testcases

import (
	"seehuhn.de/go/geom/vec"
)

// planeCases use linear fields. Linear interpolation is exact for these,
// so the contour areas are known in closed form.
var planeCases = []TestCase{
	{
		Name:     "diagonal",
		Field:    sum,
		Bounds:   box(0, 0, 2, 2),
		CellSize: 1,
		IsoValue: 1,
		Width:    64,
		Height:   64,
		Area:     3.5,
	},
	{
		Name:     "diagonal_fine",
		Field:    sum,
		Bounds:   box(0, 0, 2, 2),
		CellSize: 0.25,
		IsoValue: 1.25,
		Width:    64,
		Height:   64,
		Area:     4 - 1.25*1.25/2,
	},
	{
		Name:     "truncated",
		Field:    sum,
		Bounds:   box(0, 0, 2.5, 2),
		CellSize: 1,
		IsoValue: 1,
		Width:    80,
		Height:   64,
		Area:     3.5, // the strip 2 <= x < 2.5 is not visited
	},
	{
		Name:     "single_cell",
		Field:    sum,
		Bounds:   box(0, 0, 1, 1),
		CellSize: 1,
		IsoValue: 0.5,
		Width:    64,
		Height:   64,
		Area:     1 - 0.125,
	},
	{
		Name:     "vertical",
		Field:    func(p vec.Vec2) float64 { return p.X },
		Bounds:   box(-1, -1, 1, 1),
		CellSize: 0.5,
		IsoValue: 0.3,
		Width:    64,
		Height:   64,
		Area:     0.7 * 2,
	},
}

func sum(p vec.Vec2) float64 {
	return p.X + p.Y
}
