package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

var waveCases = []TestCase{
	{
		Name:     "egg_crate",
		Field:    func(p vec.Vec2) float64 { return math.Sin(p.X) * math.Cos(p.Y) },
		Bounds:   box(0, 0, 6, 6),
		CellSize: 0.25,
		IsoValue: 0.2,
		Width:    96,
		Height:   96,
	},
	{
		Name:     "ripple",
		Field:    func(p vec.Vec2) float64 { return math.Cos(3 * math.Hypot(p.X, p.Y)) },
		Bounds:   box(-3, -3, 3, 3),
		CellSize: 0.1,
		IsoValue: 0.5,
		Width:    120,
		Height:   120,
	},
}
