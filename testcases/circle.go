package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

var circleCases = []TestCase{
	{
		Name:     "disk",
		Field:    disk(0, 0, 1),
		Bounds:   box(-1.5, -1.5, 1.5, 1.5),
		CellSize: 0.125,
		IsoValue: 0,
		Width:    96,
		Height:   96,
	},
	{
		Name:     "disk_coarse",
		Field:    disk(0, 0, 1),
		Bounds:   box(-1.5, -1.5, 1.5, 1.5),
		CellSize: 0.5,
		IsoValue: 0,
		Width:    96,
		Height:   96,
	},
	{
		Name:     "ring",
		Field:    ring(0.5, 0.5, 0.3, 0.1),
		Bounds:   box(0, 0, 1, 1),
		CellSize: 1.0 / 32,
		IsoValue: 0,
		Width:    128,
		Height:   128,
	},
	{
		Name:     "disk_offcentre",
		Field:    disk(0.3, -0.2, 0.6),
		Bounds:   box(-1, -1, 1, 1),
		CellSize: 0.0625,
		IsoValue: 0,
		Width:    64,
		Height:   64,
	},
}

// disk is positive inside the circle with the given centre and radius.
func disk(cx, cy, r float64) func(vec.Vec2) float64 {
	return func(p vec.Vec2) float64 {
		return r - math.Hypot(p.X-cx, p.Y-cy)
	}
}

// ring is positive within distance w of the circle with centre (cx, cy)
// and radius r.
func ring(cx, cy, r, w float64) func(vec.Vec2) float64 {
	return func(p vec.Vec2) float64 {
		return w - math.Abs(math.Hypot(p.X-cx, p.Y-cy)-r)
	}
}
