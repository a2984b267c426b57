// Command export writes the contour geometry of all test cases to JSON,
// for comparison against baseline outputs.
// Run from the go-contour module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, tc.Name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	f, err := os.Create("testdata/contours.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string      `json:"name"`
	Bounds    [4]float64  `json:"bounds"`
	CellSize  float64     `json:"cell_size"`
	IsoValue  float64     `json:"iso_value"`
	Cells     int         `json:"cells"`
	Segments  [][]float64 `json:"segments"`
	Triangles [][]float64 `json:"triangles"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	res, err := contour.NewMarcher(tc.CellSize, tc.IsoValue).March(tc.Bounds, tc.Field)
	if err != nil {
		return jsonTestCase{}, err
	}

	b := tc.Bounds
	return jsonTestCase{
		Name:      category + "_" + tc.Name,
		Bounds:    [4]float64{b.LLx, b.LLy, b.URx, b.URy},
		CellSize:  tc.CellSize,
		IsoValue:  tc.IsoValue,
		Cells:     res.Cells,
		Segments:  pointsToJSON(res.Segments),
		Triangles: pointsToJSON(res.Triangles),
	}, nil
}

func pointsToJSON(pts []vec.Vec2) [][]float64 {
	out := make([][]float64, len(pts))
	for i, pt := range pts {
		out[i] = []float64{pt.X, pt.Y}
	}
	return out
}
