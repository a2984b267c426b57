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

// Package numdiff estimates derivatives of vector valued functions
// by finite differences.
package numdiff

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Step is the perturbation used for the central differences.
const Step = 0.0001

// ErrDimension is returned if the function does not return vectors of
// a consistent length.
var ErrDimension = errors.New("numdiff: inconsistent output dimension")

// Jacobian estimates the Jacobian matrix of fn at x using central
// differences with step size [Step].
//
// The result has one row per component of fn(x) and one column per
// component of x. Column i is (fn(x + h e_i) - fn(x - h e_i)) / 2h.
// The slice x is not modified, fn must not retain its argument.
func Jacobian(fn func(x []float64) []float64, x []float64) (*mat.Dense, error) {
	if len(x) == 0 {
		return nil, errors.New("numdiff: empty evaluation point")
	}

	xh := make([]float64, len(x))
	copy(xh, x)

	var jac *mat.Dense
	var col []float64
	for i := range x {
		xh[i] = x[i] + Step
		a := fn(xh)
		xh[i] = x[i] - Step
		b := fn(xh)
		xh[i] = x[i]

		if jac == nil {
			if len(a) == 0 {
				return nil, fmt.Errorf("column %d: %w", i, ErrDimension)
			}
			jac = mat.NewDense(len(a), len(x), nil)
			col = make([]float64, len(a))
		}
		if len(a) != len(col) || len(b) != len(col) {
			return nil, fmt.Errorf("column %d: got %d and %d values, want %d: %w",
				i, len(a), len(b), len(col), ErrDimension)
		}

		floats.SubTo(col, a, b)
		for k := range col {
			col[k] /= 2 * Step
		}
		jac.SetCol(i, col)
	}
	return jac, nil
}

// Gradient estimates the gradient of the scalar function fn at x,
// using the same central differences as [Jacobian].
func Gradient(fn func(x []float64) float64, x []float64) ([]float64, error) {
	jac, err := Jacobian(func(x []float64) []float64 {
		return []float64{fn(x)}
	}, x)
	if err != nil {
		return nil, err
	}
	return mat.Row(nil, 0, jac), nil
}
