package solver

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// independentRows returns the indices of a maximal linearly independent subset
// of the rows of a, in input order. consistent is false when a dropped row
// contradicts the kept ones, i.e. [a|b] has higher rank than a.
//
// Each kept row is stored already reduced against the earlier ones, so a new
// row is reduced by a single forward pass.
func independentRows(a [][]float64, b []float64) (keep []int, consistent bool) {
	type echelon struct {
		row   []float64 // augmented with b in the last slot
		pivot int
	}
	var basis []echelon

	for i, r := range a {
		n := len(r)
		aug := make([]float64, n+1)
		copy(aug, r)
		aug[n] = b[i]
		scale := math.Max(1, floats.Norm(aug, math.Inf(1)))

		for _, e := range basis {
			if f := aug[e.pivot]; f != 0 {
				floats.AddScaled(aug, -f/e.row[e.pivot], e.row)
			}
		}

		pivot := -1
		best := rankTolerance * scale
		for j := 0; j < n; j++ {
			if v := math.Abs(aug[j]); v > best {
				best, pivot = v, j
			}
		}
		if pivot < 0 {
			if math.Abs(aug[n]) > rankTolerance*scale*1e3 {
				return nil, false
			}
			continue
		}
		for j := 0; j < n; j++ {
			if math.Abs(aug[j]) <= rankTolerance*scale {
				aug[j] = 0
			}
		}
		basis = append(basis, echelon{row: aug, pivot: pivot})
		keep = append(keep, i)
	}

	return keep, true
}

// nonZeroColumns returns the indices of columns of a with at least one entry.
func nonZeroColumns(a [][]float64, ncols int) []int {
	var cols []int
	for j := 0; j < ncols; j++ {
		for _, r := range a {
			if r[j] != 0 {
				cols = append(cols, j)
				break
			}
		}
	}

	return cols
}
