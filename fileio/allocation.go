package fileio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvopt/allocation"
)

// ReadAllocation parses an allocation CSV. Demand and MaxValue are not part of
// the file and stay unset.
func ReadAllocation(r io.Reader) (*allocation.Instance, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, ErrEmptyFile
	}

	in := &allocation.Instance{}
	for _, field := range recs[0] {
		c, err := parseNumber(1, field)
		if err != nil {
			return nil, err
		}
		in.Costs = append(in.Costs, c)
	}
	for j, rec := range recs[1:] {
		line := j + 2
		if len(rec) < 2 {
			return nil, fmt.Errorf("%w on line %d: need coefficients and a right-hand side", ErrBadRecord, line)
		}
		nums := make([]float64, len(rec))
		for i, field := range rec {
			if nums[i], err = parseNumber(line, field); err != nil {
				return nil, err
			}
		}
		if err := in.AddConstraint(nums[:len(nums)-1], nums[len(nums)-1]); err != nil {
			return nil, err
		}
	}

	return in, nil
}

// WriteAllocation writes the cost row followed by one row per constraint.
func WriteAllocation(w io.Writer, in *allocation.Instance) error {
	cw := csv.NewWriter(w)
	row := make([]string, 0, len(in.Costs)+1)
	for _, c := range in.Costs {
		row = append(row, formatNumber(c))
	}
	if err := cw.Write(row); err != nil {
		return err
	}
	for _, r := range in.Constraints {
		row = row[:0]
		for _, a := range r.Coefs {
			row = append(row, formatNumber(a))
		}
		row = append(row, formatNumber(r.RHS))
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// LoadAllocation reads an allocation CSV from path.
func LoadAllocation(path string) (*allocation.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadAllocation(f)
}

// SaveAllocation writes in to path as CSV.
func SaveAllocation(path string, in *allocation.Instance) error {
	return create(path, func(f *os.File) error { return WriteAllocation(f, in) })
}
