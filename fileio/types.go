package fileio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Sentinel errors for file input.
var (
	// ErrEmptyFile indicates that the input holds no records.
	ErrEmptyFile = errors.New("fileio: file is empty")

	// ErrBadNumber indicates a field that is not a finite number.
	ErrBadNumber = errors.New("fileio: invalid number")

	// ErrBadRecord indicates a structurally invalid record.
	ErrBadRecord = errors.New("fileio: invalid record")
)

func parseNumber(line int, field string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil || !finite(f) {
		return 0, fmt.Errorf("%w %q on line %d", ErrBadNumber, field, line)
	}

	return f, nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// create opens path for writing and runs fn against it, reporting the first
// error from fn or from closing the file.
func create(path string, fn func(*os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return fn(f)
}
