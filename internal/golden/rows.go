package golden

import "fmt"

// ApplyRows runs the fixed-point model on every row of an 8-bit grayscale
// plane and returns a plane of the same shape.
func ApplyRows(plane [][]uint8, h []float64, p FixedParams) ([][]uint8, error) {
	out := make([][]uint8, len(plane))
	for r, row := range plane {
		y, err := Fixed(pixelRow(row), h, p)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", r, err)
		}
		if len(y) != len(row) {
			return nil, fmt.Errorf("%w: row %d expected %d, got %d", ErrRowLength, r, len(row), len(y))
		}
		out[r] = y
	}
	return out, nil
}

// ApplyRowsIdeal runs the ideal model on every row of an 8-bit grayscale
// plane.
func ApplyRowsIdeal(plane [][]uint8, h []float64) ([][]float64, error) {
	out := make([][]float64, len(plane))
	for r, row := range plane {
		y, err := Ideal(pixelRow(row), h)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", r, err)
		}
		if len(y) != len(row) {
			return nil, fmt.Errorf("%w: row %d expected %d, got %d", ErrRowLength, r, len(row), len(y))
		}
		out[r] = y
	}
	return out, nil
}

func pixelRow(row []uint8) []float64 {
	x := make([]float64, len(row))
	for i, v := range row {
		x[i] = float64(v)
	}
	return x
}
