package cli

import (
	"fmt"
	"strconv"
	"strings"
)

const listSeparator = ","

// ParseSamples parses a comma-separated list of numbers. Surrounding
// whitespace is ignored and an empty string yields an empty slice.
func ParseSamples(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []float64{}, nil
	}

	parts := strings.Split(s, listSeparator)
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q at position %d", strings.TrimSpace(p), i)
		}
		out[i] = v
	}
	return out, nil
}

// FormatSamples renders values as "[v0, v1, ..., vn]" using the shortest
// representation that round-trips.
func FormatSamples(y []float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range y {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte(']')
	return b.String()
}

// FormatInts renders integer values as "[v0, v1, ..., vn]".
func FormatInts[T ~int | ~int64 | ~uint8](y []T) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range y {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	b.WriteByte(']')
	return b.String()
}
