package utils

import "math"

// NormalizeSeries rescales a numeric series to a 0-100 integer scale so the
// chart renderer gets comparable bars regardless of raw magnitude. The
// maximum input maps to 100, the rest scale proportionally and round to the
// nearest integer. Nil entries count as 0. If every value is 0 (or the
// series is empty) the result is all zeros.
func NormalizeSeries(values []*float64) []int {
	out := make([]int, len(values))

	var max float64
	for _, v := range values {
		if v != nil && *v > max {
			max = *v
		}
	}
	if max == 0 {
		return out
	}

	for i, v := range values {
		if v == nil {
			continue
		}
		out[i] = int(math.Round(100 * *v / max))
	}
	return out
}

// Float64Ptr is a small helper for building nullable series.
func Float64Ptr(v float64) *float64 {
	return &v
}
