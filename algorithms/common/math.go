package common

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Shared numeric helpers used across the analysis packages, backed by gonum
// for robustness.

// Mean calculates the arithmetic mean of a slice using gonum.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// MeanAbs calculates the mean of absolute values. Used to summarize cents
// deviations, where sign only encodes sharp/flat direction.
func MeanAbs(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	abs := make([]float64, len(data))
	for i, v := range data {
		if v < 0 {
			abs[i] = -v
		} else {
			abs[i] = v
		}
	}
	return stat.Mean(abs, nil)
}

// Span returns the minimum and maximum of a non-empty slice.
func Span(data []float64) (min, max float64) {
	if len(data) == 0 {
		return 0.0, 0.0
	}
	return floats.Min(data), floats.Max(data)
}

// Clamp constrains a value to a range.
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// GCD returns the greatest common divisor of two non-negative integers.
// Interval ratios are kept in lowest terms with this.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
