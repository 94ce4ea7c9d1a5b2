package math

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// LogSpace returns n distances evenly spaced in log10 between start and stop,
// inclusive. start may be larger than stop, giving a descending grid.
func LogSpace(start, stop float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("log grid needs at least 2 points, got %d", n)
	}
	if !(start > 0) || !(stop > 0) || math.IsInf(start, 0) || math.IsInf(stop, 0) {
		return nil, fmt.Errorf("log grid bounds must be positive and finite, got [%v, %v]", start, stop)
	}

	grid := floats.LogSpan(make([]float64, n), start, stop)
	// pin the endpoints exactly; exp(log(x)) can drift in the last bit
	grid[0], grid[n-1] = start, stop
	return grid, nil
}

// Log10 returns log10 of every value
func Log10(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = math.Log10(v)
	}
	return out
}

// Midpoint returns the arithmetic midpoint of a and b
func Midpoint(a, b float64) float64 {
	return (a + b) / 2
}

// LogMidpoint returns the distance halfway between a and b in log10 space
func LogMidpoint(a, b float64) float64 {
	return math.Pow(10, Midpoint(math.Log10(a), math.Log10(b)))
}
