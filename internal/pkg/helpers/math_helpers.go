package helpers

import "math"

// Round2 rounds a value to two decimal places.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// Mean returns the arithmetic mean of values, or 0 when values is empty.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
