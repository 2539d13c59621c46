package stats

import "math"

// Mean calculates the arithmetic mean of values.
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

// StdDev calculates the sample standard deviation (n-1 denominator).
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	mean := Mean(values)

	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}

	return math.Sqrt(sum / float64(len(values)-1))
}

// StudentTInterval returns the two-sided confidence interval for the mean of
// values at the given confidence level, using the Student's-t distribution
// with len(values)-1 degrees of freedom. Fewer than two values collapse to a
// degenerate interval at the mean.
func StudentTInterval(values []float64, level float64) (float64, float64) {
	mean := Mean(values)
	if len(values) < 2 {
		return mean, mean
	}

	t := TQuantile((1+level)/2, len(values)-1)
	margin := t * StdDev(values) / math.Sqrt(float64(len(values)))

	return mean - margin, mean + margin
}
