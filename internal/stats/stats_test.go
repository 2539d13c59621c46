package stats

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{name: "empty slice", values: nil, expected: 0},
		{name: "single value", values: []float64{42}, expected: 42},
		{name: "linear ramp", values: []float64{100, 110, 120, 130, 140}, expected: 120},
		{name: "mixed signs", values: []float64{-5, 5}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mean(tt.values); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Mean() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestStdDev(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{name: "too few values", values: []float64{7}, expected: 0},
		{name: "constant series", values: []float64{3, 3, 3, 3}, expected: 0},
		{name: "linear ramp", values: []float64{100, 110, 120, 130, 140}, expected: math.Sqrt(250)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StdDev(tt.values); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("StdDev() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTQuantileKnownValues(t *testing.T) {
	// Critical values from standard t tables.
	tests := []struct {
		p        float64
		df       int
		expected float64
	}{
		{0.975, 1, 12.7062},
		{0.975, 4, 2.7764},
		{0.975, 9, 2.2622},
		{0.975, 30, 2.0423},
		{0.95, 10, 1.8125},
		{0.90, 5, 1.4759},
	}

	for _, tt := range tests {
		got := TQuantile(tt.p, tt.df)
		if math.Abs(got-tt.expected) > 1e-3 {
			t.Errorf("TQuantile(%v, %d) = %v, want %v", tt.p, tt.df, got, tt.expected)
		}
	}
}

func TestTQuantileSymmetry(t *testing.T) {
	if got := TQuantile(0.5, 10); got != 0 {
		t.Errorf("TQuantile(0.5, 10) = %v, want 0", got)
	}
	upper := TQuantile(0.975, 8)
	lower := TQuantile(0.025, 8)
	if math.Abs(upper+lower) > 1e-9 {
		t.Errorf("quantiles not symmetric: %v vs %v", upper, lower)
	}
}

func TestTCDFRoundTrip(t *testing.T) {
	for _, df := range []int{1, 4, 15, 60} {
		for _, p := range []float64{0.05, 0.25, 0.75, 0.99} {
			q := TQuantile(p, df)
			if got := TCDF(q, df); math.Abs(got-p) > 1e-8 {
				t.Errorf("TCDF(TQuantile(%v, %d)) = %v, want %v", p, df, got, p)
			}
		}
	}
}

func TestStudentTInterval(t *testing.T) {
	values := []float64{100, 110, 120, 130, 140}
	lower, upper := StudentTInterval(values, 0.95)

	// mean 120, s = sqrt(250), t(0.975, 4) = 2.7764 -> margin 19.634
	if math.Abs(lower-100.366) > 0.01 {
		t.Errorf("lower = %v, want ~100.366", lower)
	}
	if math.Abs(upper-139.634) > 0.01 {
		t.Errorf("upper = %v, want ~139.634", upper)
	}

	mean := Mean(values)
	if lower > mean || upper < mean {
		t.Errorf("interval (%v, %v) does not contain the mean %v", lower, upper, mean)
	}
}

func TestStudentTIntervalDegenerate(t *testing.T) {
	lower, upper := StudentTInterval([]float64{55}, 0.95)
	if lower != 55 || upper != 55 {
		t.Errorf("single value interval = (%v, %v), want (55, 55)", lower, upper)
	}

	lower, upper = StudentTInterval([]float64{7, 7, 7}, 0.95)
	if lower != 7 || upper != 7 {
		t.Errorf("constant series interval = (%v, %v), want (7, 7)", lower, upper)
	}
}
