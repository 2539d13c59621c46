package stats

import "math"

// TQuantile returns the p-quantile of the Student's-t distribution with df
// degrees of freedom, by bisecting the CDF. Quantiles are symmetric around
// zero, so only the upper half is searched.
func TQuantile(p float64, df int) float64 {
	if df < 1 || math.IsNaN(p) {
		return math.NaN()
	}
	if p <= 0 {
		return math.Inf(-1)
	}
	if p >= 1 {
		return math.Inf(1)
	}
	if p == 0.5 {
		return 0
	}
	if p < 0.5 {
		return -TQuantile(1-p, df)
	}

	lo, hi := 0.0, 1.0
	for TCDF(hi, df) < p && hi < 1e12 {
		hi *= 2
	}
	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		if TCDF(mid, df) < p {
			lo = mid
		} else {
			hi = mid
		}
	}

	return (lo + hi) / 2
}

// TCDF returns the CDF of the Student's-t distribution with df degrees of
// freedom, via the regularized incomplete beta function.
func TCDF(t float64, df int) float64 {
	if t == 0 {
		return 0.5
	}

	v := float64(df)
	tail := 0.5 * regIncompleteBeta(v/2, 0.5, v/(v+t*t))
	if t > 0 {
		return 1 - tail
	}
	return tail
}

// regIncompleteBeta computes the regularized incomplete beta function
// I_x(a, b) using the continued fraction expansion, switched at the
// symmetry point for convergence.
func regIncompleteBeta(a, b, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	la, _ := math.Lgamma(a)
	lb, _ := math.Lgamma(b)
	lab, _ := math.Lgamma(a + b)
	front := math.Exp(lab - la - lb + a*math.Log(x) + b*math.Log(1-x))

	if x < (a+1)/(a+b+2) {
		return front * betaContinuedFraction(a, b, x) / a
	}
	return 1 - front*betaContinuedFraction(b, a, 1-x)/b
}

// betaContinuedFraction evaluates the continued fraction for the incomplete
// beta function by the modified Lentz method.
func betaContinuedFraction(a, b, x float64) float64 {
	const (
		maxIterations = 200
		epsilon       = 3e-14
		tiny          = 1e-300
	)

	qab := a + b
	qap := a + 1
	qam := a - 1

	c := 1.0
	d := 1 - qab*x/qap
	if math.Abs(d) < tiny {
		d = tiny
	}
	d = 1 / d
	h := d

	for m := 1; m <= maxIterations; m++ {
		fm := float64(m)
		m2 := 2 * fm

		aa := fm * (b - fm) * x / ((qam + m2) * (a + m2))
		d = 1 + aa*d
		if math.Abs(d) < tiny {
			d = tiny
		}
		c = 1 + aa/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		d = 1 / d
		h *= d * c

		aa = -(a + fm) * (qab + fm) * x / ((a + m2) * (qap + m2))
		d = 1 + aa*d
		if math.Abs(d) < tiny {
			d = tiny
		}
		c = 1 + aa/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		d = 1 / d

		del := d * c
		h *= del
		if math.Abs(del-1) < epsilon {
			break
		}
	}

	return h
}
