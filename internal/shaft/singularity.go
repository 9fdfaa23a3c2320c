package shaft

import "math"

// Macaulay evaluates the singularity function <x-a>^n: (x-a)^n for x >= a,
// 0 otherwise. <x-a>^0 is the unit step.
func Macaulay(x, a float64, n int) float64 {
	if x < a {
		return 0
	}
	switch n {
	case 0:
		return 1
	case 1:
		return x - a
	}
	return math.Pow(x-a, float64(n))
}

// CumulativeTrapezoid integrates y over x with the composite trapezoidal rule
// and returns the running integral, starting at 0.
func CumulativeTrapezoid(x, y []float64) []float64 {
	out := make([]float64, len(x))
	for i := 0; i < len(x)-1; i++ {
		out[i+1] = out[i] + (y[i]+y[i+1])*(x[i+1]-x[i])/2
	}
	return out
}

func norm(x, y, z float64) float64 {
	return math.Sqrt(x*x + y*y + z*z)
}
