package searcher

import "math"

type uct struct {
	numerator float64
}

// newUCT precomputes C^2*ln(N) for a parent with N visits. A parent without
// visits only has unvisited children, which score +Inf regardless.
func newUCT(c float64, N int) *uct {
	if N <= 0 {
		return &uct{numerator: 0}
	}
	return &uct{numerator: c * c * math.Log(float64(N))}
}

// evaluate computes q/n + C*sqrt(ln(N)/n), or +Inf for an unvisited child.
func (u uct) evaluate(q float64, n int) float64 {
	if n == 0 {
		return math.Inf(1)
	}
	return q/float64(n) + math.Sqrt(u.numerator/float64(n))
}
