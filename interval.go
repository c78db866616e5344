package nurbs

import (
	"fmt"
	"math"
)

// Interval is a closed parameter interval [T0, T1].
type Interval struct {
	T0 float64
	T1 float64
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.T0, iv.T1)
}

// Min returns the lower bound of the interval.
func (iv Interval) Min() float64 { return min(iv.T0, iv.T1) }

// Max returns the upper bound of the interval.
func (iv Interval) Max() float64 { return max(iv.T0, iv.T1) }

// Length returns the length of the interval.
func (iv Interval) Length() float64 {
	return iv.Max() - iv.Min()
}

// Contains reports whether t lies in the closed interval. NaN is never
// contained.
func (iv Interval) Contains(t float64) bool {
	return t >= iv.Min() && t <= iv.Max()
}

// Clamp clamps t to the interval.
func (iv Interval) Clamp(t float64) float64 {
	return math.Max(iv.Min(), math.Min(t, iv.Max()))
}

// Lerp maps f ∈ [0, 1] linearly onto the interval.
func (iv Interval) Lerp(f float64) float64 {
	return iv.T0 + f*(iv.T1-iv.T0)
}

// Normalize is the inverse of [Interval.Lerp]. It returns NaN or ±Inf for
// intervals of zero length.
func (iv Interval) Normalize(t float64) float64 {
	return (t - iv.T0) / (iv.T1 - iv.T0)
}
