package nurbs

import (
	"fmt"
	"math"
	"sort"
)

// KnotVector is a non-decreasing sequence of parameter values. A curve of
// degree p with n control points has a knot vector of length n+p+1, and its
// parametric domain is [k[p], k[n]].
type KnotVector []float64

// KnotMultiplicity is a distinct knot value and the number of times it
// occurs in a knot vector.
type KnotMultiplicity struct {
	Knot float64
	Mult int
}

// Clone returns a copy of the knot vector.
func (kv KnotVector) Clone() KnotVector {
	return append(KnotVector(nil), kv...)
}

// NumControlPoints returns the number of control points (and basis
// functions) that a curve of the given degree has over this knot vector.
func (kv KnotVector) NumControlPoints(degree int) int {
	return len(kv) - degree - 1
}

// Domain returns the parametric domain of a curve of the given degree.
func (kv KnotVector) Domain(degree int) Interval {
	return Interval{kv[degree], kv[kv.NumControlPoints(degree)]}
}

// Validate checks that the knot vector can be used for a curve of the given
// degree: it must have at least 2(degree+1) finite knots in non-decreasing
// order, no knot may repeat more than degree+1 times, and the domain must
// have positive length.
func (kv KnotVector) Validate(degree int) error {
	if degree < 0 {
		return fmt.Errorf("%w: negative degree %d", ErrInvalidKnots, degree)
	}
	if len(kv) < 2*(degree+1) {
		return fmt.Errorf("%w: %d knots, degree %d needs at least %d",
			ErrInvalidKnots, len(kv), degree, 2*(degree+1))
	}
	for i, k := range kv {
		if math.IsNaN(k) || math.IsInf(k, 0) {
			return fmt.Errorf("%w: knot %d is %g", ErrInvalidKnots, i, k)
		}
		if i > 0 && k < kv[i-1] {
			return fmt.Errorf("%w: knot %d (%g) is less than knot %d (%g)",
				ErrInvalidKnots, i, k, i-1, kv[i-1])
		}
	}
	for _, m := range kv.Multiplicities() {
		if m.Mult > degree+1 {
			return fmt.Errorf("%w: knot %g has multiplicity %d, more than degree+1",
				ErrInvalidKnots, m.Knot, m.Mult)
		}
	}
	if kv.Domain(degree).Length() <= 0 {
		return fmt.Errorf("%w: empty domain %v", ErrInvalidKnots, kv.Domain(degree))
	}
	return nil
}

// Span returns the index s of the knot span containing t, that is the
// largest s with k[s] <= t < k[s+1]. Only spans in [degree, n-1] are
// considered, where n is the number of control points. At the right end of
// the domain, and for t past it, the last nonempty span is returned. For t
// before the domain, the first nonempty span is returned.
//
// This is algorithm A2.1 of The NURBS Book. The knot vector is assumed to
// be valid.
func (kv KnotVector) Span(degree int, t float64) int {
	first := degree
	last := kv.NumControlPoints(degree) - 1

	s := sort.Search(len(kv), func(i int) bool { return kv[i] > t }) - 1
	s = max(first, min(s, last))
	for s > first && kv[s] == kv[s+1] {
		s--
	}
	for s < last && kv[s] == kv[s+1] {
		s++
	}
	return s
}

// SpanIntervals returns the nonempty knot spans of the domain of a curve of
// the given degree, in increasing order.
func (kv KnotVector) SpanIntervals(degree int) []Interval {
	var out []Interval
	for s := degree; s < kv.NumControlPoints(degree); s++ {
		if kv[s] < kv[s+1] {
			out = append(out, Interval{kv[s], kv[s+1]})
		}
	}
	return out
}

// Multiplicities returns the distinct knot values and their multiplicities.
func (kv KnotVector) Multiplicities() []KnotMultiplicity {
	var out []KnotMultiplicity
	for i, k := range kv {
		if i == 0 || k != kv[i-1] {
			out = append(out, KnotMultiplicity{Knot: k})
		}
		out[len(out)-1].Mult++
	}
	return out
}

// Transform returns the knot vector with every knot k replaced by
// scale*k + offset. A negative scale doesn't produce a valid knot vector.
func (kv KnotVector) Transform(scale, offset float64) KnotVector {
	out := make(KnotVector, len(kv))
	for i, k := range kv {
		out[i] = scale*k + offset
	}
	return out
}

// Reparametrize returns the knot vector affinely mapped so that the domain
// of a curve of the given degree becomes iv.
func (kv KnotVector) Reparametrize(degree int, iv Interval) KnotVector {
	dom := kv.Domain(degree)
	scale := (iv.T1 - iv.T0) / (dom.T1 - dom.T0)
	return kv.Transform(scale, iv.T0-scale*dom.T0)
}
