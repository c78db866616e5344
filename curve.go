package nurbs

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"
)

// DerivativeCurve describes a parametric curve in 3D space that can report
// its derivatives. It is the interface consumed by [Refine] and [Project].
type DerivativeCurve interface {
	// DerivativesAt returns order+1 vectors: the point on the curve at t,
	// followed by the first through order-th derivatives with respect to t.
	DerivativesAt(t float64, order int) []r3.Vec
	// Domain returns the parametric domain of the curve.
	Domain() Interval
}

// SpanIntervaler is an optional interface implemented by piecewise curves.
// [Polygon] uses it to place samples on every polynomial piece.
type SpanIntervaler interface {
	SpanIntervals() []Interval
}

// Curve is a B-spline or NURBS curve with control points in 3D space. Planar
// curves simply use zero z coordinates.
//
// Curves are immutable and safe for concurrent use.
type Curve struct {
	degree  int
	knots   KnotVector
	points  []r3.Vec
	weights []float64
}

var _ DerivativeCurve = (*Curve)(nil)
var _ SpanIntervaler = (*Curve)(nil)

// NewCurve returns a curve of the given degree. The knot vector must have
// len(points)+degree+1 entries. Weights may be nil for a non-rational
// B-spline curve; otherwise there must be one positive weight per control
// point. The arguments are copied.
func NewCurve(degree int, knots KnotVector, points []r3.Vec, weights []float64) (*Curve, error) {
	if err := knots.Validate(degree); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCurve, err)
	}
	if n := knots.NumControlPoints(degree); n != len(points) {
		return nil, fmt.Errorf("%w: %d knots and degree %d require %d control points, got %d",
			ErrInvalidCurve, len(knots), degree, n, len(points))
	}
	if weights != nil {
		if len(weights) != len(points) {
			return nil, fmt.Errorf("%w: %d weights for %d control points",
				ErrInvalidCurve, len(weights), len(points))
		}
		for i, w := range weights {
			if !(w > 0) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("%w: weight %d is %g", ErrInvalidCurve, i, w)
			}
		}
	}
	return &Curve{
		degree:  degree,
		knots:   knots.Clone(),
		points:  slices.Clone(points),
		weights: slices.Clone(weights),
	}, nil
}

func (c *Curve) Degree() int { return c.degree }

// Knots returns a copy of the knot vector.
func (c *Curve) Knots() KnotVector { return c.knots.Clone() }

// ControlPoints returns a copy of the control points.
func (c *Curve) ControlPoints() []r3.Vec { return slices.Clone(c.points) }

// Weights returns a copy of the weights, or nil for a non-rational curve.
func (c *Curve) Weights() []float64 { return slices.Clone(c.weights) }

func (c *Curve) NumControlPoints() int { return len(c.points) }

// IsRational reports whether the curve has weights.
func (c *Curve) IsRational() bool { return c.weights != nil }

func (c *Curve) Domain() Interval {
	return c.knots.Domain(c.degree)
}

func (c *Curve) SpanIntervals() []Interval {
	return c.knots.SpanIntervals(c.degree)
}

// PointAt evaluates the curve at t. Parameters outside of the domain
// extrapolate the first or last polynomial piece.
func (c *Curve) PointAt(t float64) r3.Vec {
	return c.DerivativesAt(t, 0)[0]
}

// DerivativesAt returns the point at t followed by the derivatives of the
// curve up to the given order. It panics if order is negative.
func (c *Curve) DerivativesAt(t float64, order int) []r3.Vec {
	e, err := NewEvaluator(c.degree, order, nil)
	if err != nil {
		panic(err)
	}
	span := c.knots.Span(c.degree, t)
	if c.weights != nil {
		err = e.NURBSAtSpan(c.knots, span, c.weights, t)
	} else {
		err = e.BSplineAtSpan(c.knots, span, t)
	}
	if err != nil {
		// Knots and weights are validated by NewCurve and Reparametrize.
		panic(fmt.Sprintf("unexpected basis error: %s", err))
	}

	out := make([]r3.Vec, order+1)
	pts := c.points[e.FirstNonzero() : e.FirstNonzero()+e.NumNonzero()]
	for k := range out {
		for i, n := range e.Row(k) {
			out[k] = r3.Add(out[k], r3.Scale(n, pts[i]))
		}
	}
	return out
}

// Reparametrize returns a copy of the curve whose domain is iv. The shape of
// the curve is unchanged; derivatives scale by the inverse ratio of the
// domain lengths. The interval must be finite with T0 < T1.
func (c *Curve) Reparametrize(iv Interval) (*Curve, error) {
	if !(iv.T0 < iv.T1) || math.IsInf(iv.T0, 0) || math.IsInf(iv.T1, 0) {
		return nil, fmt.Errorf("%w: domain %v", ErrInvalidCurve, iv)
	}
	knots := c.knots.Reparametrize(c.degree, iv)
	// Very large or very small ratios can collapse or overflow knots.
	if err := knots.Validate(c.degree); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCurve, err)
	}
	return &Curve{
		degree:  c.degree,
		knots:   knots,
		points:  slices.Clone(c.points),
		weights: slices.Clone(c.weights),
	}, nil
}
