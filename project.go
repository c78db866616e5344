package nurbs

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// DefaultMaxIterations is the default iteration limit of [Project].
	DefaultMaxIterations = 20

	// DefaultCosineTolerance is the default bound on the cosine between the
	// tangent and the distance vector at which [Project] considers the
	// distance vector to be orthogonal to the curve.
	DefaultCosineTolerance = 1e-8

	// DefaultCoincidenceTolerance is the default distance below which
	// [Project] treats a point as lying on the curve.
	DefaultCoincidenceTolerance = 1e-10

	// DefaultPolygonSamples is the default number of polygon segments per
	// knot span used by [Project] to find an initial guess.
	DefaultPolygonSamples = 8
)

// Refine refines the parameter t0 of a point on c so that it approaches the
// point closest to pt, using Newton-Raphson iteration on the squared
// distance.
//
// Iteration stops successfully when the curve point is closer to pt than
// distanceTolerance and the absolute cosine of the angle between the tangent
// and the distance vector is below cosineTolerance. It stops unsuccessfully
// when an update leaves the domain of the curve or after maxIterations
// iterations. In all cases the last parameter is returned, but it must not
// be trusted unless the second return value is true.
//
// Because convergence requires the distance criterion, a point farther than
// distanceTolerance from the curve never converges. Pass math.Inf(1) to find
// foot points of arbitrary points.
func Refine(
	c DerivativeCurve,
	pt r3.Vec,
	t0 float64,
	maxIterations int,
	distanceTolerance float64,
	cosineTolerance float64,
) (float64, bool) {
	t := t0
	dom := c.Domain()
	for range maxIterations {
		ders := c.DerivativesAt(t, 2)
		d := r3.Sub(ders[0], pt)
		dist := r3.Norm(d)

		num := r3.Dot(ders[1], d)
		den := r3.Norm(ders[1]) * dist
		cos := 0.0
		if den != 0 {
			cos = num / den
		}
		if dist < distanceTolerance && math.Abs(cos) < cosineTolerance {
			return t, true
		}

		t -= num / (r3.Dot(ders[2], d) + r3.Norm2(ders[1]))
		if !dom.Contains(t) {
			return t, false
		}
	}
	return t, false
}

// PolygonPoint is a vertex of a curve's polygon approximation.
type PolygonPoint struct {
	T float64
	P r3.Vec
}

// Polygon approximates c by a polyline. If c implements [SpanIntervaler],
// every span is divided into the given number of segments of equal
// parameter length; otherwise the whole domain is. Shared span boundaries
// appear once. It panics if samples is less than 1.
func Polygon(c DerivativeCurve, samples int) []PolygonPoint {
	if samples < 1 {
		panic("Polygon called with fewer than one sample")
	}
	var spans []Interval
	if sc, ok := c.(SpanIntervaler); ok {
		spans = sc.SpanIntervals()
	}
	if len(spans) == 0 {
		spans = []Interval{c.Domain()}
	}

	ts := make([]float64, samples+1)
	out := make([]PolygonPoint, 0, len(spans)*samples+1)
	for i, iv := range spans {
		floats.Span(ts, iv.T0, iv.T1)
		start := 1
		if i == 0 {
			start = 0
		}
		for _, t := range ts[start:] {
			out = append(out, PolygonPoint{T: t, P: c.DerivativesAt(t, 0)[0]})
		}
	}
	return out
}

// ProjectOptions specifies optional settings for [Project]. Zero values
// select the package defaults.
type ProjectOptions struct {
	// Number of polygon segments per knot span used to find the initial
	// guess. Defaults to DefaultPolygonSamples.
	Samples int

	// Maximum number of Newton-Raphson iterations. Defaults to
	// DefaultMaxIterations.
	MaxIterations int

	// If positive, projections farther from the curve than this are
	// reported as unsuccessful. Zero accepts any distance.
	DistanceTolerance float64

	// Defaults to DefaultCosineTolerance.
	CosineTolerance float64

	// Distance below which the point is considered to lie on the curve,
	// where the angle criterion is meaningless. Defaults to
	// DefaultCoincidenceTolerance.
	CoincidenceTolerance float64
}

func (opts ProjectOptions) withDefaults() ProjectOptions {
	if opts.Samples <= 0 {
		opts.Samples = DefaultPolygonSamples
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}
	if opts.DistanceTolerance <= 0 {
		opts.DistanceTolerance = math.Inf(1)
	}
	if opts.CosineTolerance <= 0 {
		opts.CosineTolerance = DefaultCosineTolerance
	}
	if opts.CoincidenceTolerance <= 0 {
		opts.CoincidenceTolerance = DefaultCoincidenceTolerance
	}
	return opts
}

// Projection is the result of [Project].
type Projection struct {
	// Parameter of the projected point.
	T float64

	// The projected point on the curve.
	Point r3.Vec

	// Distance between the input point and Point.
	Distance float64

	// Whether the projection converged. If it didn't, T is the best
	// initial guess found on the polygon approximation.
	OK bool
}

// Project finds the point on c closest to pt.
//
// An initial guess is found by projecting pt onto every segment of the
// curve's [Polygon] with [ClosestPointOnSegment] and keeping the closest
// candidate. The guess is then improved with [Refine]. If Refine fails but
// ends inside the domain within CoincidenceTolerance of pt, the point lies
// on the curve and the projection is successful as well.
func Project(c DerivativeCurve, pt r3.Vec, opts ProjectOptions) Projection {
	opts = opts.withDefaults()

	poly := Polygon(c, opts.Samples)
	var best option[float64]
	guess := poly[0].T
	for i := range len(poly) - 1 {
		a, b := poly[i], poly[i+1]
		seg := Segment{a.P, b.P}
		t, _ := ClosestPointOnSegment(pt, seg.P0, seg.P1, a.T, b.T)
		foot := seg.P0
		if b.T != a.T {
			foot = seg.Eval((t - a.T) / (b.T - a.T))
		}
		distSq := r3.Norm2(r3.Sub(pt, foot))
		if !best.isSet || distSq < best.value {
			best.set(distSq)
			guess = t
		}
	}

	t, ok := Refine(c, pt, guess, opts.MaxIterations, opts.DistanceTolerance, opts.CosineTolerance)
	if !ok && c.Domain().Contains(t) {
		p := c.DerivativesAt(t, 0)[0]
		if dist := r3.Norm(r3.Sub(p, pt)); dist < opts.CoincidenceTolerance {
			return Projection{T: t, Point: p, Distance: dist, OK: true}
		}
	}
	if !ok {
		t = guess
	}
	p := c.DerivativesAt(t, 0)[0]
	return Projection{T: t, Point: p, Distance: r3.Norm(r3.Sub(p, pt)), OK: ok}
}
