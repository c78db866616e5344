package nurbs

import "gonum.org/v1/gonum/spatial/r3"

// Segment represents a line segment in 3D space.
type Segment struct {
	// The segment's start point.
	P0 r3.Vec
	// The segment's end point.
	P1 r3.Vec
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return r3.Norm(r3.Sub(s.P1, s.P0))
}

// Eval linearly interpolates between the start and end points.
func (s Segment) Eval(t float64) r3.Vec {
	return r3.Add(s.P0, r3.Scale(t, r3.Sub(s.P1, s.P0)))
}

// Nearest returns the squared distance from pt to the closest point on the
// segment, and the parameter t ∈ [0, 1] of that point.
func (s Segment) Nearest(pt r3.Vec) (distSq, t float64) {
	d := r3.Sub(s.P1, s.P0)
	dotp := r3.Dot(d, r3.Sub(pt, s.P0))
	dSquared := r3.Norm2(d)
	if dotp <= 0.0 {
		return r3.Norm2(r3.Sub(pt, s.P0)), 0.0
	} else if dotp >= dSquared {
		return r3.Norm2(r3.Sub(pt, s.P1)), 1.0
	} else {
		t := dotp / dSquared
		return r3.Norm2(r3.Sub(pt, s.Eval(t))), t
	}
}

// ClosestPointOnSegment projects pt orthogonally onto the segment from start
// to end, whose points carry the curve parameters t0 and t1, and returns the
// linearly interpolated parameter of the projection.
//
// If the projection falls before the start, t0 is returned and the second
// return value is false; if it falls beyond the end, t1 is returned and it is
// false as well. In those cases the parameter is only a bound, not a true
// closest point. A segment of zero length yields t0 and false.
func ClosestPointOnSegment(pt, start, end r3.Vec, t0, t1 float64) (float64, bool) {
	d := r3.Sub(end, start)
	length := r3.Norm(d)
	if length == 0 {
		return t0, false
	}
	proj := r3.Dot(r3.Sub(pt, start), d) / length
	if proj < 0 {
		return t0, false
	}
	if proj > length {
		return t1, false
	}
	return t0 + (t1-t0)*proj/length, true
}
