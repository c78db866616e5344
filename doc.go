// Package nurbs evaluates B-spline and NURBS basis functions and projects
// points onto parametric curves. It was designed to serve isogeometric
// analysis, where shape functions and their derivatives are evaluated at
// many integration points, but it is general enough for other applications
// that work with NURBS curves.
//
// # Basis functions
//
// [Evaluator] computes the degree+1 basis functions that are nonzero at a
// parameter, together with their derivatives up to a requested order.
// [Evaluator.BSpline] and [Evaluator.BSplineAtSpan] compute the polynomial
// B-spline basis, [Evaluator.NURBS] and [Evaluator.NURBSAtSpan] the rational
// basis for a set of weights. The results form a table that is accessed
// with [Evaluator.Value] or row by row with [Evaluator.Row].
//
// Evaluators don't allocate after they have been configured. Their scratch
// buffers live in a [Workspace], which callers can provide explicitly. An
// Evaluator is not safe for concurrent use; each goroutine needs its own.
//
// # Knot vectors
//
// Knot vectors use the convention of The NURBS Book: a curve of degree p
// with n control points has n+p+1 knots, and its domain is [k[p], k[n]].
// [KnotVector.Span] locates the knot span of a parameter. The first nonzero
// basis function in span s belongs to control point s-p.
//
// # Curves and projection
//
// [Curve] is a B-spline or NURBS curve in 3D space, using
// [gonum.org/v1/gonum/spatial/r3] vectors. It implements [DerivativeCurve],
// the interface consumed by the projection routines:
//
//   - [ClosestPointOnSegment] projects a point onto a line segment and
//     interpolates the parameters of its end points.
//   - [Refine] improves an initial guess with Newton-Raphson iteration.
//   - [Project] combines both, using the [Polygon] approximation of a curve
//     to find the initial guess.
//
// # Literature
//
// This package makes use of the following ideas:
//   - Algorithms A2.1, A2.2, A2.3, A3.1 and A4.2 of The NURBS Book (2nd
//     edition) by Les Piegl and Wayne Tiller
//   - [ANurbs] by Thomas Oberbichler
//
// [ANurbs]: https://github.com/oberbichler/ANurbs
package nurbs
