package nurbs

import "errors"

var (
	// ErrInvalidConfiguration is returned when an [Evaluator] is configured
	// with a negative degree or derivative order.
	ErrInvalidConfiguration = errors.New("invalid basis configuration")

	// ErrSpanOutOfRange is returned when a span index doesn't select a full
	// set of degree+1 basis functions in the knot vector.
	ErrSpanOutOfRange = errors.New("knot span out of range")

	// ErrEmptySpan is returned when a span index refers to a zero-length knot
	// interval. Evaluating there would divide by a zero knot difference.
	ErrEmptySpan = errors.New("empty knot span")

	// ErrWeightCount is returned when the weights don't cover the nonzero
	// control points of a span.
	ErrWeightCount = errors.New("not enough weights")

	// ErrZeroWeightSum is returned when the weighted sum of the basis
	// functions is zero, which only happens for invalid weights.
	ErrZeroWeightSum = errors.New("weighted basis sum is zero")

	// ErrInvalidKnots is returned by [KnotVector.Validate].
	ErrInvalidKnots = errors.New("invalid knot vector")

	// ErrInvalidCurve is returned by [NewCurve].
	ErrInvalidCurve = errors.New("invalid curve")
)
