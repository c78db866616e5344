package nurbs

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/combin"
)

// Workspace holds the scratch buffers used by an [Evaluator]. Its contents
// are overwritten on every evaluation. A Workspace may be shared by several
// evaluators as long as they're used from a single goroutine.
type Workspace struct {
	left  []float64
	right []float64
	a     []float64
	b     []float64
	sums  []float64

	// ndu stores the basis functions in its upper triangle and the knot
	// differences in its lower triangle.
	ndu *mat.Dense
}

// NewWorkspace returns a workspace sized for the given degree and derivative
// order.
func NewWorkspace(degree, order int) *Workspace {
	ws := &Workspace{}
	ws.resize(degree, order)
	return ws
}

func (ws *Workspace) resize(degree, order int) {
	ws.left = grow(ws.left, degree)
	ws.right = grow(ws.right, degree)
	ws.a = grow(ws.a, degree+1)
	ws.b = grow(ws.b, degree+1)
	ws.sums = grow(ws.sums, order+1)
	if ws.ndu == nil {
		ws.ndu = mat.NewDense(degree+1, degree+1, nil)
	} else if r, _ := ws.ndu.Dims(); r < degree+1 {
		ws.ndu.Reset()
		ws.ndu.ReuseAs(degree+1, degree+1)
	}
}

func grow(s []float64, n int) []float64 {
	if cap(s) < n {
		return make([]float64, n)
	}
	return s[:n]
}

// Evaluator computes the degree+1 nonzero B-spline or NURBS basis functions
// and their derivatives at a parameter value.
//
// The results are stored in a table with one row per derivative order (row
// 0 holds the function values) and one column per nonzero basis function.
// Column i corresponds to control point FirstNonzero()+i.
//
// An Evaluator is reusable but not safe for concurrent use. Goroutines that
// need to evaluate basis functions concurrently must each use their own
// Evaluator and Workspace.
type Evaluator struct {
	degree int
	order  int
	first  int
	values *mat.Dense
	ws     *Workspace
}

// NewEvaluator returns an evaluator for basis functions of the given degree
// and their derivatives up to order. If ws is nil, the evaluator allocates
// its own workspace.
func NewEvaluator(degree, order int, ws *Workspace) (*Evaluator, error) {
	e := &Evaluator{ws: ws}
	if err := e.Configure(degree, order); err != nil {
		return nil, err
	}
	return e, nil
}

// Configure sizes the evaluator for a new degree and derivative order. It
// must be called before the first evaluation if the evaluator wasn't created
// with [NewEvaluator].
func (e *Evaluator) Configure(degree, order int) error {
	if degree < 0 {
		return fmt.Errorf("%w: negative degree %d", ErrInvalidConfiguration, degree)
	}
	if order < 0 {
		return fmt.Errorf("%w: negative derivative order %d", ErrInvalidConfiguration, order)
	}
	e.degree = degree
	e.order = order
	e.first = 0
	if e.values == nil {
		e.values = mat.NewDense(order+1, degree+1, nil)
	} else {
		e.values.Reset()
		e.values.ReuseAs(order+1, degree+1)
	}
	if e.ws == nil {
		e.ws = NewWorkspace(degree, order)
	} else {
		e.ws.resize(degree, order)
	}
	return nil
}

// Degree returns the polynomial degree.
func (e *Evaluator) Degree() int { return e.degree }

// Order returns the highest derivative order that is computed.
func (e *Evaluator) Order() int { return e.order }

// NumNonzero returns the number of nonzero basis functions, degree+1.
func (e *Evaluator) NumNonzero() int { return e.degree + 1 }

// NumRows returns the number of rows of the result table, order+1.
func (e *Evaluator) NumRows() int { return e.order + 1 }

// FirstNonzero returns the index of the first control point whose basis
// function is nonzero at the last evaluated parameter.
func (e *Evaluator) FirstNonzero() int { return e.first }

// NonzeroIndices returns the indices of all control points whose basis
// functions are nonzero at the last evaluated parameter.
func (e *Evaluator) NonzeroIndices() []int {
	out := make([]int, e.NumNonzero())
	for i := range out {
		out[i] = e.first + i
	}
	return out
}

// Value returns the k-th derivative of the i-th nonzero basis function.
// Indices outside of the table yield zero.
func (e *Evaluator) Value(i, k int) float64 {
	if i < 0 || i >= e.NumNonzero() || k < 0 || k >= e.NumRows() {
		return 0
	}
	return e.values.At(k, i)
}

// Row returns the k-th derivatives of all nonzero basis functions. The slice
// aliases the evaluator's storage and is overwritten by the next evaluation.
// Unlike [Evaluator.Value], it panics if k is outside of [0, Order()].
func (e *Evaluator) Row(k int) []float64 {
	return e.values.RawRowView(k)
}

// Table returns a read-only view of the result table, with derivative
// orders as rows and nonzero basis functions as columns. The view reflects
// later evaluations.
func (e *Evaluator) Table() mat.Matrix {
	return tableView{e.values}
}

// tableView hides the mutable methods of the underlying matrix.
type tableView struct {
	m *mat.Dense
}

func (v tableView) Dims() (r, c int) { return v.m.Dims() }
func (v tableView) At(i, j int) float64 { return v.m.At(i, j) }
func (v tableView) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// BSpline computes the B-spline basis functions at t, locating the knot
// span with [KnotVector.Span].
//
// This is algorithm A3.1 of The NURBS Book, restricted to the basis.
func (e *Evaluator) BSpline(knots KnotVector, t float64) error {
	return e.BSplineAtSpan(knots, knots.Span(e.degree, t), t)
}

// BSplineAtSpan computes the B-spline basis functions at t in the given knot
// span. The span must be nonempty; t is normally inside of it, but values
// outside of it are extrapolated.
//
// This implements algorithms A2.2 and A2.3 of The NURBS Book. Derivatives of
// order higher than the degree are zero and aren't computed.
func (e *Evaluator) BSplineAtSpan(knots KnotVector, span int, t float64) error {
	if err := e.checkSpan(knots, span); err != nil {
		return err
	}

	p := e.degree
	ws := e.ws
	// Another evaluator sharing the workspace may have resized it.
	ws.resize(p, e.order)
	ndu := ws.ndu
	left, right := ws.left, ws.right

	e.values.Zero()
	e.first = span - p

	ndu.Set(0, 0, 1)
	for j := range p {
		left[j] = t - knots[span-j]
		right[j] = knots[span+j+1] - t
		saved := 0.0
		for r := 0; r <= j; r++ {
			// Lower triangle: knot differences.
			ndu.Set(j+1, r, right[r]+left[j-r])
			temp := ndu.At(r, j) / ndu.At(j+1, r)
			// Upper triangle: basis functions.
			ndu.Set(r, j+1, saved+right[r]*temp)
			saved = left[j-r] * temp
		}
		ndu.Set(j+1, j+1, saved)
	}

	values := e.values.RawRowView(0)
	for j := range values {
		values[j] = ndu.At(j, p)
	}

	n := min(e.order, p)
	a, b := ws.a, ws.b
	for r := 0; r <= p; r++ {
		a[0] = 1
		for k := 1; k <= n; k++ {
			rk := r - k
			pk := p - k
			var d float64
			if r >= k {
				b[0] = a[0] / ndu.At(pk+1, rk)
				d = b[0] * ndu.At(rk, pk)
			}
			j1 := 1
			if r < k-1 {
				j1 = k - r
			}
			j2 := k
			if r > pk+1 {
				j2 = p + 1 - r
			}
			for j := j1; j < j2; j++ {
				b[j] = (a[j] - a[j-1]) / ndu.At(pk+1, rk+j)
				d += b[j] * ndu.At(rk+j, pk)
			}
			if r <= pk {
				b[k] = -a[k-1] / ndu.At(pk+1, r)
				d += b[k] * ndu.At(r, pk)
			}
			e.values.Set(k, r, d)
			a, b = b, a
		}
	}

	// Multiply row k by p!/(p-k)!.
	s := float64(p)
	for k := 1; k <= n; k++ {
		row := e.values.RawRowView(k)
		for j := range row {
			row[j] *= s
		}
		s *= float64(p - k)
	}
	return nil
}

// NURBS computes the rational basis functions at t, locating the knot span
// with [KnotVector.Span]. Weights has one entry per control point.
func (e *Evaluator) NURBS(knots KnotVector, weights []float64, t float64) error {
	return e.NURBSAtSpan(knots, knots.Span(e.degree, t), weights, t)
}

// NURBSAtSpan computes the rational basis functions and their derivatives at
// t in the given knot span. Weights has one entry per control point and
// must be positive; all weights being equal yields the B-spline basis.
//
// This is the basis part of algorithm A4.2 of The NURBS Book: the weighted
// B-spline derivatives are corrected with the quotient rule, using the
// already computed lower-order rows.
//
// Invalid arguments leave the table unchanged. If the weighted sum of the
// basis functions is zero, the table is zeroed.
func (e *Evaluator) NURBSAtSpan(knots KnotVector, span int, weights []float64, t float64) error {
	if err := e.checkSpan(knots, span); err != nil {
		return err
	}
	if span >= len(weights) {
		return fmt.Errorf("%w: need weight %d, have %d", ErrWeightCount, span, len(weights))
	}
	if err := e.BSplineAtSpan(knots, span, t); err != nil {
		return err
	}

	w := weights[e.first : e.first+e.NumNonzero()]
	sums := e.ws.sums
	for k := range e.NumRows() {
		sums[k] = floats.Dot(e.values.RawRowView(k), w)
	}
	if sums[0] == 0 {
		e.values.Zero()
		return fmt.Errorf("%w: at t=%g in span %d", ErrZeroWeightSum, t, span)
	}

	for k := range e.NumRows() {
		row := e.values.RawRowView(k)
		floats.Mul(row, w)
		for i := 1; i <= k; i++ {
			f := float64(combin.Binomial(k, i)) * sums[i]
			floats.AddScaled(row, -f, e.values.RawRowView(k-i))
		}
		floats.Scale(1/sums[0], row)
	}
	return nil
}

func (e *Evaluator) checkSpan(knots KnotVector, span int) error {
	if span < e.degree || span+e.degree+1 >= len(knots) {
		return fmt.Errorf("%w: span %d with degree %d and %d knots",
			ErrSpanOutOfRange, span, e.degree, len(knots))
	}
	if knots[span] == knots[span+1] {
		return fmt.Errorf("%w: span %d at knot %g", ErrEmptySpan, span, knots[span])
	}
	return nil
}
