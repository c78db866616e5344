package nurbs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-10)

// rows returns the evaluator's table as a slice of rows.
func rows(e *Evaluator) [][]float64 {
	out := make([][]float64, e.NumRows())
	for k := range out {
		out[k] = append([]float64(nil), e.Row(k)...)
	}
	return out
}
