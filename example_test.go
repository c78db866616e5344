package nurbs_test

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
	"honnef.co/go/nurbs"
)

func ExampleEvaluator() {
	knots := nurbs.KnotVector{0, 0, 0, 1, 2, 2, 2}
	e, err := nurbs.NewEvaluator(2, 1, nil)
	if err != nil {
		panic(err)
	}
	if err := e.BSpline(knots, 0.5); err != nil {
		panic(err)
	}
	fmt.Println("control points:", e.NonzeroIndices())
	fmt.Printf("values:      %.4f\n", e.Row(0))
	fmt.Printf("derivatives: %.4f\n", e.Row(1))

	// Output:
	// control points: [0 1 2]
	// values:      [0.2500 0.6250 0.1250]
	// derivatives: [-1.0000 0.5000 0.5000]
}

func ExampleProject() {
	// A quarter of the unit circle, from (1, 0) to (0, 1).
	c, err := nurbs.NewCurve(2,
		nurbs.KnotVector{0, 0, 0, 1, 1, 1},
		[]r3.Vec{{X: 1}, {X: 1, Y: 1}, {Y: 1}},
		[]float64{1, math.Sqrt2 / 2, 1},
	)
	if err != nil {
		panic(err)
	}

	proj := nurbs.Project(c, r3.Vec{X: 2, Y: 2}, nurbs.ProjectOptions{})
	fmt.Printf("ok=%t t=%.4f point=(%.4f, %.4f) distance=%.4f\n",
		proj.OK, proj.T, proj.Point.X, proj.Point.Y, proj.Distance)

	// Output:
	// ok=true t=0.5000 point=(0.7071, 0.7071) distance=1.8284
}
