package nurbs

import (
	"math"
	"testing"
)

func TestInterval(t *testing.T) {
	iv := Interval{2, -2}
	if got := iv.Length(); got != 4 {
		t.Errorf("Length: got %g, want 4", got)
	}
	for _, tt := range []struct {
		t    float64
		want bool
	}{
		{-2, true},
		{0, true},
		{2, true},
		{2.5, false},
		{math.NaN(), false},
	} {
		if got := iv.Contains(tt.t); got != tt.want {
			t.Errorf("Contains(%g): got %t, want %t", tt.t, got, tt.want)
		}
	}
	if got := iv.Clamp(5); got != 2 {
		t.Errorf("Clamp(5): got %g, want 2", got)
	}
	if got := iv.Clamp(-5); got != -2 {
		t.Errorf("Clamp(-5): got %g, want -2", got)
	}

	iv = Interval{1, 3}
	if got := iv.Lerp(0.25); got != 1.5 {
		t.Errorf("Lerp: got %g, want 1.5", got)
	}
	if got := iv.Normalize(1.5); got != 0.25 {
		t.Errorf("Normalize: got %g, want 0.25", got)
	}
	if got, want := iv.String(), "[1, 3]"; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
}
