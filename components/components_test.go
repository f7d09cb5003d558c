package components

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestLabelForCycles(t *testing.T) {
	labels := []string{"Josh", "Almie", "redbeard", "github.com"}

	tests := []struct {
		index int
		want  string
	}{
		{0, "Josh"},
		{1, "Almie"},
		{2, "redbeard"},
		{3, "github.com"},
		{4, "Josh"},
		{9, "Almie"},
	}

	for _, tc := range tests {
		if got := LabelFor(tc.index, labels); got != tc.want {
			t.Errorf("LabelFor(%d) = %q, want %q", tc.index, got, tc.want)
		}
	}
}

func TestLabelForEmpty(t *testing.T) {
	if got := LabelFor(3, nil); got != "" {
		t.Errorf("expected empty label, got %q", got)
	}
}

func TestRandomDirection(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want r2.Vec
	}{
		{name: "axis", x: 3, y: 0, want: r2.Vec{X: 1}},
		{name: "3-4-5", x: 0.3, y: 0.4, want: r2.Vec{X: 0.6, Y: 0.8}},
		{name: "zero falls back", x: 0, y: 0, want: r2.Vec{X: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RandomDirection(tc.x, tc.y)
			if math.Abs(got.X-tc.want.X) > 1e-12 || math.Abs(got.Y-tc.want.Y) > 1e-12 {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
			if math.Abs(r2.Norm(got)-1) > 1e-12 {
				t.Errorf("expected unit vector, got norm %v", r2.Norm(got))
			}
		})
	}
}
