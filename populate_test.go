package planar

import (
	"math/rand/v2"
	"testing"
)

func TestPopulate_Spacing(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	points := Populate(1024, 1024, rng)

	if len(points) == 0 {
		t.Fatal("Populate returned no points")
	}
	if limit := 1049; len(points) > limit {
		t.Errorf("Populate returned %d points, want at most %d candidates", len(points), limit)
	}

	for i, p := range points {
		if p.X < -512 || p.X > 512 || p.Y < -512 || p.Y > 512 {
			t.Errorf("point %d = %v outside the canvas", i, p)
		}
		for j := i + 1; j < len(points); j++ {
			if d := p.Distance(points[j]); d < MinAnchorSpacing {
				t.Fatalf("points %d and %d are %v apart, want >= %v", i, j, d, MinAnchorSpacing)
			}
		}
	}
}

func TestPopulate_Deterministic(t *testing.T) {
	a := Populate(400, 300, rand.New(rand.NewPCG(3, 4)))
	b := Populate(400, 300, rand.New(rand.NewPCG(3, 4)))

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestPopulateSpaced(t *testing.T) {
	tests := []struct {
		name          string
		width, height float32
		spacing       float32
		wantEmpty     bool
	}{
		{"empty canvas", 0, 100, 10, true},
		{"negative", -10, 100, 10, true},
		{"tiny canvas rounds to zero", 10, 10, 10, true},
		{"no spacing keeps all", 100, 100, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PopulateSpaced(tt.width, tt.height, tt.spacing, rand.New(rand.NewPCG(1, 1)))
			if (len(got) == 0) != tt.wantEmpty {
				t.Errorf("PopulateSpaced returned %d points, wantEmpty=%v", len(got), tt.wantEmpty)
			}
		})
	}

	if got := PopulateSpaced(100, 100, 0, rand.New(rand.NewPCG(1, 1))); len(got) != 10 {
		t.Errorf("PopulateSpaced without spacing = %d points, want 10", len(got))
	}
}
