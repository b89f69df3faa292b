package hclust

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestComputePairwiseDistancesKnownValues(t *testing.T) {
	// Points: (0,0), (3,4), (0,4).
	data := []float64{0, 0, 3, 4, 0, 4}
	n, dims := 3, 2

	dist := ComputePairwiseDistances(data, n, dims)

	if len(dist) != n*n {
		t.Fatalf("length: got %d, want %d", len(dist), n*n)
	}

	tests := []struct {
		i, j int
		want float64
	}{
		{0, 1, 5.0},
		{0, 2, 4.0},
		{1, 2, 3.0},
	}
	for _, tt := range tests {
		if got := dist[tt.i*n+tt.j]; !scalar.EqualWithinAbs(got, tt.want, 1e-12) {
			t.Errorf("dist(%d,%d): got %g, want %g", tt.i, tt.j, got, tt.want)
		}
	}
}

func TestComputePairwiseDistancesSymmetricZeroDiagonal(t *testing.T) {
	data := generateFlatData(20, 3)
	n := 20

	dist := ComputePairwiseDistances(data, n, 3)

	for i := 0; i < n; i++ {
		if dist[i*n+i] != 0 {
			t.Errorf("diagonal[%d]: got %g, want 0", i, dist[i*n+i])
		}
		for j := 0; j < n; j++ {
			if dist[i*n+j] != dist[j*n+i] {
				t.Errorf("asymmetry at (%d,%d): %g vs %g", i, j, dist[i*n+j], dist[j*n+i])
			}
			if j != i && dist[i*n+j] < 0 {
				t.Errorf("negative distance at (%d,%d): %g", i, j, dist[i*n+j])
			}
		}
	}
}

func TestComputePairwiseDistancesEmpty(t *testing.T) {
	dist := ComputePairwiseDistances(nil, 0, 0)
	if len(dist) != 0 {
		t.Fatalf("expected empty matrix, got length %d", len(dist))
	}
}

func TestComputePairwiseDistancesSinglePoint(t *testing.T) {
	dist := ComputePairwiseDistances([]float64{1, 2}, 1, 2)
	if len(dist) != 1 {
		t.Fatalf("length: got %d, want 1", len(dist))
	}
	if dist[0] != 0 {
		t.Errorf("dist(0,0): got %g, want 0", dist[0])
	}
}

func TestComputePairwiseDistancesNonFinitePropagates(t *testing.T) {
	// Non-finite coordinates are not rejected; they flow into the algebra.
	data := []float64{0, 0, math.NaN(), 0}
	dist := ComputePairwiseDistances(data, 2, 2)
	if !math.IsNaN(dist[1]) {
		t.Errorf("dist(0,1): got %g, want NaN", dist[1])
	}
}
