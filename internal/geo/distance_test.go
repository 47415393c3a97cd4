package geo

import (
	"math"
	"testing"
)

// Reference coordinates around Maharashtra.
var (
	mumbai     = [2]float64{19.0760, 72.8777}
	pune       = [2]float64{18.5204, 73.8567}
	aurangabad = [2]float64{19.8762, 75.3433}
)

func TestDistanceKmKnownPairs(t *testing.T) {
	tests := []struct {
		name      string
		a, b      [2]float64
		wantKm    float64
		tolerance float64
	}{
		{"mumbai to pune", mumbai, pune, 120, 10},
		{"mumbai to aurangabad", mumbai, aurangabad, 273, 15},
		{"same point", pune, pune, 0, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKm(tt.a[0], tt.a[1], tt.b[0], tt.b[1])
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Fatalf("expected ~%.0f km, got %.2f km", tt.wantKm, got)
			}
		})
	}
}

func TestDistanceKmSymmetric(t *testing.T) {
	forward := DistanceKm(mumbai[0], mumbai[1], pune[0], pune[1])
	backward := DistanceKm(pune[0], pune[1], mumbai[0], mumbai[1])
	if math.Abs(forward-backward) > 1e-9 {
		t.Fatalf("distance not symmetric: %v vs %v", forward, backward)
	}
}

func TestWithinRadius(t *testing.T) {
	if WithinRadius(mumbai[0], mumbai[1], pune[0], pune[1], 100) {
		t.Fatal("pune should not be within 100km of mumbai")
	}
	if !WithinRadius(mumbai[0], mumbai[1], pune[0], pune[1], 150) {
		t.Fatal("pune should be within 150km of mumbai")
	}
}
