package maps

import (
	"math"
	"testing"

	"pawtrail/internal/route"
)

func TestHaversineKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		lat1      float64
		lng1      float64
		lat2      float64
		lng2      float64
		wantKm    float64
		tolerance float64
	}{
		{
			name:      "same point",
			lat1:      51.5072, lng1: -0.1276,
			lat2:      51.5072, lng2: -0.1276,
			wantKm:    0,
			tolerance: 0.001,
		},
		{
			name:      "Trafalgar Square to Hyde Park Corner (~2km)",
			lat1:      51.5080, lng1: -0.1281,
			lat2:      51.5027, lng2: -0.1527,
			wantKm:    1.8,
			tolerance: 0.5,
		},
		{
			name:      "London to Edinburgh (~534km)",
			lat1:      51.5072, lng1: -0.1276,
			lat2:      55.9533, lng2: -3.1883,
			wantKm:    534,
			tolerance: 15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := haversineKm(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("haversineKm() = %f, want %f (±%f)", got, tt.wantKm, tt.tolerance)
			}
		})
	}
}

func TestHaversineKm_Symmetry(t *testing.T) {
	d1 := haversineKm(51.0, -0.1, 52.0, 0.9)
	d2 := haversineKm(52.0, 0.9, 51.0, -0.1)
	if math.Abs(d1-d2) > 0.0001 {
		t.Errorf("haversine is not symmetric: %f vs %f", d1, d2)
	}
}

func TestSortByDistance_POIs(t *testing.T) {
	pois := []route.PointOfInterest{
		{PlaceID: "c", DistanceFromOriginM: 500},
		{PlaceID: "a", DistanceFromOriginM: 100},
		{PlaceID: "b", DistanceFromOriginM: 300},
	}

	sortByDistance(pois, func(p route.PointOfInterest) float64 { return p.DistanceFromOriginM })

	if pois[0].PlaceID != "a" || pois[1].PlaceID != "b" || pois[2].PlaceID != "c" {
		t.Errorf("unexpected sort order: %v", pois)
	}
}

func TestSortByDistance_Empty(t *testing.T) {
	var pois []route.PointOfInterest
	sortByDistance(pois, func(p route.PointOfInterest) float64 { return p.DistanceFromOriginM })
}

func TestSortByDistance_Single(t *testing.T) {
	pois := []route.PointOfInterest{{PlaceID: "a", DistanceFromOriginM: 200}}
	sortByDistance(pois, func(p route.PointOfInterest) float64 { return p.DistanceFromOriginM })
	if pois[0].PlaceID != "a" {
		t.Errorf("single element sort failed")
	}
}
