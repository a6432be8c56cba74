package geo

import (
	"math"
	"testing"
)

func TestHaversine(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		wantKm                 float64
		tolerance              float64
	}{
		{name: "same point", lat1: 34.68, lon1: -1.90, lat2: 34.68, lon2: -1.90, wantKm: 0, tolerance: 0.001},
		{name: "one degree of latitude", lat1: 34.68, lon1: -1.90, lat2: 35.68, lon2: -1.90, wantKm: 111.2, tolerance: 1},
		{name: "0.82 degrees north", lat1: 34.68, lon1: -1.90, lat2: 35.50, lon2: -1.90, wantKm: 91.2, tolerance: 1},
		{name: "across the antimeridian", lat1: 0, lon1: 179.5, lat2: 0, lon2: -179.5, wantKm: 111.2, tolerance: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Haversine(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("Haversine() = %f km, want %f ± %f", got, tt.wantKm, tt.tolerance)
			}
		})
	}
}

func TestBoundingBoxContainsCircle(t *testing.T) {
	// The box is an over-approximation: every point within radius must
	// fall inside it, so the pre-filter can never drop a true positive.
	lats := []float64{0, 34.68, 60, -45}
	radii := []float64{1, 5, 100}

	for _, lat := range lats {
		for _, radius := range radii {
			deltaLat, deltaLon := BoundingBox(lat, radius)

			// Walk the circle of exactly radius km around the center
			for deg := 0; deg < 360; deg += 15 {
				theta := float64(deg) * math.Pi / 180
				latOffset := (radius / 111.32) * math.Cos(theta)
				lonOffset := (radius / (111.32 * math.Cos(lat*math.Pi/180))) * math.Sin(theta)
				if math.Abs(latOffset) > deltaLat*1.0001 {
					t.Errorf("lat=%f r=%f: circle latitude offset %f outside box delta %f", lat, radius, latOffset, deltaLat)
				}
				if math.Abs(lonOffset) > deltaLon*1.0001 {
					t.Errorf("lat=%f r=%f: circle longitude offset %f outside box delta %f", lat, radius, lonOffset, deltaLon)
				}
			}
		}
	}
}

func TestBoundingBoxAtPoles(t *testing.T) {
	for _, lat := range []float64{90, -90} {
		deltaLat, deltaLon := BoundingBox(lat, 10)
		if math.IsNaN(deltaLon) || math.IsInf(deltaLon, 0) {
			t.Fatalf("lat=%f: longitude delta is %f", lat, deltaLon)
		}
		if deltaLon != 180 {
			t.Errorf("lat=%f: expected full longitude window at the pole, got %f", lat, deltaLon)
		}
		if deltaLat <= 0 {
			t.Errorf("lat=%f: latitude delta %f", lat, deltaLat)
		}
	}
}

func TestBoundingBoxLongitudeGrowsTowardPoles(t *testing.T) {
	_, atEquator := BoundingBox(0, 50)
	_, atSixty := BoundingBox(60, 50)
	if atSixty <= atEquator {
		t.Errorf("Expected wider longitude window at 60° (%f) than at the equator (%f)", atSixty, atEquator)
	}
}
