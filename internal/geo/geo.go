// Package geo holds the distance math behind proximity search: a cheap
// bounding-box pre-filter sized from degree lengths, corrected by the
// exact Haversine great-circle distance.
package geo

import "math"

const (
	// EarthRadiusKm is the mean Earth radius used by the Haversine formula.
	EarthRadiusKm = 6371.0

	// One degree of latitude is close to 111 km everywhere; one degree of
	// longitude is 111.320 km at the equator and shrinks with cos(latitude).
	kmPerDegreeLat = 111.0
	kmPerDegreeLon = 111.320

	// Below this cos(latitude) the longitude degree length is effectively
	// zero (the poles) and a longitude window stops being meaningful.
	minCosLat = 1e-9
)

// BoundingBox returns the half-widths, in degrees, of a box centered at
// latitude lat that fully contains a circle of radiusKm. At the poles
// cos(lat) vanishes, so the longitude window widens to the full ±180°
// rather than dividing by zero; the Haversine post-filter still discards
// everything outside the true circle.
func BoundingBox(lat, radiusKm float64) (deltaLat, deltaLon float64) {
	deltaLat = radiusKm / kmPerDegreeLat

	cosLat := math.Cos(lat * math.Pi / 180)
	if cosLat < minCosLat {
		return deltaLat, 180
	}
	deltaLon = radiusKm / (kmPerDegreeLon * cosLat)
	if deltaLon > 180 {
		deltaLon = 180
	}
	return deltaLat, deltaLon
}

// Haversine returns the great-circle distance in kilometers between two
// points given in degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}
