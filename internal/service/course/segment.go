package course

import (
	"errors"
	"math"

	"github.com/maximeg-tri/Pacing-tri/internal/domain"
)

// EarthRadius is the spherical earth radius used for great-circle distances.
const EarthRadius = 6371000.0 // meters

var ErrNoPoints = errors.New("route contains no track points")

// Haversine returns the great-circle distance in meters between two
// coordinates, on a sphere of radius EarthRadius.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLatRad := (lat2 - lat1) * math.Pi / 180
	deltaLonRad := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLatRad/2)*math.Sin(deltaLatRad/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLonRad/2)*math.Sin(deltaLonRad/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadius * c
}

// Segments converts an ordered track into consecutive distance/grade
// segments: n points yield n-1 segments, in track order. Raw samples are
// used as-is; noisy elevation shows up directly in the grades.
func Segments(points []domain.TrackPoint) ([]domain.Segment, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	segments := make([]domain.Segment, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]
		dist := Haversine(prev.Latitude, prev.Longitude, cur.Latitude, cur.Longitude)

		// Duplicate points produce a zero-length segment; grade stays 0
		// so nothing downstream divides by zero.
		grade := 0.0
		if dist > 0 {
			grade = (cur.Elevation - prev.Elevation) / dist
		}

		segments = append(segments, domain.Segment{Distance: dist, Grade: grade})
	}
	return segments, nil
}

// ElevationGain sums the positive elevation deltas of a track, in meters.
func ElevationGain(points []domain.TrackPoint) float64 {
	var gain float64
	for i := 1; i < len(points); i++ {
		if delta := points[i].Elevation - points[i-1].Elevation; delta > 0 {
			gain += delta
		}
	}
	return gain
}
