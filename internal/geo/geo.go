package geo

import (
	"errors"
	"math"
)

// ErrMalformedRing is returned for polygon rings with fewer than 3 vertices.
// A malformed ring is a configuration error and must never be silently
// treated as "not inside".
var ErrMalformedRing = errors.New("polygon ring requires at least 3 points")

const earthRadiusMeter = 6371000

// Point is a WGS84 coordinate pair.
type Point struct {
	Latitude  float64
	Longitude float64
}

// ValidCoordinates reports whether lat/lon are inside the valid WGS84 range.
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// DistanceMeters computes the great-circle distance between two points using
// the haversine formula (meter accuracy at office-geofence scales).
func DistanceMeters(a, b Point) float64 {
	dLat := (b.Latitude - a.Latitude) * (math.Pi / 180.0)
	dLon := (b.Longitude - a.Longitude) * (math.Pi / 180.0)

	lat1Rad := a.Latitude * (math.Pi / 180.0)
	lat2Rad := b.Latitude * (math.Pi / 180.0)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeter * c
}

// PointInCircle reports whether p lies within radiusMeter of center.
// The boundary itself counts as inside.
func PointInCircle(p, center Point, radiusMeter float64) bool {
	return DistanceMeters(p, center) <= radiusMeter
}

// PointInPolygon runs a ray-casting test against the ring (implicitly
// closed). A point lying on a ring edge counts as inside, so the circle and
// polygon tests agree about their boundaries.
func PointInPolygon(p Point, ring []Point) (bool, error) {
	if len(ring) < 3 {
		return false, ErrMalformedRing
	}

	// Edge check first: ray casting is unreliable exactly on a segment.
	for i := 0; i < len(ring); i++ {
		j := (i + 1) % len(ring)
		if onSegment(p, ring[i], ring[j]) {
			return true, nil
		}
	}

	inside := false
	for i, j := 0, len(ring)-1; i < len(ring); j, i = i, i+1 {
		vi, vj := ring[i], ring[j]
		crosses := (vi.Latitude > p.Latitude) != (vj.Latitude > p.Latitude)
		if !crosses {
			continue
		}
		x := (vj.Longitude-vi.Longitude)*(p.Latitude-vi.Latitude)/(vj.Latitude-vi.Latitude) + vi.Longitude
		if p.Longitude < x {
			inside = !inside
		}
	}
	return inside, nil
}

// onSegment reports whether p lies on the segment a-b, within a small
// tolerance (planar approximation is fine at the scales geofences use).
func onSegment(p, a, b Point) bool {
	const eps = 1e-9

	cross := (b.Latitude-a.Latitude)*(p.Longitude-a.Longitude) -
		(b.Longitude-a.Longitude)*(p.Latitude-a.Latitude)
	if math.Abs(cross) > eps {
		return false
	}

	dot := (p.Latitude-a.Latitude)*(b.Latitude-a.Latitude) +
		(p.Longitude-a.Longitude)*(b.Longitude-a.Longitude)
	if dot < -eps {
		return false
	}

	lenSq := (b.Latitude-a.Latitude)*(b.Latitude-a.Latitude) +
		(b.Longitude-a.Longitude)*(b.Longitude-a.Longitude)
	return dot <= lenSq+eps
}

// RingFromPairs converts [lat, lon] pairs (the storage format) into points.
func RingFromPairs(pairs [][2]float64) []Point {
	ring := make([]Point, 0, len(pairs))
	for _, p := range pairs {
		ring = append(ring, Point{Latitude: p[0], Longitude: p[1]})
	}
	return ring
}
