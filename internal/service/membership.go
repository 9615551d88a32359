package service

import (
	"geofence-attendance-backend/internal/geo"
	"geofence-attendance-backend/internal/model"
)

// Membership is the result of resolving a point against a company's active
// geofences. Member is the single winning geofence (nil when the point is
// outside everything); WithinIDs lists every geofence containing the point,
// in the stable input order.
type Membership struct {
	Member    *model.Geofence
	WithinIDs []uint
}

// ResolveMembership evaluates containment per shape. When the point is inside
// several overlapping geofences the earliest one in the provided order wins
// (the repository returns them oldest first, so the tie-break is
// deterministic: main office beats a later-created sub-zone).
//
// A geofence with a malformed polygon is skipped for this evaluation rather
// than aborting the whole resolution; the caller keeps working with the
// remaining geofences.
func ResolveMembership(point geo.Point, fences []model.Geofence) Membership {
	result := Membership{}
	for i := range fences {
		fence := &fences[i]
		if !fence.IsActive {
			continue
		}
		if !containsPoint(point, fence) {
			continue
		}
		result.WithinIDs = append(result.WithinIDs, fence.ID)
		if result.Member == nil {
			result.Member = fence
		}
	}
	return result
}

func containsPoint(point geo.Point, fence *model.Geofence) bool {
	switch fence.Type {
	case model.GeofenceTypePolygon:
		pairs, err := fence.PolygonRing()
		if err != nil {
			return false // undecodable ring, skip this geofence
		}
		inside, err := geo.PointInPolygon(point, geo.RingFromPairs(pairs))
		if err != nil {
			return false // malformed ring (<3 points), skip this geofence
		}
		return inside
	default:
		center := geo.Point{Latitude: fence.Latitude, Longitude: fence.Longitude}
		return geo.PointInCircle(point, center, fence.RadiusMeter)
	}
}
