package postgres

import (
	"math"
	"sort"

	"leyenda/internal/domain/repository"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// geoRecord is anything with a coordinate that can be ranked by distance.
type geoRecord interface {
	point() orb.Point
}

// boundingBox returns the lat/lon deltas covering radiusKm around a latitude.
// The box is a coarse SQL pre-filter; the precise Haversine distance is
// computed in Go on the survivors.
func boundingBox(lat, radiusKm float64) (latDelta, lonDelta float64) {
	const kmPerDegreeLat = 110.574

	latDelta = radiusKm / kmPerDegreeLat

	// Longitude degrees shrink with latitude. Clamp cos near the poles to
	// keep the box finite.
	cosLat := math.Cos(lat * math.Pi / 180)
	if cosLat < 0.01 {
		cosLat = 0.01
	}
	lonDelta = radiusKm / (111.320 * cosLat)

	return latDelta, lonDelta
}

// rankByDistance filters records to those within radiusKm of center, orders
// them nearest first and applies pagination.
func rankByDistance[T geoRecord](records []T, centerLat, centerLon, radiusKm float64, page repository.Page) []T {
	center := orb.Point{centerLon, centerLat}

	type ranked struct {
		record   T
		distance float64
	}

	within := make([]ranked, 0, len(records))
	for _, rec := range records {
		distanceKm := geo.Distance(center, rec.point()) / 1000
		if distanceKm <= radiusKm {
			within = append(within, ranked{record: rec, distance: distanceKm})
		}
	}

	sort.Slice(within, func(i, j int) bool {
		return within[i].distance < within[j].distance
	})

	if page.Offset >= len(within) {
		return nil
	}
	end := page.Offset + page.Limit
	if end > len(within) {
		end = len(within)
	}

	out := make([]T, 0, end-page.Offset)
	for _, r := range within[page.Offset:end] {
		out = append(out, r.record)
	}

	return out
}
