package postgres

import (
	"testing"

	"leyenda/internal/domain/repository"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

type testPoint struct {
	name string
	lat  float64
	lon  float64
}

func (p testPoint) point() orb.Point {
	return orb.Point{p.lon, p.lat}
}

func TestRankByDistance_FiltersAndOrders(t *testing.T) {
	// One degree of latitude is roughly 111 km.
	records := []testPoint{
		{name: "far", lat: 2.0, lon: 0},
		{name: "near", lat: 0.1, lon: 0},
		{name: "mid", lat: 0.5, lon: 0},
	}

	got := rankByDistance(records, 0, 0, 100, repository.Page{Offset: 0, Limit: 10})

	assert.Len(t, got, 2)
	assert.Equal(t, "near", got[0].name)
	assert.Equal(t, "mid", got[1].name)
}

func TestRankByDistance_Pagination(t *testing.T) {
	records := []testPoint{
		{name: "a", lat: 0.1, lon: 0},
		{name: "b", lat: 0.2, lon: 0},
		{name: "c", lat: 0.3, lon: 0},
	}

	got := rankByDistance(records, 0, 0, 100, repository.Page{Offset: 1, Limit: 1})
	assert.Len(t, got, 1)
	assert.Equal(t, "b", got[0].name)

	got = rankByDistance(records, 0, 0, 100, repository.Page{Offset: 5, Limit: 1})
	assert.Empty(t, got)
}

func TestRankByDistance_ExcludesOutsideRadius(t *testing.T) {
	records := []testPoint{
		{name: "outside", lat: 1.0, lon: 0},
	}

	got := rankByDistance(records, 0, 0, 50, repository.Page{Offset: 0, Limit: 10})
	assert.Empty(t, got)
}

func TestBoundingBox_WidensWithLatitude(t *testing.T) {
	_, lonAtEquator := boundingBox(0, 10)
	_, lonAtSixty := boundingBox(60, 10)

	// The same radius spans more longitude degrees away from the equator.
	assert.Greater(t, lonAtSixty, lonAtEquator)

	latDelta, _ := boundingBox(0, 10)
	assert.InDelta(t, 10.0/110.574, latDelta, 1e-9)
}

func TestBoundingBox_FiniteNearPoles(t *testing.T) {
	_, lonDelta := boundingBox(89.9, 10)

	assert.False(t, lonDelta > 1000, "longitude delta should stay bounded near the poles")
}
