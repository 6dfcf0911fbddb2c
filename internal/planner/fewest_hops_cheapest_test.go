package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFewestHopsCheapestFare_HopsBeforeFare(t *testing.T) {
	p := mustPlanner(t, threeCities()...)

	route, err := p.FewestHopsCheapestFare(0, 2, 0, 400)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, route.FlightNumbers())
}

func TestFewestHopsCheapestFare_TieBrokenByFare(t *testing.T) {
	p := mustPlanner(t,
		flight(0, 0, 1, 0, 50, 10),
		flight(1, 0, 2, 0, 60, 50),
		flight(2, 1, 3, 100, 400, 100),
		flight(3, 2, 3, 100, 350, 30),
	)

	route, err := p.FewestHopsCheapestFare(0, 3, 0, 1000)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, route.FlightNumbers())
	assert.Equal(t, 80.0, route.TotalFare())
}

func TestFewestHopsCheapestFare_CheaperDirectAmongOneHop(t *testing.T) {
	p := mustPlanner(t,
		flight(0, 0, 1, 0, 50, 70),
		flight(1, 0, 1, 10, 90, 40),
		flight(2, 0, 1, 20, 80, 55),
	)

	route, err := p.FewestHopsCheapestFare(0, 1, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, route.FlightNumbers())
}

func TestFewestHopsCheapestFare_LaterLegsMustLandByT2(t *testing.T) {
	p := mustPlanner(t,
		flight(0, 0, 1, 100, 150, 10),
		flight(1, 1, 2, 200, 500, 10),
	)

	route, err := p.FewestHopsCheapestFare(0, 2, 0, 300)
	require.NoError(t, err)
	assert.Empty(t, route)

	route, err = p.FewestHopsCheapestFare(0, 2, 0, 500)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, route.FlightNumbers())
}

func TestFewestHopsCheapestFare_SeedsQueuedWithoutImproving(t *testing.T) {
	// Two one-hop ways into city 1. The cheaper one owns the record but lands
	// too late to connect. Seeds are queued whether or not they improve the
	// record, so the pricier one is still expanded.
	p := mustPlanner(t,
		flight(0, 0, 1, 0, 300, 10),
		flight(1, 0, 1, 0, 100, 20),
		flight(2, 1, 2, 150, 200, 5),
	)

	route, err := p.FewestHopsCheapestFare(0, 2, 0, 1000)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, route.FlightNumbers())
}

func TestFewestHopsCheapestFare_TrivialAndMissing(t *testing.T) {
	p := mustPlanner(t, threeCities()...)

	route, err := p.FewestHopsCheapestFare(2, 2, 0, 400)
	require.NoError(t, err)
	assert.Empty(t, route)

	route, err = p.FewestHopsCheapestFare(2, 0, 0, 400)
	require.NoError(t, err)
	assert.Empty(t, route)
}

func TestFewestHopsCheapestFare_PushTimeRecordPrunesExtensions(t *testing.T) {
	// City 2 is first reached for 15 through a late arrival, which records
	// (2, 15). The pricier two-hop arrival at city 2 does not improve on that
	// and is never queued, so the only onward connection is lost.
	p := mustPlanner(t,
		flight(0, 0, 1, 0, 10, 5),
		flight(1, 1, 2, 40, 400, 10),
		flight(2, 1, 2, 40, 100, 30),
		flight(3, 2, 3, 150, 200, 5),
	)

	route, err := p.FewestHopsCheapestFare(0, 3, 0, 1000)
	require.NoError(t, err)
	assert.Empty(t, route)

	// CheapestFare settles lazily and hits the same wall: city 2 settles at 15.
	route, err = p.CheapestFare(0, 3, 0, 1000)
	require.NoError(t, err)
	assert.Empty(t, route)
}
