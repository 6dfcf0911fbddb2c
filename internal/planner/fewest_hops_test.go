package planner

import (
	"testing"

	"github.com/Domenick1991/airroute/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFewestHopsEarliestArrival_DirectBeatsCheaperConnection(t *testing.T) {
	p := mustPlanner(t, threeCities()...)

	route, err := p.FewestHopsEarliestArrival(0, 2, 0, 400)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, route.FlightNumbers())
}

func TestFewestHopsEarliestArrival_TieBrokenByArrival(t *testing.T) {
	p := mustPlanner(t,
		flight(0, 0, 1, 0, 50, 10),
		flight(1, 0, 2, 0, 60, 50),
		flight(2, 1, 3, 100, 400, 100),
		flight(3, 2, 3, 100, 350, 30),
	)

	route, err := p.FewestHopsEarliestArrival(0, 3, 0, 1000)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, route.FlightNumbers())
	assert.Equal(t, 350, route.Arrival())
}

func TestFewestHopsEarliestArrival_MinimumConnection(t *testing.T) {
	tooTight := mustPlanner(t,
		flight(0, 0, 1, 100, 150, 10),
		flight(1, 1, 2, 169, 200, 10),
	)
	route, err := tooTight.FewestHopsEarliestArrival(0, 2, 0, 1000)
	require.NoError(t, err)
	assert.Empty(t, route)

	exact := mustPlanner(t,
		flight(0, 0, 1, 100, 150, 10),
		flight(1, 1, 2, 170, 200, 10),
	)
	route, err = exact.FewestHopsEarliestArrival(0, 2, 0, 1000)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, route.FlightNumbers())
}

func TestFewestHopsEarliestArrival_OnlyFirstLegHeldToWindow(t *testing.T) {
	p := mustPlanner(t,
		flight(0, 0, 1, 100, 150, 10),
		flight(1, 1, 2, 200, 500, 10),
	)

	route, err := p.FewestHopsEarliestArrival(0, 2, 0, 300)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, route.FlightNumbers())

	route, err = p.FewestHopsEarliestArrival(0, 2, 120, 300)
	require.NoError(t, err)
	assert.Empty(t, route, "first leg departs before t1")

	route, err = p.FewestHopsEarliestArrival(0, 2, 0, 140)
	require.NoError(t, err)
	assert.Empty(t, route, "first leg lands after t2")
}

func TestFewestHopsEarliestArrival_LaterConnectionFromSecondArrival(t *testing.T) {
	// The first flight into city 1 lands too late for flight 2; the second
	// one still picks it up.
	p := mustPlanner(t,
		flight(0, 0, 1, 0, 300, 10),
		flight(1, 0, 1, 0, 100, 10),
		flight(2, 1, 2, 200, 250, 10),
	)

	route, err := p.FewestHopsEarliestArrival(0, 2, 0, 1000)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, route.FlightNumbers())
}

func TestFewestHopsEarliestArrival_EmptyCases(t *testing.T) {
	p := mustPlanner(t, threeCities()...)

	route, err := p.FewestHopsEarliestArrival(0, 0, 0, 400)
	require.NoError(t, err)
	assert.Empty(t, route)

	route, err = p.FewestHopsEarliestArrival(2, 0, 0, 400)
	require.NoError(t, err)
	assert.Empty(t, route)

	route, err = p.FewestHopsEarliestArrival(0, 3, 0, 400)
	require.NoError(t, err)
	assert.Equal(t, domain.Route{}, route)
}
