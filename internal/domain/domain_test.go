package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoLegs() Route {
	return Route{
		{FlightNo: 0, StartCity: 0, EndCity: 1, DepartureTime: 100, ArrivalTime: 150, Fare: 20},
		{FlightNo: 1, StartCity: 1, EndCity: 2, DepartureTime: 180, ArrivalTime: 230, Fare: 30.5},
	}
}

func TestFlight_Connects(t *testing.T) {
	a := Flight{EndCity: 1, ArrivalTime: 100}

	assert.True(t, a.Connects(Flight{StartCity: 1, DepartureTime: 120}))
	assert.False(t, a.Connects(Flight{StartCity: 1, DepartureTime: 119}))
	assert.False(t, a.Connects(Flight{StartCity: 2, DepartureTime: 500}))
}

func TestRoute_Summary(t *testing.T) {
	r := twoLegs()
	assert.Equal(t, 2, r.Hops())
	assert.Equal(t, 50.5, r.TotalFare())
	assert.Equal(t, 230, r.Arrival())
	assert.Equal(t, []int{0, 1}, r.FlightNumbers())
	assert.True(t, r.Valid())

	var empty Route
	assert.Equal(t, 0, empty.Hops())
	assert.Equal(t, -1, empty.Arrival())
	assert.True(t, empty.Valid())
}

func TestRoute_ValidRejectsTightConnection(t *testing.T) {
	r := twoLegs()
	r[1].DepartureTime = 160
	assert.False(t, r.Valid())
}

func TestParseCriterion(t *testing.T) {
	for _, s := range []string{"fewest_hops", "cheapest", "fewest_hops_cheapest"} {
		c, err := ParseCriterion(s)
		require.NoError(t, err)
		assert.Equal(t, Criterion(s), c)
	}

	_, err := ParseCriterion("")
	assert.ErrorIs(t, err, ErrUnknownCriterion)
}

func TestNewRouteResult(t *testing.T) {
	q := RouteQuery{Criterion: CriterionCheapest, StartCity: 0, EndCity: 2, T1: 0, T2: 400}
	res := NewRouteResult("id", q, twoLegs(), 9)
	assert.True(t, res.Found)
	assert.Equal(t, 2, res.Hops)
	assert.Equal(t, 50.5, res.TotalFare)
	assert.Equal(t, uint64(9), res.Snapshot)

	missing := NewRouteResult("id", q, nil, 9)
	assert.False(t, missing.Found)
	assert.NotNil(t, missing.Flights)
	assert.Equal(t, -1, missing.Arrival)

	same := NewRouteResult("id", RouteQuery{StartCity: 3, EndCity: 3, T1: 5, T2: 5}, Route{}, 9)
	assert.True(t, same.Found)

	inverted := NewRouteResult("id", RouteQuery{StartCity: 3, EndCity: 3, T1: 6, T2: 5}, Route{}, 9)
	assert.False(t, inverted.Found)
}
