package planner

import (
	"slices"

	"github.com/Domenick1991/airroute/internal/container"
	"github.com/Domenick1991/airroute/internal/domain"
)

// FewestHopsEarliestArrival returns a route with the fewest legs, ties broken
// by the earliest arrival at endCity.
//
// The search is breadth-first over flights rather than cities. A flight is
// marked visited when it is queued, so its connection is checked only
// against the first flight that reached it. Only the first leg is held to
// [t1, t2]; later legs only have to make their connection.
func (p *Planner) FewestHopsEarliestArrival(startCity, endCity, t1, t2 int) (domain.Route, error) {
	if err := p.checkCities(startCity, endCity); err != nil {
		return nil, err
	}

	cities := p.index.Cities()
	hops := filled(cities, unknown)
	arrival := filled(cities, unknown)
	prev := filled(cities, -1)
	visited := make([]bool, len(p.flights))
	hops[startCity] = 0

	seeds := p.index.Departures(startCity)
	q := container.NewQueue(len(seeds))
	for _, f := range seeds {
		visited[f.FlightNo] = true
		if inWindow(f, t1, t2) {
			q.Push(f.FlightNo)
		}
	}

	for !q.IsEmpty() {
		no, err := q.Pop()
		if err != nil {
			return nil, err
		}
		f := p.flights[no]

		candidate := hops[f.StartCity] + 1
		if candidate < hops[f.EndCity] || (candidate == hops[f.EndCity] && f.ArrivalTime < arrival[f.EndCity]) {
			hops[f.EndCity] = candidate
			arrival[f.EndCity] = f.ArrivalTime
			prev[f.EndCity] = no
		}

		for _, next := range p.index.Departures(f.EndCity) {
			if !visited[next.FlightNo] && next.DepartureTime >= f.ArrivalTime+domain.MinConnection {
				visited[next.FlightNo] = true
				q.Push(next.FlightNo)
			}
		}
	}

	route := domain.Route{}
	if hops[endCity] == unknown {
		return route, nil
	}
	for city := endCity; city != startCity; {
		f := p.flights[prev[city]]
		route = append(route, f)
		city = f.StartCity
	}
	slices.Reverse(route)
	return route, nil
}
