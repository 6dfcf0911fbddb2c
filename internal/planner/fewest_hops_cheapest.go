package planner

import (
	"math"

	"github.com/Domenick1991/airroute/internal/container"
	"github.com/Domenick1991/airroute/internal/domain"
)

// FewestHopsCheapestFare returns a route with the fewest legs, ties broken by
// the lowest total fare.
//
// Unlike CheapestFare, a city's best (hops, fare) is recorded when an entry is
// pushed, and an extension is pushed only if it improves that record. Later
// legs must land by t2 but are not checked against t1.
func (p *Planner) FewestHopsCheapestFare(startCity, endCity, t1, t2 int) (domain.Route, error) {
	if err := p.checkCities(startCity, endCity); err != nil {
		return nil, err
	}
	if startCity == endCity && t1 <= t2 {
		return domain.Route{}, nil
	}

	best := filled(p.index.Cities(), hopFare{hops: unknown, fare: math.Inf(1)})
	best[startCity] = hopFare{}

	pq := container.NewMinHeap(hopEntryLess)
	for _, f := range p.index.Departures(startCity) {
		if !inWindow(f, t1, t2) {
			continue
		}
		pq.Push(hopEntry{hops: 1, fare: f.Fare, city: f.EndCity, arrival: f.ArrivalTime, route: domain.Route{f}})
		if candidate := (hopFare{hops: 1, fare: f.Fare}); candidate.better(best[f.EndCity]) {
			best[f.EndCity] = candidate
		}
	}

	for !pq.IsEmpty() {
		e, err := pq.Pop()
		if err != nil {
			return nil, err
		}
		if e.city == endCity {
			return e.route, nil
		}

		for _, next := range p.index.Departures(e.city) {
			if next.DepartureTime < e.arrival+domain.MinConnection || next.ArrivalTime > t2 {
				continue
			}
			candidate := hopFare{hops: e.hops + 1, fare: e.fare + next.Fare}
			if !candidate.better(best[next.EndCity]) {
				continue
			}
			best[next.EndCity] = candidate
			pq.Push(hopEntry{
				hops:    candidate.hops,
				fare:    candidate.fare,
				city:    next.EndCity,
				arrival: next.ArrivalTime,
				route:   extend(e.route, next),
			})
		}
	}
	return domain.Route{}, nil
}
