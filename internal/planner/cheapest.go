package planner

import (
	"math"

	"github.com/Domenick1991/airroute/internal/container"
	"github.com/Domenick1991/airroute/internal/domain"
)

// CheapestFare returns a route with the lowest total fare. Every leg, not
// only the first, has to fit [t1, t2].
//
// Entries are settled lazily: a popped entry whose city already holds an
// equal or lower fare is dropped.
func (p *Planner) CheapestFare(startCity, endCity, t1, t2 int) (domain.Route, error) {
	if err := p.checkCities(startCity, endCity); err != nil {
		return nil, err
	}
	if startCity == endCity && t1 <= t2 {
		return domain.Route{}, nil
	}

	pq := container.NewMinHeap(fareEntryLess)
	for _, f := range p.index.Departures(startCity) {
		if inWindow(f, t1, t2) {
			pq.Push(fareEntry{fare: f.Fare, arrival: f.ArrivalTime, city: f.EndCity, route: domain.Route{f}})
		}
	}

	settled := filled(p.index.Cities(), math.Inf(1))
	for !pq.IsEmpty() {
		e, err := pq.Pop()
		if err != nil {
			return nil, err
		}
		if e.arrival > t2 {
			continue
		}
		if e.fare >= settled[e.city] {
			continue
		}
		settled[e.city] = e.fare
		if e.city == endCity {
			return e.route, nil
		}

		for _, next := range p.index.Departures(e.city) {
			if next.DepartureTime < e.arrival+domain.MinConnection || !inWindow(next, t1, t2) {
				continue
			}
			pq.Push(fareEntry{
				fare:    e.fare + next.Fare,
				arrival: next.ArrivalTime,
				city:    next.EndCity,
				route:   extend(e.route, next),
			})
		}
	}
	return domain.Route{}, nil
}
