// Package planner searches a fixed flight schedule for routes under a
// first-leg time window and the minimum connection rule.
//
// A Planner is built once from the full flight list and is read-only after
// that. Every search allocates its own scratch state, so concurrent searches
// on one Planner need no locking.
package planner

import (
	"errors"
	"fmt"
	"math"

	"github.com/Domenick1991/airroute/internal/domain"
)

var (
	// ErrInvalidFlightIndex is returned by New for flights whose ids, times
	// or fare break the dense-index model.
	ErrInvalidFlightIndex = errors.New("planner: invalid flight index")

	// ErrCityOutOfRange is returned by searches given a city outside [0, n].
	ErrCityOutOfRange = errors.New("planner: city out of range")
)

// unknown marks a hop count or time not reached yet.
const unknown = math.MaxInt

type Planner struct {
	flights     []domain.Flight // indexed by FlightNo
	index       *FlightIndex
	fingerprint uint64
}

// New validates flights and builds the departure and arrival indices.
func New(flights []domain.Flight) (*Planner, error) {
	n := len(flights)
	byNo := make([]domain.Flight, n)
	seen := make([]bool, n)
	for i, f := range flights {
		if err := validate(f, n); err != nil {
			return nil, fmt.Errorf("%w: flight at position %d: %v", ErrInvalidFlightIndex, i, err)
		}
		if seen[f.FlightNo] {
			return nil, fmt.Errorf("%w: duplicate flight_no %d", ErrInvalidFlightIndex, f.FlightNo)
		}
		seen[f.FlightNo] = true
		byNo[f.FlightNo] = f
	}

	return &Planner{
		flights:     byNo,
		index:       newFlightIndex(n+1, flights),
		fingerprint: Fingerprint(flights),
	}, nil
}

func validate(f domain.Flight, n int) error {
	switch {
	case f.FlightNo < 0 || f.FlightNo >= n:
		return fmt.Errorf("flight_no %d not in [0, %d)", f.FlightNo, n)
	case f.StartCity < 0 || f.StartCity > n:
		return fmt.Errorf("start_city %d not in [0, %d]", f.StartCity, n)
	case f.EndCity < 0 || f.EndCity > n:
		return fmt.Errorf("end_city %d not in [0, %d]", f.EndCity, n)
	case f.DepartureTime < 0 || f.ArrivalTime < 0:
		return errors.New("negative time")
	case f.ArrivalTime < f.DepartureTime:
		return fmt.Errorf("arrival %d before departure %d", f.ArrivalTime, f.DepartureTime)
	case math.IsNaN(f.Fare) || math.IsInf(f.Fare, 0) || f.Fare < 0:
		return fmt.Errorf("fare %v is not a non-negative number", f.Fare)
	}
	return nil
}

func (p *Planner) Index() *FlightIndex { return p.index }

// Flights returns the schedule ordered by flight number.
func (p *Planner) Flights() []domain.Flight { return p.flights }

// Fingerprint identifies the schedule the planner was built from.
func (p *Planner) Fingerprint() uint64 { return p.fingerprint }

// Search dispatches q to the search matching its criterion.
func (p *Planner) Search(q domain.RouteQuery) (domain.Route, error) {
	switch q.Criterion {
	case domain.CriterionFewestHops:
		return p.FewestHopsEarliestArrival(q.StartCity, q.EndCity, q.T1, q.T2)
	case domain.CriterionCheapest:
		return p.CheapestFare(q.StartCity, q.EndCity, q.T1, q.T2)
	case domain.CriterionFewestHopsCheapest:
		return p.FewestHopsCheapestFare(q.StartCity, q.EndCity, q.T1, q.T2)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCriterion, q.Criterion)
	}
}

// CheckCity reports ErrCityOutOfRange for ids the index has no slot for.
func (p *Planner) CheckCity(city int) error {
	if city < 0 || city >= p.index.Cities() {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrCityOutOfRange, city, p.index.Cities()-1)
	}
	return nil
}

func (p *Planner) checkCities(start, end int) error {
	if err := p.CheckCity(start); err != nil {
		return err
	}
	return p.CheckCity(end)
}

// inWindow is the first-leg rule: depart no earlier than t1, land no later than t2.
func inWindow(f domain.Flight, t1, t2 int) bool {
	return f.DepartureTime >= t1 && f.ArrivalTime <= t2
}

func extend(route domain.Route, f domain.Flight) domain.Route {
	next := make(domain.Route, len(route)+1)
	copy(next, route)
	next[len(route)] = f
	return next
}

func filled[T any](n int, v T) []T {
	s := make([]T, n)
	for i := range s {
		s[i] = v
	}
	return s
}
