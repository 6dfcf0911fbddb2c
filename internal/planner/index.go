package planner

import "github.com/Domenick1991/airroute/internal/domain"

// FlightIndex buckets flights by departure city and by arrival city. Buckets
// keep the order the flights were supplied in.
type FlightIndex struct {
	from [][]domain.Flight
	to   [][]domain.Flight
}

func newFlightIndex(cities int, flights []domain.Flight) *FlightIndex {
	idx := &FlightIndex{
		from: make([][]domain.Flight, cities),
		to:   make([][]domain.Flight, cities),
	}
	for _, f := range flights {
		idx.from[f.StartCity] = append(idx.from[f.StartCity], f)
		idx.to[f.EndCity] = append(idx.to[f.EndCity], f)
	}
	return idx
}

// Cities is the number of city slots, one more than the flight count.
func (idx *FlightIndex) Cities() int { return len(idx.from) }

// Departures returns the flights leaving city. The slice is shared and must
// not be modified.
func (idx *FlightIndex) Departures(city int) []domain.Flight {
	if city < 0 || city >= len(idx.from) {
		return nil
	}
	return idx.from[city]
}

// Arrivals returns the flights landing in city. The slice is shared and must
// not be modified.
func (idx *FlightIndex) Arrivals(city int) []domain.Flight {
	if city < 0 || city >= len(idx.to) {
		return nil
	}
	return idx.to[city]
}
