package planner

import "github.com/Domenick1991/airroute/internal/domain"

// fareEntry orders by (fare, arrival, city, route).
type fareEntry struct {
	fare    float64
	arrival int
	city    int
	route   domain.Route
}

func fareEntryLess(a, b fareEntry) bool {
	if a.fare != b.fare {
		return a.fare < b.fare
	}
	if a.arrival != b.arrival {
		return a.arrival < b.arrival
	}
	if a.city != b.city {
		return a.city < b.city
	}
	return routeLess(a.route, b.route)
}

// hopEntry orders by (hops, fare, city, arrival, route).
type hopEntry struct {
	hops    int
	fare    float64
	city    int
	arrival int
	route   domain.Route
}

func hopEntryLess(a, b hopEntry) bool {
	if a.hops != b.hops {
		return a.hops < b.hops
	}
	if a.fare != b.fare {
		return a.fare < b.fare
	}
	if a.city != b.city {
		return a.city < b.city
	}
	if a.arrival != b.arrival {
		return a.arrival < b.arrival
	}
	return routeLess(a.route, b.route)
}

// routeLess compares routes by flight number, leg by leg, shorter first on a
// common prefix.
func routeLess(a, b domain.Route) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].FlightNo != b[i].FlightNo {
			return a[i].FlightNo < b[i].FlightNo
		}
	}
	return len(a) < len(b)
}

// hopFare is the best known (hops, fare) pair for a city.
type hopFare struct {
	hops int
	fare float64
}

func (h hopFare) better(than hopFare) bool {
	return h.hops < than.hops || (h.hops == than.hops && h.fare < than.fare)
}
