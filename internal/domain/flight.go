package domain

// MinConnection is the minimum number of minutes between an arrival and the
// next departure from the same city.
const MinConnection = 20

// Flight is one scheduled leg. FlightNo and both city ids are dense zero-based
// indices; times are minutes on a shared clock.
type Flight struct {
	FlightNo      int     `json:"flight_no"`
	StartCity     int     `json:"start_city"`
	EndCity       int     `json:"end_city"`
	DepartureTime int     `json:"departure_time"`
	ArrivalTime   int     `json:"arrival_time"`
	Fare          float64 `json:"fare"`
}

// Connects reports whether next can be boarded after f lands.
func (f Flight) Connects(next Flight) bool {
	return f.EndCity == next.StartCity && next.DepartureTime >= f.ArrivalTime+MinConnection
}

// Route is an ordered sequence of connecting flights. An empty route means
// either that no route exists or that the trip needs no flight at all.
type Route []Flight

func (r Route) Hops() int {
	return len(r)
}

func (r Route) TotalFare() float64 {
	var total float64
	for _, f := range r {
		total += f.Fare
	}
	return total
}

// Arrival returns the arrival time of the last leg, or -1 for an empty route.
func (r Route) Arrival() int {
	if len(r) == 0 {
		return -1
	}
	return r[len(r)-1].ArrivalTime
}

// Valid reports whether every consecutive pair of legs connects.
func (r Route) Valid() bool {
	for i := 1; i < len(r); i++ {
		if !r[i-1].Connects(r[i]) {
			return false
		}
	}
	return true
}

// FlightNumbers lists the flight numbers of the route in order.
func (r Route) FlightNumbers() []int {
	nums := make([]int, 0, len(r))
	for _, f := range r {
		nums = append(nums, f.FlightNo)
	}
	return nums
}
