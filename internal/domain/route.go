package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnknownCriterion = errors.New("unknown route criterion")

type Criterion string

const (
	CriterionFewestHops         Criterion = "fewest_hops"
	CriterionCheapest           Criterion = "cheapest"
	CriterionFewestHopsCheapest Criterion = "fewest_hops_cheapest"
)

func ParseCriterion(s string) (Criterion, error) {
	switch c := Criterion(s); c {
	case CriterionFewestHops, CriterionCheapest, CriterionFewestHopsCheapest:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCriterion, s)
	}
}

// RouteQuery asks for a route from StartCity to EndCity whose first leg
// departs at or after T1 and arrives at or before T2.
type RouteQuery struct {
	Criterion Criterion `json:"criterion"`
	StartCity int       `json:"start_city"`
	EndCity   int       `json:"end_city"`
	T1        int       `json:"t1"`
	T2        int       `json:"t2"`
}

type RouteResult struct {
	QueryID    string     `json:"query_id"`
	Query      RouteQuery `json:"query"`
	Flights    Route      `json:"flights"`
	Hops       int        `json:"hops"`
	TotalFare  float64    `json:"total_fare"`
	Arrival    int        `json:"arrival"`
	Found      bool       `json:"found"`
	Snapshot   uint64     `json:"snapshot"`
	ComputedAt time.Time  `json:"computed_at"`
}

// NewRouteResult summarises route as the answer to q. A non-empty route, or a
// zero-flight trip from a city to itself, counts as found.
func NewRouteResult(queryID string, q RouteQuery, route Route, snapshot uint64) *RouteResult {
	if route == nil {
		route = Route{}
	}
	return &RouteResult{
		QueryID:    queryID,
		Query:      q,
		Flights:    route,
		Hops:       route.Hops(),
		TotalFare:  route.TotalFare(),
		Arrival:    route.Arrival(),
		Found:      len(route) > 0 || (q.StartCity == q.EndCity && q.T1 <= q.T2),
		Snapshot:   snapshot,
		ComputedAt: time.Now().UTC(),
	}
}
