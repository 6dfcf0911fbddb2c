package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Domenick1991/airroute/internal/kafka"
)

// Printer writes one line per route event.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Print(ctx context.Context, event kafka.RouteEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(p.w, Summary(event))
	return err
}

// Summary renders an event as a single human readable line.
func Summary(event kafka.RouteEvent) string {
	head := fmt.Sprintf("%s %s %d->%d [%d,%d]", event.QueryID, event.Criterion, event.StartCity, event.EndCity, event.T1, event.T2)
	switch {
	case !event.Found:
		return head + ": no route"
	case len(event.FlightNos) == 0:
		return head + ": already there"
	}

	legs := make([]string, len(event.FlightNos))
	for i, no := range event.FlightNos {
		legs[i] = fmt.Sprintf("F%d", no)
	}
	return fmt.Sprintf("%s: %s, %d hops, fare %.2f, arrives %d", head, strings.Join(legs, " "), len(legs), event.TotalFare, event.Arrival)
}
