package repository

import (
	"context"

	"github.com/Domenick1991/airroute/internal/domain"
	"github.com/jackc/pgx/v5"
)

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
}

// Querier is the part of *pgxpool.Pool the repository reads through.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type PGFlightRepository struct {
	db Querier
}

func NewFlightRepository(db Querier) FlightRepository {
	return &PGFlightRepository{db: db}
}

// List loads the whole schedule ordered by flight number.
func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT flight_no, start_city, end_city, departure_time, arrival_time, fare FROM flights ORDER BY flight_no`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanFlight)
}

func scanFlight(row pgx.CollectableRow) (domain.Flight, error) {
	var f domain.Flight
	err := row.Scan(&f.FlightNo, &f.StartCity, &f.EndCity, &f.DepartureTime, &f.ArrivalTime, &f.Fare)
	return f, err
}

var _ FlightRepository = (*PGFlightRepository)(nil)
