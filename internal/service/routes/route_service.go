package routes

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/Domenick1991/airroute/internal/domain"
	"github.com/Domenick1991/airroute/internal/kafka"
	"github.com/Domenick1991/airroute/internal/planner"
	"github.com/Domenick1991/airroute/internal/repository"
	"github.com/google/uuid"
)

type RouteUseCase interface {
	FindRoute(ctx context.Context, q domain.RouteQuery) (*domain.RouteResult, error)
	Departures(ctx context.Context, city int) ([]domain.Flight, error)
	Arrivals(ctx context.Context, city int) ([]domain.Flight, error)
	Reload(ctx context.Context) (uint64, error)
}

type Cache interface {
	GetRoute(ctx context.Context, snapshot uint64, q domain.RouteQuery) (*domain.RouteResult, error)
	SetRoute(ctx context.Context, result *domain.RouteResult) error
}

type Producer interface {
	PublishWithRetry(ctx context.Context, topic, key string, value interface{}, maxRetries int) error
}

// RouteService answers route queries against the schedule snapshot it last
// loaded. The snapshot is loaded on first use and replaced by Reload.
type RouteService struct {
	flights        repository.FlightRepository
	cache          Cache
	producer       Producer
	resultsTopic   string
	publishRetries int
	newID          func() string

	mu      sync.RWMutex
	planner *planner.Planner
}

type RouteServiceOption func(*RouteService)

func WithPublishRetries(n int) RouteServiceOption {
	return func(s *RouteService) {
		if n > 0 {
			s.publishRetries = n
		}
	}
}

func NewRouteService(
	flights repository.FlightRepository,
	cache Cache,
	producer Producer,
	resultsTopic string,
	opts ...RouteServiceOption,
) *RouteService {
	service := &RouteService{
		flights:        flights,
		cache:          cache,
		producer:       producer,
		resultsTopic:   resultsTopic,
		publishRetries: 1,
		newID:          uuid.NewString,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *RouteService) FindRoute(ctx context.Context, q domain.RouteQuery) (*domain.RouteResult, error) {
	if _, err := domain.ParseCriterion(string(q.Criterion)); err != nil {
		return nil, err
	}
	p, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		cached, err := s.cache.GetRoute(ctx, p.Fingerprint(), q)
		if err != nil {
			log.Printf("route cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	route, err := p.Search(q)
	if err != nil {
		return nil, err
	}
	result := domain.NewRouteResult(s.newID(), q, route, p.Fingerprint())

	if s.cache != nil {
		if err := s.cache.SetRoute(ctx, result); err != nil {
			log.Printf("route cache write failed for %s: %v", result.QueryID, err)
		}
	}
	if err := s.publish(ctx, "route_computed", result); err != nil {
		log.Printf("WARNING: failed to publish route_computed event for query %s: %v", result.QueryID, err)
	}
	return result, nil
}

func (s *RouteService) Departures(ctx context.Context, city int) ([]domain.Flight, error) {
	p, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if err := p.CheckCity(city); err != nil {
		return nil, err
	}
	return p.Index().Departures(city), nil
}

func (s *RouteService) Arrivals(ctx context.Context, city int) ([]domain.Flight, error) {
	p, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if err := p.CheckCity(city); err != nil {
		return nil, err
	}
	return p.Index().Arrivals(city), nil
}

// Reload rebuilds the planner from the repository and returns the new
// snapshot fingerprint. The previous snapshot stays in place on failure.
func (s *RouteService) Reload(ctx context.Context) (uint64, error) {
	flights, err := s.flights.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("load schedule: %w", err)
	}
	p, err := planner.New(flights)
	if err != nil {
		return 0, fmt.Errorf("build planner: %w", err)
	}

	s.mu.Lock()
	s.planner = p
	s.mu.Unlock()

	log.Printf("loaded schedule snapshot %016x with %d flights", p.Fingerprint(), len(flights))
	return p.Fingerprint(), nil
}

func (s *RouteService) snapshot(ctx context.Context) (*planner.Planner, error) {
	s.mu.RLock()
	p := s.planner
	s.mu.RUnlock()
	if p != nil {
		return p, nil
	}

	if _, err := s.Reload(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.planner, nil
}

func (s *RouteService) publish(ctx context.Context, eventType string, result *domain.RouteResult) error {
	if s.producer == nil || s.resultsTopic == "" {
		return nil
	}
	event := kafka.NewRouteEvent(eventType, result)
	return s.producer.PublishWithRetry(ctx, s.resultsTopic, result.QueryID, event, s.publishRetries)
}

var _ RouteUseCase = (*RouteService)(nil)
