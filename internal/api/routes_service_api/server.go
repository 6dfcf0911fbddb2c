package routes_service_api

import (
	"context"
	"errors"

	"github.com/Domenick1991/airroute/internal/domain"
	"github.com/Domenick1991/airroute/internal/planner"
	"github.com/Domenick1991/airroute/internal/service/routes"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Server implements RoutesServiceServer on top of the route use case.
type Server struct {
	routes routes.RouteUseCase
}

func NewServer(routes routes.RouteUseCase) *Server {
	return &Server{routes: routes}
}

func (s *Server) FindRoute(ctx context.Context, req *FindRouteRequest) (*domain.RouteResult, error) {
	criterion, err := domain.ParseCriterion(req.Criterion)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	result, err := s.routes.FindRoute(ctx, domain.RouteQuery{
		Criterion: criterion,
		StartCity: req.StartCity,
		EndCity:   req.EndCity,
		T1:        req.T1,
		T2:        req.T2,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return result, nil
}

func (s *Server) Reload(ctx context.Context, _ *ReloadRequest) (*ReloadResponse, error) {
	snapshot, err := s.routes.Reload(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &ReloadResponse{Snapshot: snapshot}, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownCriterion), errors.Is(err, planner.ErrCityOutOfRange):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

var _ RoutesServiceServer = (*Server)(nil)
