package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/airroute/api"
	"github.com/Domenick1991/airroute/config"
	routesapi "github.com/Domenick1991/airroute/internal/api/routes_service_api"
	"github.com/Domenick1991/airroute/internal/service/routes"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"
)

type Servers struct {
	grpcServer *grpc.Server
	httpServer *http.Server
}

// Run starts the gRPC and HTTP servers and blocks until ctx is canceled or a server fails.
func Run(ctx context.Context, cfg *config.Config, routeSvc routes.RouteUseCase) error {
	s := newServers(cfg, routeSvc)

	errCh := make(chan error, 2)

	lis, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
	}
	go func() { errCh <- s.grpcServer.Serve(lis) }()

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.grpcServer.GracefulStop()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newServers(cfg *config.Config, routeSvc routes.RouteUseCase) *Servers {
	grpcSrv := grpc.NewServer()
	routesapi.RegisterRoutesServiceServer(grpcSrv, routesapi.NewServer(routeSvc))

	return &Servers{
		grpcServer: grpcSrv,
		httpServer: &http.Server{
			Addr:              cfg.HTTP.Address,
			Handler:           NewRouter(routeSvc),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// NewRouter mounts the HTTP API under /api/v1 and a /healthz check.
func NewRouter(routeSvc routes.RouteUseCase) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	api.NewRouteHandler(routeSvc).Register(router.Group("/api/v1"))
	return router
}
