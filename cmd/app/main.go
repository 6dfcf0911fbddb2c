package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airroute/config"
	"github.com/Domenick1991/airroute/internal/bootstrap"
	"github.com/Domenick1991/airroute/internal/cache"
	"github.com/Domenick1991/airroute/internal/kafka"
	"github.com/Domenick1991/airroute/internal/repository"
	"github.com/Domenick1991/airroute/internal/service/routes"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, cfg.Routes.CacheTTL())
	defer redisCache.Close()
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	routeService := routes.NewRouteService(
		repository.NewFlightRepository(pool),
		redisCache,
		producer,
		cfg.Kafka.ResultsTopic,
	)
	if _, err := routeService.Reload(ctx); err != nil {
		log.Fatalf("load schedule: %v", err)
	}

	if err := bootstrap.Run(ctx, cfg, routeService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
