package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airroute/config"
	"github.com/Domenick1991/airroute/internal/cache"
	"github.com/Domenick1991/airroute/internal/kafka"
	"github.com/Domenick1991/airroute/internal/report"
	"github.com/Domenick1991/airroute/internal/repository"
	"github.com/Domenick1991/airroute/internal/service/routes"
	"github.com/jackc/pgx/v5/pgxpool"
	kafkaGo "github.com/segmentio/kafka-go"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()
	redisCache := cache.NewRedisCache(cfg.Redis, cfg.Routes.CacheTTL())
	defer redisCache.Close()

	routeService := routes.NewRouteService(
		repository.NewFlightRepository(pool),
		redisCache,
		producer,
		cfg.Kafka.ResultsTopic,
		routes.WithPublishRetries(3),
	)
	if _, err := routeService.Reload(ctx); err != nil {
		log.Fatalf("load schedule: %v", err)
	}

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.QueriesTopic)
	defer consumer.Close()

	printer := report.NewPrinter(os.Stdout)

	go func() {
		if err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
			q, err := kafka.DecodeQuery(msg)
			if err != nil {
				log.Printf("decode query error: %v", err)
				return nil
			}
			result, err := routeService.FindRoute(ctx, q)
			if err != nil {
				log.Printf("route query %s failed: %v", string(msg.Key), err)
				return nil
			}
			return printer.Print(ctx, kafka.NewRouteEvent("route_computed", result))
		}); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("consumer stopped: %v", err)
		}
	}()

	reloadTicker := time.NewTicker(cfg.Worker.ReloadInterval())
	defer reloadTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-reloadTicker.C:
			if _, err := routeService.Reload(ctx); err != nil {
				log.Printf("reload schedule error: %v", err)
			}
		case s := <-sig:
			log.Printf("received signal %v, shutting down", s)
			return
		}
	}
}
