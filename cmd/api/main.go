package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/home-services/internal/audit"
	"github.com/BruksfildServices01/home-services/internal/catalog"
	"github.com/BruksfildServices01/home-services/internal/config"
	dbpkg "github.com/BruksfildServices01/home-services/internal/db"
	"github.com/BruksfildServices01/home-services/internal/infra/memory"
	"github.com/BruksfildServices01/home-services/internal/infra/repository"
	"github.com/BruksfildServices01/home-services/internal/logging"
	"github.com/BruksfildServices01/home-services/internal/metrics"
	"github.com/BruksfildServices01/home-services/internal/routes"
	"github.com/BruksfildServices01/home-services/internal/sessionstore"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)
	metrics.Register()

	// sessions
	var kv sessionstore.KV = sessionstore.NewMemoryKV()
	if cfg.UseRedis() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
		defer client.Close()
		kv = sessionstore.NewRedisKV(client)
	}
	store := sessionstore.New(kv, cfg.SessionPrefix, cfg.SessionTTL)

	deps := routes.Dependencies{
		Config:   cfg,
		Logger:   logger,
		Sessions: store,
	}

	sinks := []audit.Sink{audit.NewLogSink(logger)}

	// storage
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		state, err := memory.NewState(ctx, store)
		if err != nil {
			log.Fatalf("failed to load state: %v", err)
		}
		deps.Users = state.Users()
		deps.Bookings = state.Bookings()
		deps.Feedback = state.Feedbacks()
	default:
		db := dbpkg.NewDB(cfg)
		deps.Users = repository.NewUserGormRepository(db)
		deps.Bookings = repository.NewBookingGormRepository(db)
		deps.Feedback = repository.NewFeedbackGormRepository(db)
		sinks = append(sinks, audit.NewDBSink(db))
	}

	if cfg.AMQPUrl != "" {
		amqpSink, err := audit.DialAMQPSink(cfg.AMQPUrl)
		if err != nil {
			log.Fatalf("failed to connect amqp: %v", err)
		}
		defer amqpSink.Close()
		sinks = append(sinks, amqpSink)
	}

	deps.Audit = audit.NewDispatcher(logger, sinks...)

	deps.Catalog = catalog.Defaults()
	if cfg.CatalogPath != "" {
		services, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			log.Fatalf("failed to load catalog: %v", err)
		}
		deps.Catalog = services
	}

	r := gin.New()
	r.Use(gin.Recovery())

	if err := routes.RegisterRoutes(r, deps); err != nil {
		log.Fatalf("failed to register routes: %v", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info(ctx, "server running", "addr", cfg.Addr(), "storage", cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(shutdownCtx, "shutdown failed", "error", err)
	}
	if err := deps.Audit.Close(shutdownCtx); err != nil {
		logger.Error(shutdownCtx, "audit drain failed", "error", err)
	}
}
