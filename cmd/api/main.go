package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"supportbot/internal/config"
	"supportbot/internal/db"
	"supportbot/internal/faq"
	"supportbot/internal/httpapi"
	"supportbot/internal/logger"
	"supportbot/internal/store/rabbitmq"
	"supportbot/internal/store/redisstore"
)

func main() {
	cfg := config.Load()

	log, err := logger.Init()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gdb, err := db.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatal("db connect", zap.Error(err))
	}

	if err := faq.Seed(ctx, faq.NewRepo(gdb)); err != nil {
		log.Fatal("faq seed", zap.Error(err))
	}

	// Redis and RabbitMQ are optional collaborators: the server runs
	// uncached / without escalation events when they are unreachable.
	rds, err := redisstore.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Warn("redis unavailable, faq listing cache disabled", zap.Error(err))
		rds = nil
	} else {
		defer func() { _ = rds.Close() }()
	}

	events, err := rabbitmq.NewPublisher(cfg.RabbitURL, cfg.RabbitQueue)
	if err != nil {
		log.Warn("rabbitmq unavailable, escalation events disabled", zap.Error(err))
		events = nil
	} else {
		defer func() { _ = events.Close() }()
	}

	router := httpapi.NewRouter(ctx, gdb, cfg, rds, events)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}
