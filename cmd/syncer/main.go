package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"grantsync/internal/config"
	"grantsync/internal/publisher"
	"grantsync/internal/scheduler"
	"grantsync/internal/server"
	"grantsync/internal/service"
	"grantsync/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	sourceDB, err := sqlx.Connect("postgres", cfg.SourceDB.DSN())
	if err != nil {
		logger.Error("failed to connect to source database", "error", err)
		os.Exit(1)
	}
	defer sourceDB.Close()

	warehouseDB, err := sqlx.Connect("postgres", cfg.WarehouseDB.DSN())
	if err != nil {
		logger.Error("failed to connect to warehouse database", "error", err)
		os.Exit(1)
	}
	defer warehouseDB.Close()

	logger.Info("connected to databases",
		"source", cfg.SourceDB.DBName,
		"warehouse", cfg.WarehouseDB.DBName,
	)

	// Initialize RabbitMQ publisher
	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	// Initialize stores
	sourceStore := postgres.NewSourceStore(sourceDB)
	warehouseStore := postgres.NewWarehouseStore(warehouseDB)
	cursorStore := postgres.NewCursorStore(warehouseDB)
	txManager := postgres.NewTransactionManager(warehouseDB)

	syncService := service.NewSyncService(
		sourceStore,
		warehouseStore,
		cursorStore,
		txManager,
		rabbitMQ,
		logger,
		cfg.Sync,
		cfg.ProjectID,
	)

	sched := scheduler.NewScheduler(syncService, cfg.Sync.Interval, cfg.Sync.CycleTimeout, logger)

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.New(syncService, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	go func() {
		logger.Info("http trigger listening", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	logger.Info("starting grant warehouse syncer",
		"project", cfg.ProjectID,
		"interval", cfg.Sync.Interval,
		"workers", cfg.Sync.Workers,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
