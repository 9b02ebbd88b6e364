package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/abdiesu04/nexus/internal/cache"
	"github.com/abdiesu04/nexus/internal/carrier"
	"github.com/abdiesu04/nexus/internal/config"
	"github.com/abdiesu04/nexus/internal/db"
	"github.com/abdiesu04/nexus/internal/kafka"
	"github.com/abdiesu04/nexus/internal/logger"
	"github.com/abdiesu04/nexus/internal/repository/postgresql"
	"github.com/abdiesu04/nexus/internal/server"
	"github.com/abdiesu04/nexus/internal/shipping"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logger.New(zapcore.InfoLevel)
	defer log.Sync() //nolint:errcheck

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	database, err := db.NewDB(ctx, cfg.DSN())
	if err != nil {
		log.Fatal("Database init error", zap.Error(err))
	}
	defer database.GetPool().Close()

	sellerAddrRepo := postgresql.NewSellerAddressRepo(database)
	buyerAddrRepo := postgresql.NewBuyerAddressRepo(database)
	shipmentRepo := postgresql.NewShipmentRepo(database)
	statusEventRepo := postgresql.NewStatusEventRepo(database)
	orderRepo := postgresql.NewOrderRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()
	userRepo := postgresql.NewUserRepo(database)

	if err := userRepo.EnsureUser(ctx, "admin", "admin", "password", "admin"); err != nil {
		log.Warn("Failed to seed admin user", zap.Error(err))
	}

	shippoClient, err := carrier.NewShippoClient(&carrier.ShippoConfig{
		APIKey:  cfg.ShippoAPIKey,
		BaseURL: cfg.ShippoBaseURL,
		Timeout: cfg.ShippoTimeout,
	}, log)
	if err != nil {
		log.Fatal("Failed to create carrier client", zap.Error(err))
	}

	shipmentCache := cache.NewShipmentCache()

	svc := shipping.NewService(
		database,
		shippoClient,
		orderRepo,
		shipmentRepo,
		sellerAddrRepo,
		buyerAddrRepo,
		statusEventRepo,
		outboxRepo,
		shipmentCache,
		log,
		cfg.StatusEventTopic,
	)

	producer := kafka.NewWriterProducer(cfg.KafkaBrokers, log)
	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: cfg.OutboxPollInterval,
		BatchSize:    cfg.OutboxBatchSize,
		MaxAttempts:  cfg.OutboxMaxAttempts,
	}, log)

	srv := server.New(svc, userRepo, log)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run(gCtx, cfg.HTTPPort)
	})

	g.Go(func() error {
		publisher.Run(gCtx)
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		publisher.Shutdown()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("Service exited with error", zap.Error(err))
	}

	log.Info("Service gracefully stopped")
}
