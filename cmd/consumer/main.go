package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abdiesu04/nexus/internal/config"
	"github.com/abdiesu04/nexus/internal/logger"
)

const groupID = "shipment-status-consumer-group"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logger.New(zapcore.InfoLevel)
	defer log.Sync() //nolint:errcheck

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.KafkaBrokers,
		GroupID:        groupID,
		Topic:          cfg.StatusEventTopic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		if err := r.Close(); err != nil {
			log.Error("Error closing Kafka reader", zap.Error(err))
		}
	}()

	log.Info("Consumer connected",
		zap.String("topic", cfg.StatusEventTopic),
		zap.Strings("brokers", cfg.KafkaBrokers),
	)

	for {
		select {
		case <-ctx.Done():
			log.Info("Shutdown signal received, stopping consumer")
			return
		default:
			m, err := r.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Error("Error reading message", zap.Error(err))
				time.Sleep(5 * time.Second)
				continue
			}

			log.Info("Shipment status event",
				zap.Time("timestamp", m.Time),
				zap.Int("partition", m.Partition),
				zap.Int64("offset", m.Offset),
				zap.ByteString("key", m.Key),
				zap.ByteString("value", m.Value),
			)
		}
	}
}
