// Package kafka publishes shipment status events through a transactional
// outbox.
package kafka

import (
	"context"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Producer interface {
	SendMessage(ctx context.Context, topic string, key, value []byte) error
	Close() error
}

// WriterProducer is the kafka-go backed producer used in production.
type WriterProducer struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewWriterProducer(brokers []string, logger *zap.Logger) *WriterProducer {
	return &WriterProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
		logger: logger,
	}
}

func (p *WriterProducer) SendMessage(ctx context.Context, topic string, key, value []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   key,
		Value: value,
	})
	if err != nil {
		p.logger.Error("Failed to publish message",
			zap.String("topic", topic),
			zap.ByteString("key", key),
			zap.Error(err))
		return err
	}
	return nil
}

func (p *WriterProducer) Close() error {
	return p.writer.Close()
}
