//go:generate mockgen -source ./publisher.go -destination=./mocks/kafka.go -package=mock_kafka
package kafka

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abdiesu04/nexus/internal/db"
	"github.com/abdiesu04/nexus/internal/repository"
)

type OutboxTaskRepository interface {
	GetProcessableTasks(ctx context.Context, db db.DB, maxAttempts, limit int) ([]*repository.OutboxTask, error)
	UpdateTaskStatus(ctx context.Context, db db.DB, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
}

type PublisherConfig struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
}

// Publisher drains the outbox table and hands every task to the producer.
// Tasks that fail are retried on later polls until MaxAttempts.
type Publisher struct {
	db       db.DB
	repo     OutboxTaskRepository
	producer Producer
	config   PublisherConfig
	logger   *zap.Logger

	wg       sync.WaitGroup
	shutdown chan struct{}
	stopOnce sync.Once
}

func NewPublisher(db db.DB, repo OutboxTaskRepository, producer Producer, config PublisherConfig, logger *zap.Logger) *Publisher {
	return &Publisher{
		db:       db,
		repo:     repo,
		producer: producer,
		config:   config,
		logger:   logger,
		shutdown: make(chan struct{}),
	}
}

func (p *Publisher) Run(ctx context.Context) {
	p.logger.Info("Starting outbox publisher",
		zap.Duration("poll_interval", p.config.PollInterval),
		zap.Int("batch_size", p.config.BatchSize))
	p.wg.Add(1)
	defer p.wg.Done()

	ticker := time.NewTicker(p.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := p.processBatch(ctx); err != nil {
				p.logger.Error("Outbox publisher failed to process batch", zap.Error(err))
			}
		case <-p.shutdown:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (p *Publisher) Shutdown() {
	p.stopOnce.Do(func() {
		p.logger.Info("Shutting down outbox publisher")
		close(p.shutdown)

		done := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(30 * time.Second):
			p.logger.Warn("Outbox publisher shutdown timed out")
		}

		if err := p.producer.Close(); err != nil {
			p.logger.Error("Failed to close producer", zap.Error(err))
		}
	})
}

func (p *Publisher) processBatch(ctx context.Context) error {
	tasks, err := p.repo.GetProcessableTasks(ctx, p.db, p.config.MaxAttempts, p.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to get processable tasks: %w", err)
	}
	if len(tasks) == 0 {
		return nil
	}

	p.logger.Debug("Publishing outbox tasks", zap.Int("count", len(tasks)))

	for _, task := range tasks {
		if err := p.publishTask(ctx, task); err != nil {
			p.logger.Error("Failed to publish outbox task",
				zap.String("task_id", task.ID.String()),
				zap.Error(err))
		}
	}
	return nil
}

func (p *Publisher) publishTask(ctx context.Context, task *repository.OutboxTask) error {
	attempts := task.Attempts + 1

	if err := p.producer.SendMessage(ctx, task.Topic, []byte(task.ID.String()), task.Payload); err != nil {
		msg := err.Error()
		if updErr := p.repo.UpdateTaskStatus(ctx, p.db, task.ID, repository.TaskStatusFailed, attempts, &msg, nil); updErr != nil {
			return fmt.Errorf("failed to mark task failed: %w", updErr)
		}
		return err
	}

	now := time.Now().UTC()
	if err := p.repo.UpdateTaskStatus(ctx, p.db, task.ID, repository.TaskStatusDone, attempts, nil, &now); err != nil {
		return fmt.Errorf("failed to mark task done: %w", err)
	}
	return nil
}
