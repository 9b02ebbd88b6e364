package server

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// AuditManager fans audit entries out to a small worker pool. Entries are
// batched by size or timeout, whichever comes first.
type AuditManager struct {
	workerCount int
	batchSize   int
	timeout     time.Duration
	logger      *zap.Logger

	inputChan  chan AuditLogEntry
	batchChan  chan []AuditLogEntry
	shutdownCh chan struct{}
	once       sync.Once

	wg           sync.WaitGroup
	pendingMu    sync.Mutex
	pendingCount int
}

func NewAuditManager(workerCount, batchSize int, timeout time.Duration, logger *zap.Logger) *AuditManager {
	return &AuditManager{
		workerCount: workerCount,
		batchSize:   batchSize,
		timeout:     timeout,
		logger:      logger,
		inputChan:   make(chan AuditLogEntry, workerCount*batchSize*2),
		batchChan:   make(chan []AuditLogEntry, workerCount*2),
		shutdownCh:  make(chan struct{}),
	}
}

func (m *AuditManager) Start(ctx context.Context) {
	m.logger.Info("Starting AuditManager")
	m.wg.Add(1)
	go m.runAggregator(ctx)

	for i := 0; i < m.workerCount; i++ {
		m.wg.Add(1)
		go m.runWorker(ctx, i)
	}

	go m.monitorShutdown(ctx)
}

func (m *AuditManager) Shutdown(ctx context.Context) {
	m.once.Do(func() {
		m.logger.Info("Initiating AuditManager shutdown")
		close(m.shutdownCh)

		done := make(chan struct{})
		go func() {
			m.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			m.logger.Info("AuditManager shutdown completed")
		case <-ctx.Done():
			m.logger.Warn("AuditManager shutdown interrupted")
		}
	})
}

func (m *AuditManager) monitorShutdown(ctx context.Context) {
	<-ctx.Done()
	m.Shutdown(context.Background())
}

func (m *AuditManager) LogEntry(ctx context.Context, entry AuditLogEntry) {
	m.pendingMu.Lock()
	m.pendingCount++
	m.pendingMu.Unlock()

	select {
	case m.inputChan <- entry:
	case <-ctx.Done():
		m.emergencyLog(entry)
	}
}

func (m *AuditManager) runAggregator(ctx context.Context) {
	defer m.wg.Done()

	var (
		batch    []AuditLogEntry
		timer    *time.Timer
		timeoutC <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
		if len(batch) > 0 {
			m.dispatchBatch(batch)
		}
		close(m.batchChan)
	}()

	for {
		select {
		case entry, ok := <-m.inputChan:
			if !ok {
				return
			}

			batch = append(batch, entry)
			if len(batch) >= m.batchSize {
				m.dispatchBatch(batch)
				batch = nil
				timeoutC = nil
			} else if len(batch) == 1 {
				timer = time.NewTimer(m.timeout)
				timeoutC = timer.C
			}

		case <-timeoutC:
			m.dispatchBatch(batch)
			batch = nil
			timeoutC = nil

		case <-ctx.Done():
			return

		case <-m.shutdownCh:
			return
		}
	}
}

func (m *AuditManager) dispatchBatch(batch []AuditLogEntry) {
	batchCopy := make([]AuditLogEntry, len(batch))
	copy(batchCopy, batch)

	select {
	case m.batchChan <- batchCopy:
		m.updatePendingCount(-len(batch))
	default:
		m.writeBatch(-1, batchCopy)
	}
}

func (m *AuditManager) runWorker(ctx context.Context, id int) {
	defer m.wg.Done()

	for {
		select {
		case batch, ok := <-m.batchChan:
			if !ok {
				return
			}
			m.writeBatch(id, batch)
		case <-ctx.Done():
			// Drain whatever is already queued before exiting.
			for {
				select {
				case batch, ok := <-m.batchChan:
					if !ok {
						return
					}
					m.writeBatch(id, batch)
				default:
					return
				}
			}
		}
	}
}

func (m *AuditManager) emergencyLog(entry AuditLogEntry) {
	entryJSON, err := json.Marshal(entry)
	if err != nil {
		m.logger.Error("Failed to marshal emergency audit entry", zap.Error(err))
		return
	}

	m.logger.Warn("Emergency audit entry", zap.ByteString("entry", entryJSON))
	m.updatePendingCount(-1)
}

func (m *AuditManager) writeBatch(workerID int, batch []AuditLogEntry) {
	source := "direct"
	if workerID >= 0 {
		source = fmt.Sprintf("worker-%d", workerID)
	}

	for _, entry := range batch {
		entryJSON, err := json.Marshal(entry)
		if err != nil {
			m.logger.Error("Failed to marshal audit entry", zap.Error(err))
			continue
		}
		m.logger.Info("audit",
			zap.String("source", source),
			zap.ByteString("entry", entryJSON),
		)
	}
}

func (m *AuditManager) updatePendingCount(delta int) {
	m.pendingMu.Lock()
	defer m.pendingMu.Unlock()
	m.pendingCount += delta
}
