package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abdiesu04/nexus/internal/db"
	"github.com/abdiesu04/nexus/internal/repository"
)

type StatusEventRepo struct {
	db db.DB
}

func NewStatusEventRepo(db db.DB) *StatusEventRepo {
	return &StatusEventRepo{db: db}
}

func (r *StatusEventRepo) CreateTx(ctx context.Context, tx db.Tx, e *repository.StatusEvent) error {
	e.CreatedAt = time.Now().UTC()
	err := tx.Get(ctx, &e.ID, `
        INSERT INTO shipment_status_events (shipment_id, status, location, description, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `, e.ShipmentID, e.Status, e.Location, e.Description, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert status event: %w", err)
	}
	return nil
}

func (r *StatusEventRepo) ListByShipmentID(ctx context.Context, shipmentID uuid.UUID) ([]*repository.StatusEvent, error) {
	var events []*repository.StatusEvent
	err := r.db.Select(ctx, &events, `
        SELECT * FROM shipment_status_events
        WHERE shipment_id = $1
        ORDER BY created_at DESC, id DESC
    `, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list status events: %w", err)
	}
	return events, nil
}
