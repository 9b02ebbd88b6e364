package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/abdiesu04/nexus/internal/db"
	"github.com/abdiesu04/nexus/internal/repository"
)

type ShipmentRepo struct {
	db db.DB
}

func NewShipmentRepo(db db.DB) *ShipmentRepo {
	return &ShipmentRepo{db: db}
}

func (r *ShipmentRepo) Create(ctx context.Context, s *repository.Shipment) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now

	_, err := r.db.Exec(ctx, `
        INSERT INTO shipments (
            id, order_id, from_address_id, to_address_id, carrier, method, cost,
            status, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `, s.ID, s.OrderID, s.FromAddressID, s.ToAddressID, s.Carrier, s.Method, s.Cost,
		s.Status, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert shipment: %w", err)
	}
	return nil
}

func (r *ShipmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*repository.Shipment, error) {
	var s repository.Shipment
	err := r.db.Get(ctx, &s, "SELECT * FROM shipments WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *ShipmentRepo) GetByOrderID(ctx context.Context, orderID string) (*repository.Shipment, error) {
	var s repository.Shipment
	err := r.db.Get(ctx, &s, "SELECT * FROM shipments WHERE order_id = $1", orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &s, nil
}

// GetByIDTx locks the shipment row for the duration of the transaction.
func (r *ShipmentRepo) GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.Shipment, error) {
	var s repository.Shipment
	err := tx.Get(ctx, &s, "SELECT * FROM shipments WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &s, nil
}

// UpdateAddresses repoints the shipment at a new address pair. Used only
// before a label exists.
func (r *ShipmentRepo) UpdateAddresses(ctx context.Context, id, fromID, toID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE shipments
        SET from_address_id = $2, to_address_id = $3, updated_at = $4
        WHERE id = $1 AND transaction_id IS NULL
    `, id, fromID, toID, time.Now().UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

// SaveLabelTx writes the purchased label onto the shipment inside tx.
func (r *ShipmentRepo) SaveLabelTx(ctx context.Context, tx db.Tx, s *repository.Shipment) error {
	s.UpdatedAt = time.Now().UTC()
	tag, err := tx.Exec(ctx, `
        UPDATE shipments
        SET transaction_id = $2, rate_id = $3, tracking_number = $4, tracking_url = $5,
            label_url = $6, carrier = $7, method = $8, cost = $9, status = $10, updated_at = $11
        WHERE id = $1
    `, s.ID, s.TransactionID, s.RateID, s.TrackingNum, s.TrackingURL, s.LabelURL,
		s.Carrier, s.Method, s.Cost, s.Status, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save label onto shipment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}
