package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/shopspring/decimal"

	"github.com/abdiesu04/nexus/internal/db"
	"github.com/abdiesu04/nexus/internal/repository"
)

// OrderRepo reads the slice of the orders subsystem the shipping workflow
// needs and performs the single mutation the orchestrator is allowed:
// setting the recomputed total and the processing status after a label
// purchase.
type OrderRepo struct {
	db db.DB
}

func NewOrderRepo(db db.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

const orderQuery = `
        SELECT o.id, o.buyer_id, o.quantity, o.total_price, o.status,
               p.seller_id, p.price, p.length, p.width, p.height, p.weight,
               COALESCE(pay.payment_status, 'pending') AS payment_status
        FROM orders o
        JOIN products p ON p.id = o.product_id
        LEFT JOIN payments pay ON pay.order_id = o.id
        WHERE o.id = $1`

func (r *OrderRepo) GetByID(ctx context.Context, id string) (*repository.Order, error) {
	var order repository.Order
	err := r.db.Get(ctx, &order, orderQuery, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) SetTotalAndStatusTx(ctx context.Context, tx db.Tx, id string, total decimal.Decimal, status string) error {
	tag, err := tx.Exec(ctx, `
        UPDATE orders
        SET total_price = $2, status = $3, updated_at = $4
        WHERE id = $1
    `, id, total, status, time.Now().UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}
