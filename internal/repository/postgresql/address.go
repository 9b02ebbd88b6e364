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

type SellerAddressRepo struct {
	db db.DB
}

func NewSellerAddressRepo(db db.DB) *SellerAddressRepo {
	return &SellerAddressRepo{db: db}
}

// Create inserts the address. When the new address is flagged default the
// previous default for the same seller is demoted in the same transaction.
func (r *SellerAddressRepo) Create(ctx context.Context, addr *repository.SellerAddress) error {
	if addr.ID == uuid.Nil {
		addr.ID = uuid.New()
	}
	now := time.Now().UTC()
	addr.CreatedAt = now
	addr.UpdatedAt = now

	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if addr.IsDefault {
		if _, err := tx.Exec(ctx,
			"UPDATE seller_addresses SET is_default = FALSE, updated_at = $2 WHERE seller_id = $1 AND is_default",
			addr.SellerID, now); err != nil {
			return fmt.Errorf("failed to demote previous default address: %w", err)
		}
	}

	if _, err := tx.Exec(ctx, `
        INSERT INTO seller_addresses (
            id, seller_id, name, company, street1, street2, city, state, zip,
            country, phone, email, is_default, is_verified, is_warehouse, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
    `, addr.ID, addr.SellerID, addr.Name, addr.Company, addr.Street1, addr.Street2, addr.City,
		addr.State, addr.Zip, addr.Country, addr.Phone, addr.Email, addr.IsDefault,
		addr.IsVerified, addr.IsWarehouse, addr.CreatedAt, addr.UpdatedAt); err != nil {
		return fmt.Errorf("failed to insert seller address: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *SellerAddressRepo) GetByID(ctx context.Context, id uuid.UUID) (*repository.SellerAddress, error) {
	var addr repository.SellerAddress
	err := r.db.Get(ctx, &addr, "SELECT * FROM seller_addresses WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &addr, nil
}

func (r *SellerAddressRepo) ListByOwner(ctx context.Context, sellerID string) ([]*repository.SellerAddress, error) {
	var addrs []*repository.SellerAddress
	err := r.db.Select(ctx, &addrs,
		"SELECT * FROM seller_addresses WHERE seller_id = $1 ORDER BY created_at DESC", sellerID)
	return addrs, err
}

func (r *SellerAddressRepo) Update(ctx context.Context, addr *repository.SellerAddress) error {
	addr.UpdatedAt = time.Now().UTC()
	tag, err := r.db.Exec(ctx, `
        UPDATE seller_addresses
        SET name = $1, company = $2, street1 = $3, street2 = $4, city = $5, state = $6,
            zip = $7, country = $8, phone = $9, email = $10, is_warehouse = $11,
            is_verified = $12, updated_at = $13
        WHERE id = $14 AND seller_id = $15
    `, addr.Name, addr.Company, addr.Street1, addr.Street2, addr.City, addr.State,
		addr.Zip, addr.Country, addr.Phone, addr.Email, addr.IsWarehouse,
		addr.IsVerified, addr.UpdatedAt, addr.ID, addr.SellerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *SellerAddressRepo) Delete(ctx context.Context, id uuid.UUID, sellerID string) error {
	tag, err := r.db.Exec(ctx,
		"DELETE FROM seller_addresses WHERE id = $1 AND seller_id = $2", id, sellerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

// SetDefault promotes the address and demotes the previous default atomically.
func (r *SellerAddressRepo) SetDefault(ctx context.Context, id uuid.UUID, sellerID string) error {
	now := time.Now().UTC()

	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx,
		"UPDATE seller_addresses SET is_default = FALSE, updated_at = $2 WHERE seller_id = $1 AND is_default",
		sellerID, now); err != nil {
		return fmt.Errorf("failed to demote previous default address: %w", err)
	}

	tag, err := tx.Exec(ctx,
		"UPDATE seller_addresses SET is_default = TRUE, updated_at = $3 WHERE id = $1 AND seller_id = $2",
		id, sellerID, now)
	if err != nil {
		return fmt.Errorf("failed to promote address: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}

	return tx.Commit(ctx)
}

func (r *SellerAddressRepo) MarkVerified(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		"UPDATE seller_addresses SET is_verified = TRUE, updated_at = $2 WHERE id = $1",
		id, time.Now().UTC())
	return err
}

type BuyerAddressRepo struct {
	db db.DB
}

func NewBuyerAddressRepo(db db.DB) *BuyerAddressRepo {
	return &BuyerAddressRepo{db: db}
}

func (r *BuyerAddressRepo) Create(ctx context.Context, addr *repository.BuyerAddress) error {
	if addr.ID == uuid.Nil {
		addr.ID = uuid.New()
	}
	now := time.Now().UTC()
	addr.CreatedAt = now
	addr.UpdatedAt = now

	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if addr.IsDefault {
		if _, err := tx.Exec(ctx,
			"UPDATE buyer_addresses SET is_default = FALSE, updated_at = $2 WHERE buyer_id = $1 AND is_default",
			addr.BuyerID, now); err != nil {
			return fmt.Errorf("failed to demote previous default address: %w", err)
		}
	}

	if _, err := tx.Exec(ctx, `
        INSERT INTO buyer_addresses (
            id, buyer_id, name, company, street1, street2, city, state, zip,
            country, phone, email, is_default, is_verified, is_residential,
            instructions, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
    `, addr.ID, addr.BuyerID, addr.Name, addr.Company, addr.Street1, addr.Street2, addr.City,
		addr.State, addr.Zip, addr.Country, addr.Phone, addr.Email, addr.IsDefault,
		addr.IsVerified, addr.IsResidential, addr.Instructions, addr.CreatedAt, addr.UpdatedAt); err != nil {
		return fmt.Errorf("failed to insert buyer address: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *BuyerAddressRepo) GetByID(ctx context.Context, id uuid.UUID) (*repository.BuyerAddress, error) {
	var addr repository.BuyerAddress
	err := r.db.Get(ctx, &addr, "SELECT * FROM buyer_addresses WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &addr, nil
}

func (r *BuyerAddressRepo) ListByOwner(ctx context.Context, buyerID string) ([]*repository.BuyerAddress, error) {
	var addrs []*repository.BuyerAddress
	err := r.db.Select(ctx, &addrs,
		"SELECT * FROM buyer_addresses WHERE buyer_id = $1 ORDER BY created_at DESC", buyerID)
	return addrs, err
}

func (r *BuyerAddressRepo) Update(ctx context.Context, addr *repository.BuyerAddress) error {
	addr.UpdatedAt = time.Now().UTC()
	tag, err := r.db.Exec(ctx, `
        UPDATE buyer_addresses
        SET name = $1, company = $2, street1 = $3, street2 = $4, city = $5, state = $6,
            zip = $7, country = $8, phone = $9, email = $10, is_residential = $11,
            instructions = $12, is_verified = $13, updated_at = $14
        WHERE id = $15 AND buyer_id = $16
    `, addr.Name, addr.Company, addr.Street1, addr.Street2, addr.City, addr.State,
		addr.Zip, addr.Country, addr.Phone, addr.Email, addr.IsResidential,
		addr.Instructions, addr.IsVerified, addr.UpdatedAt, addr.ID, addr.BuyerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *BuyerAddressRepo) Delete(ctx context.Context, id uuid.UUID, buyerID string) error {
	tag, err := r.db.Exec(ctx,
		"DELETE FROM buyer_addresses WHERE id = $1 AND buyer_id = $2", id, buyerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *BuyerAddressRepo) SetDefault(ctx context.Context, id uuid.UUID, buyerID string) error {
	now := time.Now().UTC()

	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx,
		"UPDATE buyer_addresses SET is_default = FALSE, updated_at = $2 WHERE buyer_id = $1 AND is_default",
		buyerID, now); err != nil {
		return fmt.Errorf("failed to demote previous default address: %w", err)
	}

	tag, err := tx.Exec(ctx,
		"UPDATE buyer_addresses SET is_default = TRUE, updated_at = $3 WHERE id = $1 AND buyer_id = $2",
		id, buyerID, now)
	if err != nil {
		return fmt.Errorf("failed to promote address: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}

	return tx.Commit(ctx)
}

func (r *BuyerAddressRepo) MarkVerified(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		"UPDATE buyer_addresses SET is_verified = TRUE, updated_at = $2 WHERE id = $1",
		id, time.Now().UTC())
	return err
}
