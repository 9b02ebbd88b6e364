package postgresql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_db "github.com/abdiesu04/nexus/internal/db/mocks"
	"github.com/abdiesu04/nexus/internal/repository"
	"github.com/abdiesu04/nexus/internal/repository/postgresql"
)

func TestShipmentRepo_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success assigns id and timestamps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_db.NewMockDB(ctrl)
		repo := postgresql.NewShipmentRepo(mockDB)

		shipment := &repository.Shipment{
			OrderID:       "order-1",
			FromAddressID: uuid.New(),
			ToAddressID:   uuid.New(),
			Carrier:       "pending",
			Method:        "pending",
			Cost:          decimal.Zero,
			Status:        repository.ShipmentStatusPending,
		}

		mockDB.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Any(), // id assigned inside Create
			gomock.Eq(shipment.OrderID),
			gomock.Eq(shipment.FromAddressID),
			gomock.Eq(shipment.ToAddressID),
			gomock.Eq(shipment.Carrier),
			gomock.Eq(shipment.Method),
			gomock.Eq(shipment.Cost),
			gomock.Eq(shipment.Status),
			gomock.Any(),
			gomock.Any(),
		).Return(pgconn.CommandTag("INSERT 0 1"), nil)

		require.NoError(t, repo.Create(ctx, shipment))
		assert.NotEqual(t, uuid.Nil, shipment.ID)
		assert.False(t, shipment.CreatedAt.IsZero())
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_db.NewMockDB(ctrl)
		repo := postgresql.NewShipmentRepo(mockDB)

		mockDB.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		err := repo.Create(ctx, &repository.Shipment{OrderID: "order-1"})
		assert.Error(t, err)
	})
}

func TestShipmentRepo_GetByID(t *testing.T) {
	ctx := context.Background()
	shipmentID := uuid.New()

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_db.NewMockDB(ctrl)
		repo := postgresql.NewShipmentRepo(mockDB)

		mockDB.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(shipmentID)).
			DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				s := dest.(*repository.Shipment)
				s.ID = shipmentID
				s.OrderID = "order-1"
				s.Status = repository.ShipmentStatusPending
				return nil
			})

		shipment, err := repo.GetByID(ctx, shipmentID)
		require.NoError(t, err)
		assert.Equal(t, shipmentID, shipment.ID)
		assert.Equal(t, "order-1", shipment.OrderID)
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_db.NewMockDB(ctrl)
		repo := postgresql.NewShipmentRepo(mockDB)

		mockDB.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(shipmentID)).
			Return(pgx.ErrNoRows)

		_, err := repo.GetByID(ctx, shipmentID)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestShipmentRepo_UpdateAddresses(t *testing.T) {
	ctx := context.Background()
	shipmentID := uuid.New()
	fromID := uuid.New()
	toID := uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_db.NewMockDB(ctrl)
		repo := postgresql.NewShipmentRepo(mockDB)

		mockDB.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Eq(shipmentID), gomock.Eq(fromID), gomock.Eq(toID), gomock.Any()).
			Return(pgconn.CommandTag("UPDATE 1"), nil)

		assert.NoError(t, repo.UpdateAddresses(ctx, shipmentID, fromID, toID))
	})

	t.Run("purchased shipment is untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_db.NewMockDB(ctrl)
		repo := postgresql.NewShipmentRepo(mockDB)

		mockDB.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Eq(shipmentID), gomock.Eq(fromID), gomock.Eq(toID), gomock.Any()).
			Return(pgconn.CommandTag("UPDATE 0"), nil)

		err := repo.UpdateAddresses(ctx, shipmentID, fromID, toID)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestShipmentRepo_SaveLabelTx(t *testing.T) {
	ctx := context.Background()
	shipmentID := uuid.New()

	txnID := "txn-1"
	rateID := "rate-1"
	tracking := "1Z999"
	trackingURL := "https://track.example/1Z999"
	labelURL := "https://label.example/1.pdf"

	shipment := &repository.Shipment{
		ID:            shipmentID,
		TransactionID: &txnID,
		RateID:        &rateID,
		TrackingNum:   &tracking,
		TrackingURL:   &trackingURL,
		LabelURL:      &labelURL,
		Carrier:       "USPS",
		Method:        "Priority Mail",
		Cost:          decimal.RequireFromString("5.50"),
		Status:        repository.ShipmentStatusPending,
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTx := mock_db.NewMockTx(ctrl)
		repo := postgresql.NewShipmentRepo(mock_db.NewMockDB(ctrl))

		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(),
				gomock.Eq(shipmentID), gomock.Eq(&txnID), gomock.Eq(&rateID),
				gomock.Eq(&tracking), gomock.Eq(&trackingURL), gomock.Eq(&labelURL),
				gomock.Eq("USPS"), gomock.Eq("Priority Mail"), gomock.Eq(shipment.Cost),
				gomock.Eq(repository.ShipmentStatusPending), gomock.Any()).
			Return(pgconn.CommandTag("UPDATE 1"), nil)

		assert.NoError(t, repo.SaveLabelTx(ctx, mockTx, shipment))
	})

	t.Run("missing row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTx := mock_db.NewMockTx(ctrl)
		repo := postgresql.NewShipmentRepo(mock_db.NewMockDB(ctrl))

		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag("UPDATE 0"), nil)

		err := repo.SaveLabelTx(ctx, mockTx, shipment)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestShipmentRepo_GetByIDTx(t *testing.T) {
	ctx := context.Background()
	shipmentID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTx := mock_db.NewMockTx(ctrl)
	repo := postgresql.NewShipmentRepo(mock_db.NewMockDB(ctrl))

	mockTx.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(shipmentID)).
		DoAndReturn(func(_ context.Context, dest interface{}, query string, _ ...interface{}) error {
			assert.Contains(t, query, "FOR UPDATE")
			s := dest.(*repository.Shipment)
			s.ID = shipmentID
			return nil
		})

	shipment, err := repo.GetByIDTx(ctx, mockTx, shipmentID)
	require.NoError(t, err)
	assert.Equal(t, shipmentID, shipment.ID)
}
