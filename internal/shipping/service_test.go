package shipping_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/abdiesu04/nexus/internal/address"
	"github.com/abdiesu04/nexus/internal/carrier"
	mock_carrier "github.com/abdiesu04/nexus/internal/carrier/mocks"
	mock_db "github.com/abdiesu04/nexus/internal/db/mocks"
	"github.com/abdiesu04/nexus/internal/repository"
	"github.com/abdiesu04/nexus/internal/shipping"
	mock_shipping "github.com/abdiesu04/nexus/internal/shipping/mocks"
)

type serviceMocks struct {
	db        *mock_db.MockDB
	client    *mock_carrier.MockClient
	orders    *mock_shipping.MockOrderRepository
	shipments *mock_shipping.MockShipmentRepository
	sellers   *mock_shipping.MockSellerAddressRepository
	buyers    *mock_shipping.MockBuyerAddressRepository
	events    *mock_shipping.MockStatusEventRepository
	outbox    *mock_shipping.MockOutboxRepository
	cache     *mock_shipping.MockShipmentCache
}

func newService(ctrl *gomock.Controller) (*shipping.Service, serviceMocks) {
	m := serviceMocks{
		db:        mock_db.NewMockDB(ctrl),
		client:    mock_carrier.NewMockClient(ctrl),
		orders:    mock_shipping.NewMockOrderRepository(ctrl),
		shipments: mock_shipping.NewMockShipmentRepository(ctrl),
		sellers:   mock_shipping.NewMockSellerAddressRepository(ctrl),
		buyers:    mock_shipping.NewMockBuyerAddressRepository(ctrl),
		events:    mock_shipping.NewMockStatusEventRepository(ctrl),
		outbox:    mock_shipping.NewMockOutboxRepository(ctrl),
		cache:     mock_shipping.NewMockShipmentCache(ctrl),
	}

	svc := shipping.NewService(
		m.db, m.client,
		m.orders, m.shipments, m.sellers, m.buyers, m.events, m.outbox,
		m.cache,
		zap.NewNop(),
		"shipment_status_events",
	)
	return svc, m
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func paidOrder() *repository.Order {
	return &repository.Order{
		ID:            "order-1",
		BuyerID:       "buyer-1",
		SellerID:      "seller-1",
		Quantity:      2,
		Price:         dec("25.00"),
		Length:        decPtr("10"),
		Width:         decPtr("5"),
		Height:        decPtr("4"),
		Weight:        decPtr("2.5"),
		Status:        "pending_shipment",
		PaymentStatus: "completed",
	}
}

func sellerAddress(id uuid.UUID) *repository.SellerAddress {
	return &repository.SellerAddress{
		ID:       id,
		SellerID: "seller-1",
		Name:     "Acme Warehouse",
		Street1:  "1 WAREHOUSE RD.",
		City:     "Reno",
		State:    "NV",
		Zip:      "89501",
		Country:  "us",
		Phone:    "7755551234",
		Email:    "ops@acme.example",
	}
}

func buyerAddress(id uuid.UUID, residential bool) *repository.BuyerAddress {
	return &repository.BuyerAddress{
		ID:            id,
		BuyerID:       "buyer-1",
		Name:          "Bob Buyer",
		Street1:       "9 ELM AVE.",
		City:          "Boise",
		State:         "ID",
		Zip:           "83702-5555",
		Country:       "US",
		Phone:         "2085559876",
		Email:         "bob@example.com",
		IsResidential: residential,
	}
}

func TestCalculateRates(t *testing.T) {
	ctx := context.Background()
	fromID := uuid.New()
	toID := uuid.New()
	seller := shipping.Actor{ID: "seller-1", Role: shipping.RoleSeller}

	t.Run("success for residential recipient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		order := paidOrder()

		m.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil)
		m.sellers.EXPECT().GetByID(gomock.Any(), fromID).Return(sellerAddress(fromID), nil)
		m.buyers.EXPECT().GetByID(gomock.Any(), toID).Return(buyerAddress(toID, true), nil)

		normalizedFrom := address.Address{
			Name:    "Acme Warehouse",
			Street1: "1 WAREHOUSE ROAD",
			City:    "Reno",
			State:   "Nevada",
			Zip:     "89501",
			Country: "US",
			Phone:   "7755551234",
			Email:   "ops@acme.example",
		}

		m.client.EXPECT().CreateAddress(gomock.Any(), gomock.Eq(normalizedFrom)).
			Return(carrier.AddressRef{ID: "addr-from"}, nil)
		m.client.EXPECT().ValidateAddress(gomock.Any(), carrier.AddressRef{ID: "addr-from"}).
			Return(carrier.Validation{IsValid: true}, nil)
		m.client.EXPECT().CreateAddress(gomock.Any(), gomock.Any()).
			Return(carrier.AddressRef{ID: "addr-to"}, nil)
		// Residential recipient: no second ValidateAddress call.
		m.client.EXPECT().CreateParcel(gomock.Any(), carrier.Parcel{
			Length: dec("10"), Width: dec("5"), Height: dec("4"), Weight: dec("2.5"),
		}).Return(carrier.ParcelRef{ID: "parcel-1"}, nil)

		rates := []carrier.Rate{
			{ID: "rate-usps", Provider: "USPS", Amount: dec("12.00"), Currency: "USD"},
			{ID: "rate-fedex", Provider: "FedEx", Amount: dec("9.00"), Currency: "USD"},
		}
		m.client.EXPECT().CreateShipment(gomock.Any(),
			carrier.AddressRef{ID: "addr-from"},
			carrier.AddressRef{ID: "addr-to"},
			carrier.ParcelRef{ID: "parcel-1"},
		).Return(carrier.ShipmentQuote{ID: "shippo-1", Rates: rates}, nil)

		m.shipments.EXPECT().GetByOrderID(gomock.Any(), "order-1").
			Return(nil, repository.ErrObjectNotFound)
		m.shipments.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *repository.Shipment) error {
				assert.Equal(t, "order-1", s.OrderID)
				assert.Equal(t, fromID, s.FromAddressID)
				assert.Equal(t, toID, s.ToAddressID)
				assert.Equal(t, repository.ShipmentStatusPending, s.Status)
				s.ID = uuid.New()
				return nil
			})

		quote, err := svc.CalculateRates(ctx, seller, "order-1", fromID, toID)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, quote.ShipmentID)
		assert.Equal(t, rates, quote.Rates)
	})

	t.Run("commercial recipient is validated strictly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)

		m.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(paidOrder(), nil)
		m.sellers.EXPECT().GetByID(gomock.Any(), fromID).Return(sellerAddress(fromID), nil)
		m.buyers.EXPECT().GetByID(gomock.Any(), toID).Return(buyerAddress(toID, false), nil)

		m.client.EXPECT().CreateAddress(gomock.Any(), gomock.Any()).
			Return(carrier.AddressRef{ID: "addr-from"}, nil)
		m.client.EXPECT().ValidateAddress(gomock.Any(), carrier.AddressRef{ID: "addr-from"}).
			Return(carrier.Validation{IsValid: true}, nil)
		m.client.EXPECT().CreateAddress(gomock.Any(), gomock.Any()).
			Return(carrier.AddressRef{ID: "addr-to"}, nil)
		m.client.EXPECT().ValidateAddress(gomock.Any(), carrier.AddressRef{ID: "addr-to"}).
			Return(carrier.Validation{IsValid: false, Messages: []string{"undeliverable"}}, nil)

		_, err := svc.CalculateRates(ctx, seller, "order-1", fromID, toID)
		require.Error(t, err)
		assert.Equal(t, shipping.KindRemote, shipping.KindOf(err))

		var shipErr *shipping.Error
		require.ErrorAs(t, err, &shipErr)
		assert.Contains(t, shipErr.Messages, "undeliverable")
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		m.orders.EXPECT().GetByID(gomock.Any(), "missing").
			Return(nil, repository.ErrObjectNotFound)

		_, err := svc.CalculateRates(ctx, seller, "missing", fromID, toID)
		assert.Equal(t, shipping.KindNotFound, shipping.KindOf(err))
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		m.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(paidOrder(), nil)

		stranger := shipping.Actor{ID: "someone-else", Role: shipping.RoleBuyer}
		_, err := svc.CalculateRates(ctx, stranger, "order-1", fromID, toID)
		assert.Equal(t, shipping.KindPermission, shipping.KindOf(err))
	})

	t.Run("address owned by another seller reads as missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		m.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(paidOrder(), nil)

		foreign := sellerAddress(fromID)
		foreign.SellerID = "other-seller"
		m.sellers.EXPECT().GetByID(gomock.Any(), fromID).Return(foreign, nil)

		_, err := svc.CalculateRates(ctx, seller, "order-1", fromID, toID)
		assert.Equal(t, shipping.KindNotFound, shipping.KindOf(err))
	})

	t.Run("incomplete dimensions fail before any remote call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		order := paidOrder()
		order.Weight = nil

		m.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil)
		m.sellers.EXPECT().GetByID(gomock.Any(), fromID).Return(sellerAddress(fromID), nil)
		m.buyers.EXPECT().GetByID(gomock.Any(), toID).Return(buyerAddress(toID, true), nil)
		// No expectations on m.client: the carrier must not be touched.

		_, err := svc.CalculateRates(ctx, seller, "order-1", fromID, toID)
		assert.Equal(t, shipping.KindValidation, shipping.KindOf(err))
	})
}

func TestPurchaseLabel(t *testing.T) {
	ctx := context.Background()
	shipmentID := uuid.New()
	fromID := uuid.New()
	toID := uuid.New()
	seller := shipping.Actor{ID: "seller-1", Role: shipping.RoleSeller}

	pendingShipment := func() *repository.Shipment {
		return &repository.Shipment{
			ID:            shipmentID,
			OrderID:       "order-1",
			FromAddressID: fromID,
			ToAddressID:   toID,
			Carrier:       "pending",
			Method:        "pending",
			Status:        repository.ShipmentStatusPending,
		}
	}

	successLabel := carrier.Label{
		TransactionID: "txn-1",
		Status:        carrier.LabelStatusSuccess,
		TrackingNum:   "1Z999",
		TrackingURL:   "https://track.example/1Z999",
		LabelURL:      "https://label.example/1.pdf",
		Carrier:       "USPS",
		Method:        "Priority Mail",
		Cost:          dec("5.50"),
	}

	t.Run("success with explicit rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		shipment := pendingShipment()

		m.shipments.EXPECT().GetByID(gomock.Any(), shipmentID).Return(shipment, nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(paidOrder(), nil)
		m.sellers.EXPECT().GetByID(gomock.Any(), fromID).Return(sellerAddress(fromID), nil)
		m.buyers.EXPECT().GetByID(gomock.Any(), toID).Return(buyerAddress(toID, true), nil)

		m.client.EXPECT().PurchaseLabel(gomock.Any(), "rate-usps").Return(successLabel, nil)

		tx := mock_db.NewMockTx(ctrl)
		m.db.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
		m.shipments.EXPECT().GetByIDTx(gomock.Any(), tx, shipmentID).Return(pendingShipment(), nil)
		m.shipments.EXPECT().SaveLabelTx(gomock.Any(), tx, shipment).Return(nil)
		m.orders.EXPECT().SetTotalAndStatusTx(gomock.Any(), tx, "order-1", dec("55.50"), "processing").Return(nil)
		m.events.EXPECT().CreateTx(gomock.Any(), tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, e *repository.StatusEvent) error {
				assert.Equal(t, shipmentID, e.ShipmentID)
				assert.Equal(t, repository.ShipmentStatusPending, e.Status)
				return nil
			})
		m.outbox.EXPECT().CreateTx(gomock.Any(), tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, task *repository.OutboxTask) error {
				assert.Equal(t, "shipment_status_events", task.Topic)
				assert.Contains(t, string(task.Payload), shipmentID.String())
				return nil
			})
		tx.EXPECT().Commit(gomock.Any()).Return(nil)
		tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()

		m.cache.EXPECT().Set(shipment)

		result, err := svc.PurchaseLabel(ctx, seller, shipmentID, "rate-usps")
		require.NoError(t, err)
		assert.Equal(t, "txn-1", result.TransactionID)
		assert.Equal(t, "rate-usps", result.RateID)
		assert.Equal(t, "1Z999", result.TrackingNumber)
		assert.Equal(t, "USPS", result.Carrier)
		assert.True(t, dec("55.50").Equal(result.OrderTotal))
		assert.True(t, shipment.Purchased())
	})

	t.Run("empty rate picks cheapest preferred carrier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		shipment := pendingShipment()

		m.shipments.EXPECT().GetByID(gomock.Any(), shipmentID).Return(shipment, nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(paidOrder(), nil)
		m.sellers.EXPECT().GetByID(gomock.Any(), fromID).Return(sellerAddress(fromID), nil)
		m.buyers.EXPECT().GetByID(gomock.Any(), toID).Return(buyerAddress(toID, true), nil)

		m.client.EXPECT().CreateAddress(gomock.Any(), gomock.Any()).
			Return(carrier.AddressRef{ID: "addr-from"}, nil)
		m.client.EXPECT().ValidateAddress(gomock.Any(), gomock.Any()).
			Return(carrier.Validation{IsValid: true}, nil)
		m.client.EXPECT().CreateAddress(gomock.Any(), gomock.Any()).
			Return(carrier.AddressRef{ID: "addr-to"}, nil)
		m.client.EXPECT().CreateParcel(gomock.Any(), gomock.Any()).
			Return(carrier.ParcelRef{ID: "parcel-1"}, nil)
		m.client.EXPECT().CreateShipment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(carrier.ShipmentQuote{ID: "shippo-1", Rates: []carrier.Rate{
				{ID: "rate-usps", Provider: "USPS", Amount: dec("12.00")},
				{ID: "rate-fedex", Provider: "FedEx", Amount: dec("9.00")},
				{ID: "rate-dhl", Provider: "DHL Express", Amount: dec("5.00")},
			}}, nil)

		// The cheapest preferred carrier wins even when an unlisted one is
		// cheaper overall.
		m.client.EXPECT().PurchaseLabel(gomock.Any(), "rate-fedex").Return(successLabel, nil)

		tx := mock_db.NewMockTx(ctrl)
		m.db.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
		m.shipments.EXPECT().GetByIDTx(gomock.Any(), tx, shipmentID).Return(pendingShipment(), nil)
		m.shipments.EXPECT().SaveLabelTx(gomock.Any(), tx, shipment).Return(nil)
		m.orders.EXPECT().SetTotalAndStatusTx(gomock.Any(), tx, "order-1", gomock.Any(), "processing").Return(nil)
		m.events.EXPECT().CreateTx(gomock.Any(), tx, gomock.Any()).Return(nil)
		m.outbox.EXPECT().CreateTx(gomock.Any(), tx, gomock.Any()).Return(nil)
		tx.EXPECT().Commit(gomock.Any()).Return(nil)
		tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
		m.cache.EXPECT().Set(shipment)

		result, err := svc.PurchaseLabel(ctx, seller, shipmentID, "")
		require.NoError(t, err)
		assert.Equal(t, "rate-fedex", result.RateID)
	})

	t.Run("empty rate falls back to the first rate when no preferred carrier quotes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		shipment := pendingShipment()

		m.shipments.EXPECT().GetByID(gomock.Any(), shipmentID).Return(shipment, nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(paidOrder(), nil)
		m.sellers.EXPECT().GetByID(gomock.Any(), fromID).Return(sellerAddress(fromID), nil)
		m.buyers.EXPECT().GetByID(gomock.Any(), toID).Return(buyerAddress(toID, true), nil)

		m.client.EXPECT().CreateAddress(gomock.Any(), gomock.Any()).
			Return(carrier.AddressRef{ID: "addr-from"}, nil)
		m.client.EXPECT().ValidateAddress(gomock.Any(), gomock.Any()).
			Return(carrier.Validation{IsValid: true}, nil)
		m.client.EXPECT().CreateAddress(gomock.Any(), gomock.Any()).
			Return(carrier.AddressRef{ID: "addr-to"}, nil)
		m.client.EXPECT().CreateParcel(gomock.Any(), gomock.Any()).
			Return(carrier.ParcelRef{ID: "parcel-1"}, nil)
		m.client.EXPECT().CreateShipment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(carrier.ShipmentQuote{ID: "shippo-1", Rates: []carrier.Rate{
				{ID: "rate-dhl", Provider: "DHL Express", Amount: dec("5.00")},
			}}, nil)

		m.client.EXPECT().PurchaseLabel(gomock.Any(), "rate-dhl").Return(successLabel, nil)

		tx := mock_db.NewMockTx(ctrl)
		m.db.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
		m.shipments.EXPECT().GetByIDTx(gomock.Any(), tx, shipmentID).Return(pendingShipment(), nil)
		m.shipments.EXPECT().SaveLabelTx(gomock.Any(), tx, shipment).Return(nil)
		m.orders.EXPECT().SetTotalAndStatusTx(gomock.Any(), tx, "order-1", gomock.Any(), "processing").Return(nil)
		m.events.EXPECT().CreateTx(gomock.Any(), tx, gomock.Any()).Return(nil)
		m.outbox.EXPECT().CreateTx(gomock.Any(), tx, gomock.Any()).Return(nil)
		tx.EXPECT().Commit(gomock.Any()).Return(nil)
		tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
		m.cache.EXPECT().Set(shipment)

		result, err := svc.PurchaseLabel(ctx, seller, shipmentID, "")
		require.NoError(t, err)
		assert.Equal(t, "rate-dhl", result.RateID)
	})

	t.Run("no available rates is an illegal state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)

		m.shipments.EXPECT().GetByID(gomock.Any(), shipmentID).Return(pendingShipment(), nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(paidOrder(), nil)
		m.sellers.EXPECT().GetByID(gomock.Any(), fromID).Return(sellerAddress(fromID), nil)
		m.buyers.EXPECT().GetByID(gomock.Any(), toID).Return(buyerAddress(toID, true), nil)

		m.client.EXPECT().CreateAddress(gomock.Any(), gomock.Any()).
			Return(carrier.AddressRef{ID: "addr-from"}, nil)
		m.client.EXPECT().ValidateAddress(gomock.Any(), gomock.Any()).
			Return(carrier.Validation{IsValid: true}, nil)
		m.client.EXPECT().CreateAddress(gomock.Any(), gomock.Any()).
			Return(carrier.AddressRef{ID: "addr-to"}, nil)
		m.client.EXPECT().CreateParcel(gomock.Any(), gomock.Any()).
			Return(carrier.ParcelRef{ID: "parcel-1"}, nil)
		m.client.EXPECT().CreateShipment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(carrier.ShipmentQuote{}, carrier.ErrNoRates)
		// No PurchaseLabel and no BeginTx: nothing to buy, nothing to write.

		_, err := svc.PurchaseLabel(ctx, seller, shipmentID, "")
		require.Error(t, err)
		assert.Equal(t, shipping.KindIllegalState, shipping.KindOf(err))
		assert.ErrorIs(t, err, carrier.ErrNoRates)
	})

	t.Run("empty rate list is an illegal state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)

		m.shipments.EXPECT().GetByID(gomock.Any(), shipmentID).Return(pendingShipment(), nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(paidOrder(), nil)
		m.sellers.EXPECT().GetByID(gomock.Any(), fromID).Return(sellerAddress(fromID), nil)
		m.buyers.EXPECT().GetByID(gomock.Any(), toID).Return(buyerAddress(toID, true), nil)

		m.client.EXPECT().CreateAddress(gomock.Any(), gomock.Any()).
			Return(carrier.AddressRef{ID: "addr-from"}, nil)
		m.client.EXPECT().ValidateAddress(gomock.Any(), gomock.Any()).
			Return(carrier.Validation{IsValid: true}, nil)
		m.client.EXPECT().CreateAddress(gomock.Any(), gomock.Any()).
			Return(carrier.AddressRef{ID: "addr-to"}, nil)
		m.client.EXPECT().CreateParcel(gomock.Any(), gomock.Any()).
			Return(carrier.ParcelRef{ID: "parcel-1"}, nil)
		m.client.EXPECT().CreateShipment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(carrier.ShipmentQuote{ID: "shippo-1"}, nil)

		_, err := svc.PurchaseLabel(ctx, seller, shipmentID, "")
		assert.Equal(t, shipping.KindIllegalState, shipping.KindOf(err))
	})

	t.Run("buyer cannot purchase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		m.shipments.EXPECT().GetByID(gomock.Any(), shipmentID).Return(pendingShipment(), nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(paidOrder(), nil)

		buyer := shipping.Actor{ID: "buyer-1", Role: shipping.RoleBuyer}
		_, err := svc.PurchaseLabel(ctx, buyer, shipmentID, "rate-usps")
		assert.Equal(t, shipping.KindPermission, shipping.KindOf(err))
	})

	t.Run("second purchase is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		purchased := pendingShipment()
		txnID := "txn-existing"
		purchased.TransactionID = &txnID

		m.shipments.EXPECT().GetByID(gomock.Any(), shipmentID).Return(purchased, nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(paidOrder(), nil)

		_, err := svc.PurchaseLabel(ctx, seller, shipmentID, "rate-usps")
		assert.Equal(t, shipping.KindIllegalState, shipping.KindOf(err))
	})

	t.Run("unpaid order is rejected before any remote call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		order := paidOrder()
		order.PaymentStatus = "pending"

		m.shipments.EXPECT().GetByID(gomock.Any(), shipmentID).Return(pendingShipment(), nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil)

		_, err := svc.PurchaseLabel(ctx, seller, shipmentID, "rate-usps")
		assert.Equal(t, shipping.KindIllegalState, shipping.KindOf(err))
	})

	t.Run("failed label leaves no trace", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		m.shipments.EXPECT().GetByID(gomock.Any(), shipmentID).Return(pendingShipment(), nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(paidOrder(), nil)
		m.sellers.EXPECT().GetByID(gomock.Any(), fromID).Return(sellerAddress(fromID), nil)
		m.buyers.EXPECT().GetByID(gomock.Any(), toID).Return(buyerAddress(toID, true), nil)

		m.client.EXPECT().PurchaseLabel(gomock.Any(), "rate-usps").Return(carrier.Label{
			Status:   "ERROR",
			Messages: []string{"rate expired"},
		}, nil)
		// No BeginTx expectation: nothing may be written.

		_, err := svc.PurchaseLabel(ctx, seller, shipmentID, "rate-usps")
		require.Error(t, err)
		assert.Equal(t, shipping.KindRemote, shipping.KindOf(err))

		var shipErr *shipping.Error
		require.ErrorAs(t, err, &shipErr)
		assert.Contains(t, shipErr.Messages, "rate expired")
	})

	t.Run("race re-check inside transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		shipment := pendingShipment()

		m.shipments.EXPECT().GetByID(gomock.Any(), shipmentID).Return(shipment, nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(paidOrder(), nil)
		m.sellers.EXPECT().GetByID(gomock.Any(), fromID).Return(sellerAddress(fromID), nil)
		m.buyers.EXPECT().GetByID(gomock.Any(), toID).Return(buyerAddress(toID, true), nil)
		m.client.EXPECT().PurchaseLabel(gomock.Any(), "rate-usps").Return(successLabel, nil)

		racedTxn := "txn-raced"
		raced := pendingShipment()
		raced.TransactionID = &racedTxn

		tx := mock_db.NewMockTx(ctrl)
		m.db.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
		m.shipments.EXPECT().GetByIDTx(gomock.Any(), tx, shipmentID).Return(raced, nil)
		tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		_, err := svc.PurchaseLabel(ctx, seller, shipmentID, "rate-usps")
		assert.Equal(t, shipping.KindIllegalState, shipping.KindOf(err))
	})
}

func TestTrackShipment(t *testing.T) {
	ctx := context.Background()
	shipmentID := uuid.New()
	buyer := shipping.Actor{ID: "buyer-1", Role: shipping.RoleBuyer}

	shipment := &repository.Shipment{
		ID:      shipmentID,
		OrderID: "order-1",
		Status:  repository.ShipmentStatusTransit,
	}

	t.Run("cache hit skips the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		m.cache.EXPECT().Get(shipmentID).Return(shipment, true)
		m.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(paidOrder(), nil)

		events := []*repository.StatusEvent{
			{ID: 2, ShipmentID: shipmentID, Status: repository.ShipmentStatusTransit},
			{ID: 1, ShipmentID: shipmentID, Status: repository.ShipmentStatusPending},
		}
		m.events.EXPECT().ListByShipmentID(gomock.Any(), shipmentID).Return(events, nil)

		snap, err := svc.TrackShipment(ctx, buyer, shipmentID)
		require.NoError(t, err)
		assert.Equal(t, shipment, snap.Shipment)
		assert.Equal(t, events, snap.Events)
	})

	t.Run("cache miss loads and caches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		m.cache.EXPECT().Get(shipmentID).Return(nil, false)
		m.shipments.EXPECT().GetByID(gomock.Any(), shipmentID).Return(shipment, nil)
		m.cache.EXPECT().Set(shipment)
		m.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(paidOrder(), nil)
		m.events.EXPECT().ListByShipmentID(gomock.Any(), shipmentID).Return(nil, nil)

		snap, err := svc.TrackShipment(ctx, buyer, shipmentID)
		require.NoError(t, err)
		assert.Equal(t, shipment, snap.Shipment)
	})

	t.Run("unknown shipment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		m.cache.EXPECT().Get(shipmentID).Return(nil, false)
		m.shipments.EXPECT().GetByID(gomock.Any(), shipmentID).
			Return(nil, repository.ErrObjectNotFound)

		_, err := svc.TrackShipment(ctx, buyer, shipmentID)
		assert.Equal(t, shipping.KindNotFound, shipping.KindOf(err))
	})

	t.Run("stranger cannot track", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		m.cache.EXPECT().Get(shipmentID).Return(shipment, true)
		m.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(paidOrder(), nil)

		stranger := shipping.Actor{ID: "nobody", Role: shipping.RoleBuyer}
		_, err := svc.TrackShipment(ctx, stranger, shipmentID)
		assert.Equal(t, shipping.KindPermission, shipping.KindOf(err))
	})
}
