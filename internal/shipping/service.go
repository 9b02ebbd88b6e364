//go:generate mockgen -source ./service.go -destination=./mocks/service.go -package=mock_shipping
// Package shipping drives the rate-calculation and label-purchase workflow
// against the carrier-aggregation service and owns the Shipment and
// ShipmentStatusEvent records.
package shipping

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/abdiesu04/nexus/internal/address"
	"github.com/abdiesu04/nexus/internal/carrier"
	"github.com/abdiesu04/nexus/internal/db"
	"github.com/abdiesu04/nexus/internal/metrics"
	"github.com/abdiesu04/nexus/internal/repository"
)

// preferredCarriers is the allowlist used when the caller lets the service
// pick a rate: the cheapest offer from one of these wins.
var preferredCarriers = []string{"USPS", "UPS", "FEDEX"}

type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*repository.Order, error)
	SetTotalAndStatusTx(ctx context.Context, tx db.Tx, id string, total decimal.Decimal, status string) error
}

type ShipmentRepository interface {
	Create(ctx context.Context, s *repository.Shipment) error
	GetByID(ctx context.Context, id uuid.UUID) (*repository.Shipment, error)
	GetByOrderID(ctx context.Context, orderID string) (*repository.Shipment, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.Shipment, error)
	UpdateAddresses(ctx context.Context, id, fromID, toID uuid.UUID) error
	SaveLabelTx(ctx context.Context, tx db.Tx, s *repository.Shipment) error
}

type SellerAddressRepository interface {
	Create(ctx context.Context, addr *repository.SellerAddress) error
	GetByID(ctx context.Context, id uuid.UUID) (*repository.SellerAddress, error)
	ListByOwner(ctx context.Context, sellerID string) ([]*repository.SellerAddress, error)
	Update(ctx context.Context, addr *repository.SellerAddress) error
	Delete(ctx context.Context, id uuid.UUID, sellerID string) error
	SetDefault(ctx context.Context, id uuid.UUID, sellerID string) error
	MarkVerified(ctx context.Context, id uuid.UUID) error
}

type BuyerAddressRepository interface {
	Create(ctx context.Context, addr *repository.BuyerAddress) error
	GetByID(ctx context.Context, id uuid.UUID) (*repository.BuyerAddress, error)
	ListByOwner(ctx context.Context, buyerID string) ([]*repository.BuyerAddress, error)
	Update(ctx context.Context, addr *repository.BuyerAddress) error
	Delete(ctx context.Context, id uuid.UUID, buyerID string) error
	SetDefault(ctx context.Context, id uuid.UUID, buyerID string) error
	MarkVerified(ctx context.Context, id uuid.UUID) error
}

type StatusEventRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, e *repository.StatusEvent) error
	ListByShipmentID(ctx context.Context, shipmentID uuid.UUID) ([]*repository.StatusEvent, error)
}

type OutboxRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
}

// ShipmentCache keeps recently used shipments in memory for the read-heavy
// tracking path.
type ShipmentCache interface {
	Get(id uuid.UUID) (*repository.Shipment, bool)
	Set(s *repository.Shipment)
	Delete(id uuid.UUID)
}

// Service is the shipment orchestrator.
type Service struct {
	db          db.DB
	client      carrier.Client
	orders      OrderRepository
	shipments   ShipmentRepository
	sellerAddrs SellerAddressRepository
	buyerAddrs  BuyerAddressRepository
	events      StatusEventRepository
	outbox      OutboxRepository
	cache       ShipmentCache
	logger      *zap.Logger
	eventTopic  string

	purchases *purchaseLocks
	timeNow   func() time.Time
}

func NewService(
	db db.DB,
	client carrier.Client,
	orders OrderRepository,
	shipments ShipmentRepository,
	sellerAddrs SellerAddressRepository,
	buyerAddrs BuyerAddressRepository,
	events StatusEventRepository,
	outbox OutboxRepository,
	cache ShipmentCache,
	logger *zap.Logger,
	eventTopic string,
) *Service {
	return &Service{
		db:          db,
		client:      client,
		orders:      orders,
		shipments:   shipments,
		sellerAddrs: sellerAddrs,
		buyerAddrs:  buyerAddrs,
		events:      events,
		outbox:      outbox,
		cache:       cache,
		logger:      logger,
		eventTopic:  eventTopic,
		purchases:   newPurchaseLocks(),
		timeNow:     func() time.Time { return time.Now().UTC() },
	}
}

// CalculateRates runs the quoting sequence for an order and records the
// shipment row on first success. No partial shipment is created when any
// step fails.
func (s *Service) CalculateRates(ctx context.Context, actor Actor, orderID string, fromID, toID uuid.UUID) (*RateQuote, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, notFoundError("order %s not found", orderID)
		}
		return nil, internalError("failed to load order", err)
	}

	if !actor.IsAdmin() && actor.ID != order.BuyerID && actor.ID != order.SellerID {
		return nil, permissionError("you do not have permission to access this order")
	}

	from, err := s.sellerAddrs.GetByID(ctx, fromID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, notFoundError("sender address %s not found", fromID)
		}
		return nil, internalError("failed to load sender address", err)
	}
	if from.SellerID != order.SellerID {
		return nil, notFoundError("sender address %s not found", fromID)
	}

	to, err := s.buyerAddrs.GetByID(ctx, toID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, notFoundError("recipient address %s not found", toID)
		}
		return nil, internalError("failed to load recipient address", err)
	}
	if to.BuyerID != order.BuyerID {
		return nil, notFoundError("recipient address %s not found", toID)
	}

	quote, err := s.runQuoteSequence(ctx, order, from, to)
	if err != nil {
		return nil, err
	}

	shipment, err := s.upsertShipment(ctx, order.ID, from.ID, to.ID)
	if err != nil {
		return nil, err
	}

	metrics.RatesCalculatedTotal.Inc()
	s.logger.Info("Calculated shipping rates",
		zap.String("order_id", order.ID),
		zap.String("shipment_id", shipment.ID.String()),
		zap.Int("rates", len(quote.Rates)))

	return &RateQuote{ShipmentID: shipment.ID, Rates: quote.Rates}, nil
}

// PurchaseLabel buys a label for the shipment. When rateID is empty the
// quoting sequence runs again and the cheapest preferred-carrier rate is
// chosen. At most one label is ever purchased per shipment.
func (s *Service) PurchaseLabel(ctx context.Context, actor Actor, shipmentID uuid.UUID, rateID string) (*LabelResult, error) {
	unlock := s.purchases.Lock(shipmentID.String())
	defer unlock()

	shipment, err := s.shipments.GetByID(ctx, shipmentID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, notFoundError("shipment %s not found", shipmentID)
		}
		return nil, internalError("failed to load shipment", err)
	}

	order, err := s.orders.GetByID(ctx, shipment.OrderID)
	if err != nil {
		return nil, internalError("failed to load order for shipment", err)
	}

	if !actor.IsAdmin() && actor.ID != order.SellerID {
		return nil, permissionError("only the seller of this product or an admin can purchase shipping labels")
	}

	if shipment.Purchased() {
		metrics.PurchaseConflictsTotal.Inc()
		return nil, illegalStateError("a label has already been purchased for this shipment")
	}

	if !order.PaymentCompleted() {
		return nil, illegalStateError("cannot purchase a shipping label for an unpaid order")
	}

	if _, err := parcelFromOrder(order); err != nil {
		return nil, err
	}

	if shipment.FromAddressID == uuid.Nil || shipment.ToAddressID == uuid.Nil {
		return nil, validationError("shipment addresses are not set")
	}

	from, err := s.sellerAddrs.GetByID(ctx, shipment.FromAddressID)
	if err != nil {
		return nil, internalError("failed to load sender address", err)
	}
	to, err := s.buyerAddrs.GetByID(ctx, shipment.ToAddressID)
	if err != nil {
		return nil, internalError("failed to load recipient address", err)
	}

	if rateID == "" {
		quote, err := s.runQuoteSequence(ctx, order, from, to)
		if err != nil {
			return nil, err
		}
		rate := selectRate(quote.Rates)
		rateID = rate.ID
		s.logger.Info("Selected rate for label purchase",
			zap.String("shipment_id", shipmentID.String()),
			zap.String("rate_id", rate.ID),
			zap.String("provider", rate.Provider),
			zap.String("amount", rate.Amount.String()))
	}

	label, err := s.client.PurchaseLabel(ctx, rateID)
	if err != nil {
		metrics.RemoteErrorsTotal.WithLabelValues("purchase_label").Inc()
		return nil, remoteError("purchase label", err)
	}
	if label.Status != carrier.LabelStatusSuccess {
		metrics.RemoteErrorsTotal.WithLabelValues("purchase_label").Inc()
		return nil, &Error{
			Kind:     KindRemote,
			Message:  "label purchase failed with status " + label.Status,
			Messages: label.Messages,
		}
	}

	total, err := s.persistLabel(ctx, shipment, order, rateID, label)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(shipment)
	}
	metrics.LabelsPurchasedTotal.Inc()
	s.logger.Info("Purchased shipping label",
		zap.String("shipment_id", shipment.ID.String()),
		zap.String("order_id", order.ID),
		zap.String("carrier", label.Carrier),
		zap.String("tracking_number", label.TrackingNum))

	return &LabelResult{
		ShipmentID:     shipment.ID,
		TransactionID:  label.TransactionID,
		RateID:         rateID,
		TrackingNumber: label.TrackingNum,
		TrackingURL:    label.TrackingURL,
		LabelURL:       label.LabelURL,
		Carrier:        label.Carrier,
		Method:         label.Method,
		Cost:           label.Cost,
		OrderTotal:     total,
	}, nil
}

// TrackShipment returns the shipment snapshot with its event history.
func (s *Service) TrackShipment(ctx context.Context, actor Actor, shipmentID uuid.UUID) (*Snapshot, error) {
	var shipment *repository.Shipment
	if s.cache != nil {
		if cached, ok := s.cache.Get(shipmentID); ok {
			shipment = cached
		}
	}
	if shipment == nil {
		loaded, err := s.shipments.GetByID(ctx, shipmentID)
		if err != nil {
			if errors.Is(err, repository.ErrObjectNotFound) {
				return nil, notFoundError("shipment %s not found", shipmentID)
			}
			return nil, internalError("failed to load shipment", err)
		}
		shipment = loaded
		if s.cache != nil {
			s.cache.Set(shipment)
		}
	}

	order, err := s.orders.GetByID(ctx, shipment.OrderID)
	if err != nil {
		return nil, internalError("failed to load order for shipment", err)
	}
	if !actor.IsAdmin() && actor.ID != order.BuyerID && actor.ID != order.SellerID {
		return nil, permissionError("you do not have permission to track this shipment")
	}

	events, err := s.events.ListByShipmentID(ctx, shipmentID)
	if err != nil {
		return nil, internalError("failed to load status events", err)
	}

	return &Snapshot{Shipment: shipment, Events: events}, nil
}

// runQuoteSequence performs the ordered remote workflow: normalize both
// addresses, create and validate the sender strictly, create the recipient
// and validate it unless residential, create the parcel, create the
// shipment. The first failing step aborts the rest.
func (s *Service) runQuoteSequence(ctx context.Context, order *repository.Order, from *repository.SellerAddress, to *repository.BuyerAddress) (carrier.ShipmentQuote, error) {
	parcel, perr := parcelFromOrder(order)
	if perr != nil {
		return carrier.ShipmentQuote{}, perr
	}

	fromAddr := address.Normalize(sellerToAddress(from))
	toAddr := address.Normalize(buyerToAddress(to))

	fromRef, err := s.client.CreateAddress(ctx, fromAddr)
	if err != nil {
		metrics.RemoteErrorsTotal.WithLabelValues("create_sender_address").Inc()
		return carrier.ShipmentQuote{}, remoteError("create sender address", err)
	}

	validation, err := s.client.ValidateAddress(ctx, fromRef)
	if err != nil {
		metrics.RemoteErrorsTotal.WithLabelValues("validate_sender_address").Inc()
		return carrier.ShipmentQuote{}, remoteError("validate sender address", err)
	}
	if !validation.IsValid {
		metrics.RemoteErrorsTotal.WithLabelValues("validate_sender_address").Inc()
		return carrier.ShipmentQuote{}, remoteError("validate sender address", nil, validation.Messages...)
	}

	toRef, err := s.client.CreateAddress(ctx, toAddr)
	if err != nil {
		metrics.RemoteErrorsTotal.WithLabelValues("create_recipient_address").Inc()
		return carrier.ShipmentQuote{}, remoteError("create recipient address", err)
	}

	if to.IsResidential {
		s.logger.Debug("Skipping validation for residential address",
			zap.String("address_id", to.ID.String()))
	} else {
		validation, err := s.client.ValidateAddress(ctx, toRef)
		if err != nil {
			metrics.RemoteErrorsTotal.WithLabelValues("validate_recipient_address").Inc()
			return carrier.ShipmentQuote{}, remoteError("validate recipient address", err)
		}
		if !validation.IsValid {
			metrics.RemoteErrorsTotal.WithLabelValues("validate_recipient_address").Inc()
			return carrier.ShipmentQuote{}, remoteError("validate recipient address", nil, validation.Messages...)
		}
	}

	parcelRef, err := s.client.CreateParcel(ctx, parcel)
	if err != nil {
		metrics.RemoteErrorsTotal.WithLabelValues("create_parcel").Inc()
		return carrier.ShipmentQuote{}, remoteError("create parcel", err)
	}

	quote, err := s.client.CreateShipment(ctx, fromRef, toRef, parcelRef)
	if err != nil {
		if errors.Is(err, carrier.ErrNoRates) {
			return carrier.ShipmentQuote{}, &Error{
				Kind:    KindIllegalState,
				Message: "no shipping rates available for this shipment",
				Err:     err,
			}
		}
		metrics.RemoteErrorsTotal.WithLabelValues("create_shipment").Inc()
		return carrier.ShipmentQuote{}, remoteError("create shipment", err)
	}
	if len(quote.Rates) == 0 {
		return carrier.ShipmentQuote{}, illegalStateError("no shipping rates available for this shipment")
	}

	return quote, nil
}

// upsertShipment records the shipment row for an order after the first
// successful rate calculation, or repoints its addresses on later ones.
func (s *Service) upsertShipment(ctx context.Context, orderID string, fromID, toID uuid.UUID) (*repository.Shipment, error) {
	existing, err := s.shipments.GetByOrderID(ctx, orderID)
	if err == nil {
		if !existing.Purchased() {
			if err := s.shipments.UpdateAddresses(ctx, existing.ID, fromID, toID); err != nil {
				return nil, internalError("failed to update shipment addresses", err)
			}
			existing.FromAddressID = fromID
			existing.ToAddressID = toID
		}
		return existing, nil
	}
	if !errors.Is(err, repository.ErrObjectNotFound) {
		return nil, internalError("failed to load shipment for order", err)
	}

	shipment := &repository.Shipment{
		OrderID:       orderID,
		FromAddressID: fromID,
		ToAddressID:   toID,
		Carrier:       "pending",
		Method:        "pending",
		Cost:          decimal.Zero,
		Status:        repository.ShipmentStatusPending,
	}
	if err := s.shipments.Create(ctx, shipment); err != nil {
		return nil, internalError("failed to create shipment", err)
	}
	return shipment, nil
}

// persistLabel commits the purchased label, the recomputed order total and
// the PENDING status event in one transaction.
func (s *Service) persistLabel(ctx context.Context, shipment *repository.Shipment, order *repository.Order, rateID string, label carrier.Label) (decimal.Decimal, error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return decimal.Zero, internalError("failed to begin transaction", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	locked, err := s.shipments.GetByIDTx(ctx, tx, shipment.ID)
	if err != nil {
		return decimal.Zero, internalError("failed to lock shipment", err)
	}
	if locked.Purchased() {
		metrics.PurchaseConflictsTotal.Inc()
		return decimal.Zero, illegalStateError("a label has already been purchased for this shipment")
	}

	shipment.TransactionID = &label.TransactionID
	shipment.RateID = &rateID
	shipment.TrackingNum = &label.TrackingNum
	shipment.TrackingURL = &label.TrackingURL
	shipment.LabelURL = &label.LabelURL
	shipment.Carrier = label.Carrier
	shipment.Method = label.Method
	shipment.Cost = label.Cost
	shipment.Status = repository.ShipmentStatusPending

	if err := s.shipments.SaveLabelTx(ctx, tx, shipment); err != nil {
		return decimal.Zero, internalError("failed to save label", err)
	}

	total := order.Price.Mul(decimal.NewFromInt(int64(order.Quantity))).Add(label.Cost)
	if err := s.orders.SetTotalAndStatusTx(ctx, tx, order.ID, total, "processing"); err != nil {
		return decimal.Zero, internalError("failed to update order", err)
	}

	description := "Shipping label created"
	event := &repository.StatusEvent{
		ShipmentID:  shipment.ID,
		Status:      repository.ShipmentStatusPending,
		Description: &description,
	}
	if err := s.events.CreateTx(ctx, tx, event); err != nil {
		return decimal.Zero, internalError("failed to record status event", err)
	}

	payload, err := json.Marshal(repository.StatusEventPayload{
		ShipmentID:  shipment.ID.String(),
		OrderID:     order.ID,
		Status:      repository.ShipmentStatusPending,
		Description: description,
		OccurredAt:  s.timeNow(),
	})
	if err != nil {
		return decimal.Zero, internalError("failed to encode status event payload", err)
	}
	if err := s.outbox.CreateTx(ctx, tx, &repository.OutboxTask{
		Topic:   s.eventTopic,
		Payload: payload,
	}); err != nil {
		return decimal.Zero, internalError("failed to enqueue status event", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return decimal.Zero, internalError("failed to commit label purchase", err)
	}
	return total, nil
}

// selectRate picks the cheapest rate from a preferred carrier, falling
// back to the first rate returned. Callers guarantee rates is non-empty.
func selectRate(rates []carrier.Rate) carrier.Rate {
	var best *carrier.Rate
	for i := range rates {
		if !isPreferredCarrier(rates[i].Provider) {
			continue
		}
		if best == nil || rates[i].Amount.LessThan(best.Amount) {
			best = &rates[i]
		}
	}
	if best != nil {
		return *best
	}
	return rates[0]
}

func isPreferredCarrier(provider string) bool {
	upper := strings.ToUpper(provider)
	for _, p := range preferredCarriers {
		if upper == p {
			return true
		}
	}
	return false
}

// parcelFromOrder builds the parcel from the product dimensions stored on
// the order, failing before any remote call when one is missing or not
// positive.
func parcelFromOrder(order *repository.Order) (carrier.Parcel, error) {
	dims := []*decimal.Decimal{order.Length, order.Width, order.Height, order.Weight}
	for _, d := range dims {
		if d == nil || !d.IsPositive() {
			return carrier.Parcel{}, validationError("product dimensions are incomplete")
		}
	}
	return carrier.Parcel{
		Length: *order.Length,
		Width:  *order.Width,
		Height: *order.Height,
		Weight: *order.Weight,
	}, nil
}

func sellerToAddress(a *repository.SellerAddress) address.Address {
	return address.Address{
		Name:    a.Name,
		Company: deref(a.Company),
		Street1: a.Street1,
		Street2: deref(a.Street2),
		City:    a.City,
		State:   a.State,
		Zip:     a.Zip,
		Country: a.Country,
		Phone:   a.Phone,
		Email:   a.Email,
	}
}

func buyerToAddress(a *repository.BuyerAddress) address.Address {
	return address.Address{
		Name:        a.Name,
		Company:     deref(a.Company),
		Street1:     a.Street1,
		Street2:     deref(a.Street2),
		City:        a.City,
		State:       a.State,
		Zip:         a.Zip,
		Country:     a.Country,
		Phone:       a.Phone,
		Email:       a.Email,
		Residential: a.IsResidential,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
