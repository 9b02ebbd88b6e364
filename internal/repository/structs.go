package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrObjectNotFound = errors.New("not found")

// Shipment statuses as reported to callers and written to the event log.
const (
	ShipmentStatusPending   = "PENDING"
	ShipmentStatusTransit   = "TRANSIT"
	ShipmentStatusDelivered = "DELIVERED"
	ShipmentStatusReturned  = "RETURNED"
	ShipmentStatusFailure   = "FAILURE"
)

type SellerAddress struct {
	ID          uuid.UUID  `db:"id"`
	SellerID    string     `db:"seller_id"`
	Name        string     `db:"name"`
	Company     *string    `db:"company"`
	Street1     string     `db:"street1"`
	Street2     *string    `db:"street2"`
	City        string     `db:"city"`
	State       string     `db:"state"`
	Zip         string     `db:"zip"`
	Country     string     `db:"country"`
	Phone       string     `db:"phone"`
	Email       string     `db:"email"`
	IsDefault   bool       `db:"is_default"`
	IsVerified  bool       `db:"is_verified"`
	IsWarehouse bool       `db:"is_warehouse"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

type BuyerAddress struct {
	ID            uuid.UUID `db:"id"`
	BuyerID       string    `db:"buyer_id"`
	Name          string    `db:"name"`
	Company       *string   `db:"company"`
	Street1       string    `db:"street1"`
	Street2       *string   `db:"street2"`
	City          string    `db:"city"`
	State         string    `db:"state"`
	Zip           string    `db:"zip"`
	Country       string    `db:"country"`
	Phone         string    `db:"phone"`
	Email         string    `db:"email"`
	IsDefault     bool      `db:"is_default"`
	IsVerified    bool      `db:"is_verified"`
	IsResidential bool      `db:"is_residential"`
	Instructions  *string   `db:"instructions"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type Shipment struct {
	ID            uuid.UUID       `db:"id"`
	OrderID       string          `db:"order_id"`
	FromAddressID uuid.UUID       `db:"from_address_id"`
	ToAddressID   uuid.UUID       `db:"to_address_id"`
	TransactionID *string         `db:"transaction_id"`
	RateID        *string         `db:"rate_id"`
	TrackingNum   *string         `db:"tracking_number"`
	TrackingURL   *string         `db:"tracking_url"`
	LabelURL      *string         `db:"label_url"`
	Carrier       string          `db:"carrier"`
	Method        string          `db:"method"`
	Cost          decimal.Decimal `db:"cost"`
	Status        string          `db:"status"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
	ShippedAt     *time.Time      `db:"shipped_at"`
	DeliveredAt   *time.Time      `db:"delivered_at"`
}

// Purchased reports whether a label has already been bought for this shipment.
func (s *Shipment) Purchased() bool {
	return s.TransactionID != nil && *s.TransactionID != ""
}

type StatusEvent struct {
	ID          int64     `db:"id"`
	ShipmentID  uuid.UUID `db:"shipment_id"`
	Status      string    `db:"status"`
	Location    *string   `db:"location"`
	Description *string   `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// Order is the slice of the orders subsystem the shipping workflow needs:
// ownership, product dimensions, pricing and payment state.
type Order struct {
	ID            string           `db:"id"`
	BuyerID       string           `db:"buyer_id"`
	SellerID      string           `db:"seller_id"`
	Quantity      int              `db:"quantity"`
	Price         decimal.Decimal  `db:"price"`
	Length        *decimal.Decimal `db:"length"`
	Width         *decimal.Decimal `db:"width"`
	Height        *decimal.Decimal `db:"height"`
	Weight        *decimal.Decimal `db:"weight"`
	TotalPrice    decimal.Decimal  `db:"total_price"`
	Status        string           `db:"status"`
	PaymentStatus string           `db:"payment_status"`
}

// PaymentCompleted reports whether the order has a completed payment.
func (o *Order) PaymentCompleted() bool {
	return o.PaymentStatus == "completed"
}

type User struct {
	ID       string `db:"id"`
	Username string `db:"username"`
	Password string `db:"password"`
	Role     string `db:"role"`
}

type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "CREATED"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusFailed     TaskStatus = "FAILED"
	TaskStatusDone       TaskStatus = "DONE"
)

type OutboxTask struct {
	ID          uuid.UUID       `db:"id"`
	Status      TaskStatus      `db:"status"`
	Payload     json.RawMessage `db:"payload"`
	Topic       string          `db:"topic"`
	Attempts    int             `db:"attempts"`
	LastError   *string         `db:"last_error"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}

// StatusEventPayload is what the outbox publisher puts on the wire for
// every shipment status transition.
type StatusEventPayload struct {
	ShipmentID  string    `json:"shipment_id"`
	OrderID     string    `json:"order_id"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
