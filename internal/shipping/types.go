package shipping

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/abdiesu04/nexus/internal/carrier"
	"github.com/abdiesu04/nexus/internal/repository"
)

// Actor is the authenticated caller of a shipping operation.
type Actor struct {
	ID   string
	Role string
}

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// RateQuote is the result of a successful rate calculation.
type RateQuote struct {
	ShipmentID uuid.UUID      `json:"shipment_id"`
	Rates      []carrier.Rate `json:"rates"`
}

// LabelResult is returned after a successful label purchase.
type LabelResult struct {
	ShipmentID     uuid.UUID       `json:"shipment_id"`
	TransactionID  string          `json:"transaction_id"`
	RateID         string          `json:"rate_id"`
	TrackingNumber string          `json:"tracking_number"`
	TrackingURL    string          `json:"tracking_url"`
	LabelURL       string          `json:"label_url"`
	Carrier        string          `json:"carrier"`
	Method         string          `json:"method"`
	Cost           decimal.Decimal `json:"cost"`
	OrderTotal     decimal.Decimal `json:"order_total"`
}

// Snapshot is the current shipment state plus its full event history,
// newest first.
type Snapshot struct {
	Shipment *repository.Shipment      `json:"shipment"`
	Events   []*repository.StatusEvent `json:"events"`
}
