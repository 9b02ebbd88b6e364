//go:generate mockgen -source ./client.go -destination=./mocks/client.go -package=mock_carrier
// Package carrier defines the boundary to the external carrier-aggregation
// service: address registration and validation, parcel and shipment
// creation, and label purchase.
package carrier

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/abdiesu04/nexus/internal/address"
)

// LabelStatusSuccess is the provider status that commits a purchase.
const LabelStatusSuccess = "SUCCESS"

var ErrNoRates = errors.New("no shipping rates available for this shipment")

// AddressRef identifies an address registered with the remote service.
type AddressRef struct {
	ID string
}

// Validation is the outcome of a remote address check.
type Validation struct {
	IsValid  bool
	Messages []string
}

// Parcel carries the package dimensions submitted for rating. Dimensions
// are inches, weight is pounds.
type Parcel struct {
	Length decimal.Decimal
	Width  decimal.Decimal
	Height decimal.Decimal
	Weight decimal.Decimal
}

// Complete reports whether every dimension is present and positive.
func (p Parcel) Complete() bool {
	for _, d := range []decimal.Decimal{p.Length, p.Width, p.Height, p.Weight} {
		if !d.IsPositive() {
			return false
		}
	}
	return true
}

// ParcelRef identifies a parcel registered with the remote service.
type ParcelRef struct {
	ID string
}

// Rate is one priced carrier and service-level offer.
type Rate struct {
	ID            string          `json:"id"`
	Provider      string          `json:"provider"`
	Service       string          `json:"service"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	EstimatedDays int             `json:"estimated_days"`
}

// ShipmentQuote is the result of registering a shipment: its remote id and
// the candidate rates.
type ShipmentQuote struct {
	ID    string
	Rates []Rate
}

// Label is a purchased shipping label plus its tracking identifiers.
type Label struct {
	TransactionID string          `json:"transaction_id"`
	Status        string          `json:"status"`
	TrackingNum   string          `json:"tracking_number"`
	TrackingURL   string          `json:"tracking_url"`
	LabelURL      string          `json:"label_url"`
	Carrier       string          `json:"carrier"`
	Method        string          `json:"method"`
	Cost          decimal.Decimal `json:"cost"`
	Messages      []string        `json:"messages,omitempty"`
}

// Client is the capability interface to the carrier-aggregation service.
// Every call is synchronous and independently failable; callers decide how
// a failure at one step affects the rest of their workflow.
type Client interface {
	CreateAddress(ctx context.Context, addr address.Address) (AddressRef, error)
	ValidateAddress(ctx context.Context, ref AddressRef) (Validation, error)
	CreateParcel(ctx context.Context, parcel Parcel) (ParcelRef, error)
	CreateShipment(ctx context.Context, from, to AddressRef, parcel ParcelRef) (ShipmentQuote, error)
	PurchaseLabel(ctx context.Context, rateID string) (Label, error)
}
