package carrier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/abdiesu04/nexus/internal/address"
)

// maxResponseSize caps what we read from the Shippo API (10MB).
const maxResponseSize = 10 * 1024 * 1024

// ShippoClient is a thin adapter over the Shippo REST API. It never
// retries; a failed call surfaces immediately with the provider messages
// attached.
type ShippoClient struct {
	config     *ShippoConfig
	httpClient *http.Client
	logger     *zap.Logger
}

var _ Client = (*ShippoClient)(nil)

func NewShippoClient(config *ShippoConfig, logger *zap.Logger) (*ShippoClient, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &ShippoClient{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		logger:     logger,
	}, nil
}

type shippoAddressRequest struct {
	Name        string `json:"name"`
	Company     string `json:"company,omitempty"`
	Street1     string `json:"street1"`
	Street2     string `json:"street2,omitempty"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	Country     string `json:"country"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Residential bool   `json:"residential,omitempty"`
	Validate    bool   `json:"validate"`
}

type shippoMessage struct {
	Text string `json:"text"`
}

func messageTexts(msgs []shippoMessage) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		if m.Text != "" {
			out = append(out, m.Text)
		}
	}
	return out
}

type shippoAddressResponse struct {
	ObjectID          string `json:"object_id"`
	ValidationResults *struct {
		IsValid  bool            `json:"is_valid"`
		Messages []shippoMessage `json:"messages"`
	} `json:"validation_results"`
}

func (c *ShippoClient) CreateAddress(ctx context.Context, addr address.Address) (AddressRef, error) {
	req := shippoAddressRequest{
		Name:        addr.Name,
		Company:     addr.Company,
		Street1:     addr.Street1,
		Street2:     addr.Street2,
		City:        addr.City,
		State:       addr.State,
		Zip:         addr.Zip,
		Country:     addr.Country,
		Phone:       addr.Phone,
		Email:       addr.Email,
		Residential: addr.Residential,
	}

	var resp shippoAddressResponse
	if err := c.post(ctx, "/addresses/", req, &resp); err != nil {
		return AddressRef{}, fmt.Errorf("shippo: failed to create address: %w", err)
	}

	c.logger.Debug("Created Shippo address", zap.String("object_id", resp.ObjectID))
	return AddressRef{ID: resp.ObjectID}, nil
}

func (c *ShippoClient) ValidateAddress(ctx context.Context, ref AddressRef) (Validation, error) {
	var resp shippoAddressResponse
	path := "/addresses/" + url.PathEscape(ref.ID) + "/validate/"
	if err := c.get(ctx, path, &resp); err != nil {
		return Validation{}, fmt.Errorf("shippo: failed to validate address: %w", err)
	}

	// No validation block in the response means the provider had nothing
	// to object to.
	if resp.ValidationResults == nil {
		return Validation{IsValid: true, Messages: []string{"Address accepted without validation"}}, nil
	}

	return Validation{
		IsValid:  resp.ValidationResults.IsValid,
		Messages: messageTexts(resp.ValidationResults.Messages),
	}, nil
}

type shippoParcelRequest struct {
	Length       string `json:"length"`
	Width        string `json:"width"`
	Height       string `json:"height"`
	Weight       string `json:"weight"`
	DistanceUnit string `json:"distance_unit"`
	MassUnit     string `json:"mass_unit"`
}

type shippoParcelResponse struct {
	ObjectID string `json:"object_id"`
}

func (c *ShippoClient) CreateParcel(ctx context.Context, parcel Parcel) (ParcelRef, error) {
	if !parcel.Complete() {
		return ParcelRef{}, fmt.Errorf("shippo: parcel dimensions must all be present and positive")
	}

	req := shippoParcelRequest{
		Length:       parcel.Length.String(),
		Width:        parcel.Width.String(),
		Height:       parcel.Height.String(),
		Weight:       parcel.Weight.String(),
		DistanceUnit: "in",
		MassUnit:     "lb",
	}

	var resp shippoParcelResponse
	if err := c.post(ctx, "/parcels/", req, &resp); err != nil {
		return ParcelRef{}, fmt.Errorf("shippo: failed to create parcel: %w", err)
	}

	c.logger.Debug("Created Shippo parcel", zap.String("object_id", resp.ObjectID))
	return ParcelRef{ID: resp.ObjectID}, nil
}

type shippoShipmentRequest struct {
	AddressFrom string   `json:"address_from"`
	AddressTo   string   `json:"address_to"`
	Parcels     []string `json:"parcels"`
	Async       bool     `json:"async"`
}

type shippoRate struct {
	ObjectID     string `json:"object_id"`
	Provider     string `json:"provider"`
	ServiceLevel struct {
		Name string `json:"name"`
	} `json:"servicelevel"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	EstimatedDays int    `json:"estimated_days"`
}

func (r shippoRate) toRate() (Rate, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return Rate{}, fmt.Errorf("rate %s has invalid amount %q: %w", r.ObjectID, r.Amount, err)
	}
	return Rate{
		ID:            r.ObjectID,
		Provider:      r.Provider,
		Service:       r.ServiceLevel.Name,
		Amount:        amount,
		Currency:      r.Currency,
		EstimatedDays: r.EstimatedDays,
	}, nil
}

type shippoShipmentResponse struct {
	ObjectID string          `json:"object_id"`
	Rates    []shippoRate    `json:"rates"`
	Messages []shippoMessage `json:"messages"`
}

func (c *ShippoClient) CreateShipment(ctx context.Context, from, to AddressRef, parcel ParcelRef) (ShipmentQuote, error) {
	req := shippoShipmentRequest{
		AddressFrom: from.ID,
		AddressTo:   to.ID,
		Parcels:     []string{parcel.ID},
		Async:       false,
	}

	var resp shippoShipmentResponse
	if err := c.post(ctx, "/shipments/", req, &resp); err != nil {
		return ShipmentQuote{}, fmt.Errorf("shippo: failed to create shipment: %w", err)
	}

	if len(resp.Rates) == 0 {
		if msgs := messageTexts(resp.Messages); len(msgs) > 0 {
			return ShipmentQuote{}, fmt.Errorf("%w: %s", ErrNoRates, strings.Join(msgs, "; "))
		}
		return ShipmentQuote{}, ErrNoRates
	}

	quote := ShipmentQuote{ID: resp.ObjectID, Rates: make([]Rate, 0, len(resp.Rates))}
	for _, r := range resp.Rates {
		rate, err := r.toRate()
		if err != nil {
			return ShipmentQuote{}, fmt.Errorf("shippo: malformed rate in response: %w", err)
		}
		quote.Rates = append(quote.Rates, rate)
	}

	c.logger.Debug("Created Shippo shipment",
		zap.String("object_id", resp.ObjectID),
		zap.Int("rates", len(quote.Rates)))
	return quote, nil
}

type shippoTransactionRequest struct {
	Rate          string `json:"rate"`
	Async         bool   `json:"async"`
	LabelFileType string `json:"label_file_type"`
}

type shippoTransactionResponse struct {
	ObjectID       string          `json:"object_id"`
	Status         string          `json:"status"`
	TrackingNumber string          `json:"tracking_number"`
	TrackingURL    string          `json:"tracking_url_provider"`
	LabelURL       string          `json:"label_url"`
	Rate           string          `json:"rate"`
	Messages       []shippoMessage `json:"messages"`
}

func (c *ShippoClient) PurchaseLabel(ctx context.Context, rateID string) (Label, error) {
	req := shippoTransactionRequest{
		Rate:          rateID,
		Async:         false,
		LabelFileType: "PDF",
	}

	var resp shippoTransactionResponse
	if err := c.post(ctx, "/transactions/", req, &resp); err != nil {
		return Label{}, fmt.Errorf("shippo: failed to purchase label: %w", err)
	}

	label := Label{
		TransactionID: resp.ObjectID,
		Status:        resp.Status,
		TrackingNum:   resp.TrackingNumber,
		TrackingURL:   resp.TrackingURL,
		LabelURL:      resp.LabelURL,
		Messages:      messageTexts(resp.Messages),
	}

	if resp.Status != LabelStatusSuccess {
		// Caller inspects the status; the provider messages travel along.
		return label, nil
	}

	// The transaction references the rate by id only; resolve it to fill
	// in carrier, service level and cost.
	rate, err := c.getRate(ctx, resp.Rate)
	if err != nil {
		return Label{}, fmt.Errorf("shippo: label purchased but rate lookup failed: %w", err)
	}
	label.Carrier = rate.Provider
	label.Method = rate.Service
	label.Cost = rate.Amount

	c.logger.Info("Purchased Shippo label",
		zap.String("transaction_id", label.TransactionID),
		zap.String("carrier", label.Carrier),
		zap.String("tracking_number", label.TrackingNum))
	return label, nil
}

func (c *ShippoClient) getRate(ctx context.Context, rateID string) (Rate, error) {
	var resp shippoRate
	if err := c.get(ctx, "/rates/"+url.PathEscape(rateID), &resp); err != nil {
		return Rate{}, err
	}
	return resp.toRate()
}

func (c *ShippoClient) post(ctx context.Context, path string, body, dest interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(payload), dest)
}

func (c *ShippoClient) get(ctx context.Context, path string, dest interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, dest)
}

func (c *ShippoClient) do(ctx context.Context, method, path string, body io.Reader, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "ShippoToken "+c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(string(data), 512))
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
