package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type calculateRatesRequest struct {
	OrderID       string    `json:"order_id"`
	FromAddressID uuid.UUID `json:"from_address_id"`
	ToAddressID   uuid.UUID `json:"to_address_id"`
}

func (s *Server) handleCalculateRates(w http.ResponseWriter, r *http.Request) {
	var req calculateRatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.OrderID == "" {
		respondError(w, http.StatusBadRequest, "order_id is required")
		return
	}
	if req.FromAddressID == uuid.Nil || req.ToAddressID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "from_address_id and to_address_id are required")
		return
	}

	quote, err := s.shipping.CalculateRates(r.Context(), actorFromContext(r.Context()), req.OrderID, req.FromAddressID, req.ToAddressID)
	if err != nil {
		s.respondShippingError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, quote)
}

type purchaseLabelRequest struct {
	RateID string `json:"rate_id"`
}

func (s *Server) handlePurchaseLabel(w http.ResponseWriter, r *http.Request) {
	shipmentID, err := uuid.Parse(mux.Vars(r)["shipmentID"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid shipment ID")
		return
	}

	var req purchaseLabelRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	label, err := s.shipping.PurchaseLabel(r.Context(), actorFromContext(r.Context()), shipmentID, req.RateID)
	if err != nil {
		s.respondShippingError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, label)
}

func (s *Server) handleTrackShipment(w http.ResponseWriter, r *http.Request) {
	shipmentID, err := uuid.Parse(mux.Vars(r)["shipmentID"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid shipment ID")
		return
	}

	snapshot, err := s.shipping.TrackShipment(r.Context(), actorFromContext(r.Context()), shipmentID)
	if err != nil {
		s.respondShippingError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, snapshot)
}
