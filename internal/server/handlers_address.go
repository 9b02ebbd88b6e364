package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/abdiesu04/nexus/internal/repository"
)

type sellerAddressRequest struct {
	Name        string  `json:"name"`
	Company     *string `json:"company,omitempty"`
	Street1     string  `json:"street1"`
	Street2     *string `json:"street2,omitempty"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Zip         string  `json:"zip"`
	Country     string  `json:"country"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	IsDefault   bool    `json:"is_default"`
	IsWarehouse bool    `json:"is_warehouse"`
}

func (r sellerAddressRequest) toAddress() *repository.SellerAddress {
	return &repository.SellerAddress{
		Name:        r.Name,
		Company:     r.Company,
		Street1:     r.Street1,
		Street2:     r.Street2,
		City:        r.City,
		State:       r.State,
		Zip:         r.Zip,
		Country:     r.Country,
		Phone:       r.Phone,
		Email:       r.Email,
		IsDefault:   r.IsDefault,
		IsWarehouse: r.IsWarehouse,
	}
}

type buyerAddressRequest struct {
	Name          string  `json:"name"`
	Company       *string `json:"company,omitempty"`
	Street1       string  `json:"street1"`
	Street2       *string `json:"street2,omitempty"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	Zip           string  `json:"zip"`
	Country       string  `json:"country"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	IsDefault     bool    `json:"is_default"`
	IsResidential bool    `json:"is_residential"`
	Instructions  *string `json:"instructions,omitempty"`
}

func (r buyerAddressRequest) toAddress() *repository.BuyerAddress {
	return &repository.BuyerAddress{
		Name:          r.Name,
		Company:       r.Company,
		Street1:       r.Street1,
		Street2:       r.Street2,
		City:          r.City,
		State:         r.State,
		Zip:           r.Zip,
		Country:       r.Country,
		Phone:         r.Phone,
		Email:         r.Email,
		IsDefault:     r.IsDefault,
		IsResidential: r.IsResidential,
		Instructions:  r.Instructions,
	}
}

func addressIDFromRequest(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	return id, err == nil
}

func (s *Server) handleCreateSellerAddress(w http.ResponseWriter, r *http.Request) {
	var req sellerAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	addr := req.toAddress()
	if err := s.shipping.CreateSellerAddress(r.Context(), actorFromContext(r.Context()), addr); err != nil {
		s.respondShippingError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, addr)
}

func (s *Server) handleListSellerAddresses(w http.ResponseWriter, r *http.Request) {
	addrs, err := s.shipping.ListSellerAddresses(r.Context(), actorFromContext(r.Context()))
	if err != nil {
		s.respondShippingError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, addrs)
}

func (s *Server) handleGetSellerAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := addressIDFromRequest(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid address ID")
		return
	}

	addr, err := s.shipping.GetSellerAddress(r.Context(), actorFromContext(r.Context()), id)
	if err != nil {
		s.respondShippingError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, addr)
}

func (s *Server) handleUpdateSellerAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := addressIDFromRequest(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid address ID")
		return
	}

	var req sellerAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	addr := req.toAddress()
	addr.ID = id
	if err := s.shipping.UpdateSellerAddress(r.Context(), actorFromContext(r.Context()), addr); err != nil {
		s.respondShippingError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, addr)
}

func (s *Server) handleDeleteSellerAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := addressIDFromRequest(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid address ID")
		return
	}

	if err := s.shipping.DeleteSellerAddress(r.Context(), actorFromContext(r.Context()), id); err != nil {
		s.respondShippingError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleSetDefaultSellerAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := addressIDFromRequest(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid address ID")
		return
	}

	if err := s.shipping.SetDefaultSellerAddress(r.Context(), actorFromContext(r.Context()), id); err != nil {
		s.respondShippingError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "default set"})
}

func (s *Server) handleValidateSellerAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := addressIDFromRequest(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid address ID")
		return
	}

	validation, err := s.shipping.ValidateSellerAddress(r.Context(), actorFromContext(r.Context()), id)
	if err != nil {
		s.respondShippingError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, validation)
}

func (s *Server) handleCreateBuyerAddress(w http.ResponseWriter, r *http.Request) {
	var req buyerAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	addr := req.toAddress()
	if err := s.shipping.CreateBuyerAddress(r.Context(), actorFromContext(r.Context()), addr); err != nil {
		s.respondShippingError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, addr)
}

func (s *Server) handleListBuyerAddresses(w http.ResponseWriter, r *http.Request) {
	addrs, err := s.shipping.ListBuyerAddresses(r.Context(), actorFromContext(r.Context()))
	if err != nil {
		s.respondShippingError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, addrs)
}

func (s *Server) handleGetBuyerAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := addressIDFromRequest(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid address ID")
		return
	}

	addr, err := s.shipping.GetBuyerAddress(r.Context(), actorFromContext(r.Context()), id)
	if err != nil {
		s.respondShippingError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, addr)
}

func (s *Server) handleUpdateBuyerAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := addressIDFromRequest(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid address ID")
		return
	}

	var req buyerAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	addr := req.toAddress()
	addr.ID = id
	if err := s.shipping.UpdateBuyerAddress(r.Context(), actorFromContext(r.Context()), addr); err != nil {
		s.respondShippingError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, addr)
}

func (s *Server) handleDeleteBuyerAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := addressIDFromRequest(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid address ID")
		return
	}

	if err := s.shipping.DeleteBuyerAddress(r.Context(), actorFromContext(r.Context()), id); err != nil {
		s.respondShippingError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleSetDefaultBuyerAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := addressIDFromRequest(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid address ID")
		return
	}

	if err := s.shipping.SetDefaultBuyerAddress(r.Context(), actorFromContext(r.Context()), id); err != nil {
		s.respondShippingError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "default set"})
}

func (s *Server) handleValidateBuyerAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := addressIDFromRequest(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid address ID")
		return
	}

	validation, err := s.shipping.ValidateBuyerAddress(r.Context(), actorFromContext(r.Context()), id)
	if err != nil {
		s.respondShippingError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, validation)
}
