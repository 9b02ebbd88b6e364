//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/abdiesu04/nexus/internal/carrier"
	"github.com/abdiesu04/nexus/internal/repository"
	"github.com/abdiesu04/nexus/internal/shipping"
)

// ShippingService is the slice of the shipping orchestrator the HTTP layer
// depends on.
type ShippingService interface {
	CalculateRates(ctx context.Context, actor shipping.Actor, orderID string, fromID, toID uuid.UUID) (*shipping.RateQuote, error)
	PurchaseLabel(ctx context.Context, actor shipping.Actor, shipmentID uuid.UUID, rateID string) (*shipping.LabelResult, error)
	TrackShipment(ctx context.Context, actor shipping.Actor, shipmentID uuid.UUID) (*shipping.Snapshot, error)

	CreateSellerAddress(ctx context.Context, actor shipping.Actor, addr *repository.SellerAddress) error
	ListSellerAddresses(ctx context.Context, actor shipping.Actor) ([]*repository.SellerAddress, error)
	GetSellerAddress(ctx context.Context, actor shipping.Actor, id uuid.UUID) (*repository.SellerAddress, error)
	UpdateSellerAddress(ctx context.Context, actor shipping.Actor, addr *repository.SellerAddress) error
	DeleteSellerAddress(ctx context.Context, actor shipping.Actor, id uuid.UUID) error
	SetDefaultSellerAddress(ctx context.Context, actor shipping.Actor, id uuid.UUID) error
	ValidateSellerAddress(ctx context.Context, actor shipping.Actor, id uuid.UUID) (carrier.Validation, error)

	CreateBuyerAddress(ctx context.Context, actor shipping.Actor, addr *repository.BuyerAddress) error
	ListBuyerAddresses(ctx context.Context, actor shipping.Actor) ([]*repository.BuyerAddress, error)
	GetBuyerAddress(ctx context.Context, actor shipping.Actor, id uuid.UUID) (*repository.BuyerAddress, error)
	UpdateBuyerAddress(ctx context.Context, actor shipping.Actor, addr *repository.BuyerAddress) error
	DeleteBuyerAddress(ctx context.Context, actor shipping.Actor, id uuid.UUID) error
	SetDefaultBuyerAddress(ctx context.Context, actor shipping.Actor, id uuid.UUID) error
	ValidateBuyerAddress(ctx context.Context, actor shipping.Actor, id uuid.UUID) (carrier.Validation, error)
}

type UserAuthenticator interface {
	Authenticate(ctx context.Context, username, password string) (*repository.User, error)
}

type Server struct {
	shipping ShippingService
	users    UserAuthenticator
	logger   *zap.Logger
	server   *http.Server

	AuditManager *AuditManager
}

func New(shippingSvc ShippingService, users UserAuthenticator, logger *zap.Logger) *Server {
	return &Server{
		shipping:     shippingSvc,
		users:        users,
		logger:       logger,
		AuditManager: NewAuditManager(2, 5, 500*time.Millisecond, logger),
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      s.setupRoutes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	s.AuditManager.Start(ctx)

	s.logger.Info("Server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.AuditManager.Shutdown(ctx)
	s.logger.Info("Server shutdown completed")
	return nil
}

func (s *Server) setupRoutes() http.Handler {
	r := mux.NewRouter()

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/").Subrouter()
	api.Use(s.auditLogMiddleware, s.basicAuthMiddleware)

	api.HandleFunc("/shipping/rates", s.handleCalculateRates).Methods(http.MethodPost)
	api.HandleFunc("/shipping/labels/{shipmentID}", s.handlePurchaseLabel).Methods(http.MethodPost)
	api.HandleFunc("/shipping/shipments/{shipmentID}/track", s.handleTrackShipment).Methods(http.MethodGet)

	api.HandleFunc("/addresses/seller", s.handleCreateSellerAddress).Methods(http.MethodPost)
	api.HandleFunc("/addresses/seller", s.handleListSellerAddresses).Methods(http.MethodGet)
	api.HandleFunc("/addresses/seller/{id}", s.handleGetSellerAddress).Methods(http.MethodGet)
	api.HandleFunc("/addresses/seller/{id}", s.handleUpdateSellerAddress).Methods(http.MethodPut)
	api.HandleFunc("/addresses/seller/{id}", s.handleDeleteSellerAddress).Methods(http.MethodDelete)
	api.HandleFunc("/addresses/seller/{id}/default", s.handleSetDefaultSellerAddress).Methods(http.MethodPost)
	api.HandleFunc("/addresses/seller/{id}/validate", s.handleValidateSellerAddress).Methods(http.MethodPost)

	api.HandleFunc("/addresses/buyer", s.handleCreateBuyerAddress).Methods(http.MethodPost)
	api.HandleFunc("/addresses/buyer", s.handleListBuyerAddresses).Methods(http.MethodGet)
	api.HandleFunc("/addresses/buyer/{id}", s.handleGetBuyerAddress).Methods(http.MethodGet)
	api.HandleFunc("/addresses/buyer/{id}", s.handleUpdateBuyerAddress).Methods(http.MethodPut)
	api.HandleFunc("/addresses/buyer/{id}", s.handleDeleteBuyerAddress).Methods(http.MethodDelete)
	api.HandleFunc("/addresses/buyer/{id}/default", s.handleSetDefaultBuyerAddress).Methods(http.MethodPost)
	api.HandleFunc("/addresses/buyer/{id}/validate", s.handleValidateBuyerAddress).Methods(http.MethodPost)

	return r
}

type contextKey string

const actorContextKey contextKey = "actor"

func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		user, err := s.users.Authenticate(r.Context(), username, password)
		if err != nil {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		actor := shipping.Actor{ID: user.ID, Role: user.Role}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorContextKey, actor)))
	})
}

func actorFromContext(ctx context.Context) shipping.Actor {
	actor, _ := ctx.Value(actorContextKey).(shipping.Actor)
	return actor
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondShippingError maps the shipping error taxonomy onto HTTP status
// codes. Internal details never leak to the caller.
func (s *Server) respondShippingError(w http.ResponseWriter, err error) {
	kind := shipping.KindOf(err)

	status := http.StatusInternalServerError
	message := err.Error()
	switch kind {
	case shipping.KindValidation:
		status = http.StatusBadRequest
	case shipping.KindPermission:
		status = http.StatusForbidden
	case shipping.KindNotFound:
		status = http.StatusNotFound
	case shipping.KindIllegalState:
		status = http.StatusConflict
	case shipping.KindRemote:
		status = http.StatusBadGateway
	default:
		s.logger.Error("Internal error", zap.Error(err))
		message = "internal server error"
	}

	respondError(w, status, message)
}
