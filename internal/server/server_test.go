package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/abdiesu04/nexus/internal/repository"
	mock_server "github.com/abdiesu04/nexus/internal/server/mocks"
	"github.com/abdiesu04/nexus/internal/shipping"
)

func newTestServer(t *testing.T) (*Server, *mock_server.MockShippingService, *mock_server.MockUserAuthenticator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockShipping := mock_server.NewMockShippingService(ctrl)
	mockUsers := mock_server.NewMockUserAuthenticator(ctrl)
	return New(mockShipping, mockUsers, zap.NewNop()), mockShipping, mockUsers
}

func withActor(req *http.Request, actor shipping.Actor) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), actorContextKey, actor))
}

func TestHandleCalculateRates(t *testing.T) {
	seller := shipping.Actor{ID: "seller-1", Role: shipping.RoleSeller}
	fromID := uuid.New()
	toID := uuid.New()

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(m *mock_server.MockShippingService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful rate calculation",
			requestBody: map[string]interface{}{
				"order_id":        "order-1",
				"from_address_id": fromID.String(),
				"to_address_id":   toID.String(),
			},
			setupMocks: func(m *mock_server.MockShippingService) {
				m.EXPECT().
					CalculateRates(gomock.Any(), seller, "order-1", fromID, toID).
					Return(&shipping.RateQuote{ShipmentID: uuid.New()}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"shipment_id"`,
		},
		{
			name:           "missing order id",
			requestBody:    map[string]interface{}{"from_address_id": fromID.String(), "to_address_id": toID.String()},
			setupMocks:     func(m *mock_server.MockShippingService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"order_id is required"`,
		},
		{
			name: "remote failure maps to bad gateway",
			requestBody: map[string]interface{}{
				"order_id":        "order-1",
				"from_address_id": fromID.String(),
				"to_address_id":   toID.String(),
			},
			setupMocks: func(m *mock_server.MockShippingService) {
				m.EXPECT().
					CalculateRates(gomock.Any(), seller, "order-1", fromID, toID).
					Return(nil, &shipping.Error{Kind: shipping.KindRemote, Message: "create shipment failed"})
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `"create shipment failed"`,
		},
		{
			name: "unknown order maps to not found",
			requestBody: map[string]interface{}{
				"order_id":        "order-1",
				"from_address_id": fromID.String(),
				"to_address_id":   toID.String(),
			},
			setupMocks: func(m *mock_server.MockShippingService) {
				m.EXPECT().
					CalculateRates(gomock.Any(), seller, "order-1", fromID, toID).
					Return(nil, &shipping.Error{Kind: shipping.KindNotFound, Message: "order order-1 not found"})
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"order order-1 not found"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv, mockShipping, _ := newTestServer(t)
			tc.setupMocks(mockShipping)

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodPost, "/shipping/rates", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req = withActor(req, seller)

			rr := httptest.NewRecorder()
			srv.handleCalculateRates(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.expectedBody)
		})
	}
}

func TestHandlePurchaseLabel(t *testing.T) {
	seller := shipping.Actor{ID: "seller-1", Role: shipping.RoleSeller}
	shipmentID := uuid.New()

	t.Run("successful purchase", func(t *testing.T) {
		srv, mockShipping, _ := newTestServer(t)

		mockShipping.EXPECT().
			PurchaseLabel(gomock.Any(), seller, shipmentID, "rate-1").
			Return(&shipping.LabelResult{
				ShipmentID:     shipmentID,
				TransactionID:  "txn-1",
				RateID:         "rate-1",
				TrackingNumber: "1Z999",
				Carrier:        "USPS",
				Cost:           decimal.RequireFromString("5.50"),
			}, nil)

		body := bytes.NewBufferString(`{"rate_id": "rate-1"}`)
		req := httptest.NewRequest(http.MethodPost, "/shipping/labels/"+shipmentID.String(), body)
		req = mux.SetURLVars(req, map[string]string{"shipmentID": shipmentID.String()})
		req = withActor(req, seller)

		rr := httptest.NewRecorder()
		srv.handlePurchaseLabel(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"txn-1"`)
		assert.Contains(t, rr.Body.String(), `"1Z999"`)
	})

	t.Run("empty body lets the service pick a rate", func(t *testing.T) {
		srv, mockShipping, _ := newTestServer(t)

		mockShipping.EXPECT().
			PurchaseLabel(gomock.Any(), seller, shipmentID, "").
			Return(&shipping.LabelResult{ShipmentID: shipmentID, TransactionID: "txn-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/shipping/labels/"+shipmentID.String(), nil)
		req = mux.SetURLVars(req, map[string]string{"shipmentID": shipmentID.String()})
		req = withActor(req, seller)

		rr := httptest.NewRecorder()
		srv.handlePurchaseLabel(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("invalid shipment id", func(t *testing.T) {
		srv, _, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodPost, "/shipping/labels/not-a-uuid", nil)
		req = mux.SetURLVars(req, map[string]string{"shipmentID": "not-a-uuid"})
		req = withActor(req, seller)

		rr := httptest.NewRecorder()
		srv.handlePurchaseLabel(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"Invalid shipment ID"}`, rr.Body.String())
	})

	t.Run("double purchase maps to conflict", func(t *testing.T) {
		srv, mockShipping, _ := newTestServer(t)

		mockShipping.EXPECT().
			PurchaseLabel(gomock.Any(), seller, shipmentID, "").
			Return(nil, &shipping.Error{Kind: shipping.KindIllegalState, Message: "a label has already been purchased for this shipment"})

		req := httptest.NewRequest(http.MethodPost, "/shipping/labels/"+shipmentID.String(), nil)
		req = mux.SetURLVars(req, map[string]string{"shipmentID": shipmentID.String()})
		req = withActor(req, seller)

		rr := httptest.NewRecorder()
		srv.handlePurchaseLabel(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("buyer maps to forbidden", func(t *testing.T) {
		srv, mockShipping, _ := newTestServer(t)
		buyer := shipping.Actor{ID: "buyer-1", Role: shipping.RoleBuyer}

		mockShipping.EXPECT().
			PurchaseLabel(gomock.Any(), buyer, shipmentID, "").
			Return(nil, &shipping.Error{Kind: shipping.KindPermission, Message: "only the seller of this product or an admin can purchase shipping labels"})

		req := httptest.NewRequest(http.MethodPost, "/shipping/labels/"+shipmentID.String(), nil)
		req = mux.SetURLVars(req, map[string]string{"shipmentID": shipmentID.String()})
		req = withActor(req, buyer)

		rr := httptest.NewRecorder()
		srv.handlePurchaseLabel(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestHandleTrackShipment(t *testing.T) {
	buyer := shipping.Actor{ID: "buyer-1", Role: shipping.RoleBuyer}
	shipmentID := uuid.New()

	t.Run("returns shipment with events", func(t *testing.T) {
		srv, mockShipping, _ := newTestServer(t)

		mockShipping.EXPECT().
			TrackShipment(gomock.Any(), buyer, shipmentID).
			Return(&shipping.Snapshot{
				Shipment: &repository.Shipment{ID: shipmentID, OrderID: "order-1", Status: repository.ShipmentStatusTransit},
				Events: []*repository.StatusEvent{
					{ID: 1, ShipmentID: shipmentID, Status: repository.ShipmentStatusTransit},
				},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/shipping/shipments/"+shipmentID.String()+"/track", nil)
		req = mux.SetURLVars(req, map[string]string{"shipmentID": shipmentID.String()})
		req = withActor(req, buyer)

		rr := httptest.NewRecorder()
		srv.handleTrackShipment(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"TRANSIT"`)
	})

	t.Run("unknown shipment", func(t *testing.T) {
		srv, mockShipping, _ := newTestServer(t)

		mockShipping.EXPECT().
			TrackShipment(gomock.Any(), buyer, shipmentID).
			Return(nil, &shipping.Error{Kind: shipping.KindNotFound, Message: "shipment not found"})

		req := httptest.NewRequest(http.MethodGet, "/shipping/shipments/"+shipmentID.String()+"/track", nil)
		req = mux.SetURLVars(req, map[string]string{"shipmentID": shipmentID.String()})
		req = withActor(req, buyer)

		rr := httptest.NewRecorder()
		srv.handleTrackShipment(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestHandleCreateSellerAddress(t *testing.T) {
	seller := shipping.Actor{ID: "seller-1", Role: shipping.RoleSeller}

	t.Run("validation failure maps to bad request", func(t *testing.T) {
		srv, mockShipping, _ := newTestServer(t)

		mockShipping.EXPECT().
			CreateSellerAddress(gomock.Any(), seller, gomock.Any()).
			Return(&shipping.Error{Kind: shipping.KindValidation, Message: "phone number must have at least 10 digits"})

		body := bytes.NewBufferString(`{"name":"Acme","street1":"1 Main St","city":"Reno","state":"NV","zip":"89501","phone":"123"}`)
		req := httptest.NewRequest(http.MethodPost, "/addresses/seller", body)
		req = withActor(req, seller)

		rr := httptest.NewRecorder()
		srv.handleCreateSellerAddress(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "phone number")
	})

	t.Run("created address is echoed back", func(t *testing.T) {
		srv, mockShipping, _ := newTestServer(t)

		mockShipping.EXPECT().
			CreateSellerAddress(gomock.Any(), seller, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ shipping.Actor, addr *repository.SellerAddress) error {
				assert.Equal(t, "Acme Warehouse", addr.Name)
				addr.ID = uuid.New()
				addr.IsVerified = true
				return nil
			})

		body := bytes.NewBufferString(`{"name":"Acme Warehouse","street1":"1 Warehouse Rd","city":"Reno","state":"NV","zip":"89501","country":"US","phone":"7755551234"}`)
		req := httptest.NewRequest(http.MethodPost, "/addresses/seller", body)
		req = withActor(req, seller)

		rr := httptest.NewRecorder()
		srv.handleCreateSellerAddress(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), "Acme Warehouse")
	})
}

func TestBasicAuthMiddleware(t *testing.T) {
	t.Run("valid credentials put the actor in context", func(t *testing.T) {
		srv, _, mockUsers := newTestServer(t)

		mockUsers.EXPECT().
			Authenticate(gomock.Any(), "seller-1", "secret").
			Return(&repository.User{ID: "seller-1", Username: "seller-1", Role: "seller"}, nil)

		var captured shipping.Actor
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = actorFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/shipping/rates", nil)
		req.SetBasicAuth("seller-1", "secret")

		rr := httptest.NewRecorder()
		srv.basicAuthMiddleware(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, shipping.Actor{ID: "seller-1", Role: "seller"}, captured)
	})

	t.Run("bad credentials are rejected", func(t *testing.T) {
		srv, _, mockUsers := newTestServer(t)

		mockUsers.EXPECT().
			Authenticate(gomock.Any(), "seller-1", "wrong").
			Return(nil, errors.New("invalid credentials"))

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("next handler must not run")
		})

		req := httptest.NewRequest(http.MethodGet, "/shipping/rates", nil)
		req.SetBasicAuth("seller-1", "wrong")

		rr := httptest.NewRecorder()
		srv.basicAuthMiddleware(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("missing credentials are rejected", func(t *testing.T) {
		srv, _, _ := newTestServer(t)

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("next handler must not run")
		})

		req := httptest.NewRequest(http.MethodGet, "/shipping/rates", nil)

		rr := httptest.NewRecorder()
		srv.basicAuthMiddleware(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestGetHandlerName(t *testing.T) {
	tests := []struct {
		path   string
		method string
		want   string
	}{
		{"/shipping/rates", http.MethodPost, "handleCalculateRates"},
		{"/shipping/labels/abc", http.MethodPost, "handlePurchaseLabel"},
		{"/shipping/shipments/abc/track", http.MethodGet, "handleTrackShipment"},
		{"/addresses/seller", http.MethodPost, "handleCreateSellerAddress"},
		{"/addresses/seller", http.MethodGet, "handleListSellerAddresses"},
		{"/addresses/seller/abc", http.MethodGet, "handleGetSellerAddress"},
		{"/addresses/seller/abc", http.MethodPut, "handleUpdateSellerAddress"},
		{"/addresses/seller/abc", http.MethodDelete, "handleDeleteSellerAddress"},
		{"/addresses/seller/abc/default", http.MethodPost, "handleSetDefaultSellerAddress"},
		{"/addresses/buyer/abc/validate", http.MethodPost, "handleValidateBuyerAddress"},
		{"/addresses/buyer", http.MethodPost, "handleCreateBuyerAddress"},
		{"/unknown", http.MethodGet, "unknown"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, getHandlerName(tc.path, tc.method), "%s %s", tc.method, tc.path)
	}
}
