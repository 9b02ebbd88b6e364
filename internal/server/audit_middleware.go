package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry := AuditLogEntry{
			Timestamp: time.Now(),
			Method:    r.Method,
			Path:      r.URL.Path,
			Handler:   getHandlerName(r.URL.Path, r.Method),
		}

		if username, _, ok := r.BasicAuth(); ok {
			entry.UserID = username
		}

		if strings.Contains(r.URL.Path, "/labels/") || strings.Contains(r.URL.Path, "/shipments/") {
			parts := strings.Split(r.URL.Path, "/")
			for i, part := range parts {
				if (part == "labels" || part == "shipments") && i+1 < len(parts) {
					entry.ShipmentID = parts[i+1]
					break
				}
			}
		}

		var requestBody []byte
		if r.Body != nil {
			requestBody, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = string(requestBody)

			if strings.HasSuffix(r.URL.Path, "/rates") {
				var ratesRequest struct {
					OrderID string `json:"order_id"`
				}
				if err := json.Unmarshal(requestBody, &ratesRequest); err == nil {
					entry.OrderID = ratesRequest.OrderID
				}
			}
		}

		rec := newAuditRecorder(w)

		next.ServeHTTP(rec, r)

		entry.StatusCode = rec.status
		entry.Response = rec.auditBody()

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

func getHandlerName(path string, method string) string {
	switch {
	case strings.HasPrefix(path, "/shipping/rates"):
		return "handleCalculateRates"
	case strings.HasPrefix(path, "/shipping/labels"):
		return "handlePurchaseLabel"
	case strings.HasPrefix(path, "/shipping/shipments") && strings.Contains(path, "/track"):
		return "handleTrackShipment"
	case strings.HasPrefix(path, "/addresses/"):
		scope := "Seller"
		if strings.HasPrefix(path, "/addresses/buyer") {
			scope = "Buyer"
		}
		switch {
		case strings.HasSuffix(path, "/default"):
			return "handleSetDefault" + scope + "Address"
		case strings.HasSuffix(path, "/validate"):
			return "handleValidate" + scope + "Address"
		case method == "POST":
			return "handleCreate" + scope + "Address"
		case method == "PUT":
			return "handleUpdate" + scope + "Address"
		case method == "DELETE":
			return "handleDelete" + scope + "Address"
		case method == "GET" && (strings.HasSuffix(path, "/seller") || strings.HasSuffix(path, "/buyer")):
			return "handleList" + scope + "Addresses"
		case method == "GET":
			return "handleGet" + scope + "Address"
		}
	}

	return "unknown"
}
