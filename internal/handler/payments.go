package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/easyrokra/gateway/internal/audit"
	"github.com/easyrokra/gateway/internal/enum"
	"github.com/easyrokra/gateway/internal/order"
	"github.com/easyrokra/gateway/internal/service"
	"github.com/easyrokra/gateway/internal/sheet"
	"github.com/easyrokra/gateway/internal/writeback"
	"github.com/go-chi/chi/v5"
)

// OrderFetcher defines the sheet access needed by the payment handler.
// Satisfied by *sheet.GoogleSource; only the orders export is needed here.
type OrderFetcher interface {
	FetchOrders(ctx context.Context) (string, error)
}

// StatusWriter defines the writeback method needed by the payment handler.
// Satisfied by *writeback.Client.
type StatusWriter interface {
	Update(ctx context.Context, ordersBlob, orderNo, status string) (*writeback.Result, error)
}

// Broadcaster pushes a status change to live subscribers. Satisfied by
// *ws.Hub.
type Broadcaster interface {
	BroadcastStatus(orderNo, status string)
}

// PaymentHandler handles the payment / status-update endpoint.
type PaymentHandler struct {
	source     OrderFetcher
	authorizer service.Authorizer
	writer     StatusWriter
	recorder   audit.Recorder
	hub        Broadcaster
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(source OrderFetcher, authorizer service.Authorizer, writer StatusWriter, recorder audit.Recorder, hub Broadcaster) *PaymentHandler {
	return &PaymentHandler{
		source:     source,
		authorizer: authorizer,
		writer:     writer,
		recorder:   recorder,
		hub:        hub,
	}
}

// RegisterRoutes registers payment endpoints on the given Chi router.
func (h *PaymentHandler) RegisterRoutes(r chi.Router) {
	r.Post("/update-order-status", h.UpdateStatus)
}

// --- Request / Response types ---

type updateStatusRequest struct {
	OrderID string `json:"orderID"`
	Status  string `json:"status"`
}

type updateStatusResponse struct {
	Message          string `json:"message"`
	OrderID          string `json:"orderID"`
	Status           string `json:"status"`
	RowIndex         int    `json:"rowIndex"`
	WritebackSkipped bool   `json:"writebackSkipped"`
	WritebackFailed  bool   `json:"writebackFailed"`
	AuthorizationRef string `json:"authorizationRef"`
}

// --- Handlers ---

// UpdateStatus handles POST /update-order-status. The flow is authorize,
// then write back, then record. Writeback problems are soft: once the
// payment is authorized the response is 200 even if the status cell could
// not be updated.
func (h *PaymentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.OrderID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "orderID is required"})
		return
	}
	if req.Status == "" {
		req.Status = enum.OrderStatusComplete
	}

	ordersBlob, err := h.source.FetchOrders(r.Context())
	if err != nil {
		log.Printf("ERROR: fetch orders for status update: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch order data"})
		return
	}

	// Reject unknown orders before authorization runs.
	if _, err := order.Find(sheet.Parse(ordersBlob), req.OrderID); err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}

	auth, err := h.authorizer.Authorize(r.Context(), req.OrderID)
	if err != nil {
		log.Printf("ERROR: authorize payment for order %s: %v", req.OrderID, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "payment authorization failed"})
		return
	}

	result, err := h.writer.Update(r.Context(), ordersBlob, req.OrderID, req.Status)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
			return
		}
		log.Printf("ERROR: update status for order %s: %v", req.OrderID, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	ev := audit.NewEvent(req.OrderID, req.Status, auth.Reference)
	ev.RowIndex = result.RowIndex
	ev.WritebackSkipped = result.Skipped
	ev.WritebackFailed = result.Failed
	ev.Reason = result.Reason
	if err := h.recorder.RecordPayment(r.Context(), ev); err != nil {
		// Best effort; the payment already went through.
		log.Printf("ERROR: record payment for order %s: %v", req.OrderID, err)
	}

	resp := updateStatusResponse{
		OrderID:          req.OrderID,
		Status:           req.Status,
		RowIndex:         result.RowIndex,
		WritebackSkipped: result.Skipped,
		WritebackFailed:  result.Failed,
		AuthorizationRef: auth.Reference,
	}
	switch {
	case result.Skipped:
		resp.Message = "Payment recorded (sheet update skipped - no writeback endpoint configured)"
	case result.Failed:
		resp.Message = "Payment processed successfully - status update pending"
	default:
		resp.Message = "Order status updated successfully"
		h.hub.BroadcastStatus(req.OrderID, req.Status)
	}

	writeJSON(w, http.StatusOK, resp)
}
