package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/easyrokra/gateway/internal/order"
	"github.com/easyrokra/gateway/internal/service"
	"github.com/easyrokra/gateway/internal/sheet"
	"github.com/go-chi/chi/v5"
)

// OrderHydrator defines the service method needed by the order handler.
// Satisfied by *service.OrderService; narrow interface for testability.
type OrderHydrator interface {
	Hydrate(ctx context.Context, orderNo string) (*service.HydratedOrder, error)
}

// OrderHandler handles the order lookup endpoint.
type OrderHandler struct {
	svc OrderHydrator
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(svc OrderHydrator) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// RegisterRoutes registers order endpoints on the given Chi router.
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Get("/fetch-order", h.Fetch)
}

// --- Response types ---

type orderResponse struct {
	OrderNo         string `json:"orderNo"`
	ItemName        string `json:"itemName"`
	Weight          string `json:"weight"`
	Quantity        string `json:"quantity"`
	Subtotal        string `json:"subtotal"`
	PaymentMode     string `json:"paymentMode"`
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	DeliveryAddress string `json:"deliveryAddress"`
	Status          string `json:"status"`
}

type orderProductResponse struct {
	ItemID          string `json:"itemID"`
	ProductName     string `json:"productName"`
	Price           string `json:"price"`
	Quantity        int    `json:"quantity"`
	Status          string `json:"status"`
	Media           string `json:"media"`
	Tags            string `json:"tags"`
	OrderedQuantity int    `json:"orderedQuantity"`
	OrderedWeight   string `json:"orderedWeight"`
	Resolved        bool   `json:"resolved"`
}

type fetchOrderResponse struct {
	Order    orderResponse          `json:"order"`
	Products []orderProductResponse `json:"products"`
	Total    string                 `json:"total"`
}

// --- Handlers ---

// Fetch handles GET /fetch-order?orderid=<id>.
func (h *OrderHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	orderNo := r.URL.Query().Get("orderid")
	if orderNo == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "orderid parameter is required"})
		return
	}

	hydrated, err := h.svc.Hydrate(r.Context(), orderNo)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrNotFound):
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		case errors.Is(err, order.ErrMalformed):
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		case errors.Is(err, sheet.ErrUpstream):
			log.Printf("ERROR: fetch order %s: %v", orderNo, err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch order data"})
		default:
			log.Printf("ERROR: fetch order %s: %v", orderNo, err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		}
		return
	}

	writeJSON(w, http.StatusOK, toFetchOrderResponse(hydrated))
}

// --- Helpers ---

func toFetchOrderResponse(h *service.HydratedOrder) fetchOrderResponse {
	products := make([]orderProductResponse, len(h.Items))
	for i, item := range h.Items {
		products[i] = orderProductResponse{
			ItemID:          item.ID,
			ProductName:     item.Name,
			Price:           item.UnitPrice.StringFixed(2),
			Quantity:        item.Stock,
			Status:          item.Status,
			Media:           item.ImageURL,
			Tags:            item.Tags,
			OrderedQuantity: item.Quantity,
			OrderedWeight:   item.Weight,
			Resolved:        item.Resolved,
		}
	}

	hdr := h.Header
	return fetchOrderResponse{
		Order: orderResponse{
			OrderNo:         hdr.OrderNo,
			ItemName:        hdr.ItemName,
			Weight:          hdr.Weight,
			Quantity:        hdr.Quantity,
			Subtotal:        hdr.Subtotal,
			PaymentMode:     hdr.PaymentMode,
			CustomerName:    hdr.CustomerName,
			CustomerEmail:   hdr.CustomerEmail,
			DeliveryAddress: hdr.DeliveryAddress,
			Status:          hdr.Status,
		},
		Products: products,
		Total:    h.Total.StringFixed(2),
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}
