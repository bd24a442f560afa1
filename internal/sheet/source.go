package sheet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUpstream is returned when an export fetch comes back non-2xx.
var ErrUpstream = errors.New("upstream fetch failed")

// Source provides the two raw export blobs. The pipeline is pure over this
// capability; tests supply fixture blobs without touching the network.
type Source interface {
	FetchOrders(ctx context.Context) (string, error)
	FetchProducts(ctx context.Context) (string, error)
}

// GoogleSource fetches CSV exports of a Google spreadsheet.
type GoogleSource struct {
	SpreadsheetID string
	OrdersGID     string
	ProductsGID   string

	// BaseURL overrides the docs.google.com endpoint in tests.
	BaseURL string

	Client *http.Client

	// now is swappable in tests; it feeds the cache-busting parameter.
	now func() time.Time
}

// NewGoogleSource creates a source for the given spreadsheet.
func NewGoogleSource(spreadsheetID, ordersGID, productsGID string) *GoogleSource {
	return &GoogleSource{
		SpreadsheetID: spreadsheetID,
		OrdersGID:     ordersGID,
		ProductsGID:   productsGID,
		BaseURL:       "https://docs.google.com",
		Client:        &http.Client{Timeout: 15 * time.Second},
		now:           time.Now,
	}
}

// FetchOrders fetches the orders sheet export.
func (s *GoogleSource) FetchOrders(ctx context.Context) (string, error) {
	return s.fetch(ctx, s.OrdersGID)
}

// FetchProducts fetches the products catalog export.
func (s *GoogleSource) FetchProducts(ctx context.Context) (string, error) {
	return s.fetch(ctx, s.ProductsGID)
}

// fetch issues a no-store GET for one sheet. Price and status must reflect
// the latest authoritative state, so every request carries anti-cache
// headers and a timestamp parameter to defeat intermediary caches.
func (s *GoogleSource) fetch(ctx context.Context, gid string) (string, error) {
	url := fmt.Sprintf("%s/spreadsheets/d/%s/export?format=csv&gid=%s&timestamp=%d",
		s.BaseURL, s.SpreadsheetID, gid, s.now().UnixMilli())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build export request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	req.Header.Set("Pragma", "no-cache")

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: gid %s returned %s", ErrUpstream, gid, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read export body: %v", ErrUpstream, err)
	}
	return string(body), nil
}
