// Package writeback flips an order's status cell in the authoritative
// sheet through an external proxy endpoint. Every failure here is soft: a
// payment that has been authorized is never failed because the status cell
// could not be updated.
package writeback

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/easyrokra/gateway/internal/auth"
	"github.com/easyrokra/gateway/internal/enum"
	"github.com/easyrokra/gateway/internal/order"
	"github.com/easyrokra/gateway/internal/sheet"
)

// Result reports what happened to a writeback attempt. Exactly one of
// Skipped / Failed may be set; both false means the cell was updated.
type Result struct {
	RowIndex int
	Skipped  bool
	Failed   bool
	Reason   string
}

// payload is the JSON body the proxy endpoint expects.
type payload struct {
	SpreadsheetID string `json:"spreadsheetId"`
	SheetName     string `json:"sheetName"`
	OrderID       string `json:"orderID"`
	Status        string `json:"status"`
	RowIndex      int    `json:"rowIndex"`
}

// Client posts status updates to the configured proxy.
type Client struct {
	URL           string
	Secret        string
	SpreadsheetID string
	SheetName     string
	HTTP          *http.Client
}

// NewClient creates a writeback client. An empty url means every update is
// skipped (and logged) rather than attempted.
func NewClient(url, secret, spreadsheetID, sheetName string) *Client {
	return &Client{
		URL:           url,
		Secret:        secret,
		SpreadsheetID: spreadsheetID,
		SheetName:     sheetName,
		HTTP:          &http.Client{Timeout: 15 * time.Second},
	}
}

// Update locates the order's 1-based sheet row in the raw orders blob and
// posts the new status. The row is found by parsed field equality on the
// order-number column, so an order number appearing inside another field
// cannot select the wrong row. Returns order.ErrNotFound when the blob has
// no such order; transport and endpoint failures are reported in the
// Result, not as errors.
func (c *Client) Update(ctx context.Context, ordersBlob, orderNo, status string) (*Result, error) {
	row := sheet.FindRow(ordersBlob, enum.ColOrderNo, orderNo)
	if row == 0 {
		return nil, order.ErrNotFound
	}

	if c.URL == "" {
		log.Printf("writeback skipped: no endpoint configured, order %s row %d should read %q", orderNo, row, status)
		return &Result{RowIndex: row, Skipped: true}, nil
	}

	body, err := json.Marshal(payload{
		SpreadsheetID: c.SpreadsheetID,
		SheetName:     c.SheetName,
		OrderID:       orderNo,
		Status:        status,
		RowIndex:      row,
	})
	if err != nil {
		return &Result{RowIndex: row, Failed: true, Reason: fmt.Sprintf("marshal payload: %v", err)}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return &Result{RowIndex: row, Failed: true, Reason: fmt.Sprintf("build request: %v", err)}, nil
	}
	req.Header.Set("Content-Type", "application/json")

	if c.Secret != "" {
		token, err := auth.GenerateServiceToken(c.Secret, c.SpreadsheetID)
		if err != nil {
			return &Result{RowIndex: row, Failed: true, Reason: fmt.Sprintf("sign service token: %v", err)}, nil
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Printf("ERROR: writeback for order %s: %v", orderNo, err)
		return &Result{RowIndex: row, Failed: true, Reason: err.Error()}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("ERROR: writeback for order %s returned %s", orderNo, resp.Status)
		return &Result{RowIndex: row, Failed: true, Reason: fmt.Sprintf("endpoint returned %s", resp.Status)}, nil
	}

	return &Result{RowIndex: row}, nil
}
