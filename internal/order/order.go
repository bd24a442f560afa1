// Package order maps orders-sheet rows to order values, expands the
// comma-separated line-item encoding, and classifies payment status.
package order

import (
	"errors"
	"strconv"
	"strings"

	"github.com/easyrokra/gateway/internal/enum"
	"github.com/easyrokra/gateway/internal/sheet"
)

// Errors surfaced by the order package.
var (
	ErrNotFound  = errors.New("order not found")
	ErrMalformed = errors.New("order row is malformed: item, weight and quantity counts differ")
)

// Order is one row of the orders sheet, fields carried verbatim. The
// ItemName, Weight and Quantity cells each hold a comma-separated list;
// Items expands them into structured line items.
type Order struct {
	OrderNo         string
	ItemName        string
	Weight          string
	Quantity        string
	Subtotal        string
	PaymentMode     string
	CustomerName    string
	CustomerEmail   string
	DeliveryAddress string
	Status          string
}

// LineItem is one (name, weight, quantity) triple expanded from an order.
type LineItem struct {
	Name     string
	Weight   string
	Quantity int
}

// FromRecord maps a parsed sheet record to an Order.
func FromRecord(rec sheet.Record) Order {
	return Order{
		OrderNo:         rec[enum.ColOrderNo],
		ItemName:        rec[enum.ColItemName],
		Weight:          rec[enum.ColWeight],
		Quantity:        rec[enum.ColQuantity],
		Subtotal:        rec[enum.ColSubtotal],
		PaymentMode:     rec[enum.ColPaymentMode],
		CustomerName:    rec[enum.ColCustomerName],
		CustomerEmail:   rec[enum.ColCustomerEmail],
		DeliveryAddress: rec[enum.ColDeliveryAddress],
		Status:          rec[enum.ColStatus],
	}
}

// Find locates the order with the given number in the parsed orders table.
// Matching is exact string comparison; if the sheet holds duplicates the
// earliest row wins. Returns ErrNotFound when no row matches.
func Find(table *sheet.Table, orderNo string) (Order, error) {
	for _, rec := range table.Rows {
		if rec[enum.ColOrderNo] == orderNo {
			return FromRecord(rec), nil
		}
	}
	return Order{}, ErrNotFound
}

// Items expands the parallel comma-separated cells into line items zipped
// by index. A quantity token that does not parse as a positive integer
// defaults to 1. An empty item-name cell yields no items. Returns
// ErrMalformed when the three lists disagree in length.
func (o Order) Items() ([]LineItem, error) {
	if strings.TrimSpace(o.ItemName) == "" {
		return nil, nil
	}

	names := splitList(o.ItemName)
	weights := splitList(o.Weight)
	quantities := splitList(o.Quantity)

	if len(names) != len(weights) || len(names) != len(quantities) {
		return nil, ErrMalformed
	}

	items := make([]LineItem, len(names))
	for i, name := range names {
		items[i] = LineItem{
			Name:     name,
			Weight:   weights[i],
			Quantity: parseQuantity(quantities[i]),
		}
	}
	return items, nil
}

func splitList(cell string) []string {
	parts := strings.Split(cell, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func parseQuantity(tok string) int {
	n, err := strconv.Atoi(tok)
	if err != nil || n <= 0 {
		return 1
	}
	return n
}
