package service

import (
	"context"
	"fmt"
	"log"

	"github.com/easyrokra/gateway/internal/catalog"
	"github.com/easyrokra/gateway/internal/order"
	"github.com/easyrokra/gateway/internal/sheet"
	"github.com/shopspring/decimal"
)

// HydratedItem is one order line joined against the live catalog. When the
// catalog has no entry for the ordered name the item degrades to a
// placeholder: synthetic ID, fallback image, zero price, Resolved false.
type HydratedItem struct {
	ID       string
	Name     string
	ImageURL string

	// UnitPrice is the live catalog price at the instant of the catalog
	// fetch, not whatever was written into the order row.
	UnitPrice decimal.Decimal

	Quantity int    // ordered quantity
	Weight   string // ordered weight
	Stock    int
	Status   string
	Tags     string
	Resolved bool
}

// HydratedOrder is the fully joined order view consumed by the surfaces.
type HydratedOrder struct {
	Header order.Order
	Items  []HydratedItem

	// Total is Σ unitPrice × quantity in full decimal precision.
	// Two-digit rounding happens only at presentation.
	Total decimal.Decimal
}

// Class is the status classification of the order header.
func (h *HydratedOrder) Class() order.StatusClass {
	return order.Classify(h.Header.Status)
}

// OrderService runs the reconciliation pipeline over a sheet source.
type OrderService struct {
	source        sheet.Source
	fallbackImage string
}

// NewOrderService creates the pipeline over the given source. The fallback
// image URI is used for line items the catalog cannot resolve.
func NewOrderService(source sheet.Source, fallbackImage string) *OrderService {
	return &OrderService{source: source, fallbackImage: fallbackImage}
}

// Hydrate fetches both exports, locates the order, expands its line items
// and joins them against the catalog. Orders are fetched first so that a
// missing order short-circuits before the catalog fetch; the two blobs are
// independent snapshots and no cross-fetch consistency is attempted.
func (s *OrderService) Hydrate(ctx context.Context, orderNo string) (*HydratedOrder, error) {
	ordersBlob, err := s.source.FetchOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}

	hdr, err := order.Find(sheet.Parse(ordersBlob), orderNo)
	if err != nil {
		return nil, err
	}

	items, err := hdr.Items()
	if err != nil {
		return nil, err
	}

	productsBlob, err := s.source.FetchProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	idx := catalog.Build(sheet.Parse(productsBlob))

	hydrated := &HydratedOrder{
		Header: hdr,
		Items:  make([]HydratedItem, len(items)),
		Total:  decimal.Zero,
	}
	for i, item := range items {
		hydrated.Items[i] = s.hydrateItem(idx, item, i)
		hydrated.Total = hydrated.Total.Add(
			hydrated.Items[i].UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return hydrated, nil
}

// Status re-runs only the locator and status classifier; the confirmation
// surface uses it to verify an order without paying for the catalog fetch.
func (s *OrderService) Status(ctx context.Context, orderNo string) (order.StatusClass, error) {
	ordersBlob, err := s.source.FetchOrders(ctx)
	if err != nil {
		return order.Missing, fmt.Errorf("fetch orders: %w", err)
	}

	hdr, err := order.Find(sheet.Parse(ordersBlob), orderNo)
	if err != nil {
		return order.Missing, err
	}
	return order.Classify(hdr.Status), nil
}

func (s *OrderService) hydrateItem(idx catalog.Index, item order.LineItem, pos int) HydratedItem {
	product, ok := idx.Lookup(item.Name)
	if !ok {
		log.Printf("WARN: product %q not found in catalog, using placeholder", item.Name)
		return HydratedItem{
			ID:        fmt.Sprintf("order-item-%d", pos),
			Name:      item.Name,
			ImageURL:  s.fallbackImage,
			UnitPrice: decimal.Zero,
			Quantity:  item.Quantity,
			Weight:    item.Weight,
			Resolved:  false,
		}
	}

	return HydratedItem{
		ID:        product.ItemID,
		Name:      product.Name,
		ImageURL:  product.Media,
		UnitPrice: product.Price,
		Quantity:  item.Quantity,
		Weight:    item.Weight,
		Stock:     product.Quantity,
		Status:    product.Status,
		Tags:      product.Tags,
		Resolved:  true,
	}
}
