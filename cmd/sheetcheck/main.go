// Command sheetcheck fetches the orders and products exports, parses them,
// and reports what the pipeline would see. The orders sheet is hand edited,
// so this is the quickest way to diagnose a row that refuses to hydrate.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/easyrokra/gateway/internal/catalog"
	"github.com/easyrokra/gateway/internal/config"
	"github.com/easyrokra/gateway/internal/order"
	"github.com/easyrokra/gateway/internal/service"
	"github.com/easyrokra/gateway/internal/sheet"
	"github.com/joho/godotenv"
)

func main() {
	orderNo := flag.String("order", "", "Order number to hydrate (optional)")
	flag.Parse()

	if *orderNo == "" {
		*orderNo = os.Getenv("CHECK_ORDER_NO")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}
	cfg := config.Load()

	ctx := context.Background()
	source := sheet.NewGoogleSource(cfg.SpreadsheetID, cfg.OrdersGID, cfg.ProductsGID)

	ordersBlob, err := source.FetchOrders(ctx)
	if err != nil {
		log.Fatalf("Unable to fetch orders sheet: %v", err)
	}
	ordersTable := sheet.Parse(ordersBlob)
	fmt.Printf("Orders sheet: %d columns, %d data rows\n", len(ordersTable.Headers), len(ordersTable.Rows))

	productsBlob, err := source.FetchProducts(ctx)
	if err != nil {
		log.Fatalf("Unable to fetch products sheet: %v", err)
	}
	idx := catalog.Build(sheet.Parse(productsBlob))
	fmt.Printf("Products catalog: %d entries\n", len(idx))

	if *orderNo == "" {
		return
	}

	svc := service.NewOrderService(source, cfg.FallbackImageURL)
	hydrated, err := svc.Hydrate(ctx, *orderNo)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrNotFound):
			log.Fatalf("Order %s not found in the sheet", *orderNo)
		case errors.Is(err, order.ErrMalformed):
			log.Fatalf("Order %s is malformed: item, weight and quantity lists disagree", *orderNo)
		default:
			log.Fatalf("Hydrate order %s: %v", *orderNo, err)
		}
	}

	fmt.Printf("Order %s (%s) status %q\n", hydrated.Header.OrderNo, hydrated.Header.CustomerName, hydrated.Header.Status)
	for _, item := range hydrated.Items {
		mark := "ok"
		if !item.Resolved {
			mark = "NOT IN CATALOG"
		}
		fmt.Printf("  %-30s x%-3d %10s PKR  [%s]\n", item.Name, item.Quantity, item.UnitPrice.StringFixed(2), mark)
	}
	fmt.Printf("Total: %s PKR\n", hydrated.Total.StringFixed(2))
}
