package order_test

import (
	"errors"
	"testing"

	"github.com/easyrokra/gateway/internal/order"
	"github.com/easyrokra/gateway/internal/sheet"
)

const ordersCSV = "Order No,Item Name,Weight,Quantity,Subtotal (PKR),Payment Mode,Customer Name,Customer Email,Delivery Address,Status\n" +
	"7001,\"Balm,Cream\",\"50g,100g\",\"2,1\",3300,Card,Ayesha,ayesha@example.com,\"House 12, Lane 4\",Pending\n" +
	"7002,Face Oil,30ml,1,900,Card,Bilal,bilal@example.com,Main Road,Complete\n" +
	"7001,Duplicate,1g,1,0,Card,Ghost,ghost@example.com,Nowhere,Pending\n"

func ordersTable(t *testing.T) *sheet.Table {
	t.Helper()
	return sheet.Parse(ordersCSV)
}

func TestFindReturnsFirstMatch(t *testing.T) {
	o, err := order.Find(ordersTable(t), "7001")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if o.CustomerName != "Ayesha" {
		t.Errorf("duplicate order numbers: first row must win, got customer %q", o.CustomerName)
	}
	if o.DeliveryAddress != "House 12, Lane 4" {
		t.Errorf("quoted address mangled: %q", o.DeliveryAddress)
	}
}

func TestFindNotFound(t *testing.T) {
	_, err := order.Find(ordersTable(t), "9999")
	if !errors.Is(err, order.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindExactMatchOnly(t *testing.T) {
	// "700" is a prefix of real order numbers but matches nothing itself.
	if _, err := order.Find(ordersTable(t), "700"); !errors.Is(err, order.ErrNotFound) {
		t.Fatalf("prefix must not match, got %v", err)
	}
}

func TestItemsExpandsParallelLists(t *testing.T) {
	o, err := order.Find(ordersTable(t), "7001")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	items, err := o.Items()
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	want := []order.LineItem{
		{Name: "Balm", Weight: "50g", Quantity: 2},
		{Name: "Cream", Weight: "100g", Quantity: 1},
	}
	for i, w := range want {
		if items[i] != w {
			t.Errorf("item %d = %+v, want %+v", i, items[i], w)
		}
	}
}

func TestItemsLengthMismatchIsMalformed(t *testing.T) {
	o := order.Order{ItemName: "A,B", Weight: "50g", Quantity: "1,1"}
	if _, err := o.Items(); !errors.Is(err, order.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestItemsEmptyNameCellYieldsNoItems(t *testing.T) {
	o := order.Order{ItemName: "  ", Weight: "", Quantity: ""}
	items, err := o.Items()
	if err != nil {
		t.Fatalf("empty cell is not an error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
}

func TestItemsQuantityFallback(t *testing.T) {
	o := order.Order{ItemName: "A,B,C,D", Weight: "1g,2g,3g,4g", Quantity: "2,junk,-4,0"}
	items, err := o.Items()
	if err != nil {
		t.Fatalf("Items: %v", err)
	}

	wantQty := []int{2, 1, 1, 1}
	for i, q := range wantQty {
		if items[i].Quantity != q {
			t.Errorf("item %d quantity = %d, want %d", i, items[i].Quantity, q)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		status string
		want   order.StatusClass
	}{
		{"Complete", order.Terminal},
		{"complete", order.Terminal},
		{"COMPLETED", order.Terminal},
		{"  completed  ", order.Terminal},
		{"Pending", order.Unpaid},
		{"Compleet", order.Unpaid}, // operator typo stays unpaid
		{"", order.Unpaid},
		{"shipped", order.Unpaid},
	}

	for _, tt := range tests {
		if got := order.Classify(tt.status); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestClassifyIdempotent(t *testing.T) {
	for _, s := range []string{"Complete", "Pending", ""} {
		first := order.Classify(s)
		second := order.Classify(s)
		if first != second {
			t.Errorf("Classify(%q) not stable: %v then %v", s, first, second)
		}
	}
}
