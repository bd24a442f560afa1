// Package catalog builds the product index from the catalog sheet export.
package catalog

import (
	"strconv"
	"strings"

	"github.com/easyrokra/gateway/internal/enum"
	"github.com/easyrokra/gateway/internal/sheet"
	"github.com/shopspring/decimal"
)

// Product is one normalized catalog entry. Price is the live unit price in
// PKR; Quantity is remaining stock.
type Product struct {
	ItemID   string
	Name     string
	Price    decimal.Decimal
	Weight   string
	Quantity int
	Status   string
	Media    string
	Tags     string
}

// Index maps trimmed product name to its catalog entry.
type Index map[string]Product

// Build indexes the parsed products table by product name. On duplicate
// names the later row overwrites the earlier one; the sheet is the source
// of truth and its own lookup semantics do the same, so this is retained
// as policy.
func Build(table *sheet.Table) Index {
	idx := make(Index, len(table.Rows))
	for _, row := range table.Rows {
		name := strings.TrimSpace(row[enum.ColProductName])
		if name == "" {
			continue
		}
		idx[name] = Product{
			ItemID:   row[enum.ColItemID],
			Name:     name,
			Price:    parsePrice(row[enum.ColPrice]),
			Weight:   row[enum.ColWeight],
			Quantity: parseStock(row[enum.ColQuantity]),
			Status:   row[enum.ColStatus],
			Media:    row[enum.ColMedia],
			Tags:     row[enum.ColTags],
		}
	}
	return idx
}

// Lookup returns the entry for a trimmed product name.
func (idx Index) Lookup(name string) (Product, bool) {
	p, ok := idx[strings.TrimSpace(name)]
	return p, ok
}

// parsePrice strips thousands-separator commas and parses the remainder as
// a decimal. "1,250.00" → 1250.00. Unparseable prices read as zero.
func parsePrice(raw string) decimal.Decimal {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseStock(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}
