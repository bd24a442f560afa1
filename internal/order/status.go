package order

import "strings"

// StatusClass is the routing classification of an order's status cell.
type StatusClass int

const (
	// Missing means the order header was not found at all.
	Missing StatusClass = iota
	// Unpaid covers every non-empty status that is not terminal,
	// including operator typos; a half-typed state must never read as
	// paid.
	Unpaid
	// Terminal means the order has been paid and completed.
	Terminal
)

func (c StatusClass) String() string {
	switch c {
	case Missing:
		return "MISSING"
	case Unpaid:
		return "UNPAID"
	case Terminal:
		return "TERMINAL"
	}
	return "UNKNOWN"
}

// Classify maps a status cell to its class. Comparison is trimmed and
// lowercased against the two-element terminal allow-list; this is the only
// case-insensitive comparison in the pipeline.
func Classify(status string) StatusClass {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "complete", "completed":
		return Terminal
	default:
		return Unpaid
	}
}
