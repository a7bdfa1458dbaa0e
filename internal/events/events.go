package events

import (
	"time"
)

// SaleCreatedEvent is broadcast after a checkout persists a sale, so other
// console instances can refresh their views instead of relying on stale
// snapshots.
type SaleCreatedEvent struct {
	EventID       string     `json:"event_id"`
	SaleID        int64      `json:"sale_id"`
	InvoiceNumber string     `json:"invoice_number"`
	CustomerID    int64      `json:"customer_id"`
	TotalAmount   string     `json:"total_amount"`
	Items         []SaleLine `json:"items"`
	Timestamp     time.Time  `json:"timestamp"`
	RequestID     string     `json:"request_id"`
}

type SaleLine struct {
	ItemID    int64  `json:"item_id"`
	ItemName  string `json:"item_name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}
