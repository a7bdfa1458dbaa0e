package domain

import (
	"github.com/shopspring/decimal"
)

// Item is a catalog product. Stock is mutated by direct edits and,
// indirectly, by checkout stock reconciliation.
type Item struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	SKU              string          `json:"sku"`
	Price            decimal.Decimal `json:"price"`
	Stock            int             `json:"stock"`
	ReorderThreshold int             `json:"reorder_threshold"`
	Active           bool            `json:"active"`
}

type CreateItemRequest struct {
	Name             string          `json:"name"`
	SKU              string          `json:"sku"`
	Price            decimal.Decimal `json:"price"`
	Stock            int             `json:"stock"`
	ReorderThreshold int             `json:"reorder_threshold"`
	Active           bool            `json:"active"`
}
