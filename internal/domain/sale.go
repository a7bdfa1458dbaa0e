package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods accepted by the backend.
const (
	PaymentCash         = "cash"
	PaymentCard         = "card"
	PaymentUPI          = "upi"
	PaymentBankTransfer = "bank_transfer"
	PaymentCheque       = "cheque"
	PaymentOther        = "other"
)

// Payment statuses accepted by the backend.
const (
	StatusPaid      = "paid"
	StatusPending   = "pending"
	StatusPartial   = "partial"
	StatusCancelled = "cancelled"
)

func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentUPI, PaymentBankTransfer, PaymentCheque, PaymentOther:
		return true
	}
	return false
}

func ValidPaymentStatus(s string) bool {
	switch s {
	case StatusPaid, StatusPending, StatusPartial, StatusCancelled:
		return true
	}
	return false
}

// Sale is a persisted sales transaction. Immutable from this client's
// perspective once created.
type Sale struct {
	ID             int64           `json:"id"`
	InvoiceNumber  string          `json:"invoice_number"`
	Customer       int64           `json:"customer"`
	CustomerDetail *Customer       `json:"customer_detail,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	Items          []SaleItem      `json:"items"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PaymentMethod  string          `json:"payment_method,omitempty"`
	PaymentStatus  string          `json:"payment_status,omitempty"`
	TaxAmount      decimal.Decimal `json:"tax_amount,omitempty"`
	DiscountAmount decimal.Decimal `json:"discount_amount,omitempty"`
	Notes          string          `json:"notes,omitempty"`
}

// SaleItem is a line item embedded in a sale. UnitPrice is copied from the
// item at selection time.
type SaleItem struct {
	ID         int64           `json:"id"`
	Item       int64           `json:"item"`
	ItemDetail *Item           `json:"item_detail,omitempty"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

// LineTotal returns quantity * unit price for a single line.
func (si SaleItem) LineTotal() decimal.Decimal {
	return si.UnitPrice.Mul(decimal.NewFromInt(int64(si.Quantity)))
}

// CreateSaleRequest is the checkout submission payload. InvoiceNumber is
// advisory; the backend may reject it, in which case the workflow retries
// with the field omitted so the backend assigns its own number.
type CreateSaleRequest struct {
	Customer       int64            `json:"customer"`
	Items          []CreateSaleItem `json:"items"`
	Notes          string           `json:"notes"`
	InvoiceNumber  string           `json:"invoice_number,omitempty"`
	TotalAmount    string           `json:"total_amount"`
	PaymentMethod  string           `json:"payment_method"`
	PaymentStatus  string           `json:"payment_status"`
	TaxAmount      string           `json:"tax_amount"`
	DiscountAmount string           `json:"discount_amount"`
}

type CreateSaleItem struct {
	Item      int64           `json:"item"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}
