package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dhina-ss/Smart-Canteen/internal/api"
	"github.com/dhina-ss/Smart-Canteen/internal/domain"
	"github.com/dhina-ss/Smart-Canteen/internal/events"
	"github.com/dhina-ss/Smart-Canteen/internal/receipt"
	"github.com/dhina-ss/Smart-Canteen/internal/stock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrCustomerResolution marks a failed customer lookup-or-create. Nothing
// else has been written when it is returned.
var ErrCustomerResolution = errors.New("customer resolution failed")

// Line is one requested sale line: a selected item and a quantity.
type Line struct {
	ItemID   int64
	Quantity int
}

// Request is the user-entered checkout form.
type Request struct {
	CustomerName  string
	CustomerPhone string
	Lines         []Line
	PaymentMethod string
	PaymentStatus string
	Notes         string
}

// Result reports a completed checkout. If Sale is set, the sale exists in
// the backend regardless of what happened to stock updates, the receipt, or
// the event broadcast.
type Result struct {
	Sale               *domain.Sale
	InvoiceNumber      string
	Total              decimal.Decimal
	ReceiptPath        string
	FailedStockUpdates int
}

// Workflow drives a single checkout: customer resolution, sale submission,
// stock reconciliation, receipt generation, and completion notification.
// There is no server-side transaction spanning these steps; everything after
// sale submission is best effort by design of the backend contract.
type Workflow struct {
	api      *api.Client
	stock    *stock.Reconciler
	receipts *receipt.Generator
	events   *events.Producer // nil when event publishing is disabled
	logger   *zap.Logger
}

func NewWorkflow(client *api.Client, reconciler *stock.Reconciler, receipts *receipt.Generator, producer *events.Producer, logger *zap.Logger) *Workflow {
	return &Workflow{
		api:      client,
		stock:    reconciler,
		receipts: receipts,
		events:   producer,
		logger:   logger,
	}
}

// InvoiceNumber derives a display invoice number from the known sale count.
// Advisory only: concurrent consoles can collide, and the backend is free to
// assign its own number instead.
func InvoiceNumber(saleCount int) string {
	return fmt.Sprintf("INV-%04d", saleCount+1)
}

// Total sums quantity * unit price over the requested lines, using prices
// from the snapshot.
func (s *Snapshot) Total(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		item := s.ItemByID(line.ItemID)
		if item == nil {
			continue
		}
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total.Round(2)
}

// Run executes the checkout against the given snapshot. onCreated, when
// non-nil, is invoked with the persisted sale so dependent views can
// refresh. Failures in steps after sale submission are logged and reflected
// in the Result but never fail the run.
func (w *Workflow) Run(ctx context.Context, snap *Snapshot, req Request, onCreated func(*domain.Sale)) (*Result, error) {
	if err := snap.Validate(req); err != nil {
		return nil, err
	}

	customerID, err := w.resolveCustomer(ctx, snap, req)
	if err != nil {
		return nil, err
	}

	invoiceNumber := InvoiceNumber(len(snap.Sales))
	total := snap.Total(req.Lines)

	sale, err := w.submitSale(ctx, snap, req, customerID, invoiceNumber, total)
	if err != nil {
		return nil, err
	}
	if sale.InvoiceNumber != "" {
		invoiceNumber = sale.InvoiceNumber
	}

	result := &Result{
		Sale:          sale,
		InvoiceNumber: invoiceNumber,
		Total:         total,
	}

	deductions := make([]stock.Deduction, 0, len(req.Lines))
	for _, line := range req.Lines {
		deductions = append(deductions, stock.Deduction{ItemID: line.ItemID, Quantity: line.Quantity})
	}
	result.FailedStockUpdates, _ = w.stock.Reconcile(ctx, snap.Items, deductions)

	if path, rerr := w.receipts.Generate(w.buildInvoice(snap, req, invoiceNumber, total)); rerr != nil {
		w.logger.Error("receipt generation failed",
			zap.String("invoice_number", invoiceNumber),
			zap.Error(rerr))
	} else {
		result.ReceiptPath = path
	}

	w.publishSaleCreated(ctx, snap, req, sale, invoiceNumber, total)

	if onCreated != nil {
		onCreated(sale)
	}

	w.logger.Info("checkout completed",
		zap.String("invoice_number", invoiceNumber),
		zap.Int64("sale_id", sale.ID),
		zap.String("total_amount", total.StringFixed(2)),
		zap.Int("failed_stock_updates", result.FailedStockUpdates))

	return result, nil
}

// resolveCustomer reuses an existing customer matched by phone, or creates
// one. A failure here aborts the whole workflow before any sale is written.
func (w *Workflow) resolveCustomer(ctx context.Context, snap *Snapshot, req Request) (int64, error) {
	if existing := snap.CustomerByPhone(req.CustomerPhone); existing != nil {
		w.logger.Info("using existing customer",
			zap.Int64("customer_id", existing.ID),
			zap.String("phone", existing.Phone))
		return existing.ID, nil
	}

	created, err := w.api.CreateCustomer(ctx, domain.CreateCustomerRequest{
		Name:  strings.TrimSpace(req.CustomerName),
		Phone: strings.TrimSpace(req.CustomerPhone),
		Email: "",
	})
	if err != nil {
		w.logger.Error("failed to create customer", zap.Error(err))
		return 0, fmt.Errorf("%w: %v", ErrCustomerResolution, err)
	}

	w.logger.Info("new customer created", zap.Int64("customer_id", created.ID))
	return created.ID, nil
}

// submitSale posts the sale. If the backend rejects the payload because of
// the invoice_number field, it retries exactly once with that field omitted
// and lets the backend assign the number.
func (w *Workflow) submitSale(ctx context.Context, snap *Snapshot, req Request, customerID int64, invoiceNumber string, total decimal.Decimal) (*domain.Sale, error) {
	items := make([]domain.CreateSaleItem, 0, len(req.Lines))
	for _, line := range req.Lines {
		item := snap.ItemByID(line.ItemID)
		items = append(items, domain.CreateSaleItem{
			Item:      line.ItemID,
			Quantity:  line.Quantity,
			UnitPrice: item.Price,
		})
	}

	payload := domain.CreateSaleRequest{
		Customer:       customerID,
		Items:          items,
		Notes:          strings.TrimSpace(req.Notes),
		InvoiceNumber:  invoiceNumber,
		TotalAmount:    total.StringFixed(2),
		PaymentMethod:  req.PaymentMethod,
		PaymentStatus:  req.PaymentStatus,
		TaxAmount:      "0.00",
		DiscountAmount: "0.00",
	}

	sale, err := w.api.CreateSale(ctx, payload)
	if err == nil {
		return sale, nil
	}

	if !strings.Contains(err.Error(), "invoice_number") {
		return nil, fmt.Errorf("submit sale: %w", err)
	}

	w.logger.Warn("backend rejected invoice_number, retrying without it", zap.Error(err))
	payload.InvoiceNumber = ""
	sale, err = w.api.CreateSale(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("submit sale without invoice number: %w", err)
	}
	return sale, nil
}

func (w *Workflow) buildInvoice(snap *Snapshot, req Request, invoiceNumber string, total decimal.Decimal) receipt.Invoice {
	lines := make([]receipt.Line, 0, len(req.Lines))
	for _, line := range req.Lines {
		item := snap.ItemByID(line.ItemID)
		lines = append(lines, receipt.Line{
			Name:      item.Name,
			Quantity:  line.Quantity,
			UnitPrice: item.Price,
		})
	}
	return receipt.Invoice{
		Number:        invoiceNumber,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		Lines:         lines,
		Total:         total,
		Notes:         strings.TrimSpace(req.Notes),
	}
}

// publishSaleCreated broadcasts the sale for cross-console refresh. Best
// effort: a broker outage must not fail a persisted checkout.
func (w *Workflow) publishSaleCreated(ctx context.Context, snap *Snapshot, req Request, sale *domain.Sale, invoiceNumber string, total decimal.Decimal) {
	if w.events == nil {
		return
	}

	lines := make([]events.SaleLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		item := snap.ItemByID(line.ItemID)
		lines = append(lines, events.SaleLine{
			ItemID:    line.ItemID,
			ItemName:  item.Name,
			Quantity:  line.Quantity,
			UnitPrice: item.Price.StringFixed(2),
		})
	}

	event := events.SaleCreatedEvent{
		EventID:       uuid.NewString(),
		SaleID:        sale.ID,
		InvoiceNumber: invoiceNumber,
		CustomerID:    sale.Customer,
		TotalAmount:   total.StringFixed(2),
		Items:         lines,
		Timestamp:     time.Now(),
		RequestID:     uuid.NewString(),
	}

	if err := w.events.PublishSaleCreated(ctx, event); err != nil {
		w.logger.Warn("sale.created publish failed",
			zap.String("invoice_number", invoiceNumber),
			zap.Error(err))
	}
}
