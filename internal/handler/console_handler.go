package handler

import (
	"errors"
	"net/http"

	"github.com/dhina-ss/Smart-Canteen/internal/api"
	"github.com/dhina-ss/Smart-Canteen/internal/checkout"
	"github.com/dhina-ss/Smart-Canteen/internal/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConsoleHandler serves the admin console views. Every list view degrades to
// an empty data set plus a warning banner when the backend read fails; a
// page never errors out because the backend is down.
type ConsoleHandler struct {
	api      *api.Client
	workflow *checkout.Workflow
	logger   *zap.Logger
}

func NewConsoleHandler(client *api.Client, workflow *checkout.Workflow, logger *zap.Logger) *ConsoleHandler {
	return &ConsoleHandler{
		api:      client,
		workflow: workflow,
		logger:   logger,
	}
}

func (h *ConsoleHandler) listPage(c *gin.Context, data interface{}, err error, empty interface{}, warning string) {
	if err != nil {
		h.logger.Error("list page load failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"data": empty, "warning": warning})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (h *ConsoleHandler) Customers(c *gin.Context) {
	customers, err := h.api.ListCustomers(c.Request.Context())
	h.listPage(c, customers, err, []domain.Customer{}, "failed to load customers")
}

func (h *ConsoleHandler) Products(c *gin.Context) {
	items, err := h.api.ListItems(c.Request.Context())
	h.listPage(c, items, err, []domain.Item{}, "failed to load products")
}

// Inventory shows the full item list alongside items at or below their
// reorder threshold.
func (h *ConsoleHandler) Inventory(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := h.api.ListItems(ctx)
	if err != nil {
		h.logger.Error("inventory load failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{
			"data":    gin.H{"items": []domain.Item{}, "low_stock": []domain.Item{}},
			"warning": "failed to load inventory",
		})
		return
	}

	lowStock, err := h.api.LowStockItems(ctx)
	if err != nil {
		h.logger.Warn("low stock load failed", zap.Error(err))
		lowStock = []domain.Item{}
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"items": items, "low_stock": lowStock}})
}

func (h *ConsoleHandler) Sales(c *gin.Context) {
	sales, err := h.api.ListSales(c.Request.Context())
	h.listPage(c, sales, err, []domain.Sale{}, "failed to load sales")
}

// Invoices is the sale list reduced to its invoice-facing fields.
func (h *ConsoleHandler) Invoices(c *gin.Context) {
	sales, err := h.api.ListSales(c.Request.Context())
	if err != nil {
		h.logger.Error("invoice list load failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"data": []gin.H{}, "warning": "failed to load invoices"})
		return
	}

	invoices := make([]gin.H, 0, len(sales))
	for _, s := range sales {
		entry := gin.H{
			"id":             s.ID,
			"invoice_number": s.InvoiceNumber,
			"created_at":     s.CreatedAt,
			"total_amount":   s.TotalAmount,
			"payment_method": s.PaymentMethod,
			"payment_status": s.PaymentStatus,
		}
		if s.CustomerDetail != nil {
			entry["customer_name"] = s.CustomerDetail.Name
		}
		invoices = append(invoices, entry)
	}
	c.JSON(http.StatusOK, gin.H{"data": invoices})
}

// Dashboard aggregates stats, monthly summary, and top items. Each block
// degrades independently.
func (h *ConsoleHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	warnings := []string{}

	stats, err := h.api.DashboardStats(ctx)
	if err != nil {
		h.logger.Warn("dashboard stats load failed", zap.Error(err))
		warnings = append(warnings, "failed to load dashboard stats")
	}

	monthly, err := h.api.MonthlySummary(ctx)
	if err != nil {
		h.logger.Warn("monthly summary load failed", zap.Error(err))
		warnings = append(warnings, "failed to load monthly summary")
		monthly = []domain.MonthlySummary{}
	}

	topItems, err := h.api.TopItems(ctx)
	if err != nil {
		h.logger.Warn("top items load failed", zap.Error(err))
		warnings = append(warnings, "failed to load top items")
		topItems = []domain.TopItem{}
	}

	resp := gin.H{
		"data": gin.H{
			"stats":           stats,
			"monthly_summary": monthly,
			"top_items":       topItems,
		},
	}
	if len(warnings) > 0 {
		resp["warnings"] = warnings
	}
	c.JSON(http.StatusOK, resp)
}

// CheckoutRequest is the console checkout form payload.
type CheckoutRequest struct {
	CustomerName  string         `json:"customer_name" binding:"required"`
	CustomerPhone string         `json:"customer_phone" binding:"required"`
	Items         []CheckoutItem `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string         `json:"payment_method"`
	PaymentStatus string         `json:"payment_status"`
	Notes         string         `json:"notes"`
}

type CheckoutItem struct {
	Item     int64 `json:"item" binding:"required"`
	Quantity int   `json:"quantity" binding:"required,min=1"`
}

// Checkout runs the invoice workflow for one submitted form.
func (h *ConsoleHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("invalid checkout request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	if req.PaymentMethod == "" {
		req.PaymentMethod = domain.PaymentCash
	}
	if req.PaymentStatus == "" {
		req.PaymentStatus = domain.StatusPaid
	}
	if !domain.ValidPaymentMethod(req.PaymentMethod) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment method", "field": "payment_method"})
		return
	}
	if !domain.ValidPaymentStatus(req.PaymentStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment status", "field": "payment_status"})
		return
	}

	ctx := c.Request.Context()
	snap, err := h.workflow.LoadSnapshot(ctx)
	if err != nil {
		h.logger.Error("snapshot load failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load data, check backend connection"})
		return
	}

	lines := make([]checkout.Line, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, checkout.Line{ItemID: it.Item, Quantity: it.Quantity})
	}

	result, err := h.workflow.Run(ctx, snap, checkout.Request{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Lines:         lines,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: req.PaymentStatus,
		Notes:         req.Notes,
	}, nil)
	if err != nil {
		var ve *checkout.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message, "field": ve.Field})
			return
		}

		h.logger.Error("checkout failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"sale":                 result.Sale,
		"invoice_number":       result.InvoiceNumber,
		"total_amount":         result.Total.StringFixed(2),
		"receipt_path":         result.ReceiptPath,
		"failed_stock_updates": result.FailedStockUpdates,
	})
}
