package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dhina-ss/Smart-Canteen/internal/domain"
)

func (c *Client) ListSales(ctx context.Context) ([]domain.Sale, error) {
	var sales []domain.Sale
	if err := c.do(ctx, http.MethodGet, cacheBust("/sales/"), nil, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (c *Client) GetSale(ctx context.Context, id int64) (*domain.Sale, error) {
	var sale domain.Sale
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/sales/%d/", id), nil, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

func (c *Client) CreateSale(ctx context.Context, req domain.CreateSaleRequest) (*domain.Sale, error) {
	var sale domain.Sale
	if err := c.do(ctx, http.MethodPost, "/sales/", req, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

// SaleInvoice returns the detailed invoice view of a single sale.
func (c *Client) SaleInvoice(ctx context.Context, id int64) (*domain.Sale, error) {
	var sale domain.Sale
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/sales/%d/invoice/", id), nil, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

func (c *Client) MonthlySummary(ctx context.Context) ([]domain.MonthlySummary, error) {
	var rows []domain.MonthlySummary
	if err := c.do(ctx, http.MethodGet, "/sales/monthly_summary/", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) TopItems(ctx context.Context) ([]domain.TopItem, error) {
	var rows []domain.TopItem
	if err := c.do(ctx, http.MethodGet, "/sales/top_items/", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/sales/dashboard_stats/", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
