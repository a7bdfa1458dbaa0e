package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats is the backend's pre-aggregated dashboard record.
type DashboardStats struct {
	ID             int64           `json:"id"`
	TotalSales     int             `json:"total_sales"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalCustomers int             `json:"total_customers"`
	TotalItemsSold int             `json:"total_items_sold"`
	AvgSaleValue   decimal.Decimal `json:"avg_sale_value"`
	LastUpdated    time.Time       `json:"last_updated"`
}

// MonthlySummary is one row of the monthly sales aggregate.
type MonthlySummary struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// TopItem is one row of the top-selling items aggregate. The field name
// follows the backend's ORM-generated key.
type TopItem struct {
	Name     string `json:"items__item__name"`
	Quantity int    `json:"qty"`
}
