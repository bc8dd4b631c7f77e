package dto

import "github.com/shopspring/decimal"

// TopProduct is one entry of the best-sellers widget: total units ever sold.
type TopProduct struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// PaymentBreakdown aggregates completed sales per payment method.
type PaymentBreakdown struct {
	Method string          `json:"method"`
	Total  decimal.Decimal `json:"total"`
	Count  int64           `json:"count"`
}

// DashboardResponse is the aggregate object behind GET /api/dashboard.
type DashboardResponse struct {
	TotalSalesToday    decimal.Decimal    `json:"total_sales_today"`
	TotalProfitToday   decimal.Decimal    `json:"total_profit_today"`
	TransactionCount   int64              `json:"transaction_count"`
	LowStockProducts   []ProductResponse  `json:"low_stock_products"`
	TopSellingProducts []TopProduct       `json:"top_selling_products"`
	PaymentMethods     []PaymentBreakdown `json:"payment_methods"`
}

// TrendPoint is one day of the 7-day sales chart. Date carries the weekday
// label ("Mon", "Tue", …) the chart renders on its X axis.
type TrendPoint struct {
	Date   string          `json:"date"`
	Total  decimal.Decimal `json:"total"`
	Profit decimal.Decimal `json:"profit"`
}
