package repository

import (
	"context"
	"time"

	"github.com/criissj/gestion-de-inventario/internal/dto"
	"github.com/criissj/gestion-de-inventario/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SalesMetrics aggregates revenue, profit and transaction count over a window.
type SalesMetrics struct {
	Total  decimal.Decimal
	Profit decimal.Decimal
	Count  int64
}

// DailyTotal is one day's revenue and profit for the trends chart.
type DailyTotal struct {
	Total  decimal.Decimal
	Profit decimal.Decimal
}

// DashboardRepository runs the read-only aggregate queries behind the
// dashboard and trends endpoints. All computation happens in SQL; the service
// layer only assembles responses.
type DashboardRepository interface {
	MetricsSince(ctx context.Context, from time.Time) (*SalesMetrics, error)
	TopSelling(ctx context.Context, limit int) ([]dto.TopProduct, error)
	PaymentBreakdown(ctx context.Context) ([]dto.PaymentBreakdown, error)
	// DailyTotals returns per-day aggregates since from, keyed by "2006-01-02".
	DailyTotals(ctx context.Context, from time.Time) (map[string]DailyTotal, error)
}

type dashboardRepo struct{ db *gorm.DB }

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepo{db: db}
}

func (r *dashboardRepo) MetricsSince(ctx context.Context, from time.Time) (*SalesMetrics, error) {
	var row struct {
		Total  decimal.Decimal
		Profit decimal.Decimal
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&model.Sale{}).
		Select("COALESCE(SUM(total_amount), 0) AS total, COALESCE(SUM(total_profit), 0) AS profit, COUNT(*) AS count").
		Where("created_at >= ?", from).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &SalesMetrics{Total: row.Total, Profit: row.Profit, Count: row.Count}, nil
}

func (r *dashboardRepo) TopSelling(ctx context.Context, limit int) ([]dto.TopProduct, error) {
	var rows []dto.TopProduct
	err := r.db.WithContext(ctx).Model(&model.SaleItem{}).
		Select("products.name AS name, SUM(sale_items.quantity) AS quantity").
		Joins("JOIN products ON products.id = sale_items.product_id").
		Group("products.name").
		Order("quantity DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepo) PaymentBreakdown(ctx context.Context) ([]dto.PaymentBreakdown, error) {
	var rows []dto.PaymentBreakdown
	err := r.db.WithContext(ctx).Model(&model.Sale{}).
		Select("payment_method AS method, COALESCE(SUM(total_amount), 0) AS total, COUNT(*) AS count").
		Group("payment_method").
		Order("total DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepo) DailyTotals(ctx context.Context, from time.Time) (map[string]DailyTotal, error) {
	var rows []struct {
		Date   time.Time
		Total  decimal.Decimal
		Profit decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&model.Sale{}).
		Select("DATE(created_at) AS date, COALESCE(SUM(total_amount), 0) AS total, COALESCE(SUM(total_profit), 0) AS profit").
		Where("created_at >= ?", from).
		Group("DATE(created_at)").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[string]DailyTotal, len(rows))
	for _, row := range rows {
		totals[row.Date.Format("2006-01-02")] = DailyTotal{Total: row.Total, Profit: row.Profit}
	}
	return totals, nil
}
