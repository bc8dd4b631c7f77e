package service

import (
	"context"
	"fmt"
	"time"

	"github.com/criissj/gestion-de-inventario/internal/dto"
	"github.com/criissj/gestion-de-inventario/internal/repository"

	"github.com/shopspring/decimal"
)

const (
	dashboardLowStockLimit = 5
	dashboardTopLimit      = 5
	trendDays              = 7
)

// DashboardService assembles the aggregate metrics views. It owns no state;
// all numbers come from server-side SQL aggregation.
type DashboardService interface {
	Summary(ctx context.Context) (*dto.DashboardResponse, error)
	Trends(ctx context.Context) ([]dto.TrendPoint, error)
}

type dashboardService struct {
	repo              repository.DashboardRepository
	productRepo       repository.ProductRepository
	lowStockThreshold int
}

func NewDashboardService(repo repository.DashboardRepository, productRepo repository.ProductRepository, lowStockThreshold int) DashboardService {
	return &dashboardService{
		repo:              repo,
		productRepo:       productRepo,
		lowStockThreshold: lowStockThreshold,
	}
}

// Summary runs the four independent aggregate queries concurrently and
// assembles the dashboard payload.
func (s *dashboardService) Summary(ctx context.Context) (*dto.DashboardResponse, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	type metricsResult struct {
		metrics *repository.SalesMetrics
		err     error
	}
	type lowStockResult struct {
		products []dto.ProductResponse
		err      error
	}
	type topResult struct {
		top []dto.TopProduct
		err error
	}
	type breakdownResult struct {
		breakdown []dto.PaymentBreakdown
		err       error
	}

	metricsCh := make(chan metricsResult, 1)
	lowStockCh := make(chan lowStockResult, 1)
	topCh := make(chan topResult, 1)
	breakdownCh := make(chan breakdownResult, 1)

	go func() {
		m, err := s.repo.MetricsSince(ctx, todayStart)
		metricsCh <- metricsResult{m, err}
	}()
	go func() {
		products, err := s.productRepo.FindLowStock(ctx, s.lowStockThreshold, dashboardLowStockLimit)
		if err != nil {
			lowStockCh <- lowStockResult{nil, err}
			return
		}
		resp := make([]dto.ProductResponse, 0, len(products))
		for i := range products {
			resp = append(resp, *productToResponse(&products[i]))
		}
		lowStockCh <- lowStockResult{resp, nil}
	}()
	go func() {
		top, err := s.repo.TopSelling(ctx, dashboardTopLimit)
		topCh <- topResult{top, err}
	}()
	go func() {
		breakdown, err := s.repo.PaymentBreakdown(ctx)
		breakdownCh <- breakdownResult{breakdown, err}
	}()

	metrics := <-metricsCh
	lowStock := <-lowStockCh
	top := <-topCh
	breakdown := <-breakdownCh

	if metrics.err != nil {
		return nil, fmt.Errorf("dashboard: today's metrics: %w", metrics.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: low stock: %w", lowStock.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top selling: %w", top.err)
	}
	if breakdown.err != nil {
		return nil, fmt.Errorf("dashboard: payment breakdown: %w", breakdown.err)
	}

	return &dto.DashboardResponse{
		TotalSalesToday:    metrics.metrics.Total,
		TotalProfitToday:   metrics.metrics.Profit,
		TransactionCount:   metrics.metrics.Count,
		LowStockProducts:   lowStock.products,
		TopSellingProducts: top.top,
		PaymentMethods:     breakdown.breakdown,
	}, nil
}

// Trends returns the last 7 days of revenue/profit, oldest first, with days
// that had no sales zero-filled so the chart always shows a full week.
func (s *dashboardService) Trends(ctx context.Context) ([]dto.TrendPoint, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -(trendDays - 1))

	totals, err := s.repo.DailyTotals(ctx, start)
	if err != nil {
		return nil, err
	}

	points := make([]dto.TrendPoint, 0, trendDays)
	for i := 0; i < trendDays; i++ {
		day := start.AddDate(0, 0, i)
		point := dto.TrendPoint{
			Date:   day.Format("Mon"),
			Total:  decimal.Zero,
			Profit: decimal.Zero,
		}
		if t, ok := totals[day.Format("2006-01-02")]; ok {
			point.Total = t.Total
			point.Profit = t.Profit
		}
		points = append(points, point)
	}
	return points, nil
}
