package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/criissj/gestion-de-inventario/internal/dto"
	"github.com/criissj/gestion-de-inventario/internal/model"
	"github.com/criissj/gestion-de-inventario/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubProductRepo is an in-memory ProductRepository for testing.
type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
	order    []uuid.UUID
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	r.products[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) ListActive(_ context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, id := range r.order {
		if p := r.products[id]; p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.IsActive = false
	return nil
}

func (r *stubProductRepo) FindLowStock(_ context.Context, threshold, limit int) ([]model.Product, error) {
	var out []model.Product
	for _, id := range r.order {
		if p := r.products[id]; p.IsActive && p.Stock < threshold {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Stock < out[j].Stock })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubProductRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Product, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubProductRepo) DecrementStockTx(_ *gorm.DB, id uuid.UUID, qty int) error {
	p, ok := r.products[id]
	if !ok || p.Stock < qty {
		return gorm.ErrRecordNotFound
	}
	p.Stock -= qty
	return nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// stubLogRepo captures audit entries for assertion.
type stubLogRepo struct {
	logs []model.ProductLog
}

func (r *stubLogRepo) Create(_ context.Context, l *model.ProductLog) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	l.CreatedAt = time.Now()
	r.logs = append(r.logs, *l)
	return nil
}

func (r *stubLogRepo) CreateTx(_ *gorm.DB, l *model.ProductLog) error {
	return r.Create(context.Background(), l)
}

func (r *stubLogRepo) ListByProduct(_ context.Context, productID uuid.UUID) ([]model.ProductLog, error) {
	var out []model.ProductLog
	for i := len(r.logs) - 1; i >= 0; i-- {
		if r.logs[i].ProductID == productID {
			out = append(out, r.logs[i])
		}
	}
	return out, nil
}

func (r *stubLogRepo) byAction(action string) []model.ProductLog {
	var out []model.ProductLog
	for _, l := range r.logs {
		if l.Action == action {
			out = append(out, l)
		}
	}
	return out
}

var _ repository.ProductLogRepository = (*stubLogRepo)(nil)

// stubSaleRepo is an in-memory SaleRepository for testing.
type stubSaleRepo struct {
	sales []*model.Sale
}

func (r *stubSaleRepo) CreateTx(_ *gorm.DB, s *model.Sale) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.CreatedAt = time.Now()
	for i := range s.Items {
		if s.Items[i].ID == uuid.Nil {
			s.Items[i].ID = uuid.New()
		}
		s.Items[i].SaleID = s.ID
	}
	r.sales = append(r.sales, s)
	return nil
}

func (r *stubSaleRepo) List(_ context.Context) ([]model.Sale, error) {
	out := make([]model.Sale, 0, len(r.sales))
	for i := len(r.sales) - 1; i >= 0; i-- {
		out = append(out, *r.sales[i])
	}
	return out, nil
}

func (r *stubSaleRepo) DB() *gorm.DB { return nil }

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

// stubDashboardRepo returns canned aggregates.
type stubDashboardRepo struct {
	metrics     *repository.SalesMetrics
	top         []dto.TopProduct
	breakdown   []dto.PaymentBreakdown
	dailyTotals map[string]repository.DailyTotal
	metricsErr  error
}

func (r *stubDashboardRepo) MetricsSince(_ context.Context, _ time.Time) (*repository.SalesMetrics, error) {
	if r.metricsErr != nil {
		return nil, r.metricsErr
	}
	if r.metrics == nil {
		return nil, errors.New("no metrics configured")
	}
	return r.metrics, nil
}

func (r *stubDashboardRepo) TopSelling(_ context.Context, limit int) ([]dto.TopProduct, error) {
	if len(r.top) > limit {
		return r.top[:limit], nil
	}
	return r.top, nil
}

func (r *stubDashboardRepo) PaymentBreakdown(_ context.Context) ([]dto.PaymentBreakdown, error) {
	return r.breakdown, nil
}

func (r *stubDashboardRepo) DailyTotals(_ context.Context, _ time.Time) (map[string]repository.DailyTotal, error) {
	return r.dailyTotals, nil
}

var _ repository.DashboardRepository = (*stubDashboardRepo)(nil)
