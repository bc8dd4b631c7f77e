package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/criissj/gestion-de-inventario/internal/dto"
	"github.com/criissj/gestion-de-inventario/internal/model"
	"github.com/criissj/gestion-de-inventario/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ProductService defines the business logic contract for the catalog.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	ListActive(ctx context.Context) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo    repository.ProductRepository
	logRepo repository.ProductLogRepository
	cache   *CatalogCache
}

func NewProductService(repo repository.ProductRepository, logRepo repository.ProductLogRepository, cache *CatalogCache) ProductService {
	return &productService{repo: repo, logRepo: logRepo, cache: cache}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if req.Cost.IsNegative() || req.Price.IsNegative() {
		return nil, errors.New("cost and price must be non-negative")
	}

	p := &model.Product{
		Name:     req.Name,
		Category: req.Category,
		SKU:      req.SKU,
		Cost:     req.Cost,
		Price:    req.Price,
		Stock:    req.Stock,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.audit(ctx, p.ID, model.LogActionCreate,
		fmt.Sprintf("Created product: %s, Stock: %d", p.Name, p.Stock))
	s.cache.Invalidate(ctx)

	return productToResponse(p), nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) ListActive(ctx context.Context) ([]dto.ProductResponse, error) {
	if cached, ok := s.cache.Get(ctx); ok {
		return cached, nil
	}

	products, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, *productToResponse(&products[i]))
	}

	s.cache.Set(ctx, resp)
	return resp, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("product not found")
	}

	// Record monetary/stock changes the way the audit view displays them.
	var changes []string
	if req.Price != nil && !req.Price.Equal(p.Price) {
		changes = append(changes, fmt.Sprintf("Price: %s -> %s", p.Price, req.Price))
	}
	if req.Stock != nil && *req.Stock != p.Stock {
		changes = append(changes, fmt.Sprintf("Stock: %d -> %d", p.Stock, *req.Stock))
	}
	if req.Cost != nil && !req.Cost.Equal(p.Cost) {
		changes = append(changes, fmt.Sprintf("Cost: %s -> %s", p.Cost, req.Cost))
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.SKU != nil {
		p.SKU = req.SKU
	}
	if req.Cost != nil {
		if req.Cost.IsNegative() {
			return nil, errors.New("cost must be non-negative")
		}
		p.Cost = *req.Cost
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, errors.New("price must be non-negative")
		}
		p.Price = *req.Price
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	if len(changes) > 0 {
		s.audit(ctx, p.ID, model.LogActionUpdate, strings.Join(changes, ", "))
	}
	s.cache.Invalidate(ctx)

	return productToResponse(p), nil
}

func (s *productService) Deactivate(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("product not found")
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.audit(ctx, id, model.LogActionDelete, "Product marked as inactive (soft delete)")
	s.cache.Invalidate(ctx)
	return nil
}

// audit writes a log row; failures are logged but never fail the operation.
func (s *productService) audit(ctx context.Context, productID uuid.UUID, action, details string) {
	entry := &model.ProductLog{ProductID: productID, Action: action, Details: details}
	if err := s.logRepo.Create(ctx, entry); err != nil {
		log.Error().Err(err).
			Str("product_id", productID.String()).
			Str("action", action).
			Msg("failed to write product log")
	}
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		Category:  p.Category,
		SKU:       p.SKU,
		Cost:      p.Cost,
		Price:     p.Price,
		MarginPct: p.Margin(),
		Stock:     p.Stock,
		IsActive:  p.IsActive,
	}
}
