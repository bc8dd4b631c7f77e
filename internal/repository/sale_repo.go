package repository

import (
	"context"

	"github.com/criissj/gestion-de-inventario/internal/model"

	"gorm.io/gorm"
)

// SaleRepository defines the data access contract for sales.
type SaleRepository interface {
	CreateTx(tx *gorm.DB, s *model.Sale) error
	// List returns all sales newest-first with their line items preloaded.
	List(ctx context.Context) ([]model.Sale, error)
	DB() *gorm.DB
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) CreateTx(tx *gorm.DB, s *model.Sale) error {
	return tx.Create(s).Error
}

func (r *saleRepo) List(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepo) DB() *gorm.DB { return r.db }
