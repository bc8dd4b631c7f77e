package repository

import (
	"context"

	"github.com/criissj/gestion-de-inventario/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductLogRepository stores the append-only product audit trail.
type ProductLogRepository interface {
	Create(ctx context.Context, l *model.ProductLog) error
	CreateTx(tx *gorm.DB, l *model.ProductLog) error
	// ListByProduct returns log rows for one product, newest first.
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]model.ProductLog, error)
}

type productLogRepo struct{ db *gorm.DB }

func NewProductLogRepository(db *gorm.DB) ProductLogRepository {
	return &productLogRepo{db: db}
}

func (r *productLogRepo) Create(ctx context.Context, l *model.ProductLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *productLogRepo) CreateTx(tx *gorm.DB, l *model.ProductLog) error {
	return tx.Create(l).Error
}

func (r *productLogRepo) ListByProduct(ctx context.Context, productID uuid.UUID) ([]model.ProductLog, error) {
	var logs []model.ProductLog
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}
