package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry sold at the point of sale.
// Deleting a product only flips IsActive so that historical sales keep
// referencing it (soft delete).
type Product struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name     string          `gorm:"index;not null"`
	Category string          `gorm:"not null"`
	SKU      *string         `gorm:"uniqueIndex"`
	Cost     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock    int             `gorm:"not null;default:0"`
	IsActive bool            `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Product) TableName() string { return "products" }

// Margin returns (price - cost) / cost as a percentage.
// Returns zero when cost is zero to avoid a division panic.
func (p *Product) Margin() decimal.Decimal {
	if p.Cost.IsZero() {
		return decimal.Zero
	}
	return p.Price.Sub(p.Cost).Div(p.Cost).Mul(decimal.NewFromInt(100)).Round(2)
}
