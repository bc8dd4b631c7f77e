package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name     string          `json:"name"     validate:"required,min=1,max=255"`
	Category string          `json:"category" validate:"required,max=100"`
	SKU      *string         `json:"sku"      validate:"omitempty,max=100"`
	Cost     decimal.Decimal `json:"cost"     validate:"min=0"`
	Price    decimal.Decimal `json:"price"    validate:"min=0"`
	Stock    int             `json:"stock"    validate:"min=0"`
}

// UpdateProductRequest uses pointer fields so that omitted fields keep their
// stored value, matching the original partial-update semantics.
type UpdateProductRequest struct {
	Name     *string          `json:"name"     validate:"omitempty,min=1,max=255"`
	Category *string          `json:"category" validate:"omitempty,max=100"`
	SKU      *string          `json:"sku"      validate:"omitempty,max=100"`
	Cost     *decimal.Decimal `json:"cost"`
	Price    *decimal.Decimal `json:"price"`
	Stock    *int             `json:"stock"    validate:"omitempty,min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	SKU       *string         `json:"sku"`
	Cost      decimal.Decimal `json:"cost"`
	Price     decimal.Decimal `json:"price"`
	MarginPct decimal.Decimal `json:"margin_pct"`
	Stock     int             `json:"stock"`
	IsActive  bool            `json:"is_active"`
}
