package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CheckoutItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity"   validate:"required,min=1"`
}

// CheckoutRequest is the body of POST /api/sales, exactly as the POS terminal
// submits it. PaymentMethod defaults to Cash when omitted.
type CheckoutRequest struct {
	Items         []CheckoutItemRequest `json:"items"          validate:"required,min=1,dive"`
	PaymentMethod string                `json:"payment_method" validate:"omitempty,oneof=Cash Card Transfer"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SaleItemResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Cost      decimal.Decimal `json:"cost"`
}

type SaleResponse struct {
	ID            string             `json:"id"`
	DateTime      string             `json:"date_time"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	TotalProfit   decimal.Decimal    `json:"total_profit"`
	PaymentMethod string             `json:"payment_method"`
	Items         []SaleItemResponse `json:"items"`
}
