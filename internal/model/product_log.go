package model

import (
	"time"

	"github.com/google/uuid"
)

// Log actions. Written by the backend only — the audit trail is append-only
// and never edited or deleted.
const (
	LogActionCreate = "CREATE"
	LogActionUpdate = "UPDATE"
	LogActionDelete = "DELETE"
	LogActionSale   = "SALE"
)

// ProductLog records every state change of a product: creation, field
// updates, deactivation, and stock movements caused by sales.
type ProductLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Action    string    `gorm:"not null"`
	Details   string    `gorm:"type:text"`
	CreatedAt time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (ProductLog) TableName() string { return "product_logs" }
