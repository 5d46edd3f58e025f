package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderLine is one buyer's order of one product-quantity within a batch.
// The (CategoryID, ProductID) pair references a Product by composite key and
// is allowed to dangle if the product is later deleted: valuation skips such
// lines silently instead of failing.
type OrderLine struct {
	Timestamps
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrderBatchID string    `gorm:"type:varchar(7);not null;index" json:"order_batch_id" validate:"required"`
	CategoryID   string    `gorm:"type:varchar(3);not null" json:"category_id" validate:"required,category_code"`
	ProductID    string    `gorm:"type:varchar(2);not null" json:"product_id" validate:"required,product_code"`
	Quantity     int       `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	Description  string    `json:"description"`
	Buyer        string    `gorm:"type:varchar(255)" json:"buyer"`
	Remarks      string    `json:"remarks"`
	Note         string    `json:"note"`
	Date         string    `gorm:"type:varchar(10)" json:"date"`
}

// Line identity is assigned once and never changes.
func (l *OrderLine) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return
}
