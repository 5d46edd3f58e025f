package model

// Category groups catalog products under a short code like "A01"
// (one letter + two digits). Deleting a category deletes its products.
type Category struct {
	Timestamps
	ID   string `gorm:"type:varchar(3);primaryKey" json:"id" validate:"required,category_code"`
	Name string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`

	Products []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}
