package model

// Product is one catalog SKU. It is keyed by (CategoryID, ID) where ID is a
// two-digit code scoped to the category.
//
// The JPY fields and both exchange rates feed the pricing engine. InputPrice
// is the operator's manually-set sale price in TWD — it is what the buyer is
// actually charged, as opposed to the RateSale-derived reference price.
type Product struct {
	Timestamps
	CategoryID string `gorm:"type:varchar(3);primaryKey" json:"category_id" validate:"required,category_code"`
	ID         string `gorm:"type:varchar(2);primaryKey" json:"id" validate:"required,product_code"`
	Name       string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`

	JPYPrice     float64 `gorm:"default:0" json:"jpy_price" validate:"gte=0"`
	DomesticShip float64 `gorm:"default:0" json:"domestic_ship" validate:"gte=0"`
	HandlingFee  float64 `gorm:"default:0" json:"handling_fee" validate:"gte=0"`
	IntlShip     float64 `gorm:"default:0" json:"intl_ship" validate:"gte=0"`
	RateSale     float64 `gorm:"default:0" json:"rate_sale" validate:"gte=0"`
	RateCost     float64 `gorm:"default:0" json:"rate_cost" validate:"gte=0"`
	InputPrice   float64 `gorm:"default:0" json:"input_price" validate:"gte=0"`
}
