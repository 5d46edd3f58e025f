package model

type BatchStatus string

const (
	StatusProcessing BatchStatus = "processing"
	StatusPreorder   BatchStatus = "preorder"
	StatusClosed     BatchStatus = "closed"
)

// OrderBatch is one sales cycle, identified by YYYY + zero-padded MM + an
// uppercase letter suffix (e.g. "202511A"). Immutable after creation;
// deleting it cascades to its lines and settings.
type OrderBatch struct {
	Timestamps
	ID     string `gorm:"type:varchar(7);primaryKey" json:"id"`
	Year   int    `gorm:"not null" json:"year"`
	Month  int    `gorm:"not null" json:"month"`
	Suffix string `gorm:"type:varchar(1);not null" json:"suffix"`

	Lines []OrderLine `gorm:"foreignKey:OrderBatchID;constraint:OnDelete:CASCADE" json:"lines,omitempty"`
}

// BatchSettings holds the manually-entered money flows of one batch that
// cannot be derived from its order lines. At most one row per batch; a batch
// without a row behaves as all-zero defaults with status "processing".
type BatchSettings struct {
	Timestamps
	BatchID          string      `gorm:"type:varchar(7);primaryKey" json:"batch_id"`
	PackagingRevenue float64     `gorm:"default:0" json:"packaging_revenue" validate:"gte=0"`
	CardCharge       float64     `gorm:"default:0" json:"card_charge" validate:"gte=0"`
	CardFee          float64     `gorm:"default:0" json:"card_fee" validate:"gte=0"`
	IntlShipping     float64     `gorm:"default:0" json:"intl_shipping" validate:"gte=0"`
	DadReceivable    float64     `gorm:"default:0" json:"dad_receivable" validate:"gte=0"`
	PaymentNote      string      `json:"payment_note"`
	Status           BatchStatus `gorm:"type:varchar(10);default:processing" json:"status" validate:"omitempty,oneof=processing preorder closed"`
}

// DefaultSettings is what summaries use when no row was ever saved.
func DefaultSettings(batchID string) BatchSettings {
	return BatchSettings{BatchID: batchID, Status: StatusProcessing}
}
