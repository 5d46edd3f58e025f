package model

import "time"

// Timestamps is embedded by every persisted record. Catalog and batch tables
// use natural string keys, so there is no shared ID column here.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
