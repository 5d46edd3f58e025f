package repository

import (
	"go-resale-tracker/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository interface {
	Save(settings *model.BatchSettings) error
	FindByBatch(batchID string) (*model.BatchSettings, error)
	FindAll() ([]model.BatchSettings, error)
}

type settingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) SettingsRepository {
	return &settingsRepo{db}
}

// Save upserts on batch id: settings exist only once explicitly saved, and
// saving again overwrites (last write wins).
func (r *settingsRepo) Save(settings *model.BatchSettings) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "batch_id"}},
		UpdateAll: true,
	}).Create(settings).Error
}

func (r *settingsRepo) FindByBatch(batchID string) (*model.BatchSettings, error) {
	var settings model.BatchSettings
	err := r.db.First(&settings, "batch_id = ?", batchID).Error
	return &settings, err
}

func (r *settingsRepo) FindAll() ([]model.BatchSettings, error) {
	var settings []model.BatchSettings
	err := r.db.Find(&settings).Error
	return settings, err
}
