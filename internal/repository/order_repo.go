package repository

import (
	"go-resale-tracker/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	CreateBatch(batch *model.OrderBatch) error
	FindBatches() ([]model.OrderBatch, error)
	FindBatchByID(id string) (*model.OrderBatch, error)
	DeleteBatchCascade(id string) error
	ListBatchIDsInMonth(year, month int) ([]string, error)

	CreateLine(line *model.OrderLine) error
	FindLineByID(id uuid.UUID) (*model.OrderLine, error)
	FindLinesByBatch(batchID string) ([]model.OrderLine, error)
	FindAllLines() ([]model.OrderLine, error)
	UpdateLine(line *model.OrderLine) error
	DeleteLine(id uuid.UUID) error
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

func (r *orderRepo) CreateBatch(batch *model.OrderBatch) error {
	return r.db.Create(batch).Error
}

func (r *orderRepo) FindBatches() ([]model.OrderBatch, error) {
	var batches []model.OrderBatch
	err := r.db.Order("id ASC").Find(&batches).Error
	return batches, err
}

func (r *orderRepo) FindBatchByID(id string) (*model.OrderBatch, error) {
	var batch model.OrderBatch
	err := r.db.First(&batch, "id = ?", id).Error
	return &batch, err
}

// DeleteBatchCascade removes the batch with its lines and settings in one
// transaction.
func (r *orderRepo) DeleteBatchCascade(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_batch_id = ?", id).Delete(&model.OrderLine{}).Error; err != nil {
			return err
		}
		if err := tx.Where("batch_id = ?", id).Delete(&model.BatchSettings{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.OrderBatch{}, "id = ?", id).Error
	})
}

func (r *orderRepo) ListBatchIDsInMonth(year, month int) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.OrderBatch{}).
		Where("year = ? AND month = ?", year, month).
		Order("id ASC").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *orderRepo) CreateLine(line *model.OrderLine) error {
	return r.db.Create(line).Error
}

func (r *orderRepo) FindLineByID(id uuid.UUID) (*model.OrderLine, error) {
	var line model.OrderLine
	err := r.db.First(&line, "id = ?", id).Error
	return &line, err
}

func (r *orderRepo) FindLinesByBatch(batchID string) ([]model.OrderLine, error) {
	var lines []model.OrderLine
	err := r.db.Where("order_batch_id = ?", batchID).Order("created_at ASC").Find(&lines).Error
	return lines, err
}

func (r *orderRepo) FindAllLines() ([]model.OrderLine, error) {
	var lines []model.OrderLine
	err := r.db.Order("order_batch_id ASC, created_at ASC").Find(&lines).Error
	return lines, err
}

func (r *orderRepo) UpdateLine(line *model.OrderLine) error {
	return r.db.Save(line).Error
}

func (r *orderRepo) DeleteLine(id uuid.UUID) error {
	return r.db.Delete(&model.OrderLine{}, "id = ?", id).Error
}
