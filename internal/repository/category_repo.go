package repository

import (
	"go-resale-tracker/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	FindAll() ([]model.Category, error)
	FindByID(id string) (*model.Category, error)
	Rename(id, name string) error
	DeleteCascade(id string) error
	ListIDs() ([]string, error)
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepo) FindAll() ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Order("id ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) FindByID(id string) (*model.Category, error) {
	var category model.Category
	err := r.db.First(&category, "id = ?", id).Error
	return &category, err
}

func (r *categoryRepo) Rename(id, name string) error {
	return r.db.Model(&model.Category{}).Where("id = ?", id).Update("name", name).Error
}

// DeleteCascade removes the category and all its products in one
// transaction. Order lines referencing them are left to dangle on purpose.
func (r *categoryRepo) DeleteCascade(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&model.Product{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Category{}, "id = ?", id).Error
	})
}

func (r *categoryRepo) ListIDs() ([]string, error) {
	var ids []string
	err := r.db.Model(&model.Category{}).Order("id ASC").Pluck("id", &ids).Error
	return ids, err
}
