package repository

import (
	"go-resale-tracker/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByKey(categoryID, id string) (*model.Product, error)
	FindByCategory(categoryID string) ([]model.Product, error)
	Update(product *model.Product) error
	Delete(categoryID, id string) error
	ListIDsInCategory(categoryID string) ([]string, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("category_id ASC, id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByKey(categoryID, id string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "category_id = ? AND id = ?", categoryID, id).Error
	return &product, err
}

func (r *productRepo) FindByCategory(categoryID string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("category_id = ?", categoryID).Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(categoryID, id string) error {
	return r.db.Delete(&model.Product{}, "category_id = ? AND id = ?", categoryID, id).Error
}

// ListIDsInCategory feeds the product id allocator; ids from other
// categories must not influence the sequence.
func (r *productRepo) ListIDsInCategory(categoryID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.Product{}).
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Pluck("id", &ids).Error
	return ids, err
}
