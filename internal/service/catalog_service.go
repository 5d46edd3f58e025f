package service

import (
	"errors"
	"fmt"

	"go-resale-tracker/internal/ident"
	"go-resale-tracker/internal/model"
	"go-resale-tracker/internal/repository"
	"go-resale-tracker/internal/ws"
	"go-resale-tracker/pkg/validator"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

type CatalogService interface {
	CreateCategory(name string) (*model.Category, error)
	GetCategories() ([]model.Category, error)
	RenameCategory(id, name string) (*model.Category, error)
	DeleteCategory(id string) error

	CreateProduct(req *model.Product) (*model.Product, error)
	GetProducts() ([]model.Product, error)
	GetProductsByCategory(categoryID string) ([]model.Product, error)
	UpdateProduct(categoryID, id string, req *model.Product) (*model.Product, error)
	DeleteProduct(categoryID, id string) error
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	wsHub        *ws.Hub
}

func NewCatalogService(cRepo repository.CategoryRepository, pRepo repository.ProductRepository, hub *ws.Hub) CatalogService {
	return &catalogService{
		categoryRepo: cRepo,
		productRepo:  pRepo,
		wsHub:        hub,
	}
}

func firstValidationError(errs []*validator.ErrorResponse) error {
	return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag)
}

func (s *catalogService) notify(action string, payload interface{}) {
	go s.wsHub.NotifyChange(action, payload)
}

// CreateCategory allocates the next category id from the ids currently in
// use and persists the category. The id is server-assigned, never
// client-chosen.
func (s *catalogService) CreateCategory(name string) (*model.Category, error) {
	if name == "" {
		return nil, errors.New("category name is required")
	}

	ids, err := s.categoryRepo.ListIDs()
	if err != nil {
		return nil, err
	}
	nextID, err := ident.NextCategoryID(ids)
	if err != nil {
		return nil, err
	}

	category := &model.Category{ID: nextID, Name: name}
	if errs := validator.ValidateStruct(category); len(errs) > 0 {
		return nil, firstValidationError(errs)
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}

	s.notify("catalog_changed", changeEvent("category_created", category.ID))
	return category, nil
}

func (s *catalogService) GetCategories() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *catalogService) RenameCategory(id, name string) (*model.Category, error) {
	if name == "" {
		return nil, errors.New("category name is required")
	}
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	if err := s.categoryRepo.Rename(id, name); err != nil {
		return nil, err
	}

	s.notify("catalog_changed", changeEvent("category_renamed", id))
	return s.categoryRepo.FindByID(id)
}

// DeleteCategory removes the category and its products. Order lines that
// referenced them stay behind and simply dangle.
func (s *catalogService) DeleteCategory(id string) error {
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("category %s: %w", id, ErrNotFound)
		}
		return err
	}
	if err := s.categoryRepo.DeleteCascade(id); err != nil {
		return err
	}

	s.notify("catalog_changed", changeEvent("category_deleted", id))
	return nil
}

// CreateProduct allocates the next product id within the category. The
// category must exist; the id counter is scoped per category.
func (s *catalogService) CreateProduct(req *model.Product) (*model.Product, error) {
	if _, err := s.categoryRepo.FindByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %s: %w", req.CategoryID, ErrNotFound)
		}
		return nil, err
	}

	ids, err := s.productRepo.ListIDsInCategory(req.CategoryID)
	if err != nil {
		return nil, err
	}
	req.ID, err = ident.NextProductID(ids)
	if err != nil {
		return nil, err
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, firstValidationError(errs)
	}
	if err := s.productRepo.Create(req); err != nil {
		return nil, err
	}

	s.notify("catalog_changed", changeEvent("product_created", req.CategoryID+"-"+req.ID))
	return req, nil
}

func (s *catalogService) GetProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *catalogService) GetProductsByCategory(categoryID string) ([]model.Product, error) {
	return s.productRepo.FindByCategory(categoryID)
}

// UpdateProduct replaces the mutable fields of one product. The composite
// key comes from the route, never the body.
func (s *catalogService) UpdateProduct(categoryID, id string, req *model.Product) (*model.Product, error) {
	existing, err := s.productRepo.FindByKey(categoryID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s-%s: %w", categoryID, id, ErrNotFound)
		}
		return nil, err
	}

	existing.Name = req.Name
	existing.JPYPrice = req.JPYPrice
	existing.DomesticShip = req.DomesticShip
	existing.HandlingFee = req.HandlingFee
	existing.IntlShip = req.IntlShip
	existing.RateSale = req.RateSale
	existing.RateCost = req.RateCost
	existing.InputPrice = req.InputPrice

	if errs := validator.ValidateStruct(existing); len(errs) > 0 {
		return nil, firstValidationError(errs)
	}
	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}

	s.notify("catalog_changed", changeEvent("product_updated", categoryID+"-"+id))
	return existing, nil
}

func (s *catalogService) DeleteProduct(categoryID, id string) error {
	if _, err := s.productRepo.FindByKey(categoryID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("product %s-%s: %w", categoryID, id, ErrNotFound)
		}
		return err
	}
	if err := s.productRepo.Delete(categoryID, id); err != nil {
		return err
	}

	s.notify("catalog_changed", changeEvent("product_deleted", categoryID+"-"+id))
	return nil
}

func changeEvent(action, id string) map[string]interface{} {
	return map[string]interface{}{"action": action, "id": id}
}
