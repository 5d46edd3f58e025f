package service

import (
	"errors"
	"fmt"

	"go-resale-tracker/internal/ident"
	"go-resale-tracker/internal/model"
	"go-resale-tracker/internal/repository"
	"go-resale-tracker/internal/ws"
	"go-resale-tracker/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderService interface {
	CreateBatch(year, month int) (*model.OrderBatch, error)
	GetBatches() ([]model.OrderBatch, error)
	GetBatch(id string) (*model.OrderBatch, error)
	DeleteBatch(id string) error

	CreateLine(req *model.OrderLine) (*model.OrderLine, error)
	GetLines(batchID string) ([]model.OrderLine, error)
	UpdateLine(id uuid.UUID, req *model.OrderLine) (*model.OrderLine, error)
	DeleteLine(id uuid.UUID) error

	SaveSettings(batchID string, req *model.BatchSettings) (*model.BatchSettings, error)
	GetSettings(batchID string) (*model.BatchSettings, error)
}

type orderService struct {
	orderRepo    repository.OrderRepository
	settingsRepo repository.SettingsRepository
	wsHub        *ws.Hub
}

func NewOrderService(oRepo repository.OrderRepository, sRepo repository.SettingsRepository, hub *ws.Hub) OrderService {
	return &orderService{
		orderRepo:    oRepo,
		settingsRepo: sRepo,
		wsHub:        hub,
	}
}

func (s *orderService) notify(action string, payload interface{}) {
	go s.wsHub.NotifyChange(action, payload)
}

// CreateBatch allocates the next suffix letter for the given year+month and
// persists the batch. Each month's sequence starts back at "A".
func (s *orderService) CreateBatch(year, month int) (*model.OrderBatch, error) {
	ids, err := s.orderRepo.ListBatchIDsInMonth(year, month)
	if err != nil {
		return nil, err
	}
	id, err := ident.NextBatchID(year, month, ids)
	if err != nil {
		return nil, err
	}

	batch := &model.OrderBatch{
		ID:     id,
		Year:   year,
		Month:  month,
		Suffix: id[6:],
	}
	if err := s.orderRepo.CreateBatch(batch); err != nil {
		return nil, err
	}

	s.notify("orders_changed", changeEvent("batch_created", batch.ID))
	return batch, nil
}

func (s *orderService) GetBatches() ([]model.OrderBatch, error) {
	return s.orderRepo.FindBatches()
}

func (s *orderService) GetBatch(id string) (*model.OrderBatch, error) {
	batch, err := s.orderRepo.FindBatchByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("batch %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return batch, nil
}

// DeleteBatch removes the batch along with its lines and settings.
func (s *orderService) DeleteBatch(id string) error {
	if _, err := s.orderRepo.FindBatchByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("batch %s: %w", id, ErrNotFound)
		}
		return err
	}
	if err := s.orderRepo.DeleteBatchCascade(id); err != nil {
		return err
	}

	s.notify("orders_changed", changeEvent("batch_deleted", id))
	return nil
}

// CreateLine records one order line. The batch must exist; the product
// reference is deliberately not checked, so lines can outlive their product.
func (s *orderService) CreateLine(req *model.OrderLine) (*model.OrderLine, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, firstValidationError(errs)
	}
	if _, err := s.orderRepo.FindBatchByID(req.OrderBatchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("batch %s: %w", req.OrderBatchID, ErrNotFound)
		}
		return nil, err
	}
	if err := s.orderRepo.CreateLine(req); err != nil {
		return nil, err
	}

	s.notify("orders_changed", changeEvent("line_created", req.ID.String()))
	return req, nil
}

func (s *orderService) GetLines(batchID string) ([]model.OrderLine, error) {
	if _, err := s.orderRepo.FindBatchByID(batchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("batch %s: %w", batchID, ErrNotFound)
		}
		return nil, err
	}
	return s.orderRepo.FindLinesByBatch(batchID)
}

// UpdateLine replaces the mutable fields of one line. The line keeps its id
// and batch; moving a line between batches is not supported.
func (s *orderService) UpdateLine(id uuid.UUID, req *model.OrderLine) (*model.OrderLine, error) {
	existing, err := s.orderRepo.FindLineByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order line %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	existing.CategoryID = req.CategoryID
	existing.ProductID = req.ProductID
	existing.Quantity = req.Quantity
	existing.Description = req.Description
	existing.Buyer = req.Buyer
	existing.Remarks = req.Remarks
	existing.Note = req.Note
	existing.Date = req.Date

	if errs := validator.ValidateStruct(existing); len(errs) > 0 {
		return nil, firstValidationError(errs)
	}
	if err := s.orderRepo.UpdateLine(existing); err != nil {
		return nil, err
	}

	s.notify("orders_changed", changeEvent("line_updated", id.String()))
	return existing, nil
}

func (s *orderService) DeleteLine(id uuid.UUID) error {
	if _, err := s.orderRepo.FindLineByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("order line %s: %w", id, ErrNotFound)
		}
		return err
	}
	if err := s.orderRepo.DeleteLine(id); err != nil {
		return err
	}

	s.notify("orders_changed", changeEvent("line_deleted", id.String()))
	return nil
}

// SaveSettings upserts the batch's settings row. Saving again overwrites the
// previous values wholesale.
func (s *orderService) SaveSettings(batchID string, req *model.BatchSettings) (*model.BatchSettings, error) {
	if _, err := s.orderRepo.FindBatchByID(batchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("batch %s: %w", batchID, ErrNotFound)
		}
		return nil, err
	}

	req.BatchID = batchID
	if req.Status == "" {
		req.Status = model.StatusProcessing
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, firstValidationError(errs)
	}
	if err := s.settingsRepo.Save(req); err != nil {
		return nil, err
	}

	s.notify("orders_changed", changeEvent("settings_saved", batchID))
	return req, nil
}

// GetSettings returns the stored settings, or zero defaults when the batch
// never had a row saved. A never-saved batch is not an error.
func (s *orderService) GetSettings(batchID string) (*model.BatchSettings, error) {
	if _, err := s.orderRepo.FindBatchByID(batchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("batch %s: %w", batchID, ErrNotFound)
		}
		return nil, err
	}

	settings, err := s.settingsRepo.FindByBatch(batchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			defaults := model.DefaultSettings(batchID)
			return &defaults, nil
		}
		return nil, err
	}
	return settings, nil
}
