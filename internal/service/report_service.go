package service

import (
	"errors"
	"fmt"

	"go-resale-tracker/internal/model"
	"go-resale-tracker/internal/pricing"
	"go-resale-tracker/internal/repository"

	"gorm.io/gorm"
)

// ProductFigures pairs one catalog product with its derived per-unit
// reference figures.
type ProductFigures struct {
	Product model.Product       `json:"product"`
	Figures pricing.UnitFigures `json:"figures"`
}

type ReportService interface {
	GetPriceList() ([]ProductFigures, error)
	GetBatchDetails(batchID, groupBy string) (*pricing.Rollup, error)
	GetAnalysis() (*pricing.Rollup, error)
	GetBatchSummary(batchID string) (*pricing.BatchSummary, error)
	GetIncomeOverview() (*pricing.AllBatchesSummary, error)
}

// reportService recomputes every report from a fresh snapshot on each call.
// Nothing is cached or incrementally patched: a catalog edit is reflected by
// whichever request comes next.
type reportService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	orderRepo    repository.OrderRepository
	settingsRepo repository.SettingsRepository
}

func NewReportService(
	cRepo repository.CategoryRepository,
	pRepo repository.ProductRepository,
	oRepo repository.OrderRepository,
	sRepo repository.SettingsRepository,
) ReportService {
	return &reportService{
		categoryRepo: cRepo,
		productRepo:  pRepo,
		orderRepo:    oRepo,
		settingsRepo: sRepo,
	}
}

func (s *reportService) catalogLookup() (pricing.ProductLookup, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return pricing.NewCatalogLookup(products), nil
}

// GetPriceList returns every product with its derived unit figures, in
// catalog order.
func (s *reportService) GetPriceList() ([]ProductFigures, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]ProductFigures, 0, len(products))
	for _, p := range products {
		out = append(out, ProductFigures{Product: p, Figures: pricing.ComputeUnitFigures(p)})
	}
	return out, nil
}

// GetBatchDetails rolls one batch's lines up by buyer or by product. Lines
// whose product was deleted are skipped silently.
func (s *reportService) GetBatchDetails(batchID, groupBy string) (*pricing.Rollup, error) {
	var key pricing.GroupKey
	switch groupBy {
	case "buyer", "":
		key = pricing.ByBuyer()
	case "product":
		key = pricing.ByProduct()
	default:
		return nil, fmt.Errorf("unknown grouping %q (want buyer or product)", groupBy)
	}

	if _, err := s.orderRepo.FindBatchByID(batchID); err != nil {
		return nil, fmt.Errorf("batch %s: %w", batchID, ErrNotFound)
	}
	lines, err := s.orderRepo.FindLinesByBatch(batchID)
	if err != nil {
		return nil, err
	}
	lookup, err := s.catalogLookup()
	if err != nil {
		return nil, err
	}

	rollup := pricing.AggregateByKey(lines, lookup, key, nil)
	return &rollup, nil
}

// GetAnalysis rolls every line across all batches up by category, with a
// per-product breakdown inside each category.
func (s *reportService) GetAnalysis() (*pricing.Rollup, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, err
	}
	lines, err := s.orderRepo.FindAllLines()
	if err != nil {
		return nil, err
	}
	lookup, err := s.catalogLookup()
	if err != nil {
		return nil, err
	}

	byProduct := pricing.ByProduct()
	rollup := pricing.AggregateByKey(lines, lookup, pricing.ByCategory(categories), &byProduct)
	return &rollup, nil
}

func (s *reportService) GetBatchSummary(batchID string) (*pricing.BatchSummary, error) {
	if _, err := s.orderRepo.FindBatchByID(batchID); err != nil {
		return nil, fmt.Errorf("batch %s: %w", batchID, ErrNotFound)
	}
	lines, err := s.orderRepo.FindLinesByBatch(batchID)
	if err != nil {
		return nil, err
	}
	lookup, err := s.catalogLookup()
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.FindByBatch(batchID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		defaults := model.DefaultSettings(batchID)
		settings = &defaults
	}

	summary := pricing.SummarizeBatch(batchID, lines, lookup, *settings)
	return &summary, nil
}

// GetIncomeOverview summarizes every batch independently and sums the
// income/expense/profit triple across them.
func (s *reportService) GetIncomeOverview() (*pricing.AllBatchesSummary, error) {
	batches, err := s.orderRepo.FindBatches()
	if err != nil {
		return nil, err
	}
	lines, err := s.orderRepo.FindAllLines()
	if err != nil {
		return nil, err
	}
	allSettings, err := s.settingsRepo.FindAll()
	if err != nil {
		return nil, err
	}
	lookup, err := s.catalogLookup()
	if err != nil {
		return nil, err
	}

	linesByBatch := make(map[string][]model.OrderLine)
	for _, line := range lines {
		linesByBatch[line.OrderBatchID] = append(linesByBatch[line.OrderBatchID], line)
	}
	settingsByBatch := make(map[string]model.BatchSettings, len(allSettings))
	for _, st := range allSettings {
		settingsByBatch[st.BatchID] = st
	}

	overview := pricing.SummarizeAllBatches(batches, linesByBatch, settingsByBatch, lookup)
	return &overview, nil
}
