package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"go-resale-tracker/internal/model"
)

// In-memory repositories backed by slices, enough to drive the report and
// export paths without a database.

type fakeCategoryRepo struct{ categories []model.Category }

func (r *fakeCategoryRepo) Create(c *model.Category) error {
	r.categories = append(r.categories, *c)
	return nil
}

func (r *fakeCategoryRepo) FindAll() ([]model.Category, error) { return r.categories, nil }

func (r *fakeCategoryRepo) FindByID(id string) (*model.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCategoryRepo) Rename(id, name string) error  { return nil }
func (r *fakeCategoryRepo) DeleteCascade(id string) error { return nil }

func (r *fakeCategoryRepo) ListIDs() ([]string, error) {
	ids := make([]string, 0, len(r.categories))
	for _, c := range r.categories {
		ids = append(ids, c.ID)
	}
	return ids, nil
}

type fakeProductRepo struct{ products []model.Product }

func (r *fakeProductRepo) Create(p *model.Product) error {
	r.products = append(r.products, *p)
	return nil
}

func (r *fakeProductRepo) FindAll() ([]model.Product, error) { return r.products, nil }

func (r *fakeProductRepo) FindByKey(categoryID, id string) (*model.Product, error) {
	for _, p := range r.products {
		if p.CategoryID == categoryID && p.ID == id {
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) FindByCategory(categoryID string) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *model.Product) error      { return nil }
func (r *fakeProductRepo) Delete(categoryID, id string) error { return nil }

func (r *fakeProductRepo) ListIDsInCategory(categoryID string) ([]string, error) {
	var ids []string
	for _, p := range r.products {
		if p.CategoryID == categoryID {
			ids = append(ids, p.ID)
		}
	}
	return ids, nil
}

type fakeOrderRepo struct {
	batches []model.OrderBatch
	lines   []model.OrderLine
}

func (r *fakeOrderRepo) CreateBatch(b *model.OrderBatch) error {
	r.batches = append(r.batches, *b)
	return nil
}

func (r *fakeOrderRepo) FindBatches() ([]model.OrderBatch, error) { return r.batches, nil }

func (r *fakeOrderRepo) FindBatchByID(id string) (*model.OrderBatch, error) {
	for _, b := range r.batches {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeOrderRepo) DeleteBatchCascade(id string) error { return nil }

func (r *fakeOrderRepo) ListBatchIDsInMonth(year, month int) ([]string, error) {
	var ids []string
	for _, b := range r.batches {
		if b.Year == year && b.Month == month {
			ids = append(ids, b.ID)
		}
	}
	return ids, nil
}

func (r *fakeOrderRepo) CreateLine(l *model.OrderLine) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	r.lines = append(r.lines, *l)
	return nil
}

func (r *fakeOrderRepo) FindLineByID(id uuid.UUID) (*model.OrderLine, error) {
	for _, l := range r.lines {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeOrderRepo) FindLinesByBatch(batchID string) ([]model.OrderLine, error) {
	var out []model.OrderLine
	for _, l := range r.lines {
		if l.OrderBatchID == batchID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) FindAllLines() ([]model.OrderLine, error) { return r.lines, nil }
func (r *fakeOrderRepo) UpdateLine(l *model.OrderLine) error      { return nil }
func (r *fakeOrderRepo) DeleteLine(id uuid.UUID) error            { return nil }

type fakeSettingsRepo struct{ settings map[string]model.BatchSettings }

func (r *fakeSettingsRepo) Save(s *model.BatchSettings) error {
	if r.settings == nil {
		r.settings = make(map[string]model.BatchSettings)
	}
	r.settings[s.BatchID] = *s
	return nil
}

func (r *fakeSettingsRepo) FindByBatch(batchID string) (*model.BatchSettings, error) {
	if s, ok := r.settings[batchID]; ok {
		return &s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSettingsRepo) FindAll() ([]model.BatchSettings, error) {
	out := make([]model.BatchSettings, 0, len(r.settings))
	for _, s := range r.settings {
		out = append(out, s)
	}
	return out, nil
}

func fixtureRepos() (*fakeCategoryRepo, *fakeProductRepo, *fakeOrderRepo, *fakeSettingsRepo) {
	categories := &fakeCategoryRepo{categories: []model.Category{
		{ID: "A01", Name: "排球少年"},
		{ID: "A03", Name: "銀魂"},
	}}
	products := &fakeProductRepo{products: []model.Product{
		{CategoryID: "A01", ID: "01", Name: "1.骨牌", JPYPrice: 880, IntlShip: 30, RateSale: 0.250, RateCost: 0.205, InputPrice: 250},
		{CategoryID: "A03", ID: "01", Name: "1.生日徽章", JPYPrice: 550, IntlShip: 12, RateSale: 0.250, RateCost: 0.205, InputPrice: 150},
	}}
	orders := &fakeOrderRepo{batches: []model.OrderBatch{
		{ID: "202508A", Year: 2025, Month: 8, Suffix: "A"},
	}}
	orders.lines = []model.OrderLine{
		{ID: uuid.New(), OrderBatchID: "202508A", CategoryID: "A01", ProductID: "01", Quantity: 2, Buyer: "Amy"},
		{ID: uuid.New(), OrderBatchID: "202508A", CategoryID: "A03", ProductID: "01", Quantity: 1, Buyer: "Ben"},
	}
	settings := &fakeSettingsRepo{settings: map[string]model.BatchSettings{
		"202508A": {BatchID: "202508A", PackagingRevenue: 50, CardCharge: 1000, CardFee: 15, Status: model.StatusProcessing},
	}}
	return categories, products, orders, settings
}

func TestReportServiceBatchDetails(t *testing.T) {
	c, p, o, s := fixtureRepos()
	svc := NewReportService(c, p, o, s)

	rollup, err := svc.GetBatchDetails("202508A", "buyer")
	require.NoError(t, err)

	require.Len(t, rollup.Groups, 2)
	assert.Equal(t, "Amy", rollup.Groups[0].Key)
	assert.Equal(t, 500.0, rollup.Groups[0].Totals.RevenueTotal)
	assert.Equal(t, 650.0, rollup.GrandTotal.RevenueTotal)
}

func TestReportServiceBatchDetailsUnknownGrouping(t *testing.T) {
	c, p, o, s := fixtureRepos()
	svc := NewReportService(c, p, o, s)

	_, err := svc.GetBatchDetails("202508A", "color")
	assert.Error(t, err)
}

func TestReportServiceBatchDetailsMissingBatch(t *testing.T) {
	c, p, o, s := fixtureRepos()
	svc := NewReportService(c, p, o, s)

	_, err := svc.GetBatchDetails("209912Z", "buyer")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReportServiceAnalysis(t *testing.T) {
	c, p, o, s := fixtureRepos()
	svc := NewReportService(c, p, o, s)

	rollup, err := svc.GetAnalysis()
	require.NoError(t, err)

	require.Len(t, rollup.Groups, 2)
	assert.Equal(t, "A01 排球少年", rollup.Groups[0].Label)
	require.Len(t, rollup.Groups[0].Subgroups, 1)
	assert.Equal(t, "A01-01", rollup.Groups[0].Subgroups[0].Key)
}

func TestReportServiceBatchSummary(t *testing.T) {
	c, p, o, s := fixtureRepos()
	svc := NewReportService(c, p, o, s)

	summary, err := svc.GetBatchSummary("202508A")
	require.NoError(t, err)

	assert.Equal(t, 650.0, summary.TotalSales)
	assert.Equal(t, 700.0, summary.TotalRevenue) // + packaging 50
	assert.Equal(t, 1015.0, summary.TotalExpenses)
	assert.Equal(t, -315.0, summary.NetProfit)
}

func TestReportServiceBatchSummaryDefaultsSettings(t *testing.T) {
	c, p, o, s := fixtureRepos()
	delete(s.settings, "202508A")
	svc := NewReportService(c, p, o, s)

	summary, err := svc.GetBatchSummary("202508A")
	require.NoError(t, err)

	assert.Equal(t, model.StatusProcessing, summary.Status)
	assert.Equal(t, 650.0, summary.TotalRevenue)
	assert.Zero(t, summary.TotalExpenses)
}

func TestReportServiceIncomeOverview(t *testing.T) {
	c, p, o, s := fixtureRepos()
	svc := NewReportService(c, p, o, s)

	overview, err := svc.GetIncomeOverview()
	require.NoError(t, err)

	require.Len(t, overview.Batches, 1)
	assert.Equal(t, 700.0, overview.TotalIncome)
	assert.Equal(t, 1015.0, overview.TotalExpenses)
	assert.Equal(t, -315.0, overview.TotalProfit)
}

func TestExportServiceBatchDetails(t *testing.T) {
	c, p, o, s := fixtureRepos()
	reports := NewReportService(c, p, o, s)
	exports := NewExportService(o, reports)

	doc, err := exports.ExportBatchDetails("202508A", "buyer")
	require.NoError(t, err)

	assert.Equal(t, "202508A-details-buyer.csv", doc.Filename)
	// Header + 2 lines + 2 subtotals + grand total.
	require.Len(t, doc.Rows, 6)
	assert.Equal(t, "total", doc.Rows[5][0])
	assert.Equal(t, "650", doc.Rows[5][7])
}

func TestExportServicePriceList(t *testing.T) {
	c, p, o, s := fixtureRepos()
	reports := NewReportService(c, p, o, s)
	exports := NewExportService(o, reports)

	doc, err := exports.ExportPriceList()
	require.NoError(t, err)

	require.Len(t, doc.Rows, 3)
	assert.Equal(t, "A01", doc.Rows[1][0])
	assert.Equal(t, "180", doc.Rows[1][9])  // unit cost 880*0.205 rounded
	assert.Equal(t, "220", doc.Rows[1][10]) // unit price 880*0.25
}
