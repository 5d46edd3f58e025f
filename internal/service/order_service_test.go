package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-resale-tracker/internal/model"
	"go-resale-tracker/internal/ws"
)

func TestOrderServiceCreateBatchAllocatesSuffix(t *testing.T) {
	_, _, orders, settings := fixtureRepos()
	svc := NewOrderService(orders, settings, ws.NewHub())

	batch, err := svc.CreateBatch(2025, 8)
	require.NoError(t, err)
	assert.Equal(t, "202508B", batch.ID) // 202508A already exists
	assert.Equal(t, "B", batch.Suffix)

	// A different month starts back at A.
	batch, err = svc.CreateBatch(2025, 9)
	require.NoError(t, err)
	assert.Equal(t, "202509A", batch.ID)
}

func TestOrderServiceCreateBatchRejectsBadMonth(t *testing.T) {
	_, _, orders, settings := fixtureRepos()
	svc := NewOrderService(orders, settings, ws.NewHub())

	_, err := svc.CreateBatch(2025, 13)
	assert.Error(t, err)
}

func TestOrderServiceCreateLineRequiresBatch(t *testing.T) {
	_, _, orders, settings := fixtureRepos()
	svc := NewOrderService(orders, settings, ws.NewHub())

	line := &model.OrderLine{
		OrderBatchID: "209912Z",
		CategoryID:   "A01",
		ProductID:    "01",
		Quantity:     1,
	}
	_, err := svc.CreateLine(line)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderServiceCreateLineValidates(t *testing.T) {
	_, _, orders, settings := fixtureRepos()
	svc := NewOrderService(orders, settings, ws.NewHub())

	// Quantity must be positive.
	line := &model.OrderLine{
		OrderBatchID: "202508A",
		CategoryID:   "A01",
		ProductID:    "01",
		Quantity:     0,
	}
	_, err := svc.CreateLine(line)
	assert.Error(t, err)

	// Category code has a fixed shape.
	line = &model.OrderLine{
		OrderBatchID: "202508A",
		CategoryID:   "a1",
		ProductID:    "01",
		Quantity:     1,
	}
	_, err = svc.CreateLine(line)
	assert.Error(t, err)
}

func TestOrderServiceGetSettingsDefaults(t *testing.T) {
	_, _, orders, settings := fixtureRepos()
	delete(settings.settings, "202508A")
	svc := NewOrderService(orders, settings, ws.NewHub())

	got, err := svc.GetSettings("202508A")
	require.NoError(t, err)

	assert.Equal(t, "202508A", got.BatchID)
	assert.Equal(t, model.StatusProcessing, got.Status)
	assert.Zero(t, got.CardCharge)
}

func TestOrderServiceSaveSettings(t *testing.T) {
	_, _, orders, settings := fixtureRepos()
	svc := NewOrderService(orders, settings, ws.NewHub())

	saved, err := svc.SaveSettings("202508A", &model.BatchSettings{CardCharge: 2000, CardFee: 30})
	require.NoError(t, err)

	assert.Equal(t, "202508A", saved.BatchID)
	assert.Equal(t, model.StatusProcessing, saved.Status) // defaulted

	got, err := svc.GetSettings("202508A")
	require.NoError(t, err)
	assert.Equal(t, 2000.0, got.CardCharge)
}

func TestCatalogServiceCreateCategoryAllocatesID(t *testing.T) {
	categories, products, _, _ := fixtureRepos()
	svc := NewCatalogService(categories, products, ws.NewHub())

	category, err := svc.CreateCategory("鬼滅")
	require.NoError(t, err)
	assert.Equal(t, "A04", category.ID) // after A01, A03

	_, err = svc.CreateCategory("")
	assert.Error(t, err)
}

func TestCatalogServiceCreateProductAllocatesID(t *testing.T) {
	categories, products, _, _ := fixtureRepos()
	svc := NewCatalogService(categories, products, ws.NewHub())

	product, err := svc.CreateProduct(&model.Product{
		CategoryID: "A01",
		Name:       "2.幼年小立牌",
		JPYPrice:   440,
		RateSale:   0.250,
		RateCost:   0.205,
		InputPrice: 120,
	})
	require.NoError(t, err)
	assert.Equal(t, "02", product.ID)

	// Unknown category is rejected before any id gets allocated.
	_, err = svc.CreateProduct(&model.Product{CategoryID: "Z99", Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}
