package pricing

import "go-resale-tracker/internal/model"

// LineFigures are one order line's totals: the per-unit figures scaled by
// the ordered quantity. RevenueTotal uses the product's InputPrice — the
// price actually charged — never the RateSale-derived reference price.
type LineFigures struct {
	Quantity      int     `json:"quantity"`
	JPYTotal      float64 `json:"jpy_total"`
	DomesticTotal float64 `json:"domestic_total"`
	HandlingTotal float64 `json:"handling_total"`
	CostTotal     int64   `json:"cost_total"`
	RevenueTotal  float64 `json:"revenue_total"`
	ProfitTotal   float64 `json:"profit_total"`
}

// ProductLookup resolves a line's (categoryID, productID) pair against a
// catalog snapshot. Nil means the reference dangles.
type ProductLookup func(categoryID, productID string) *model.Product

// NewCatalogLookup indexes a product snapshot by composite key.
func NewCatalogLookup(products []model.Product) ProductLookup {
	idx := make(map[string]model.Product, len(products))
	for _, p := range products {
		idx[p.CategoryID+"-"+p.ID] = p
	}
	return func(categoryID, productID string) *model.Product {
		if p, ok := idx[categoryID+"-"+productID]; ok {
			return &p
		}
		return nil
	}
}

// ValuateLine computes one line's totals. A nil result marks a dangling
// product reference: the line contributes nothing to any aggregate and the
// caller skips it without raising an error.
func ValuateLine(line model.OrderLine, lookup ProductLookup) *LineFigures {
	p := lookup(line.CategoryID, line.ProductID)
	if p == nil {
		return nil
	}
	f := valuate(line, *p)
	return &f
}

// valuate scales the unit figures by the line quantity for an
// already-resolved product.
func valuate(line model.OrderLine, p model.Product) LineFigures {
	qty := float64(line.Quantity)
	cost := ComputeUnitFigures(p).CostPlusShipping * int64(line.Quantity)
	revenue := p.InputPrice * qty

	return LineFigures{
		Quantity:      line.Quantity,
		JPYTotal:      p.JPYPrice * qty,
		DomesticTotal: p.DomesticShip * qty,
		HandlingTotal: p.HandlingFee * qty,
		CostTotal:     cost,
		RevenueTotal:  revenue,
		ProfitTotal:   revenue - float64(cost),
	}
}
