// Package pricing is the pure computation core: unit figures derived from a
// product's cost legs, per-line valuation, grouped rollups, and batch
// income/expense/profit summaries. Everything here is a deterministic
// function of in-memory snapshots — no I/O, no shared state. Callers are
// expected to recompute from a fresh snapshot on every request rather than
// patch prior results.
package pricing

import (
	"github.com/shopspring/decimal"

	"go-resale-tracker/internal/model"
)

// UnitFigures are the per-unit TWD reference figures for one product.
// InputPrice is deliberately absent: it is the operator's own sale price and
// enters the numbers at valuation, not here.
type UnitFigures struct {
	BaseSumJPY        float64 `json:"base_sum_jpy"`
	UnitCostLocal     int64   `json:"unit_cost_local"`
	UnitPriceLocal    int64   `json:"unit_price_local"`
	CostPlusShipping  int64   `json:"cost_plus_shipping"`
	PricePlusShipping int64   `json:"price_plus_shipping"`
	UnitProfit        int64   `json:"unit_profit"`
}

// roundTWD rounds a currency value to the nearest integer, half away from
// zero. Every intermediate currency figure goes through this, so separate
// code paths cannot drift apart by rounding at different points.
func roundTWD(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// ComputeUnitFigures derives the TWD cost/price/profit figures for one unit.
// Pure arithmetic over the product's numeric fields; inputs are not
// validated here (the data-entry boundary owns that).
func ComputeUnitFigures(p model.Product) UnitFigures {
	baseSum := decimal.NewFromFloat(p.JPYPrice).
		Add(decimal.NewFromFloat(p.DomesticShip)).
		Add(decimal.NewFromFloat(p.HandlingFee))
	intlShip := decimal.NewFromFloat(p.IntlShip)

	unitCost := roundTWD(baseSum.Mul(decimal.NewFromFloat(p.RateCost)))
	unitPrice := roundTWD(baseSum.Mul(decimal.NewFromFloat(p.RateSale)))
	costShip := roundTWD(decimal.NewFromInt(unitCost).Add(intlShip))
	priceShip := roundTWD(decimal.NewFromInt(unitPrice).Add(intlShip))

	return UnitFigures{
		BaseSumJPY:        baseSum.InexactFloat64(),
		UnitCostLocal:     unitCost,
		UnitPriceLocal:    unitPrice,
		CostPlusShipping:  costShip,
		PricePlusShipping: priceShip,
		UnitProfit:        unitPrice - costShip,
	}
}
