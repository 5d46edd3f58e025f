package service

import (
	"fmt"
	"strconv"

	"go-resale-tracker/internal/pricing"
	"go-resale-tracker/internal/repository"
)

// CSVDocument is a filename plus rows ready for a CSV writer. Numbers are
// preformatted so every export renders money the same way.
type CSVDocument struct {
	Filename string
	Rows     [][]string
}

type ExportService interface {
	ExportPriceList() (*CSVDocument, error)
	ExportBatchLines(batchID string) (*CSVDocument, error)
	ExportBatchDetails(batchID, groupBy string) (*CSVDocument, error)
	ExportAnalysis() (*CSVDocument, error)
}

type exportService struct {
	orderRepo repository.OrderRepository
	reports   ReportService
}

func NewExportService(oRepo repository.OrderRepository, reports ReportService) ExportService {
	return &exportService{orderRepo: oRepo, reports: reports}
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ExportPriceList dumps the catalog with the derived unit figures per SKU.
func (s *exportService) ExportPriceList() (*CSVDocument, error) {
	list, err := s.reports.GetPriceList()
	if err != nil {
		return nil, err
	}

	rows := [][]string{{
		"category", "id", "name",
		"jpy_price", "domestic_ship", "handling_fee", "intl_ship",
		"rate_cost", "rate_sale",
		"unit_cost", "unit_price", "cost_plus_shipping", "price_plus_shipping",
		"unit_profit", "input_price",
	}}
	for _, pf := range list {
		p, f := pf.Product, pf.Figures
		rows = append(rows, []string{
			p.CategoryID, p.ID, p.Name,
			money(p.JPYPrice), money(p.DomesticShip), money(p.HandlingFee), money(p.IntlShip),
			money(p.RateCost), money(p.RateSale),
			strconv.FormatInt(f.UnitCostLocal, 10),
			strconv.FormatInt(f.UnitPriceLocal, 10),
			strconv.FormatInt(f.CostPlusShipping, 10),
			strconv.FormatInt(f.PricePlusShipping, 10),
			strconv.FormatInt(f.UnitProfit, 10),
			money(p.InputPrice),
		})
	}
	return &CSVDocument{Filename: "price-list.csv", Rows: rows}, nil
}

// ExportBatchLines dumps one batch's raw order lines, unvalued, in entry
// order.
func (s *exportService) ExportBatchLines(batchID string) (*CSVDocument, error) {
	if _, err := s.orderRepo.FindBatchByID(batchID); err != nil {
		return nil, fmt.Errorf("batch %s: %w", batchID, ErrNotFound)
	}
	lines, err := s.orderRepo.FindLinesByBatch(batchID)
	if err != nil {
		return nil, err
	}

	rows := [][]string{{
		"date", "buyer", "category", "product", "description",
		"quantity", "remarks", "note",
	}}
	for _, l := range lines {
		rows = append(rows, []string{
			l.Date, l.Buyer, l.CategoryID, l.ProductID, l.Description,
			strconv.Itoa(l.Quantity), l.Remarks, l.Note,
		})
	}
	return &CSVDocument{Filename: batchID + "-orders.csv", Rows: rows}, nil
}

// ExportBatchDetails dumps the buyer or product rollup of one batch: each
// group's lines followed by the group subtotal, then the grand total.
func (s *exportService) ExportBatchDetails(batchID, groupBy string) (*CSVDocument, error) {
	rollup, err := s.reports.GetBatchDetails(batchID, groupBy)
	if err != nil {
		return nil, err
	}
	if groupBy == "" {
		groupBy = "buyer"
	}

	rows := [][]string{{
		"group", "product", "description", "quantity",
		"jpy_total", "domestic_total", "handling_total", "revenue_total",
	}}
	for _, g := range rollup.Groups {
		for _, vl := range g.Lines {
			rows = append(rows, []string{
				g.Label,
				vl.Product.Name + " (" + vl.Line.CategoryID + "-" + vl.Line.ProductID + ")",
				vl.Line.Description,
				strconv.Itoa(vl.Figures.Quantity),
				money(vl.Figures.JPYTotal),
				money(vl.Figures.DomesticTotal),
				money(vl.Figures.HandlingTotal),
				money(vl.Figures.RevenueTotal),
			})
		}
		rows = append(rows, totalsRow(g.Label+" subtotal", g.Totals))
	}
	rows = append(rows, totalsRow("total", rollup.GrandTotal))

	return &CSVDocument{Filename: batchID + "-details-" + groupBy + ".csv", Rows: rows}, nil
}

// ExportAnalysis dumps the all-batches category rollup with its per-product
// breakdown.
func (s *exportService) ExportAnalysis() (*CSVDocument, error) {
	rollup, err := s.reports.GetAnalysis()
	if err != nil {
		return nil, err
	}

	rows := [][]string{{
		"category", "product", "quantity",
		"jpy_total", "domestic_total", "handling_total", "revenue_total",
	}}
	for _, g := range rollup.Groups {
		for _, sub := range g.Subgroups {
			rows = append(rows, []string{
				g.Label, sub.Label,
				strconv.Itoa(sub.Totals.Quantity),
				money(sub.Totals.JPYTotal),
				money(sub.Totals.DomesticTotal),
				money(sub.Totals.HandlingTotal),
				money(sub.Totals.RevenueTotal),
			})
		}
		rows = append(rows, []string{
			g.Label, "subtotal",
			strconv.Itoa(g.Totals.Quantity),
			money(g.Totals.JPYTotal),
			money(g.Totals.DomesticTotal),
			money(g.Totals.HandlingTotal),
			money(g.Totals.RevenueTotal),
		})
	}
	rows = append(rows, []string{
		"total", "",
		strconv.Itoa(rollup.GrandTotal.Quantity),
		money(rollup.GrandTotal.JPYTotal),
		money(rollup.GrandTotal.DomesticTotal),
		money(rollup.GrandTotal.HandlingTotal),
		money(rollup.GrandTotal.RevenueTotal),
	})

	return &CSVDocument{Filename: "analysis.csv", Rows: rows}, nil
}

func totalsRow(label string, t pricing.Totals) []string {
	return []string{
		label, "", "",
		strconv.Itoa(t.Quantity),
		money(t.JPYTotal),
		money(t.DomesticTotal),
		money(t.HandlingTotal),
		money(t.RevenueTotal),
	}
}
