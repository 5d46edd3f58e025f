package pricing

import (
	"github.com/shopspring/decimal"

	"go-resale-tracker/internal/model"
)

// Fixed profit split between the two stakeholders.
const (
	splitRatioA = 0.2
	splitRatioB = 0.8
)

// BatchSummary is the income/expense/profit picture of one batch: line
// totals from the order data plus the manually-entered settings figures.
type BatchSummary struct {
	BatchID string            `json:"batch_id"`
	Status  model.BatchStatus `json:"status"`

	JPYTotal      float64 `json:"jpy_total"`
	DomesticTotal float64 `json:"domestic_total"`
	HandlingTotal float64 `json:"handling_total"`

	TotalSales    float64 `json:"total_sales"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalExpenses float64 `json:"total_expenses"`
	NetProfit     float64 `json:"net_profit"`

	ProfitRatePercent  float64 `json:"profit_rate_percent"`
	CardFeeRatePercent float64 `json:"card_fee_rate_percent"`
	CardExchangeRate   float64 `json:"card_exchange_rate"`

	SplitA int64 `json:"split_a"`
	SplitB int64 `json:"split_b"`

	DadReceivable float64 `json:"dad_receivable"`
	PaymentNote   string  `json:"payment_note"`
}

// SummarizeBatch computes one batch's summary from its lines and settings.
// Total function: a batch with no lines and default settings yields an
// all-zero summary. Dangling lines are skipped; zero denominators yield 0.
func SummarizeBatch(batchID string, lines []model.OrderLine, lookup ProductLookup, settings model.BatchSettings) BatchSummary {
	s := BatchSummary{BatchID: batchID, Status: settings.Status}
	if s.Status == "" {
		s.Status = model.StatusProcessing
	}

	for _, line := range lines {
		f := ValuateLine(line, lookup)
		if f == nil {
			continue
		}
		s.JPYTotal += f.JPYTotal
		s.DomesticTotal += f.DomesticTotal
		s.HandlingTotal += f.HandlingTotal
		s.TotalSales += f.RevenueTotal
	}

	s.TotalRevenue = s.TotalSales + settings.PackagingRevenue
	s.TotalExpenses = settings.CardCharge + settings.CardFee + settings.IntlShipping
	s.NetProfit = s.TotalRevenue - s.TotalExpenses

	if s.TotalRevenue > 0 {
		s.ProfitRatePercent = s.NetProfit / s.TotalRevenue * 100
	}
	if settings.CardCharge > 0 {
		s.CardFeeRatePercent = settings.CardFee / settings.CardCharge * 100
	}
	costBase := s.JPYTotal + s.DomesticTotal + s.HandlingTotal
	if costBase > 0 {
		s.CardExchangeRate = (settings.CardCharge + settings.CardFee) / costBase
	}

	// Each share rounds independently. The pair may miss round(NetProfit)
	// by one; that drift is accepted, never reconciled.
	np := decimal.NewFromFloat(s.NetProfit)
	s.SplitA = roundTWD(np.Mul(decimal.NewFromFloat(splitRatioA)))
	s.SplitB = roundTWD(np.Mul(decimal.NewFromFloat(splitRatioB)))

	s.DadReceivable = settings.DadReceivable
	s.PaymentNote = settings.PaymentNote
	return s
}

// AllBatchesSummary lists every batch's independent summary plus the summed
// income/expense/profit triple across them.
type AllBatchesSummary struct {
	Batches       []BatchSummary `json:"batches"`
	TotalIncome   float64        `json:"total_income"`
	TotalExpenses float64        `json:"total_expenses"`
	TotalProfit   float64        `json:"total_profit"`
}

// SummarizeAllBatches computes every batch against its own lines and
// settings (absent settings default to zero) and sums the triples. No
// batch's numbers depend on another batch's data.
func SummarizeAllBatches(batches []model.OrderBatch, linesByBatch map[string][]model.OrderLine, settingsByBatch map[string]model.BatchSettings, lookup ProductLookup) AllBatchesSummary {
	out := AllBatchesSummary{Batches: make([]BatchSummary, 0, len(batches))}
	for _, b := range batches {
		settings, ok := settingsByBatch[b.ID]
		if !ok {
			settings = model.DefaultSettings(b.ID)
		}
		s := SummarizeBatch(b.ID, linesByBatch[b.ID], lookup, settings)
		out.Batches = append(out.Batches, s)
		out.TotalIncome += s.TotalRevenue
		out.TotalExpenses += s.TotalExpenses
		out.TotalProfit += s.NetProfit
	}
	return out
}
