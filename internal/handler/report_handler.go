package handler

import (
	"bytes"
	"encoding/csv"

	"go-resale-tracker/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	reports service.ReportService
	exports service.ExportService
}

func NewReportHandler(reports service.ReportService, exports service.ExportService) *ReportHandler {
	return &ReportHandler{reports: reports, exports: exports}
}

func (h *ReportHandler) GetPriceList(c *fiber.Ctx) error {
	list, err := h.reports.GetPriceList()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(list)
}

func (h *ReportHandler) GetBatchDetails(c *fiber.Ctx) error {
	rollup, err := h.reports.GetBatchDetails(c.Params("id"), c.Query("by", "buyer"))
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(rollup)
}

func (h *ReportHandler) GetAnalysis(c *fiber.Ctx) error {
	rollup, err := h.reports.GetAnalysis()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(rollup)
}

func (h *ReportHandler) GetBatchSummary(c *fiber.Ctx) error {
	summary, err := h.reports.GetBatchSummary(c.Params("id"))
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(summary)
}

func (h *ReportHandler) GetIncomeOverview(c *fiber.Ctx) error {
	overview, err := h.reports.GetIncomeOverview()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(overview)
}

// sendCSV renders the document as an attachment. A UTF-8 BOM is prepended so
// spreadsheet apps pick up the Chinese buyer and product names correctly.
func sendCSV(c *fiber.Ctx, doc *service.CSVDocument) error {
	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(doc.Rows); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+doc.Filename+`"`)
	return c.Send(buf.Bytes())
}

func (h *ReportHandler) ExportPriceList(c *fiber.Ctx) error {
	doc, err := h.exports.ExportPriceList()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return sendCSV(c, doc)
}

func (h *ReportHandler) ExportBatchLines(c *fiber.Ctx) error {
	doc, err := h.exports.ExportBatchLines(c.Params("id"))
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return sendCSV(c, doc)
}

func (h *ReportHandler) ExportBatchDetails(c *fiber.Ctx) error {
	doc, err := h.exports.ExportBatchDetails(c.Params("id"), c.Query("by", "buyer"))
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return sendCSV(c, doc)
}

func (h *ReportHandler) ExportAnalysis(c *fiber.Ctx) error {
	doc, err := h.exports.ExportAnalysis()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return sendCSV(c, doc)
}
