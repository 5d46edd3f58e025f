package handler

import (
	"go-resale-tracker/internal/model"
	"go-resale-tracker/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

func (h *OrderHandler) CreateBatch(c *fiber.Ctx) error {
	var req struct {
		Year  int `json:"year"`
		Month int `json:"month"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	batch, err := h.service.CreateBatch(req.Year, req.Month)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Batch created", "data": batch})
}

func (h *OrderHandler) GetBatches(c *fiber.Ctx) error {
	batches, err := h.service.GetBatches()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(batches)
}

func (h *OrderHandler) GetBatch(c *fiber.Ctx) error {
	batch, err := h.service.GetBatch(c.Params("id"))
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(batch)
}

func (h *OrderHandler) DeleteBatch(c *fiber.Ctx) error {
	if err := h.service.DeleteBatch(c.Params("id")); err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Batch deleted"})
}

func (h *OrderHandler) CreateLine(c *fiber.Ctx) error {
	var line model.OrderLine
	if err := c.BodyParser(&line); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	line.OrderBatchID = c.Params("id")

	created, err := h.service.CreateLine(&line)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Order line created", "data": created})
}

func (h *OrderHandler) GetLines(c *fiber.Ctx) error {
	lines, err := h.service.GetLines(c.Params("id"))
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(lines)
}

func (h *OrderHandler) UpdateLine(c *fiber.Ctx) error {
	lineID, err := uuid.Parse(c.Params("lineId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid line ID"})
	}

	var line model.OrderLine
	if err := c.BodyParser(&line); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateLine(lineID, &line)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Order line updated", "data": updated})
}

func (h *OrderHandler) DeleteLine(c *fiber.Ctx) error {
	lineID, err := uuid.Parse(c.Params("lineId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid line ID"})
	}

	if err := h.service.DeleteLine(lineID); err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Order line deleted"})
}

func (h *OrderHandler) SaveSettings(c *fiber.Ctx) error {
	var settings model.BatchSettings
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	saved, err := h.service.SaveSettings(c.Params("id"), &settings)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Settings saved", "data": saved})
}

func (h *OrderHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.service.GetSettings(c.Params("id"))
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(settings)
}
