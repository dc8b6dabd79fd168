package handlers

import (
	"encoding/json"
	"net/http"

	"curio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PositionHandler struct {
	service services.PositionService
	log     *logrus.Logger
}

func NewPositionHandler(service services.PositionService, logService services.LogService) *PositionHandler {
	return &PositionHandler{service: service, log: logService.Log}
}

type schemaRequest struct {
	Name   string          `json:"name"`
	Schema json.RawMessage `json:"schema"`
}

type positionRequest struct {
	SchemaID uint            `json:"schema_id"`
	Data     json.RawMessage `json:"data"`
}

func (h *PositionHandler) CreateSchema(c *fiber.Ctx) error {
	var req schemaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	schema, err := h.service.CreateSchema(CallerClaims(c).UserID, req.Name, req.Schema)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(http.StatusCreated).JSON(schema)
}

func (h *PositionHandler) GetSchema(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badID(c, "schema ID")
	}
	schema, err := h.service.GetSchema(id, CallerClaims(c).UserID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(schema)
}

func (h *PositionHandler) UpdateSchema(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badID(c, "schema ID")
	}
	var req schemaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	schema, err := h.service.UpdateSchema(id, CallerClaims(c).UserID, req.Name, req.Schema)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(schema)
}

func (h *PositionHandler) DeleteSchema(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badID(c, "schema ID")
	}
	if err := h.service.DeleteSchema(id, CallerClaims(c).UserID); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *PositionHandler) ListSchemas(c *fiber.Ctx) error {
	page, err := h.service.ListSchemas(CallerClaims(c).UserID, pageRequest(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(page)
}

func (h *PositionHandler) CreatePosition(c *fiber.Ctx) error {
	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return badID(c, "item ID")
	}
	var req positionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	position, err := h.service.CreatePosition(CallerClaims(c).UserID, itemID, req.SchemaID, req.Data)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(http.StatusCreated).JSON(position)
}

func (h *PositionHandler) ListPositions(c *fiber.Ctx) error {
	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return badID(c, "item ID")
	}
	page, err := h.service.ListPositions(itemID, CallerClaims(c).UserID, pageRequest(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(page)
}

func (h *PositionHandler) UpdatePosition(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badID(c, "position ID")
	}
	var req positionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	position, err := h.service.UpdatePosition(id, CallerClaims(c).UserID, req.Data)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(position)
}

func (h *PositionHandler) DeletePosition(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badID(c, "position ID")
	}
	if err := h.service.DeletePosition(id, CallerClaims(c).UserID); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
