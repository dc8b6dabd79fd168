package handlers

import (
	"encoding/json"
	"net/http"

	"curio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ContentHandler struct {
	service services.ContentService
	log     *logrus.Logger
}

func NewContentHandler(service services.ContentService, logService services.LogService) *ContentHandler {
	return &ContentHandler{service: service, log: logService.Log}
}

type contentRequest struct {
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

func (h *ContentHandler) Create(c *fiber.Ctx) error {
	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return badID(c, "item ID")
	}
	var req contentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	content, err := h.service.Create(CallerClaims(c).UserID, itemID, req.Kind, req.Payload)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(http.StatusCreated).JSON(content)
}

func (h *ContentHandler) ListByItem(c *fiber.Ctx) error {
	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return badID(c, "item ID")
	}
	page, err := h.service.ListByItem(itemID, CallerClaims(c).UserID, pageRequest(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(page)
}

func (h *ContentHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badID(c, "content ID")
	}
	var req contentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	content, err := h.service.Update(id, CallerClaims(c).UserID, req.Kind, req.Payload)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(content)
}

func (h *ContentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badID(c, "content ID")
	}
	if err := h.service.Delete(id, CallerClaims(c).UserID); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
