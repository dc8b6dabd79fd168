package handlers

import (
	"net/http"

	"curio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type WhitelistHandler struct {
	service services.WhitelistService
	log     *logrus.Logger
}

func NewWhitelistHandler(service services.WhitelistService, logService services.LogService) *WhitelistHandler {
	return &WhitelistHandler{service: service, log: logService.Log}
}

type whitelistRequest struct {
	Email string `json:"email"`
}

func (h *WhitelistHandler) List(c *fiber.Ctx) error {
	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return badID(c, "item ID")
	}
	entries, err := h.service.List(itemID, CallerClaims(c).UserID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(entries)
}

func (h *WhitelistHandler) Add(c *fiber.Ctx) error {
	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return badID(c, "item ID")
	}
	var req whitelistRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	entry, err := h.service.Add(itemID, CallerClaims(c).UserID, req.Email)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(http.StatusCreated).JSON(entry)
}

func (h *WhitelistHandler) Remove(c *fiber.Ctx) error {
	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return badID(c, "item ID")
	}
	var req whitelistRequest
	if err := c.BodyParser(&req); err != nil {
		// Allow the email as a query parameter for DELETE without a body.
		req.Email = c.Query("email", "")
	}
	if req.Email == "" {
		req.Email = c.Query("email", "")
	}
	if err := h.service.Remove(itemID, CallerClaims(c).UserID, req.Email); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
