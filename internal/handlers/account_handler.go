package handlers

import (
	"net/http"

	"curio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AccountHandler struct {
	service services.AccountService
	log     *logrus.Logger
}

func NewAccountHandler(service services.AccountService, logService services.LogService) *AccountHandler {
	return &AccountHandler{service: service, log: logService.Log}
}

// RequestDeletion schedules the account wipe after the grace period.
func (h *AccountHandler) RequestDeletion(c *fiber.Ctx) error {
	deletion, err := h.service.RequestDeletion(CallerClaims(c).UserID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(http.StatusAccepted).JSON(deletion)
}

func (h *AccountHandler) CancelDeletion(c *fiber.Ctx) error {
	deletion, err := h.service.CancelDeletion(CallerClaims(c).UserID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(deletion)
}

func (h *AccountHandler) GetDeletion(c *fiber.Ctx) error {
	deletion, err := h.service.PendingDeletion(CallerClaims(c).UserID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(deletion)
}
