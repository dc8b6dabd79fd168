package handlers

import (
	"net/http"

	"curio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	service services.AccountService
	log     *logrus.Logger
}

func NewAuthHandler(service services.AccountService, logService services.LogService) *AuthHandler {
	return &AuthHandler{service: service, log: logService.Log}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	result, err := h.service.Register(req.Email, req.Password)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(http.StatusCreated).JSON(result)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	result, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(result)
}
