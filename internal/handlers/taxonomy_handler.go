package handlers

import (
	"net/http"

	"curio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type namedRequest struct {
	Name string `json:"name"`
}

type CategoryHandler struct {
	service services.CategoryService
	log     *logrus.Logger
}

func NewCategoryHandler(service services.CategoryService, logService services.LogService) *CategoryHandler {
	return &CategoryHandler{service: service, log: logService.Log}
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req namedRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	category, err := h.service.Create(CallerClaims(c).UserID, req.Name)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(http.StatusCreated).JSON(category)
}

func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badID(c, "category ID")
	}
	category, err := h.service.Get(id, CallerClaims(c).UserID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(category)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badID(c, "category ID")
	}
	var req namedRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	category, err := h.service.Update(id, CallerClaims(c).UserID, req.Name)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(category)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badID(c, "category ID")
	}
	if err := h.service.Delete(id, CallerClaims(c).UserID); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	page, err := h.service.List(CallerClaims(c).UserID, pageRequest(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(page)
}

type AuthorHandler struct {
	service services.AuthorService
	log     *logrus.Logger
}

func NewAuthorHandler(service services.AuthorService, logService services.LogService) *AuthorHandler {
	return &AuthorHandler{service: service, log: logService.Log}
}

func (h *AuthorHandler) Create(c *fiber.Ctx) error {
	var req namedRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	author, err := h.service.Create(CallerClaims(c).UserID, req.Name)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(http.StatusCreated).JSON(author)
}

func (h *AuthorHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badID(c, "author ID")
	}
	author, err := h.service.Get(id, CallerClaims(c).UserID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(author)
}

func (h *AuthorHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badID(c, "author ID")
	}
	var req namedRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	author, err := h.service.Update(id, CallerClaims(c).UserID, req.Name)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(author)
}

func (h *AuthorHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badID(c, "author ID")
	}
	if err := h.service.Delete(id, CallerClaims(c).UserID); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *AuthorHandler) List(c *fiber.Ctx) error {
	page, err := h.service.List(CallerClaims(c).UserID, pageRequest(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(page)
}

type LocationHandler struct {
	service services.LocationService
	log     *logrus.Logger
}

func NewLocationHandler(service services.LocationService, logService services.LogService) *LocationHandler {
	return &LocationHandler{service: service, log: logService.Log}
}

type locationRequest struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (r locationRequest) toInput() services.LocationInput {
	return services.LocationInput{
		Name:      r.Name,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
}

func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var req locationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	location, err := h.service.Create(CallerClaims(c).UserID, req.toInput())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(http.StatusCreated).JSON(location)
}

func (h *LocationHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badID(c, "location ID")
	}
	location, err := h.service.Get(id, CallerClaims(c).UserID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(location)
}

func (h *LocationHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badID(c, "location ID")
	}
	var req locationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	location, err := h.service.Update(id, CallerClaims(c).UserID, req.toInput())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(location)
}

func (h *LocationHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badID(c, "location ID")
	}
	if err := h.service.Delete(id, CallerClaims(c).UserID); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *LocationHandler) List(c *fiber.Ctx) error {
	page, err := h.service.List(CallerClaims(c).UserID, pageRequest(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(page)
}
