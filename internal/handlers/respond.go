package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"curio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// respondError maps domain errors onto the HTTP contract. Unexpected
// errors are logged and surfaced as a generic server error.
func respondError(c *fiber.Ctx, log *logrus.Logger, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": err.Error()})
	case errors.Is(err, services.ErrUnauthorized):
		return c.Status(http.StatusUnauthorized).JSON(map[string]interface{}{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(http.StatusForbidden).JSON(map[string]interface{}{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": err.Error()})
	case errors.Is(err, services.ErrConflict):
		return c.Status(http.StatusConflict).JSON(map[string]interface{}{"error": err.Error()})
	}
	if log != nil {
		log.WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"error":  err.Error(),
		}).Error("unhandled error")
	}
	return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "internal server error"})
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func badID(c *fiber.Ctx, name string) error {
	return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid " + name})
}

// pageRequest reads the cursor pagination query parameters.
func pageRequest(c *fiber.Ctx) services.PageRequest {
	limit, _ := strconv.Atoi(c.Query("limit", "0"))
	return services.PageRequest{
		Cursor:    c.Query("cursor", ""),
		Direction: c.Query("direction", ""),
		Limit:     limit,
	}
}

func queryUintPtr(c *fiber.Ctx, name string) (*uint, error) {
	raw := c.Query(name, "")
	if raw == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, err
	}
	value := uint(parsed)
	return &value, nil
}
